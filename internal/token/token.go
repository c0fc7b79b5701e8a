package token

type TokenType string

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Literals
	INTEGER TokenType = "INTEGER"
	FLOAT   TokenType = "FLOAT"
	STRING  TokenType = "STRING"
	CHAR    TokenType = "CHAR"

	// A word reference: identifier-like (dup, factorial) or
	// operator-like (+, <=, !=). Resolution happens at run time.
	SYMBOL TokenType = "SYMBOL"

	// Delimiters
	LBRACKET  TokenType = "["
	RBRACKET  TokenType = "]"
	LBRACE    TokenType = "{"
	RBRACE    TokenType = "}"
	SEMICOLON TokenType = ";"
	PERIOD    TokenType = "."

	// Definitions: DEFINE name == term* .
	DEFINE TokenType = "DEFINE"
	EQDEF  TokenType = "=="
)

// Token carries the raw lexeme plus, for literal tokens, the decoded
// payload: *big.Int for INTEGER, float64 for FLOAT, string for STRING
// (escapes resolved), rune for CHAR. Line and Column are 1-based.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{}
	Line    int
	Column  int
}
