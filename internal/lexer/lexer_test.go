package lexer

import (
	"math/big"
	"testing"

	"github.com/funvibe/joy/internal/token"
)

func kinds(toks []token.Token) []token.TokenType {
	out := make([]token.TokenType, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

func TestLexer_TokenKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.TokenType
	}{
		{"integer", "42", []token.TokenType{token.INTEGER, token.EOF}},
		{"negative integer", "-7", []token.TokenType{token.INTEGER, token.EOF}},
		{"float", "3.14", []token.TokenType{token.FLOAT, token.EOF}},
		{"float exponent", "1e10", []token.TokenType{token.FLOAT, token.EOF}},
		{"string", `"hello"`, []token.TokenType{token.STRING, token.EOF}},
		{"char", "'a'", []token.TokenType{token.CHAR, token.EOF}},
		{"symbol", "dup", []token.TokenType{token.SYMBOL, token.EOF}},
		{"operator symbol", "+", []token.TokenType{token.SYMBOL, token.EOF}},
		{"brackets", "[1 2]", []token.TokenType{token.LBRACKET, token.INTEGER, token.INTEGER, token.RBRACKET, token.EOF}},
		{"braces", "{0 3}", []token.TokenType{token.LBRACE, token.INTEGER, token.INTEGER, token.RBRACE, token.EOF}},
		{"terminators", "1 ; 2 .", []token.TokenType{token.INTEGER, token.SEMICOLON, token.INTEGER, token.PERIOD, token.EOF}},
		{"definition", "DEFINE sq == dup * .", []token.TokenType{token.DEFINE, token.SYMBOL, token.EQDEF, token.SYMBOL, token.SYMBOL, token.PERIOD, token.EOF}},
		{"line comment", "1 # rest ignored\n2", []token.TokenType{token.INTEGER, token.INTEGER, token.EOF}},
		{"block comment", "1 (* skip [ ] *) 2", []token.TokenType{token.INTEGER, token.INTEGER, token.EOF}},
		{"empty input", "", []token.TokenType{token.EOF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kinds(Tokenize(tt.input))
			if len(got) != len(tt.want) {
				t.Fatalf("token count = %d, want %d (%v)", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLexer_IntegerLiterals(t *testing.T) {
	toks := Tokenize("123456789012345678901234567890")
	if toks[0].Type != token.INTEGER {
		t.Fatalf("type = %s, want INTEGER", toks[0].Type)
	}
	want, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	if got := toks[0].Literal.(*big.Int); got.Cmp(want) != 0 {
		t.Errorf("literal = %s, want %s", got, want)
	}
}

func TestLexer_FloatLiteral(t *testing.T) {
	toks := Tokenize("2.5e3")
	if toks[0].Type != token.FLOAT {
		t.Fatalf("type = %s, want FLOAT", toks[0].Type)
	}
	if got := toks[0].Literal.(float64); got != 2500 {
		t.Errorf("literal = %v, want 2500", got)
	}
}

func TestLexer_StringEscapes(t *testing.T) {
	toks := Tokenize(`"a\nb\tc\"d"`)
	if toks[0].Type != token.STRING {
		t.Fatalf("type = %s, want STRING", toks[0].Type)
	}
	if got := toks[0].Literal.(string); got != "a\nb\tc\"d" {
		t.Errorf("literal = %q", got)
	}
}

func TestLexer_CharLiteral(t *testing.T) {
	tests := []struct {
		input string
		want  rune
	}{
		{"'a'", 'a'},
		{`'\n'`, '\n'},
		{`'\''`, '\''},
	}
	for _, tt := range tests {
		toks := Tokenize(tt.input)
		if toks[0].Type != token.CHAR {
			t.Fatalf("%s: type = %s, want CHAR", tt.input, toks[0].Type)
		}
		if got := toks[0].Literal.(rune); got != tt.want {
			t.Errorf("%s: literal = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLexer_IdentifierCharacters(t *testing.T) {
	toks := Tokenize("null? set-member_2")
	if toks[0].Literal.(string) != "null?" {
		t.Errorf("first = %q, want %q", toks[0].Literal, "null?")
	}
	if toks[1].Literal.(string) != "set-member_2" {
		t.Errorf("second = %q, want %q", toks[1].Literal, "set-member_2")
	}
}

func TestLexer_Positions(t *testing.T) {
	toks := Tokenize("1\n  dup")
	if toks[0].Line != 1 || toks[0].Column != 1 {
		t.Errorf("first token at %d:%d, want 1:1", toks[0].Line, toks[0].Column)
	}
	if toks[1].Line != 2 || toks[1].Column != 3 {
		t.Errorf("second token at %d:%d, want 2:3", toks[1].Line, toks[1].Column)
	}
}

func TestLexer_Illegal(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unterminated string", `"abc`},
		{"unterminated comment", "(* never closed"},
		{"unterminated char", "'a"},
		{"stray character", "@"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := Tokenize(tt.input)
			last := toks[len(toks)-1]
			if last.Type != token.ILLEGAL {
				t.Errorf("last token = %s, want ILLEGAL", last.Type)
			}
		})
	}
}
