// Package lexer turns source text into a token stream. One Lexer is
// created per input; tokens are pulled with NextToken until EOF.
package lexer

import (
	"fmt"
	"math/big"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/funvibe/joy/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
		l.ch = r
		l.position = l.readPosition
		l.readPosition += w
		l.column++
		return
	}

	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

// Tokenize drains the lexer into a slice, EOF token included.
func Tokenize(input string) []token.Token {
	l := New(input)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF || tok.Type == token.ILLEGAL {
			return toks
		}
	}
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	line, column := l.line, l.column

	switch {
	case l.ch == 0:
		return token.Token{Type: token.EOF, Line: line, Column: column}
	case l.ch == '#':
		l.skipLineComment()
		return l.NextToken()
	case l.ch == '(' && l.peekChar() == '*':
		if ok := l.skipBlockComment(); !ok {
			return l.illegal("unterminated comment", line, column)
		}
		return l.NextToken()
	case l.ch == '[':
		l.readChar()
		return token.Token{Type: token.LBRACKET, Lexeme: "[", Line: line, Column: column}
	case l.ch == ']':
		l.readChar()
		return token.Token{Type: token.RBRACKET, Lexeme: "]", Line: line, Column: column}
	case l.ch == '{':
		l.readChar()
		return token.Token{Type: token.LBRACE, Lexeme: "{", Line: line, Column: column}
	case l.ch == '}':
		l.readChar()
		return token.Token{Type: token.RBRACE, Lexeme: "}", Line: line, Column: column}
	case l.ch == ';':
		l.readChar()
		return token.Token{Type: token.SEMICOLON, Lexeme: ";", Line: line, Column: column}
	case l.ch == '.':
		l.readChar()
		return token.Token{Type: token.PERIOD, Lexeme: ".", Line: line, Column: column}
	case l.ch == '"':
		return l.readString(line, column)
	case l.ch == '\'':
		return l.readCharLiteral(line, column)
	case isDigit(l.ch), (l.ch == '-' || l.ch == '+') && isDigit(l.peekChar()):
		return l.readNumber(line, column)
	case isIdentStart(l.ch):
		return l.readIdentifier(line, column)
	case isOperator(l.ch):
		return l.readOperator(line, column)
	default:
		return l.illegal(fmt.Sprintf("unrecognized character %q", l.ch), line, column)
	}
}

func (l *Lexer) illegal(msg string, line, column int) token.Token {
	return token.Token{Type: token.ILLEGAL, Literal: msg, Line: line, Column: column}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

func (l *Lexer) skipBlockComment() bool {
	l.readChar() // (
	l.readChar() // *
	for {
		if l.ch == 0 {
			return false
		}
		if l.ch == '*' && l.peekChar() == ')' {
			l.readChar()
			l.readChar()
			return true
		}
		l.readChar()
	}
}

func (l *Lexer) readNumber(line, column int) token.Token {
	start := l.position
	if l.ch == '-' || l.ch == '+' {
		l.readChar()
	}
	for isDigit(l.ch) {
		l.readChar()
	}
	isFloat := false
	if l.ch == '.' && isDigit(l.peekChar()) {
		isFloat = true
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekChar()
		if isDigit(next) || next == '-' || next == '+' {
			isFloat = true
			l.readChar()
			if l.ch == '-' || l.ch == '+' {
				l.readChar()
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		}
	}

	lexeme := l.input[start:l.position]
	if isFloat {
		f, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return l.illegal(fmt.Sprintf("malformed float literal %q", lexeme), line, column)
		}
		return token.Token{Type: token.FLOAT, Lexeme: lexeme, Literal: f, Line: line, Column: column}
	}
	n, ok := new(big.Int).SetString(lexeme, 10)
	if !ok {
		return l.illegal(fmt.Sprintf("malformed integer literal %q", lexeme), line, column)
	}
	return token.Token{Type: token.INTEGER, Lexeme: lexeme, Literal: n, Line: line, Column: column}
}

func (l *Lexer) readString(line, column int) token.Token {
	l.readChar() // opening quote
	var out []rune
	for {
		switch l.ch {
		case 0, '\n':
			return l.illegal("unterminated string", line, column)
		case '"':
			l.readChar()
			return token.Token{Type: token.STRING, Lexeme: strconv.Quote(string(out)), Literal: string(out), Line: line, Column: column}
		case '\\':
			l.readChar()
			r, ok := unescape(l.ch)
			if !ok {
				return l.illegal(fmt.Sprintf("invalid escape \\%c in string", l.ch), line, column)
			}
			out = append(out, r)
			l.readChar()
		default:
			out = append(out, l.ch)
			l.readChar()
		}
	}
}

func (l *Lexer) readCharLiteral(line, column int) token.Token {
	l.readChar() // opening quote
	var r rune
	switch l.ch {
	case 0, '\n':
		return l.illegal("unterminated character literal", line, column)
	case '\\':
		l.readChar()
		esc, ok := unescape(l.ch)
		if !ok {
			return l.illegal(fmt.Sprintf("invalid escape \\%c in character literal", l.ch), line, column)
		}
		r = esc
	default:
		r = l.ch
	}
	l.readChar()
	if l.ch != '\'' {
		return l.illegal("unterminated character literal", line, column)
	}
	l.readChar()
	return token.Token{Type: token.CHAR, Lexeme: "'" + string(r) + "'", Literal: r, Line: line, Column: column}
}

func unescape(c rune) (rune, bool) {
	switch c {
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case '0':
		return 0, true
	case '\\', '"', '\'':
		return c, true
	}
	return 0, false
}

func (l *Lexer) readIdentifier(line, column int) token.Token {
	start := l.position
	for isIdentPart(l.ch) {
		l.readChar()
	}
	name := l.input[start:l.position]
	if name == "DEFINE" {
		return token.Token{Type: token.DEFINE, Lexeme: name, Line: line, Column: column}
	}
	return token.Token{Type: token.SYMBOL, Lexeme: name, Literal: name, Line: line, Column: column}
}

func (l *Lexer) readOperator(line, column int) token.Token {
	start := l.position
	for isOperator(l.ch) {
		l.readChar()
	}
	name := l.input[start:l.position]
	if name == "==" {
		return token.Token{Type: token.EQDEF, Lexeme: name, Line: line, Column: column}
	}
	return token.Token{Type: token.SYMBOL, Lexeme: name, Literal: name, Line: line, Column: column}
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentPart(ch rune) bool {
	return ch == '_' || ch == '-' || ch == '?' || ch == '!' || unicode.IsLetter(ch) || isDigit(ch)
}

func isOperator(ch rune) bool {
	switch ch {
	case '+', '-', '*', '/', '<', '>', '=', '!', '&', '|', '%', '^', '~':
		return true
	}
	return false
}
