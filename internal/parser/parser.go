// Package parser builds a program — a Quotation of terms — from source
// text. Parsing is recursive descent with a single token of lookahead
// and fails fast on the first error.
package parser

import (
	"fmt"
	"math/big"

	"github.com/funvibe/joy/internal/diagnostics"
	"github.com/funvibe/joy/internal/lexer"
	"github.com/funvibe/joy/internal/token"
	"github.com/funvibe/joy/internal/value"
)

type Parser struct {
	tokens []token.Token
	pos    int
}

// Parse scans and parses source into the whole-program quotation.
func Parse(source string) (value.Quotation, error) {
	toks := lexer.Tokenize(source)
	last := toks[len(toks)-1]
	if last.Type == token.ILLEGAL {
		return value.Quotation{}, &diagnostics.SyntaxError{
			Msg:    last.Literal.(string),
			Line:   last.Line,
			Column: last.Column,
		}
	}

	p := &Parser{tokens: toks}
	terms, err := p.parseTerms(nil)
	if err != nil {
		return value.Quotation{}, err
	}
	if tok := p.cur(); tok.Type != token.EOF {
		return value.Quotation{}, p.unexpected(tok)
	}
	return value.Quotation{Terms: terms}, nil
}

func (p *Parser) cur() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) advance() token.Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) unexpected(tok token.Token) error {
	return &diagnostics.SyntaxError{
		Msg:    fmt.Sprintf("unexpected token %q", tok.Lexeme),
		Line:   tok.Line,
		Column: tok.Column,
	}
}

// parseTerms collects terms until EOF or a token whose type is in stop.
// The stop token itself is left unconsumed.
func (p *Parser) parseTerms(stop map[token.TokenType]bool) ([]value.Term, error) {
	var terms []value.Term
	for {
		tok := p.cur()
		if tok.Type == token.EOF || stop[tok.Type] {
			return terms, nil
		}
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if term != nil {
			terms = append(terms, term)
		}
	}
}

// parseTerm dispatches on the current token. A nil term with nil error
// means the token produced nothing (statement terminators).
func (p *Parser) parseTerm() (value.Term, error) {
	tok := p.cur()
	switch tok.Type {
	case token.INTEGER:
		p.advance()
		return value.Push{Val: value.FromBig(tok.Literal.(*big.Int))}, nil
	case token.FLOAT:
		p.advance()
		return value.Push{Val: value.Float{Val: tok.Literal.(float64)}}, nil
	case token.STRING:
		p.advance()
		return value.Push{Val: value.String{Val: tok.Literal.(string)}}, nil
	case token.CHAR:
		p.advance()
		return value.Push{Val: value.Char{Val: tok.Literal.(rune)}}, nil
	case token.LBRACKET:
		return p.parseQuotation()
	case token.LBRACE:
		return p.parseSet()
	case token.SYMBOL:
		p.advance()
		name := tok.Literal.(string)
		// Boolean literals are scanned as ordinary symbols.
		switch name {
		case "true":
			return value.Push{Val: value.Boolean{Val: true}}, nil
		case "false":
			return value.Push{Val: value.Boolean{Val: false}}, nil
		}
		return value.Word{Name: name}, nil
	case token.SEMICOLON, token.PERIOD:
		p.advance()
		return nil, nil
	case token.DEFINE:
		return p.parseDefinition()
	default:
		return nil, p.unexpected(tok)
	}
}

// parseQuotation parses [ term* ], reporting a missing closer against
// the opening bracket's position.
func (p *Parser) parseQuotation() (value.Term, error) {
	open := p.advance() // [
	terms, err := p.parseTerms(map[token.TokenType]bool{token.RBRACKET: true})
	if err != nil {
		return nil, err
	}
	if p.cur().Type != token.RBRACKET {
		return nil, &diagnostics.SyntaxError{
			Msg:    "expected ']'",
			Line:   open.Line,
			Column: open.Column,
		}
	}
	p.advance() // ]
	return value.Push{Val: value.Quotation{Terms: terms}}, nil
}

// parseSet parses { member* }. Every member must be an integer literal
// in [0, 63]; duplicates merge silently.
func (p *Parser) parseSet() (value.Term, error) {
	open := p.advance() // {
	terms, err := p.parseTerms(map[token.TokenType]bool{token.RBRACE: true})
	if err != nil {
		return nil, err
	}
	if p.cur().Type != token.RBRACE {
		return nil, &diagnostics.SyntaxError{
			Msg:    "expected '}'",
			Line:   open.Line,
			Column: open.Column,
		}
	}
	p.advance() // }

	set := value.Set{}
	for _, t := range terms {
		push, ok := t.(value.Push)
		if !ok {
			return nil, &diagnostics.TypeError{
				Op:       "set",
				Expected: "integer member in range [0, 63]",
				Actual:   "symbol",
			}
		}
		n, ok := push.Val.(value.Integer)
		if !ok {
			return nil, &diagnostics.TypeError{
				Op:       "set",
				Expected: "integer member in range [0, 63]",
				Actual:   push.Val.Kind().String(),
			}
		}
		member := int64(64)
		if n.Val.IsInt64() {
			member = n.Val.Int64()
		} else if n.Val.Sign() < 0 {
			member = -1
		}
		next, ok := set.With(member)
		if !ok {
			return nil, &diagnostics.SetMemberError{Member: member}
		}
		set = next
	}
	return value.Push{Val: set}, nil
}

// parseDefinition parses DEFINE name == term* followed by '.' (or ';'
// or end of input).
func (p *Parser) parseDefinition() (value.Term, error) {
	def := p.advance() // DEFINE

	nameTok := p.cur()
	if nameTok.Type != token.SYMBOL {
		return nil, &diagnostics.SyntaxError{
			Msg:    "expected word name after DEFINE",
			Line:   def.Line,
			Column: def.Column,
		}
	}
	p.advance()

	if p.cur().Type != token.EQDEF {
		return nil, &diagnostics.SyntaxError{
			Msg:    fmt.Sprintf("expected '==' in definition of %s", nameTok.Lexeme),
			Line:   nameTok.Line,
			Column: nameTok.Column,
		}
	}
	p.advance()

	body, err := p.parseTerms(map[token.TokenType]bool{
		token.PERIOD:    true,
		token.SEMICOLON: true,
	})
	if err != nil {
		return nil, err
	}
	if t := p.cur().Type; t == token.PERIOD || t == token.SEMICOLON {
		p.advance()
	}
	return value.Def{
		Name: nameTok.Literal.(string),
		Body: value.Quotation{Terms: body},
	}, nil
}
