package equation

import (
	"fmt"
	"strings"
	"unicode"
)

// Expression is the term inventory of a parsed arithmetic expression:
// the field names and function calls it references, each in first-seen
// order without duplicates. Numeric literals are not recorded.
type Expression struct {
	Fields    []string
	Functions []string
}

// Parse analyzes an arithmetic expression and collects its terms.
// Supports: + - * /, parentheses, numeric literals (integer and decimal),
// field names (identifiers with '.' and '_'), and function calls whose
// arguments are fields or literals.
// Example: "count() / (p95(transaction.duration) + 100)".
func Parse(expr string) (*Expression, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("empty expression")
	}

	p := &exprParser{
		input:     expr,
		out:       &Expression{},
		seenField: map[string]bool{},
		seenFunc:  map[string]bool{},
	}
	if err := p.parseExpr(); err != nil {
		return nil, err
	}
	if p.pos < len(p.input) {
		return nil, fmt.Errorf("unexpected character at position %d: %c", p.pos, p.input[p.pos])
	}
	return p.out, nil
}

type exprParser struct {
	input     string
	pos       int
	out       *Expression
	seenField map[string]bool
	seenFunc  map[string]bool
}

func (p *exprParser) parseExpr() error {
	return p.parseAddSub()
}

func (p *exprParser) parseAddSub() error {
	if err := p.parseMulDiv(); err != nil {
		return err
	}
	for {
		p.skipSpaces()
		if p.pos >= len(p.input) {
			return nil
		}
		op := p.input[p.pos]
		if op != '+' && op != '-' {
			return nil
		}
		p.pos++
		if err := p.parseMulDiv(); err != nil {
			return err
		}
	}
}

func (p *exprParser) parseMulDiv() error {
	if err := p.parseAtom(); err != nil {
		return err
	}
	for {
		p.skipSpaces()
		if p.pos >= len(p.input) {
			return nil
		}
		op := p.input[p.pos]
		if op != '*' && op != '/' {
			return nil
		}
		p.pos++
		if err := p.parseAtom(); err != nil {
			return err
		}
	}
}

func (p *exprParser) parseAtom() error {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return fmt.Errorf("unexpected end of expression")
	}

	ch := p.input[p.pos]

	// Parenthesized sub-expression
	if ch == '(' {
		p.pos++
		if err := p.parseExpr(); err != nil {
			return err
		}
		p.skipSpaces()
		if p.pos >= len(p.input) || p.input[p.pos] != ')' {
			return fmt.Errorf("expected ')' at position %d", p.pos)
		}
		p.pos++
		return nil
	}

	// Numeric literal
	if unicode.IsDigit(rune(ch)) {
		p.scanNumber()
		return nil
	}

	// Field term or function call
	if unicode.IsLetter(rune(ch)) || ch == '_' {
		start := p.pos
		p.scanIdent()
		name := p.input[start:p.pos]
		if p.pos < len(p.input) && p.input[p.pos] == '(' {
			if err := p.scanCallArgs(); err != nil {
				return err
			}
			p.recordFunction(p.input[start:p.pos])
			return nil
		}
		p.recordField(name)
		return nil
	}

	return fmt.Errorf("unexpected character '%c' at position %d", ch, p.pos)
}

// scanCallArgs consumes "(arg, arg, ...)" from the current position. The
// whole call text, arguments included, becomes one function term.
func (p *exprParser) scanCallArgs() error {
	p.pos++ // skip '('
	for {
		p.skipSpaces()
		if p.pos >= len(p.input) {
			return fmt.Errorf("unterminated function call at position %d", p.pos)
		}
		switch ch := p.input[p.pos]; {
		case ch == ')':
			p.pos++
			return nil
		case ch == ',':
			p.pos++
		case unicode.IsDigit(rune(ch)):
			p.scanNumber()
		case unicode.IsLetter(rune(ch)) || ch == '_':
			p.scanIdent()
		default:
			return fmt.Errorf("unexpected character '%c' in function call at position %d", ch, p.pos)
		}
	}
}

func (p *exprParser) scanNumber() {
	for p.pos < len(p.input) && (unicode.IsDigit(rune(p.input[p.pos])) || p.input[p.pos] == '.') {
		p.pos++
	}
}

func (p *exprParser) scanIdent() {
	for p.pos < len(p.input) {
		ch := rune(p.input[p.pos])
		if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) && ch != '_' && ch != '.' {
			return
		}
		p.pos++
	}
}

func (p *exprParser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *exprParser) recordField(name string) {
	if p.seenField[name] {
		return
	}
	p.seenField[name] = true
	p.out.Fields = append(p.out.Fields, name)
}

func (p *exprParser) recordFunction(call string) {
	if p.seenFunc[call] {
		return
	}
	p.seenFunc[call] = true
	p.out.Functions = append(p.out.Functions, call)
}
