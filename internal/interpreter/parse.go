package interpreter

import (
	"fmt"
	"strconv"
	"strings"
	"text/scanner"
)

// Parse reads a program in the syntax produced by Node.String:
//
//	bits_to_text(rotation_decode(@0, get_int("4")))
//
// Calls are identifiers followed by a parenthesised argument list, @N refers to
// input N, strings are Go-quoted and integers may carry a leading minus sign.
func Parse(src string) (Node, error) {
	p := &parser{}

	p.s.Init(strings.NewReader(src))
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanStrings
	p.s.Error = func(s *scanner.Scanner, msg string) {
		if p.err == nil {
			p.err = fmt.Errorf("%w: %s: %s", ErrSyntax, s.Pos(), msg)
		}
	}

	p.next()

	node := p.expr()

	if p.err == nil && p.tok != scanner.EOF {
		p.fail("unexpected %s after program", scanner.TokenString(p.tok))
	}

	if p.err != nil {
		return nil, p.err
	}

	return node, nil
}

type parser struct {
	s   scanner.Scanner
	tok rune
	err error
}

func (p *parser) next() {
	p.tok = p.s.Scan()
}

func (p *parser) fail(format string, args ...any) {
	if p.err == nil {
		p.err = fmt.Errorf("%w: %s: %s", ErrSyntax, p.s.Position, fmt.Sprintf(format, args...))
	}
}

func (p *parser) expect(tok rune) {
	if p.tok != tok {
		p.fail("expected %s, got %s", scanner.TokenString(tok), scanner.TokenString(p.tok))

		return
	}

	p.next()
}

func (p *parser) expr() Node {
	if p.err != nil {
		return nil
	}

	switch p.tok {
	case '@':
		p.next()

		if p.tok != scanner.Int {
			p.fail("expected input index after @")

			return nil
		}

		idx, err := strconv.Atoi(p.s.TokenText())
		if err != nil {
			p.fail("input index %s: %v", p.s.TokenText(), err)

			return nil
		}

		p.next()

		return Input(idx)
	case scanner.String:
		s, err := strconv.Unquote(p.s.TokenText())
		if err != nil {
			p.fail("string literal %s: %v", p.s.TokenText(), err)

			return nil
		}

		p.next()

		return Lit(Text(s))
	case '-', scanner.Int:
		return p.integer()
	case scanner.Ident:
		return p.call()
	default:
		p.fail("unexpected %s", scanner.TokenString(p.tok))

		return nil
	}
}

func (p *parser) integer() Node {
	sign := ""

	if p.tok == '-' {
		sign = "-"

		p.next()
	}

	if p.tok != scanner.Int {
		p.fail("expected integer, got %s", scanner.TokenString(p.tok))

		return nil
	}

	n, err := strconv.ParseInt(sign+p.s.TokenText(), 0, 64)
	if err != nil {
		p.fail("integer literal %s%s: %v", sign, p.s.TokenText(), err)

		return nil
	}

	p.next()

	return Lit(Int(n))
}

func (p *parser) call() Node {
	name := p.s.TokenText()

	p.next()
	p.expect('(')

	var args []Node

	for p.err == nil && p.tok != ')' {
		args = append(args, p.expr())

		if p.tok != ',' {
			break
		}

		p.next()
	}

	p.expect(')')

	if p.err != nil {
		return nil
	}

	return Apply(name, args...)
}
