package script

import (
	"fmt"
	"strconv"
	"strings"
	"text/scanner"
)

const (
	eof   = scanner.EOF
	ident = scanner.Ident
)

type expr interface{ isExpr() }

type (
	literalExpr struct{ value float64 }
	nameExpr    struct{ name string }
	callExpr    struct {
		fn   string
		args []expr
	}
)

func (*literalExpr) isExpr() {}
func (*nameExpr) isExpr()    {}
func (*callExpr) isExpr()    {}

// parser is a recursive-descent parser over one line. The first error is
// kept in err and later productions become no-ops.
type parser struct {
	s    scanner.Scanner
	tok  rune
	line int
	src  string
	err  error
}

func newParser(src string, line int) *parser {
	p := &parser{line: line, src: src}
	p.s.Init(strings.NewReader(src))
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats
	p.s.Error = func(_ *scanner.Scanner, msg string) { p.fail("%s", msg) }
	p.next()
	return p
}

func (p *parser) next() {
	p.tok = p.s.Scan()
}

func (p *parser) fail(format string, args ...any) {
	if p.err == nil {
		p.err = fmt.Errorf("%w: line %d col %d in %q: %s",
			ErrSyntax, p.line, p.s.Position.Column, p.src, fmt.Sprintf(format, args...))
	}
}

func (p *parser) expect(tok rune) {
	if p.err != nil {
		return
	}
	if p.tok != tok {
		p.fail("expected %s, found %s", scanner.TokenString(tok), p.found())
		return
	}
	p.next()
}

func (p *parser) found() string {
	if p.tok == eof {
		return "end of line"
	}
	return strconv.Quote(p.s.TokenText())
}

func (p *parser) name() string {
	if p.err != nil {
		return ""
	}
	if p.tok != ident {
		p.fail("expected name, found %s", p.found())
		return ""
	}
	s := p.s.TokenText()
	p.next()
	return s
}

// dotted parses name{.name}.
func (p *parser) dotted() string {
	parts := []string{p.name()}
	for p.err == nil && p.tok == '.' {
		p.next()
		parts = append(parts, p.name())
	}
	return strings.Join(parts, ".")
}

func (p *parser) expr() expr {
	if p.err != nil {
		return nil
	}
	switch p.tok {
	case '-':
		p.next()
		lit, ok := p.expr().(*literalExpr)
		if !ok {
			p.fail("unary minus needs a number")
			return nil
		}
		return &literalExpr{value: -lit.value}
	case scanner.Int, scanner.Float:
		v, err := strconv.ParseFloat(p.s.TokenText(), 64)
		if err != nil {
			p.fail("bad number %s", p.found())
			return nil
		}
		p.next()
		return &literalExpr{value: v}
	case ident:
		name := p.dotted()
		if p.tok != '(' {
			return &nameExpr{name: name}
		}
		p.next()
		call := &callExpr{fn: name}
		for p.err == nil && p.tok != ')' {
			call.args = append(call.args, p.expr())
			if p.tok != ',' {
				break
			}
			p.next()
		}
		p.expect(')')
		return call
	default:
		p.fail("unexpected %s", p.found())
		return nil
	}
}
