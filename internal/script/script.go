// Package script runs the small setup and statement language used by
// benchmark cases.
//
// A setup script is a sequence of lines, each one of
//
//	import <name>[.<name>] [as <alias>]
//	<ident> = <expr>
//
// and a statement is a single call expression such as nansum_fast(a, 1).
// Expressions are numbers, names and calls; the names nan, inf and None are
// predeclared. Imports are resolved through a Resolver, normally a
// *registry.Registry.
package script

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tphakala/go-nanops/internal/registry"
)

// Errors returned while compiling or running scripts.
var (
	ErrSyntax      = errors.New("syntax error")
	ErrUnknownName = errors.New("unknown name")
	ErrNotCallable = errors.New("not callable")
)

// Resolver maps an imported name to a callable.
type Resolver interface {
	Lookup(name string) (registry.Func, error)
}

// Stmt is a compiled statement. Each call evaluates it once.
type Stmt func() error

var builtins = map[string]any{
	"nan":  math.NaN(),
	"inf":  math.Inf(1),
	"None": nil,
}

// Env holds the names bound by a setup script.
type Env struct {
	vars     map[string]any
	resolver Resolver
}

// Setup runs src against a fresh environment and returns it.
func Setup(src string, r Resolver) (*Env, error) {
	e := &Env{vars: make(map[string]any), resolver: r}
	for i, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := e.exec(line, i+1); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Get returns the value bound to name.
func (e *Env) Get(name string) (any, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Compile parses stmt, which must be a call expression, and resolves its
// names against the environment.
func (e *Env) Compile(stmt string) (Stmt, error) {
	p := newParser(stmt, 1)
	x := p.expr()
	p.expect(eof)
	if p.err != nil {
		return nil, p.err
	}
	if _, ok := x.(*callExpr); !ok {
		return nil, fmt.Errorf("%w: statement %q is not a call", ErrSyntax, stmt)
	}
	eval, err := e.compile(x)
	if err != nil {
		return nil, err
	}
	return func() error {
		_, err := eval()
		return err
	}, nil
}

func (e *Env) exec(line string, n int) error {
	p := newParser(line, n)
	if p.s.TokenText() == "import" && p.tok == ident {
		p.next()
		path := p.dotted()
		alias := path[strings.LastIndexByte(path, '.')+1:]
		if p.tok == ident && p.s.TokenText() == "as" {
			p.next()
			alias = p.name()
		}
		p.expect(eof)
		if p.err != nil {
			return p.err
		}
		fn, err := e.resolver.Lookup(path)
		if err != nil {
			return fmt.Errorf("line %d: %w: import %s: %w", n, ErrUnknownName, path, err)
		}
		e.vars[alias] = fn
		return nil
	}

	target := p.name()
	p.expect('=')
	x := p.expr()
	p.expect(eof)
	if p.err != nil {
		return p.err
	}
	eval, err := e.compile(x)
	if err != nil {
		return fmt.Errorf("line %d: %w", n, err)
	}
	v, err := eval()
	if err != nil {
		return fmt.Errorf("line %d: %s: %w", n, target, err)
	}
	e.vars[target] = v
	return nil
}

type evalFunc func() (any, error)

// compile turns x into a closure. Names are resolved now; calls run each
// time the closure does.
func (e *Env) compile(x expr) (evalFunc, error) {
	switch x := x.(type) {
	case *literalExpr:
		v := x.value
		return func() (any, error) { return v, nil }, nil
	case *nameExpr:
		v, err := e.resolve(x.name)
		if err != nil {
			return nil, err
		}
		return func() (any, error) { return v, nil }, nil
	case *callExpr:
		return e.compileCall(x)
	default:
		return nil, fmt.Errorf("%w: unexpected expression %T", ErrSyntax, x)
	}
}

func (e *Env) compileCall(x *callExpr) (evalFunc, error) {
	v, err := e.resolve(x.fn)
	if err != nil {
		return nil, err
	}
	fn, ok := v.(registry.Func)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotCallable, x.fn)
	}

	args := make([]any, len(x.args))
	var dynamic []int
	evals := make([]evalFunc, len(x.args))
	for i, arg := range x.args {
		if evals[i], err = e.compile(arg); err != nil {
			return nil, err
		}
		if _, isCall := arg.(*callExpr); isCall {
			dynamic = append(dynamic, i)
			continue
		}
		args[i], _ = evals[i]()
	}
	if len(dynamic) == 0 {
		return func() (any, error) { return fn(args...) }, nil
	}
	return func() (any, error) {
		call := make([]any, len(args))
		copy(call, args)
		for _, i := range dynamic {
			v, err := evals[i]()
			if err != nil {
				return nil, err
			}
			call[i] = v
		}
		return fn(call...)
	}, nil
}

func (e *Env) resolve(name string) (any, error) {
	if v, ok := e.vars[name]; ok {
		return v, nil
	}
	if v, ok := builtins[name]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownName, name)
}
