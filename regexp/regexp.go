package regexp

import (
	"fmt"
	stdlib "regexp"

	gore2 "github.com/wasilibs/go-re2"

	"github.com/linegrep/linegrep"
)

// engine is an internal interface satisfied by both *stdlib.Regexp and *gore2.Regexp.
type engine interface {
	MatchString(s string) bool
	FindStringIndex(s string) []int
	String() string
}

// Regexp wraps a compiled regular expression. It is a concrete struct
// so that *Regexp works as a normal pointer (not pointer-to-interface).
// A Regexp is never modified after compilation and is safe to share.
type Regexp struct {
	e      engine
	engine Engine
}

func (r *Regexp) MatchString(s string) bool {
	return r.e.MatchString(s)
}

func (r *Regexp) String() string {
	return r.e.String()
}

// Engine returns the engine the expression was compiled with.
func (r *Regexp) Engine() Engine {
	return r.engine
}

// FindFrom returns the leftmost match in text that starts at or after
// offset. The search runs on text[offset:], so anchors treat offset as the
// beginning of the text.
func (r *Regexp) FindFrom(text string, offset int) (linegrep.Span, bool) {
	if offset < 0 || offset > len(text) {
		return linegrep.Span{}, false
	}
	loc := r.e.FindStringIndex(text[offset:])
	if loc == nil {
		return linegrep.Span{}, false
	}
	return linegrep.Span{Start: offset + loc[0], End: offset + loc[1]}, true
}

// Engine names a regex implementation.
type Engine string

const (
	// Stdlib is Go's regexp package.
	Stdlib Engine = "stdlib"
	// RE2 is the RE2 library compiled to WebAssembly.
	RE2 Engine = "re2"
)

// DefaultEngine is used when no engine is configured.
const DefaultEngine = Stdlib

// ParseEngine validates an engine name. The empty string selects
// DefaultEngine.
func ParseEngine(name string) (Engine, error) {
	switch Engine(name) {
	case "":
		return DefaultEngine, nil
	case Stdlib, RE2:
		return Engine(name), nil
	default:
		return "", fmt.Errorf("%w: unknown regex engine %q", linegrep.ErrConfig, name)
	}
}

// Compile compiles expr with the engine. When caseInsensitive is set the
// whole expression is compiled with the (?i) flag. Syntax errors are
// returned as *linegrep.CompileError.
func (e Engine) Compile(expr string, caseInsensitive bool) (*Regexp, error) {
	src := expr
	if caseInsensitive {
		src = "(?i)" + expr
	}

	var (
		impl engine
		err  error
	)
	switch e {
	case RE2:
		impl, err = compileRE2(src)
	case Stdlib, "":
		impl, err = compileStdlib(src)
	default:
		return nil, fmt.Errorf("%w: unknown regex engine %q", linegrep.ErrConfig, string(e))
	}
	if err != nil {
		return nil, &linegrep.CompileError{Expr: expr, Err: err}
	}
	if e == "" {
		e = DefaultEngine
	}
	return &Regexp{e: impl, engine: e}, nil
}

// Separate constructors avoid storing a typed nil pointer in the interface.
func compileStdlib(src string) (engine, error) {
	re, err := stdlib.Compile(src)
	if err != nil {
		return nil, err
	}
	return re, nil
}

func compileRE2(src string) (engine, error) {
	re, err := gore2.Compile(src)
	if err != nil {
		return nil, err
	}
	return re, nil
}

// MustCompile compiles a case-sensitive expression with the default engine
// and panics on error. It is meant for expressions fixed at build time.
func MustCompile(str string) *Regexp {
	re, err := DefaultEngine.Compile(str, false)
	if err != nil {
		panic("regexp: Compile(" + str + "): " + err.Error())
	}
	return re
}
