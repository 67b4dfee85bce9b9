package cmd

import (
	"strings"

	"github.com/spf13/pflag"
)

type patternKind int

const (
	patternLiteral patternKind = iota
	patternFile
)

// patternArg is one -e or -f occurrence.
type patternArg struct {
	kind  patternKind
	value string
}

// patternArgs records -e and -f values in command-line order. pflag calls
// Set once per occurrence, so two flags sharing one slice keep the order
// in which they were given.
type patternArgs struct {
	args []patternArg
}

func (p *patternArgs) flag(kind patternKind) pflag.Value {
	return &patternFlag{kind: kind, into: p}
}

func (p *patternArgs) empty() bool {
	return len(p.args) == 0
}

type patternFlag struct {
	kind patternKind
	into *patternArgs
}

func (f *patternFlag) Set(value string) error {
	f.into.args = append(f.into.args, patternArg{kind: f.kind, value: value})
	return nil
}

func (f *patternFlag) String() string {
	var values []string
	for _, a := range f.into.args {
		if a.kind == f.kind {
			values = append(values, a.value)
		}
	}
	return strings.Join(values, ",")
}

func (f *patternFlag) Type() string {
	if f.kind == patternFile {
		return "file"
	}
	return "pattern"
}
