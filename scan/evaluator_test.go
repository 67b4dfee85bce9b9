package scan

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lucasjones/reggen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linegrep/linegrep"
	"github.com/linegrep/linegrep/regexp"
)

func newEvaluator(t *testing.T, expr string, opts linegrep.Options, literals ...string) *Evaluator {
	t.Helper()
	re, err := regexp.DefaultEngine.Compile(expr, opts.IgnoreCase)
	require.NoError(t, err)
	return NewEvaluator(re, opts, literals)
}

func TestSelected(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		opts    linegrep.Options
		line    string
		matches bool
	}{
		{name: "match", expr: "cat", line: "a cat sat", matches: true},
		{name: "no match", expr: "cat", line: "no match here", matches: false},
		{name: "inverted match", expr: "cat", opts: linegrep.Options{InvertMatch: true}, line: "a cat sat", matches: false},
		{name: "inverted no match", expr: "cat", opts: linegrep.Options{InvertMatch: true}, line: "no match here", matches: true},
		{name: "ignore case", expr: "cat", opts: linegrep.Options{IgnoreCase: true}, line: "A CAT", matches: true},
		{name: "empty pattern matches everything", expr: "", line: "anything", matches: true},
		{name: "empty line", expr: "x*", line: "", matches: true},
		{name: "alternation", expr: "dog|sat", line: "a cat sat", matches: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEvaluator(t, tt.expr, tt.opts)
			assert.Equal(t, tt.matches, e.Selected(tt.line))
		})
	}
}

func TestSelectedInvertIsNegation(t *testing.T) {
	lines := []string{"", "a cat sat", "no match here", "cats cats", "CAT", "\x00cat\x00"}
	for _, expr := range []string{"cat", "^c", "x*", "s$|^n"} {
		plain := newEvaluator(t, expr, linegrep.Options{})
		inverted := newEvaluator(t, expr, linegrep.Options{InvertMatch: true})
		for _, line := range lines {
			assert.Equal(t, !plain.Selected(line), inverted.Selected(line), "expr=%q line=%q", expr, line)
		}
	}
}

func TestSpans(t *testing.T) {
	tests := []struct {
		name string
		expr string
		line string
		want []linegrep.Span
	}{
		{
			name: "two matches",
			expr: "cat",
			line: "cats cats",
			want: []linegrep.Span{{Start: 0, End: 3}, {Start: 5, End: 8}},
		},
		{
			name: "empty match at every position",
			expr: "x*",
			line: "ab",
			want: []linegrep.Span{{Start: 0, End: 0}, {Start: 1, End: 1}, {Start: 2, End: 2}},
		},
		{
			name: "empty line",
			expr: "x*",
			line: "",
			want: []linegrep.Span{{Start: 0, End: 0}},
		},
		{
			name: "non-empty then empty",
			expr: "x*",
			line: "xab",
			want: []linegrep.Span{{Start: 0, End: 1}, {Start: 2, End: 2}, {Start: 3, End: 3}},
		},
		{
			name: "adjacent",
			expr: "a",
			line: "aaa",
			want: []linegrep.Span{{Start: 0, End: 1}, {Start: 1, End: 2}, {Start: 2, End: 3}},
		},
		{
			name: "no match",
			expr: "dog",
			line: "a cat sat",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEvaluator(t, tt.expr, linegrep.Options{OnlyMatching: true})
			if diff := cmp.Diff(tt.want, e.Spans(tt.line)); diff != "" {
				t.Errorf("spans mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSpansTerminateOnEmptyMatches(t *testing.T) {
	line := strings.Repeat("ab", 500)
	for _, expr := range []string{"x*", "", "a*", "(b|)", "\\b"} {
		e := newEvaluator(t, expr, linegrep.Options{OnlyMatching: true})
		spans := e.Spans(line)
		require.NotEmpty(t, spans, expr)
		assert.LessOrEqual(t, len(spans), len(line)+1, expr)
		for i := 1; i < len(spans); i++ {
			assert.Greater(t, spans[i].Start, spans[i-1].Start, "expr=%q spans must advance", expr)
			assert.GreaterOrEqual(t, spans[i].Start, spans[i-1].End, "expr=%q spans must not overlap", expr)
		}
	}
}

func TestUnits(t *testing.T) {
	line := "cats cats"

	e := newEvaluator(t, "cat", linegrep.Options{})
	assert.Equal(t, []linegrep.Span{{Start: 0, End: 9}}, e.Units(line))

	e = newEvaluator(t, "cat", linegrep.Options{OnlyMatching: true})
	assert.Equal(t, []linegrep.Span{{Start: 0, End: 3}, {Start: 5, End: 8}}, e.Units(line))

	// Inverted match-only reports the whole line.
	e = newEvaluator(t, "dog", linegrep.Options{OnlyMatching: true, InvertMatch: true})
	require.True(t, e.Selected(line))
	assert.Equal(t, []linegrep.Span{{Start: 0, End: 9}}, e.Units(line))
}

func TestPrefilterAgreesWithRegex(t *testing.T) {
	literals := []string{"cat", "dog", "bird"}
	expr := strings.Join(literals, "|")

	filtered := newEvaluator(t, expr, linegrep.Options{}, literals...)
	unfiltered := newEvaluator(t, expr, linegrep.Options{})
	require.NotNil(t, filtered.prefilter)
	require.Nil(t, unfiltered.prefilter)

	for i := 0; i < 200; i++ {
		line, err := reggen.Generate("[a-z ]{0,12}(cat|dog|bird|cow)?[a-z ]{0,12}", 12)
		require.NoError(t, err)
		assert.Equal(t, unfiltered.Selected(line), filtered.Selected(line), "line=%q", line)
	}
}

func TestPrefilterDisabledForIgnoreCase(t *testing.T) {
	e := newEvaluator(t, "cat", linegrep.Options{IgnoreCase: true}, "cat")
	assert.Nil(t, e.prefilter)
	assert.True(t, e.Selected("CAT"))
}

func TestGeneratedLinesMatch(t *testing.T) {
	e := newEvaluator(t, "[0-9]{3}-[0-9]{4}", linegrep.Options{OnlyMatching: true})
	for i := 0; i < 50; i++ {
		line, err := reggen.Generate("[a-z]{0,8} [0-9]{3}-[0-9]{4} [a-z]{0,8}", 8)
		require.NoError(t, err)
		require.True(t, e.Selected(line), line)

		spans := e.Spans(line)
		require.Len(t, spans, 1, line)
		assert.Equal(t, 8, spans[0].Len(), line)
	}
}
