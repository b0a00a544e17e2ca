// SPDX-License-Identifier: Apache-2.0

package gedcom_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gedmapproj/gedmap-mcp/internal/gedcom"
)

func TestCompileNoteText_PlainValue(t *testing.T) {
	note := rec("NOTE", "Just some text")
	assert.Equal(t, "Just some text", gedcom.CompileNoteText(note, nil, nil))
}

func TestCompileNoteText_ConcAndCont(t *testing.T) {
	tests := []struct {
		name string
		node any
		want string
	}{
		{
			"CONC concatenates without break",
			rec("NOTE", "Hello", rec("CONC", "World")),
			"HelloWorld",
		},
		{
			"CONT inserts newline",
			rec("NOTE", "Hello", rec("CONT", "World")),
			"Hello\nWorld",
		},
		{
			"mixed continuations in child order",
			rec("NOTE", "a", rec("CONC", "b"), rec("CONT", "c"), rec("CONC", "d")),
			"ab\ncd",
		},
		{
			"empty base with CONT",
			rec("NOTE", nil, rec("CONT", "line")),
			"\nline",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gedcom.CompileNoteText(tt.node, nil, nil))
		})
	}
}

func TestCompileNoteText_PointerObjectValue(t *testing.T) {
	target := recX("NOTE", "@T1@", "Target text")
	all := []any{target}

	note := rec("NOTE", map[string]any{"pointer": "@T1@"})
	assert.Equal(t, "Target text", gedcom.CompileNoteText(note, all, nil))
}

func TestCompileNoteText_BareTokenValue(t *testing.T) {
	target := recX("NOTE", "@T1@", "Target text")
	note := rec("NOTE", "@T1@")
	assert.Equal(t, "Target text", gedcom.CompileNoteText(note, []any{target}, nil))
}

func TestCompileNoteText_SingleLineJSONValue(t *testing.T) {
	target := recX("NOTE", "@T1@", "Target text")
	note := rec("NOTE", `{"pointer":"@T1@"}`)
	assert.Equal(t, "Target text", gedcom.CompileNoteText(note, []any{target}, nil))
}

func TestCompileNoteText_MultilineMixed(t *testing.T) {
	t1 := recX("NOTE", "@T1@", "first target")
	t2 := recX("NOTE", "@T2@", "second target")
	all := []any{t1, t2}

	note := rec("NOTE", "plain line\n{\"pointer\":\"@T1@\"}\n@T2@")
	got := gedcom.CompileNoteText(note, all, nil)
	assert.Equal(t, "plain line\nfirst target\nsecond target", got)
}

func TestCompileNoteText_EmbeddedTokenRescan(t *testing.T) {
	target := recX("NOTE", "@T1@", "the details")
	note := rec("NOTE", "See @T1@ for more")
	got := gedcom.CompileNoteText(note, []any{target}, nil)
	assert.Equal(t, "See the details for more", got)
}

func TestCompileNoteText_EmbeddedJSONRescan(t *testing.T) {
	target := recX("NOTE", "@T1@", "resolved")
	note := rec("NOTE", "prefix ", rec("CONC", `{"pointer":"@T1@"} suffix`))
	got := gedcom.CompileNoteText(note, []any{target}, nil)
	assert.Equal(t, "prefix resolved suffix", got)
}

func TestCompileNoteText_UnresolvableTokenStaysLiteral(t *testing.T) {
	note := rec("NOTE", "see @MISSING@ here")
	assert.Equal(t, "see @MISSING@ here", gedcom.CompileNoteText(note, nil, nil))
}

func TestCompileNoteText_TwoNodeCycleTerminates(t *testing.T) {
	a := recX("NOTE", "@A@", map[string]any{"pointer": "@B@"})
	b := recX("NOTE", "@B@", map[string]any{"pointer": "@A@"})
	all := []any{a, b}

	first := gedcom.CompileNoteText(a, all, nil)
	second := gedcom.CompileNoteText(a, all, nil)

	assert.Equal(t, first, second, "compilation must be deterministic")
	assert.Less(t, len(first), 1024, "cycle must degrade to finite text")
}

func TestCompileNoteText_SelfReferenceIsInert(t *testing.T) {
	a := recX("NOTE", "@A@", "before @A@ after")
	got := gedcom.CompileNoteText(a, []any{a}, nil)
	assert.Equal(t, "before @A@ after", got)
}

func TestCompileNoteText_SharedVisitedSetSkipsExpandedNotes(t *testing.T) {
	target := recX("NOTE", "@T1@", "once only")
	all := []any{target}
	visited := map[string]bool{}

	first := gedcom.CompileNoteText(rec("NOTE", "@T1@"), all, visited)
	second := gedcom.CompileNoteText(rec("NOTE", "@T1@"), all, visited)

	assert.Equal(t, "once only", first)
	assert.NotContains(t, second, "once only")
}

func TestCompileNoteText_PointerChainWithContinuations(t *testing.T) {
	leaf := recX("NOTE", "@T2@", "leaf")
	mid := recX("NOTE", "@T1@", map[string]any{"pointer": "@T2@"}, rec("CONC", " plus"))
	all := []any{mid, leaf}

	got := gedcom.CompileNoteText(rec("NOTE", "@T1@"), all, nil)
	assert.Equal(t, "leaf plus", got)
}

func TestCompileNoteText_NilNodeYieldsEmpty(t *testing.T) {
	assert.Equal(t, "", gedcom.CompileNoteText(nil, nil, nil))
	assert.Equal(t, "", gedcom.CompileNoteText(rec("NOTE", nil), nil, nil))
}

func TestCompileNoteText_LinearPointerChain(t *testing.T) {
	// Depth is bounded by the number of distinct xrefs: each link is
	// expanded exactly once.
	var all []any
	for i := 1; i <= 40; i++ {
		id := "@N" + strconv.Itoa(i) + "@"
		next := "@N" + strconv.Itoa(i+1) + "@"
		if i == 40 {
			all = append(all, recX("NOTE", id, "end"))
		} else {
			all = append(all, recX("NOTE", id, map[string]any{"pointer": next}))
		}
	}
	assert.Equal(t, "end", gedcom.CompileNoteText(all[0], all, nil))
}
