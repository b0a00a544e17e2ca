// SPDX-License-Identifier: Apache-2.0

package gedcom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gedmapproj/gedmap-mcp/internal/gedcom"
)

func TestNormalizeXref(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"bare id", "I1", "I1"},
		{"wrapped id", "@I1@", "I1"},
		{"whitespace", "  @I1@  ", "I1"},
		{"xref_id field", map[string]any{"xref_id": "@I1@"}, "I1"},
		{"xref field", map[string]any{"xref": "I1"}, "I1"},
		{"pointer field", map[string]any{"pointer": "@I1@"}, "I1"},
		{"id field", map[string]any{"id": "I1"}, "I1"},
		{"xref_id wins over pointer", map[string]any{"xref_id": "I1", "pointer": "@I2@"}, "I1"},
		{"falls back to value", map[string]any{"value": "@I1@"}, "I1"},
		{"numeric value", 42, "42"},
		{"empty string", "", ""},
		{"lone at sign passes through", "@", "@"},
		{"unbalanced token passes through", "@I1", "@I1"},
		{"nil", nil, ""},
		{"empty map", map[string]any{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gedcom.NormalizeXref(tt.in))
		})
	}
}

func TestNormalizeXref_WrappedAndBareAgree(t *testing.T) {
	assert.Equal(t, gedcom.NormalizeXref("@I1@"), gedcom.NormalizeXref("I1"))
	assert.Equal(t, "I1", gedcom.NormalizeXref("@I1@"))
}

func TestNormalizeXref_Idempotent(t *testing.T) {
	inputs := []any{"I1", "@I1@", " @S12@ ", map[string]any{"pointer": "@T5@"}, "plain text"}
	for _, in := range inputs {
		once := gedcom.NormalizeXref(in)
		assert.Equal(t, once, gedcom.NormalizeXref(once), "normalize(normalize(%v))", in)
	}
}

func TestFindByXref(t *testing.T) {
	note := recX("NOTE", "@T1@", "the text")
	all := []any{recX("INDI", "@I1@", nil), note}

	assert.Equal(t, note, gedcom.FindByXref(all, "T1"))
	assert.Equal(t, note, gedcom.FindByXref(all, "@T1@"))
	assert.Equal(t, note, gedcom.FindByXref(all, map[string]any{"pointer": "@T1@"}))
	assert.Nil(t, gedcom.FindByXref(all, "T9"))
	assert.Nil(t, gedcom.FindByXref(all, ""))
	assert.Nil(t, gedcom.FindByXref(nil, "T1"))
}
