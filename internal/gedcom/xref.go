// SPDX-License-Identifier: Apache-2.0

package gedcom

import (
	"fmt"
	"strings"
)

// NormalizeXref canonicalizes any xref-like value to a bare id string.
// Accepted shapes: a bare id ("I1"), a wrapped token ("@I1@"), or a wrapper
// object carrying the id under xref_id, xref, pointer or id. A single pair
// of surrounding @ is stripped, so the function is idempotent on anything it
// resolves. Returns "" for empty or unrecognizable input.
func NormalizeXref(x any) string {
	var s string
	switch v := x.(type) {
	case nil:
		return ""
	case string:
		s = v
	case map[string]any, map[any]any:
		if f, ok := field(v, "xref_id", "xref", "pointer", "id"); ok {
			return NormalizeXref(f)
		}
		if inner := Value(v); inner != nil {
			return NormalizeXref(inner)
		}
		return ""
	default:
		s = fmt.Sprintf("%v", v)
	}
	s = strings.TrimSpace(s)
	if len(s) >= 2 && strings.HasPrefix(s, "@") && strings.HasSuffix(s, "@") {
		s = s[1 : len(s)-1]
	}
	return s
}

// recordXref returns the id a record is known by: its own xref when the
// parser attached one, otherwise whatever its value normalizes to. Some
// parsers put the record id of a level-0 line in the value slot.
func recordXref(n any) string {
	if x := SelfXref(n); x != "" {
		return x
	}
	return NormalizeXref(Value(n))
}

// pointerXref normalizes an outgoing reference held by a node, preferring
// the value slot over the node's own pointer fields. HUSB/WIFE/CHIL/SOUR
// children show up both ways in the wild.
func pointerXref(n any) string {
	if x := NormalizeXref(Value(n)); x != "" {
		return x
	}
	return NormalizeXref(n)
}

// FindByXref returns the first node in all whose id normalizes to the same
// bare id as xref, or nil when the reference does not resolve. An
// unresolvable reference is a normal outcome, not an error.
func FindByXref(all []any, xref any) any {
	want := NormalizeXref(xref)
	if want == "" {
		return nil
	}
	for _, n := range all {
		if recordXref(n) == want {
			return n
		}
	}
	return nil
}
