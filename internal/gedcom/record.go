// SPDX-License-Identifier: Apache-2.0

// Package gedcom maps a raw GEDCOM parse tree onto the normalized domain
// model consumed by the rest of the application. The input node shape is not
// fixed: depending on the upstream parser, a node's tag may live under "tag"
// or "type", its value under "value", "data", "text", "_" or "pointer", and
// its children under "children", "records" or "items". Everything in this
// package goes through the accessor functions below instead of touching raw
// fields, so the rest of the mapping code stays shape-agnostic.
package gedcom

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Field probe orders. First hit wins.
var (
	tagKeys      = []string{"tag", "type"}
	valueKeys    = []string{"value", "data", "text", "_", "pointer"}
	childrenKeys = []string{"children", "records", "items"}
	selfXrefKeys = []string{"xref_id", "xref", "id"}
)

// field probes a raw node for the first non-nil entry among keys. Raw nodes
// decode to map[string]any via goccy/go-yaml; map[any]any is handled too for
// parsers that hand over trees decoded by stricter YAML libraries.
func field(n any, keys ...string) (any, bool) {
	switch m := n.(type) {
	case map[string]any:
		for _, k := range keys {
			if v, ok := m[k]; ok && v != nil {
				return v, true
			}
		}
	case map[any]any:
		for _, k := range keys {
			if v, ok := m[k]; ok && v != nil {
				return v, true
			}
		}
	}
	return nil, false
}

// Tag returns the node's GEDCOM tag, or "" when the node carries none.
func Tag(n any) string {
	v, ok := field(n, tagKeys...)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// Value returns the node's raw value, which may itself be a pointer-shaped
// object. Returns nil on a total miss.
func Value(n any) any {
	v, ok := field(n, valueKeys...)
	if !ok {
		return nil
	}
	return v
}

// Children returns the node's child nodes in document order, or an empty
// slice when it has none.
func Children(n any) []any {
	v, ok := field(n, childrenKeys...)
	if !ok {
		return nil
	}
	kids, _ := v.([]any)
	return kids
}

// SelfXref returns the cross-reference id the parser attached to the node
// itself (a record id, not an outgoing pointer), or "".
func SelfXref(n any) string {
	if v, ok := field(n, selfXrefKeys...); ok {
		return NormalizeXref(v)
	}
	return ""
}

// ValueString renders an arbitrary node value as text. Wrapper objects
// prefer their common text fields; anything else falls back to a JSON dump
// so pointer fragments survive into the note compiler's rescan pass.
func ValueString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case map[string]any, map[any]any:
		if f, ok := field(t, "value", "text", "name", "TITL", "FILE"); ok {
			if s, isStr := f.(string); isStr {
				return s
			}
		}
		if b, err := json.Marshal(t); err == nil {
			return string(b)
		}
		return fmt.Sprintf("%v", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// childByTag returns the first direct child with the given tag, or nil.
func childByTag(n any, tag string) any {
	for _, ch := range Children(n) {
		if Tag(ch) == tag {
			return ch
		}
	}
	return nil
}

// childrenByTag returns every direct child with the given tag, in order.
func childrenByTag(n any, tag string) []any {
	var out []any
	for _, ch := range Children(n) {
		if Tag(ch) == tag {
			out = append(out, ch)
		}
	}
	return out
}

// childValue returns the rendered value of the first direct child with the
// given tag, or "".
func childValue(n any, tag string) string {
	ch := childByTag(n, tag)
	if ch == nil {
		return ""
	}
	return strings.TrimSpace(ValueString(Value(ch)))
}
