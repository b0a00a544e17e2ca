// SPDX-License-Identifier: Apache-2.0

package gedcom

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Pointer fragments that survive as literal text in note values. Some
// upstream parsers serialize unresolved references as JSON objects or leave
// bare @TOKEN@ tokens in the middle of otherwise plain lines.
var (
	jsonPointerRe = regexp.MustCompile(`\{[^}]*"(?:pointer|xref)"\s*:\s*"([^"]+)"[^}]*\}`)
	bareTokenRe   = regexp.MustCompile(`@[^@\s]+@`)
)

// CompileNoteText assembles the final text of a NOTE node: the node's own
// value (following pointer indirection), its CONC/CONT continuation
// children, and a rescan for pointer tokens embedded in the assembled text.
//
// visited holds the normalized ids already expanded; a node is never
// expanded twice, which both breaks reference cycles and bounds recursion
// depth by the number of distinct xrefs. Pass nil to start a fresh
// traversal, or share a set across calls to compile related notes. The
// result is always a finite string; a node that resolves to nothing yields
// "". Unresolvable tokens stay in the text as-is.
func CompileNoteText(node any, all []any, visited map[string]bool) string {
	if node == nil {
		return ""
	}
	if visited == nil {
		visited = make(map[string]bool)
	}
	// Mark the node itself before any recursion so self-references are inert.
	if self := SelfXref(node); self != "" {
		visited[self] = true
	}

	var b strings.Builder
	b.WriteString(noteBase(node, all, visited))
	for _, ch := range Children(node) {
		switch Tag(ch) {
		case "CONC":
			b.WriteString(ValueString(Value(ch)))
		case "CONT":
			b.WriteString("\n")
			b.WriteString(ValueString(Value(ch)))
		}
	}

	// Rescan the assembled text for pointer fragments a single substitution
	// pass cannot catch: JSON objects with a pointer/xref field first, then
	// bare @TOKEN@ tokens.
	out := jsonPointerRe.ReplaceAllStringFunc(b.String(), func(m string) string {
		sub := jsonPointerRe.FindStringSubmatch(m)
		if text, ok := expandRef(sub[1], all, visited); ok {
			return text
		}
		return m
	})
	out = bareTokenRe.ReplaceAllStringFunc(out, func(tok string) string {
		if text, ok := expandRef(tok, all, visited); ok {
			return text
		}
		return tok
	})
	return out
}

// expandRef resolves a pointer token to the compiled text of its target.
// The target is marked visited before compiling so re-entry is impossible.
// Returns false when the reference does not resolve or was already expanded.
func expandRef(ref string, all []any, visited map[string]bool) (string, bool) {
	target := FindByXref(all, ref)
	if target == nil {
		return "", false
	}
	key := recordXref(target)
	if key == "" || visited[key] {
		return "", false
	}
	visited[key] = true
	return CompileNoteText(target, all, visited), true
}

// noteBase resolves the node's own value into text.
func noteBase(node any, all []any, visited map[string]bool) string {
	raw := Value(node)
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return noteBaseString(v, all, visited)
	case map[string]any, map[any]any:
		if ref, ok := field(v, "pointer", "xref"); ok {
			if text, expanded := expandRef(NormalizeXref(ref), all, visited); expanded && text != "" {
				return text
			}
		}
		return ValueString(v)
	default:
		return ValueString(v)
	}
}

// noteBaseString handles a string-valued note. Multi-line values are
// treated line by line: a line that parses as JSON with a pointer field, or
// that is a bare @TOKEN@, is resolved; anything else is kept literally.
func noteBaseString(s string, all []any, visited map[string]bool) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}

	if strings.Contains(trimmed, "\n") {
		var parts []string
		for _, line := range regexp.MustCompile(`\r?\n`).Split(trimmed, -1) {
			if resolved := noteLine(strings.TrimSpace(line), all, visited); resolved != "" {
				parts = append(parts, resolved)
			}
		}
		return strings.Join(parts, "\n")
	}

	// Single line: the whole value may be a JSON pointer object or a bare
	// pointer token.
	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		if obj, ok := parseJSONObject(trimmed); ok {
			if ref, has := field(obj, "pointer", "xref"); has {
				if text, expanded := expandRef(NormalizeXref(ref), all, visited); expanded {
					return text
				}
			}
			return ValueString(obj)
		}
	}
	if strings.HasPrefix(trimmed, "@") && strings.HasSuffix(trimmed, "@") {
		if text, expanded := expandRef(trimmed, all, visited); expanded && text != "" {
			return text
		}
	}
	return s
}

// noteLine resolves one line of a multi-line note value.
func noteLine(line string, all []any, visited map[string]bool) string {
	if line == "" {
		return ""
	}
	if obj, ok := parseJSONObject(line); ok {
		if ref, has := field(obj, "pointer", "xref"); has {
			if text, expanded := expandRef(NormalizeXref(ref), all, visited); expanded {
				return text
			}
		}
		return ValueString(obj)
	}
	if strings.HasPrefix(line, "@") && strings.HasSuffix(line, "@") {
		if text, expanded := expandRef(line, all, visited); expanded {
			return text
		}
	}
	return line
}

// parseJSONObject parses a strict JSON object, matching the upstream
// parsers' own serialization. YAML-style leniency would mis-fire on prose
// lines that merely contain a colon.
func parseJSONObject(s string) (map[string]any, bool) {
	if !strings.HasPrefix(s, "{") {
		return nil, false
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return nil, false
	}
	return obj, true
}
