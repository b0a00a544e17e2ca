// SPDX-License-Identifier: Apache-2.0

package gedcom

import "reflect"

// Collect flattens a root node, or a slice of roots, into a single list of
// every reachable node that carries a tag. Each node is visited exactly
// once; reference-typed nodes are tracked by identity so a structurally
// cyclic child graph cannot loop the traversal. GEDCOM trees are not
// expected to be cyclic at the structural level, only through reference
// pointers, but malformed input must not hang the import.
func Collect(root any) []any {
	var queue []any
	if roots, ok := root.([]any); ok {
		queue = append(queue, roots...)
	} else if root != nil {
		queue = append(queue, root)
	}

	seen := make(map[uintptr]bool)
	var out []any
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n == nil {
			continue
		}
		if p, ok := identity(n); ok {
			if seen[p] {
				continue
			}
			seen[p] = true
		}
		if Tag(n) != "" {
			out = append(out, n)
		}
		queue = append(queue, Children(n)...)
	}
	return out
}

// identity returns a stable identity key for reference-typed values. Plain
// values cannot participate in a cycle and need no guard.
func identity(n any) (uintptr, bool) {
	v := reflect.ValueOf(n)
	switch v.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return v.Pointer(), true
	}
	return 0, false
}
