// SPDX-License-Identifier: Apache-2.0

package gedcom

import (
	"github.com/google/uuid"

	"github.com/gedmapproj/gedmap-mcp/internal/place"
)

// Mapper runs one GEDCOM import pass. It is a pure function of its input
// tree plus the place catalog: safe to re-invoke on the same or modified
// input, no shared state between runs, and it never mutates the caller's
// nodes.
type Mapper struct {
	catalog []place.Place
}

// NewMapper creates a Mapper. catalog may be nil; events then map with an
// empty place id rather than failing.
func NewMapper(catalog []place.Place) *Mapper {
	return &Mapper{catalog: catalog}
}

// Map flattens the parse tree and maps it onto the unified result. root is
// a single node or a slice of roots straight from the upstream parser.
func (m *Mapper) Map(root any) Result {
	all := Collect(root)
	people, citations := MapIndividuals(all, m.catalog)
	return Result{
		RunID:     uuid.NewString(),
		People:    people,
		Families:  MapFamilies(all),
		Sources:   MapSources(all),
		Citations: citations,
	}
}
