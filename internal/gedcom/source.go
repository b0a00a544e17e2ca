// SPDX-License-Identifier: Apache-2.0

package gedcom

import (
	"strings"

	"github.com/gedmapproj/gedmap-mcp/internal/citation"
)

// MapSources maps every source record in all onto Source entries. A source
// record is a SOUR node carrying its own xref; SOUR children of events are
// outgoing citations and belong to MapIndividuals. The raw title is run
// through the citation string parser to recover the structured archival
// fields.
func MapSources(all []any) []Source {
	sources := make([]Source, 0)
	for _, node := range all {
		if Tag(node) != "SOUR" || SelfXref(node) == "" {
			continue
		}
		title := childValue(node, "TITL")
		if title == "" {
			title = strings.TrimSpace(ValueString(Value(node)))
		}
		parsed := citation.Parse(title)

		sources = append(sources, Source{
			Xref:       recordXref(node),
			Title:      title,
			Author:     childValue(node, "AUTH"),
			Publisher:  childValue(node, "PUBL"),
			Repository: childValue(node, "REPO"),
			Media:      mapMedia(node),
			Archive:    parsed.Archive,
			Volume:     parsed.Volume,
			ImagePage:  parsed.ImagePage,
			Page:       parsed.Page,
			AID:        parsed.AID,
			NAD:        parsed.NAD,
			RAID:       parsed.RAID,
			Date:       parsed.Date,
		})
	}
	return sources
}
