// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gedmapproj/gedmap-mcp/internal/gedcom"
	"github.com/gedmapproj/gedmap-mcp/internal/place"
	"github.com/gedmapproj/gedmap-mcp/internal/schema"
)

// MetadataMapGedcom describes the map_gedcom tool.
var MetadataMapGedcom = &mcp.Tool{
	Name: "map_gedcom",
	Description: "Map a parsed GEDCOM node tree onto the normalized genealogy model " +
		"{people, families, sources, citations}. The tree is the YAML or JSON output of an " +
		"upstream GEDCOM parser; node field names vary by parser (tag/type, value/data/text/pointer, " +
		"children/records/items) and all variants are accepted. Cross-references are normalized to " +
		"bare ids, NOTE pointer chains and CONC/CONT continuations are resolved cycle-safely, and " +
		"source titles are broken into structured archival fields. Optionally resolves event places " +
		"against a supplied place catalog by exact, case-insensitive hierarchical match.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"tree"},
		"properties": map[string]interface{}{
			"tree": map[string]interface{}{
				"type":        "string",
				"description": "Parsed GEDCOM node forest as YAML or JSON: a root node or list of root nodes",
			},
			"places": map[string]interface{}{
				"type":        "string",
				"description": "Optional place catalog as YAML or JSON: a list of catalog entries with hierarchical fields (land, lan, socken, by, gard / state, county, city) and an id",
			},
		},
	},
}

// InputMapGedcom is the input for the MapGedcom tool.
type InputMapGedcom struct {
	Tree   string `json:"tree"`
	Places string `json:"places"`
}

// OutputMapGedcom is the output for the MapGedcom tool.
type OutputMapGedcom struct {
	Result gedcom.Result `json:"result"`
	// Counts per entity collection, for a quick import summary.
	People    int `json:"people"`
	Families  int `json:"families"`
	Sources   int `json:"sources"`
	Citations int `json:"citations"`
}

// MapGedcom decodes the supplied tree and catalog, runs one import pass and
// validates the result against the hand-off schema.
func MapGedcom(_ context.Context, _ *mcp.CallToolRequest, input InputMapGedcom) (*mcp.CallToolResult, OutputMapGedcom, error) {
	if input.Tree == "" {
		return nil, OutputMapGedcom{}, fmt.Errorf("tree is required")
	}

	var root any
	if err := yaml.Unmarshal([]byte(input.Tree), &root); err != nil {
		return nil, OutputMapGedcom{}, fmt.Errorf("decode tree: %w", err)
	}
	var catalog []place.Place
	if input.Places != "" {
		if err := yaml.Unmarshal([]byte(input.Places), &catalog); err != nil {
			return nil, OutputMapGedcom{}, fmt.Errorf("decode place catalog: %w", err)
		}
	}

	result := gedcom.NewMapper(catalog).Map(root)
	if err := schema.ValidateResult(result); err != nil {
		return nil, OutputMapGedcom{}, err
	}

	return nil, OutputMapGedcom{
		Result:    result,
		People:    len(result.People),
		Families:  len(result.Families),
		Sources:   len(result.Sources),
		Citations: len(result.Citations),
	}, nil
}
