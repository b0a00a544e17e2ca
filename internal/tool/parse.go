// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gedmapproj/gedmap-mcp/internal/citation"
)

// MetadataParseCitation describes the parse_citation tool.
var MetadataParseCitation = &mcp.Tool{
	Name: "parse_citation",
	Description: "Parse a free-text archival source citation into structured fields. " +
		"Recognizes ArkivDigital AID tokens and aid/show URLs, Swedish NAD references (SE/XX/...), " +
		"Riksarkivet bildid tokens and bildvisning URLs, free-text 'Bild N / sid M' image references, " +
		"and volume signatures with year ranges (e.g. 'AI:14 (1885-1894)'). " +
		"Residual text becomes the archive/parish name. A found AID marks the citation as " +
		"firsthand (trust 4) since it pins a digitized primary-source page.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"text"},
		"properties": map[string]interface{}{
			"text": map[string]interface{}{
				"type":        "string",
				"description": "Raw citation string, e.g. from a GEDCOM source title or user input",
			},
		},
	},
}

// InputParseCitation is the input for the ParseCitation tool.
type InputParseCitation struct {
	Text string `json:"text"`
}

// OutputParseCitation is the output for the ParseCitation tool.
type OutputParseCitation struct {
	Fields citation.Fields `json:"fields"`
}

// ParseCitation runs the citation string parser over the provided text.
// The parser itself never fails; only missing input is an error.
func ParseCitation(_ context.Context, _ *mcp.CallToolRequest, input InputParseCitation) (*mcp.CallToolResult, OutputParseCitation, error) {
	if input.Text == "" {
		return nil, OutputParseCitation{}, fmt.Errorf("text is required")
	}
	return nil, OutputParseCitation{Fields: citation.Parse(input.Text)}, nil
}
