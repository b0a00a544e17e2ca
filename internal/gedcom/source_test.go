// SPDX-License-Identifier: Apache-2.0

package gedcom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gedmapproj/gedmap-mcp/internal/gedcom"
)

func TestMapSources(t *testing.T) {
	src := recX("SOUR", "@S1@", nil,
		rec("TITL", "Västra Vram AI:14 (1885-1894) Bild 18 / sid 14"),
		rec("AUTH", "Riksarkivet"),
		rec("PUBL", "ArkivDigital"),
		rec("REPO", "@R1@"),
		rec("OBJE", nil, rec("FILE", "scan.jpg"), rec("TITL", "Scan")),
	)
	sources := gedcom.MapSources([]any{src})

	require.Len(t, sources, 1)
	s := sources[0]
	assert.Equal(t, "S1", s.Xref)
	assert.Equal(t, "Västra Vram AI:14 (1885-1894) Bild 18 / sid 14", s.Title)
	assert.Equal(t, "Riksarkivet", s.Author)
	assert.Equal(t, "ArkivDigital", s.Publisher)
	assert.Equal(t, "@R1@", s.Repository)
	require.Len(t, s.Media, 1)
	assert.Equal(t, gedcom.MediaRef{File: "scan.jpg", Title: "Scan"}, s.Media[0])

	// Structured fields recovered from the title.
	assert.Equal(t, "Västra Vram", s.Archive)
	assert.Equal(t, "AI:14", s.Volume)
	assert.Equal(t, "1885-1894", s.Date)
	assert.Equal(t, "18", s.ImagePage)
	assert.Equal(t, "14", s.Page)
}

func TestMapSources_TitleFallsBackToValue(t *testing.T) {
	src := recX("SOUR", "@S1@", "Husförhörslängd")
	sources := gedcom.MapSources([]any{src})

	require.Len(t, sources, 1)
	assert.Equal(t, "Husförhörslängd", sources[0].Title)
}

func TestMapSources_SkipsCitationPointers(t *testing.T) {
	// A SOUR node without its own xref is an outgoing citation, not a
	// source record.
	pointer := rec("SOUR", "@S1@", rec("PAGE", "3"))
	record := recX("SOUR", "@S2@", nil, rec("TITL", "A real source"))

	sources := gedcom.MapSources([]any{pointer, record})
	require.Len(t, sources, 1)
	assert.Equal(t, "S2", sources[0].Xref)
}

func TestMapSources_AIDTitle(t *testing.T) {
	src := recX("SOUR", "@S1@", nil,
		rec("TITL", "Lunds domkyrkoförsamling CI:9 AID: v111127a.b60.s1"),
	)
	sources := gedcom.MapSources([]any{src})

	require.Len(t, sources, 1)
	assert.Equal(t, "v111127a.b60.s1", sources[0].AID)
	assert.Equal(t, "60", sources[0].ImagePage)
	assert.Equal(t, "1", sources[0].Page)
	assert.Equal(t, "CI:9", sources[0].Volume)
}
