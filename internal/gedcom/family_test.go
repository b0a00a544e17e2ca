// SPDX-License-Identifier: Apache-2.0

package gedcom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gedmapproj/gedmap-mcp/internal/gedcom"
)

func TestMapFamilies(t *testing.T) {
	fam := recX("FAM", "@F1@", nil,
		rec("HUSB", "@I1@"),
		rec("WIFE", "@I2@"),
		rec("CHIL", "@I3@"),
		rec("CHIL", "@I4@"),
		rec("MARR", nil,
			rec("DATE", "12 JUN 1901"),
			rec("SOUR", "@S1@"),
			rec("SOUR", "@S2@"),
		),
	)
	families := gedcom.MapFamilies([]any{fam})

	require.Len(t, families, 1)
	f := families[0]
	assert.Equal(t, "F1", f.Xref)
	assert.Equal(t, "I1", f.Husband)
	assert.Equal(t, "I2", f.Wife)
	assert.Equal(t, []string{"I3", "I4"}, f.Children)
	assert.Equal(t, "12 JUN 1901", f.MarriageDate)
	assert.Equal(t, []string{"S1", "S2"}, f.MarriageSourceXrefs)
}

func TestMapFamilies_PointerShapeVariants(t *testing.T) {
	// The same family encoded three ways must normalize identically.
	bare := recX("FAM", "@F1@", nil,
		rec("HUSB", "I1"),
		rec("WIFE", "I2"),
		rec("CHIL", "I3"),
	)
	wrapped := recX("FAM", "@F1@", nil,
		rec("HUSB", "@I1@"),
		rec("WIFE", "@I2@"),
		rec("CHIL", "@I3@"),
	)
	objects := recX("FAM", "@F1@", nil,
		rec("HUSB", map[string]any{"pointer": "@I1@"}),
		rec("WIFE", map[string]any{"xref": "I2"}),
		map[string]any{"tag": "CHIL", "pointer": "@I3@"},
	)

	for name, node := range map[string]any{"bare": bare, "wrapped": wrapped, "objects": objects} {
		t.Run(name, func(t *testing.T) {
			families := gedcom.MapFamilies([]any{node})
			require.Len(t, families, 1)
			assert.Equal(t, "I1", families[0].Husband)
			assert.Equal(t, "I2", families[0].Wife)
			assert.Equal(t, []string{"I3"}, families[0].Children)
		})
	}
}

func TestMapFamilies_PartialFamily(t *testing.T) {
	fam := recX("FAM", "@F1@", nil, rec("WIFE", "@I2@"))
	families := gedcom.MapFamilies([]any{fam})

	require.Len(t, families, 1)
	assert.Equal(t, "", families[0].Husband)
	assert.Equal(t, "I2", families[0].Wife)
	assert.Empty(t, families[0].Children)
	assert.Equal(t, "", families[0].MarriageDate)
	assert.Empty(t, families[0].MarriageSourceXrefs)
}
