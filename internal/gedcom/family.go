// SPDX-License-Identifier: Apache-2.0

package gedcom

// MapFamilies maps every FAM node in all onto Family records. Spouse and
// child references are normalized to bare ids whether the upstream parser
// stored them as strings, @-wrapped tokens or pointer objects.
func MapFamilies(all []any) []Family {
	families := make([]Family, 0)
	for _, node := range all {
		if Tag(node) != "FAM" {
			continue
		}
		fam := Family{
			Xref:                recordXref(node),
			Children:            make([]string, 0),
			MarriageSourceXrefs: make([]string, 0),
		}
		if h := childByTag(node, "HUSB"); h != nil {
			fam.Husband = pointerXref(h)
		}
		if w := childByTag(node, "WIFE"); w != nil {
			fam.Wife = pointerXref(w)
		}
		for _, ch := range childrenByTag(node, "CHIL") {
			if ref := pointerXref(ch); ref != "" {
				fam.Children = append(fam.Children, ref)
			}
		}
		if marr := childByTag(node, "MARR"); marr != nil {
			fam.MarriageDate = childValue(marr, "DATE")
			for _, src := range childrenByTag(marr, "SOUR") {
				if ref := pointerXref(src); ref != "" {
					fam.MarriageSourceXrefs = append(fam.MarriageSourceXrefs, ref)
				}
			}
		}
		families = append(families, fam)
	}
	return families
}
