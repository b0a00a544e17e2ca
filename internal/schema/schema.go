// SPDX-License-Identifier: Apache-2.0

// Package schema validates a mapped import result against the contract the
// UI layer consumes, before hand-off. The schema is expressed in CUE and
// checks shape plus the xref invariants the mappers are supposed to uphold.
package schema

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/gedmapproj/gedmap-mcp/internal/gedcom"
)

const resultSchema = `
#Xref: string & !~"^@.*@$"

#MediaRef: {
	file:  string
	title: string
}

#Event: {
	type:         "BIRT" | "DEAT" | "BURI" | "CHR" | "BAPT"
	date:         string
	place:        string
	place_id:     string
	source_xrefs: [...#Xref]
}

#Individual: {
	xref:       #Xref
	first_name: string
	last_name:  string
	gender:     string
	events:     [...#Event]
	notes:      string
	media:      [...#MediaRef]
}

#Family: {
	xref:                  #Xref
	husband:               #Xref
	wife:                  #Xref
	children:              [...#Xref]
	marriage_date:         string
	marriage_source_xrefs: [...#Xref]
}

#Source: {
	xref:       #Xref
	title:      string
	author:     string
	publisher:  string
	repository: string
	media:      [...#MediaRef]
	archive:    string
	volume:     string
	image_page: string
	page:       string
	aid:        string
	nad:        string
	ra_id:      string
	date:       string
}

#Citation: {
	source_xref:       #Xref
	page:              string
	date:              string
	credibility:       int
	credibility_label: "" | "No credibility" | "Unreliable" | "Secondhand" | "Firsthand"
	note:              string
	images:            [...string]
	origin:            string & !=""
}

run_id:    string & !=""
people:    [...#Individual]
families:  [...#Family]
sources:   [...#Source]
citations: [...#Citation]
`

// ValidateResult checks a mapped result against the hand-off contract. A
// validation failure here means a mapper bug, not bad input: malformed
// GEDCOM degrades to less-populated entities that still conform.
func ValidateResult(res gedcom.Result) error {
	ctx := cuecontext.New()
	sch := ctx.CompileString(resultSchema)
	if err := sch.Err(); err != nil {
		return fmt.Errorf("compile result schema: %w", err)
	}
	val := ctx.Encode(res)
	if err := val.Err(); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if err := sch.Unify(val).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("mapped result does not conform: %w", err)
	}
	return nil
}
