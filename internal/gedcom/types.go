// SPDX-License-Identifier: Apache-2.0

package gedcom

// The mapped domain model. Entities are created once per import pass,
// treated as immutable value objects, and handed off wholesale to the UI
// layer; the mapper never touches them again after construction.
//
// All xref fields hold normalized bare ids. An empty string means the
// reference was absent or did not resolve — never a fabricated id.

// MediaRef is a media object attached to an individual, source or citation.
type MediaRef struct {
	File  string `json:"file" yaml:"file"`
	Title string `json:"title" yaml:"title"`
}

// Event is a life event extracted from an individual record. Date and Place
// are literal strings from the input; date normalization is owned
// downstream. PlaceID is resolved against the external place catalog and
// stays empty when no catalog entry matches exactly.
type Event struct {
	Type        string   `json:"type" yaml:"type"`
	Date        string   `json:"date" yaml:"date"`
	Place       string   `json:"place" yaml:"place"`
	PlaceID     string   `json:"place_id" yaml:"place_id"`
	SourceXrefs []string `json:"source_xrefs" yaml:"source_xrefs"`
}

// Individual is a mapped INDI record.
type Individual struct {
	Xref      string     `json:"xref" yaml:"xref"`
	FirstName string     `json:"first_name" yaml:"first_name"`
	LastName  string     `json:"last_name" yaml:"last_name"`
	Gender    string     `json:"gender" yaml:"gender"`
	Events    []Event    `json:"events" yaml:"events"`
	Notes     string     `json:"notes" yaml:"notes"`
	Media     []MediaRef `json:"media" yaml:"media"`
}

// Family is a mapped FAM record. Husband, Wife and Children hold normalized
// individual xrefs.
type Family struct {
	Xref                string   `json:"xref" yaml:"xref"`
	Husband             string   `json:"husband" yaml:"husband"`
	Wife                string   `json:"wife" yaml:"wife"`
	Children            []string `json:"children" yaml:"children"`
	MarriageDate        string   `json:"marriage_date" yaml:"marriage_date"`
	MarriageSourceXrefs []string `json:"marriage_source_xrefs" yaml:"marriage_source_xrefs"`
}

// Source is a mapped SOUR record. The structured archival fields below the
// repository line come from running the raw title through the citation
// string parser.
type Source struct {
	Xref       string     `json:"xref" yaml:"xref"`
	Title      string     `json:"title" yaml:"title"`
	Author     string     `json:"author" yaml:"author"`
	Publisher  string     `json:"publisher" yaml:"publisher"`
	Repository string     `json:"repository" yaml:"repository"`
	Media      []MediaRef `json:"media" yaml:"media"`

	Archive   string `json:"archive" yaml:"archive"`
	Volume    string `json:"volume" yaml:"volume"`
	ImagePage string `json:"image_page" yaml:"image_page"`
	Page      string `json:"page" yaml:"page"`
	AID       string `json:"aid" yaml:"aid"`
	NAD       string `json:"nad" yaml:"nad"`
	RAID      string `json:"ra_id" yaml:"ra_id"`
	Date      string `json:"date" yaml:"date"`
}

// Citation is one source reference attached to an event or fact.
type Citation struct {
	SourceXref       string   `json:"source_xref" yaml:"source_xref"`
	Page             string   `json:"page" yaml:"page"`
	Date             string   `json:"date" yaml:"date"`
	Credibility      int      `json:"credibility" yaml:"credibility"`
	CredibilityLabel string   `json:"credibility_label" yaml:"credibility_label"`
	Note             string   `json:"note" yaml:"note"`
	Images           []string `json:"images" yaml:"images"`
	Origin           string   `json:"origin" yaml:"origin"`
}

// Result is the complete output of one import pass, the sole contract with
// the UI layer. RunID identifies the pass for downstream audit trails.
type Result struct {
	RunID     string       `json:"run_id" yaml:"run_id"`
	People    []Individual `json:"people" yaml:"people"`
	Families  []Family     `json:"families" yaml:"families"`
	Sources   []Source     `json:"sources" yaml:"sources"`
	Citations []Citation   `json:"citations" yaml:"citations"`
}
