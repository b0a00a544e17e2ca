// SPDX-License-Identifier: Apache-2.0

package gedcom

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gedmapproj/gedmap-mcp/internal/place"
)

// eventTags is the fixed set of individual event tags the mapper extracts.
var eventTags = map[string]bool{
	"BIRT": true,
	"DEAT": true,
	"BURI": true,
	"CHR":  true,
	"BAPT": true,
}

// gedcomNameRe matches the "Given /Surname/" convention of combined NAME
// values.
var gedcomNameRe = regexp.MustCompile(`^(.*?)\s*/(.*)/`)

// MapIndividuals maps every INDI node in all onto Individual records. The
// citations gathered from event-level SOUR children are returned alongside
// the individuals as an explicit second value; they are not attached to the
// people themselves. catalog may be nil, in which case no event gets a
// place id.
func MapIndividuals(all []any, catalog []place.Place) ([]Individual, []Citation) {
	individuals := make([]Individual, 0)
	citations := make([]Citation, 0)

	for _, node := range all {
		if Tag(node) != "INDI" {
			continue
		}
		given := childValue(node, "GIVN")
		surname := childValue(node, "SURN")
		if given == "" && surname == "" {
			given, surname = splitName(childValue(node, "NAME"))
		}

		events := make([]Event, 0)
		for _, ev := range Children(node) {
			if !eventTags[Tag(ev)] {
				continue
			}
			event := Event{
				Type:        Tag(ev),
				Date:        childValue(ev, "DATE"),
				Place:       childValue(ev, "PLAC"),
				SourceXrefs: []string{},
			}
			if event.Place != "" {
				event.PlaceID = place.Resolve(catalog, event.Place)
			}
			for _, src := range childrenByTag(ev, "SOUR") {
				c := mapCitation(src, all)
				if c.SourceXref != "" {
					event.SourceXrefs = append(event.SourceXrefs, c.SourceXref)
				}
				citations = append(citations, c)
			}
			events = append(events, event)
		}

		var notes []string
		for _, nn := range childrenByTag(node, "NOTE") {
			notes = append(notes, CompileNoteText(nn, all, nil))
		}

		individuals = append(individuals, Individual{
			Xref:      recordXref(node),
			FirstName: given,
			LastName:  surname,
			Gender:    childValue(node, "SEX"),
			Events:    events,
			Notes:     strings.Join(notes, "\n"),
			Media:     mapMedia(node),
		})
	}
	return individuals, citations
}

// mapCitation turns one SOUR child of an event into a Citation.
func mapCitation(src any, all []any) Citation {
	// Date is usually nested under DATA/DATE; a direct DATE child is the
	// fallback some exporters use.
	date := ""
	if data := childByTag(src, "DATA"); data != nil {
		date = childValue(data, "DATE")
	}
	if date == "" {
		date = childValue(src, "DATE")
	}

	var noteText strings.Builder
	for _, nn := range childrenByTag(src, "NOTE") {
		assembled := CompileNoteText(nn, all, nil)
		if noteText.Len() > 0 {
			noteText.WriteString("\n")
		}
		noteText.WriteString(assembled)
	}

	images := make([]string, 0)
	for _, obj := range childrenByTag(src, "OBJE") {
		file := childValue(obj, "FILE")
		if file == "" {
			file = strings.TrimSpace(ValueString(Value(obj)))
		}
		if file != "" {
			images = append(images, file)
		}
	}

	credibility, label := quayCredibility(childValue(src, "QUAY"))
	return Citation{
		SourceXref:       pointerXref(src),
		Page:             childValue(src, "PAGE"),
		Date:             date,
		Credibility:      credibility,
		CredibilityLabel: label,
		Note:             noteText.String(),
		Images:           images,
		Origin:           "gedcom",
	}
}

// mapMedia extracts the OBJE children of a record as media references.
func mapMedia(node any) []MediaRef {
	media := make([]MediaRef, 0)
	for _, obj := range childrenByTag(node, "OBJE") {
		file := childValue(obj, "FILE")
		if file == "" {
			file = strings.TrimSpace(ValueString(Value(obj)))
		}
		media = append(media, MediaRef{
			File:  file,
			Title: childValue(obj, "TITL"),
		})
	}
	return media
}

// splitName breaks a combined NAME value into given name and surname. The
// GEDCOM convention wraps the surname in slashes ("Anna /Andersson/"); when
// no slashes are present the final whitespace-separated token is taken as
// the surname, and a single token is all given name.
func splitName(raw string) (given, surname string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ""
	}
	if m := gedcomNameRe.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	parts := strings.Fields(raw)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1]
}

// quayCredibility maps a GEDCOM QUAY value onto the credibility scale and
// its label. A missing value counts as zero; garbage yields no label.
func quayCredibility(raw string) (int, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, "No credibility"
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ""
	}
	switch {
	case n <= 0:
		return n, "No credibility"
	case n == 1:
		return n, "Unreliable"
	case n == 2:
		return n, "Secondhand"
	default:
		return n, "Firsthand"
	}
}
