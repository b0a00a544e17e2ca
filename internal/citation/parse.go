// SPDX-License-Identifier: Apache-2.0

// Package citation recovers structured archival fields from free-text
// source citations. The strings come from a handful of Swedish genealogy
// vendors and from user input, with no canonical grammar; extraction is an
// ordered heuristic pipeline where each stage removes its own match from
// the residual text before the next stage runs. Stage order encodes
// precedence: an AID beats a free-text "Bild N" for image/page extraction.
package citation

import (
	"regexp"
	"strings"
)

// Trust levels for a parsed citation, on the QUAY-derived scale. A found
// AID links the citation to a digitized primary source, hence Firsthand.
const TrustFirsthand = 4

// Fields is the structured breakdown of one citation string. Unparseable
// input degrades to zero values across the board.
type Fields struct {
	Archive   string `json:"archive" yaml:"archive"`
	Volume    string `json:"volume" yaml:"volume"`
	ImagePage string `json:"image_page" yaml:"image_page"`
	Page      string `json:"page" yaml:"page"`
	AID       string `json:"aid" yaml:"aid"`
	NAD       string `json:"nad" yaml:"nad"`
	RAID      string `json:"ra_id" yaml:"ra_id"`
	Date      string `json:"date" yaml:"date"`
	Title     string `json:"title" yaml:"title"`
	Trust     int    `json:"trust" yaml:"trust"`
}

var (
	// ArkivDigital id, either prefixed or inside an aid/show URL. The token
	// is volume[.image[.side]], where the volume part may carry a trailing
	// letter (v111127a).
	aidRe = regexp.MustCompile(`(?i)(?:AID:\s*|(?:https?://)?(?:www\.)?arkivdigital\.se/aid/show/)(v\d+[a-z]?\.b\d+\.s\d+|v\d+[a-z]?\.b\d+|v\d+[a-z]?)`)
	// Swedish National Archive Database reference, SE/XX/.... The leading
	// boundary keeps it from firing on the ".se/" inside archive URLs,
	// which the RA-bildid stage below owns.
	nadRe = regexp.MustCompile(`(?i)(?:^|[\s,(])(SE/[A-Z]{2,}/[^\s,)]+)`)
	// Riksarkivet image id, prefixed or inside a bildvisning URL.
	raIDRe = regexp.MustCompile(`(?i)(?:RA-bildid:\s*|(?:https?://)?sok\.riksarkivet\.se/bildvisning/)([A-Z0-9_]+)`)
	// Image/side components of an AID token.
	aidPartsRe = regexp.MustCompile(`(?i)v\d+[a-z]?\.b(\d+)(?:\.s(\d+))?`)
	// Free-text "Bild N / sid M".
	bildSidRe = regexp.MustCompile(`(?i)Bild\s*(\d+)(?:\s*/\s*sid\s*(\d+))?`)
	// Volume signature with optional year range, e.g. "AI:14 (1885-1894)".
	volumeRe = regexp.MustCompile(`([A-Z]{1,4}:\d+[a-z]?)\s*(?:\((\d{4}-\d{4})\))?`)

	boilerplateRe = regexp.MustCompile(`(?i)Källa:|Källdetalj:|Notes:|Bild:`)
	spaceRunRe    = regexp.MustCompile(`\s+`)
)

// Parse breaks a citation string into structured fields. Pure function,
// never fails; everything it cannot place ends up in Archive as residual
// text. When a string carries two AID-like tokens, the first is consumed
// and the second deliberately survives into the residual rather than being
// second-guessed.
func Parse(text string) Fields {
	var f Fields
	text = strings.TrimSpace(text)
	if text == "" {
		return f
	}

	// 1–3. Ids with unambiguous signatures, consumed in order.
	if m := aidRe.FindStringSubmatch(text); m != nil {
		f.AID = strings.TrimSpace(m[1])
		text = strings.Replace(text, m[0], "", 1)
	}
	if m := nadRe.FindStringSubmatch(text); m != nil {
		f.NAD = strings.TrimSpace(m[1])
		text = strings.Replace(text, m[0], "", 1)
	}
	if m := raIDRe.FindStringSubmatch(text); m != nil {
		f.RAID = strings.TrimSpace(m[1])
		text = strings.Replace(text, m[0], "", 1)
	}

	// 4. An AID is authoritative for image/side.
	if f.AID != "" {
		if m := aidPartsRe.FindStringSubmatch(f.AID); m != nil {
			f.ImagePage = m[1]
			f.Page = m[2]
		}
	}

	// 5. Free-text image/side fills whatever the AID left open. The match
	// is consumed either way so it cannot pollute the archive name.
	if m := bildSidRe.FindStringSubmatch(text); m != nil {
		if f.ImagePage == "" {
			f.ImagePage = m[1]
		}
		if f.Page == "" {
			f.Page = m[2]
		}
		text = strings.Replace(text, m[0], "", 1)
	}

	// 6. Volume and year range.
	if m := volumeRe.FindStringSubmatch(text); m != nil {
		f.Volume = strings.TrimSpace(m[1])
		f.Date = m[2]
		text = strings.Replace(text, m[0], "", 1)
	}

	// 7. The residue is the archive/parish name, minus known boilerplate
	// prefixes and with punctuation normalized to spaces.
	text = boilerplateRe.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, ",", " ")
	f.Archive = strings.TrimSpace(spaceRunRe.ReplaceAllString(text, " "))

	f.Title = buildTitle(f)
	if f.AID != "" {
		f.Trust = TrustFirsthand
	}
	return f
}

func buildTitle(f Fields) string {
	var parts []string
	if f.Archive != "" {
		parts = append(parts, f.Archive)
	}
	if f.Volume != "" {
		parts = append(parts, f.Volume)
	}
	if f.Date != "" {
		parts = append(parts, "("+f.Date+")")
	}
	return strings.Join(parts, " ")
}
