// SPDX-License-Identifier: Apache-2.0

// Package place interprets GEDCOM PLAC strings and resolves them against an
// externally supplied place catalog. Swedish and US hierarchies are the
// primary schemas, with Norwegian and Finnish variants recognized for
// splitting purposes.
package place

import (
	"regexp"
	"strings"
)

// Hierarchy kinds recognized by ParseString.
const (
	KindSweden  = "sweden"
	KindUSA     = "usa"
	KindNorway  = "norway"
	KindFinland = "finland"
)

// Place is one catalog entry. Only the fields of the entry's own hierarchy
// are populated; an empty field acts as a wildcard during matching, except
// for Land which always participates.
type Place struct {
	ID   string `json:"id" yaml:"id"`
	Land string `json:"land" yaml:"land"`

	// Swedish hierarchy: land, län, socken, by, gård.
	Lan    string `json:"lan" yaml:"lan"`
	Socken string `json:"socken" yaml:"socken"`
	By     string `json:"by" yaml:"by"`
	Gard   string `json:"gard" yaml:"gard"`

	// US hierarchy: country, state, county, city.
	State  string `json:"state" yaml:"state"`
	County string `json:"county" yaml:"county"`
	City   string `json:"city" yaml:"city"`
}

// Parsed is the field breakdown of one PLAC string.
type Parsed struct {
	Raw            string
	Parts          []string
	CountryCode    string
	Kind           string
	UsedHeuristics bool

	Land   string
	Lan    string
	Socken string
	By     string
	Gard   string

	State   string
	County  string
	City    string
	Address string

	Fylke string
}

var (
	swedenKeywords = []string{"sverige", "sweden", "swe"}
	usaKeywords    = []string{"usa", "united states", "amerika", "america"}
	usStateRe      = regexp.MustCompile(`^[A-Z]{2}$`)
)

const swedenLanSuffix = "län"

// ParseString splits a PLAC value into hierarchy fields. Comma-separated
// input is authoritative; a single comma-free part with several words falls
// back to guessing country and region from the trailing words.
func ParseString(s string) Parsed {
	out := Parsed{Raw: s}
	if strings.TrimSpace(s) == "" {
		return out
	}

	var parts []string
	for _, p := range strings.Split(s, ",") {
		if t := strings.TrimSpace(p); t != "" {
			parts = append(parts, t)
		}
	}
	if len(parts) == 1 {
		words := strings.Fields(s)
		if len(words) > 2 {
			// Guess: last word is the country, second to last the
			// län/state, the rest one combined part.
			parts = []string{strings.Join(words[:len(words)-2], " "), words[len(words)-2], words[len(words)-1]}
			out.UsedHeuristics = true
		}
	}
	out.Parts = parts
	if len(parts) == 0 {
		return out
	}

	last := parts[len(parts)-1]
	country := strings.ToLower(last)
	switch {
	case contains(swedenKeywords, country):
		out.CountryCode, out.Kind = "SE", KindSweden
	case contains(usaKeywords, country):
		out.CountryCode, out.Kind = "US", KindUSA
	case strings.HasSuffix(country, swedenLanSuffix):
		out.CountryCode, out.Kind = "SE", KindSweden
		out.UsedHeuristics = true
	case usStateRe.MatchString(last):
		out.CountryCode, out.Kind = "US", KindUSA
		out.UsedHeuristics = true
	case country == "norge" || country == "norway" || country == "no":
		out.CountryCode, out.Kind = "NO", KindNorway
	case country == "finland" || country == "suomi" || country == "fi":
		out.CountryCode, out.Kind = "FI", KindFinland
	}

	nth := func(fromEnd int) string {
		i := len(parts) - fromEnd
		if i < 0 {
			return ""
		}
		return parts[i]
	}
	switch out.Kind {
	case KindSweden:
		out.Land, out.Lan, out.Socken, out.By, out.Gard = nth(1), nth(2), nth(3), nth(4), nth(5)
	case KindUSA:
		out.Land, out.State, out.County, out.City, out.Address = nth(1), nth(2), nth(3), nth(4), nth(5)
	case KindNorway:
		out.Land, out.Fylke, out.By = nth(1), nth(2), nth(3)
	case KindFinland:
		out.Land, out.Lan, out.By = nth(1), nth(2), nth(3)
	}
	return out
}

// Resolve matches a PLAC string against the catalog and returns the id of
// the first exact match, or "" when nothing matches. Matching is
// case-insensitive and field-by-field: an empty catalog field constrains
// nothing, a populated field must equal the parsed value exactly. No fuzzy
// matching happens at this layer.
func Resolve(catalog []Place, placeText string) string {
	if len(catalog) == 0 || strings.TrimSpace(placeText) == "" {
		return ""
	}
	parsed := ParseString(placeText)

	for _, p := range catalog {
		if strings.EqualFold(p.Land, parsed.Land) &&
			wildcardEq(p.Lan, parsed.Lan) &&
			wildcardEq(p.Socken, parsed.Socken) &&
			wildcardEq(p.By, parsed.By) &&
			wildcardEq(p.Gard, parsed.Gard) {
			return p.ID
		}
	}
	if parsed.Kind == KindUSA {
		for _, p := range catalog {
			if strings.EqualFold(p.Land, parsed.Land) &&
				wildcardEq(p.State, parsed.State) &&
				wildcardEq(p.County, parsed.County) &&
				wildcardEq(p.City, parsed.City) {
				return p.ID
			}
		}
	}
	return ""
}

func wildcardEq(catalogField, parsedField string) bool {
	return catalogField == "" || strings.EqualFold(catalogField, parsedField)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
