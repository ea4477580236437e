// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package affil maps free-text author affiliations to canonical
// organization names drawn from a curated set of pharmaceutical companies.
package affil

import (
	"regexp"
	"strings"
)

// rule pairs a compiled pattern with the canonical name it maps to.
type rule struct {
	pattern   *regexp.Regexp
	canonical string
}

// rules is the ordered dispatch table: the first matching rule wins, so
// list order is the tie-break and must be preserved when editing.
var rules = []rule{
	{pattern: wordPattern(`pfizer`), canonical: "Pfizer"},
	{pattern: wordPattern(`hoffmann[-\s]?la[-\s]?roche|roche`), canonical: "Roche"},
	{pattern: wordPattern(`novartis`), canonical: "Novartis"},
	{pattern: wordPattern(`merck`), canonical: "Merck"},
	{pattern: wordPattern(`johnson\s*&\s*johnson|janssen`), canonical: "Johnson & Johnson"},
	{pattern: wordPattern(`abbvie`), canonical: "AbbVie"},
	{pattern: wordPattern(`bristol[-\s]?myers\s+squibb|bms`), canonical: "Bristol Myers Squibb"},
	{pattern: wordPattern(`astrazeneca`), canonical: "AstraZeneca"},
	{pattern: wordPattern(`glaxosmithkline|gsk`), canonical: "GSK"},
	{pattern: wordPattern(`sanofi`), canonical: "Sanofi"},
	{pattern: wordPattern(`takeda`), canonical: "Takeda"},
	{pattern: wordPattern(`eli\s+lilly|lilly`), canonical: "Eli Lilly"},
	{pattern: wordPattern(`amgen`), canonical: "Amgen"},
	{pattern: wordPattern(`gilead`), canonical: "Gilead"},
	{pattern: wordPattern(`bayer`), canonical: "Bayer"},
	{pattern: wordPattern(`boehringer`), canonical: "Boehringer Ingelheim"},
	{pattern: wordPattern(`novo\s+nordisk`), canonical: "Novo Nordisk"},
	{pattern: wordPattern(`moderna`), canonical: "Moderna"},
	{pattern: wordPattern(`biogen`), canonical: "Biogen"},
	{pattern: wordPattern(`regeneron`), canonical: "Regeneron"},
}

// wordPattern compiles a case-insensitive, word-boundary-anchored pattern
// so organization names never match inside unrelated words
// ("Bayern" must not match the Bayer rule).
func wordPattern(expr string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b(?:` + expr + `)\b`)
}

// laRoche matches the geographic token sequence that triggers the
// exclusion check ("La Roche-Guyon", "La Roche-sur-Yon").
var laRoche = regexp.MustCompile(`(?i)\bla[-\s]roche\b`)

// corporateIndicators are tokens whose presence marks an affiliation as a
// corporate entity rather than a place or hospital name. Token match only;
// substring containment would misfire on words like "grouped".
var corporateIndicators = map[string]bool{
	"ag":              true,
	"sa":              true,
	"se":              true,
	"ltd":             true,
	"inc":             true,
	"gmbh":            true,
	"llc":             true,
	"corp":            true,
	"corporation":     true,
	"company":         true,
	"pharma":          true,
	"pharmaceutical":  true,
	"pharmaceuticals": true,
	"biotech":         true,
	"diagnostics":     true,
	"research":        true,
	"holding":         true,
	"group":           true,
}

// tokenSplit breaks an affiliation into lowercase alphanumeric tokens.
var tokenSplit = regexp.MustCompile(`[^a-z0-9]+`)

// Match maps a raw affiliation string to a canonical organization name.
// It returns ok=false for empty input and for strings no rule covers.
//
// The "la roche" exclusion runs before the rule list: a geographic or
// hospital name like "La Roche-Guyon Hospital" must not be classified as
// the pharmaceutical company, so the match is suppressed unless the text
// also carries a corporate-entity indicator token.
func Match(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	if laRoche.MatchString(s) && !hasCorporateIndicator(s) {
		return "", false
	}

	for _, r := range rules {
		if r.pattern.MatchString(s) {
			return r.canonical, true
		}
	}
	return "", false
}

func hasCorporateIndicator(s string) bool {
	for _, tok := range tokenSplit.Split(strings.ToLower(s), -1) {
		if corporateIndicators[tok] {
			return true
		}
	}
	return false
}

// Organizations returns the canonical names of the curated set in rule
// order. The search command uses it as the default affiliation filter.
func Organizations() []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.canonical
	}
	return names
}
