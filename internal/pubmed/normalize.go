// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"strings"

	"github.com/pdiddy/litscout/pkg/types"
)

// Normalize converts raw MEDLINE records into uniform Records. Missing or
// malformed fields degrade to empty defaults: a single bad record must
// never prevent rendering the rest, so Normalize raises no errors.
func Normalize(raw []RawRecord) []types.Record {
	records := make([]types.Record, 0, len(raw))
	for _, r := range raw {
		rec := types.Record{
			PMID:     r.First("PMID"),
			Title:    r.First("TI"),
			Journal:  r.First("JT"),
			PubDate:  r.First("DP"),
			DOI:      extractDOI(r["AID"]),
			Abstract: r.First("AB"),
			Authors:  alignAuthors(r["AU"], r["AD"]),
		}
		if rec.Title == "" {
			rec.Title = r.First("BTI")
		}
		records = append(records, rec)
	}
	return records
}

// alignAuthors pairs author names with affiliations positionally. When the
// two lists differ in length the pairing is ambiguous and every
// affiliation stays empty: misattributing an affiliation to the wrong
// author is worse than omitting it.
func alignAuthors(names, affiliations []string) []types.Author {
	authors := make([]types.Author, len(names))
	aligned := len(affiliations) == len(names)
	for i, name := range names {
		authors[i] = types.Author{Name: strings.TrimSpace(name)}
		if aligned {
			authors[i].Affiliation = strings.TrimSpace(affiliations[i])
		}
	}
	return authors
}

// extractDOI returns the first article identifier mentioning "doi", cut at
// the first whitespace (AID values carry a trailing "[doi]" marker).
func extractDOI(aids []string) string {
	for _, aid := range aids {
		if !strings.Contains(strings.ToLower(aid), "doi") {
			continue
		}
		if fields := strings.Fields(aid); len(fields) > 0 {
			return fields[0]
		}
	}
	return ""
}
