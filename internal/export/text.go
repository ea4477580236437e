// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export renders normalized records into export formats. The
// plain-text layout is a compatibility contract for downstream file
// export: identical input must produce byte-identical output.
package export

import (
	"fmt"
	"strings"

	"github.com/pdiddy/litscout/internal/affil"
	"github.com/pdiddy/litscout/pkg/types"
)

// noAbstract is the literal placeholder rendered when a record carries no
// abstract text.
const noAbstract = "(no abstract)"

// ToText renders records into the plain-text report, preserving input
// order. Authors whose affiliation maps to a curated organization render
// as **Name** (Organization); the match is recomputed on every pass and
// never cached. The result is stripped of trailing whitespace and ends
// with exactly one newline.
func ToText(records []types.Record) string {
	var b strings.Builder
	for i, rec := range records {
		fmt.Fprintf(&b, "## %d. %s\n", i+1, rec.Title)
		if meta := metadataLine(rec); meta != "" {
			b.WriteString(meta)
			b.WriteString("\n")
		}
		if len(rec.Authors) > 0 {
			b.WriteString("Authors: ")
			b.WriteString(renderAuthors(rec.Authors))
			b.WriteString("\n")
		}
		b.WriteString("\nAbstract:\n")
		if rec.Abstract != "" {
			b.WriteString(rec.Abstract)
		} else {
			b.WriteString(noAbstract)
		}
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), " \t\n") + "\n"
}

// metadataLine joins the non-empty citation segments with " | ".
func metadataLine(rec types.Record) string {
	var segs []string
	if rec.Journal != "" {
		segs = append(segs, "Journal: "+rec.Journal)
	}
	if rec.PubDate != "" {
		segs = append(segs, "PubDate: "+rec.PubDate)
	}
	if rec.PMID != "" {
		segs = append(segs, "PMID: "+rec.PMID)
	}
	if rec.DOI != "" {
		segs = append(segs, "DOI: "+rec.DOI)
	}
	return strings.Join(segs, " | ")
}

func renderAuthors(authors []types.Author) string {
	parts := make([]string, len(authors))
	for i, a := range authors {
		if org, ok := affil.Match(a.Affiliation); ok {
			parts[i] = fmt.Sprintf("**%s** (%s)", a.Name, org)
		} else {
			parts[i] = a.Name
		}
	}
	return strings.Join(parts, "; ")
}
