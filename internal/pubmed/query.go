// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed queries the NCBI Entrez E-utilities API and normalizes
// the MEDLINE records it returns.
package pubmed

import "strings"

// DefaultDiseaseTerms lists rare metabolic disease phrases used when the
// caller supplies no disease terms of their own.
var DefaultDiseaseTerms = []string{
	"inborn errors of metabolism",
	"lysosomal storage disease",
	"mitochondrial disorder",
	"peroxisomal disorder",
	"rare metabolic disorder",
}

// catchAllQuery matches every PubMed record. BuildQuery falls back to it
// so the search term handed to ESearch is never the empty string.
const catchAllQuery = "all[sb]"

// BuildQuery constructs a PubMed boolean expression from organization
// names, disease phrases, and free-text terms. Affiliations are tagged for
// the author-affiliation field ([ad]); disease and custom terms for
// title/abstract ([tiab]). Each non-empty category contributes one
// parenthesized OR clause and clauses are joined with AND. Pure string
// building, no I/O.
func BuildQuery(affiliations, diseaseTerms []string, customTerms string) string {
	var parts []string

	if clause := orClause(affiliations, "[ad]"); clause != "" {
		parts = append(parts, clause)
	}
	if clause := orClause(diseaseTerms, "[tiab]"); clause != "" {
		parts = append(parts, clause)
	}
	if clause := orClause(strings.Split(customTerms, ","), "[tiab]"); clause != "" {
		parts = append(parts, clause)
	}

	if len(parts) == 0 {
		return catchAllQuery
	}
	return strings.Join(parts, " AND ")
}

// orClause quotes and tags each non-blank term and wraps the result in a
// parenthesized OR expression. Returns "" when every term is blank.
func orClause(terms []string, tag string) string {
	var quoted []string
	for _, t := range terms {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		quoted = append(quoted, `"`+t+`"`+tag)
	}
	if len(quoted) == 0 {
		return ""
	}
	return "(" + strings.Join(quoted, " OR ") + ")"
}
