// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the litscout pipeline.
package types

// Record is a normalized PubMed record. Every field degrades to its zero
// value when the upstream data is missing or malformed; a Record never
// carries partially-guessed data.
type Record struct {
	// PMID is the PubMed identifier.
	PMID string `json:"pmid" yaml:"pmid"`

	// Title is the article title, falling back to the book title for
	// book-type records.
	Title string `json:"title" yaml:"title"`

	// Journal is the full journal title.
	Journal string `json:"journal" yaml:"journal"`

	// PubDate is the publication date string as supplied by MEDLINE
	// (e.g. "2023 Mar 15", "2021").
	PubDate string `json:"pubdate" yaml:"pubdate"`

	// DOI is the digital object identifier, when one was listed.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// Authors lists the authors in source order.
	Authors []Author `json:"authors" yaml:"authors"`

	// Abstract is the abstract text, empty when the record has none.
	Abstract string `json:"abstract" yaml:"abstract"`
}

// Author is one author of a record.
type Author struct {
	// Name is the MEDLINE author string (e.g. "Smith JA").
	Name string `json:"name" yaml:"name"`

	// Affiliation is the free-text affiliation paired with this author.
	// It is empty when the record carried none or when the per-author
	// pairing was ambiguous upstream.
	Affiliation string `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
}
