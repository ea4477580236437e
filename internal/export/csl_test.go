// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pdiddy/litscout/pkg/types"
)

func TestToCSLItem(t *testing.T) {
	r := types.Record{
		PMID:    "36000001",
		Title:   "Enzyme replacement therapy in Gaucher disease.",
		Journal: "Journal of inherited metabolic disease",
		PubDate: "2023 Mar 15",
		DOI:     "10.1002/jimd.12345",
		Authors: []types.Author{
			{Name: "Smith JA"},
			{Name: "Garcia M"},
		},
		Abstract: "Long-term outcomes were assessed.",
	}

	item := toCSLItem(r)

	if item.ID != "pmid-36000001" {
		t.Errorf("ID = %q, want %q", item.ID, "pmid-36000001")
	}
	if item.Type != "article-journal" {
		t.Errorf("Type = %q, want %q", item.Type, "article-journal")
	}
	if item.ContainerTitle != r.Journal {
		t.Errorf("ContainerTitle = %q", item.ContainerTitle)
	}
	if item.DOI != "10.1002/jimd.12345" {
		t.Errorf("DOI = %q", item.DOI)
	}
	if len(item.Author) != 2 {
		t.Fatalf("len(Author) = %d, want 2", len(item.Author))
	}
	if item.Author[0].Family != "Smith" || item.Author[0].Given != "JA" {
		t.Errorf("Author[0] = %+v, want family Smith, given JA", item.Author[0])
	}
	if item.Issued == nil || item.Issued.DateParts[0][0] != 2023 {
		t.Error("Issued year should be 2023")
	}
}

func TestParseAuthorNameSingleToken(t *testing.T) {
	name := parseAuthorName("CollectiveStudyGroup")
	if name.Literal != "CollectiveStudyGroup" || name.Family != "" {
		t.Errorf("single-token name should use the literal field, got %+v", name)
	}
}

func TestPubYear(t *testing.T) {
	tests := []struct {
		dp   string
		want int
	}{
		{"2023 Mar 15", 2023},
		{"2021", 2021},
		{"", 0},
		{"Winter 2020", 0},
	}
	for _, tt := range tests {
		if got := pubYear(tt.dp); got != tt.want {
			t.Errorf("pubYear(%q) = %d, want %d", tt.dp, got, tt.want)
		}
	}
}

func TestFormatCSLWritesYAMLList(t *testing.T) {
	var buf bytes.Buffer
	err := FormatCSL([]types.Record{{PMID: "1", Title: "A"}}, &buf)
	if err != nil {
		t.Fatalf("FormatCSL: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "id: pmid-1") {
		t.Errorf("output missing CSL id: %q", out)
	}
	if !strings.Contains(out, "type: article-journal") {
		t.Errorf("output missing CSL type: %q", out)
	}
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	err := FormatJSON([]types.Record{{PMID: "1", Title: "A"}}, &buf)
	if err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"pmid": "1"`) {
		t.Errorf("output missing pmid field: %q", buf.String())
	}
}
