// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import "testing"

func TestBuildQueryCombinations(t *testing.T) {
	tests := []struct {
		name         string
		affiliations []string
		diseaseTerms []string
		customTerms  string
		want         string
	}{
		{
			name:         "affiliation and disease",
			affiliations: []string{"Pfizer"},
			diseaseTerms: []string{"Gaucher disease"},
			want:         `("Pfizer"[ad]) AND ("Gaucher disease"[tiab])`,
		},
		{
			name:         "multiple affiliations ORed",
			affiliations: []string{"Roche", "Novartis"},
			want:         `("Roche"[ad] OR "Novartis"[ad])`,
		},
		{
			name:         "custom terms comma split",
			customTerms:  "enzyme replacement, gene therapy",
			want:         `("enzyme replacement"[tiab] OR "gene therapy"[tiab])`,
		},
		{
			name:         "all three categories",
			affiliations: []string{"Takeda"},
			diseaseTerms: []string{"Fabry disease"},
			customTerms:  "chaperone",
			want:         `("Takeda"[ad]) AND ("Fabry disease"[tiab]) AND ("chaperone"[tiab])`,
		},
		{
			name:         "blank entries dropped",
			affiliations: []string{"  ", "Amgen", ""},
			diseaseTerms: []string{""},
			customTerms:  " , ,",
			want:         `("Amgen"[ad])`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildQuery(tt.affiliations, tt.diseaseTerms, tt.customTerms)
			if got != tt.want {
				t.Errorf("BuildQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildQueryEmptyInputsCatchAll(t *testing.T) {
	got := BuildQuery(nil, nil, "")
	if got == "" {
		t.Fatal("BuildQuery with empty inputs returned an empty expression")
	}
	if got != catchAllQuery {
		t.Errorf("BuildQuery() = %q, want %q", got, catchAllQuery)
	}
}
