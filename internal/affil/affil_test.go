// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package affil

import (
	"testing"
)

func TestMatchCuratedOrganizations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain company", "Pfizer Inc., New York, NY, USA.", "Pfizer"},
		{"hoffmann la roche", "F. Hoffmann-La Roche AG, Basel, Switzerland.", "Roche"},
		{"roche diagnostics", "Roche Diagnostics GmbH, Mannheim, Germany.", "Roche"},
		{"bare roche", "Roche Pharma Research and Early Development, Basel.", "Roche"},
		{"novartis institutes", "Novartis Institutes for BioMedical Research, Cambridge, MA.", "Novartis"},
		{"merck kgaa", "Merck KGaA, Darmstadt, Germany.", "Merck"},
		{"janssen maps to jnj", "Janssen Research & Development, LLC, Spring House, PA.", "Johnson & Johnson"},
		{"bms abbreviation", "BMS, Princeton, NJ.", "Bristol Myers Squibb"},
		{"gsk abbreviation", "GSK, Stevenage, UK.", "GSK"},
		{"lilly short form", "Lilly Research Laboratories, Indianapolis, IN.", "Eli Lilly"},
		{"novo nordisk", "Novo Nordisk A/S, Maaloev, Denmark.", "Novo Nordisk"},
		{"boehringer", "Boehringer Ingelheim Pharma GmbH & Co. KG.", "Boehringer Ingelheim"},
		{"case insensitive", "ASTRAZENECA R&D, Gothenburg, Sweden.", "AstraZeneca"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Match(tt.raw)
			if !ok {
				t.Fatalf("Match(%q) = no match, want %q", tt.raw, tt.want)
			}
			if got != tt.want {
				t.Errorf("Match(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestMatchNoMatch(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"academic affiliation", "Department of Neurology, University of Helsinki, Finland."},
		{"word boundary bayern", "Ludwig-Maximilians-Universitaet, Bayern, Germany."},
		{"word boundary brioches", "Institut des Brioches, Paris, France."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := Match(tt.raw); ok {
				t.Errorf("Match(%q) = %q, want no match", tt.raw, got)
			}
		})
	}
}

// The "la roche" sequence without a corporate indicator is a place name,
// not the company, and must never match even though the bare "roche"
// rule would otherwise apply.
func TestMatchLaRocheExclusion(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantOK  bool
	}{
		{"hospital place name", "La Roche-Guyon Hospital, Paris, France.", "", false},
		{"commune", "Centre Hospitalier, La Roche-sur-Yon, France.", "", false},
		{"corporate ag suffix", "F. Hoffmann-La Roche AG, Basel.", "Roche", true},
		{"corporate ltd suffix", "Hoffmann-La Roche Ltd, Mississauga, Canada.", "Roche", true},
		{"pharma indicator", "La Roche Pharma Division, Basel.", "Roche", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Match(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("Match(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Match(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestMatchDeterministic(t *testing.T) {
	raw := "Roche Diagnostics International Ltd, Rotkreuz, Switzerland."
	first, ok := Match(raw)
	if !ok {
		t.Fatal("expected a match")
	}
	for i := 0; i < 10; i++ {
		got, ok := Match(raw)
		if !ok || got != first {
			t.Fatalf("Match is not deterministic: got %q/%v, want %q", got, ok, first)
		}
	}
}

func TestOrganizationsOrderStable(t *testing.T) {
	orgs := Organizations()
	if len(orgs) != len(rules) {
		t.Fatalf("len(Organizations()) = %d, want %d", len(orgs), len(rules))
	}
	if orgs[0] != "Pfizer" || orgs[1] != "Roche" {
		t.Errorf("Organizations() order changed: %v", orgs[:2])
	}
}
