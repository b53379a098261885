package questionbank

import (
	"testing"
)

func TestDomains_OrderIsStable(t *testing.T) {
	got := Domains()
	want := []Domain{DomainScience, DomainHistory, DomainGeography, DomainLiterature}
	if len(got) != len(want) {
		t.Fatalf("Domains() returned %d domains, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Domains()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseDomain(t *testing.T) {
	tests := []struct {
		in      string
		want    Domain
		wantErr bool
	}{
		{"science", DomainScience, false},
		{"history", DomainHistory, false},
		{"geography", DomainGeography, false},
		{"literature", DomainLiterature, false},
		{"all", DomainAll, false},
		{"Science", "", true},
		{"math", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDomain(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDomain(%q) = %q, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDomain(%q) returned error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDomain(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName(DomainScience); got != "Science" {
		t.Errorf("DisplayName(science) = %q, want %q", got, "Science")
	}
	if got := DisplayName(DomainAll); got != "All Domains" {
		t.Errorf("DisplayName(all) = %q, want %q", got, "All Domains")
	}
	for _, d := range Domains() {
		if DisplayName(d) == string(d) {
			t.Errorf("DisplayName(%q) has no display form", d)
		}
	}
}

func testUniverse() []Question {
	return []Question{
		{ID: "s1", Domain: DomainScience, Prompt: "sp1", Answer: "sa1"},
		{ID: "s2", Domain: DomainScience, Prompt: "sp2", Answer: "sa2"},
		{ID: "h1", Domain: DomainHistory, Prompt: "hp1", Answer: "ha1"},
		{ID: "g1", Domain: DomainGeography, Prompt: "gp1", Answer: "ga1"},
	}
}

func TestFilter_SingleDomain(t *testing.T) {
	universe := testUniverse()
	got := Filter(universe, DomainScience)
	if len(got) != 2 {
		t.Fatalf("Filter(science) returned %d questions, want 2", len(got))
	}
	for _, q := range got {
		if q.Domain != DomainScience {
			t.Errorf("Filter(science) included question %q from domain %q", q.ID, q.Domain)
		}
	}
}

func TestFilter_AllMatchesEverything(t *testing.T) {
	universe := testUniverse()
	got := Filter(universe, DomainAll)
	if len(got) != len(universe) {
		t.Errorf("Filter(all) returned %d questions, want %d", len(got), len(universe))
	}
}

func TestFilter_NoMatchesReturnsEmpty(t *testing.T) {
	universe := testUniverse()
	got := Filter(universe, DomainLiterature)
	if len(got) != 0 {
		t.Errorf("Filter(literature) returned %d questions, want 0", len(got))
	}
}

func TestFilter_DoesNotMutateUniverse(t *testing.T) {
	universe := testUniverse()
	got := Filter(universe, DomainScience)
	if len(got) == 0 {
		t.Fatal("Filter(science) returned no questions")
	}
	got[0].ID = "mutated"
	if universe[0].ID != "s1" {
		t.Errorf("mutating the filtered slice changed the universe: %q", universe[0].ID)
	}
}
