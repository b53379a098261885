package questionbank

import "fmt"

// Domain represents a subject-matter category of the question bank.
type Domain string

const (
	DomainScience    Domain = "science"
	DomainHistory    Domain = "history"
	DomainGeography  Domain = "geography"
	DomainLiterature Domain = "literature"

	// DomainAll is a filter-only sentinel matching every domain.
	// It is never carried by a Question.
	DomainAll Domain = "all"
)

// Domains returns the four question domains in display order. Both the
// setup menu and Filter consume this list, so the ordering lives in
// exactly one place.
func Domains() []Domain {
	return []Domain{
		DomainScience,
		DomainHistory,
		DomainGeography,
		DomainLiterature,
	}
}

// DisplayName returns a human-readable name for a domain.
func DisplayName(d Domain) string {
	switch d {
	case DomainScience:
		return "Science"
	case DomainHistory:
		return "History"
	case DomainGeography:
		return "Geography"
	case DomainLiterature:
		return "Literature"
	case DomainAll:
		return "All Domains"
	default:
		return string(d)
	}
}

// ParseDomain validates a domain label from user input (flags, config).
// "all" parses to DomainAll.
func ParseDomain(s string) (Domain, error) {
	d := Domain(s)
	if d == DomainAll {
		return d, nil
	}
	for _, known := range Domains() {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown domain %q (valid: science, history, geography, literature, all)", s)
}

// Question is a single immutable entry of the question bank.
type Question struct {
	// ID uniquely identifies the question within a bank.
	ID string `json:"id"`

	// Domain is the subject category, one of the four Domains values.
	Domain Domain `json:"domain"`

	// Prompt is the question text displayed to the player.
	Prompt string `json:"prompt"`

	// Answer is the correct answer text. It doubles as the distractor
	// text when this question is drawn as a distractor source for
	// another card in the same domain.
	Answer string `json:"answer"`
}

// Filter returns the questions matching the given domain. DomainAll
// matches everything. The universe is never mutated; the result is a
// fresh slice over the same records.
func Filter(universe []Question, d Domain) []Question {
	if d == DomainAll {
		out := make([]Question, len(universe))
		copy(out, universe)
		return out
	}
	var out []Question
	for _, q := range universe {
		if q.Domain == d {
			out = append(out, q)
		}
	}
	return out
}
