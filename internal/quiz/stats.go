package quiz

import (
	"math"

	"github.com/quizdeck/quizdeck/internal/questionbank"
)

// Stats accumulates answer tallies for one session. Invariants after
// every submit: Requeued == Wrong, and TotalAnswered == Correct +
// Wrong.
type Stats struct {
	Correct       int
	Wrong         int
	Requeued      int
	TotalAnswered int
}

// Accuracy returns the percentage of answered cards that were correct,
// rounded to the nearest integer. A session with no answers is 0.
func (s Stats) Accuracy() int {
	if s.TotalAnswered == 0 {
		return 0
	}
	return int(math.Round(float64(s.Correct) / float64(s.TotalAnswered) * 100))
}

// DomainResult is one domain's share of a session's tallies.
type DomainResult struct {
	Domain   questionbank.Domain
	Answered int
	Correct  int
}
