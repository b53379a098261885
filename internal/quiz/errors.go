package quiz

import (
	"fmt"

	"github.com/quizdeck/quizdeck/internal/questionbank"
)

// ErrEmptyPool indicates a domain filter matched no questions, so no
// session could be started.
type ErrEmptyPool struct {
	Filter questionbank.Domain
}

func (e *ErrEmptyPool) Error() string {
	if e.Filter == questionbank.DomainAll {
		return "question pool is empty"
	}
	return fmt.Sprintf("no questions in domain %q", e.Filter)
}
