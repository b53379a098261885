package questionbank

import "fmt"

// ErrInvalidBank indicates a bank file failed schema validation or the
// cross-record consistency checks.
type ErrInvalidBank struct {
	Source string
	Err    error
}

func (e *ErrInvalidBank) Error() string {
	return fmt.Sprintf("invalid question bank %s: %v", e.Source, e.Err)
}

func (e *ErrInvalidBank) Unwrap() error { return e.Err }
