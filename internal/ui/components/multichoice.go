package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// optionLabels are the letter prefixes shown next to answer options.
var optionLabels = []string{"A", "B", "C", "D"}

// MultiChoice renders an answer-option list for one card. The option
// count varies: a thin question pool can yield fewer than four choices.
// The owning screen moves the selection and locks it in with Submit;
// after submission the view colors the correct option green and a wrong
// pick red.
type MultiChoice struct {
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

// NewMultiChoice creates a selector over the given options.
// correctIndex marks which option is the right answer, used for
// post-submit coloring.
func NewMultiChoice(options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Options:      options,
		CorrectIndex: correctIndex,
		Selected:     0,
		Submitted:    false,
		ChosenIndex:  -1,
	}
}

// Prev moves the selection up. No-op at the top or after submission.
func (m *MultiChoice) Prev() {
	if !m.Submitted && m.Selected > 0 {
		m.Selected--
	}
}

// Next moves the selection down. No-op at the bottom or after
// submission.
func (m *MultiChoice) Next() {
	if !m.Submitted && m.Selected < len(m.Options)-1 {
		m.Selected++
	}
}

// Select jumps the selection to index i. Out-of-range values and
// post-submission calls are ignored.
func (m *MultiChoice) Select(i int) {
	if !m.Submitted && i >= 0 && i < len(m.Options) {
		m.Selected = i
	}
}

// Submit locks in the current selection and returns the chosen option
// text. Submitting twice keeps the first choice.
func (m *MultiChoice) Submit() string {
	if !m.Submitted {
		m.Submitted = true
		m.ChosenIndex = m.Selected
	}
	return m.Options[m.ChosenIndex]
}

// IsCorrect returns true if the submitted choice was the correct one.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}

// View renders the option list.
func (m MultiChoice) View() string {
	var s string
	for i, opt := range m.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(optionLabels) {
			label = optionLabels[i]
		}
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		if m.Submitted {
			switch {
			case i == m.CorrectIndex:
				s += theme.Correct.Render(line) + "\n"
			case i == m.ChosenIndex:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == m.Selected {
				s += theme.Selected.Render(line) + "\n"
			} else {
				s += theme.Unselected.Render(line) + "\n"
			}
		}
	}
	return s
}
