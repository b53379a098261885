package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/questionbank"
	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// Result is the snapshot of a finished session the summary renders.
// It is captured at the moment the engine enters its summary phase, so
// the view stays stable however long the player lingers here.
type Result struct {
	Filter   questionbank.Domain
	Duration time.Duration
	Stats    quiz.Stats
	Domains  []quiz.DomainResult
	DeckLen  int
}

// SummaryScreen displays the results of a finished session.
type SummaryScreen struct {
	res Result
	eng *quiz.Engine
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen. eng is the engine that just finished;
// it is reset to its setup phase on the way out.
func New(res Result, eng *quiz.Engine) *SummaryScreen {
	return &SummaryScreen{res: res, eng: eng}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to setup"},
		{Key: "Esc", Description: "Back to setup"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// Discard the finished session's state before leaving so
			// the next run starts from zero.
			if s.eng != nil {
				s.eng.Reset()
			}
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	res := s.res

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!"))
	b.WriteString("\n\n")

	// Deck and duration.
	mins := int(res.Duration.Minutes())
	secs := int(res.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Deck: %s (%d cards)    Duration: %d:%02d",
			questionbank.DisplayName(res.Filter), res.DeckLen, mins, secs)))
	b.WriteString("\n\n")

	// Totals line.
	statsLine := fmt.Sprintf("Answered: %d        Correct: %d        Missed: %d        Repeats: %d",
		res.Stats.TotalAnswered, res.Stats.Correct, res.Stats.Wrong, res.Stats.Requeued)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	// Accuracy bar.
	bar := components.NewProgressBar("Accuracy",
		float64(res.Stats.Accuracy())/100, true, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	// Per-domain breakdown.
	if len(res.Domains) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Domains")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, dr := range res.Domains {
			if dr.Answered == 0 {
				continue
			}
			line := fmt.Sprintf("  %-12s %d/%d correct",
				questionbank.DisplayName(dr.Domain), dr.Correct, dr.Answered)

			style := lipgloss.NewStyle().Foreground(theme.Text)
			if dr.Correct == dr.Answered {
				style = style.Foreground(theme.Success)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				style.Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
