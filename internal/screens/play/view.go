package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/questionbank"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

func (p *PlayScreen) View(width, height int) string {
	if p.quitConfirm {
		return renderQuitConfirm(width)
	}
	return p.renderCardView(width)
}

// renderCardView renders the current card: info line, prompt, options,
// and the feedback block once an answer is in.
func (p *PlayScreen) renderCardView(width int) string {
	var b strings.Builder

	// Info line: deck on the left, progress / tallies / timer on the
	// right.
	stats := p.eng.Stats()

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Deck: %s", questionbank.DisplayName(p.eng.Filter())))

	rem := p.eng.TimerRemaining()
	timerStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	if rem <= 60 {
		timerStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Card %d/%d  %s %d  %s %d  ",
			p.eng.DeckCursor()+1,
			p.eng.DeckLen(),
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			stats.Correct,
			lipgloss.NewStyle().Foreground(theme.Error).Render("✗"),
			stats.Wrong,
		)) + timerStyle.Render(fmt.Sprintf("⏱ %d:%02d", rem/60, rem%60))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Prompt (centered).
	promptStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(promptStyle.Render(p.eng.CurrentCard().Prompt))
	b.WriteString("\n\n")

	// Options.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, p.mc.View()))
	b.WriteString("\n")

	if p.eng.Answered() {
		b.WriteString(p.renderFeedback(width))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Select (1-%d) or use arrows + Enter", len(p.mc.Options))))
	}

	return b.String()
}

// renderFeedback renders the verdict under the colored options.
func (p *PlayScreen) renderFeedback(width int) string {
	var b strings.Builder

	if p.mc.IsCorrect() {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("This card comes back around later in the deck."))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter for the next card..."))

	return b.String()
}

// renderQuitConfirm renders the end-session dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End session early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("This run's results won't be recorded."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}
