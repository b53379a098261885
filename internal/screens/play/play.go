package play

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/screens/summary"
	"github.com/quizdeck/quizdeck/internal/store"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
)

// PlayScreen drives one running session: it renders the current card,
// feeds answer and timer events into the engine, and hands off to the
// summary screen when the engine reports the session is over.
type PlayScreen struct {
	eng      *quiz.Engine
	histRepo store.HistoryRepo

	mc          components.MultiChoice
	quitConfirm bool
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates the play screen for an engine already in its playing
// phase (StartGame succeeded). histRepo may be nil; finished sessions
// are then simply not recorded.
func New(eng *quiz.Engine, histRepo store.HistoryRepo) *PlayScreen {
	return &PlayScreen{
		eng:      eng,
		histRepo: histRepo,
		mc:       newChoice(eng),
	}
}

// newChoice builds the option selector for the engine's current card.
func newChoice(eng *quiz.Engine) components.MultiChoice {
	opts := eng.CurrentOptions()
	correct := 0
	for i, o := range opts {
		if o == eng.CurrentCard().Answer {
			correct = i
			break
		}
	}
	return components.NewMultiChoice(opts, correct)
}

func (p *PlayScreen) Init() tea.Cmd {
	return tickCmd()
}

func (p *PlayScreen) Title() string {
	return "Play"
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	if p.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if p.eng.Answered() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next card"},
			{Key: "Esc", Description: "End session"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "End session"},
	}
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return p.handleTick()
	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *PlayScreen) handleTick() (screen.Screen, tea.Cmd) {
	p.eng.TickSecond()

	// Hitting zero forces the session over, answered or not.
	if p.eng.Phase() == quiz.PhaseSummary {
		return p, p.finish()
	}
	if p.eng.TimerRunning() {
		return p, tickCmd()
	}
	// Timer paused (quit dialog); resume re-arms the loop.
	return p, nil
}

func (p *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Quit confirmation dialog.
	if p.quitConfirm {
		switch key {
		case "y", "Y":
			p.eng.Exit()
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			p.quitConfirm = false
			p.eng.StartTimer()
			return p, tickCmd()
		}
		return p, nil
	}

	if key == "esc" {
		p.quitConfirm = true
		p.eng.StopTimer()
		return p, nil
	}

	// Feedback shown; enter moves on.
	if p.eng.Answered() {
		if key == "enter" {
			p.eng.Advance()
			if p.eng.Phase() == quiz.PhaseSummary {
				return p, p.finish()
			}
			p.mc = newChoice(p.eng)
		}
		return p, nil
	}

	// Active card.
	switch key {
	case "up", "k":
		p.mc.Prev()
	case "down", "j":
		p.mc.Next()
	case "enter":
		return p.submit()
	case "1", "2", "3", "4":
		i := int(key[0] - '1')
		if i < len(p.mc.Options) {
			p.mc.Select(i)
			return p.submit()
		}
	}
	return p, nil
}

// submit locks the choice in and pushes it through the engine.
func (p *PlayScreen) submit() (screen.Screen, tea.Cmd) {
	p.eng.SubmitAnswer(p.mc.Submit())
	return p, nil
}

// finish records the completed run and swaps in the summary screen.
// The play screen is replaced rather than stacked so the summary's
// back action lands on setup.
func (p *PlayScreen) finish() tea.Cmd {
	res := summary.Result{
		Filter:   p.eng.Filter(),
		Duration: time.Since(p.eng.StartedAt()),
		Stats:    p.eng.Stats(),
		Domains:  p.eng.DomainResults(),
		DeckLen:  p.eng.DeckLen(),
	}

	if p.histRepo != nil {
		// Best effort; a failed write never blocks the summary.
		_ = p.histRepo.Append(context.Background(), &store.SessionRecord{
			ID:            p.eng.SessionID(),
			FinishedAt:    time.Now(),
			DomainFilter:  string(p.eng.Filter()),
			DurationSecs:  int(res.Duration.Seconds()),
			Correct:       res.Stats.Correct,
			Wrong:         res.Stats.Wrong,
			Requeued:      res.Stats.Requeued,
			TotalAnswered: res.Stats.TotalAnswered,
			AccuracyPct:   res.Stats.Accuracy(),
		})
	}

	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(res, p.eng)}
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
