package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/questionbank"
	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/screens/history"
	"github.com/quizdeck/quizdeck/internal/screens/play"
	"github.com/quizdeck/quizdeck/internal/store"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// SetupScreen is the landing screen: pick a domain filter, tweak the
// session length, start a run. It builds a fresh engine for every
// session so no state leaks between runs.
type SetupScreen struct {
	universe []questionbank.Question
	histRepo store.HistoryRepo

	menu       components.Menu
	menuLabels []string

	timerInput   components.TextInput
	timerSecs    int
	editingTimer bool

	errMsg string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates the setup screen over the question universe. histRepo
// may be nil when the history store failed to open; the past-sessions
// entry is disabled in that case. timerSecs is the configured default
// session length.
func New(universe []questionbank.Question, histRepo store.HistoryRepo, timerSecs int) *SetupScreen {
	if timerSecs <= 0 {
		timerSecs = quiz.DefaultTimerSeconds
	}

	s := &SetupScreen{
		universe:   universe,
		histRepo:   histRepo,
		timerSecs:  timerSecs,
		timerInput: components.NewTextInput(fmt.Sprintf("%d", timerSecs), true, 5),
	}

	filters := append([]questionbank.Domain{questionbank.DomainAll}, questionbank.Domains()...)

	var items []components.MenuItem
	var labels []string
	for _, d := range filters {
		d := d
		label := strings.ToUpper(questionbank.DisplayName(d))
		labels = append(labels, label)
		items = append(items, components.MenuItem{
			Label:  label,
			Action: func() tea.Cmd { return s.start(d) },
		})
	}

	labels = append(labels, "PAST SESSIONS")
	items = append(items, components.MenuItem{
		Label:    "PAST SESSIONS",
		Disabled: histRepo == nil,
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(s.histRepo)}
			}
		},
	})

	labels = append(labels, "QUIT")
	items = append(items, components.MenuItem{
		Label:  "QUIT",
		Action: func() tea.Cmd { return tea.Quit },
	})

	s.menu = components.NewMenu(items)
	s.menuLabels = labels
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "Setup"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	if s.editingTimer {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Tab", Description: "Back to menu"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Tab", Description: "Session length"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// start launches a session with the given domain filter. An empty
// filtered pool keeps the player here with an inline message instead
// of a dead session.
func (s *SetupScreen) start(d questionbank.Domain) tea.Cmd {
	eng := quiz.NewEngine(s.universe, quiz.Config{TimerSeconds: s.timerSecs})
	if err := eng.StartGame(d); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.errMsg = ""
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: play.New(eng, s.histRepo)}
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.editingTimer {
		switch kmsg.String() {
		case "enter":
			v, err := s.timerInput.NumericValue()
			if err != nil || v <= 0 {
				s.timerInput.Submit(false)
				return s, nil
			}
			s.timerSecs = v
			s.timerInput.Submit(true)
			s.editingTimer = false
			s.timerInput.Blur()
			return s, nil
		case "tab", "esc":
			s.editingTimer = false
			s.timerInput.Blur()
			return s, nil
		}
		var cmd tea.Cmd
		s.timerInput, cmd = s.timerInput.Update(msg)
		return s, cmd
	}

	if kmsg.String() == "tab" {
		s.editingTimer = true
		return s, s.timerInput.Focus()
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SetupScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height by
	// adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := layout.IsCompactWidth(width) || layout.IsCompactHeight(termHeight)

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, components.StatsBar(s.renderStats(compact), cw))
	sections = append(sections, s.renderTimerLine(cw))
	sections = append(sections, s.renderMenu())

	if s.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg))
	}

	content := strings.Join(sections, "\n\n")

	return components.CabinetFrame(content, width, height)
}

// renderStats builds the stats-bar line: deck size, domain count, and
// the current session length.
func (s *SetupScreen) renderStats(compact bool) string {
	cardStyle := lipgloss.NewStyle().Foreground(theme.MarqueeGold).Bold(true)
	domainStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	timerStyle := lipgloss.NewStyle().Foreground(theme.MarqueeCyan).Bold(true)

	mins := s.timerSecs / 60
	secs := s.timerSecs % 60

	if compact {
		return fmt.Sprintf("%s %s %s",
			cardStyle.Render(fmt.Sprintf("◆%d", len(s.universe))),
			domainStyle.Render(fmt.Sprintf("▣%d", len(questionbank.Domains()))),
			timerStyle.Render(fmt.Sprintf("⏱%d:%02d", mins, secs)),
		)
	}
	return fmt.Sprintf("%s  %s  %s",
		cardStyle.Render(fmt.Sprintf("◆ %d CARDS", len(s.universe))),
		domainStyle.Render(fmt.Sprintf("▣ %d DOMAINS", len(questionbank.Domains()))),
		timerStyle.Render(fmt.Sprintf("⏱ %d:%02d", mins, secs)),
	)
}

// renderTimerLine shows the session-length field, highlighted while it
// has focus.
func (s *SetupScreen) renderTimerLine(cw int) string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render("SESSION LENGTH ")
	var field string
	if s.editingTimer {
		field = s.timerInput.View()
	} else {
		field = lipgloss.NewStyle().Foreground(theme.Text).
			Render(fmt.Sprintf("%d sec", s.timerSecs)) +
			theme.Hint.Render("  (tab to edit)")
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(label + field)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

func (s *SetupScreen) renderMenu() string {
	var rows []string
	for i, item := range s.menu.Items {
		rows = append(rows, components.CabinetButton(
			item.Label, i == s.menu.Selected && !s.editingTimer, item.Disabled, buttonWidth))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}
