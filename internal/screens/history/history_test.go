package history

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/quizdeck/quizdeck/internal/questionbank"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/store"
)

// mockHistoryRepo implements store.HistoryRepo for testing.
type mockHistoryRepo struct {
	records []store.SessionRecord
	err     error
}

func (m *mockHistoryRepo) Append(_ context.Context, rec *store.SessionRecord) error {
	m.records = append(m.records, *rec)
	return nil
}

func (m *mockHistoryRepo) Recent(_ context.Context, limit int) ([]store.SessionRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	if limit > len(m.records) {
		limit = len(m.records)
	}
	return m.records[:limit], nil
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testRecords(n int) []store.SessionRecord {
	recs := make([]store.SessionRecord, n)
	for i := range recs {
		recs[i] = store.SessionRecord{
			ID:            fmt.Sprintf("session-%d", i),
			FinishedAt:    time.Date(2025, 3, 10-i, 12, 0, 0, 0, time.UTC),
			DomainFilter:  string(questionbank.DomainScience),
			DurationSecs:  300 + i,
			Correct:       8,
			Wrong:         2,
			Requeued:      2,
			TotalAnswered: 10,
			AccuracyPct:   80,
		}
	}
	return recs
}

// loaded builds a screen with its Init message already applied.
func loaded(t *testing.T, repo *mockHistoryRepo) *HistoryScreen {
	t.Helper()
	s := New(repo)
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected a load command from Init")
	}
	s.Update(cmd())
	return s
}

func TestHistoryScreen_Title(t *testing.T) {
	s := New(&mockHistoryRepo{})
	if s.Title() != "Past Sessions" {
		t.Errorf("Title = %q, want %q", s.Title(), "Past Sessions")
	}
}

func TestHistoryScreen_LoadsSessions(t *testing.T) {
	repo := &mockHistoryRepo{records: testRecords(3)}
	s := loaded(t, repo)

	if !s.loaded {
		t.Fatal("expected the screen to be loaded")
	}
	if len(s.sessions) != 3 {
		t.Errorf("sessions = %d, want 3", len(s.sessions))
	}
}

func TestHistoryScreen_LoadError(t *testing.T) {
	repo := &mockHistoryRepo{err: errors.New("disk on fire")}
	s := loaded(t, repo)

	if s.errMsg == "" {
		t.Fatal("expected an error message")
	}
	if !strings.Contains(s.View(80, 24), "disk on fire") {
		t.Error("expected the error in the view")
	}
}

func TestHistoryScreen_ViewLoading(t *testing.T) {
	s := New(&mockHistoryRepo{})
	if !strings.Contains(s.View(80, 24), "Loading") {
		t.Error("expected a loading message before the data arrives")
	}
}

func TestHistoryScreen_ViewEmpty(t *testing.T) {
	s := loaded(t, &mockHistoryRepo{})
	if !strings.Contains(s.View(80, 24), "No sessions yet") {
		t.Error("expected the empty-state message")
	}
}

func TestHistoryScreen_ViewRows(t *testing.T) {
	s := loaded(t, &mockHistoryRepo{records: testRecords(2)})
	view := s.View(80, 24)

	if !strings.Contains(view, "Science") {
		t.Error("expected the deck name in a row")
	}
	if !strings.Contains(view, "10 answered") {
		t.Error("expected the answered count in a row")
	}
	if !strings.Contains(view, "80% accuracy") {
		t.Error("expected the accuracy in a row")
	}
	// Detail line for the highlighted row only.
	if strings.Count(view, "2 repeats") != 1 {
		t.Error("expected exactly one detail line")
	}
}

func TestHistoryScreen_Navigation(t *testing.T) {
	s := loaded(t, &mockHistoryRepo{records: testRecords(3)})

	// Up from the top stays put.
	s.Update(specialKey(tea.KeyUp))
	if s.selected != 0 {
		t.Errorf("selected = %d, want 0", s.selected)
	}

	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyDown))
	if s.selected != 2 {
		t.Errorf("selected = %d, want 2", s.selected)
	}

	// Down from the bottom stays put.
	s.Update(specialKey(tea.KeyDown))
	if s.selected != 2 {
		t.Errorf("selected = %d, want 2", s.selected)
	}
}

func TestHistoryScreen_EscPops(t *testing.T) {
	s := loaded(t, &mockHistoryRepo{})
	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command after esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected a pop back to setup")
	}
}

func TestHistoryScreen_KeyHints(t *testing.T) {
	s := New(&mockHistoryRepo{})
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}
