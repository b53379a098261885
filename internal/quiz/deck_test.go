package quiz

import (
	"testing"

	"github.com/quizdeck/quizdeck/internal/questionbank"
)

func TestNewDeck_FiltersByDomain(t *testing.T) {
	universe := append(
		domainUniverse("s", questionbank.DomainScience, 4),
		domainUniverse("h", questionbank.DomainHistory, 3)...,
	)

	d := NewDeck(testRand(), universe, questionbank.DomainHistory)
	if d.Len() != 3 {
		t.Fatalf("deck length = %d, want 3", d.Len())
	}
	for i := 0; i < d.Len(); i++ {
		if d.Current().Domain != questionbank.DomainHistory {
			t.Errorf("card %s has domain %q, want history", d.Current().ID, d.Current().Domain)
		}
		d.Advance()
	}
}

func TestNewDeck_AllDomains(t *testing.T) {
	universe := append(
		domainUniverse("s", questionbank.DomainScience, 4),
		domainUniverse("h", questionbank.DomainHistory, 3)...,
	)

	d := NewDeck(testRand(), universe, questionbank.DomainAll)
	if d.Len() != 7 {
		t.Errorf("deck length = %d, want 7", d.Len())
	}
}

func TestNewDeck_EmptyFilter(t *testing.T) {
	universe := domainUniverse("s", questionbank.DomainScience, 4)

	d := NewDeck(testRand(), universe, questionbank.DomainLiterature)
	if d.Len() != 0 {
		t.Errorf("deck length = %d, want 0", d.Len())
	}
	if d.HasNext() {
		t.Error("empty deck reports HasNext")
	}
}

func TestNewDeck_CardsPointIntoUniverse(t *testing.T) {
	universe := domainUniverse("s", questionbank.DomainScience, 5)

	d := NewDeck(testRand(), universe, questionbank.DomainScience)
	found := false
	for i := range universe {
		if d.Current() == &universe[i] {
			found = true
		}
	}
	if !found {
		t.Error("current card is not a pointer into the universe slice")
	}
}

func TestDeck_AdvanceAndHasNext(t *testing.T) {
	universe := domainUniverse("s", questionbank.DomainScience, 3)
	d := NewDeck(testRand(), universe, questionbank.DomainAll)

	if d.Cursor() != 0 {
		t.Fatalf("fresh deck cursor = %d, want 0", d.Cursor())
	}
	if !d.HasNext() {
		t.Fatal("deck of 3 at cursor 0 should have next")
	}

	d.Advance()
	d.Advance()
	if d.Cursor() != 2 {
		t.Errorf("cursor = %d after two advances, want 2", d.Cursor())
	}
	if d.HasNext() {
		t.Error("deck of 3 at last card should not have next")
	}
}

func TestDeck_RequeueGrowsTailOnly(t *testing.T) {
	universe := domainUniverse("s", questionbank.DomainScience, 3)
	d := NewDeck(testRand(), universe, questionbank.DomainAll)

	first := d.Current()
	d.Requeue(first)

	if d.Len() != 4 {
		t.Fatalf("deck length = %d after requeue, want 4", d.Len())
	}
	if d.Cursor() != 0 {
		t.Errorf("requeue moved the cursor to %d", d.Cursor())
	}

	// The requeued card comes back around at the tail.
	for d.HasNext() {
		d.Advance()
	}
	if d.Current() != first {
		t.Errorf("tail card = %s, want the requeued card %s", d.Current().ID, first.ID)
	}
}

func TestDeck_RequeuePreservesMissOrder(t *testing.T) {
	universe := domainUniverse("s", questionbank.DomainScience, 3)
	d := NewDeck(testRand(), universe, questionbank.DomainAll)

	a := d.Current()
	d.Requeue(a)
	d.Advance()
	b := d.Current()
	d.Requeue(b)

	if d.Len() != 5 {
		t.Fatalf("deck length = %d, want 5", d.Len())
	}
	d.Advance()
	d.Advance()
	if d.Current() != a {
		t.Errorf("first requeued slot = %s, want %s", d.Current().ID, a.ID)
	}
	d.Advance()
	if d.Current() != b {
		t.Errorf("second requeued slot = %s, want %s", d.Current().ID, b.ID)
	}
}

func TestDeck_AdvanceStopsAtOnePastTail(t *testing.T) {
	universe := domainUniverse("s", questionbank.DomainScience, 2)
	d := NewDeck(testRand(), universe, questionbank.DomainAll)

	for range 10 {
		d.Advance()
	}
	if d.Cursor() != 2 {
		t.Errorf("cursor = %d after over-advancing, want 2", d.Cursor())
	}
}

func TestDeck_CurrentPanicsPastTail(t *testing.T) {
	universe := domainUniverse("s", questionbank.DomainScience, 1)
	d := NewDeck(testRand(), universe, questionbank.DomainAll)
	d.Advance()

	defer func() {
		if recover() == nil {
			t.Error("Current past the tail did not panic")
		}
	}()
	d.Current()
}

func TestDeck_CursorAndLenAreMonotonic(t *testing.T) {
	universe := domainUniverse("s", questionbank.DomainScience, 4)
	d := NewDeck(testRand(), universe, questionbank.DomainAll)

	prevCursor, prevLen := d.Cursor(), d.Len()
	step := func(what string) {
		if d.Cursor() < prevCursor {
			t.Fatalf("cursor decreased after %s: %d -> %d", what, prevCursor, d.Cursor())
		}
		if d.Len() < prevLen {
			t.Fatalf("length decreased after %s: %d -> %d", what, prevLen, d.Len())
		}
		prevCursor, prevLen = d.Cursor(), d.Len()
	}

	d.Requeue(d.Current())
	step("requeue")
	d.Advance()
	step("advance")
	d.Requeue(d.Current())
	step("requeue")
	for d.HasNext() {
		d.Advance()
		step("advance")
	}
}
