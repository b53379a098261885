package quiz

import (
	"fmt"
	"math/rand/v2"

	"github.com/quizdeck/quizdeck/internal/questionbank"
)

// Deck is the ordered workload of one session. Cards are never removed:
// the cursor sweeps forward, and a wrong answer appends its card to the
// tail so it comes around again. Length and cursor only ever grow.
type Deck struct {
	cards  []*questionbank.Question
	cursor int
}

// NewDeck builds the session workload: the universe filtered by domain
// and shuffled into play order. Cards are pointers into the caller's
// slice; question content is never copied or mutated.
func NewDeck(r *rand.Rand, universe []questionbank.Question, filter questionbank.Domain) *Deck {
	var cards []*questionbank.Question
	for i := range universe {
		if filter == questionbank.DomainAll || universe[i].Domain == filter {
			cards = append(cards, &universe[i])
		}
	}
	return &Deck{cards: Shuffle(r, cards)}
}

// Current returns the card at the cursor. Reading past the tail is a
// bug in the caller and panics.
func (d *Deck) Current() *questionbank.Question {
	if d.cursor >= len(d.cards) {
		panic(fmt.Sprintf("deck cursor %d out of range (len %d)", d.cursor, len(d.cards)))
	}
	return d.cards[d.cursor]
}

// Requeue appends q to the tail. The cursor is unaffected, so repeats
// of distinct misses keep their first-missed order.
func (d *Deck) Requeue(q *questionbank.Question) {
	d.cards = append(d.cards, q)
}

// HasNext reports whether a card exists past the cursor.
func (d *Deck) HasNext() bool {
	return d.cursor+1 < len(d.cards)
}

// Advance moves the cursor one card forward, stopping at one past the
// tail.
func (d *Deck) Advance() {
	if d.cursor < len(d.cards) {
		d.cursor++
	}
}

// Len returns the number of cards, counting re-queued repeats.
func (d *Deck) Len() int { return len(d.cards) }

// Cursor returns the current read position.
func (d *Deck) Cursor() int { return d.cursor }
