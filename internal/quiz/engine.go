package quiz

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/quizdeck/quizdeck/internal/questionbank"
)

// Phase represents where the engine is in the session lifecycle.
type Phase int

const (
	PhaseSetup   Phase = iota // Choosing a domain filter
	PhasePlaying              // Serving cards, timer live
	PhaseSummary              // Showing final stats
)

// DefaultTimerSeconds is the standard countdown budget for one session.
const DefaultTimerSeconds = 1200

// Config carries the injectable knobs of an Engine.
type Config struct {
	// TimerSeconds is the countdown budget for one session. Zero or
	// negative falls back to DefaultTimerSeconds.
	TimerSeconds int

	// Rand drives deck shuffling and distractor draws. Tests inject a
	// seeded source for determinism; nil falls back to a randomly
	// seeded one.
	Rand *rand.Rand
}

// DefaultConfig returns the production configuration: the standard
// budget and a randomly seeded source.
func DefaultConfig() Config {
	return Config{
		TimerSeconds: DefaultTimerSeconds,
		Rand:         rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Engine owns the state of one quiz session and serializes every
// mutation through its methods. It never reads the wall clock for the
// countdown; the presentation loop feeds it elapsed seconds through
// TickSecond, which keeps sessions fully deterministic under test.
type Engine struct {
	universe []questionbank.Question
	rng      *rand.Rand
	budget   int

	phase     Phase
	deck      *Deck
	filter    questionbank.Domain
	sessionID string
	startedAt time.Time

	options  []string
	selected string
	answered bool

	timerRemaining int
	timerRunning   bool

	stats   Stats
	domains map[questionbank.Domain]*DomainResult
}

// NewEngine creates an engine in Setup over the given question
// universe. The universe must outlive the engine and is never mutated.
func NewEngine(universe []questionbank.Question, cfg Config) *Engine {
	if cfg.TimerSeconds <= 0 {
		cfg.TimerSeconds = DefaultTimerSeconds
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Engine{
		universe: universe,
		rng:      cfg.Rand,
		budget:   cfg.TimerSeconds,
		phase:    PhaseSetup,
	}
}

// StartGame builds a fresh session over the filtered universe and
// enters Playing with the timer running. An empty filtered pool is
// rejected with *ErrEmptyPool and the engine stays in Setup with no
// session state built. Calling StartGame outside Setup is a bug in the
// caller and panics.
func (e *Engine) StartGame(filter questionbank.Domain) error {
	if e.phase != PhaseSetup {
		panic("quiz: StartGame called outside Setup phase")
	}

	deck := NewDeck(e.rng, e.universe, filter)
	if deck.Len() == 0 {
		return &ErrEmptyPool{Filter: filter}
	}

	e.deck = deck
	e.filter = filter
	e.sessionID = uuid.New().String()
	e.startedAt = time.Now()
	e.stats = Stats{}
	e.domains = make(map[questionbank.Domain]*DomainResult)
	e.options = Options(e.rng, *deck.Current(), e.universe)
	e.selected = ""
	e.answered = false
	e.timerRemaining = e.budget
	e.timerRunning = true
	e.phase = PhasePlaying
	return nil
}

// SubmitAnswer records the player's pick for the current card and
// updates the tallies. A wrong answer re-queues the card at the deck
// tail. Submitting again before Advance is a no-op, so a card can never
// be double counted. Calling it outside Playing panics.
func (e *Engine) SubmitAnswer(option string) {
	if e.phase != PhasePlaying {
		panic("quiz: SubmitAnswer called outside Playing phase")
	}
	if e.answered {
		return
	}

	card := e.deck.Current()
	e.selected = option
	e.answered = true
	e.stats.TotalAnswered++

	dr := e.domainResult(card.Domain)
	dr.Answered++

	if option == card.Answer {
		e.stats.Correct++
		dr.Correct++
		return
	}
	e.stats.Wrong++
	e.stats.Requeued++
	e.deck.Requeue(card)
}

// Advance moves to the next card, or ends the session when the card
// just answered was the last one in the deck. Before an answer is
// submitted it is a no-op. Calling it outside Playing panics.
func (e *Engine) Advance() {
	if e.phase != PhasePlaying {
		panic("quiz: Advance called outside Playing phase")
	}
	if !e.answered {
		return
	}

	if e.deck.HasNext() {
		e.deck.Advance()
		e.options = Options(e.rng, *e.deck.Current(), e.universe)
		e.selected = ""
		e.answered = false
		return
	}

	e.timerRunning = false
	e.phase = PhaseSummary
}

// TickSecond consumes one elapsed second of the countdown. Ticks
// arriving outside Playing or while the timer is stopped are ignored,
// so a straggling tick delivered after a phase exit cannot mutate a
// finished session. Reaching zero ends the session immediately,
// answered or not.
func (e *Engine) TickSecond() {
	if e.phase != PhasePlaying || !e.timerRunning {
		return
	}
	e.timerRemaining--
	if e.timerRemaining <= 0 {
		e.timerRemaining = 0
		e.timerRunning = false
		e.phase = PhaseSummary
	}
}

// StopTimer suspends the countdown; ticks are ignored until StartTimer.
func (e *Engine) StopTimer() { e.timerRunning = false }

// StartTimer resumes the countdown. Outside Playing it is a no-op so a
// stray resume cannot revive a finished session's timer.
func (e *Engine) StartTimer() {
	if e.phase == PhasePlaying {
		e.timerRunning = true
	}
}

// Exit abandons the session: the timer stops, all session state is
// discarded, and the engine returns to Setup. Stats from the abandoned
// session are not reported anywhere.
func (e *Engine) Exit() { e.clearSession() }

// Reset returns to Setup from Summary, discarding the finished
// session's stats so the next StartGame begins from zero.
func (e *Engine) Reset() { e.clearSession() }

func (e *Engine) clearSession() {
	e.phase = PhaseSetup
	e.deck = nil
	e.filter = ""
	e.sessionID = ""
	e.startedAt = time.Time{}
	e.options = nil
	e.selected = ""
	e.answered = false
	e.timerRemaining = 0
	e.timerRunning = false
	e.stats = Stats{}
	e.domains = nil
}

func (e *Engine) domainResult(d questionbank.Domain) *DomainResult {
	if e.domains[d] == nil {
		e.domains[d] = &DomainResult{Domain: d}
	}
	return e.domains[d]
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase { return e.phase }

// CurrentCard returns the card under the deck cursor. Valid only while
// a session is live; the deck panics on out-of-range access.
func (e *Engine) CurrentCard() *questionbank.Question { return e.deck.Current() }

// CurrentOptions returns the option set for the current card. The
// slice is owned by the engine; callers must not modify it.
func (e *Engine) CurrentOptions() []string { return e.options }

// Answered reports whether the current card has been answered.
func (e *Engine) Answered() bool { return e.answered }

// SelectedOption returns the player's pick for the current card, or ""
// before an answer is submitted.
func (e *Engine) SelectedOption() string { return e.selected }

// Stats returns a copy of the session tallies.
func (e *Engine) Stats() Stats { return e.stats }

// TimerRemaining returns the countdown seconds left.
func (e *Engine) TimerRemaining() int { return e.timerRemaining }

// TimerRunning reports whether the countdown is live.
func (e *Engine) TimerRunning() bool { return e.timerRunning }

// DeckLen returns the session deck length including re-queued repeats,
// or 0 when no session is live.
func (e *Engine) DeckLen() int {
	if e.deck == nil {
		return 0
	}
	return e.deck.Len()
}

// DeckCursor returns the deck read position, or 0 when no session is
// live.
func (e *Engine) DeckCursor() int {
	if e.deck == nil {
		return 0
	}
	return e.deck.Cursor()
}

// SessionID returns the UUID of the live or just-finished session.
func (e *Engine) SessionID() string { return e.sessionID }

// Filter returns the domain filter of the live or just-finished
// session.
func (e *Engine) Filter() questionbank.Domain { return e.filter }

// StartedAt returns when the session began.
func (e *Engine) StartedAt() time.Time { return e.startedAt }

// DomainResults returns per-domain tallies in canonical domain order,
// skipping domains the session never touched.
func (e *Engine) DomainResults() []DomainResult {
	var out []DomainResult
	for _, d := range questionbank.Domains() {
		if r := e.domains[d]; r != nil {
			out = append(out, *r)
		}
	}
	return out
}
