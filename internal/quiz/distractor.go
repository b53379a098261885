package quiz

import (
	"math/rand/v2"

	"github.com/quizdeck/quizdeck/internal/questionbank"
)

// MaxOptions is the option count for a fully stocked card: the correct
// answer plus three distractors.
const MaxOptions = 4

// Options builds the answer choices shown for target: up to three
// distractor answers drawn from the rest of the universe, plus the
// correct answer, in random order.
//
// Distractors prefer the target's own domain when it can fill all three
// slots; otherwise the whole universe is eligible. Candidate answers
// are deduplicated by text, and any text equal to the correct answer is
// excluded so it cannot appear twice. When fewer than three unique
// alternatives exist the list is simply shorter; callers must tolerate
// option counts below MaxOptions.
func Options(r *rand.Rand, target questionbank.Question, universe []questionbank.Question) []string {
	pool := make([]questionbank.Question, 0, len(universe))
	for _, q := range universe {
		if q.ID != target.ID {
			pool = append(pool, q)
		}
	}

	sameDomain := make([]questionbank.Question, 0, len(pool))
	for _, q := range pool {
		if q.Domain == target.Domain {
			sameDomain = append(sameDomain, q)
		}
	}
	if len(sameDomain) >= MaxOptions-1 {
		pool = sameDomain
	}

	seen := map[string]bool{target.Answer: true}
	texts := make([]string, 0, len(pool))
	for _, q := range pool {
		if !seen[q.Answer] {
			seen[q.Answer] = true
			texts = append(texts, q.Answer)
		}
	}

	distractors := Shuffle(r, texts)
	if len(distractors) > MaxOptions-1 {
		distractors = distractors[:MaxOptions-1]
	}
	return Shuffle(r, append(distractors, target.Answer))
}
