package quiz

import (
	"math/rand/v2"
	"testing"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestShuffle_IsPermutation(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	out := Shuffle(testRand(), in)

	if len(out) != len(in) {
		t.Fatalf("Shuffle returned %d elements, want %d", len(out), len(in))
	}
	counts := make(map[string]int)
	for _, v := range in {
		counts[v]++
	}
	for _, v := range out {
		counts[v]--
	}
	for v, n := range counts {
		if n != 0 {
			t.Errorf("element %q count off by %d after shuffle", v, n)
		}
	}
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	// A few draws so a swap back into place cannot mask mutation.
	r := testRand()
	for range 20 {
		Shuffle(r, in)
	}
	for i := range want {
		if in[i] != want[i] {
			t.Fatalf("input mutated at %d: got %d, want %d", i, in[i], want[i])
		}
	}
}

func TestShuffle_EmptyAndSingle(t *testing.T) {
	r := testRand()

	empty := Shuffle(r, []int{})
	if len(empty) != 0 {
		t.Errorf("Shuffle(empty) returned %d elements, want 0", len(empty))
	}

	single := Shuffle(r, []int{42})
	if len(single) != 1 || single[0] != 42 {
		t.Errorf("Shuffle(single) = %v, want [42]", single)
	}
}

func TestShuffle_ReturnsFreshSlice(t *testing.T) {
	in := []int{1, 2, 3}
	out := Shuffle(testRand(), in)
	out[0] = 99
	if in[0] == 99 {
		t.Error("mutating the result changed the input slice")
	}
}

func TestShuffle_DeterministicUnderSeed(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}

	a := Shuffle(rand.New(rand.NewPCG(7, 7)), in)
	b := Shuffle(rand.New(rand.NewPCG(7, 7)), in)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different orders: %v vs %v", a, b)
		}
	}
}

func TestShuffle_EventuallyReorders(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	r := testRand()

	for range 50 {
		out := Shuffle(r, in)
		for i := range out {
			if out[i] != in[i] {
				return
			}
		}
	}
	t.Error("50 shuffles of 8 elements never changed the order")
}
