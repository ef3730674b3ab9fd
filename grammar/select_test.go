package grammar

import (
	"math"
	mrand "math/rand"
	"testing"
)

// TestPickTransitionDistribution implements S6: pickTransition collapses
// to the *highest* probability bucket and chooses uniformly within it
// (spec §4.2 step 3, pinned Open Question) — it does not weight by the
// raw probability values. Two transitions tied at the top bucket (50/50)
// exercise that uniform-within-bucket choice: over 10000 draws, the
// empirical split is within 3 sigma of 0.5/0.5.
func TestPickTransitionDistribution(t *testing.T) {
	b := NewGrammarBuilder("g")
	s0, s1, s2 := b.State("s0"), b.State("s1"), b.State("s2")
	tA := b.Normal(s0, s1, nil).WithProbability(50)
	tB := b.Normal(s0, s2, nil).WithProbability(50)

	actor := newTestActor(&mockLayer{}, true)
	actor.WithRand(mrand.New(mrand.NewSource(1)))

	const n = 10000
	countA := 0
	for i := 0; i < n; i++ {
		chosen, err := pickTransition([]*Transition{tA, tB}, actor)
		if err != nil {
			t.Fatalf("pickTransition: %v", err)
		}
		if chosen == tA {
			countA++
		}
	}
	p := 0.5
	sigma := math.Sqrt(float64(n) * p * (1 - p))
	want := p * n
	if math.Abs(float64(countA)-want) > 3*sigma {
		t.Errorf("countA = %d, want within 3 sigma (%.1f) of %.1f", countA, 3*sigma, want)
	}
}

// TestPickTransitionCollapsesToHighestBucket covers the other half of the
// pinned rule: with unequal, non-forced probabilities (70 vs 30), the
// lower one is never in the top bucket and so is never chosen — the
// engine does not weight by 70/30, it always picks the 70.
func TestPickTransitionCollapsesToHighestBucket(t *testing.T) {
	b := NewGrammarBuilder("g")
	s0, s1, s2 := b.State("s0"), b.State("s1"), b.State("s2")
	tA := b.Normal(s0, s1, nil).WithProbability(70)
	tB := b.Normal(s0, s2, nil).WithProbability(30)

	actor := newTestActor(&mockLayer{}, true)
	for i := 0; i < 100; i++ {
		chosen, err := pickTransition([]*Transition{tA, tB}, actor)
		if err != nil {
			t.Fatalf("pickTransition: %v", err)
		}
		if chosen != tA {
			t.Fatalf("iteration %d: chosen = %v, want the higher-probability transition", i, chosen)
		}
	}
}

// TestPickTransitionForced implements the second half of S6: a forced
// (probability 100) transition is chosen every time.
func TestPickTransitionForced(t *testing.T) {
	b := NewGrammarBuilder("g")
	s0, s1, s2 := b.State("s0"), b.State("s1"), b.State("s2")
	tA := b.Normal(s0, s1, nil).WithProbability(70)
	tB := b.Normal(s0, s2, nil).WithProbability(100)

	actor := newTestActor(&mockLayer{}, true)
	for i := 0; i < 100; i++ {
		chosen, err := pickTransition([]*Transition{tA, tB}, actor)
		if err != nil {
			t.Fatalf("pickTransition: %v", err)
		}
		if chosen != tB {
			t.Fatalf("iteration %d: chosen = %v, want the forced transition", i, chosen)
		}
	}
}
