package domain

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestSelectWinners_EveryoneWinsWhenFewEntrants(t *testing.T) {
	entrants := []string{"a", "b", "c"}

	for _, count := range []int{3, 5} {
		got := SelectWinners(entrants, count, DefaultPicker)
		if !slices.Equal(got, entrants) {
			t.Errorf("count %d: expected %v, got %v", count, entrants, got)
		}
	}
}

func TestSelectWinners_DistinctSubset(t *testing.T) {
	entrants := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	rng := rand.New(rand.NewPCG(1, 2))

	for range 100 {
		got := SelectWinners(entrants, 3, rng)
		if len(got) != 3 {
			t.Fatalf("expected 3 winners, got %v", got)
		}
		seen := map[string]bool{}
		for _, w := range got {
			if !slices.Contains(entrants, w) {
				t.Fatalf("winner %q is not an entrant", w)
			}
			if seen[w] {
				t.Fatalf("winner %q drawn twice in %v", w, got)
			}
			seen[w] = true
		}
	}
}

func TestSelectWinners_CoversAllEntrants(t *testing.T) {
	entrants := []string{"a", "b", "c", "d"}
	rng := rand.New(rand.NewPCG(3, 4))

	counts := map[string]int{}
	for range 2000 {
		for _, w := range SelectWinners(entrants, 1, rng) {
			counts[w]++
		}
	}
	for _, e := range entrants {
		// Expect roughly 500 each.
		if counts[e] < 350 || counts[e] > 650 {
			t.Errorf("entrant %q won %d times, expected about 500", e, counts[e])
		}
	}
}

func TestSelectWinners_DoesNotModifyInput(t *testing.T) {
	entrants := []string{"a", "b", "c", "d", "e"}
	original := slices.Clone(entrants)

	SelectWinners(entrants, 2, rand.New(rand.NewPCG(5, 6)))

	if !slices.Equal(entrants, original) {
		t.Errorf("expected input to be unchanged, got %v", entrants)
	}
}

func TestSelectWinners_Empty(t *testing.T) {
	if got := SelectWinners(nil, 1, DefaultPicker); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
	if got := SelectWinners([]string{"a"}, 0, DefaultPicker); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}
