package neko

import "testing"

// scriptedSource replays fixed draws, cycling when exhausted.
type scriptedSource struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)]
	s.ii++
	return v % n
}

func TestRandomRangeAndChance(t *testing.T) {
	r := NewRandomFrom(&scriptedSource{floats: []float64{0, 0.5, 0.99}})

	if got := r.Range(10, 20); got != 10 {
		t.Errorf("Range at 0 = %v, expected 10", got)
	}
	if got := r.Range(10, 20); got != 15 {
		t.Errorf("Range at 0.5 = %v, expected 15", got)
	}
	if r.Chance(0.5) {
		t.Error("Chance(0.5) with draw 0.99 should be false")
	}
	if r.Chance(0) {
		t.Error("Chance(0) must never fire")
	}
}

func TestRandomIntnNonPositive(t *testing.T) {
	r := NewRandom(1)
	if r.Intn(0) != 0 || r.Intn(-3) != 0 {
		t.Error("Intn should return 0 for non-positive n")
	}
}

func TestRandomShuffleIsPermutation(t *testing.T) {
	r := NewRandom(7)
	items := []int{0, 1, 2, 3, 4, 5, 6, 7}
	r.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })

	seen := make(map[int]bool)
	for _, v := range items {
		seen[v] = true
	}
	if len(seen) != 8 {
		t.Errorf("shuffle lost elements: %v", items)
	}
}

func TestRandomShuffleUsesEveryPosition(t *testing.T) {
	// Count where element 0 lands; an unbiased shuffle reaches every slot.
	r := NewRandom(99)
	landed := make([]int, 3)
	for trial := 0; trial < 3000; trial++ {
		items := []int{0, 1, 2}
		r.Shuffle(3, func(i, j int) { items[i], items[j] = items[j], items[i] })
		for pos, v := range items {
			if v == 0 {
				landed[pos]++
			}
		}
	}
	for pos, n := range landed {
		if n < 800 || n > 1200 {
			t.Errorf("element 0 landed in slot %d %d/3000 times, expected ~1000", pos, n)
		}
	}
}

func TestRandomDeterministicBySeed(t *testing.T) {
	a, b := NewRandom(42), NewRandom(42)
	for i := 0; i < 20; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("same seed should produce same sequence")
		}
	}
}
