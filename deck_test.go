package pokercore

import (
	"math/rand"
	"sort"
	"strconv"
	"testing"

	"gonum.org/v1/gonum/stat/combin"
)

func TestUnshuffledSizeAndUniqueness(t *testing.T) {
	cards := Unshuffled()
	if len(cards) != UnshuffledSize {
		t.Fatalf("len = %d, want %d", len(cards), UnshuffledSize)
	}
	seen := make(map[Card]bool, 52)
	for _, c := range cards {
		if seen[c] {
			t.Fatalf("duplicate card %v in fresh deck", c)
		}
		seen[c] = true
	}
}

func TestDeckDealExhaustive(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	d := NewDeck()
	seen := make(map[Card]bool, 52)
	for i := 0; i < UnshuffledSize; i++ {
		c, err := d.Deal(rng)
		if err != nil {
			t.Fatalf("Deal: %v", err)
		}
		if seen[c] {
			t.Fatalf("card %v dealt twice", c)
		}
		seen[c] = true
	}
	if d.Len() != 0 {
		t.Fatalf("deck len after exhaustive deal = %d, want 0", d.Len())
	}
	if len(seen) != 52 {
		t.Fatalf("saw %d distinct cards, want 52", len(seen))
	}
	if _, err := d.Deal(rng); err != ErrEmptyDeck {
		t.Fatalf("Deal on empty deck: got %v, want ErrEmptyDeck", err)
	}
}

func TestDeckRemove(t *testing.T) {
	d := NewDeck()
	c := New(Ace, Spade)
	if err := d.Remove(c); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if d.Contains(c) {
		t.Fatalf("deck still contains %v after Remove", c)
	}
	if d.Len() != UnshuffledSize-1 {
		t.Fatalf("len = %d, want %d", d.Len(), UnshuffledSize-1)
	}
	if err := d.Remove(c); err != ErrCardAbsent {
		t.Fatalf("second Remove: got %v, want ErrCardAbsent", err)
	}
}

func TestCombinationIterCount(t *testing.T) {
	cards := Unshuffled()[:10]
	it := Subsets5(cards)
	count := 0
	for it.Next() {
		count++
		if len(it.Cards()) != 5 {
			t.Fatalf("subset length = %d, want 5", len(it.Cards()))
		}
	}
	want := combin.Binomial(10, 5)
	if count != want {
		t.Fatalf("count = %d, want %d", count, want)
	}
}

func TestCombinationIterMatchesGonum(t *testing.T) {
	cards := Unshuffled()[:8]
	it := NewCombinationIter(cards, 3)
	var got [][]int
	for it.Next() {
		idx := make([]int, 0, 3)
		for _, c := range it.Cards() {
			idx = append(idx, c.Index())
		}
		sort.Ints(idx)
		got = append(got, idx)
	}
	want := combin.Combinations(8, 3)
	if len(got) != len(want) {
		t.Fatalf("got %d combinations, want %d", len(got), len(want))
	}
	for i := range want {
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Fatalf("combination %d differs: got %v, want %v", i, got[i], want[i])
			}
		}
	}
}

func TestCombinationIterEmptyWhenKExceedsN(t *testing.T) {
	it := NewCombinationIter(Unshuffled()[:3], 5)
	if it.Next() {
		t.Fatalf("expected no subsets when k > n")
	}
}

func TestDeckShuffle(t *testing.T) {
	seeds := []int64{1, 2, 3, 42}
	for i, seed := range seeds {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			d := NewDeck()
			before := append([]Card(nil), d.Cards()...)
			d.Shuffle(rand.New(rand.NewSource(seed)))
			after := d.Cards()
			if len(after) != len(before) {
				t.Fatalf("len after shuffle = %d, want %d", len(after), len(before))
			}
			seen := make(map[Card]bool, len(before))
			for _, c := range before {
				seen[c] = true
			}
			for _, c := range after {
				if !seen[c] {
					t.Fatalf("shuffled deck contains unexpected card %v", c)
				}
			}
			if d.Len() != UnshuffledSize {
				t.Fatalf("len = %d, want %d", d.Len(), UnshuffledSize)
			}
		})
	}
}
