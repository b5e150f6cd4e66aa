package pokercore

import (
	"fmt"
	"sort"
	"strings"
)

// MaxHandCards is the largest number of cards a [Hand] is expected to
// hold without reallocating (two hole cards plus a five-card board).
const MaxHandCards = 7

// Hand is a small, ordered multiset of cards. Insertion order is kept for
// diagnostics; the evaluator works from [Hand.AsSorted]. Duplicate
// detection is the caller's responsibility: [Rank5] and [Rank7] have
// undefined behavior on a hand containing the same card twice.
type Hand struct {
	cards []Card
}

// NewHand returns an empty hand with capacity for [MaxHandCards] cards.
func NewHand() *Hand {
	return &Hand{cards: make([]Card, 0, MaxHandCards)}
}

// HandFromString parses a whitespace-separated sequence of card strings
// into a new hand.
func HandFromString(s string) (*Hand, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return nil, err
	}
	h := NewHand()
	for _, c := range cards {
		h.Push(c)
	}
	return h, nil
}

// Push appends a card to the hand.
func (h *Hand) Push(c Card) {
	h.cards = append(h.cards, c)
}

// Len returns the number of cards in the hand.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns the hand's cards in insertion order. The returned slice
// aliases the hand's backing array and must not be mutated.
func (h *Hand) Cards() []Card {
	return h.cards
}

// AsSorted returns the hand's cards sorted by rank descending, suit
// descending on a rank tie. This is the view the evaluator operates on.
func (h *Hand) AsSorted() []Card {
	sorted := make([]Card, len(h.cards))
	copy(sorted, h.cards)
	sort.Slice(sorted, func(i, j int) bool {
		if ri, rj := sorted[i].Rank(), sorted[j].Rank(); ri != rj {
			return ri > rj
		}
		return sorted[i].Suit() > sorted[j].Suit()
	})
	return sorted
}

// String satisfies the [fmt.Stringer] interface: cards joined by spaces
// in insertion order.
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Format satisfies the [fmt.Formatter] interface.
//
// Supported verbs:
//
//	s, v - space-joined cards in insertion order (ex: "As Kd 2c")
func (h *Hand) Format(f fmt.State, verb rune) {
	var buf []byte
	switch verb {
	case 's', 'v':
		buf = []byte(h.String())
	default:
		buf = []byte(fmt.Sprintf("%%!%c(ERROR=unknown verb, hand: %s)", verb, h.String()))
	}
	_, _ = f.Write(buf)
}
