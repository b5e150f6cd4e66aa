package pokercore

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category is a poker hand category, ordered weakest to strongest.
type Category uint8

// Hand categories.
const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// categoryLabels are the lowercase category labels, title-cased on demand
// via [cases.Title] rather than a hand-rolled capitalization table.
var categoryLabels = [...]string{
	HighCard:      "high card",
	OnePair:       "pair",
	TwoPair:       "two pair",
	ThreeOfAKind:  "three of a kind",
	Straight:      "straight",
	Flush:         "flush",
	FullHouse:     "full house",
	FourOfAKind:   "four of a kind",
	StraightFlush: "straight flush",
}

var titleCaser = cases.Title(language.English)

// String satisfies the [fmt.Stringer] interface.
func (c Category) String() string {
	if int(c) >= len(categoryLabels) {
		return "invalid"
	}
	return titleCaser.String(categoryLabels[c])
}

// payloadSlots is the number of 4-bit payload digits each category packs,
// most-significant tiebreak first.
func (c Category) payloadSlots() int {
	switch c {
	case StraightFlush, Straight:
		return 1
	case FourOfAKind, FullHouse:
		return 2
	case TwoPair, ThreeOfAKind:
		return 3
	case OnePair:
		return 4
	case HighCard, Flush:
		return 5
	}
	return 0
}

// HandRank is a packed, comparable poker hand score: bits [28:25] hold
// the [Category] ordinal, bits [24:0] hold the payload, each sub-value
// packed 4 bits wide with the most significant tiebreak in the highest
// bits. Comparing two HandRanks with the ordinary integer `<`/`>`
// operators yields the canonical poker ordering.
type HandRank uint32

// InvalidHandRank is an invalid, never-produced hand rank lower than any
// valid one.
const InvalidHandRank HandRank = 0

const (
	categoryShift = 25
	payloadMask   = 1<<categoryShift - 1
)

// newHandRank packs a category and its payload (most-significant digit
// first) into a [HandRank].
func newHandRank(c Category, payload ...int) HandRank {
	var p uint32
	for _, v := range payload {
		p = p<<4 | uint32(v&0xF)
	}
	return HandRank(uint32(c)<<categoryShift | (p & payloadMask))
}

// Category returns the hand rank's category.
func (r HandRank) Category() Category {
	return Category(r >> categoryShift)
}

// Payload returns the hand rank's tiebreak payload, most-significant
// first, as 0-12 rank indices (or rank-index-valued kicker counts).
func (r HandRank) Payload() []int {
	c := r.Category()
	n := c.payloadSlots()
	out := make([]int, n)
	p := uint32(r) & payloadMask
	for i := n - 1; i >= 0; i-- {
		out[i] = int(p & 0xF)
		p >>= 4
	}
	return out
}

// String satisfies the [fmt.Stringer] interface.
func (r HandRank) String() string {
	return r.Category().String()
}

// Format satisfies the [fmt.Formatter] interface.
func (r HandRank) Format(f fmt.State, verb rune) {
	switch verb {
	case 'd':
		fmt.Fprint(f, uint32(r))
	default:
		fmt.Fprint(f, r.String())
	}
}

// Describe returns a human-readable description of the hand rank, e.g.
// "Full House, Sixes full of Fours" or "Pair, Aces, kickers King, Queen,
// Nine".
func (r HandRank) Describe() string {
	p := r.Payload()
	rk := func(i int) Rank { return Rank(p[i]) }
	switch r.Category() {
	case StraightFlush:
		switch top := rk(0); top {
		case Ace:
			return "Straight Flush, Ace-high, Royal"
		case Five:
			return "Straight Flush, Five-high, Steel Wheel"
		default:
			return fmt.Sprintf("Straight Flush, %s-high", top.Name())
		}
	case FourOfAKind:
		return fmt.Sprintf("Four of a Kind, %s, kicker %s", rk(0).PluralName(), rk(1).Name())
	case FullHouse:
		return fmt.Sprintf("Full House, %s full of %s", rk(0).PluralName(), rk(1).PluralName())
	case Flush:
		return fmt.Sprintf("Flush, %s-high", rk(0).Name())
	case Straight:
		switch top := rk(0); top {
		case Five:
			return "Straight, Five-high, Wheel"
		default:
			return fmt.Sprintf("Straight, %s-high", top.Name())
		}
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a Kind, %s, kickers %s, %s", rk(0).PluralName(), rk(1).Name(), rk(2).Name())
	case TwoPair:
		return fmt.Sprintf("Two Pair, %s over %s, kicker %s", rk(0).PluralName(), rk(1).PluralName(), rk(2).Name())
	case OnePair:
		return fmt.Sprintf("Pair, %s, kickers %s, %s, %s", rk(0).PluralName(), rk(1).Name(), rk(2).Name(), rk(3).Name())
	default:
		return fmt.Sprintf("High Card, %s-high, kickers %s, %s, %s, %s",
			rk(0).Name(), rk(1).Name(), rk(2).Name(), rk(3).Name(), rk(4).Name())
	}
}
