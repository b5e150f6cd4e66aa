// Package holdem builds on pokercore with Texas Hold'em starting-hand
// range notation and Monte-Carlo equity simulation, mirroring the way
// the core library keeps game-specific concerns in a sibling package
// rather than the card/evaluator root.
package holdem

import (
	"sort"
	"strings"

	"github.com/fourflush/pokercore"
)

// Combo is an unordered two-card starting hand, canonicalized so that
// A's index never exceeds B's -- so two combos built from the same pair
// of cards in either order compare equal.
type Combo struct {
	A, B pokercore.Card
}

func newCombo(a, b pokercore.Card) Combo {
	if a.Index() > b.Index() {
		a, b = b, a
	}
	return Combo{A: a, B: b}
}

// String satisfies the [fmt.Stringer] interface.
func (c Combo) String() string {
	return c.A.String() + c.B.String()
}

// Range is a set of starting-hand [Combo]s, built by [ParseRange] or by
// hand with [Range.Add].
type Range struct {
	combos map[Combo]struct{}
}

// NewRange returns a new, empty range.
func NewRange() *Range {
	return &Range{combos: make(map[Combo]struct{})}
}

// Add inserts the combo formed by a and b into the range.
func (r *Range) Add(a, b pokercore.Card) {
	r.combos[newCombo(a, b)] = struct{}{}
}

// Contains reports whether combo is in the range.
func (r *Range) Contains(combo Combo) bool {
	_, ok := r.combos[combo]
	return ok
}

// Size returns the number of distinct combos in the range.
func (r *Range) Size() int {
	return len(r.combos)
}

// Combos returns the range's combinations, canonicalized and sorted by
// card index for deterministic iteration.
func (r *Range) Combos() []Combo {
	out := make([]Combo, 0, len(r.combos))
	for c := range r.combos {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

// ParseRange parses a comma- or whitespace-separated sequence of range
// tokens (e.g. "AA,KK,AKs,T9s+,22-66") into a [Range]. The union of
// parsing two notations separately and adding them to one range equals
// parsing their concatenation.
func ParseRange(notation string) (*Range, error) {
	r := NewRange()
	for _, tok := range splitTokens(notation) {
		if err := r.addToken(tok); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func splitTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

func (r *Range) addToken(tok string) error {
	switch {
	case tok == "":
		return nil
	case strings.ContainsRune(tok, '-'):
		return r.addDashRange(tok)
	case strings.HasSuffix(tok, "+"):
		return r.addPlusRange(tok)
	default:
		return r.addSingleToken(tok)
	}
}

// parseComboChars splits a two- or three-character combo token into its
// two ranks and optional suited/offsuit suffix.
func parseComboChars(tok string) (rank1, rank2 pokercore.Rank, suffix byte, err error) {
	if len(tok) < 2 || len(tok) > 3 {
		return 0, 0, 0, pokercore.ErrUnknownToken
	}
	rank1 = pokercore.RankFromByte(tok[0])
	rank2 = pokercore.RankFromByte(tok[1])
	if rank1 == pokercore.InvalidRank || rank2 == pokercore.InvalidRank {
		return 0, 0, 0, pokercore.ErrUnknownToken
	}
	if len(tok) == 3 {
		suffix = lowerByte(tok[2])
		if suffix != 's' && suffix != 'o' {
			return 0, 0, 0, pokercore.ErrBadSuffix
		}
	}
	return rank1, rank2, suffix, nil
}

func lowerByte(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func (r *Range) addSingleToken(tok string) error {
	rank1, rank2, suffix, err := parseComboChars(tok)
	if err != nil {
		return &pokercore.RangeParseError{Token: tok, Err: err}
	}
	if rank1 == rank2 {
		if suffix != 0 {
			return &pokercore.RangeParseError{Token: tok, Err: pokercore.ErrBadSuffix}
		}
		r.addPair(rank1)
		return nil
	}
	switch suffix {
	case 's':
		r.addSuited(rank1, rank2)
	case 'o':
		r.addOffsuit(rank1, rank2)
	default:
		r.addSuited(rank1, rank2)
		r.addOffsuit(rank1, rank2)
	}
	return nil
}

// addPlusRange handles "TT+" (all pairs TT and higher) and "KTs+"/"JTo+"/
// "AK+" (kicker rises toward, but never reaching, the fixed high card).
func (r *Range) addPlusRange(tok string) error {
	base := tok[:len(tok)-1]
	rank1, rank2, suffix, err := parseComboChars(base)
	if err != nil {
		return &pokercore.RangeParseError{Token: tok, Err: err}
	}
	if rank1 == rank2 {
		if suffix != 0 {
			return &pokercore.RangeParseError{Token: tok, Err: pokercore.ErrBadSuffix}
		}
		for rk := rank1; rk <= pokercore.Ace; rk++ {
			r.addPair(rk)
		}
		return nil
	}
	hi, lo := rank1, rank2
	if lo > hi {
		hi, lo = lo, hi
	}
	for rk := lo; rk < hi; rk++ {
		r.addBySuffix(hi, rk, suffix)
	}
	return nil
}

// addDashRange handles "22-66" (pair range) and "A5s-A2s"/"KJo-KTo"
// (same-high-card kicker range).
func (r *Range) addDashRange(tok string) error {
	parts := strings.SplitN(tok, "-", 2)
	if len(parts) != 2 {
		return &pokercore.RangeParseError{Token: tok, Err: pokercore.ErrUnknownToken}
	}
	startRank1, startRank2, startSuffix, err := parseComboChars(parts[0])
	if err != nil {
		return &pokercore.RangeParseError{Token: tok, Err: err}
	}
	endRank1, endRank2, endSuffix, err := parseComboChars(parts[1])
	if err != nil {
		return &pokercore.RangeParseError{Token: tok, Err: err}
	}
	startPair, endPair := startRank1 == startRank2, endRank1 == endRank2
	switch {
	case startPair && endPair:
		if startSuffix != 0 || endSuffix != 0 {
			return &pokercore.RangeParseError{Token: tok, Err: pokercore.ErrBadSuffix}
		}
		lo, hi := startRank1, endRank1
		if lo > hi {
			lo, hi = hi, lo
		}
		for rk := lo; rk <= hi; rk++ {
			r.addPair(rk)
		}
		return nil
	case startPair || endPair:
		return &pokercore.RangeParseError{Token: tok, Err: pokercore.ErrInconsistentRange}
	case startRank1 != endRank1 || startSuffix != endSuffix:
		return &pokercore.RangeParseError{Token: tok, Err: pokercore.ErrInconsistentRange}
	default:
		hi := startRank1
		lo, top := startRank2, endRank2
		if lo > top {
			lo, top = top, lo
		}
		for rk := lo; rk <= top; rk++ {
			r.addBySuffix(hi, rk, startSuffix)
		}
		return nil
	}
}

func (r *Range) addBySuffix(hi, lo pokercore.Rank, suffix byte) {
	switch suffix {
	case 's':
		r.addSuited(hi, lo)
	case 'o':
		r.addOffsuit(hi, lo)
	default:
		r.addSuited(hi, lo)
		r.addOffsuit(hi, lo)
	}
}

func (r *Range) addPair(rank pokercore.Rank) {
	for s1 := pokercore.Spade; s1 <= pokercore.Diamond; s1++ {
		for s2 := s1 + 1; s2 <= pokercore.Diamond; s2++ {
			r.Add(pokercore.New(rank, s1), pokercore.New(rank, s2))
		}
	}
}

func (r *Range) addSuited(rank1, rank2 pokercore.Rank) {
	for s := pokercore.Spade; s <= pokercore.Diamond; s++ {
		r.Add(pokercore.New(rank1, s), pokercore.New(rank2, s))
	}
}

func (r *Range) addOffsuit(rank1, rank2 pokercore.Rank) {
	for s1 := pokercore.Spade; s1 <= pokercore.Diamond; s1++ {
		for s2 := pokercore.Spade; s2 <= pokercore.Diamond; s2++ {
			if s1 != s2 {
				r.Add(pokercore.New(rank1, s1), pokercore.New(rank2, s2))
			}
		}
	}
}
