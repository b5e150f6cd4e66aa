package pokercore

import "sort"

// straightMasks are the ten 5-in-a-row value-bitmasks, each paired with
// the rank its straight is "high" on. Checked highest-first so that the
// first match found is the best available straight. The wheel (A-2-3-4-5)
// is included with its straight-top pinned to Five so that it compares
// correctly below a Six-high straight.
var straightMasks = buildStraightMasks()

type straightMask struct {
	mask uint16
	top  Rank
}

func buildStraightMasks() []straightMask {
	masks := make([]straightMask, 0, 10)
	for top := Ace; top >= Six; top-- {
		var m uint16
		for v := int(top) - 4; v <= int(top); v++ {
			m |= 1 << uint(v)
		}
		masks = append(masks, straightMask{mask: m, top: top})
	}
	wheel := uint16(1<<uint(Ace)) | uint16(1<<uint(Two)) | uint16(1<<uint(Three)) | uint16(1<<uint(Four)) | uint16(1<<uint(Five))
	masks = append(masks, straightMask{mask: wheel, top: Five})
	return masks
}

// straightTop returns the highest straight (if any) whose value bitmask
// is a subset-match (exact 5-bit window) present in mask, admitting the
// ace-low wheel.
func straightTop(mask uint16) (Rank, bool) {
	for _, sm := range straightMasks {
		if mask&sm.mask == sm.mask {
			return sm.top, true
		}
	}
	return InvalidRank, false
}

// descValues returns the rank indices of cards, sorted descending.
func descValues(cards []Card) []int {
	vals := make([]int, len(cards))
	for i, c := range cards {
		vals[i] = c.Rank().Index()
	}
	sort.Sort(sort.Reverse(sort.IntSlice(vals)))
	return vals
}

// valueCount pairs a rank index with how many cards of that rank are
// present.
type valueCount struct {
	v, n int
}

// countSignature builds the per-value counts of cards (non-zero only),
// in descending rank order, then stably sorts by descending count so
// that higher-count groups sort first while preserving rank order among
// ties -- exactly the "count signature" of spec section 4.4.
func countSignature(cards []Card) []valueCount {
	var hist [13]int
	for _, c := range cards {
		hist[c.Rank().Index()]++
	}
	items := make([]valueCount, 0, 13)
	for v := 12; v >= 0; v-- {
		if hist[v] > 0 {
			items = append(items, valueCount{v: v, n: hist[v]})
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].n > items[j].n
	})
	return items
}

// Rank5 classifies a 5-card hand into its canonical [HandRank].
//
// Precondition: exactly five distinct cards. Behavior is undefined (and
// no arity check is performed, by design -- see [Rank5Checked] for a
// validated entry point) if the precondition is violated.
func Rank5(cards []Card) HandRank {
	var suitCount [4]int
	var mask uint16
	for _, c := range cards {
		suitCount[c.Suit().Index()]++
		mask |= 1 << uint(c.Rank().Index())
	}
	isFlush := false
	for _, n := range suitCount {
		if n == 5 {
			isFlush = true
			break
		}
	}
	top, isStraight := straightTop(mask)
	items := countSignature(cards)
	switch {
	case isFlush && isStraight:
		return newHandRank(StraightFlush, int(top))
	case items[0].n == 4:
		return newHandRank(FourOfAKind, items[0].v, items[1].v)
	case items[0].n == 3 && items[1].n == 2:
		return newHandRank(FullHouse, items[0].v, items[1].v)
	case isFlush:
		return newHandRank(Flush, descValues(cards)...)
	case isStraight:
		return newHandRank(Straight, int(top))
	case items[0].n == 3:
		return newHandRank(ThreeOfAKind, items[0].v, items[1].v, items[2].v)
	case items[0].n == 2 && items[1].n == 2:
		return newHandRank(TwoPair, items[0].v, items[1].v, items[2].v)
	case items[0].n == 2:
		return newHandRank(OnePair, items[0].v, items[1].v, items[2].v, items[3].v)
	default:
		return newHandRank(HighCard, descValues(cards)...)
	}
}

// Rank5Checked validates arity before calling [Rank5].
func Rank5Checked(cards []Card) (HandRank, error) {
	if len(cards) != 5 {
		return InvalidHandRank, &ArityError{Want: 5, Got: len(cards)}
	}
	return Rank5(cards), nil
}

// Rank7 classifies a 7-card hand, returning the maximum [HandRank] over
// all C(7,5)=21 five-card subsets. It does not brute-force those 21
// subsets: it selects the winning category directly from the 7-card
// value/suit histograms, a result proven identical to the brute-force
// maximum by the category precedence table of spec section 4.4 (see
// TestRank7MatchesBruteForce for the brute-force cross-check).
//
// Precondition: exactly seven distinct cards. Behavior is undefined (and
// no arity check is performed) if violated; see [Rank7Checked].
func Rank7(cards []Card) HandRank {
	var suitCards [4][]Card
	for _, c := range cards {
		s := c.Suit().Index()
		suitCards[s] = append(suitCards[s], c)
	}
	for _, sc := range suitCards {
		if len(sc) >= 5 {
			return bestFlush(sc)
		}
	}
	items := countSignature(cards)
	var trips, pairs []int
	for _, it := range items {
		switch it.n {
		case 3:
			trips = append(trips, it.v)
		case 2:
			pairs = append(pairs, it.v)
		}
	}
	if items[0].n == 4 {
		quad := items[0].v
		kicker := highestExcept(cards, quad)
		return newHandRank(FourOfAKind, quad, kicker)
	}
	if len(trips) >= 1 && (len(trips) >= 2 || len(pairs) >= 1) {
		trip := trips[0]
		var pair int
		if len(trips) >= 2 {
			pair = trips[1]
		} else {
			pair = pairs[0]
		}
		return newHandRank(FullHouse, trip, pair)
	}
	var mask uint16
	for _, c := range cards {
		mask |= 1 << uint(c.Rank().Index())
	}
	if top, ok := straightTop(mask); ok {
		return newHandRank(Straight, int(top))
	}
	if len(trips) == 1 {
		kickers := highestNExcept(cards, 2, trips[0])
		return newHandRank(ThreeOfAKind, trips[0], kickers[0], kickers[1])
	}
	if len(pairs) >= 2 {
		kicker := highestExceptAny(cards, pairs[0], pairs[1])
		return newHandRank(TwoPair, pairs[0], pairs[1], kicker)
	}
	if len(pairs) == 1 {
		kickers := highestNExcept(cards, 3, pairs[0])
		return newHandRank(OnePair, pairs[0], kickers[0], kickers[1], kickers[2])
	}
	return newHandRank(HighCard, highestNExcept(cards, 5)...)
}

// Rank7Checked validates arity before calling [Rank7].
func Rank7Checked(cards []Card) (HandRank, error) {
	if len(cards) != 7 {
		return InvalidHandRank, &ArityError{Want: 7, Got: len(cards)}
	}
	return Rank7(cards), nil
}

// bestFlush returns the best StraightFlush or Flush achievable from a set
// of 5-7 cards known to share a single suit.
func bestFlush(suited []Card) HandRank {
	var mask uint16
	for _, c := range suited {
		mask |= 1 << uint(c.Rank().Index())
	}
	if top, ok := straightTop(mask); ok {
		return newHandRank(StraightFlush, int(top))
	}
	vals := descValues(suited)
	return newHandRank(Flush, vals[:5]...)
}

// highestExcept returns the highest rank index among cards whose rank
// differs from exclude.
func highestExcept(cards []Card, exclude int) int {
	return highestNExcept(cards, 1, exclude)[0]
}

// highestExceptAny returns the highest rank index among cards whose rank
// is not any of excludes.
func highestExceptAny(cards []Card, excludes ...int) int {
	best := -1
	for _, c := range cards {
		v := c.Rank().Index()
		excluded := false
		for _, e := range excludes {
			if v == e {
				excluded = true
				break
			}
		}
		if !excluded && v > best {
			best = v
		}
	}
	return best
}

// highestNExcept returns the n highest distinct rank indices among cards,
// excluding any rank in excludes.
func highestNExcept(cards []Card, n int, excludes ...int) []int {
	seen := make(map[int]bool, len(excludes))
	for _, e := range excludes {
		seen[e] = true
	}
	var vals []int
	added := make(map[int]bool)
	for _, c := range cards {
		v := c.Rank().Index()
		if seen[v] || added[v] {
			continue
		}
		added[v] = true
		vals = append(vals, v)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(vals)))
	if len(vals) > n {
		vals = vals[:n]
	}
	return vals
}
