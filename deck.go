package pokercore

import "math/rand"

// UnshuffledSize is the number of cards in a fresh deck.
const UnshuffledSize = 52

// Unshuffled returns all 52 cards in canonical (index-ascending) order.
func Unshuffled() []Card {
	cards := make([]Card, UnshuffledSize)
	for i := range cards {
		cards[i] = FromIndex(i)
	}
	return cards
}

// Deck is the set-difference of the 52-card universe and whatever cards
// have already been dealt or removed from it.
type Deck struct {
	cards []Card
}

// NewDeck returns a fresh, full 52-card deck.
func NewDeck() *Deck {
	return &Deck{cards: Unshuffled()}
}

// Len returns the number of cards remaining in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns the deck's remaining cards. The returned slice aliases
// the deck's backing array and must not be mutated.
func (d *Deck) Cards() []Card {
	return d.cards
}

// Shuffle randomizes the order of the deck's remaining cards in place.
// Shuffling has no bearing on [Deck.Deal], which already draws uniformly
// at random; it matters only when a caller consumes [Deck.Cards]
// directly in order (e.g. dealing off the top without calling Deal).
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Contains reports whether c remains in the deck.
func (d *Deck) Contains(c Card) bool {
	return d.indexOf(c) >= 0
}

func (d *Deck) indexOf(c Card) int {
	for i, v := range d.cards {
		if v == c {
			return i
		}
	}
	return -1
}

// Remove removes a specific card from the deck, returning [ErrCardAbsent]
// if it is not present.
func (d *Deck) Remove(c Card) error {
	i := d.indexOf(c)
	if i < 0 {
		return ErrCardAbsent
	}
	last := len(d.cards) - 1
	d.cards[i] = d.cards[last]
	d.cards = d.cards[:last]
	return nil
}

// RemoveAll removes every card in cs from the deck, returning
// [ErrCardAbsent] on the first card that is not present. On error, any
// cards already removed before the failing one remain removed.
func (d *Deck) RemoveAll(cs []Card) error {
	for _, c := range cs {
		if err := d.Remove(c); err != nil {
			return err
		}
	}
	return nil
}

// Deal uniformly samples one card from the remaining deck and removes it,
// returning [ErrEmptyDeck] if the deck has no cards left.
func (d *Deck) Deal(rng *rand.Rand) (Card, error) {
	if len(d.cards) == 0 {
		return InvalidCard, ErrEmptyDeck
	}
	i := rng.Intn(len(d.cards))
	c := d.cards[i]
	last := len(d.cards) - 1
	d.cards[i] = d.cards[last]
	d.cards = d.cards[:last]
	return c, nil
}

// DealN draws n cards uniformly without replacement, returning
// [ErrEmptyDeck] if the deck runs out before n cards are drawn.
func (d *Deck) DealN(rng *rand.Rand, n int) ([]Card, error) {
	out := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		c, err := d.Deal(rng)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// CombinationIter enumerates the k-sized subsets of a fixed slice of
// cards in lexicographic order of the slice's indices, reusing its
// output buffer across calls to [CombinationIter.Next] so that iterating
// allocates no per-element heap memory. It is finite and not
// restartable; a caller needing to iterate twice constructs a new one.
type CombinationIter struct {
	cards []Card
	k     int
	idx   []int
	buf   []Card
	state int8 // 0 = not started, 1 = running, 2 = done
}

// NewCombinationIter returns an iterator over all C(len(cards), k)
// subsets of cards.
func NewCombinationIter(cards []Card, k int) *CombinationIter {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	return &CombinationIter{
		cards: cards,
		k:     k,
		idx:   idx,
		buf:   make([]Card, k),
	}
}

// Subsets5 returns an iterator over the C(n,5) 5-card subsets of cards.
func Subsets5(cards []Card) *CombinationIter {
	return NewCombinationIter(cards, 5)
}

// Subsets7 returns an iterator over the C(n,7) 7-card subsets of cards.
func Subsets7(cards []Card) *CombinationIter {
	return NewCombinationIter(cards, 7)
}

// Next advances to the next subset, returning false once every subset
// has been produced (or if k > len(cards) or k == 0).
func (it *CombinationIter) Next() bool {
	n := len(it.cards)
	if it.k == 0 || it.k > n || it.state == 2 {
		it.state = 2
		return false
	}
	switch it.state {
	case 0:
		it.state = 1
	default:
		i := it.k - 1
		for i >= 0 && it.idx[i] == i+n-it.k {
			i--
		}
		if i < 0 {
			it.state = 2
			return false
		}
		it.idx[i]++
		for j := i + 1; j < it.k; j++ {
			it.idx[j] = it.idx[j-1] + 1
		}
	}
	for i, v := range it.idx {
		it.buf[i] = it.cards[v]
	}
	return true
}

// Cards returns the current subset. The returned slice aliases the
// iterator's internal buffer and is overwritten by the next call to
// [CombinationIter.Next].
func (it *CombinationIter) Cards() []Card {
	return it.buf
}
