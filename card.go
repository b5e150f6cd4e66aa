package pokercore

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Rank is a card rank, ordered [Two] (low) through [Ace] (high).
//
// Ace plays low only for straight detection (the wheel, A-2-3-4-5); for
// every other comparison Ace is the highest rank.
type Rank uint8

// Card ranks, numerically ordered Two=0 .. Ace=12.
const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// InvalidRank is an invalid card rank.
const InvalidRank = ^Rank(0)

// RankFromByte returns the card rank for a rank byte, case-insensitive.
//
// Accepts '2'-'9', and {T,J,Q,K,A} (or their lowercase forms).
func RankFromByte(b byte) Rank {
	switch b {
	case 'A', 'a':
		return Ace
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'J', 'j':
		return Jack
	case 'T', 't':
		return Ten
	case '9':
		return Nine
	case '8':
		return Eight
	case '7':
		return Seven
	case '6':
		return Six
	case '5':
		return Five
	case '4':
		return Four
	case '3':
		return Three
	case '2':
		return Two
	}
	return InvalidRank
}

// Byte returns the canonical uppercase rank byte.
func (r Rank) Byte() byte {
	switch r {
	case Ace:
		return 'A'
	case King:
		return 'K'
	case Queen:
		return 'Q'
	case Jack:
		return 'J'
	case Ten:
		return 'T'
	case Nine, Eight, Seven, Six, Five, Four, Three, Two:
		return '2' + byte(r)
	}
	return '0'
}

// String satisfies the [fmt.Stringer] interface.
func (r Rank) String() string {
	return string(r.Byte())
}

// Index returns the rank's 0-12 numerical index.
func (r Rank) Index() int {
	return int(r)
}

// Name returns the rank's name.
func (r Rank) Name() string {
	switch r {
	case Ace:
		return "Ace"
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Jack:
		return "Jack"
	case Ten:
		return "Ten"
	case Nine:
		return "Nine"
	case Eight:
		return "Eight"
	case Seven:
		return "Seven"
	case Six:
		return "Six"
	case Five:
		return "Five"
	case Four:
		return "Four"
	case Three:
		return "Three"
	case Two:
		return "Two"
	}
	return ""
}

// PluralName returns the rank's plural name, used when describing
// pairs/trips/quads (e.g. "Sixes", "Aces").
func (r Rank) PluralName() string {
	if r == Six {
		return "Sixes"
	}
	return r.Name() + "s"
}

// Suit is a card suit. Suits have no bearing on hand rank except for
// flush detection; they are ordered only so that [Card] has a total,
// tie-break-free ordering.
type Suit uint8

// Card suits, ordered Spade < Club < Heart < Diamond.
const (
	Spade Suit = iota
	Club
	Heart
	Diamond
)

// InvalidSuit is an invalid card suit.
const InvalidSuit = ^Suit(0)

// SuitFromByte returns the card suit for a suit byte, case-insensitive.
func SuitFromByte(b byte) Suit {
	switch b {
	case 'S', 's':
		return Spade
	case 'C', 'c':
		return Club
	case 'H', 'h':
		return Heart
	case 'D', 'd':
		return Diamond
	}
	return InvalidSuit
}

// Byte returns the canonical lowercase suit byte.
func (s Suit) Byte() byte {
	switch s {
	case Spade:
		return 's'
	case Club:
		return 'c'
	case Heart:
		return 'h'
	case Diamond:
		return 'd'
	}
	return '0'
}

// String satisfies the [fmt.Stringer] interface.
func (s Suit) String() string {
	return string(s.Byte())
}

// Index returns the suit's 0-3 ordinal.
func (s Suit) Index() int {
	return int(s)
}

// Name returns the suit's name.
func (s Suit) Name() string {
	switch s {
	case Spade:
		return "Spade"
	case Club:
		return "Club"
	case Heart:
		return "Heart"
	case Diamond:
		return "Diamond"
	}
	return ""
}

// Card is a playing card: a [Rank] and a [Suit], packed as an integer in
// [0, 52) such that index = rank*4 + suit.
type Card uint8

// InvalidCard is an invalid card.
const InvalidCard = ^Card(0)

// New creates a card from a rank and suit.
func New(r Rank, s Suit) Card {
	if Ace < r || Diamond < s {
		return InvalidCard
	}
	return Card(int(r)*4 + int(s))
}

// FromIndex creates a card from its numerical index (0-51).
func FromIndex(i int) Card {
	if i < 0 || 52 <= i {
		return InvalidCard
	}
	return Card(i)
}

// Rank returns the card's rank.
func (c Card) Rank() Rank {
	return Rank(c / 4)
}

// Suit returns the card's suit.
func (c Card) Suit() Suit {
	return Suit(c % 4)
}

// Index returns the card's 0-51 index.
func (c Card) Index() int {
	return int(c)
}

// String satisfies the [fmt.Stringer] interface. Returns a two-character
// canonical form, e.g. "As", "Td", "2c".
func (c Card) String() string {
	if c == InvalidCard {
		return "??"
	}
	return string([]byte{c.Rank().Byte(), c.Suit().Byte()})
}

// Format satisfies the [fmt.Formatter] interface.
//
// Supported verbs:
//
//	s, v - rank and suit (ex: Ks, Ah)
//	S    - same as s, uppercased (ex: KS, AH)
//	q    - same as s, quoted (ex: "Ks")
//	r    - rank only (ex: K)
//	u    - suit only (ex: s)
//	d    - base 10 integer index
func (c Card) Format(f fmt.State, verb rune) {
	var buf []byte
	switch verb {
	case 's', 'v':
		buf = []byte(c.String())
	case 'S':
		buf = bytes.ToUpper([]byte(c.String()))
	case 'q':
		buf = append(buf, '"')
		buf = append(buf, c.String()...)
		buf = append(buf, '"')
	case 'r':
		buf = append(buf, c.Rank().Byte())
	case 'u':
		buf = append(buf, c.Suit().Byte())
	case 'd':
		buf = strconv.AppendInt(buf, int64(c), 10)
	default:
		buf = []byte(fmt.Sprintf("%%!%c(ERROR=unknown verb, card: %s)", verb, c.String()))
	}
	_, _ = f.Write(buf)
}

// MarshalText satisfies the [encoding.TextMarshaler] interface.
func (c Card) MarshalText() ([]byte, error) {
	if c == InvalidCard {
		return nil, ErrInvalidCard
	}
	return []byte(c.String()), nil
}

// UnmarshalText satisfies the [encoding.TextUnmarshaler] interface.
func (c *Card) UnmarshalText(buf []byte) error {
	v, err := ParseCard(string(buf))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseCard parses a single two-character card string (e.g. "As", "Td"),
// case-insensitive on the rank and suit characters.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return InvalidCard, &CardParseError{S: s, I: 0, Err: ErrInvalidCard}
	}
	r := RankFromByte(s[0])
	if r == InvalidRank {
		return InvalidCard, &CardParseError{S: s, I: 0, Err: ErrInvalidValue}
	}
	suit := SuitFromByte(s[1])
	if suit == InvalidSuit {
		return InvalidCard, &CardParseError{S: s, I: 1, Err: ErrInvalidSuit}
	}
	return New(r, suit), nil
}

// ParseCards parses a whitespace-separated sequence of card strings
// (e.g. "As Kd 2c"), ignoring repeated or leading/trailing whitespace.
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for n, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			if pe, ok := err.(*CardParseError); ok {
				pe.N = n
			}
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
