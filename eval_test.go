package pokercore

import (
	"math/rand"
	"strconv"
	"testing"
)

func mustCards(t *testing.T, s string) []Card {
	t.Helper()
	cards, err := ParseCards(s)
	if err != nil {
		t.Fatalf("ParseCards(%q): %v", s, err)
	}
	return cards
}

func TestRank5Categories(t *testing.T) {
	cases := []struct {
		hand string
		cat  Category
	}{
		{"As Ks Qs Js Ts", StraightFlush},
		{"5s 4s 3s 2s As", StraightFlush}, // steel wheel
		{"Ah Ad Ac As Kd", FourOfAKind},
		{"Kh Kd Kc 2s 2d", FullHouse},
		{"Ah Th 8h 4h 2h", Flush},
		{"9c 8d 7h 6s 5c", Straight},
		{"5c 4d 3h 2s Ac", Straight}, // wheel
		{"Qh Qd Qc 9s 4d", ThreeOfAKind},
		{"Jh Jd 8c 8s 2d", TwoPair},
		{"Th Td 9c 7s 2d", OnePair},
		{"Ah Kd Qc 9s 2d", HighCard},
	}
	for i, c := range cases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := Rank5(mustCards(t, c.hand)).Category()
			if got != c.cat {
				t.Errorf("Rank5(%q).Category() = %v, want %v", c.hand, got, c.cat)
			}
		})
	}
}

func TestRank5PermutationInvariant(t *testing.T) {
	base := mustCards(t, "Ah Kd Qc Js 9h")
	want := Rank5(base)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		perm := append([]Card(nil), base...)
		rng.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
		if got := Rank5(perm); got != want {
			t.Fatalf("permutation changed rank: got %d, want %d", got, want)
		}
	}
}

func TestRank5OrderingAcrossCategories(t *testing.T) {
	weakest := Rank5(mustCards(t, "Ah Kd Qc Js 9h"))  // high card
	pair := Rank5(mustCards(t, "Th Td 9c 7s 2d"))     // one pair
	straight := Rank5(mustCards(t, "9c 8d 7h 6s 5c"))  // straight
	flush := Rank5(mustCards(t, "Ah Th 8h 4h 2h"))     // flush
	quad := Rank5(mustCards(t, "Ah Ad Ac As Kd"))      // four of a kind
	straightFlush := Rank5(mustCards(t, "As Ks Qs Js Ts"))
	if !(weakest < pair && pair < straight && straight < flush && flush < quad && quad < straightFlush) {
		t.Fatalf("category ordering violated: %d %d %d %d %d %d",
			weakest, pair, straight, flush, quad, straightFlush)
	}
}

func TestRank5KickerOrdering(t *testing.T) {
	higherKicker := Rank5(mustCards(t, "Th Td 9c 7s 2d"))
	lowerKicker := Rank5(mustCards(t, "Th Td 9c 6s 2d"))
	if !(lowerKicker < higherKicker) {
		t.Fatalf("lower kicker should rank lower: %d >= %d", lowerKicker, higherKicker)
	}
}

func TestRank5Checked(t *testing.T) {
	if _, err := Rank5Checked(mustCards(t, "As Ks Qs Js")); err == nil {
		t.Fatalf("expected ArityError for 4-card hand")
	}
	if _, err := Rank5Checked(mustCards(t, "As Ks Qs Js Ts")); err != nil {
		t.Fatalf("Rank5Checked: %v", err)
	}
}

func TestRank7Checked(t *testing.T) {
	if _, err := Rank7Checked(mustCards(t, "As Ks Qs Js Ts 2c")); err == nil {
		t.Fatalf("expected ArityError for 6-card hand")
	}
}

func TestRank7FlushSuitShortcut(t *testing.T) {
	cards := mustCards(t, "Ah Kh Qh 2h 3h 9c 8d")
	got := Rank7(cards)
	if got.Category() != Flush {
		t.Fatalf("Category() = %v, want Flush", got.Category())
	}
	want := newHandRank(Flush, Ace.Index(), King.Index(), Queen.Index(), Three.Index(), Two.Index())
	if got != want {
		t.Fatalf("Rank7 = %d, want %d", got, want)
	}
}

func TestRank7StraightFlushInSeven(t *testing.T) {
	cards := mustCards(t, "9h 8h 7h 6h 5h Ac Kd")
	got := Rank7(cards)
	if got.Category() != StraightFlush {
		t.Fatalf("Category() = %v, want StraightFlush", got.Category())
	}
}

func TestRank7FullHouseFromTwoTrips(t *testing.T) {
	cards := mustCards(t, "Ah Ad Ac Kh Kd Kc 2s")
	got := Rank7(cards)
	if got.Category() != FullHouse {
		t.Fatalf("Category() = %v, want FullHouse", got.Category())
	}
	want := newHandRank(FullHouse, Ace.Index(), King.Index())
	if got != want {
		t.Fatalf("Rank7 = %d, want %d (aces full of kings)", got, want)
	}
}

// exhaustiveRank7 computes Rank7 by brute force over every 5-card subset,
// the reference definition the direct-selection algorithm must match.
func exhaustiveRank7(cards []Card) HandRank {
	best := InvalidHandRank
	it := Subsets5(cards)
	for it.Next() {
		if r := Rank5(it.Cards()); r > best {
			best = r
		}
	}
	return best
}

func TestRank7MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	trials := 500
	if testing.Short() {
		trials = 50
	}
	deck := Unshuffled()
	for i := 0; i < trials; i++ {
		shuffled := append([]Card(nil), deck...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		hand := shuffled[:7]
		got := Rank7(hand)
		want := exhaustiveRank7(hand)
		if got != want {
			t.Fatalf("Rank7(%v) = %d, want %d (brute force)", hand, got, want)
		}
	}
}

func TestRank7MatchesBruteForceExhaustiveSeedSet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping exhaustive 7-card cross-check in short mode")
	}
	// A fixed, varied seed set: one hand per category, each padded with
	// extra cards to seven, covering every category branch of Rank7's
	// direct selection.
	seeds := []string{
		"As Ks Qs Js Ts 2c 3d",
		"Ah Ad Ac As Kd Qc 2s",
		"Kh Kd Kc 2s 2d 2c 9h",
		"Ah Th 8h 4h 2h 9c 8d",
		"9c 8d 7h 6s 5c Ah Kd",
		"5c 4d 3h 2s Ac Kh Qd",
		"Qh Qd Qc 9s 4d 2c 7h",
		"Jh Jd 8c 8s 2d Ac Kh",
		"Th Td 9c 7s 2d Ah Kd",
		"Ah Kd Qc 9s 2d 7h 4c",
	}
	for i, s := range seeds {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			cards := mustCards(t, s)
			got := Rank7(cards)
			want := exhaustiveRank7(cards)
			if got != want {
				t.Errorf("Rank7(%q) = %d, want %d (brute force)", s, got, want)
			}
		})
	}
}
