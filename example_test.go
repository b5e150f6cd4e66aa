package pokercore_test

import (
	"fmt"

	"github.com/fourflush/pokercore"
)

func Example() {
	hand, err := pokercore.HandFromString("As Ks Qs Js Ts")
	if err != nil {
		panic(err)
	}
	rank := pokercore.Rank5(hand.AsSorted())
	fmt.Println(rank.Describe())
	// Output:
	// Straight Flush, Ace-high, Royal
}

func ExampleRank7() {
	cards, err := pokercore.ParseCards("Ah Kh Qh Jh Th 2c 3d")
	if err != nil {
		panic(err)
	}
	rank := pokercore.Rank7(cards)
	fmt.Println(rank.Category())
	// Output:
	// Straight Flush
}
