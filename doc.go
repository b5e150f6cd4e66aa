// Package pokercore is a compact representation of playing cards plus a
// fast, exact evaluator that assigns a total order to 5-card and 7-card
// poker hands.
//
// The package is split leaves-first: [Suit], [Rank], and [Card] are the
// card primitives; [Hand] is a small mutable container of cards; [Deck]
// generates and deals from the 52-card universe, and [CombinationIter]
// (via [Subsets5]/[Subsets7]) provides C(n,5)/C(n,7) subset iteration;
// [HandRank] and [Rank5]/[Rank7] are the classifier and its packed,
// comparable score. The [github.com/fourflush/pokercore/holdem]
// subpackage builds starting-hand range parsing and Monte-Carlo equity
// estimation directly on top of this encoding, as a sibling package
// rather than an extension of the core.
package pokercore
