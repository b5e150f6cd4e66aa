package holdem

import (
	"context"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/fourflush/pokercore"
)

// Player is one seat in a [Simulate] run: either an exact two-card hole
// (len(Hole) == 2) or a [Range] to sample a hole pair from uniformly,
// rejecting samples that collide with already-committed cards.
type Player struct {
	Hole  []pokercore.Card
	Range *Range
}

// Result holds per-player Monte-Carlo counters accumulated by [Simulate]
// or [SimulateParallel]. Wins and Ties are indexed in player order;
// Ties[i] accumulates i's fractional share of every trial it split.
type Result struct {
	Wins   []float64
	Ties   []float64
	Trials int
}

// Equity returns player i's equity: (Wins[i]+Ties[i])/Trials, or 0 if no
// trial completed.
func (res *Result) Equity(i int) float64 {
	if res.Trials == 0 {
		return 0
	}
	return (res.Wins[i] + res.Ties[i]) / float64(res.Trials)
}

func newResult(n int) *Result {
	return &Result{Wins: make([]float64, n), Ties: make([]float64, n)}
}

// Simulate runs up to n independent trials of a multi-player Hold'em
// showdown against a (possibly partial) public board, returning
// per-player win/tie counters. It is the single-goroutine reference
// implementation that every convergence test runs against; see
// [SimulateParallel] for a worker-pool variant over the same trial
// budget.
//
// ctx is checked between trial batches, not every trial; canceling it
// returns the counters accumulated so far alongside ctx.Err(). The
// trial count n remains the hard upper bound regardless of ctx.
func Simulate(ctx context.Context, players []Player, board []pokercore.Card, n int, rng *rand.Rand) (*Result, error) {
	known, err := knownCards(players, board)
	if err != nil {
		return nil, err
	}
	res := newResult(len(players))
	ranks := make([]pokercore.HandRank, len(players))
	hole := make([][2]pokercore.Card, len(players))
	seven := make([]pokercore.Card, 0, 7)

	for t := 0; t < n; t++ {
		if t%1024 == 0 {
			select {
			case <-ctx.Done():
				return res, ctx.Err()
			default:
			}
		}

		deck := pokercore.NewDeck()
		if err := deck.RemoveAll(known); err != nil {
			return nil, err
		}

		sampled := true
		for i, p := range players {
			if len(p.Hole) == 2 {
				hole[i] = [2]pokercore.Card{p.Hole[0], p.Hole[1]}
				continue
			}
			a, b, ok := sampleFromRange(p.Range, deck, rng)
			if !ok {
				sampled = false
				break
			}
			hole[i] = [2]pokercore.Card{a, b}
		}
		if !sampled {
			continue
		}

		need := 5 - len(board)
		drawn, err := deck.DealN(rng, need)
		if err != nil {
			continue
		}
		finalBoard := make([]pokercore.Card, 0, 5)
		finalBoard = append(finalBoard, board...)
		finalBoard = append(finalBoard, drawn...)

		best := pokercore.InvalidHandRank
		for i, h := range hole {
			seven = seven[:0]
			seven = append(seven, h[0], h[1])
			seven = append(seven, finalBoard...)
			ranks[i] = pokercore.Rank7(seven)
			if ranks[i] > best {
				best = ranks[i]
			}
		}

		var winners []int
		for i, rk := range ranks {
			if rk == best {
				winners = append(winners, i)
			}
		}
		res.Trials++
		if len(winners) == 1 {
			res.Wins[winners[0]]++
		} else {
			share := 1.0 / float64(len(winners))
			for _, w := range winners {
				res.Ties[w] += share
			}
		}
	}
	return res, nil
}

// SimulateParallel splits n across runtime.NumCPU()-bounded workers
// (capped at 8, beyond which added workers see diminishing returns), each
// running an independent [Simulate] with its own *rand.Rand seeded from
// rng, and reduces the per-player counters with an associative sum.
// Determinism across different worker counts is not guaranteed -- each
// worker draws from its own stream -- but a fixed worker count and seed
// reproduce the same result.
func SimulateParallel(ctx context.Context, players []Player, board []pokercore.Card, n int, rng *rand.Rand) (*Result, error) {
	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}
	if workers < 1 || n < workers {
		workers = 1
	}

	per := n / workers
	remainder := n % workers

	g, gctx := errgroup.WithContext(ctx)
	results := make([]*Result, workers)
	for w := 0; w < workers; w++ {
		w := w
		trials := per
		if w < remainder {
			trials++
		}
		seed := rng.Int63()
		g.Go(func() error {
			workerRng := rand.New(rand.NewSource(seed))
			res, err := Simulate(gctx, players, board, trials, workerRng)
			if err != nil {
				return err
			}
			results[w] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := newResult(len(players))
	for _, res := range results {
		for i := range total.Wins {
			total.Wins[i] += res.Wins[i]
			total.Ties[i] += res.Ties[i]
		}
		total.Trials += res.Trials
	}
	return total, nil
}

// knownCards collects every already-committed card (board plus explicit
// player holes), returning [pokercore.ErrOverlap] if any card is
// referenced twice.
func knownCards(players []Player, board []pokercore.Card) ([]pokercore.Card, error) {
	seen := make(map[pokercore.Card]bool)
	var known []pokercore.Card
	add := func(c pokercore.Card) error {
		if seen[c] {
			return pokercore.ErrOverlap
		}
		seen[c] = true
		known = append(known, c)
		return nil
	}
	for _, c := range board {
		if err := add(c); err != nil {
			return nil, err
		}
	}
	for _, p := range players {
		for _, c := range p.Hole {
			if err := add(c); err != nil {
				return nil, err
			}
		}
	}
	return known, nil
}

// sampleFromRange draws a hole pair for a range-based player by
// rejection sampling two random remaining cards from deck until their
// combo is in rng_'s range, removing both from deck on success. Reports
// false if no in-range pair is found within a bounded number of
// attempts (e.g. the range is exhausted by cards already dealt).
func sampleFromRange(rng_ *Range, deck *pokercore.Deck, rng *rand.Rand) (pokercore.Card, pokercore.Card, bool) {
	cards := deck.Cards()
	n := len(cards)
	if n < 2 {
		return pokercore.InvalidCard, pokercore.InvalidCard, false
	}
	const maxAttempts = 500
	for attempt := 0; attempt < maxAttempts; attempt++ {
		i := rng.Intn(n)
		j := rng.Intn(n - 1)
		if j >= i {
			j++
		}
		a, b := cards[i], cards[j]
		if rng_.Contains(newCombo(a, b)) {
			_ = deck.Remove(a)
			_ = deck.Remove(b)
			return a, b, true
		}
	}
	return pokercore.InvalidCard, pokercore.InvalidCard, false
}
