// Package ai implements the computer-opponent betting and discard policies.
// Brains are pure decision functions over a read-only view of the table;
// the engine still validates every decision before applying it.
package ai

import (
	"math/rand"

	"github.com/parlorgames/poker/domain/deck"
	"github.com/parlorgames/poker/domain/eval"
)

// Tier is the skill level of a computer seat.
type Tier int

// Skill tiers.
const (
	Easy Tier = iota
	Medium
	Hard
)

func (t Tier) String() string {
	switch t {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return "unknown"
}

// Kind is the betting decision type.
type Kind int

// Betting decisions.
const (
	Fold Kind = iota
	Check
	Call
	Raise
	AllIn
)

// Decision is a brain's answer for one betting turn. Amount is the raise
// increment above the current bet and is only meaningful for Raise.
type Decision struct {
	Kind   Kind
	Amount int
}

// View is the read-only projection of the table a brain decides from.
// It contains the seat's own cards plus only public context.
type View struct {
	Hand       []deck.Card
	Community  []deck.Card
	Wilds      eval.Wildness
	Pot        int // chips committed by everyone so far
	ToCall     int // chips owed to stay in
	MinRaise   int // minimum raise increment
	Stack      int // chips behind
	FieldSize  int // non-folded seats in the hand
	ToActAfter int // seats still to act behind this one
	CanRaise   bool
}

// Brain is one computer opponent policy.
type Brain struct {
	tier Tier
	rng  *rand.Rand
}

// New creates a brain at the given tier. The random source drives bluff
// and fold frequencies; pass a seeded source for reproducible play.
func New(tier Tier, rng *rand.Rand) *Brain {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Brain{tier: tier, rng: rng}
}

// Tier returns the brain's skill tier.
func (b *Brain) Tier() Tier { return b.tier }

// Act produces a betting decision for the view. The result is always
// affordable: raises are clamped to the stack and turn into all-ins when
// the stack cannot cover the minimum raise.
func (b *Brain) Act(v View) Decision {
	s := b.strength(v)
	var d Decision
	switch b.tier {
	case Easy:
		d = b.actEasy(v, s)
	case Medium:
		d = b.actMedium(v, s)
	default:
		d = b.actHard(v, s)
	}
	return clamp(v, d)
}

// actEasy plays passive thresholds on hand rank only: check or call with
// two pair or better, fold weak hands about 70% of the time, never bluff.
func (b *Brain) actEasy(v View, s float64) Decision {
	if v.ToCall == 0 {
		if s >= 0.30 && v.CanRaise && b.rng.Float64() < 0.4 {
			return Decision{Kind: Raise, Amount: v.MinRaise}
		}
		return Decision{Kind: Check}
	}
	if s >= twoPairStrength {
		return Decision{Kind: Call}
	}
	if b.rng.Float64() < 0.70 {
		return Decision{Kind: Fold}
	}
	return Decision{Kind: Call}
}

// actMedium adds pot-odds comparison and a fixed ~15% bluff frequency.
func (b *Brain) actMedium(v View, s float64) Decision {
	if v.ToCall == 0 {
		if v.CanRaise && (s >= 0.40 || b.rng.Float64() < 0.15) {
			return Decision{Kind: Raise, Amount: v.MinRaise * 2}
		}
		return Decision{Kind: Check}
	}
	odds := float64(v.ToCall) / float64(v.Pot+v.ToCall)
	if s >= 0.55 && v.CanRaise {
		return Decision{Kind: Raise, Amount: v.MinRaise * 2}
	}
	if s > odds {
		return Decision{Kind: Call}
	}
	if b.rng.Float64() < 0.15 && v.CanRaise {
		return Decision{Kind: Raise, Amount: v.MinRaise}
	}
	return Decision{Kind: Fold}
}

// actHard scales strength by field size and position, sizes value bets
// against the pot, and bluffs at a frequency weighted by field size and
// cost to call.
func (b *Brain) actHard(v View, s float64) Decision {
	adj := s * (1.0 - 0.04*float64(v.FieldSize-2))
	if v.ToActAfter == 0 {
		adj += 0.03 // last to act
	}

	if v.ToCall == 0 {
		if adj >= 0.45 && v.CanRaise {
			return Decision{Kind: Raise, Amount: betSize(v.Pot, adj, v.MinRaise)}
		}
		bluff := 0.10 / float64(max(1, v.FieldSize-1))
		if v.CanRaise && b.rng.Float64() < bluff {
			return Decision{Kind: Raise, Amount: betSize(v.Pot, 0.5, v.MinRaise)}
		}
		return Decision{Kind: Check}
	}

	odds := float64(v.ToCall) / float64(v.Pot+v.ToCall)
	switch {
	case adj >= 0.60 && v.CanRaise:
		return Decision{Kind: Raise, Amount: betSize(v.Pot, adj, v.MinRaise)}
	case adj > odds:
		return Decision{Kind: Call}
	}
	bluff := 0.12 / float64(max(1, v.FieldSize-1))
	bluff *= 1.0 - odds // expensive calls get bluffed less
	if v.CanRaise && b.rng.Float64() < bluff {
		return Decision{Kind: Raise, Amount: betSize(v.Pot, 0.6, v.MinRaise)}
	}
	return Decision{Kind: Fold}
}

// ChooseVariant picks an option index when this brain holds the dealer
// button in dealer's-choice mode.
func (b *Brain) ChooseVariant(options int) int {
	if options <= 0 {
		return 0
	}
	return b.rng.Intn(options)
}

// ChooseWilds picks a wildcard option index, biased toward tame choices.
func (b *Brain) ChooseWilds(options int) int {
	if options <= 0 {
		return 0
	}
	if b.tier == Easy || b.rng.Float64() < 0.5 {
		return 0
	}
	return b.rng.Intn(options)
}

// twoPairStrength is the normalized score of a bare two-pair hand.
const twoPairStrength = float64(eval.TwoPair) / 11.0

// strength scores the seat's best hand into [0, 1): category plus the
// leading tiebreak value, normalized. Pools under five cards fall back to
// the partial rank-count signature, discounted for the cards to come.
func (b *Brain) strength(v View) float64 {
	pool := make([]deck.Card, 0, len(v.Hand)+len(v.Community))
	pool = append(pool, v.Hand...)
	pool = append(pool, v.Community...)
	if len(pool) > 7 {
		pool = pool[:7]
	}
	if len(pool) >= 5 {
		if r, err := eval.Best5(pool, v.Wilds); err == nil {
			return (float64(r.Category) + top(r)/15.0) / 11.0
		}
	}
	r := eval.VisibleRank(pool)
	return (float64(r.Category) + top(r)/15.0) / 14.0
}

func top(r eval.Result) float64 {
	if len(r.Tiebreak) == 0 {
		return 0
	}
	return float64(r.Tiebreak[0])
}

// betSize converts pot share and strength into a raise increment.
func betSize(pot int, s float64, minRaise int) int {
	amt := int(float64(pot) * (0.4 + s*0.8))
	if amt < minRaise {
		amt = minRaise
	}
	return amt
}

// clamp keeps a decision affordable and legal-shaped: raises the stack
// cannot cover become all-ins, calls the stack cannot cover become
// all-ins, and raises are floored at the minimum increment.
func clamp(v View, d Decision) Decision {
	switch d.Kind {
	case Raise:
		if !v.CanRaise {
			if v.ToCall == 0 {
				return Decision{Kind: Check}
			}
			if v.ToCall >= v.Stack {
				return Decision{Kind: AllIn}
			}
			return Decision{Kind: Call}
		}
		if d.Amount < v.MinRaise {
			d.Amount = v.MinRaise
		}
		if v.ToCall+d.Amount >= v.Stack {
			return Decision{Kind: AllIn}
		}
	case Call:
		if v.ToCall >= v.Stack {
			return Decision{Kind: AllIn}
		}
		if v.ToCall == 0 {
			return Decision{Kind: Check}
		}
	case Check:
		if v.ToCall != 0 {
			return Decision{Kind: Fold}
		}
	}
	return d
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
