// Package potmanager tracks per-seat chip contributions across a hand and
// derives side pots with correct eligibility sets at showdown.
package potmanager

import (
	"errors"
	"sort"
)

// ErrInconsistent signals that the computed pots do not sum to the total
// recorded contributions. This is an internal invariant violation, never
// user-triggerable, and aborts the hand.
var ErrInconsistent = errors.New("potmanager: pots do not sum to contributions")

// Pot is one tier of the pot with the seats allowed to win it.
type Pot struct {
	Amount   int   `json:"amount"`
	Eligible []int `json:"eligible"`
}

// PotManager records what every seat has committed this hand. Seats are
// identified by their table index. Pots are derived once at showdown from
// the recorded contributions, never mutated incrementally.
type PotManager struct {
	contributed map[int]int
	folded      map[int]bool
	capped      map[int]bool // seat went all-in; its contribution is its cap
}

// New creates an empty ledger for one hand.
func New() *PotManager {
	return &PotManager{
		contributed: make(map[int]int),
		folded:      make(map[int]bool),
		capped:      make(map[int]bool),
	}
}

// Contribute records chips moving from a seat into the pot.
func (pm *PotManager) Contribute(seat, amount int) {
	pm.contributed[seat] += amount
}

// Fold marks a seat as folded. Its chips stay in the pot but it is no
// longer eligible for any tier.
func (pm *PotManager) Fold(seat int) {
	pm.folded[seat] = true
}

// AllIn marks a seat as all-in at its current contribution level.
func (pm *PotManager) AllIn(seat int) {
	pm.capped[seat] = true
}

// Contributed returns the total committed by one seat this hand.
func (pm *PotManager) Contributed(seat int) int {
	return pm.contributed[seat]
}

// Total returns the total chips committed by all seats.
func (pm *PotManager) Total() int {
	total := 0
	for _, amt := range pm.contributed {
		total += amt
	}
	return total
}

// Pots derives the side-pot structure from the recorded contributions.
//
// Distinct contribution levels of all-in and live seats are visited
// ascending; each tier collects, from every seat, the slice of its
// contribution between the previous tier and this one. A tier's eligible
// set is the non-folded seats that contributed at least the tier level.
// A live seat whose forced bet left it below an all-in level still gets
// a tier at its own contribution, so it is never shut out of chips it
// fully funded. Whatever was committed above the largest level forms the
// final, uncapped pot.
func (pm *PotManager) Pots() ([]Pot, error) {
	levels := make([]int, 0, len(pm.contributed))
	seen := make(map[int]bool)
	maxContrib := 0
	for seat, amt := range pm.contributed {
		if (pm.capped[seat] || !pm.folded[seat]) && !seen[amt] {
			seen[amt] = true
			levels = append(levels, amt)
		}
		if amt > maxContrib {
			maxContrib = amt
		}
	}
	sort.Ints(levels)
	if len(levels) == 0 || levels[len(levels)-1] < maxContrib {
		levels = append(levels, maxContrib)
	}

	pots := make([]Pot, 0, len(levels))
	prev := 0
	for _, level := range levels {
		amount := 0
		for _, amt := range pm.contributed {
			slice := min(amt, level) - min(amt, prev)
			amount += slice
		}
		if amount == 0 {
			prev = level
			continue
		}
		eligible := make([]int, 0, len(pm.contributed))
		for seat, amt := range pm.contributed {
			if !pm.folded[seat] && amt >= level {
				eligible = append(eligible, seat)
			}
		}
		sort.Ints(eligible)
		if len(eligible) == 0 && len(pots) > 0 {
			// Every seat above this tier folded; the chips roll into the
			// tier below rather than going unawarded.
			pots[len(pots)-1].Amount += amount
			prev = level
			continue
		}
		pots = append(pots, Pot{Amount: amount, Eligible: eligible})
		prev = level
	}

	sum := 0
	for _, p := range pots {
		sum += p.Amount
	}
	if sum != pm.Total() {
		return nil, ErrInconsistent
	}
	return pots, nil
}

// Payout distributes every pot among the winners the pick function selects
// from the pot's eligible seats. Each pot splits evenly; an odd remainder
// goes to the first listed winner. Returns the amount won per seat.
func (pm *PotManager) Payout(pots []Pot, pick func(eligible []int) []int) map[int]int {
	won := make(map[int]int)
	for _, pot := range pots {
		winners := pick(pot.Eligible)
		if len(winners) == 0 {
			continue
		}
		share := pot.Amount / len(winners)
		for _, w := range winners {
			won[w] += share
		}
		won[winners[0]] += pot.Amount - share*len(winners)
	}
	return won
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
