package poker

import (
	"fmt"
	"sort"
	"strings"

	"github.com/parlorgames/poker/domain/deck"
	"github.com/parlorgames/poker/domain/eval"
	"github.com/parlorgames/poker/domain/potmanager"
)

// showdown ranks every live hand, splits the pot structure among the
// winners, and moves the machine to settlement. Hands are revealed.
func (t *Table) showdown() error {
	pots, err := t.pot.Pots()
	if err != nil {
		return err
	}

	results := make(map[int]eval.Result, len(t.seats))
	for i, s := range t.seats {
		if !s.inHand() {
			continue
		}
		r, err := t.rankSeat(s)
		if err != nil {
			return fmt.Errorf("ranking seat %q: %w", s.id, err)
		}
		results[i] = r
	}

	splitSeats := make(map[int]bool)
	won := t.pot.Payout(pots, func(eligible []int) []int {
		winners := t.pickWinners(eligible, results)
		if len(winners) > 1 {
			for _, w := range winners {
				splitSeats[w] = true
			}
		}
		return winners
	})

	paid := 0
	for idx, amount := range won {
		s := t.seats[idx]
		s.stack += amount
		s.won = amount
		paid += amount
	}
	if paid != t.pot.Total() {
		return fmt.Errorf("%w: paid %d of %d", potmanager.ErrInconsistent, paid, t.pot.Total())
	}

	names := make([]string, 0, len(won))
	for i, s := range t.seats {
		if !s.inHand() {
			if s.handBet > 0 {
				s.outcome = OutcomeLose
			}
			continue
		}
		switch {
		case s.won > 0 && splitSeats[i]:
			s.outcome = OutcomeSplit
		case s.won > 0:
			s.outcome = OutcomeWin
		default:
			s.outcome = OutcomeLose
		}
		if s.won > 0 {
			names = append(names, fmt.Sprintf("%s (%s, %d)", s.name, results[i], s.won))
		}
	}

	t.revealed = true
	t.finishHand("showdown: " + strings.Join(names, ", "))
	return nil
}

// rankSeat evaluates one seat's final hand under the active variant.
func (t *Table) rankSeat(s *seat) (eval.Result, error) {
	switch t.variant {
	case Holdem:
		pool := make([]deck.Card, 0, len(s.cards)+len(t.community))
		pool = append(pool, s.cards...)
		pool = append(pool, t.community...)
		return eval.Best5(pool, t.wilds)
	case SevenCardStud:
		return eval.Best5(s.cards, t.wilds)
	default:
		return eval.Eval5(s.cards, t.wilds)
	}
}

// pickWinners returns the eligible seats holding the best hand, in seat
// order starting left of the dealer so the odd chip lands predictably.
func (t *Table) pickWinners(eligible []int, results map[int]eval.Result) []int {
	ordered := t.orderFromDealer(eligible)
	var winners []int
	var best eval.Result
	for _, idx := range ordered {
		r, ok := results[idx]
		if !ok {
			continue
		}
		switch {
		case len(winners) == 0 || r.Beats(best):
			winners = []int{idx}
			best = r
		case r.Compare(best) == 0:
			winners = append(winners, idx)
		}
	}
	return winners
}

// orderFromDealer sorts seat indices by distance left of the dealer.
func (t *Table) orderFromDealer(seats []int) []int {
	n := len(t.seats)
	out := append([]int(nil), seats...)
	sort.Slice(out, func(i, j int) bool {
		di := (out[i] - t.dealer - 1 + n) % n
		dj := (out[j] - t.dealer - 1 + n) % n
		return di < dj
	})
	return out
}

// settleFoldWin ends the hand when a single live seat remains: it takes
// the whole pot unshown.
func (t *Table) settleFoldWin() {
	for _, s := range t.seats {
		if s.handBet > 0 && !s.inHand() {
			s.outcome = OutcomeLose
		}
	}
	for _, s := range t.seats {
		if !s.inHand() {
			continue
		}
		amount := t.pot.Total()
		s.stack += amount
		s.won = amount
		s.outcome = OutcomeWin
		t.finishHand(fmt.Sprintf("%s takes the pot of %d uncontested", s.name, amount))
		return
	}
	t.finishHand("hand over")
}

// finishHand settles the table: busted seats are eliminated and the
// phase moves to settlement.
func (t *Table) finishHand(msg string) {
	for _, s := range t.seats {
		if !s.eliminated && s.stack == 0 {
			s.eliminated = true
			t.log.WithField("seat", s.id).Info("seat eliminated")
		}
	}
	t.phase = PhaseSettlement
	t.actor = -1
	t.lastMsg = msg
	t.log.WithFields(map[string]interface{}{
		"awarded": t.awardedMap(), "message": msg,
	}).Info("hand settled")
}
