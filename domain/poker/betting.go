package poker

import (
	"fmt"

	"github.com/parlorgames/poker/domain/eval"
)

// applyAction applies a validated action. Any error returned here is
// hand-fatal; recoverable rejections were already filtered by checkAction.
func (t *Table) applyAction(idx int, a Action) (Result, error) {
	s := t.seats[idx]
	switch a.Kind {
	case ActionChooseVariant:
		t.variant = a.Variant
		t.wilds = nil
		t.lastMsg = fmt.Sprintf("%s calls %s", s.name, a.Variant)
		t.log.WithFields(map[string]interface{}{"seat": s.id, "variant": a.Variant}).Debug("variant chosen")
		if a.Variant.AllowsWilds() && len(t.cfg.WildOptions) > 0 {
			t.phase = PhaseWildSelect
		} else {
			t.phase = PhaseAnte
		}
		t.actor = t.dealer
		return Result{Message: t.lastMsg}, nil

	case ActionChooseWilds:
		t.wilds = append(eval.Wildness(nil), a.Wilds...)
		t.phase = PhaseAnte
		t.actor = t.dealer
		t.lastMsg = fmt.Sprintf("%s sets %s", s.name, t.wilds)
		return Result{Message: t.lastMsg}, nil

	case ActionDeal:
		return t.beginHand()

	case ActionDiscard:
		return t.applyDiscard(idx, a.Indices)

	case ActionStandPat:
		s.acted = true
		t.lastMsg = s.name + " stands pat"
		if err := t.advanceDrawTurn(); err != nil {
			return Result{}, err
		}
		res := Result{Message: t.lastMsg}
		if t.phase == PhaseSettlement {
			res.HandOver = true
			res.Awarded = t.awardedMap()
		}
		return res, nil

	case ActionNextHand:
		t.dealer = t.nextSeated(t.dealer)
		t.arm()
		return Result{Message: t.lastMsg}, nil
	}
	return t.applyBet(idx, a)
}

func (t *Table) applyBet(idx int, a Action) (Result, error) {
	s := t.seats[idx]
	res := Result{}

	switch a.Kind {
	case ActionCheck:
		s.acted = true
		t.lastMsg = s.name + " checks"

	case ActionFold:
		s.folded = true
		s.acted = true
		t.pot.Fold(idx)
		t.lastMsg = s.name + " folds"
		if t.liveSeats() == 1 {
			t.settleFoldWin()
			return t.settledResult(), nil
		}

	case ActionCall:
		res.Moved = t.pay(idx, t.curBet-s.roundBet)
		s.acted = true
		t.lastMsg = fmt.Sprintf("%s calls %d", s.name, res.Moved)

	case ActionRaise:
		target := t.curBet + a.Amount
		res.Moved = t.pay(idx, target-s.roundBet)
		t.minRaise = a.Amount
		s.acted = true
		t.resetActedExcept(idx)
		t.lastMsg = fmt.Sprintf("%s raises to %d", s.name, target)

	case ActionAllIn:
		prev := t.curBet
		res.Moved = t.pay(idx, s.stack)
		s.acted = true
		// only a full-increment all-in reopens the action; a short one
		// leaves the minimum raise and the acted flags alone
		if s.roundBet > prev && s.roundBet-prev >= t.minRaise {
			t.minRaise = s.roundBet - prev
			t.resetActedExcept(idx)
		}
		t.lastMsg = fmt.Sprintf("%s is all in for %d", s.name, s.roundBet)
	}

	t.log.WithFields(map[string]interface{}{
		"seat": s.id, "action": a.Kind, "moved": res.Moved, "pot": t.pot.Total(),
	}).Debug("bet applied")

	if t.bettingDone() {
		if err := t.advanceAfterBetting(); err != nil {
			return Result{}, err
		}
	} else {
		t.actor = t.nextToAct(idx)
	}
	if t.phase == PhaseSettlement {
		res.HandOver = true
		res.Awarded = t.awardedMap()
	}
	res.Message = t.lastMsg
	return res, nil
}

// pay moves up to amount from the seat into the pot, marking the seat
// all-in when its whole stack goes. The current bet tracks the highest
// round bet. Returns the chips actually moved.
func (t *Table) pay(idx, amount int) int {
	s := t.seats[idx]
	if amount >= s.stack {
		amount = s.stack
		s.allIn = true
		t.pot.AllIn(idx)
	}
	s.stack -= amount
	s.roundBet += amount
	s.handBet += amount
	t.pot.Contribute(idx, amount)
	if s.roundBet > t.curBet {
		t.curBet = s.roundBet
	}
	return amount
}

// postAnte takes dead money: it never counts toward the round bet.
func (t *Table) postAnte(idx, amount int) {
	s := t.seats[idx]
	if amount >= s.stack {
		amount = s.stack
		s.allIn = true
		t.pot.AllIn(idx)
	}
	s.stack -= amount
	s.handBet += amount
	t.pot.Contribute(idx, amount)
}

// bettingDone reports whether every seat able to act has acted and
// matched the current bet.
func (t *Table) bettingDone() bool {
	for _, s := range t.seats {
		if s.canAct() && (!s.acted || s.roundBet != t.curBet) {
			return false
		}
	}
	return true
}

// resetActedExcept reopens the action for everyone else after a raise.
func (t *Table) resetActedExcept(idx int) {
	for i, s := range t.seats {
		if i != idx && s.canAct() {
			s.acted = false
		}
	}
}

// beginBettingRound opens a fresh betting round with the given first
// actor. When one or zero seats can still act, betting is skipped and
// the machine advances immediately.
func (t *Table) beginBettingRound(first int) error {
	t.curBet = 0
	t.minRaise = t.minIncrement()
	for _, s := range t.seats {
		s.roundBet = 0
		s.acted = false
	}
	t.phase = PhaseBetting
	if first < 0 || t.activeSeats() <= 1 {
		return t.advanceAfterBetting()
	}
	t.actor = first
	return nil
}

func (t *Table) minIncrement() int {
	if t.variant == Holdem {
		return t.cfg.BigBlind
	}
	return t.cfg.MinRaise
}

func (t *Table) awardedMap() map[string]int {
	out := make(map[string]int)
	for _, s := range t.seats {
		if s.won > 0 {
			out[s.id] = s.won
		}
	}
	return out
}

func (t *Table) settledResult() Result {
	return Result{HandOver: true, Awarded: t.awardedMap(), Message: t.lastMsg}
}
