package poker

import "github.com/parlorgames/poker/domain/eval"

// checkAction validates an action against the current phase, turn, and
// betting rules. It never mutates state: a rejected action leaves the
// machine exactly as it was.
func (t *Table) checkAction(idx int, a Action) error {
	s := t.seats[idx]
	if s.eliminated {
		return illegalf("seat %q is out of the game", s.id)
	}
	if t.dead {
		if a.Kind != ActionNextHand {
			return illegalf("hand was aborted; only %q is accepted", ActionNextHand)
		}
		if t.GameOver() {
			return ErrGameOver
		}
		return nil
	}

	switch t.phase {
	case PhaseVariantSelect:
		if a.Kind != ActionChooseVariant {
			return illegalf("%q not legal during variant selection", a.Kind)
		}
		if idx != t.dealer {
			return illegalf("only the dealer chooses the variant")
		}
		switch a.Variant {
		case FiveCardDraw, SevenCardStud, Holdem:
		default:
			return illegalf("unknown variant %q", a.Variant)
		}

	case PhaseWildSelect:
		if a.Kind != ActionChooseWilds {
			return illegalf("%q not legal during wild selection", a.Kind)
		}
		if idx != t.dealer {
			return illegalf("only the dealer chooses wild cards")
		}
		if !t.wildsAllowed(a.Wilds) {
			return illegalf("wildcard set not among the table's options")
		}

	case PhaseAnte:
		if a.Kind != ActionDeal {
			return illegalf("%q not legal before the deal", a.Kind)
		}
		if idx != t.dealer {
			return illegalf("only the dealer starts the deal")
		}

	case PhaseBetting:
		if idx != t.actor {
			return illegalf("not seat %q's turn", s.id)
		}
		toCall := t.curBet - s.roundBet
		switch a.Kind {
		case ActionCheck:
			if toCall != 0 {
				return illegalf("cannot check, %d is owed", toCall)
			}
		case ActionCall:
			if toCall <= 0 {
				return illegalf("nothing to call")
			}
			if s.stack < toCall {
				return illegalf("insufficient chips to call %d", toCall)
			}
		case ActionRaise:
			if s.stack <= toCall {
				return illegalf("insufficient chips to raise")
			}
			if a.Amount < t.minRaise {
				return illegalf("raise must be at least %d", t.minRaise)
			}
			if toCall+a.Amount > s.stack {
				return illegalf("raise of %d exceeds stack", a.Amount)
			}
		case ActionFold, ActionAllIn:
		default:
			return illegalf("%q not legal during betting", a.Kind)
		}

	case PhaseDraw:
		if idx != t.actor {
			return illegalf("not seat %q's turn to draw", s.id)
		}
		switch a.Kind {
		case ActionStandPat:
		case ActionDiscard:
			return t.checkDiscard(s, a.Indices)
		default:
			return illegalf("%q not legal during the draw", a.Kind)
		}

	case PhaseSettlement:
		if a.Kind != ActionNextHand {
			return illegalf("hand is over; only %q is accepted", ActionNextHand)
		}
		if t.GameOver() {
			return ErrGameOver
		}

	default:
		return illegalf("%q not legal in phase %q", a.Kind, t.phase)
	}
	return nil
}

// checkDiscard enforces the draw limits: up to three cards, or four when
// the card kept alongside the draw is an ace or a wild.
func (t *Table) checkDiscard(s *seat, indices []int) error {
	if len(indices) == 0 {
		return illegalf("discard needs at least one card; use %q to keep the hand", ActionStandPat)
	}
	if len(indices) > 4 {
		return illegalf("cannot discard more than 4 cards")
	}
	seen := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(s.cards) {
			return illegalf("discard index %d out of range", i)
		}
		if seen[i] {
			return illegalf("discard index %d repeated", i)
		}
		seen[i] = true
	}
	if len(indices) == 4 {
		for i, c := range s.cards {
			if seen[i] {
				continue
			}
			if c.Value() == 14 || c.IsJoker() || t.wilds.IsWild(c) {
				return nil
			}
		}
		return illegalf("discarding 4 requires keeping an ace or a wild card")
	}
	return nil
}

// wildsAllowed reports whether the chosen set is empty or matches one of
// the configured options.
func (t *Table) wildsAllowed(w eval.Wildness) bool {
	if len(w) == 0 {
		return true
	}
	for _, opt := range t.cfg.WildOptions {
		if sameWilds(w, opt) {
			return true
		}
	}
	return false
}

func sameWilds(a, b eval.Wildness) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
