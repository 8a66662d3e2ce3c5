package poker

import (
	"github.com/parlorgames/poker/domain/ai"
	"github.com/parlorgames/poker/domain/deck"
	"github.com/parlorgames/poker/domain/eval"
)

// dealerChoices is the menu an AI dealer picks from in dealer's choice.
var dealerChoices = []Variant{FiveCardDraw, SevenCardStud, Holdem}

// adviseAction asks the seat's brain for its move in the current phase.
// The result goes through Submit like any human action, so an off-policy
// decision is rejected rather than applied.
func (t *Table) adviseAction(idx int) Action {
	s := t.seats[idx]
	switch t.phase {
	case PhaseVariantSelect:
		v := dealerChoices[s.brain.ChooseVariant(len(dealerChoices))]
		return Action{Kind: ActionChooseVariant, Variant: v}

	case PhaseWildSelect:
		opts := t.cfg.WildOptions
		if len(opts) == 0 {
			return Action{Kind: ActionChooseWilds}
		}
		pick := opts[s.brain.ChooseWilds(len(opts))]
		return Action{Kind: ActionChooseWilds, Wilds: pick}

	case PhaseAnte:
		return Action{Kind: ActionDeal}

	case PhaseBetting:
		d := s.brain.Act(t.aiView(idx))
		switch d.Kind {
		case ai.Check:
			return Action{Kind: ActionCheck}
		case ai.Call:
			return Action{Kind: ActionCall}
		case ai.Raise:
			return Action{Kind: ActionRaise, Amount: d.Amount}
		case ai.AllIn:
			return Action{Kind: ActionAllIn}
		}
		return Action{Kind: ActionFold}

	case PhaseDraw:
		toss := s.brain.Discard(s.cards, t.wilds, t.discardLimit(s))
		if len(toss) == 0 {
			return Action{Kind: ActionStandPat}
		}
		return Action{Kind: ActionDiscard, Indices: toss}

	case PhaseSettlement:
		return Action{Kind: ActionNextHand}
	}
	return Action{Kind: ActionFold}
}

// aiView projects the table into the seat's decision view: its own cards
// plus public context only.
func (t *Table) aiView(idx int) ai.View {
	s := t.seats[idx]
	toCall := t.curBet - s.roundBet
	hand := append([]deck.Card(nil), s.cards...)
	var community []deck.Card
	if len(t.community) > 0 {
		community = append([]deck.Card(nil), t.community...)
	}
	var wilds eval.Wildness
	if len(t.wilds) > 0 {
		wilds = append(eval.Wildness(nil), t.wilds...)
	}
	return ai.View{
		Hand:       hand,
		Community:  community,
		Wilds:      wilds,
		Pot:        t.pot.Total(),
		ToCall:     toCall,
		MinRaise:   t.minRaise,
		Stack:      s.stack,
		FieldSize:  t.liveSeats(),
		ToActAfter: t.countYetToAct(idx),
		CanRaise:   s.stack > toCall,
	}
}

// countYetToAct counts seats still owed a turn behind idx this round.
func (t *Table) countYetToAct(idx int) int {
	n := 0
	for i, s := range t.seats {
		if i != idx && s.canAct() && !s.acted {
			n++
		}
	}
	return n
}

// safeAction is the fallback when a brain's advice is rejected: the
// cheapest legal action for the phase.
func (t *Table) safeAction(idx int) Action {
	s := t.seats[idx]
	switch t.phase {
	case PhaseVariantSelect:
		return Action{Kind: ActionChooseVariant, Variant: FiveCardDraw}
	case PhaseWildSelect:
		return Action{Kind: ActionChooseWilds}
	case PhaseAnte:
		return Action{Kind: ActionDeal}
	case PhaseBetting:
		if t.curBet == s.roundBet {
			return Action{Kind: ActionCheck}
		}
		return Action{Kind: ActionFold}
	case PhaseDraw:
		return Action{Kind: ActionStandPat}
	}
	return Action{Kind: ActionNextHand}
}
