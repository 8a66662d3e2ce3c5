package poker

import "fmt"

// beginDrawPhase opens the five-card-draw exchange. Every seat still in
// the hand takes one turn, all-in seats included; no betting happens here.
func (t *Table) beginDrawPhase() error {
	t.phase = PhaseDraw
	for _, s := range t.seats {
		s.acted = false
	}
	t.actor = t.nextDrawer(t.dealer)
	if t.actor < 0 {
		return t.finishDrawPhase()
	}
	t.lastMsg = "draw: pick your discards"
	return nil
}

// nextDrawer returns the next seat after from still owed a draw turn.
func (t *Table) nextDrawer(from int) int {
	n := len(t.seats)
	for i := 1; i <= n; i++ {
		idx := (from + i) % n
		s := t.seats[idx]
		if s.inHand() && !s.acted {
			return idx
		}
	}
	return -1
}

// advanceDrawTurn moves to the next seat owed a draw, or closes the
// phase when everyone has exchanged.
func (t *Table) advanceDrawTurn() error {
	next := t.nextDrawer(t.actor)
	if next >= 0 {
		t.actor = next
		return nil
	}
	return t.finishDrawPhase()
}

func (t *Table) finishDrawPhase() error {
	t.drawDone = true
	return t.beginBettingRound(t.nextToAct(t.dealer))
}

// applyDiscard replaces the selected cards from the top of the deck.
// When the deck cannot cover the draw, earlier seats' discards are
// reshuffled back in; a seat never draws back its own discards.
func (t *Table) applyDiscard(idx int, indices []int) (Result, error) {
	s := t.seats[idx]
	toss := make(map[int]bool, len(indices))
	for _, i := range indices {
		toss[i] = true
	}
	if t.deck.Remaining() < len(indices) && len(t.discards) > 0 {
		t.deck.Recycle(t.discards)
		t.discards = nil
		t.log.WithField("remaining", t.deck.Remaining()).Debug("discards reshuffled into the deck")
	}
	drawn, err := t.deck.DrawN(len(indices))
	if err != nil {
		return Result{}, err
	}
	kept := s.cards[:0]
	for i, c := range s.cards {
		if toss[i] {
			t.discards = append(t.discards, c.AsFaceDown())
			continue
		}
		kept = append(kept, c)
	}
	s.cards = append(kept, drawn...)
	s.acted = true
	t.lastMsg = fmt.Sprintf("%s draws %d", s.name, len(drawn))
	t.log.WithFields(map[string]interface{}{"seat": s.id, "count": len(drawn)}).Debug("cards exchanged")
	if err := t.advanceDrawTurn(); err != nil {
		return Result{}, err
	}

	res := Result{Drawn: drawn, Message: t.lastMsg}
	if t.phase == PhaseSettlement {
		res.HandOver = true
		res.Awarded = t.awardedMap()
	}
	return res, nil
}

// discardLimit is 3, or 4 when the hand holds an ace or a wild card.
func (t *Table) discardLimit(s *seat) int {
	for _, c := range s.cards {
		if c.Value() == 14 || c.IsJoker() || t.wilds.IsWild(c) {
			return 4
		}
	}
	return 3
}
