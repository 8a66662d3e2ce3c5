package poker

import (
	"fmt"

	"github.com/parlorgames/poker/domain/deck"
	"github.com/parlorgames/poker/domain/eval"
	"github.com/parlorgames/poker/domain/potmanager"
)

// beginHand builds and shuffles the deck, collects antes or blinds, deals
// the variant's opening cards, and opens the first betting round.
func (t *Table) beginHand() (Result, error) {
	opts := []deck.Option{deck.WithRand(t.rng)}
	if t.wilds.HasJokers() {
		opts = append(opts, deck.WithJokers(2))
	}
	t.deck = deck.New(opts...)
	t.deck.Shuffle()
	t.pot = potmanager.New()
	t.community = nil
	t.street = 0
	t.discards = nil
	t.drawDone = false
	t.queenSeen = false
	t.revealed = false
	t.curBet = 0
	t.minRaise = t.minIncrement()
	for _, s := range t.seats {
		s.cards = nil
		s.roundBet = 0
		s.handBet = 0
		s.folded = false
		s.allIn = false
		s.acted = false
		s.outcome = OutcomeNone
		s.won = 0
	}

	t.log.WithFields(map[string]interface{}{
		"variant": t.variant, "wilds": t.wilds.String(), "dealer": t.seats[t.dealer].id,
	}).Info("hand started")

	var err error
	switch t.variant {
	case FiveCardDraw:
		err = t.beginDrawHand()
	case SevenCardStud:
		err = t.beginStudHand()
	case Holdem:
		err = t.beginHoldemHand()
	default:
		err = fmt.Errorf("no variant selected")
	}
	if err != nil {
		return Result{}, err
	}
	res := Result{Message: t.lastMsg}
	if t.phase == PhaseSettlement {
		res.HandOver = true
		res.Awarded = t.awardedMap()
	}
	return res, nil
}

func (t *Table) beginDrawHand() error {
	t.collectAntes()
	if err := t.dealDown(5); err != nil {
		return err
	}
	t.lastMsg = "five cards dealt"
	return t.beginBettingRound(t.nextToAct(t.dealer))
}

func (t *Table) beginStudHand() error {
	t.collectAntes()
	if err := t.dealDown(2); err != nil {
		return err
	}
	if err := t.dealStudCard(true); err != nil {
		return err
	}
	t.street = 3
	t.lastMsg = "third street dealt"
	return t.beginBettingRound(t.bestVisible())
}

func (t *Table) beginHoldemHand() error {
	var sb, bb int
	if t.seatedCount() == 2 {
		// heads-up: the dealer posts the small blind and acts first
		sb = t.dealer
		bb = t.nextSeated(t.dealer)
	} else {
		sb = t.nextSeated(t.dealer)
		bb = t.nextSeated(sb)
	}
	t.pay(sb, t.cfg.SmallBlind)
	t.pay(bb, t.cfg.BigBlind)
	if err := t.dealDown(2); err != nil {
		return err
	}
	t.lastMsg = fmt.Sprintf("blinds %d/%d posted", t.cfg.SmallBlind, t.cfg.BigBlind)
	t.phase = PhaseBetting
	// A blind post can put a seat all-in for more than the others have in.
	// A lone live seat that still owes on the forced bet keeps its turn to
	// call or fold; the round is only skipped when nothing is owed.
	first := t.nextToAct(bb)
	if first < 0 || (t.activeSeats() <= 1 && t.seats[first].roundBet == t.curBet) {
		return t.advanceAfterBetting()
	}
	t.actor = first
	return nil
}

// collectAntes posts the fixed ante from every seat in the hand. Short
// stacks post what they have and are all-in.
func (t *Table) collectAntes() {
	if t.cfg.Ante <= 0 {
		return
	}
	for i, s := range t.seats {
		if s.eliminated {
			continue
		}
		t.postAnte(i, t.cfg.Ante)
	}
}

// dealDown deals n face-down cards to every seat in the hand, starting
// left of the dealer.
func (t *Table) dealDown(n int) error {
	for i := 1; i <= len(t.seats); i++ {
		idx := (t.dealer + i) % len(t.seats)
		s := t.seats[idx]
		if !s.inHand() {
			continue
		}
		cards, err := t.deck.DrawN(n)
		if err != nil {
			return err
		}
		s.cards = append(s.cards, cards...)
	}
	return nil
}

// dealStudCard deals one more card to every live seat. Face-up cards feed
// the follow-the-queen rule as they land.
func (t *Table) dealStudCard(faceUp bool) error {
	for i := 1; i <= len(t.seats); i++ {
		idx := (t.dealer + i) % len(t.seats)
		s := t.seats[idx]
		if !s.inHand() {
			continue
		}
		c, err := t.deck.Draw()
		if err != nil {
			return err
		}
		if faceUp {
			c = c.AsFaceUp()
			t.noteFaceUp(c)
		}
		s.cards = append(s.cards, c)
	}
	return nil
}

// advanceAfterBetting moves the machine past a completed betting round,
// following the active variant's street graph.
func (t *Table) advanceAfterBetting() error {
	switch t.variant {
	case FiveCardDraw:
		if !t.drawDone {
			return t.beginDrawPhase()
		}
		return t.showdown()
	case SevenCardStud:
		if t.street < 7 {
			return t.dealStudStreet()
		}
		return t.showdown()
	case Holdem:
		switch len(t.community) {
		case 0:
			return t.dealCommunity(3, "flop")
		case 3:
			return t.dealCommunity(1, "turn")
		case 4:
			return t.dealCommunity(1, "river")
		default:
			return t.showdown()
		}
	}
	return fmt.Errorf("no variant in play")
}

// dealStudStreet deals the next stud street and opens its betting round.
// The seventh card is face-up or down per table setup.
func (t *Table) dealStudStreet() error {
	t.street++
	faceUp := t.street < 7 || !t.cfg.SeventhStreetDown
	if err := t.dealStudCard(faceUp); err != nil {
		return err
	}
	t.lastMsg = fmt.Sprintf("%s dealt", streetName(t.street))
	return t.beginBettingRound(t.bestVisible())
}

// dealCommunity burns one card, deals n shared cards, and opens betting.
func (t *Table) dealCommunity(n int, name string) error {
	if err := t.deck.Burn(); err != nil {
		return err
	}
	cards, err := t.deck.DrawN(n)
	if err != nil {
		return err
	}
	for _, c := range cards {
		t.community = append(t.community, c.AsFaceUp())
	}
	t.lastMsg = name + " dealt"
	return t.beginBettingRound(t.nextToAct(t.dealer))
}

// noteFaceUp feeds the follow-the-queen rule: the first non-queen rank
// dealt face-up after a queen becomes the wild rank, replacing any rank
// from an earlier queen.
func (t *Table) noteFaceUp(c deck.Card) {
	if !t.hasFollowQueen() || c.IsJoker() {
		return
	}
	if c.Rank() == deck.Queen {
		t.queenSeen = true
		return
	}
	if !t.queenSeen {
		return
	}
	t.queenSeen = false
	for i := range t.wilds {
		if t.wilds[i].Kind == eval.FollowQueen {
			t.wilds[i].Rank = c.Rank()
		}
	}
	t.lastMsg = fmt.Sprintf("the queen is followed: %s", t.wilds)
	t.log.WithField("wilds", t.wilds.String()).Info("follow-the-queen rank changed")
}

func (t *Table) hasFollowQueen() bool {
	for _, r := range t.wilds {
		if r.Kind == eval.FollowQueen {
			return true
		}
	}
	return false
}

// bestVisible picks the stud betting opener: the best face-up partial
// hand among seats able to act, ties to the earliest seat left of the
// dealer.
func (t *Table) bestVisible() int {
	best := -1
	var bestR eval.Result
	n := len(t.seats)
	for i := 1; i <= n; i++ {
		idx := (t.dealer + i) % n
		s := t.seats[idx]
		if !s.canAct() {
			continue
		}
		r := eval.VisibleRank(faceUpCards(s))
		if best < 0 || r.Compare(bestR) > 0 {
			best, bestR = idx, r
		}
	}
	return best
}

func faceUpCards(s *seat) []deck.Card {
	out := make([]deck.Card, 0, len(s.cards))
	for _, c := range s.cards {
		if c.FaceUp() {
			out = append(out, c)
		}
	}
	return out
}

func streetName(street int) string {
	switch street {
	case 3:
		return "third street"
	case 4:
		return "fourth street"
	case 5:
		return "fifth street"
	case 6:
		return "sixth street"
	case 7:
		return "seventh street"
	}
	return fmt.Sprintf("street %d", street)
}
