package poker

import (
	"github.com/parlorgames/poker/domain/deck"
)

// SeatView is one seat as a given viewer is allowed to see it.
type SeatView struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Stack      int         `json:"stack"`
	Cards      []deck.Card `json:"cards,omitempty"`
	RoundBet   int         `json:"roundBet"`
	HandBet    int         `json:"handBet"`
	Folded     bool        `json:"folded"`
	AllIn      bool        `json:"allIn"`
	Eliminated bool        `json:"eliminated"`
	IsAI       bool        `json:"isAI"`
	Outcome    SeatOutcome `json:"outcome,omitempty"`
	Won        int         `json:"won,omitempty"`
}

// View is a snapshot of the table redacted for one viewer. Hidden cards
// belonging to other seats are replaced with placeholders until the
// showdown reveals them.
type View struct {
	Phase      Phase       `json:"phase"`
	Variant    Variant     `json:"variant,omitempty"`
	Wilds      string      `json:"wilds,omitempty"`
	Dealer     string      `json:"dealer"`
	Actor      string      `json:"actor,omitempty"`
	Community  []deck.Card `json:"community,omitempty"`
	Pot        int         `json:"pot"`
	CurrentBet int         `json:"currentBet"`
	MinRaise   int         `json:"minRaise"`
	ToCall     int         `json:"toCall"`
	DrawLimit  int         `json:"drawLimit,omitempty"`
	Seats      []SeatView  `json:"seats"`
	Message    string      `json:"message,omitempty"`
	HandDead   bool        `json:"handDead,omitempty"`
	GameOver   bool        `json:"gameOver,omitempty"`
	CardsLeft  int         `json:"cardsLeft"`
}

// State builds the table snapshot as seen by viewerID. An unknown or
// empty viewer gets the spectator view: only public information.
func (t *Table) State(viewerID string) View {
	viewer := t.seatIndex(viewerID)
	v := View{
		Phase:      t.phase,
		Variant:    t.variant,
		Wilds:      t.wilds.String(),
		Dealer:     t.seats[t.dealer].id,
		Actor:      t.CurrentActor(),
		Pot:        t.pot.Total(),
		CurrentBet: t.curBet,
		MinRaise:   t.minRaise,
		Message:    t.lastMsg,
		HandDead:   t.dead,
		GameOver:   t.GameOver(),
	}
	if len(t.community) > 0 {
		v.Community = append([]deck.Card(nil), t.community...)
	}
	if t.deck != nil {
		v.CardsLeft = t.deck.Remaining()
	}
	if viewer >= 0 {
		s := t.seats[viewer]
		v.ToCall = t.curBet - s.roundBet
		if t.phase == PhaseDraw && t.actor == viewer {
			v.DrawLimit = t.discardLimit(s)
		}
	}
	for i := range t.seats {
		v.Seats = append(v.Seats, t.seatView(i, viewer))
	}
	return v
}

// seatView redacts one seat for the viewer: own cards are always shown,
// face-up cards are public, and everything shows once hands are revealed
// at showdown.
func (t *Table) seatView(idx, viewer int) SeatView {
	s := t.seats[idx]
	sv := SeatView{
		ID:         s.id,
		Name:       s.name,
		Stack:      s.stack,
		RoundBet:   s.roundBet,
		HandBet:    s.handBet,
		Folded:     s.folded,
		AllIn:      s.allIn,
		Eliminated: s.eliminated,
		IsAI:       s.brain != nil,
		Outcome:    s.outcome,
		Won:        s.won,
	}
	if len(s.cards) == 0 {
		return sv
	}
	open := idx == viewer || (t.revealed && s.inHand() && t.phase == PhaseSettlement)
	sv.Cards = make([]deck.Card, len(s.cards))
	for i, c := range s.cards {
		switch {
		case open || c.FaceUp():
			sv.Cards[i] = c
		default:
			sv.Cards[i] = deck.Hidden()
		}
	}
	return sv
}
