package poker

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/parlorgames/poker/domain/ai"
	"github.com/parlorgames/poker/domain/deck"
	"github.com/parlorgames/poker/domain/eval"
)

// Variant identifies the active poker game.
type Variant string

// Supported variants.
const (
	FiveCardDraw  Variant = "five_card_draw"
	SevenCardStud Variant = "seven_card_stud"
	Holdem        Variant = "holdem"
)

// AllowsWilds reports whether the variant permits a wildcard selection.
// Hold'em is always played straight.
func (v Variant) AllowsWilds() bool { return v != Holdem }

func (v Variant) String() string {
	switch v {
	case FiveCardDraw:
		return "Five-Card Draw"
	case SevenCardStud:
		return "Seven-Card Stud"
	case Holdem:
		return "Hold'em"
	}
	return string(v)
}

// Phase is the hand state machine's current state. Dealing and showdown
// are transient: the machine runs through them without waiting for input.
type Phase string

// Hand phases.
const (
	PhaseVariantSelect Phase = "variant_select"
	PhaseWildSelect    Phase = "wild_select"
	PhaseAnte          Phase = "ante"
	PhaseBetting       Phase = "betting"
	PhaseDraw          Phase = "draw"
	PhaseSettlement    Phase = "settlement"
)

// ActionKind identifies a submitted action.
type ActionKind string

// Submittable actions.
const (
	ActionCheck         ActionKind = "check"
	ActionCall          ActionKind = "call"
	ActionRaise         ActionKind = "raise"
	ActionFold          ActionKind = "fold"
	ActionAllIn         ActionKind = "all_in"
	ActionChooseVariant ActionKind = "choose_variant"
	ActionChooseWilds   ActionKind = "choose_wilds"
	ActionDeal          ActionKind = "deal"
	ActionDiscard       ActionKind = "discard"
	ActionStandPat      ActionKind = "stand_pat"
	ActionNextHand      ActionKind = "next_hand"
)

// Action is one submitted player action. Amount is the raise increment
// above the current bet; Variant, Wilds and Indices are only read by the
// selection and draw actions.
type Action struct {
	Kind    ActionKind    `json:"kind"`
	Amount  int           `json:"amount,omitempty"`
	Variant Variant       `json:"variant,omitempty"`
	Wilds   eval.Wildness `json:"wilds,omitempty"`
	Indices []int         `json:"indices,omitempty"`
}

// Result describes what an accepted action did.
type Result struct {
	Moved    int            `json:"moved"`             // chips moved into the pot
	Drawn    []deck.Card    `json:"drawn,omitempty"`   // replacement cards dealt to the actor
	Awarded  map[string]int `json:"awarded,omitempty"` // seat ID -> chips won, when the hand ended
	HandOver bool           `json:"handOver"`
	Message  string         `json:"message"`
}

// SeatOutcome is a seat's result for the most recent settled hand.
type SeatOutcome string

// Seat outcomes.
const (
	OutcomeNone  SeatOutcome = ""
	OutcomeWin   SeatOutcome = "win"
	OutcomeSplit SeatOutcome = "split"
	OutcomeLose  SeatOutcome = "lose"
)

// seat is one participant slot. It is owned exclusively by the Table and
// mutated only through Table operations.
type seat struct {
	id         string
	name       string
	stack      int
	cards      []deck.Card
	roundBet   int // committed this betting round
	handBet    int // committed this hand
	folded     bool
	allIn      bool
	acted      bool // has acted this betting round
	eliminated bool
	brain      *ai.Brain // nil for human seats
	outcome    SeatOutcome
	won        int
}

// canAct reports whether the seat can still take betting actions.
func (s *seat) canAct() bool {
	return !s.folded && !s.allIn && !s.eliminated
}

// inHand reports whether the seat still holds live cards.
func (s *seat) inHand() bool {
	return !s.folded && !s.eliminated
}

// SeatConfig describes one seat in the roster.
type SeatConfig struct {
	ID    string
	Name  string
	Human bool
	Tier  ai.Tier // ignored for human seats
}

// Config is the engine's configuration surface. It is consumed once at
// table creation and never mutated by the engine.
type Config struct {
	StartingStack int
	Ante          int
	SmallBlind    int
	BigBlind      int
	MinRaise      int     // minimum bet/raise increment outside hold'em
	Variant       Variant // empty means dealer's choice each hand
	// WildOptions are the wildcard sets the dealer may pick from. With a
	// locked variant the first option (if any) is applied every hand.
	WildOptions       []eval.Wildness
	SeventhStreetDown bool // stud: deal the final card face-down
	Seats             []SeatConfig
	Rand              *rand.Rand         // optional; defaults to the global source
	Logger            logrus.FieldLogger // optional; defaults to the standard logger
}
