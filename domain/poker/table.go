package poker

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/parlorgames/poker/domain/ai"
	"github.com/parlorgames/poker/domain/deck"
	"github.com/parlorgames/poker/domain/eval"
	"github.com/parlorgames/poker/domain/potmanager"
)

// Table is the hand phase engine: the sole owner and mutator of one
// table's state. It is a single-writer state machine with no internal
// locking; callers serialize access to it.
type Table struct {
	cfg       Config
	seats     []*seat
	dealer    int
	phase     Phase
	variant   Variant
	wilds     eval.Wildness
	deck      *deck.Deck
	community []deck.Card
	pot       *potmanager.PotManager
	curBet    int
	minRaise  int
	actor     int         // seat index to act, -1 when none
	street    int         // stud: cards dealt per live seat so far
	discards  []deck.Card // replaced draw cards, recycled if the deck runs low
	drawDone  bool        // five-card draw: the draw phase has completed
	queenSeen bool
	revealed  bool // hands were shown at showdown
	lastMsg   string
	dead      bool // hand aborted, only next_hand is accepted
	rng       *rand.Rand
	log       logrus.FieldLogger
}

// New creates a table from the configuration. The phase starts at
// variant selection for dealer's-choice tables, otherwise at the ante.
func New(cfg Config) (*Table, error) {
	if len(cfg.Seats) < 2 || len(cfg.Seats) > 6 {
		return nil, fmt.Errorf("poker: want 2-6 seats, got %d", len(cfg.Seats))
	}
	if cfg.StartingStack <= 0 {
		return nil, fmt.Errorf("poker: starting stack must be positive")
	}
	if cfg.MinRaise <= 0 {
		cfg.MinRaise = 1
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	t := &Table{
		cfg:   cfg,
		pot:   potmanager.New(),
		actor: -1,
		rng:   rng,
		log:   log,
	}
	ids := make(map[string]bool, len(cfg.Seats))
	for _, sc := range cfg.Seats {
		if sc.ID == "" || ids[sc.ID] {
			return nil, fmt.Errorf("poker: seat IDs must be unique and non-empty")
		}
		ids[sc.ID] = true
		s := &seat{id: sc.ID, name: sc.Name, stack: cfg.StartingStack}
		if !sc.Human {
			s.brain = ai.New(sc.Tier, rand.New(rand.NewSource(rng.Int63())))
		}
		t.seats = append(t.seats, s)
	}
	t.arm()
	return t, nil
}

// arm prepares the machine for the next hand: variant selection for
// dealer's choice, otherwise straight to the ante with the locked
// variant and its default wildcard set.
func (t *Table) arm() {
	t.curBet = 0
	t.minRaise = t.cfg.MinRaise
	t.community = nil
	t.street = 0
	t.discards = nil
	t.drawDone = false
	t.queenSeen = false
	t.revealed = false
	t.dead = false
	t.pot = potmanager.New()
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
	if t.cfg.Variant == "" {
		t.variant = ""
		t.wilds = nil
		t.phase = PhaseVariantSelect
	} else {
		t.variant = t.cfg.Variant
		t.wilds = t.defaultWilds(t.variant)
		t.phase = PhaseAnte
	}
	t.actor = t.dealer
	t.lastMsg = fmt.Sprintf("%s has the deal", t.seats[t.dealer].name)
}

func (t *Table) defaultWilds(v Variant) eval.Wildness {
	if !v.AllowsWilds() || len(t.cfg.WildOptions) == 0 {
		return nil
	}
	return append(eval.Wildness(nil), t.cfg.WildOptions[0]...)
}

// Submit validates and applies an action from a seat. Rejected actions
// return an IllegalActionError and leave the state untouched; hand-level
// failures wrap ErrHandDead.
func (t *Table) Submit(seatID string, a Action) (Result, error) {
	idx := t.seatIndex(seatID)
	if idx < 0 {
		return Result{}, illegalf("unknown seat %q", seatID)
	}
	if err := t.checkAction(idx, a); err != nil {
		return Result{}, err
	}
	res, err := t.applyAction(idx, a)
	if err != nil {
		t.dead = true
		t.log.WithError(err).Error("hand aborted")
		return Result{}, fmt.Errorf("%w: %v", ErrHandDead, err)
	}
	return res, nil
}

// Tick makes the current AI actor take its turn, if it is an AI seat's
// turn. Returns the applied result and whether anything happened. The
// caller owns pacing: the engine never sleeps.
func (t *Table) Tick() (Result, bool, error) {
	if t.dead || t.actor < 0 {
		return Result{}, false, nil
	}
	s := t.seats[t.actor]
	if s.brain == nil {
		return Result{}, false, nil
	}
	a := t.adviseAction(t.actor)
	res, err := t.Submit(s.id, a)
	if err != nil && IsIllegalAction(err) {
		// The engine validates defensively even though brains are clamped
		// to legal decisions; fall back to the safest action.
		res, err = t.Submit(s.id, t.safeAction(t.actor))
	}
	if err != nil {
		return Result{}, true, err
	}
	return res, true, nil
}

// RemoveSeat drops a seat mid-game (disconnect or leave). Chips already
// committed stay in the pot; the seat folds immediately and never acts
// again. If only one live seat remains the hand ends and is awarded.
func (t *Table) RemoveSeat(seatID string) error {
	idx := t.seatIndex(seatID)
	if idx < 0 {
		return illegalf("unknown seat %q", seatID)
	}
	s := t.seats[idx]
	if s.eliminated {
		return nil
	}
	wasActor := t.actor == idx
	if !s.folded {
		s.folded = true
		t.pot.Fold(idx)
	}
	s.eliminated = true
	t.log.WithField("seat", seatID).Info("seat removed")
	t.lastMsg = s.name + " left the table"

	if t.phase == PhaseSettlement {
		// the button moves once, when the next hand is dealt
		return nil
	}
	if t.phase == PhaseVariantSelect || t.phase == PhaseWildSelect || t.phase == PhaseAnte {
		if idx == t.dealer {
			t.dealer = t.nextSeated(t.dealer)
		}
		t.actor = t.dealer
		return nil
	}

	if t.liveSeats() <= 1 {
		t.settleFoldWin()
		return nil
	}
	if wasActor {
		switch t.phase {
		case PhaseBetting:
			if t.bettingDone() {
				return t.advanceAfterBetting()
			}
			t.actor = t.nextToAct(idx)
		case PhaseDraw:
			return t.advanceDrawTurn()
		}
	}
	return nil
}

// seatIndex returns the index for a seat ID, or -1.
func (t *Table) seatIndex(id string) int {
	for i, s := range t.seats {
		if s.id == id {
			return i
		}
	}
	return -1
}

// liveSeats counts seats still holding live cards this hand.
func (t *Table) liveSeats() int {
	n := 0
	for _, s := range t.seats {
		if s.inHand() {
			n++
		}
	}
	return n
}

// activeSeats counts seats that can still take betting actions.
func (t *Table) activeSeats() int {
	n := 0
	for _, s := range t.seats {
		if s.canAct() {
			n++
		}
	}
	return n
}

// seatedCount counts non-eliminated seats.
func (t *Table) seatedCount() int {
	n := 0
	for _, s := range t.seats {
		if !s.eliminated {
			n++
		}
	}
	return n
}

// nextSeated returns the next non-eliminated seat after from.
func (t *Table) nextSeated(from int) int {
	n := len(t.seats)
	for i := 1; i <= n; i++ {
		idx := (from + i) % n
		if !t.seats[idx].eliminated {
			return idx
		}
	}
	return from
}

// nextToAct returns the next seat after from that can act this round,
// or -1 if none.
func (t *Table) nextToAct(from int) int {
	n := len(t.seats)
	for i := 1; i <= n; i++ {
		idx := (from + i) % n
		if t.seats[idx].canAct() {
			return idx
		}
	}
	return -1
}

// Accessors for external consumers. Mutation stays inside the package.

// Phase returns the current phase.
func (t *Table) Phase() Phase { return t.phase }

// ActiveVariant returns the variant in play this hand.
func (t *Table) ActiveVariant() Variant { return t.variant }

// CurrentActor returns the seat ID that must act, or "".
func (t *Table) CurrentActor() string {
	if t.actor < 0 || t.dead {
		return ""
	}
	return t.seats[t.actor].id
}

// CurrentActorIsAI reports whether the acting seat is computer-controlled.
func (t *Table) CurrentActorIsAI() bool {
	return t.actor >= 0 && !t.dead && t.seats[t.actor].brain != nil
}

// GameOver reports whether fewer than two seats remain.
func (t *Table) GameOver() bool { return t.seatedCount() < 2 }
