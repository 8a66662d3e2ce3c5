package ai

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parlorgames/poker/domain/deck"
)

func randomView(rng *rand.Rand) View {
	d := deck.New(deck.WithRand(rng))
	d.Shuffle()
	hand, _ := d.DrawN(5)

	toCall := 0
	if rng.Intn(2) == 1 {
		toCall = 1 + rng.Intn(30)
	}
	stack := 1 + rng.Intn(200)
	return View{
		Hand:       hand,
		Pot:        5 + rng.Intn(200),
		ToCall:     toCall,
		MinRaise:   2,
		Stack:      stack,
		FieldSize:  2 + rng.Intn(5),
		ToActAfter: rng.Intn(4),
		CanRaise:   stack > toCall,
	}
}

// Whatever a brain wants, the decision handed back must be one the
// betting rules will accept.
func TestDecisionsAreAlwaysLegal(t *testing.T) {
	for _, tier := range []Tier{Easy, Medium, Hard} {
		t.Run(tier.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(int64(tier) + 1))
			b := New(tier, rand.New(rand.NewSource(99)))
			for i := 0; i < 500; i++ {
				v := randomView(rng)
				d := b.Act(v)
				switch d.Kind {
				case Check:
					assert.Zero(t, v.ToCall, "checked owing %d", v.ToCall)
				case Call:
					assert.Positive(t, v.ToCall)
					assert.Greater(t, v.Stack, v.ToCall, "call should have been all-in")
				case Raise:
					assert.True(t, v.CanRaise)
					assert.GreaterOrEqual(t, d.Amount, v.MinRaise)
					assert.Greater(t, v.Stack, v.ToCall+d.Amount, "raise should have been all-in")
				case Fold, AllIn:
				default:
					t.Fatalf("unknown decision kind %v", d.Kind)
				}
			}
		})
	}
}

func TestClamp(t *testing.T) {
	short := View{ToCall: 10, Stack: 12, MinRaise: 5, CanRaise: true}
	assert.Equal(t, AllIn, clamp(short, Decision{Kind: Raise, Amount: 5}).Kind)

	covered := View{ToCall: 10, Stack: 100, MinRaise: 5, CanRaise: true}
	d := clamp(covered, Decision{Kind: Raise, Amount: 2})
	assert.Equal(t, Raise, d.Kind)
	assert.Equal(t, 5, d.Amount, "raise floored at the minimum increment")

	assert.Equal(t, AllIn, clamp(View{ToCall: 50, Stack: 40}, Decision{Kind: Call}).Kind)
	assert.Equal(t, Check, clamp(View{ToCall: 0, Stack: 40}, Decision{Kind: Call}).Kind)
	assert.Equal(t, Fold, clamp(View{ToCall: 5, Stack: 40}, Decision{Kind: Check}).Kind)

	noRaise := View{ToCall: 0, Stack: 40, CanRaise: false}
	assert.Equal(t, Check, clamp(noRaise, Decision{Kind: Raise, Amount: 5}).Kind)
}

// Easy brains never raise into a bet: facing chips they call or fold.
func TestEasyIsPassiveFacingBets(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	b := New(Easy, rand.New(rand.NewSource(4)))
	folds := 0
	for i := 0; i < 200; i++ {
		v := randomView(rng)
		v.ToCall = 10
		v.Stack = 100
		v.CanRaise = true
		d := b.Act(v)
		require.Contains(t, []Kind{Call, Fold}, d.Kind)
		if d.Kind == Fold {
			folds++
		}
	}
	assert.Positive(t, folds, "easy should fold weak hands sometimes")
}

func TestHardRaisesMonsters(t *testing.T) {
	b := New(Hard, rand.New(rand.NewSource(5)))
	quads := make([]deck.Card, 0, 5)
	for _, code := range []struct{ s, r uint8 }{{0, 9}, {1, 9}, {2, 9}, {3, 9}, {2, 13}} {
		c, err := deck.NewCard(code.s, code.r)
		require.NoError(t, err)
		quads = append(quads, c)
	}
	v := View{Hand: quads, Pot: 40, ToCall: 0, MinRaise: 2, Stack: 500, FieldSize: 3, CanRaise: true}
	for i := 0; i < 20; i++ {
		assert.Equal(t, Raise, b.Act(v).Kind)
	}
}

func TestChoosersStayInRange(t *testing.T) {
	b := New(Medium, rand.New(rand.NewSource(6)))
	for i := 0; i < 50; i++ {
		v := b.ChooseVariant(3)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 3)

		w := b.ChooseWilds(4)
		assert.GreaterOrEqual(t, w, 0)
		assert.Less(t, w, 4)
	}
	assert.Zero(t, b.ChooseVariant(0))
	assert.Zero(t, b.ChooseWilds(0))
}
