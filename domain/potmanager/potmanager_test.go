package potmanager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinglePot(t *testing.T) {
	pm := New()
	for seat := 0; seat < 3; seat++ {
		pm.Contribute(seat, 20)
	}
	pots, err := pm.Pots()
	require.NoError(t, err)
	require.Len(t, pots, 1)
	assert.Equal(t, 60, pots[0].Amount)
	assert.Equal(t, []int{0, 1, 2}, pots[0].Eligible)
}

func TestSidePotFromAllIn(t *testing.T) {
	pm := New()
	pm.Contribute(0, 50)
	pm.AllIn(0)
	pm.Contribute(1, 200)
	pm.Contribute(2, 200)

	pots, err := pm.Pots()
	require.NoError(t, err)
	require.Len(t, pots, 2)

	assert.Equal(t, 150, pots[0].Amount)
	assert.Equal(t, []int{0, 1, 2}, pots[0].Eligible)
	assert.Equal(t, 300, pots[1].Amount)
	assert.Equal(t, []int{1, 2}, pots[1].Eligible)

	sum := pots[0].Amount + pots[1].Amount
	assert.Equal(t, pm.Total(), sum)
}

func TestStackedAllIns(t *testing.T) {
	pm := New()
	pm.Contribute(0, 30)
	pm.AllIn(0)
	pm.Contribute(1, 80)
	pm.AllIn(1)
	pm.Contribute(2, 120)
	pm.Contribute(3, 120)

	pots, err := pm.Pots()
	require.NoError(t, err)
	require.Len(t, pots, 3)
	assert.Equal(t, 120, pots[0].Amount) // 30 from each
	assert.Equal(t, []int{0, 1, 2, 3}, pots[0].Eligible)
	assert.Equal(t, 150, pots[1].Amount) // 50 from seats 1-3
	assert.Equal(t, []int{1, 2, 3}, pots[1].Eligible)
	assert.Equal(t, 80, pots[2].Amount) // 40 from seats 2-3
	assert.Equal(t, []int{2, 3}, pots[2].Eligible)
}

func TestFoldedChipsStayButSeatIsIneligible(t *testing.T) {
	pm := New()
	pm.Contribute(0, 40)
	pm.Contribute(1, 40)
	pm.Contribute(2, 25)
	pm.Fold(2)

	pots, err := pm.Pots()
	require.NoError(t, err)
	require.Len(t, pots, 1)
	assert.Equal(t, 105, pots[0].Amount)
	assert.Equal(t, []int{0, 1}, pots[0].Eligible)
}

// A live seat whose forced bet left it below the all-in level must stay
// eligible for the tier it fully funded; only the excess forms a side
// pot for the deeper seat.
func TestLiveSeatBelowAllInLevelKeepsItsTier(t *testing.T) {
	pm := New()
	pm.Contribute(0, 40)
	pm.Contribute(1, 60)
	pm.AllIn(1)

	pots, err := pm.Pots()
	require.NoError(t, err)
	require.Len(t, pots, 2)
	assert.Equal(t, 80, pots[0].Amount)
	assert.Equal(t, []int{0, 1}, pots[0].Eligible)
	assert.Equal(t, 20, pots[1].Amount)
	assert.Equal(t, []int{1}, pots[1].Eligible)
}

// When everyone above an all-in level folds, the overage rolls down into
// the pot below instead of going unawarded.
func TestOrphanedTierMergesDown(t *testing.T) {
	pm := New()
	pm.Contribute(0, 100)
	pm.AllIn(0)
	pm.Contribute(1, 300)
	pm.Fold(1)

	pots, err := pm.Pots()
	require.NoError(t, err)
	require.Len(t, pots, 1)
	assert.Equal(t, 400, pots[0].Amount)
	assert.Equal(t, []int{0}, pots[0].Eligible)
}

func TestPayoutSplitsWithOddChip(t *testing.T) {
	pm := New()
	pm.Contribute(0, 7)
	pm.Contribute(1, 7)
	pm.Contribute(2, 7)
	pots, err := pm.Pots()
	require.NoError(t, err)

	won := pm.Payout(pots, func(eligible []int) []int {
		return []int{1, 2} // seat 1 listed first gets the remainder
	})
	assert.Equal(t, 11, won[1])
	assert.Equal(t, 10, won[2])
	assert.Zero(t, won[0])
}

func TestPayoutPerPotEligibility(t *testing.T) {
	pm := New()
	pm.Contribute(0, 50)
	pm.AllIn(0)
	pm.Contribute(1, 200)
	pm.Contribute(2, 200)
	pots, err := pm.Pots()
	require.NoError(t, err)

	// Seat 0 holds the best hand but is only in the main pot.
	won := pm.Payout(pots, func(eligible []int) []int {
		for _, s := range eligible {
			if s == 0 {
				return []int{0}
			}
		}
		return []int{1}
	})
	assert.Equal(t, 150, won[0])
	assert.Equal(t, 300, won[1])

	total := 0
	for _, amt := range won {
		total += amt
	}
	assert.Equal(t, pm.Total(), total)
}

func TestContributedAndTotal(t *testing.T) {
	pm := New()
	pm.Contribute(4, 10)
	pm.Contribute(4, 15)
	pm.Contribute(1, 5)
	assert.Equal(t, 25, pm.Contributed(4))
	assert.Equal(t, 5, pm.Contributed(1))
	assert.Equal(t, 0, pm.Contributed(9))
	assert.Equal(t, 30, pm.Total())
}
