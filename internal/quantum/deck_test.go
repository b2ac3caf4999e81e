package quantum

import (
	"testing"

	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/entity"
	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeckGenerator_Generate(t *testing.T) {
	t.Run("Deals three distinct cards that sum to 100", func(t *testing.T) {
		generator := NewDeckGenerator(pkg.NewSeededSource(3))

		for round := 1; round <= 2000; round++ {
			deck := generator.Generate(round)

			require.Len(t, deck, entity.DeckSize)

			seen := make(map[int]bool)
			for _, card := range deck {
				require.Equal(t, 100, card.XProbability+card.OProbability)
				require.False(t, seen[card.XProbability], "duplicate split %d in round %d", card.XProbability, round)
				seen[card.XProbability] = true
			}
		}
	})

	t.Run("Draws without replacement from the remaining weight", func(t *testing.T) {
		// Given: every draw returns zero, the first entry of what is left
		generator := NewDeckGenerator(&scriptedSource{})

		// When: dealing a deck
		deck := generator.Generate(7)

		// Then: the three first pool entries come out in order with round-based ids
		assert.Equal(t, []entity.ProbabilityCard{
			{ID: "card-7-0", XProbability: 90, OProbability: 10},
			{ID: "card-7-1", XProbability: 80, OProbability: 20},
			{ID: "card-7-2", XProbability: 70, OProbability: 30},
		}, deck)
	})

	t.Run("Draw walks the cumulative weights", func(t *testing.T) {
		// Given: picks 12, 0 and 0 out of 31, 27 and 26
		generator := NewDeckGenerator(&scriptedSource{ints: []int{12, 0, 0}})

		// When: dealing a deck
		deck := generator.Generate(1)

		// Then: 12 falls in the 55/45 slot (cumulative 9..12), then the pool shrinks by its weight
		assert.Equal(t, 55, deck[0].XProbability)
		assert.Equal(t, 90, deck[1].XProbability)
		assert.Equal(t, 80, deck[2].XProbability)
	})

	t.Run("First card frequency follows the weights", func(t *testing.T) {
		// Given: a seeded generator and a large number of deals
		const rounds = 62000
		generator := NewDeckGenerator(pkg.NewSeededSource(11))

		totalWeight := 0
		for _, split := range splitPool {
			totalWeight += split.weight
		}

		counts := make(map[int]int)
		for round := 0; round < rounds; round++ {
			counts[generator.Generate(round)[0].XProbability]++
		}

		// Then: every split shows up in proportion to its weight
		for _, split := range splitPool {
			expected := float64(rounds*split.weight) / float64(totalWeight)
			assert.InDelta(t, expected, float64(counts[split.x]), expected*0.15, "split %d", split.x)
		}
	})
}
