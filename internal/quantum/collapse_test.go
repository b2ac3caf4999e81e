package quantum

import (
	"testing"

	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quantumCell(xProb int, player entity.PlayerNum) entity.Cell {
	return entity.QuantumCell(entity.ProbabilityCard{XProbability: xProb, OProbability: 100 - xProb}, player)
}

func TestCollapseWithDraw(t *testing.T) {
	t.Run("Zero draw lands on X whenever X is possible", func(t *testing.T) {
		for _, xProb := range []int{10, 50, 90, 100} {
			cell := CollapseWithDraw(quantumCell(xProb, entity.Player1), 0)

			assert.True(t, cell.CollapsedAs(entity.MarkX), "x probability %d", xProb)
		}
	})

	t.Run("Top draw lands on O unless X is certain", func(t *testing.T) {
		for _, xProb := range []int{0, 10, 50, 90} {
			cell := CollapseWithDraw(quantumCell(xProb, entity.Player1), 99.999)

			assert.True(t, cell.CollapsedAs(entity.MarkO), "x probability %d", xProb)
		}

		cell := CollapseWithDraw(quantumCell(100, entity.Player1), 99.999)
		assert.True(t, cell.CollapsedAs(entity.MarkX))
	})

	t.Run("Draw equal to the X share is O", func(t *testing.T) {
		cell := CollapseWithDraw(quantumCell(60, entity.Player2), 60)

		assert.Equal(t, entity.MarkO, cell.Value)
	})

	t.Run("Player tag carries over", func(t *testing.T) {
		cell := CollapseWithDraw(quantumCell(50, entity.Player2), 10)

		assert.Equal(t, entity.Player2, cell.Player)
	})
}

func TestResolver_Resolve(t *testing.T) {
	t.Run("Scales the draw to a percentage", func(t *testing.T) {
		// Given: a source whose next float is 0.75, so r = 75
		resolver := NewResolver(&scriptedSource{floats: []float64{0.75}})

		// When: resolving a 70/30 and then an 80/20 piece
		first, err := resolver.Resolve(quantumCell(70, entity.Player1))
		require.NoError(t, err)
		second, err := resolver.Resolve(quantumCell(80, entity.Player1))
		require.NoError(t, err)

		// Then: 75 is above 70 but below 80
		assert.Equal(t, entity.MarkO, first.Value)
		assert.Equal(t, entity.MarkX, second.Value)
	})

	t.Run("Rejects cells that are not quantum", func(t *testing.T) {
		resolver := NewResolver(&scriptedSource{})

		_, err := resolver.Resolve(entity.EmptyCell())
		require.ErrorIs(t, err, apperror.ErrNotQuantum)

		_, err = resolver.Resolve(entity.CollapsedCell(entity.MarkX, entity.Player1))
		assert.ErrorIs(t, err, apperror.ErrNotQuantum)
	})
}
