package strategy

import (
	"testing"

	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestFindWinningPlaceMove(t *testing.T) {
	t.Run("Completes a diagonal", func(t *testing.T) {
		var board entity.Board
		board[0], board[4] = co(), co()

		assert.Equal(t, 8, FindWinningPlaceMove(&board, entity.MarkO))
	})

	t.Run("Needs the third cell to be empty", func(t *testing.T) {
		var board entity.Board
		board[0], board[4], board[8] = co(), co(), qp(entity.Player2)

		assert.Equal(t, -1, FindWinningPlaceMove(&board, entity.MarkO))
	})
}

func TestFindWinningCollapseMove(t *testing.T) {
	t.Run("Own quantum piece next to two collapsed", func(t *testing.T) {
		var board entity.Board
		board[3], board[4], board[5] = co(), co(), qp(entity.Player2)

		assert.Equal(t, 5, FindWinningCollapseMove(&board, entity.MarkO, entity.Player2))
	})

	t.Run("Ignores the opponent's quantum piece", func(t *testing.T) {
		var board entity.Board
		board[3], board[4], board[5] = co(), co(), qp(entity.Player1)

		assert.Equal(t, -1, FindWinningCollapseMove(&board, entity.MarkO, entity.Player2))
	})
}

func TestFindBlockingMoves(t *testing.T) {
	t.Run("Placement block", func(t *testing.T) {
		board := entity.Board{cx(), cx()}

		assert.Equal(t, 2, FindBlockingMove(&board, entity.MarkX))
	})

	t.Run("Collapse block", func(t *testing.T) {
		var board entity.Board
		board[2], board[5], board[8] = cx(), cx(), qp(entity.Player2)

		assert.Equal(t, 8, FindBlockingCollapseMove(&board, entity.MarkX, entity.Player2))
	})

	t.Run("Nothing to block", func(t *testing.T) {
		var board entity.Board
		board[0], board[1], board[2] = cx(), co(), cx()

		assert.Equal(t, -1, FindBlockingMove(&board, entity.MarkX))
		assert.Equal(t, -1, FindBlockingCollapseMove(&board, entity.MarkX, entity.Player2))
	})
}

func TestFindSetupMove(t *testing.T) {
	t.Run("Picks the cell sharing the most open lines with own pieces", func(t *testing.T) {
		// Given: O on 0, an own quantum piece on 8 and X on 2
		var board entity.Board
		board[0], board[2], board[8] = co(), cx(), qp(entity.Player2)

		// When: looking for a setup move
		idx := FindSetupMove(&board, entity.MarkO, entity.Player2)

		// Then: the center links both pieces and is seen before 6
		assert.Equal(t, 4, idx)
	})

	t.Run("No own pieces means no setup", func(t *testing.T) {
		var board entity.Board
		board[4] = cx()

		assert.Equal(t, -1, FindSetupMove(&board, entity.MarkO, entity.Player2))
	})

	t.Run("Lines blocked by the opponent do not count", func(t *testing.T) {
		// Given: O on 0 whose every line holds an X
		var board entity.Board
		board[0], board[1], board[3], board[4] = co(), cx(), cx(), cx()

		assert.Equal(t, -1, FindSetupMove(&board, entity.MarkO, entity.Player2))
	})
}

func TestFindBestCollapseMove(t *testing.T) {
	t.Run("Scores lines and position", func(t *testing.T) {
		// Given: quantum pieces on 0 and 4, O on 8 and X on 2
		var board entity.Board
		board[0], board[4] = qp(entity.Player2), qp(entity.Player1)
		board[2], board[8] = cx(), co()

		// When: ranking collapses
		idx := FindBestCollapseMove(&board, entity.MarkO)

		// Then: the center scores 1 + 2 - 1 and beats the corner at 0.5 + 2 - 1
		assert.Equal(t, 4, idx)
	})

	t.Run("First seen wins ties", func(t *testing.T) {
		var board entity.Board
		board[1], board[3] = qp(entity.Player1), qp(entity.Player2)

		assert.Equal(t, 1, FindBestCollapseMove(&board, entity.MarkO))
	})

	t.Run("No quantum pieces", func(t *testing.T) {
		var board entity.Board

		assert.Equal(t, -1, FindBestCollapseMove(&board, entity.MarkO))
	})
}
