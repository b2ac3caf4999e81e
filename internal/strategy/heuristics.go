package strategy

import (
	"math"

	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/entity"
)

const (
	friendlyLineBonus  = 2.0
	blockedLinePenalty = 1.0
	centerBonus        = 1.0
	cornerBonus        = 0.5
)

// lineScan counts what a single win pattern holds from one side's point of view.
type lineScan struct {
	mine   int
	theirs int
	empty  []int
	owned  []int
}

func scanLine(board *entity.Board, combo [3]int, value entity.Mark, player entity.PlayerNum) lineScan {
	var scan lineScan

	for _, idx := range combo {
		cell := board[idx]
		switch {
		case cell.CollapsedAs(value):
			scan.mine++
		case cell.IsCollapsed():
			scan.theirs++
		case cell.IsEmpty():
			scan.empty = append(scan.empty, idx)
		case cell.QuantumOf(player):
			scan.owned = append(scan.owned, idx)
		}
	}

	return scan
}

func combosThrough(idx int) [][3]int {
	combos := make([][3]int, 0, 4)
	for _, combo := range entity.WinCombos {
		if combo[0] == idx || combo[1] == idx || combo[2] == idx {
			combos = append(combos, combo)
		}
	}

	return combos
}

// FindWinningPlaceMove returns the empty cell that completes two collapsed
// cells of value, or -1.
func FindWinningPlaceMove(board *entity.Board, value entity.Mark) int {
	for _, combo := range entity.WinCombos {
		scan := scanLine(board, combo, value, 0)
		if scan.mine == 2 && len(scan.empty) == 1 {
			return scan.empty[0]
		}
	}

	return -1
}

// FindWinningCollapseMove returns a quantum cell owned by player that sits next
// to two collapsed cells of value. Collapsing it may still land on the other mark.
func FindWinningCollapseMove(board *entity.Board, value entity.Mark, player entity.PlayerNum) int {
	for _, combo := range entity.WinCombos {
		scan := scanLine(board, combo, value, player)
		if scan.mine == 2 && len(scan.owned) == 1 {
			return scan.owned[0]
		}
	}

	return -1
}

// FindBlockingMove returns the empty cell the opponent needs to finish a line, or -1.
func FindBlockingMove(board *entity.Board, opponent entity.Mark) int {
	return FindWinningPlaceMove(board, opponent)
}

// FindBlockingCollapseMove returns a quantum cell owned by player that fills
// the gap in an opponent's two-in-a-row, or -1.
func FindBlockingCollapseMove(board *entity.Board, opponent entity.Mark, player entity.PlayerNum) int {
	return FindWinningCollapseMove(board, opponent, player)
}

// FindSetupMove scores every empty cell by the friendly pieces sharing open
// lines with it and returns the best one. Only positive scores count.
func FindSetupMove(board *entity.Board, value entity.Mark, player entity.PlayerNum) int {
	best, bestScore := -1, 0

	for _, idx := range board.EmptyCells() {
		score := 0
		for _, combo := range combosThrough(idx) {
			scan := scanLine(board, combo, value, player)
			if scan.theirs > 0 {
				continue
			}
			score += scan.mine + len(scan.owned)
		}

		if score > bestScore {
			best, bestScore = idx, score
		}
	}

	return best
}

// FindBestCollapseMove ranks every quantum cell by the lines it could help and
// returns the highest, first seen on ties, or -1 when nothing is quantum.
func FindBestCollapseMove(board *entity.Board, value entity.Mark) int {
	best, bestScore := -1, math.Inf(-1)

	for _, idx := range board.QuantumCells() {
		score := positionBonus(idx)
		for _, combo := range combosThrough(idx) {
			scan := scanLine(board, combo, value, 0)
			if scan.theirs > 0 {
				score -= blockedLinePenalty
				continue
			}
			score += friendlyLineBonus * float64(scan.mine)
		}

		if score > bestScore {
			best, bestScore = idx, score
		}
	}

	return best
}

func positionBonus(idx int) float64 {
	switch {
	case idx == entity.CenterCell:
		return centerBonus
	case entity.IsCorner(idx):
		return cornerBonus
	default:
		return 0
	}
}

// firstEmpty walks a preference order and returns the first empty cell, or -1.
func firstEmpty(board *entity.Board, order []int) int {
	for _, idx := range order {
		if board[idx].IsEmpty() {
			return idx
		}
	}

	return -1
}
