package strategy

import (
	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/entity"
	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/pkg"
)

const (
	aggressiveCollapseThreshold = 3
	defensiveCollapseThreshold  = 3
	balancedCollapseThreshold   = 2

	balancedBlockChance    = 0.8
	balancedCollapseChance = 0.4
	randomPlaceChance      = 0.5
)

// finishing holds the opening checks shared by the scripted policies: win by
// collapse first, then by placement.
func finishing(turn *Turn) (entity.Action, bool) {
	board := &turn.Board

	if idx := FindWinningCollapseMove(board, turn.value(), turn.Player); idx >= 0 {
		return entity.CollapseAt(idx), true
	}

	if idx := FindWinningPlaceMove(board, turn.value()); idx >= 0 {
		return entity.PlaceAt(idx), true
	}

	return entity.Action{}, false
}

type aggressive struct{}

func (aggressive) Name() entity.Strategy { return entity.StrategyAggressive }

func (aggressive) ChooseAction(turn Turn, _ pkg.Source) entity.Action {
	board := &turn.Board

	if action, ok := finishing(&turn); ok {
		return action
	}

	if idx := FindBlockingCollapseMove(board, turn.opponent(), turn.Player); idx >= 0 {
		return entity.CollapseAt(idx)
	}

	if idx := FindBlockingMove(board, turn.opponent()); idx >= 0 {
		return entity.PlaceAt(idx)
	}

	if idx := FindSetupMove(board, turn.value(), turn.Player); idx >= 0 {
		return entity.PlaceAt(idx)
	}

	if board.CountQuantum() > aggressiveCollapseThreshold {
		if idx := FindBestCollapseMove(board, turn.value()); idx >= 0 {
			return entity.CollapseAt(idx)
		}
	}

	if idx := firstEmpty(board, AggressivePreference); idx >= 0 {
		return entity.PlaceAt(idx)
	}

	if quantum := board.QuantumCells(); len(quantum) > 0 {
		return entity.CollapseAt(quantum[0])
	}

	return placeFirstEmpty(board)
}

type defensive struct{}

func (defensive) Name() entity.Strategy { return entity.StrategyDefensive }

func (defensive) ChooseAction(turn Turn, _ pkg.Source) entity.Action {
	board := &turn.Board

	if action, ok := finishing(&turn); ok {
		return action
	}

	if idx := FindBlockingCollapseMove(board, turn.opponent(), turn.Player); idx >= 0 {
		return entity.CollapseAt(idx)
	}

	if idx := FindBlockingMove(board, turn.opponent()); idx >= 0 {
		return entity.PlaceAt(idx)
	}

	if board.CountQuantum() > defensiveCollapseThreshold {
		if idx := FindBestCollapseMove(board, turn.value()); idx >= 0 {
			return entity.CollapseAt(idx)
		}
	}

	if idx := firstEmpty(board, CenterCornerPreference); idx >= 0 {
		return entity.PlaceAt(idx)
	}

	if empty := board.EmptyCells(); len(empty) > 0 {
		return entity.PlaceAt(empty[0])
	}

	if quantum := board.QuantumCells(); len(quantum) > 0 {
		return entity.CollapseAt(quantum[0])
	}

	return entity.PlaceAt(entity.CenterCell)
}

type balanced struct{}

func (balanced) Name() entity.Strategy { return entity.StrategyBalanced }

func (balanced) ChooseAction(turn Turn, rng pkg.Source) entity.Action {
	board := &turn.Board

	if action, ok := finishing(&turn); ok {
		return action
	}

	if idx := FindBlockingCollapseMove(board, turn.opponent(), turn.Player); idx >= 0 && rng.Float64() < balancedBlockChance {
		return entity.CollapseAt(idx)
	}

	if idx := FindBlockingMove(board, turn.opponent()); idx >= 0 && rng.Float64() < balancedBlockChance {
		return entity.PlaceAt(idx)
	}

	if board.CountQuantum() > balancedCollapseThreshold && rng.Float64() < balancedCollapseChance {
		if idx := FindBestCollapseMove(board, turn.value()); idx >= 0 {
			return entity.CollapseAt(idx)
		}
	}

	if idx := FindSetupMove(board, turn.value(), turn.Player); idx >= 0 {
		return entity.PlaceAt(idx)
	}

	if idx := firstEmpty(board, CenterCornerPreference); idx >= 0 {
		return entity.PlaceAt(idx)
	}

	if empty := board.EmptyCells(); len(empty) > 0 {
		return entity.PlaceAt(empty[0])
	}

	if idx := FindBestCollapseMove(board, turn.value()); idx >= 0 {
		return entity.CollapseAt(idx)
	}

	return entity.PlaceAt(entity.CenterCell)
}

type random struct{}

func (random) Name() entity.Strategy { return entity.StrategyRandom }

func (random) ChooseAction(turn Turn, rng pkg.Source) entity.Action {
	empty := turn.Board.EmptyCells()
	quantum := turn.Board.QuantumCells()

	canPlace := turn.HasCard && len(empty) > 0
	canCollapse := len(quantum) > 0

	switch {
	case canPlace && canCollapse:
		if rng.Float64() < randomPlaceChance {
			return entity.PlaceAt(empty[rng.Intn(len(empty))])
		}
		return entity.CollapseAt(quantum[rng.Intn(len(quantum))])
	case canPlace:
		return entity.PlaceAt(empty[rng.Intn(len(empty))])
	case canCollapse:
		return entity.CollapseAt(quantum[rng.Intn(len(quantum))])
	default:
		return entity.PlaceAt(entity.CenterCell)
	}
}

func placeFirstEmpty(board *entity.Board) entity.Action {
	if empty := board.EmptyCells(); len(empty) > 0 {
		return entity.PlaceAt(empty[0])
	}

	return entity.PlaceAt(entity.CenterCell)
}
