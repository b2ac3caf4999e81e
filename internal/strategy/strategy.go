package strategy

import (
	"fmt"

	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/entity"
	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/pkg"
)

// Preference orders used when no tactical move applies. They are tuning data.
var (
	AggressivePreference   = []int{4, 0, 2, 6, 8, 1, 3, 5, 7}
	CenterCornerPreference = []int{4, 0, 2, 6, 8}
)

// Turn is the view a policy decides from.
type Turn struct {
	Board   entity.Board
	Player  entity.PlayerNum
	HasCard bool
}

func (that *Turn) value() entity.Mark {
	return that.Player.Mark()
}

func (that *Turn) opponent() entity.Mark {
	return that.Player.Mark().Opponent()
}

type Strategy interface {
	Name() entity.Strategy
	ChooseAction(turn Turn, rng pkg.Source) entity.Action
}

// New returns the policy registered under name.
func New(name entity.Strategy) (Strategy, error) {
	switch name {
	case entity.StrategyAggressive:
		return aggressive{}, nil
	case entity.StrategyDefensive:
		return defensive{}, nil
	case entity.StrategyBalanced:
		return balanced{}, nil
	case entity.StrategyRandom:
		return random{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownStrategy, name)
	}
}
