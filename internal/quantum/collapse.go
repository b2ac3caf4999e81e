package quantum

import (
	"fmt"

	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/entity"
	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/pkg"
)

const drawScale = 100

// Resolver owns the coin flip that turns a quantum piece into X or O. Nothing
// else in the engine decides a mark.
type Resolver struct {
	rng pkg.Source
}

func NewResolver(rng pkg.Source) *Resolver {
	return &Resolver{rng: rng}
}

// Resolve draws r in [0, 100) and collapses the cell to X when r < XProbability.
func (that *Resolver) Resolve(cell entity.Cell) (entity.Cell, error) {
	if !cell.IsQuantum() {
		return cell, fmt.Errorf("%w: kind %q", apperror.ErrNotQuantum, cell.Kind)
	}

	return CollapseWithDraw(cell, that.rng.Float64()*drawScale), nil
}

// CollapseWithDraw collapses a quantum cell for a given draw. The player tag is kept.
func CollapseWithDraw(cell entity.Cell, draw float64) entity.Cell {
	if draw < float64(cell.XProbability) {
		return entity.CollapsedCell(entity.MarkX, cell.Player)
	}

	return entity.CollapsedCell(entity.MarkO, cell.Player)
}
