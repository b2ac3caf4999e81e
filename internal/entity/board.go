package entity

const (
	BoardSize   = 9
	CenterCell  = 4
	boardLength = 3
)

var (
	// WinCombos lists rows, then columns, then diagonals. Heuristics that
	// return the first match rely on this order.
	WinCombos = [][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}

	Corners = [4]int{0, 2, 6, 8}
)

type Board [BoardSize]Cell

// WinLine describes a completed line of three equal collapsed cells.
type WinLine struct {
	Pattern [3]int `json:"pattern"`
	Value   Mark   `json:"value"`
}

// HasWin finds the first line made of three collapsed cells with the same value.
// Quantum cells never count toward a win.
func (that *Board) HasWin() (WinLine, bool) {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a.IsCollapsed() && b.IsCollapsed() && c.IsCollapsed() &&
			a.Value == b.Value && b.Value == c.Value {
			return WinLine{Pattern: combo, Value: a.Value}, true
		}
	}

	return WinLine{}, false
}

// IsFull reports whether no empty cell is left, whatever mix of quantum and
// collapsed pieces fills it.
func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell.IsEmpty() {
			return false
		}
	}

	return true
}

// IsTie is true once the board is full and holds no win. A board full of
// unresolved quantum pieces counts as a tie.
func (that *Board) IsTie() bool {
	if !that.IsFull() {
		return false
	}

	_, won := that.HasWin()

	return !won
}

func (that *Board) EmptyCells() []int {
	return that.cellsOfKind(CellEmpty)
}

func (that *Board) QuantumCells() []int {
	return that.cellsOfKind(CellQuantum)
}

func (that *Board) CountQuantum() int {
	return len(that.cellsOfKind(CellQuantum))
}

func (that *Board) cellsOfKind(kind CellKind) []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell.Kind == kind {
			cells = append(cells, i)
		}
	}

	return cells
}

func IsValidCell(index int) bool {
	return index >= 0 && index < BoardSize
}

func IsCorner(index int) bool {
	for _, corner := range Corners {
		if corner == index {
			return true
		}
	}

	return false
}

// Row and Col map an index onto the 3x3 grid.
func Row(index int) int { return index / boardLength }
func Col(index int) int { return index % boardLength }
