package entity

// Mark is the definite value a collapsed piece takes.
type Mark string

const (
	MarkX    Mark = "X"
	MarkO    Mark = "O"
	MarkNone Mark = ""
)

// Opponent returns the other mark.
func (m Mark) Opponent() Mark {
	if m == MarkX {
		return MarkO
	}
	return MarkX
}

// PlayerNum identifies the seat that placed a piece or is due to move.
type PlayerNum int

const (
	Player1 PlayerNum = 1
	Player2 PlayerNum = 2
)

// Mark returns the side a player plays: player 1 is X, player 2 is O.
func (p PlayerNum) Mark() Mark {
	if p == Player2 {
		return MarkO
	}
	return MarkX
}

// Other returns the seat that moves after p.
func (p PlayerNum) Other() PlayerNum {
	if p == Player1 {
		return Player2
	}
	return Player1
}

type CellKind string

const (
	CellEmpty     CellKind = ""
	CellQuantum   CellKind = "quantum"
	CellCollapsed CellKind = "collapsed"
)

// Cell is one board position. Kind selects which payload fields are meaningful:
// quantum cells carry the probability split, collapsed cells carry Value.
// The zero value is an empty cell.
type Cell struct {
	Kind         CellKind  `json:"type,omitempty"`
	XProbability int       `json:"x_probability,omitempty"`
	OProbability int       `json:"o_probability,omitempty"`
	Value        Mark      `json:"value,omitempty"`
	Player       PlayerNum `json:"player,omitempty"`
}

func EmptyCell() Cell {
	return Cell{}
}

func QuantumCell(card ProbabilityCard, player PlayerNum) Cell {
	return Cell{
		Kind:         CellQuantum,
		XProbability: card.XProbability,
		OProbability: card.OProbability,
		Player:       player,
	}
}

func CollapsedCell(value Mark, player PlayerNum) Cell {
	return Cell{
		Kind:   CellCollapsed,
		Value:  value,
		Player: player,
	}
}

func (that Cell) IsEmpty() bool {
	return that.Kind == CellEmpty
}

func (that Cell) IsQuantum() bool {
	return that.Kind == CellQuantum
}

func (that Cell) IsCollapsed() bool {
	return that.Kind == CellCollapsed
}

// CollapsedAs reports whether the cell collapsed to the given mark.
func (that Cell) CollapsedAs(mark Mark) bool {
	return that.Kind == CellCollapsed && that.Value == mark
}

// QuantumOf reports whether the cell is an unresolved piece placed by player.
func (that Cell) QuantumOf(player PlayerNum) bool {
	return that.Kind == CellQuantum && that.Player == player
}
