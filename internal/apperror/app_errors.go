package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrNoActiveGames    = errors.New("no active games")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrNoCardSelected   = errors.New("no probability card selected")
	ErrUnknownCard      = errors.New("unknown probability card")
	ErrNotQuantum       = errors.New("cell does not hold a quantum piece")
	ErrActionInFlight   = errors.New("another action is still being resolved")
	ErrUnknownMode      = errors.New("unknown game mode")
	ErrUnknownStrategy  = errors.New("unknown ai strategy")
	ErrNotComputerTurn  = errors.New("it's not the computer's turn")
	ErrNoAvailableMoves = errors.New("no available moves")
)
