package websocket

import (
	"errors"

	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/apperror"
)

var (
	errInternal     = errors.New("internal error")
	errNotConnected = errors.New("send connect first")
	errMissingGame  = errors.New("game settings are required")
	errMissingCell  = errors.New("cell is required")
	errBadPayload   = errors.New("malformed payload")
)

// visibleErrors lists the errors a client is allowed to see verbatim.
var visibleErrors = []error{
	apperror.ErrGameFinished,
	apperror.ErrNotYourTurn,
	apperror.ErrNoActiveGames,
	apperror.ErrCellOccupied,
	apperror.ErrInvalidCell,
	apperror.ErrNoCardSelected,
	apperror.ErrUnknownCard,
	apperror.ErrNotQuantum,
	apperror.ErrActionInFlight,
	apperror.ErrUnknownMode,
	apperror.ErrUnknownStrategy,
	apperror.ErrNotComputerTurn,
	ErrUnknownAction,
	errNotConnected,
	errMissingGame,
	errMissingCell,
	errBadPayload,
}

// clientError maps err to the message sent back. Storage and other
// infrastructure failures collapse into errInternal.
func clientError(err error) error {
	for _, known := range visibleErrors {
		if errors.Is(err, known) {
			return known
		}
	}

	return errInternal
}
