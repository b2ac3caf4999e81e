package quantum

import (
	"fmt"

	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/entity"
	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/pkg"
	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/strategy"
)

type actor int

const (
	human actor = iota
	computer
)

// Engine applies the rules to a game passed in by the caller. It keeps no game
// state of its own, only the random source and the strategy table.
type Engine struct {
	rng        pkg.Source
	deck       *DeckGenerator
	resolver   *Resolver
	strategies map[entity.Strategy]strategy.Strategy
}

func NewEngine(rng pkg.Source) *Engine {
	strategies := make(map[entity.Strategy]strategy.Strategy)
	for _, name := range []entity.Strategy{
		entity.StrategyAggressive,
		entity.StrategyDefensive,
		entity.StrategyBalanced,
		entity.StrategyRandom,
	} {
		policy, err := strategy.New(name)
		if err != nil {
			panic(fmt.Errorf("strategy %q is not registered: %w", name, err))
		}
		strategies[name] = policy
	}

	return &Engine{
		rng:        rng,
		deck:       NewDeckGenerator(rng),
		resolver:   NewResolver(rng),
		strategies: strategies,
	}
}

// NewGame creates an empty board with player 1 to move and a fresh deck.
// The strategy is only kept for games against the computer.
func (that *Engine) NewGame(id string, mode entity.Mode, aiStrategy entity.Strategy) (*entity.Game, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownMode, mode)
	}

	if mode == entity.ModePvP {
		aiStrategy = entity.StrategyNone
	} else if !aiStrategy.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownStrategy, aiStrategy)
	}

	game := &entity.Game{
		ID:            id,
		CurrentPlayer: entity.Player1,
		Mode:          mode,
		Strategy:      aiStrategy,
	}
	that.dealDeck(game)

	return game, nil
}

// Reset wipes the game in place, keeping its id, mode and strategy.
// The deck round keeps counting so stale card ids never match the new deck.
func (that *Engine) Reset(game *entity.Game) *entity.Game {
	*game = entity.Game{
		ID:            game.ID,
		CurrentPlayer: entity.Player1,
		Mode:          game.Mode,
		Strategy:      game.Strategy,
		DeckRound:     game.DeckRound,
	}
	that.dealDeck(game)

	return game
}

// SelectCard picks a card of the current deck for the next placement.
func (that *Engine) SelectCard(game *entity.Game, cardID string) (entity.Outcome, error) {
	if err := that.checkTurn(game, human); err != nil {
		return rejected(game, -1), fmt.Errorf("failed to select card: %w", err)
	}

	card, err := game.FindCard(cardID)
	if err != nil {
		return rejected(game, -1), fmt.Errorf("failed to select card: %w", err)
	}

	game.SelectedCard = &card

	return entity.Outcome{Game: game, Events: []entity.Event{entity.EventCardSelected}, Index: -1}, nil
}

// RefreshDeck deals three new cards and drops the selection without spending the turn.
func (that *Engine) RefreshDeck(game *entity.Game) (entity.Outcome, error) {
	if err := that.checkTurn(game, human); err != nil {
		return rejected(game, -1), fmt.Errorf("failed to refresh deck: %w", err)
	}

	game.SelectedCard = nil
	that.dealDeck(game)

	return entity.Outcome{Game: game, Events: []entity.Event{entity.EventDeckRefreshed}, Index: -1}, nil
}

// Place puts a quantum piece for the human seat on the move.
func (that *Engine) Place(game *entity.Game, cell int) (entity.Outcome, error) {
	return that.place(game, cell, human)
}

// Collapse resolves a quantum piece for the human seat on the move.
func (that *Engine) Collapse(game *entity.Game, cell int) (entity.Outcome, error) {
	return that.collapse(game, cell, human)
}

// AITurn lets the game's strategy pick and play the computer's move through
// the same rules a human move goes through.
func (that *Engine) AITurn(game *entity.Game) (entity.AIMove, error) {
	if !game.IsComputerTurn() {
		err := apperror.ErrNotComputerTurn
		if game.IsFinished() {
			err = apperror.ErrGameFinished
		}
		return entity.AIMove{Outcome: rejected(game, -1)}, fmt.Errorf("failed to run ai turn: %w", err)
	}

	policy, ok := that.strategies[game.Strategy]
	if !ok {
		return entity.AIMove{Outcome: rejected(game, -1)},
			fmt.Errorf("failed to run ai turn: %w: %q", apperror.ErrUnknownStrategy, game.Strategy)
	}

	previous := game.SelectedCard
	if game.SelectedCard == nil && len(game.Deck) > 0 {
		card := game.Deck[that.rng.Intn(len(game.Deck))]
		game.SelectedCard = &card
	}

	action := policy.ChooseAction(strategy.Turn{
		Board:   game.Board,
		Player:  game.CurrentPlayer,
		HasCard: game.SelectedCard != nil,
	}, that.rng)

	var (
		outcome entity.Outcome
		err     error
	)

	switch action.Type {
	case entity.ActionCollapse:
		outcome, err = that.collapse(game, action.Index, computer)
	default:
		outcome, err = that.place(game, action.Index, computer)
	}

	if err != nil {
		game.SelectedCard = previous
		return entity.AIMove{Outcome: outcome, Action: action}, fmt.Errorf("ai %s move rejected: %w", game.Strategy, err)
	}

	// A collapse does not spend the card picked for the turn.
	if action.Type == entity.ActionCollapse {
		game.SelectedCard = previous
	}

	return entity.AIMove{Outcome: outcome, Action: action}, nil
}

func (that *Engine) place(game *entity.Game, cell int, who actor) (entity.Outcome, error) {
	if err := that.validatePlacement(game, cell, who); err != nil {
		return rejected(game, cell), fmt.Errorf("invalid placement: %w", err)
	}

	game.Board[cell] = entity.QuantumCell(*game.SelectedCard, game.CurrentPlayer)
	game.SelectedCard = nil
	game.QuantumCount++
	that.dealDeck(game)

	if game.Board.IsFull() && game.Board.IsTie() {
		game.GameOver = true
		game.Tie = true
	} else {
		game.SwitchPlayer()
	}

	return entity.Outcome{Game: game, Events: []entity.Event{entity.EventPlaced}, Index: cell}, nil
}

func (that *Engine) validatePlacement(game *entity.Game, cell int, who actor) error {
	if err := that.checkTurn(game, who); err != nil {
		return err
	}

	if !entity.IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if !game.Board[cell].IsEmpty() {
		return apperror.ErrCellOccupied
	}

	if game.SelectedCard == nil {
		return apperror.ErrNoCardSelected
	}

	return nil
}

func (that *Engine) collapse(game *entity.Game, cell int, who actor) (entity.Outcome, error) {
	if err := that.checkTurn(game, who); err != nil {
		return rejected(game, cell), fmt.Errorf("invalid collapse: %w", err)
	}

	if !entity.IsValidCell(cell) {
		return rejected(game, cell), fmt.Errorf("invalid collapse: %w: cell %d", apperror.ErrInvalidCell, cell)
	}

	collapsed, err := that.resolver.Resolve(game.Board[cell])
	if err != nil {
		return rejected(game, cell), fmt.Errorf("invalid collapse: %w", err)
	}

	game.Board[cell] = collapsed
	game.QuantumCount--
	game.CollapsedCount++

	updateGameState(game)

	return entity.Outcome{
		Game:   game,
		Events: []entity.Event{entity.EventCollapsing, entity.EventCollapsed},
		Index:  cell,
		Value:  collapsed.Value,
	}, nil
}

// updateGameState checks for a win, then a tie, and otherwise passes the turn.
func updateGameState(game *entity.Game) {
	if line, won := game.Board.HasWin(); won {
		pattern := line.Pattern
		game.GameOver = true
		game.Winner = line.Value
		game.WinningPattern = &pattern
		return
	}

	if game.Board.IsTie() {
		game.GameOver = true
		game.Tie = true
		return
	}

	game.SwitchPlayer()
}

// checkTurn enforces that the game is running and that who owns the current seat.
// Against the computer the human only ever plays seat 1.
func (that *Engine) checkTurn(game *entity.Game, who actor) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	switch {
	case who == computer && !game.IsComputerTurn():
		return apperror.ErrNotComputerTurn
	case who == human && game.IsComputerTurn():
		return apperror.ErrNotYourTurn
	default:
		return nil
	}
}

func (that *Engine) dealDeck(game *entity.Game) {
	game.DeckRound++
	game.Deck = that.deck.Generate(game.DeckRound)
}

func rejected(game *entity.Game, cell int) entity.Outcome {
	return entity.Outcome{Game: game, Events: []entity.Event{entity.EventRejected}, Index: cell}
}
