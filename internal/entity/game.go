package entity

import (
	"fmt"

	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/apperror"
)

type Mode string

const (
	ModePvP Mode = "pvp"
	ModePvC Mode = "pvc"
)

func (m Mode) IsValid() bool {
	return m == ModePvP || m == ModePvC
}

type Strategy string

const (
	StrategyAggressive Strategy = "aggressive"
	StrategyDefensive  Strategy = "defensive"
	StrategyBalanced   Strategy = "balanced"
	StrategyRandom     Strategy = "random"
	StrategyNone       Strategy = ""
)

func (s Strategy) IsValid() bool {
	switch s {
	case StrategyAggressive, StrategyDefensive, StrategyBalanced, StrategyRandom:
		return true
	default:
		return false
	}
}

// ProbabilityCard is one offered split. XProbability + OProbability is always 100.
type ProbabilityCard struct {
	ID           string `json:"id"`
	XProbability int    `json:"x_probability"`
	OProbability int    `json:"o_probability"`
}

const DeckSize = 3

type Game struct {
	ID             string            `json:"id"`
	Board          Board             `json:"board"`
	CurrentPlayer  PlayerNum         `json:"current_player"`
	Deck           []ProbabilityCard `json:"deck"`
	DeckRound      int               `json:"deck_round"`
	SelectedCard   *ProbabilityCard  `json:"selected_card,omitempty"`
	GameOver       bool              `json:"game_over"`
	Winner         Mark              `json:"winner,omitempty"`
	WinningPattern *[3]int           `json:"winning_pattern,omitempty"`
	Tie            bool              `json:"tie"`
	Mode           Mode              `json:"mode"`
	Strategy       Strategy          `json:"ai_strategy,omitempty"`
	QuantumCount   int               `json:"quantum_count"`
	CollapsedCount int               `json:"collapsed_count"`
}

func (that *Game) IsFinished() bool {
	return that.GameOver
}

func (that *Game) IsWithComputer() bool {
	return that.Mode == ModePvC
}

// IsComputerTurn is true while the computer opponent is due to move.
func (that *Game) IsComputerTurn() bool {
	return !that.GameOver && that.IsWithComputer() && that.CurrentPlayer == Player2
}

func (that *Game) ConfirmOngoingState() error {
	if that.GameOver {
		return apperror.ErrGameFinished
	}

	return nil
}

// FindCard looks a card of the current deck up by its id.
func (that *Game) FindCard(cardID string) (ProbabilityCard, error) {
	for _, card := range that.Deck {
		if card.ID == cardID {
			return card, nil
		}
	}

	return ProbabilityCard{}, fmt.Errorf("%w: %s", apperror.ErrUnknownCard, cardID)
}

// SwitchPlayer hands the turn to the other seat.
func (that *Game) SwitchPlayer() {
	that.CurrentPlayer = that.CurrentPlayer.Other()
}

// Clone returns a deep copy, so callers can snapshot a state before handing it out.
func (that *Game) Clone() *Game {
	clone := *that

	clone.Deck = append([]ProbabilityCard(nil), that.Deck...)

	if that.SelectedCard != nil {
		card := *that.SelectedCard
		clone.SelectedCard = &card
	}

	if that.WinningPattern != nil {
		pattern := *that.WinningPattern
		clone.WinningPattern = &pattern
	}

	return &clone
}
