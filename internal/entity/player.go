package entity

// Player is a connected session. GameID is empty until the player starts a game.
type Player struct {
	ID     string `json:"id"`
	GameID string `json:"game_id,omitempty"`
}

func (that *Player) InGame() bool {
	return that.GameID != ""
}
