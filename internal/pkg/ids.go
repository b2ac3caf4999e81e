package pkg

import "github.com/google/uuid"

// GenerateGameID - generates a new unique game ID.
func GenerateGameID() string {
	return uuid.NewString()
}

// GenerateNewSessionID - generates a new unique player session ID.
func GenerateNewSessionID() string {
	return uuid.NewString()
}
