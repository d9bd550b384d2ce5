package pkg

import "github.com/google/uuid"

// GenerateNewSessionID - returns a random ID for a websocket session cookie.
func GenerateNewSessionID() string {
	return uuid.NewString()
}

// GeneratePlayerID - returns a random ID for a new player profile.
func GeneratePlayerID() string {
	return uuid.NewString()
}

// IsValidID - reports whether id looks like an ID produced by this package.
func IsValidID(id string) bool {
	return uuid.Validate(id) == nil
}
