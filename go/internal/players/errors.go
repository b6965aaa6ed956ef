package players

import "errors"

// ErrPlayerNotFound is returned when no player has the requested ID
var ErrPlayerNotFound = errors.New("player not found")
