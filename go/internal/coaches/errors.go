package coaches

import "errors"

// ErrCoachNotFound is returned when no coach has the requested ID
var ErrCoachNotFound = errors.New("coach not found")
