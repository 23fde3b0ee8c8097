package cave

import "errors"

// Generation errors.
var (
	ErrInvalidConfig = errors.New("invalid generation config")
	ErrNoRooms       = errors.New("no floor region survived pruning")
)
