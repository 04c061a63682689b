package env

import "errors"

// Domain errors for the environment contract.
var (
	// ErrInvalidConfiguration indicates a reset-time or construction-time
	// parameter outside its declared bounds. No partial state is created.
	ErrInvalidConfiguration = errors.New("env: invalid configuration")

	// ErrInvalidAction indicates a discrete action outside the declared
	// action space. Continuous throttle out of range is clamped, not
	// rejected.
	ErrInvalidAction = errors.New("env: invalid action")

	// ErrEpisodeDone indicates Step was called after the episode reached
	// a terminal or truncated phase without an intervening Reset.
	ErrEpisodeDone = errors.New("env: episode finished, call Reset")

	// ErrClosed indicates use after Close.
	ErrClosed = errors.New("env: environment closed")
)
