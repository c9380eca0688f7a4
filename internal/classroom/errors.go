package classroom

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionLimit    = errors.New("too many open sessions")
	ErrNoLayout        = errors.New("no layout has been generated for this session")
	ErrUnknownCell     = errors.New("unknown cell")
	ErrUnknownEvent    = errors.New("unknown event type")
)
