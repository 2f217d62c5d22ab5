package constants

import "time"

const (
	// MaxMatches caps how many recent matches a single run aggregates.
	MaxMatches = 5
)

const (
	ExternalAPITimeout = 10 * time.Second
	RunTimeout         = 60 * time.Second
)
