// Package riotid parses compound Riot IDs of the form "GameName#TagLine".
package riotid

import (
	"fmt"
	"strings"
)

type RiotID struct {
	Name string
	Tag  string
}

func (id RiotID) String() string {
	return id.Name + "#" + id.Tag
}

// Parse splits a raw Riot ID on '#'. Exactly one separator is required and
// both sides must be non-empty; anything else is a format error.
func Parse(raw string) (RiotID, error) {
	parts := strings.Split(strings.TrimSpace(raw), "#")
	if len(parts) != 2 {
		return RiotID{}, fmt.Errorf("invalid Riot ID %q: expected exactly one '#' separator", raw)
	}
	if parts[0] == "" || parts[1] == "" {
		return RiotID{}, fmt.Errorf("invalid Riot ID %q: name and tag must be non-empty", raw)
	}
	return RiotID{Name: parts[0], Tag: parts[1]}, nil
}
