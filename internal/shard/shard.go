// Package shard maps Riot active-shard codes to regional API hosts.
package shard

import (
	"fmt"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// DefaultShard is used when the API reports a shard outside the known table.
const DefaultShard = "na"

var shardCodes = []string{"na", "eu", "ap", "kr", "br", "latam"}

// Resolver holds an immutable shard-code → API-host table.
type Resolver struct {
	hosts  map[string]string
	logger zerolog.Logger
}

func NewResolver(logger zerolog.Logger) *Resolver {
	hosts := make(map[string]string, len(shardCodes))
	for _, code := range shardCodes {
		hosts[code] = fmt.Sprintf("https://%s.api.riotgames.com", code)
	}
	return NewResolverWithTable(hosts, logger)
}

// NewResolverWithTable builds a resolver over an explicit code→host table.
// The table must contain an entry for DefaultShard.
func NewResolverWithTable(hosts map[string]string, logger zerolog.Logger) *Resolver {
	return &Resolver{hosts: hosts, logger: logger}
}

// Host returns the API host for a shard code. Unknown codes fall back to
// the default shard's host with a warning; they never fail the run.
func (r *Resolver) Host(code string) string {
	if host, ok := r.hosts[code]; ok {
		return host
	}
	r.logger.Warn().
		Str("shard", code).
		Str("fallback", DefaultShard).
		Msg("unknown shard code, using default host")
	return r.hosts[DefaultShard]
}

var Module = fx.Provide(NewResolver)
