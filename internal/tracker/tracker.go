// Package tracker runs the fetch-and-aggregate pipeline for one Riot ID.
package tracker

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"valorant-stats/internal/constants"
	"valorant-stats/internal/report"
	"valorant-stats/internal/riot"
	"valorant-stats/internal/riotid"
	"valorant-stats/internal/shard"
	"valorant-stats/internal/stats"
)

type Tracker struct {
	client *riot.Client
	shards *shard.Resolver
	logger zerolog.Logger
	out    io.Writer
}

func New(client *riot.Client, shards *shard.Resolver, logger zerolog.Logger) *Tracker {
	return NewWithOutput(client, shards, logger, os.Stdout)
}

func NewWithOutput(client *riot.Client, shards *shard.Resolver, logger zerolog.Logger, out io.Writer) *Tracker {
	return &Tracker{client: client, shards: shards, logger: logger, out: out}
}

// Run executes the pipeline: account → active shard → match list → up to
// `limit` match details → report. Failures before the detail loop are
// terminal and return an error with no partial report; a failed individual
// detail fetch is logged and skipped, but still counts against the
// win-rate denominator.
func (t *Tracker) Run(ctx context.Context, id riotid.RiotID, limit int) error {
	accountCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()
	account, err := t.client.GetAccount(accountCtx, id.Name, id.Tag)
	if err != nil {
		return fmt.Errorf("failed to resolve account %s: %w", id, err)
	}
	t.logger.Info().Str("puuid", account.Puuid).Msg("account resolved")

	shardCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()
	active, err := t.client.GetActiveShard(shardCtx, account.Puuid)
	if err != nil {
		return fmt.Errorf("failed to resolve active shard: %w", err)
	}
	host := t.shards.Host(active.ActiveShard)
	t.logger.Info().Str("shard", active.ActiveShard).Str("host", host).Msg("shard resolved")

	listCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()
	list, err := t.client.GetMatchList(listCtx, host, account.Puuid)
	if err != nil {
		return fmt.Errorf("failed to fetch match list: %w", err)
	}

	if limit < 0 {
		limit = 0
	}
	history := list.History
	if len(history) > limit {
		history = history[:limit]
	}
	if len(history) == 0 {
		fmt.Fprintln(t.out, "No matches found.")
		return nil
	}
	t.logger.Info().Int("count", len(history)).Msg("aggregating recent matches")

	rl := t.client.RateLimit()
	t.logger.Debug().
		Str("app_limit", rl.AppLimit).
		Str("app_count", rl.AppCount).
		Msg("rate limit snapshot")

	var totals stats.Totals
	for _, entry := range history {
		totals.Attempt()

		matchCtx, matchCancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
		match, err := t.client.GetMatch(matchCtx, host, entry.MatchID)
		matchCancel()
		if err != nil {
			t.logger.Warn().Err(err).Str("match_id", entry.MatchID).Msg("skipping match, detail fetch failed")
			continue
		}

		switch totals.Observe(match, account.Puuid) {
		case stats.PlayerAbsent:
			t.logger.Warn().Str("match_id", entry.MatchID).Msg("skipping match, player absent from participant list")
		case stats.TeamAbsent:
			t.logger.Warn().Str("match_id", entry.MatchID).Msg("team not found for player, no win credit")
		}
	}

	t.logger.Info().
		Int("attempted", totals.Attempted).
		Int("aggregated", totals.Aggregated).
		Int("wins", totals.Wins).
		Msg("aggregation complete")

	report.Print(t.out, id, totals)
	return nil
}
