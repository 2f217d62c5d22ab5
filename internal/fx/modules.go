package fx

import (
	"valorant-stats/internal/config"
	"valorant-stats/internal/logger"
	"valorant-stats/internal/riot"
	"valorant-stats/internal/shard"
	"valorant-stats/internal/tracker"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	// api client
	fx.Provide(riot.NewClient),
	fx.Provide(shard.NewResolver),
	// pipeline
	fx.Provide(tracker.New),
)
