// Package cli defines the command-line surface of valorant-stats.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"valorant-stats/internal/config"
	"valorant-stats/internal/constants"
	fxmodules "valorant-stats/internal/fx"
	"valorant-stats/internal/riotid"
	"valorant-stats/internal/tracker"
)

var (
	flagRiotID  string
	flagMatches int
	flagRegion  string
)

var rootCmd = &cobra.Command{
	Use:   "valorant-stats",
	Short: "Aggregate recent Valorant match stats for a Riot ID",
	Long: `Resolve a Riot ID, fetch its most recent matches from the Riot VAL API,
and print aggregate KDA and win rate.`,
	Args:         cobra.NoArgs,
	RunE:         runStats,
	SilenceUsage: true,
}

// Execute runs the root command. Terminal failures exit non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&flagRiotID, "riot-id", "", "Riot ID (GameName#TagLine); prompts when omitted")
	rootCmd.Flags().IntVar(&flagMatches, "matches", constants.MaxMatches, "number of recent matches to aggregate")
	rootCmd.Flags().StringVar(&flagRegion, "region", "", "account cluster region (overrides ACCOUNT_REGION)")
}

func runStats(cmd *cobra.Command, args []string) error {
	if flagMatches < 1 {
		return fmt.Errorf("--matches must be at least 1, got %d", flagMatches)
	}

	// Configuration comes first: a missing credential terminates before
	// the user is prompted for anything.
	var tr *tracker.Tracker
	app := fx.New(
		fx.NopLogger,
		fxmodules.Module,
		fx.Decorate(func(cfg *config.Config) *config.Config {
			if flagRegion != "" {
				cfg.AccountRegion = flagRegion
			}
			return cfg
		}),
		fx.Populate(&tr),
	)
	if err := app.Err(); err != nil {
		return err
	}

	raw := flagRiotID
	if raw == "" {
		fmt.Print("Enter Riot ID (e.g., GameName#TagLine): ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("failed to read Riot ID: %w", err)
		}
		raw = line
	}

	// Parse before any network call; a malformed id ends the run with
	// zero requests made.
	id, err := riotid.Parse(raw)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.RunTimeout)
	defer cancel()

	return tr.Run(ctx, id, flagMatches)
}
