package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/stakewatch/stakewatch/config"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "stakewatch [chain]",
	Short:   "Staking monitor for substrate-based chains",
	Long: `Stakewatch watches validator stash accounts on a substrate-based chain
and raises matrix notifications and hook scripts on session and era changes.

The optional chain argument (westend, kusama, polkadot) selects a well-known
public RPC endpoint. An explicit --substrate-ws-url always takes precedence.`,
	ValidArgs: config.ChainNames(),
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	RunE:      run,
}

func init() {
	config.RegisterFlags(rootCmd.Flags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// Past argument parsing: failures from here on are fatal configuration
	// errors, not usage errors
	cmd.SilenceUsage = true

	cfg, err := config.Get()
	if err != nil {
		return fmt.Errorf("resolve configuration: %w", err)
	}

	setupLogging(cfg)

	slog.Info("configuration resolved",
		"endpoint", cfg.SubstrateWSURL,
		"interval", cfg.Interval,
		"error_interval", cfg.ErrorInterval,
		"stashes", len(cfg.Stashes),
		"matrix_enabled", !cfg.MatrixDisabled,
	)

	// The monitoring loop takes over from here with a read-only view of cfg.
	return nil
}
