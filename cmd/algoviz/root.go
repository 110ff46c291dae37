package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/algoviz/internal/cli"
	"github.com/aretw0/algoviz/internal/config"
	"github.com/aretw0/algoviz/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "algoviz",
	Short: "algoviz generates step-by-step algorithm visualizations",
	Long: `algoviz turns sorting, binary tree, linked list and stack algorithms into
sequences of self-contained animation steps. Use it from the terminal, or serve
the steps over HTTP, WebSocket or MCP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default .algoviz.yaml in the current or home directory)")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("log-format", "", "Log format: text or json")
	flags.String("store", "", "Session store: memory, file, bolt or redis")
	flags.String("store-path", "", "Directory (file) or database file (bolt) for sessions")
	flags.String("redis-addr", "", "Redis address for the redis store")
}

// loadConfig reads the configuration and applies the persistent flag overrides.
func loadConfig(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}

	override := func(flag string, dst *string) {
		if cmd.Flags().Changed(flag) {
			*dst, _ = cmd.Flags().GetString(flag)
		}
	}
	override("log-level", &loaded.Log.Level)
	override("log-format", &loaded.Log.Format)
	override("store", &loaded.Store.Backend)
	override("store-path", &loaded.Store.Path)
	override("redis-addr", &loaded.Store.Redis.Addr)
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	l, err := logging.FromConfig(loaded.Log.Level, loaded.Log.Format)
	if err != nil {
		return err
	}
	cfg, logger = loaded, l
	return nil
}

// newRuntime builds the engine for commands that need one.
func newRuntime() (*cli.Runtime, error) {
	return cli.NewRuntime(cfg, logger)
}
