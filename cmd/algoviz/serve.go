package main

import (
	"github.com/aretw0/algoviz/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP and WebSocket server",
	Long: `Serves the generators over a JSON API, Server-Sent Events and WebSocket.
Metrics are exposed at /metrics, or on --metrics-addr when set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("addr") {
			cfg.Server.Addr, _ = cmd.Flags().GetString("addr")
		}
		if cmd.Flags().Changed("metrics-addr") {
			cfg.Server.MetricsAddr, _ = cmd.Flags().GetString("metrics-addr")
		}

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		logger.Info("starting algoviz server", "address", cfg.Server.Addr, "store", cfg.Store.Backend)
		if err := cli.Serve(ctx, cfg, rt); err != nil {
			return err
		}
		if sig := ctx.Signal(); sig != nil {
			logger.Info("shutdown complete", "signal", sig.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Address to listen on (default :8080)")
	serveCmd.Flags().String("metrics-addr", "", "Serve /metrics on a separate address")
}
