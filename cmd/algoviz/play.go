package main

import (
	"github.com/aretw0/algoviz/internal/cli"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [algorithm]",
	Short: "Step through an algorithm interactively",
	Long: `Replays the generated steps one at a time. Press enter to advance,
'b' to go back, a step number to jump and 'q' to quit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := runOptions(cmd, args)
		if err != nil {
			return err
		}
		headless, _ := cmd.Flags().GetBool("headless")
		quiet, _ := cmd.Flags().GetBool("quiet")

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		return cli.Play(ctx, rt.Engine, cli.PlayOptions{
			RunOptions: opts,
			Headless:   headless,
			Quiet:      quiet,
		}, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	addRunFlags(playCmd)
	playCmd.Flags().Bool("headless", false, "Print every step without prompting")
	playCmd.Flags().BoolP("quiet", "q", false, "Suppress the banner and system messages")
}
