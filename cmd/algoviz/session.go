package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/algoviz/internal/cli"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage linked list sessions",
	Long: `List, inspect, modify and remove the linked list sessions kept in the
configured store (use --store file|bolt|redis for persistent sessions).`,
}

var sessionLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()
		return cli.SessionList(cmd.Context(), rt.Engine, cmd.OutOrStdout())
	},
}

var sessionInspectCmd = &cobra.Command{
	Use:   "inspect <session-id>",
	Short: "Inspect the current list of a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()
		return cli.SessionInspect(cmd.Context(), rt.Engine, args[0], cmd.OutOrStdout())
	},
}

var sessionRmCmd = &cobra.Command{
	Use:   "rm <session-id>...",
	Short: "Remove one or more sessions",
	Args: func(cmd *cobra.Command, args []string) error {
		if all, _ := cmd.Flags().GetBool("all"); all {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.MinimumNArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()
		return cli.SessionRemove(cmd.Context(), rt.Engine, args, all, cmd.OutOrStdout())
	},
}

var sessionDoCmd = &cobra.Command{
	Use:   "do <session-id> <action> [value] [position]",
	Short: "Run a linked list action on a session",
	Example: `  algoviz session do demo insertHead 5
  algoviz session do demo insertAt 7 2
  algoviz session do demo search 7
  algoviz session do demo init --values 3,2,1`,
	Args: cobra.RangeArgs(2, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		data := map[string]any{}
		for i, key := range []string{"value", "position"} {
			if len(args) <= i+2 {
				break
			}
			vals, err := cli.ParseInts(args[i+2])
			if err != nil || len(vals) != 1 {
				return fmt.Errorf("invalid %s %q", key, args[i+2])
			}
			data[key] = vals[0]
		}
		// removeAt takes its position as the single argument.
		if strings.EqualFold(strings.NewReplacer("-", "", "_", "").Replace(args[1]), "removeat") && len(args) == 3 {
			data["position"] = data["value"]
			delete(data, "value")
		}
		if cmd.Flags().Changed("values") {
			s, _ := cmd.Flags().GetString("values")
			vals, err := cli.ParseInts(s)
			if err != nil {
				return fmt.Errorf("--values: %w", err)
			}
			data["values"] = vals
		}
		format, _ := cmd.Flags().GetString("format")

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()
		return cli.ListAction(cmd.Context(), rt.Engine, args[0], args[1], data, format, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionLsCmd)
	sessionCmd.AddCommand(sessionInspectCmd)
	sessionCmd.AddCommand(sessionRmCmd)
	sessionCmd.AddCommand(sessionDoCmd)

	sessionRmCmd.Flags().Bool("all", false, "Remove every session")
	sessionDoCmd.Flags().String("values", "", "Comma separated values for init")
	sessionDoCmd.Flags().StringP("format", "f", cli.FormatTable, "Output format: "+strings.Join(cli.Formats, ", "))
}
