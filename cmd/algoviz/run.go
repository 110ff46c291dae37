package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/algoviz/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [algorithm]",
	Short: "Generate the steps of an algorithm and print them",
	Example: `  algoviz run bubbleSort --array 5,3,8,1
  algoviz run linkedList --data '{operation: insertAt, value: 9, position: 2}'
  algoviz run binaryTree --format mermaid
  algoviz run --scenario demo.yaml --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := runOptions(cmd, args)
		if err != nil {
			return err
		}
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		return cli.Run(cmd.Context(), rt.Engine, opts, cmd.OutOrStdout())
	},
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().String("data", "", "Input data as JSON or YAML flow, e.g. '{array: [3, 1, 2]}'")
	cmd.Flags().String("array", "", "Comma separated array for sorts (shorthand for --data)")
	cmd.Flags().String("values", "", "Comma separated values for the tree or stack (shorthand for --data)")
	cmd.Flags().String("scenario", "", "YAML or JSON scenario file with several runs")
	cmd.Flags().String("session", "", "Apply linked list operations to this stored session")
}

// runOptions reads the shared generation flags.
func runOptions(cmd *cobra.Command, args []string) (cli.RunOptions, error) {
	var opts cli.RunOptions
	if len(args) > 0 {
		opts.Algorithm = args[0]
	}
	opts.Scenario, _ = cmd.Flags().GetString("scenario")
	opts.SessionID, _ = cmd.Flags().GetString("session")
	if f := cmd.Flags().Lookup("format"); f != nil {
		opts.Format = f.Value.String()
	}
	if opts.Algorithm == "" && opts.Scenario == "" {
		return opts, fmt.Errorf("an algorithm or --scenario is required (see 'algoviz list')")
	}

	raw, _ := cmd.Flags().GetString("data")
	data, err := cli.ParseData(raw)
	if err != nil {
		return opts, err
	}
	for _, key := range []string{"array", "values"} {
		if !cmd.Flags().Changed(key) {
			continue
		}
		s, _ := cmd.Flags().GetString(key)
		vals, err := cli.ParseInts(s)
		if err != nil {
			return opts, fmt.Errorf("--%s: %w", key, err)
		}
		if data == nil {
			data = map[string]any{}
		}
		data[key] = vals
	}
	opts.Data = data
	return opts, nil
}

func init() {
	rootCmd.AddCommand(runCmd)
	addRunFlags(runCmd)
	runCmd.Flags().StringP("format", "f", cli.FormatTable, "Output format: "+strings.Join(cli.Formats, ", "))
}
