package main

import (
	"fmt"

	"github.com/aretw0/algoviz/internal/presentation/table"
	"github.com/aretw0/algoviz/pkg/domain"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"algorithms"},
	Short:   "List the supported algorithms",
	RunE: func(cmd *cobra.Command, args []string) error {
		plain, _ := cmd.Flags().GetBool("plain")
		if plain {
			for _, id := range domain.Algorithms {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		}
		table.Algorithms(cmd.OutOrStdout(), domain.Algorithms)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("plain", false, "Print one id per line")
}
