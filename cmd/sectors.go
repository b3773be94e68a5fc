package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/sells-group/leadgen-cli/internal/query"
)

var sectorsCmd = &cobra.Command{
	Use:   "sectors",
	Short: "List the sectors in the static keyword table",
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := query.NewStaticGenerator()
		if err != nil {
			return err
		}

		names := gen.Sectors()
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sectorsCmd)
}
