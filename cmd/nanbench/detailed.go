package main

import (
	"github.com/spf13/cobra"
)

var detailedCmd = &cobra.Command{
	Use:   "detailed [function]",
	Short: "Time one function over the full benchmark table",
	Long: `Times the fast and reference variants of the function (default nansum)
for every row of the benchmark table that applies to its call signature
and prints one line per row. The first error aborts the run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, restore := newComparator(cmd)
		defer restore()
		return c.RunDetailed(functionArg(args))
	},
}

var suiteCmd = &cobra.Command{
	Use:   "suite [function]",
	Short: "List the benchmark cases of a function without timing them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, restore := newComparator(cmd)
		defer restore()
		return c.Suite(functionArg(args))
	},
}

func init() {
	rootCmd.AddCommand(detailedCmd)
	rootCmd.AddCommand(suiteCmd)
}
