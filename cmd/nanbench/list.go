package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tphakala/go-nanops/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list [group]",
	Short: "List benchmarkable functions by group",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	groups := registry.Groups()
	if len(args) == 1 {
		groups = []registry.Group{registry.Group(args[0])}
	}
	for _, g := range groups {
		names, err := registry.Functions(g)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", g, strings.Join(names, " "))
	}
	return nil
}
