package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/arbitlab/arbit/arbitrary"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Args:  cobra.NoArgs,
	Short: "List fixture names loaded from a YAML file",
	RunE:  runList,
}

func init() {
	listCmd.Flags().String("file", "", "YAML fixture to load via arbitrary.LoadDefaultsYAML")
}

func runList(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	if file != "" {
		if _, err := arbitrary.LoadDefaultsYAML(file); err != nil {
			return fmt.Errorf("loading fixture file: %w", err)
		}
	}

	names := arbitrary.Names()
	sort.Strings(names)
	if len(names) == 0 {
		fmt.Println("no fixtures loaded; pass --file to load one")
		return nil
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
