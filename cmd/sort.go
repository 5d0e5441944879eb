package cmd

import (
	"fmt"
	"os"

	"housenumber-audit/core/tablesort"
	"housenumber-audit/core/workspace"

	"github.com/spf13/cobra"
)

var sortToStdout bool

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Sort OSM query results for stable diffs",
	Long: `Sort a tab-separated OSM query result in place, keeping its header line.

Examples:
  sort streets workdir/streets-budafok.csv
  sort housenumbers workdir/street-housenumbers-budafok.csv --stdout`,
}

var sortStreetsCmd = &cobra.Command{
	Use:   "streets <file>",
	Short: "Sort a street table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return sortFile(cmd, args[0], tablesort.SortStreetsTSV)
	},
}

var sortHouseNumbersCmd = &cobra.Command{
	Use:   "housenumbers <file>",
	Short: "Sort a house-number table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return sortFile(cmd, args[0], tablesort.SortHouseNumbersTSV)
	},
}

func init() {
	sortCmd.PersistentFlags().BoolVar(&sortToStdout, "stdout", false, "Print the sorted table instead of rewriting the file")
	sortCmd.AddCommand(sortStreetsCmd)
	sortCmd.AddCommand(sortHouseNumbersCmd)

	RootCmd.AddCommand(sortCmd)
}

func sortFile(cmd *cobra.Command, path string, sortTSV func(string) string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	sorted := sortTSV(string(data))
	if sortToStdout {
		_, err := fmt.Fprint(cmd.OutOrStdout(), sorted)
		return err
	}
	return workspace.WriteFile(path, []byte(sorted))
}
