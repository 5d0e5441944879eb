package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	historyLimit   int
	historyStreets bool
)

var historyCmd = &cobra.Command{
	Use:   "history <relation>",
	Short: "Show recorded runs of a relation",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&historyStreets, "streets", false, "Also list the suspicious streets of the latest run")
	RootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := loadBase()
	if err != nil {
		return err
	}
	defer l.Sync()

	history := openHistory(cfg, l)
	if history == nil {
		return fmt.Errorf("history needs a reachable database (database.enabled)")
	}

	runs, err := history.Recent(ctx, args[0], historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, run := range runs {
		fmt.Fprintf(out, "%s\t%s\t%d missing\t%d done\t%.2f%%\n",
			run.CreatedAt.Format("2006-01-02 15:04"), run.ID, run.MissingNumbers, run.DoneNumbers, run.Percent)
	}

	if !historyStreets || len(runs) == 0 {
		return nil
	}
	streets, err := history.MissingStreets(ctx, runs[0].ID)
	if err != nil {
		return err
	}
	for _, street := range streets {
		fmt.Fprintf(out, "  %s\t%d\t%s\n", street.Street, street.Count, street.HouseNumbers)
	}
	return nil
}
