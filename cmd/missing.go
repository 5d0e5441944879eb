package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"housenumber-audit/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	recordRun     bool
	publishReport bool
	jsonOutput    bool
)

var missingCmd = &cobra.Command{
	Use:   "missing-housenumbers <relation>",
	Short: "List house numbers present in the reference but missing from OSM",
	Long: `Compare the OSM house numbers of a relation with the reference and print
the streets with missing numbers, the street with the most missing numbers
first.

The reference list of the relation is generated first if it does not exist.

Examples:
  # Plain text report
  missing-housenumbers budafok

  # JSON report, recorded in the history database and uploaded to the bucket
  missing-housenumbers budafok --json --record --publish`,
	Args: cobra.ExactArgs(1),
	RunE: runMissing,
}

func init() {
	missingCmd.Flags().BoolVar(&recordRun, "record", false, "Record the run in the history database")
	missingCmd.Flags().BoolVar(&publishReport, "publish", false, "Upload the JSON report to object storage")
	missingCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the report as JSON")

	RootCmd.AddCommand(missingCmd)
}

func runMissing(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	relation := args[0]

	cfg, l, err := loadBase()
	if err != nil {
		return err
	}
	defer l.Sync()

	if publishReport && !cfg.Storage.Enabled {
		return fmt.Errorf("--publish needs storage.enabled")
	}

	svc, err := newService(cfg, l, serviceOptions{history: recordRun, storage: publishReport})
	if err != nil {
		return err
	}

	rep, err := svc.MissingHousenumbers(ctx, relation)
	if err != nil {
		return err
	}

	if recordRun {
		if _, err := svc.Record(ctx, relation, rep); err != nil {
			l.Warn("Run not recorded", zap.Error(err))
		}
	}
	if publishReport {
		if _, err := svc.Publish(ctx, relation, rep); err != nil {
			return err
		}
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	printReport(cmd.OutOrStdout(), rep)
	return nil
}

// printReport writes one "<street>\t<count>\t<numbers>" line per suspicious
// street followed by the totals.
func printReport(w io.Writer, rep *reconcile.Report) {
	for _, entry := range rep.Suspicious {
		fmt.Fprintf(w, "%s\t%d\t%s\n", entry.Street, len(entry.HouseNumbers), strings.Join(entry.HouseNumbers, ", "))
	}
	s := rep.Summary
	fmt.Fprintf(w, "%d missing house numbers in %d streets, %d present (%.2f%%)\n",
		s.MissingNumbers, s.SuspiciousStreets, s.DoneNumbers, s.Percent)
}
