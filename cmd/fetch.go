package cmd

import (
	"context"
	"fmt"

	"housenumber-audit/feature/report"

	"github.com/spf13/cobra"
)

var fetchDest string

var fetchCmd = &cobra.Command{
	Use:   "fetch-reference <object>",
	Short: "Download the reference table from object storage",
	Long: `Download a reference table from the configured bucket. It replaces
reference.path unless --dest is given. The side-car cache is rebuilt on the
next run because the table changed.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchDest, "dest", "", "Destination path (default reference.path)")
	RootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, l, err := loadBase()
	if err != nil {
		return err
	}
	defer l.Sync()

	client, err := openStorage(cfg)
	if err != nil {
		return err
	}
	if client == nil {
		return fmt.Errorf("fetch-reference needs storage.enabled")
	}

	dest := fetchDest
	if dest == "" {
		dest = cfg.Reference.Path
	}

	_, err = report.NewFetcher(client, cfg.Storage.Bucket, l).Fetch(context.Background(), args[0], dest)
	return err
}
