package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var referenceCmd = &cobra.Command{
	Use:   "reference <relation>",
	Short: "Write the reference house-number list of a relation",
	Long: `Look up every OSM street of the relation in the reference and write
street-housenumbers-reference-<relation>.lst to the work directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runReference,
}

var buildCacheCmd = &cobra.Command{
	Use:   "build-cache",
	Short: "Build or refresh the side-car cache of the reference table",
	Args:  cobra.NoArgs,
	RunE:  runBuildCache,
}

func init() {
	RootCmd.AddCommand(referenceCmd)
	RootCmd.AddCommand(buildCacheCmd)
}

func runReference(cmd *cobra.Command, args []string) error {
	cfg, l, err := loadBase()
	if err != nil {
		return err
	}
	defer l.Sync()

	svc, err := newService(cfg, l, serviceOptions{})
	if err != nil {
		return err
	}

	_, err = svc.WriteReferenceList(context.Background(), args[0])
	return err
}

func runBuildCache(cmd *cobra.Command, args []string) error {
	cfg, l, err := loadBase()
	if err != nil {
		return err
	}
	defer l.Sync()

	store, err := newStore(cfg, l)
	if err != nil {
		return err
	}

	cache, err := store.Get(context.Background(), cfg.Reference.Path)
	if err != nil {
		return err
	}
	l.Info("Reference cache built", zap.String("path", cfg.Reference.Path), zap.Int("rows", cache.Rows()))
	return nil
}
