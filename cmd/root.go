package cmd

import (
	"fmt"
	"os"

	"housenumber-audit/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "housenumber-audit",
	Short: "Find house numbers missing from OpenStreetMap",
	Long: `housenumber-audit compares the house numbers mapped in OpenStreetMap
with an authoritative reference registry and lists, street by street, the
numbers that are still missing from the map.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Debug level for ISO8601 timestamps, console format for humans.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
