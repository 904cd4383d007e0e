// Command iconkit builds and repairs the application icon.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/iconkit"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "iconkit",
	Short:         "Compose and repair square application icons",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		setupLogging(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// setupLogging routes library and command logs to stderr.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(l)
	iconkit.SetLogger(l)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
