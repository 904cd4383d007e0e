package main

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/iconkit"
	"github.com/spf13/cobra"
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Render the gradient background with the bolt from an older icon",
	RunE:  runCompose,
}

func init() {
	composeCmd.Flags().Int("size", 1024, "Icon edge length in pixels")
	composeCmd.Flags().StringP("reference", "r", "icon_old.png", "Icon to extract the bolt from")
	composeCmd.Flags().StringP("output", "o", "icon.png", "Output PNG file")
	rootCmd.AddCommand(composeCmd)
}

func runCompose(cmd *cobra.Command, args []string) error {
	size, _ := cmd.Flags().GetInt("size")
	refPath, _ := cmd.Flags().GetString("reference")
	outputPath, _ := cmd.Flags().GetString("output")

	icon, err := iconkit.ComposeIcon(size, iconkit.DefaultGradient(), refPath, iconkit.BoltFilter())
	if err != nil {
		return fmt.Errorf("compose: %w", err)
	}

	// The background is always written without alpha.
	if err := icon.ToRGB().SavePNG(outputPath); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	slog.Info("icon composed", "output", outputPath, "size", size)
	return nil
}
