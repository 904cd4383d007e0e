package main

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/iconkit"
	"github.com/spf13/cobra"
)

var roundCmd = &cobra.Command{
	Use:   "round",
	Short: "Cut transparent rounded corners into a square icon",
	RunE:  runRound,
}

func init() {
	roundCmd.Flags().StringP("input", "i", "icon.png", "Square icon")
	roundCmd.Flags().StringP("output", "o", "icon_rounded.png", "Output PNG file")
	roundCmd.Flags().Int("radius", 180, "Corner radius in pixels")
	rootCmd.AddCommand(roundCmd)
}

func runRound(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	radius, _ := cmd.Flags().GetInt("radius")

	src, err := iconkit.LoadPixmap(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	rounded, err := iconkit.RoundCorners(src, radius)
	if err != nil {
		return fmt.Errorf("round: %w", err)
	}

	if err := rounded.SavePNG(outputPath); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	slog.Info("corners rounded", "input", inputPath, "output", outputPath, "radius", radius)
	return nil
}
