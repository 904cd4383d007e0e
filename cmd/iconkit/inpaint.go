package main

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/iconkit"
	"github.com/spf13/cobra"
)

var inpaintCmd = &cobra.Command{
	Use:   "inpaint",
	Short: "Fill transparent rounded corners with the nearest edge color",
	RunE:  runInpaint,
}

func init() {
	inpaintCmd.Flags().StringP("input", "i", "icon.png", "Icon with transparent corners")
	inpaintCmd.Flags().StringP("output", "o", "icon_filled.png", "Output PNG file")
	rootCmd.AddCommand(inpaintCmd)
}

func runInpaint(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")

	src, err := iconkit.LoadPixmap(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	filled, err := iconkit.Inpaint(src)
	if err != nil {
		return fmt.Errorf("inpaint: %w", err)
	}

	if err := filled.SavePNG(outputPath); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	slog.Info("corners filled", "input", inputPath, "output", outputPath,
		"radius", iconkit.DetectCornerRadius(src))
	return nil
}
