package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/outfitter/internal/domain/palette"
)

func newScoreCmd() *cobra.Command {
	var colors []string

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Print the color harmony score of a set of colors",
		Example: "  outfitctl score --colors Red,Green\n" +
			"  outfitctl score --colors White,Blue,Black",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := palette.Score(colors)
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", s, harmony(s))
			return err
		},
	}
	cmd.Flags().StringSliceVarP(&colors, "colors", "c", nil, "Comma-separated colors")
	_ = cmd.MarkFlagRequired("colors")

	return cmd
}

func harmony(score int) string {
	switch score {
	case palette.ScoreMonochromatic:
		return "monochromatic"
	case palette.ScoreAnalogous:
		return "analogous"
	case palette.ScoreComplementary:
		return "complementary"
	default:
		return "none"
	}
}
