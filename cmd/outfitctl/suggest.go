package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	service "github.com/okian/outfitter/internal/app"
	"github.com/okian/outfitter/internal/domain/season"
	"github.com/okian/outfitter/internal/domain/types"
	"github.com/okian/outfitter/pkg/logger"
)

func newSuggestCmd() *cobra.Command {
	var (
		wardrobePath    string
		preferencesPath string
		outPath         string
		hemisphere      string
		count           int
		seed            uint64
		budget          int
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Generate ranked outfits from a wardrobe",
		Long:  "Reads a JSON array of clothing items and a JSON preferences object and prints ranked outfit suggestions as JSON.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := types.SuggestRequest{}
			if err := readJSON(wardrobePath, &req.Wardrobe); err != nil {
				return fmt.Errorf("failed to load wardrobe: %w", err)
			}
			if err := readJSON(preferencesPath, &req.Preferences); err != nil {
				return fmt.Errorf("failed to load preferences: %w", err)
			}
			if cmd.Flags().Changed("count") {
				req.Count = &count
			}
			if cmd.Flags().Changed("seed") {
				req.Seed = &seed
			}
			if err := validator.New(validator.WithRequiredStructEnabled()).Struct(req); err != nil {
				return fmt.Errorf("invalid input: %w", err)
			}

			hemi, err := season.ParseHemisphere(hemisphere)
			if err != nil {
				return err
			}
			svc := service.New(
				service.WithLogger(logger.Named("suggest")),
				service.WithHemisphere(hemi),
				service.WithCombinationBudget(budget),
			)
			resp, err := svc.Suggest(cmd.Context(), req)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(resp, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal suggestions: %w", err)
			}
			out = append(out, '\n')
			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if dir := filepath.Dir(outPath); dir != "" && dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("failed to create output directory %s: %w", dir, err)
				}
			}
			if err := os.WriteFile(outPath, out, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d suggestions to %s\n", len(resp.Suggestions), outPath)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&wardrobePath, "wardrobe", "w", "", "Path to wardrobe JSON (array of clothing items, - for stdin)")
	f.StringVarP(&preferencesPath, "preferences", "p", "", "Path to preferences JSON")
	f.StringVarP(&outPath, "out", "o", "", "Write suggestions here instead of stdout")
	f.StringVar(&hemisphere, "hemisphere", "north", "Hemisphere used to resolve the current season")
	f.IntVarP(&count, "count", "n", 0, "Maximum suggestions (default 5)")
	f.Uint64Var(&seed, "seed", 0, "Seed for reproducible picks")
	f.IntVar(&budget, "budget", 100, "Cap on base combinations")
	_ = cmd.MarkFlagRequired("wardrobe")
	_ = cmd.MarkFlagRequired("preferences")

	return cmd
}

// readJSON decodes one JSON document from path, or stdin when path is "-".
func readJSON(path string, dst any) error {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
