package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/outfitter/internal/domain/season"
)

const dateLayout = "2006-01-02"

func newSeasonCmd() *cobra.Command {
	var (
		hemisphere string
		date       string
	)

	cmd := &cobra.Command{
		Use:   "season",
		Short: "Print the season \"current\" resolves to",
		RunE: func(cmd *cobra.Command, _ []string) error {
			hemi, err := season.ParseHemisphere(hemisphere)
			if err != nil {
				return err
			}
			at := time.Now()
			if date != "" {
				at, err = time.Parse(dateLayout, date)
				if err != nil {
					return fmt.Errorf("invalid --date %q, want YYYY-MM-DD: %w", date, err)
				}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), season.Current(at, hemi).Lower())
			return err
		},
	}
	cmd.Flags().StringVar(&hemisphere, "hemisphere", "north", "north or south")
	cmd.Flags().StringVar(&date, "date", "", "Date to resolve, YYYY-MM-DD (default today)")

	return cmd
}
