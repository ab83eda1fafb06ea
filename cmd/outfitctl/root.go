package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/okian/outfitter/pkg/logger"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "outfitctl",
		Short:         "Rule-based outfit suggestions from the command line",
		Long:          "outfitctl builds ranked outfits from a wardrobe file and a preferences file, and exposes the season and color rules the engine uses.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return initLogger(logLevel)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level written to stderr: debug, info, warn, error")

	root.AddCommand(newSuggestCmd(), newSeasonCmd(), newScoreCmd())
	return root
}

// initLogger sends logs to stderr so stdout stays clean JSON.
func initLogger(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(os.Stderr), zap.NewAtomicLevelAt(lvl))
	return logger.InitWithCore(core)
}
