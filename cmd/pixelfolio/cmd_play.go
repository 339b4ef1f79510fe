package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pixelfolio.dev/internal/config"
	"pixelfolio.dev/internal/logging"
	"pixelfolio.dev/internal/services"
	"pixelfolio.dev/internal/tui"
)

// runPlay opens the overworld in the terminal. The UI owns the screen, so
// logs go to cfg.LogFile; an empty file disables logging.
func runPlay(cmd *cobra.Command, args []string) error {
	logger := zap.NewNop()
	if cfg.LogFile != "" {
		l, err := logging.New(cfg.LogLevel, cfg.LogFile)
		if err != nil {
			return err
		}
		logger = l
	}
	defer logger.Sync() //nolint:errcheck

	reg, err := config.LoadRegistry(cfg.WorldPath)
	if err != nil {
		return err
	}

	plain, _ := cmd.Flags().GetBool("plain")
	game := services.NewGameService(reg, logger)

	if err := tui.Run(game, tui.Options{
		MoveDelay: cfg.MoveDelay,
		PlainText: plain,
		Logger:    logger,
	}); err != nil {
		return fmt.Errorf("terminal ui: %w", err)
	}

	snap := game.Snapshot()
	logger.Info("session ended",
		zap.String("session", snap.SessionID),
		zap.Int("xp", snap.Experience),
		zap.Int("level", snap.Level),
		zap.Strings("discovered", snap.Discovered))
	return nil
}
