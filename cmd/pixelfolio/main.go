// Command pixelfolio is a pixel-art portfolio overworld. Run with no
// subcommand to explore it in the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pixelfolio.dev/internal/config"
)

var (
	// Global flags
	worldPath string
	logLevel  string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "pixelfolio",
	Short: "A retro overworld portfolio you explore to earn XP",
	Long: `pixelfolio renders a small pixel-art world. Walk the map, discover the
project landmarks for XP, find the hidden star and level up along the way.

Without a subcommand the overworld opens in the terminal.`,
	PersistentPreRunE: loadConfig,
	SilenceUsage:      true,
	SilenceErrors:     true,
	RunE:              runPlay,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Explore the overworld in the terminal",
	RunE:  runPlay,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the read-only world catalog over HTTP",
	Long: `Serves the world manifest, landmarks, rendered map and level table as JSON.
The server holds no session state; clients keep their own progress.`,
	RunE: runServe,
}

var generateCmd = &cobra.Command{
	Use:   "generate [output-dir]",
	Short: "Write the world as static JSON files",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a world file for errors",
	Long: `Loads and validates a world file. With no argument the --world flag or
PIXELFOLIO_WORLD is used, falling back to the built-in world.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&worldPath, "world", "", "World file (default: built-in world, or PIXELFOLIO_WORLD)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default: PIXELFOLIO_LOG_LEVEL or info)")

	playCmd.Flags().Duration("move-delay", 0, "Minimum time between moves while a key is held")
	playCmd.Flags().Bool("plain", false, "Show project descriptions without markdown styling")
	rootCmd.Flags().AddFlagSet(playCmd.Flags())

	serveCmd.Flags().String("addr", "", "Listen address (default: SERVER_ADDR or :8080)")
	serveCmd.Flags().Bool("watch", false, "Reload the world file when it changes")

	rootCmd.AddCommand(playCmd, serveCmd, generateCmd, validateCmd)
}

// loadConfig reads the environment, then lets explicit flags win
func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("world") {
		c.WorldPath = worldPath
	}
	if cmd.Flags().Changed("log-level") {
		c.LogLevel = logLevel
	}
	if f := cmd.Flags().Lookup("move-delay"); f != nil && f.Changed {
		if c.MoveDelay, err = cmd.Flags().GetDuration("move-delay"); err != nil {
			return err
		}
		if c.MoveDelay < 0 {
			return fmt.Errorf("--move-delay must not be negative, got %s", c.MoveDelay)
		}
	}
	cfg = c
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
