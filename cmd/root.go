package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/arcanaland/gofish/internal/config"
	"github.com/arcanaland/gofish/internal/deck"
	"github.com/arcanaland/gofish/internal/game"
	"github.com/arcanaland/gofish/internal/logging"
	"github.com/arcanaland/gofish/internal/player"
	"github.com/arcanaland/gofish/internal/ui"
)

// Version is printed in the title line
var Version = "v0.3.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "gofish",
	Short:   "Play Go Fish against the computer",
	Version: Version,
	Long: `Go Fish for one player against a computer opponent, in the terminal.

Ask for a rank you hold (2-10, J, Q, K or A). If the computer has any cards of
that rank they are yours and you go again, otherwise go fish. Four cards of a
rank make a book; the player with the most books when all 13 are made wins.

Commands at the prompt: ?hand ?deck ?help ?quit`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	RootCmd.Flags().StringP("name", "n", "", "Your player name (default from config, prompted when unset)")
	RootCmd.Flags().Uint64("seed", 0, "Seed for the deck, 0 picks a random one")
	RootCmd.Flags().Int("log-lines", 0, "Number of recent events shown at the bottom of the screen")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer := openLog(cfg)
	if closer != nil {
		defer closer.Close()
	}

	term := ui.NewTerminal(os.Stdin, os.Stdout, Version)

	name := cfg.PlayerName
	if name == "" {
		name, err = term.AskName()
		if err != nil {
			return err
		}
	}

	opts := game.Options{
		Players:  [2]*player.Player{player.New(name), player.NewCPU()},
		LogLines: cfg.LogLines,
		Logger:   logger,
	}
	if cfg.Seed != 0 {
		opts.Rand = deck.NewRand(cfg.Seed)
	}

	g, err := game.New(opts)
	if err != nil {
		return err
	}

	if _, err := g.Run(term, 0); err != nil {
		logger.Error().Err(err).Msg("game aborted")
		return err
	}
	return nil
}

// loadConfig reads the config file and environment, then applies flags
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %v", err)
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		cfg.PlayerName, _ = flags.GetString("name")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("log-lines") {
		cfg.LogLines, _ = flags.GetInt("log-lines")
	}
	return cfg, nil
}

// openLog opens the diagnostic log, carrying on without one if it cannot be created
func openLog(cfg *config.Config) (zerolog.Logger, io.Closer) {
	logger, closer, err := logging.OpenFile(config.GetLogFilePath(), cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return zerolog.Nop(), nil
	}
	return logger, closer
}
