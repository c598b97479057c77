package cmd

import (
	"fmt"
	"io"

	colorize "github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/arcanaland/gofish/internal/deck"
	"github.com/arcanaland/gofish/internal/game"
	"github.com/arcanaland/gofish/internal/player"
)

// maxSimulatedIterations bounds a computer-only game
const maxSimulatedIterations = 10_000

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play computer against computer and report the winners",
	Long: `Simulate plays a number of games between two computer players using the
same strategy the opponent uses in a normal game. Game N is seeded with
seed+N, so a run is reproducible.

Examples:
  gofish simulate
  gofish simulate --games 100 --seed 42`,
	RunE: func(cmd *cobra.Command, args []string) error {
		games, _ := cmd.Flags().GetInt("games")
		if games <= 0 {
			return fmt.Errorf("--games must be positive, got %d", games)
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, closer := openLog(cfg)
		if closer != nil {
			defer closer.Close()
		}

		seed, _ := cmd.Flags().GetUint64("seed")
		return simulate(cmd.OutOrStdout(), games, seed, logger)
	},
}

func init() {
	RootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().Int("games", 10, "Number of games to play")
	simulateCmd.Flags().Uint64("seed", 1, "Seed of the first game")
}

// quietFrontend satisfies game.Frontend for games with no human seated
type quietFrontend struct{}

func (quietFrontend) Render(game.View) error { return nil }

func (quietFrontend) ReadRequest() (game.Request, error) {
	return game.Request{}, fmt.Errorf("no human player in a simulated game")
}

func (quietFrontend) GameOver(game.Result) error { return nil }

// simulate plays computer-only games and prints one line per game plus a tally
func simulate(w io.Writer, games int, seed uint64, logger zerolog.Logger) error {
	wins := make(map[string]int)
	turns := 0

	for i := 0; i < games; i++ {
		north := player.New("North")
		north.IsCPU = true
		south := player.New("South")
		south.IsCPU = true

		g, err := game.New(game.Options{
			Players: [2]*player.Player{north, south},
			Rand:    deck.NewRand(seed + uint64(i)),
			Logger:  logger,
		})
		if err != nil {
			return err
		}

		res, err := g.Run(quietFrontend{}, maxSimulatedIterations)
		if err != nil {
			return fmt.Errorf("game %d: %w", i+1, err)
		}

		wins[res.Winner.Name]++
		turns += res.Turns
		loser := res.Standings[len(res.Standings)-1]
		fmt.Fprintf(w, "%4d  %-6s %2d - %-2d %-6s  %3d turns\n",
			i+1, res.Winner.Name, res.Winner.Books, loser.Books, loser.Name, res.Turns)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, colorize.CyanString("Wins: ")+
		colorize.HiWhiteString("North %d, South %d", wins["North"], wins["South"]))
	fmt.Fprintln(w, colorize.CyanString("Average turns: ")+
		colorize.HiWhiteString("%.1f", float64(turns)/float64(games)))
	return nil
}
