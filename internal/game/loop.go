package game

import (
	"errors"
	"fmt"

	"github.com/arcanaland/gofish/internal/card"
)

// ErrStalled is returned when a game runs past its iteration limit
var ErrStalled = errors.New("game did not finish within the iteration limit")

// RequestKind is what the human typed at the prompt
type RequestKind int

const (
	// RequestAsk asks the opponent for Rank; Rank is card.Invalid for bad input
	RequestAsk RequestKind = iota
	RequestShowHand
	RequestShowDeck
	RequestHelp
	RequestQuit
)

// Request is one line of human input, already parsed
type Request struct {
	Kind RequestKind
	Rank card.Rank
}

// View is everything the terminal draws for one frame
type View struct {
	Turn      int
	DeckSize  int
	Current   string
	Standings []Standing
	Hand      []card.Card
	HandOwner string
	Events    []Event
}

// Result is the end state of a game
type Result struct {
	Winner    Standing
	Standings []Standing
	Turns     int
	Quit      bool
}

// Frontend draws the table and collects the human's requests
type Frontend interface {
	Render(View) error
	ReadRequest() (Request, error)
	GameOver(Result) error
}

// Run deals the cards and plays until every rank is booked. maxIterations
// bounds the loop when positive.
func (g *Game) Run(fe Frontend, maxIterations int) (Result, error) {
	if !g.dealt {
		if err := g.Deal(); err != nil {
			return Result{}, err
		}
	}

	for i := 0; ; i++ {
		if maxIterations > 0 && i >= maxIterations {
			return Result{}, fmt.Errorf("after %d iterations: %w", i, ErrStalled)
		}

		g.CollectBooks()
		standings := g.Standings()

		if g.Finished() {
			res := Result{Winner: standings[0], Standings: standings, Turns: g.Turn}
			g.logger.Info().Str("winner", res.Winner.Name).Int("books", res.Winner.Books).Int("turns", res.Turns).Msg("game over")
			return res, fe.GameOver(res)
		}

		if err := fe.Render(g.View(standings)); err != nil {
			return Result{}, fmt.Errorf("rendering: %w", err)
		}

		quit, err := g.playTurn(fe)
		if err != nil {
			return Result{}, err
		}
		if quit {
			standings = g.Standings()
			res := Result{Winner: standings[0], Standings: standings, Turns: g.Turn, Quit: true}
			g.logger.Info().Int("turns", res.Turns).Msg("game abandoned")
			return res, fe.GameOver(res)
		}
	}
}

// playTurn resolves one request from whoever is to move
func (g *Game) playTurn(fe Frontend) (bool, error) {
	current := g.Current()

	if len(current.Hand) == 0 {
		_, err := g.ResolveEmptyHand()
		return false, err
	}

	if current.IsCPU {
		rank := current.ChooseRank()
		g.logger.Debug().Str("player", current.Name).Interface("counts", current.RankCounts()).Stringer("rank", rank).Msg("computer request")
		_, err := g.Resolve(rank)
		return false, err
	}

	req, err := fe.ReadRequest()
	if err != nil {
		return false, fmt.Errorf("reading request: %w", err)
	}

	switch req.Kind {
	case RequestShowHand:
		g.Log.Add(g.Turn, EventInfo, "You hold %d cards", len(current.Hand))
	case RequestShowDeck:
		g.Log.Add(g.Turn, EventInfo, "%d cards left in the deck", g.Deck.Len())
	case RequestHelp:
		g.Log.Add(g.Turn, EventInfo, "Ask with 2-10, J, Q, K or A. Commands: ?hand ?deck ?help ?quit")
	case RequestQuit:
		return true, nil
	default:
		_, err = g.Resolve(req.Rank)
	}
	return false, err
}

// View builds the frame shown to the human player
func (g *Game) View(standings []Standing) View {
	human := g.Human()
	return View{
		Turn:      g.Turn,
		DeckSize:  g.Deck.Len(),
		Current:   g.Current().Name,
		Standings: standings,
		Hand:      human.SortedHand(),
		HandOwner: human.Name,
		Events:    g.Log.Recent(),
	}
}
