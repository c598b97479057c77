package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/arcanaland/gofish/internal/card"
	"github.com/arcanaland/gofish/internal/deck"
	"github.com/arcanaland/gofish/internal/player"
)

// HandSize is the number of cards dealt to each player
const HandSize = 7

// ErrNotDealt is returned when a turn is resolved before the deal
var ErrNotDealt = errors.New("cards have not been dealt")

// OutcomeKind describes how a turn request resolved
type OutcomeKind int

const (
	// OutcomeInvalidRank means the rank was outside 2..14
	OutcomeInvalidRank OutcomeKind = iota
	// OutcomeNotHeld means a human asked for a rank they do not hold
	OutcomeNotHeld
	// OutcomeCaught means the opponent handed over every card of the rank
	OutcomeCaught
	// OutcomeFished means the requester drew from the deck
	OutcomeFished
	// OutcomeDeckEmpty means the opponent had none and nothing was left to draw
	OutcomeDeckEmpty
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeInvalidRank:
		return "invalid_rank"
	case OutcomeNotHeld:
		return "not_held"
	case OutcomeCaught:
		return "caught"
	case OutcomeFished:
		return "fished"
	case OutcomeDeckEmpty:
		return "deck_empty"
	default:
		return "unknown"
	}
}

// Outcome is the result of resolving one request
type Outcome struct {
	Kind        OutcomeKind
	Rank        card.Rank
	Transferred []card.Card
	Drawn       []card.Card
	Books       []player.Book
	Advanced    bool
}

// Standing is one row of the scoreboard
type Standing struct {
	Name  string
	Books int
	IsCPU bool
}

// Options configures a new game
type Options struct {
	// Players sits exactly two players; the first one moves first
	Players [2]*player.Player
	Rand    *rand.Rand
	// LogLines bounds the rolling event log
	LogLines int
	Logger   zerolog.Logger
}

// Game owns the deck and both players for the lifetime of a match
type Game struct {
	ID      string
	Deck    *deck.Deck
	Players [2]*player.Player
	Log     *EventLog

	// Turn counts completed turns, starting at 1
	Turn    int
	current int
	dealt   bool
	logger  zerolog.Logger
}

// New creates a game with a full deck and no cards dealt
func New(opts Options) (*Game, error) {
	for i, p := range opts.Players {
		if p == nil {
			return nil, fmt.Errorf("player %d is missing", i+1)
		}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	id := ulid.Make().String()
	g := &Game{
		ID:      id,
		Deck:    deck.New(opts.Rand),
		Players: opts.Players,
		Log:     NewEventLog(opts.LogLines),
		Turn:    1,
		logger:  opts.Logger.With().Str("game_id", id).Logger(),
	}
	return g, nil
}

// Deal gives each player HandSize cards
func (g *Game) Deal() error {
	for _, p := range g.Players {
		cards, err := g.Deck.DrawRandom(HandSize)
		if err != nil {
			return fmt.Errorf("dealing to %s: %w", p.Name, err)
		}
		p.Give(cards...)
	}
	g.dealt = true
	g.logger.Info().
		Str("player", g.Players[0].Name).
		Str("opponent", g.Players[1].Name).
		Int("deck", g.Deck.Len()).
		Msg("cards dealt")
	return nil
}

// Current returns the player whose turn it is
func (g *Game) Current() *player.Player {
	return g.Players[g.current]
}

// Opponent returns the player who is being asked
func (g *Game) Opponent() *player.Player {
	return g.Players[1-g.current]
}

// Human returns the first human seated, or the first player when both are CPUs
func (g *Game) Human() *player.Player {
	for _, p := range g.Players {
		if !p.IsCPU {
			return p
		}
	}
	return g.Players[0]
}

// CollectBooks runs book detection for both players
func (g *Game) CollectBooks() {
	for _, p := range g.Players {
		g.collectBooks(p)
	}
}

func (g *Game) collectBooks(p *player.Player) []player.Book {
	books := p.CollectBooks()
	for _, b := range books {
		g.Log.Add(g.Turn, EventBook, "%s completed a book of %ss", p.Name, b.Rank.Name())
		g.logger.Debug().Str("player", p.Name).Stringer("rank", b.Rank).Int("books", p.BookCount()).Msg("book completed")
	}
	return books
}

// Resolve plays one request for the current player
func (g *Game) Resolve(rank card.Rank) (Outcome, error) {
	if !g.dealt {
		return Outcome{}, ErrNotDealt
	}

	requester, opponent := g.Current(), g.Opponent()
	out := Outcome{Rank: rank}

	if !rank.Valid() {
		out.Kind = OutcomeInvalidRank
		g.Log.Add(g.Turn, EventRejected, "%s is not a card value, ask for 2-10, J, Q, K or A", describeRank(rank))
		g.logOutcome(requester, out)
		return out, nil
	}

	if !requester.IsCPU && !requester.Holds(rank) {
		out.Kind = OutcomeNotHeld
		g.Log.Add(g.Turn, EventRejected, "You can only ask for a %s if you hold one", rank.Name())
		g.logOutcome(requester, out)
		return out, nil
	}

	if taken := opponent.TakeRank(rank); len(taken) > 0 {
		requester.Give(taken...)
		out.Kind = OutcomeCaught
		out.Transferred = taken
		g.Log.Add(g.Turn, EventCaught, "%s asked %s for %ss and got %d", requester.Name, opponent.Name, rank.Name(), len(taken))
		out.Books = g.checkAfterTransfer(requester, opponent)
		g.logOutcome(requester, out)
		return out, nil
	}

	drawn, err := g.Deck.DrawRandom(1)
	switch {
	case errors.Is(err, deck.ErrDeckExhausted):
		out.Kind = OutcomeDeckEmpty
		g.Log.Add(g.Turn, EventFish, "%s asked %s for %ss. Go fish! The deck is empty", requester.Name, opponent.Name, rank.Name())
	case err != nil:
		return out, err
	default:
		requester.Give(drawn...)
		out.Kind = OutcomeFished
		out.Drawn = drawn
		g.Log.Add(g.Turn, EventFish, "%s asked %s for %ss. Go fish!", requester.Name, opponent.Name, rank.Name())
		if !requester.IsCPU {
			g.Log.Add(g.Turn, EventFish, "You drew the %s", drawn[0].Name())
		}
		out.Books = g.checkAfterTransfer(requester, opponent)
	}

	out.Advanced = true
	g.logOutcome(requester, out)
	g.advance()
	return out, nil
}

// ResolveEmptyHand handles a turn for a player with no cards: they draw one
// card when the deck allows it and the turn passes.
func (g *Game) ResolveEmptyHand() (Outcome, error) {
	if !g.dealt {
		return Outcome{}, ErrNotDealt
	}

	requester := g.Current()
	out := Outcome{Kind: OutcomeDeckEmpty, Rank: card.Invalid, Advanced: true}

	drawn, err := g.Deck.DrawRandom(1)
	switch {
	case errors.Is(err, deck.ErrDeckExhausted):
		g.Log.Add(g.Turn, EventInfo, "%s has no cards and the deck is empty", requester.Name)
	case err != nil:
		return out, err
	default:
		requester.Give(drawn...)
		out.Kind = OutcomeFished
		out.Drawn = drawn
		g.Log.Add(g.Turn, EventFish, "%s has no cards and draws one", requester.Name)
		out.Books = g.collectBooks(requester)
	}

	g.logOutcome(requester, out)
	g.advance()
	return out, nil
}

func (g *Game) checkAfterTransfer(requester, opponent *player.Player) []player.Book {
	books := g.collectBooks(requester)
	return append(books, g.collectBooks(opponent)...)
}

func (g *Game) advance() {
	g.current = 1 - g.current
	g.Turn++
	// the view keeps the last two turns: the human's own and the reply to it
	g.Log.DropBefore(g.Turn - 2)
}

func (g *Game) logOutcome(p *player.Player, out Outcome) {
	g.logger.Debug().
		Int("turn", g.Turn).
		Str("player", p.Name).
		Bool("cpu", p.IsCPU).
		Int("rank", int(out.Rank)).
		Stringer("outcome", out.Kind).
		Int("transferred", len(out.Transferred)).
		Int("drawn", len(out.Drawn)).
		Bool("advanced", out.Advanced).
		Int("deck", g.Deck.Len()).
		Msg("turn resolved")
}

// Standings orders players by books descending, then name ascending
func (g *Game) Standings() []Standing {
	out := make([]Standing, 0, len(g.Players))
	for _, p := range g.Players {
		out = append(out, Standing{Name: p.Name, Books: p.BookCount(), IsCPU: p.IsCPU})
	}
	slices.SortStableFunc(out, func(a, b Standing) int {
		if a.Books != b.Books {
			return b.Books - a.Books
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// TotalBooks returns the books completed by all players
func (g *Game) TotalBooks() int {
	total := 0
	for _, p := range g.Players {
		total += p.BookCount()
	}
	return total
}

// Finished reports whether every rank has been booked
func (g *Game) Finished() bool {
	return g.TotalBooks() >= card.NumRanks
}

// CardsAccounted returns deck, hand and book cards combined; 52 for a sound game
func (g *Game) CardsAccounted() int {
	n := g.Deck.Len()
	for _, p := range g.Players {
		n += len(p.Hand) + player.BookSize*p.BookCount()
	}
	return n
}

func describeRank(r card.Rank) string {
	if r == card.Invalid {
		return "That"
	}
	return fmt.Sprintf("%d", int(r))
}
