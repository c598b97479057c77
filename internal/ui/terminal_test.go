package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	colorize "github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/gofish/internal/card"
	"github.com/arcanaland/gofish/internal/game"
)

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

func newTestTerminal(input string, size [2]int) (*Terminal, *bytes.Buffer) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader(input), &out, "v1.0.0")
	term.Size = func() (int, int) { return size[0], size[1] }
	return term, &out
}

func TestParseRequest(t *testing.T) {
	tests := []struct {
		input string
		want  game.Request
	}{
		{"7", game.Request{Kind: game.RequestAsk, Rank: 7}},
		{"Queen", game.Request{Kind: game.RequestAsk, Rank: card.Queen}},
		{"a", game.Request{Kind: game.RequestAsk, Rank: card.Ace}},
		{"banana", game.Request{Kind: game.RequestAsk, Rank: card.Invalid}},
		{"1", game.Request{Kind: game.RequestAsk, Rank: card.Invalid}},
		{"?hand", game.Request{Kind: game.RequestShowHand}},
		{"?deck_len", game.Request{Kind: game.RequestShowDeck}},
		{"?DECK", game.Request{Kind: game.RequestShowDeck}},
		{"?", game.Request{Kind: game.RequestHelp}},
		{"?quit", game.Request{Kind: game.RequestQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRequest(tt.input))
		})
	}
}

func TestReadRequest(t *testing.T) {
	term, out := newTestTerminal("k\n?hand\n9", [2]int{80, 24})

	req, err := term.ReadRequest()
	require.NoError(t, err)
	assert.Equal(t, card.King, req.Rank)
	assert.Contains(t, stripAnsi(out.String()), prompt)

	req, err = term.ReadRequest()
	require.NoError(t, err)
	assert.Equal(t, game.RequestShowHand, req.Kind)

	// last line without a trailing newline still counts
	req, err = term.ReadRequest()
	require.NoError(t, err)
	assert.Equal(t, card.Rank(9), req.Rank)

	_, err = term.ReadRequest()
	assert.ErrorIs(t, err, io.EOF)
}

func TestAskName(t *testing.T) {
	term, _ := newTestTerminal("  Ada \n", [2]int{80, 24})
	name, err := term.AskName()
	require.NoError(t, err)
	assert.Equal(t, "Ada", name)

	term, _ = newTestTerminal("\n", [2]int{80, 24})
	name, err = term.AskName()
	require.NoError(t, err)
	assert.Equal(t, DefaultPlayerName, name)

	term, _ = newTestTerminal("", [2]int{80, 24})
	_, err = term.AskName()
	assert.Error(t, err)
}

func testView() game.View {
	return game.View{
		Turn:     3,
		DeckSize: 30,
		Current:  "Ada",
		Standings: []game.Standing{
			{Name: "Computer", Books: 2, IsCPU: true},
			{Name: "Ada", Books: 1},
		},
		Hand: []card.Card{
			{Suit: card.Heart, Rank: card.Queen},
			{Suit: card.Clover, Rank: 10},
		},
		HandOwner: "Ada",
		Events: []game.Event{
			{Turn: 2, Kind: game.EventFish, Text: "Computer asked Ada for 5s. Go fish!"},
			{Turn: 3, Kind: game.EventCaught, Text: "Ada asked Computer for Queens and got 1"},
		},
	}
}

func TestRenderLayout(t *testing.T) {
	term, out := newTestTerminal("", [2]int{80, 24})

	require.NoError(t, term.Render(testView()))

	screen := stripAnsi(out.String())
	assert.True(t, strings.HasPrefix(out.String(), clearScreen))
	assert.Contains(t, screen, "Go Fish v1.0.0")
	assert.Contains(t, screen, "Deck: 30 cards")
	assert.Contains(t, screen, "Computer (cpu)")
	assert.Contains(t, screen, "♥Q ♣10")

	// the log sits on the last rows above the prompt
	lines := strings.Split(strings.TrimSuffix(screen, "\n"), "\n")
	require.Len(t, lines, 23)
	assert.Equal(t, "  Computer asked Ada for 5s. Go fish!", lines[21])
	assert.Equal(t, "  Ada asked Computer for Queens and got 1", lines[22])
}

func TestRenderSmallTerminal(t *testing.T) {
	term, out := newTestTerminal("", [2]int{80, 5})

	require.NoError(t, term.Render(testView()))

	screen := stripAnsi(out.String())
	assert.Contains(t, screen, "Books:")
	assert.Contains(t, screen, "Ada asked Computer for Queens and got 1")
}

func TestHandLinesWrap(t *testing.T) {
	hand := make([]card.Card, 0, 13)
	for r := card.MinRank; r <= card.MaxRank; r++ {
		hand = append(hand, card.Card{Suit: card.Spade, Rank: r})
	}

	lines := handLines(hand, 20)

	require.Greater(t, len(lines), 1)
	count := 0
	for _, l := range lines {
		plain := stripAnsi(l)
		assert.LessOrEqual(t, len([]rune(strings.TrimRight(plain, " "))), 20)
		count += len(strings.Fields(plain))
	}
	assert.Equal(t, 13, count)
}

func TestEventLinesFade(t *testing.T) {
	saved := colorize.NoColor
	colorize.NoColor = false
	defer func() { colorize.NoColor = saved }()

	events := []game.Event{
		{Kind: game.EventBook, Text: "old"},
		{Kind: game.EventBook, Text: "new"},
	}
	lines := eventLines(events)

	require.Len(t, lines, 2)
	assert.NotEqual(t, lines[0][:20], lines[1][:20])
	assert.Equal(t, "  new", stripAnsi(lines[1]))
	assert.Equal(t, ansiColorString("  new", eventColors[game.EventBook]), lines[1])
}

func TestEventLinesNoColor(t *testing.T) {
	saved := colorize.NoColor
	colorize.NoColor = true
	defer func() { colorize.NoColor = saved }()

	lines := eventLines([]game.Event{{Kind: game.EventInfo, Text: "hello"}})
	assert.Equal(t, []string{"  hello"}, lines)
}

func TestGameOver(t *testing.T) {
	term, out := newTestTerminal("", [2]int{80, 24})

	err := term.GameOver(game.Result{
		Winner: game.Standing{Name: "Ada", Books: 8},
		Standings: []game.Standing{
			{Name: "Ada", Books: 8},
			{Name: "Computer", Books: 5},
		},
	})
	require.NoError(t, err)

	screen := stripAnsi(out.String())
	assert.Contains(t, screen, "Game over!")
	assert.Contains(t, screen, "Ada wins with 8 books.")
}

func TestGameOverQuit(t *testing.T) {
	term, out := newTestTerminal("", [2]int{80, 24})

	err := term.GameOver(game.Result{Quit: true, Winner: game.Standing{Name: "Computer", Books: 1}})
	require.NoError(t, err)

	screen := stripAnsi(out.String())
	assert.Contains(t, screen, "Game abandoned")
	assert.Contains(t, screen, "Computer was leading with 1 books.")
}
