package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/gofish/internal/card"
	"github.com/arcanaland/gofish/internal/game"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	clearScreen = "\x1b[H\x1b[2J"
	prompt      = "Ask for a card (2-10, J, Q, K, A) or ?help: "
)

// DefaultPlayerName is used when the name prompt is left blank
const DefaultPlayerName = "Player"

var (
	titleStyle  = colorize.New(colorize.FgHiCyan, colorize.Bold)
	labelStyle  = colorize.New(colorize.FgCyan)
	valueStyle  = colorize.New(colorize.FgHiWhite)
	redSuit     = colorize.New(colorize.FgHiRed)
	blackSuit   = colorize.New(colorize.FgHiWhite)
	leaderStyle = colorize.New(colorize.FgHiYellow, colorize.Bold)
)

// Terminal draws the table on a terminal and reads requests from a line reader
type Terminal struct {
	in      *bufio.Reader
	out     io.Writer
	version string

	// Size reports the terminal width and height
	Size func() (int, int)
}

// NewTerminal creates a frontend reading from in and drawing to out
func NewTerminal(in io.Reader, out io.Writer, version string) *Terminal {
	t := &Terminal{
		in:      bufio.NewReader(in),
		out:     out,
		version: version,
	}
	t.Size = t.detectSize
	return t
}

// detectSize asks the terminal for its size, falling back to 80x24
func (t *Terminal) detectSize() (int, int) {
	f, ok := t.out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth, defaultHeight
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return defaultWidth, defaultHeight
	}
	return width, height
}

// AskName prompts for the human player's name
func (t *Terminal) AskName() (string, error) {
	fmt.Fprintln(t.out, titleStyle.Sprint("Welcome to Go Fish"))
	fmt.Fprint(t.out, "Please enter your name: ")

	line, err := t.readLine()
	if err != nil {
		return "", fmt.Errorf("unable to read your name: %w", err)
	}
	if line == "" {
		return DefaultPlayerName, nil
	}
	return line, nil
}

// ReadRequest prompts for and parses one request
func (t *Terminal) ReadRequest() (game.Request, error) {
	fmt.Fprint(t.out, labelStyle.Sprint(prompt))

	line, err := t.readLine()
	if err != nil {
		return game.Request{}, err
	}
	return ParseRequest(line), nil
}

// readLine returns one trimmed line. A final line without a newline is
// accepted; EOF with nothing read is an error.
func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ParseRequest maps a line of input to a request. Anything that is neither a
// command nor a rank becomes an ask for card.Invalid.
func ParseRequest(line string) game.Request {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "?hand":
		return game.Request{Kind: game.RequestShowHand}
	case "?deck", "?deck_len":
		return game.Request{Kind: game.RequestShowDeck}
	case "?", "?help":
		return game.Request{Kind: game.RequestHelp}
	case "?quit", "?q":
		return game.Request{Kind: game.RequestQuit}
	}
	return game.Request{Kind: game.RequestAsk, Rank: card.ParseRank(line)}
}

// Render redraws the whole screen. The event log is anchored to the bottom,
// just above the prompt line.
func (t *Terminal) Render(v game.View) error {
	width, height := t.Size()

	header := t.headerLines(v, width)
	events := eventLines(v.Events)

	var b strings.Builder
	b.WriteString(clearScreen)
	for _, line := range header {
		b.WriteString(line)
		b.WriteString("\n")
	}

	// one row is kept for the prompt
	if gap := height - 1 - len(header) - len(events); gap > 0 {
		b.WriteString(strings.Repeat("\n", gap))
	}
	for _, line := range events {
		b.WriteString(line)
		b.WriteString("\n")
	}

	_, err := io.WriteString(t.out, b.String())
	return err
}

func (t *Terminal) headerLines(v game.View, width int) []string {
	lines := []string{
		titleStyle.Sprintf("Go Fish %s", t.version),
		labelStyle.Sprint("Deck: ") + valueStyle.Sprintf("%d cards", v.DeckSize) +
			labelStyle.Sprint("   Turn: ") + valueStyle.Sprintf("%d (%s)", v.Turn, v.Current),
		"",
		labelStyle.Sprint("Books:"),
	}

	for i, s := range v.Standings {
		name := s.Name
		if s.IsCPU {
			name += " (cpu)"
		}
		row := fmt.Sprintf("  %-20s %2d", name, s.Books)
		if i == 0 && s.Books > 0 {
			row = leaderStyle.Sprint(row)
		}
		lines = append(lines, row)
	}

	lines = append(lines, "", labelStyle.Sprintf("%s's hand (%d):", v.HandOwner, len(v.Hand)))
	if len(v.Hand) == 0 {
		lines = append(lines, "  (no cards)")
	}
	lines = append(lines, handLines(v.Hand, width)...)
	return lines
}

// handLines lays the hand out in rows that fit width, two leading spaces each
func handLines(hand []card.Card, width int) []string {
	if width < 10 {
		width = defaultWidth
	}

	var lines []string
	var row strings.Builder
	visible := 0
	for _, c := range hand {
		label := c.String()
		n := len([]rune(label)) + 1
		if visible > 0 && 2+visible+n > width {
			lines = append(lines, "  "+row.String())
			row.Reset()
			visible = 0
		}
		row.WriteString(suitStyle(c.Suit).Sprint(label))
		row.WriteString(" ")
		visible += n
	}
	if visible > 0 {
		lines = append(lines, "  "+row.String())
	}
	return lines
}

func suitStyle(s card.Suit) *colorize.Color {
	if s.IsRed() {
		return redSuit
	}
	return blackSuit
}

// GameOver clears the screen and names the winner
func (t *Terminal) GameOver(res game.Result) error {
	var b strings.Builder
	b.WriteString(clearScreen)

	if res.Quit {
		b.WriteString(titleStyle.Sprint("Game abandoned"))
		b.WriteString("\n")
		if res.Winner.Books > 0 {
			fmt.Fprintf(&b, "%s was leading with %d books.\n", res.Winner.Name, res.Winner.Books)
		}
	} else {
		b.WriteString(titleStyle.Sprint("Game over!"))
		b.WriteString("\n")
		b.WriteString(leaderStyle.Sprintf("%s wins with %d books.", res.Winner.Name, res.Winner.Books))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for _, s := range res.Standings {
		fmt.Fprintf(&b, "  %-20s %2d\n", s.Name, s.Books)
	}

	_, err := io.WriteString(t.out, b.String())
	return err
}
