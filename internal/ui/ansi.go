package ui

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcanaland/gofish/internal/game"
)

var (
	fadeTarget = colorful.Color{R: 0.35, G: 0.35, B: 0.35}

	eventColors = map[game.EventKind]colorful.Color{
		game.EventInfo:     {R: 0.85, G: 0.85, B: 0.85},
		game.EventCaught:   {R: 0.35, G: 0.9, B: 0.45},
		game.EventFish:     {R: 0.35, G: 0.65, B: 1.0},
		game.EventBook:     {R: 1.0, G: 0.85, B: 0.25},
		game.EventRejected: {R: 1.0, G: 0.4, B: 0.35},
	}
)

// eventLines colours the log, newest line brightest. Older lines are blended
// towards grey in Lab space.
func eventLines(events []game.Event) []string {
	lines := make([]string, len(events))
	for i, e := range events {
		text := "  " + e.Text
		if colorize.NoColor {
			lines[i] = text
			continue
		}

		age := len(events) - 1 - i
		base, ok := eventColors[e.Kind]
		if !ok {
			base = eventColors[game.EventInfo]
		}
		lines[i] = ansiColorString(text, fadeColor(base, age, len(events)))
	}
	return lines
}

// fadeColor blends c towards grey by age, the oldest of n lines fading most
func fadeColor(c colorful.Color, age, n int) colorful.Color {
	if n <= 1 || age <= 0 {
		return c
	}
	t := 0.7 * float64(age) / float64(n-1)
	return c.BlendLab(fadeTarget, t).Clamped()
}

// ansiColorString wraps text in a 24-bit foreground colour
func ansiColorString(text string, c colorful.Color) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, text)
}
