package card

import (
	"fmt"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Heart Suit = iota
	Diamond
	Spade
	Clover
)

// Suits lists every suit in display order
var Suits = []Suit{Heart, Diamond, Spade, Clover}

// String returns the suit symbol
func (s Suit) String() string {
	switch s {
	case Heart:
		return "♥"
	case Diamond:
		return "♦"
	case Spade:
		return "♠"
	case Clover:
		return "♣"
	default:
		return "•"
	}
}

// Name returns the suit name
func (s Suit) Name() string {
	switch s {
	case Heart:
		return "hearts"
	case Diamond:
		return "diamonds"
	case Spade:
		return "spades"
	case Clover:
		return "clovers"
	default:
		return "unknown"
	}
}

// IsRed reports whether the suit is printed in red
func (s Suit) IsRed() bool {
	return s == Heart || s == Diamond
}

// Rank is the face value of a card, 2 through 14
type Rank int

const (
	// Invalid is returned for input that does not name a rank
	Invalid Rank = 0

	Two   Rank = 2
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14

	MinRank = Two
	MaxRank = Ace
)

// NumRanks is the number of distinct ranks, and so the number of books in a game
const NumRanks = int(MaxRank-MinRank) + 1

// Valid reports whether r is within 2..14
func (r Rank) Valid() bool {
	return r >= MinRank && r <= MaxRank
}

// String returns the short label (2-10, J, Q, K, A)
func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return strconv.Itoa(int(r))
	}
}

// Name returns the long name used in event messages
func (r Rank) Name() string {
	switch r {
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	default:
		return strconv.Itoa(int(r))
	}
}

var faceAliases = map[string]Rank{
	"j":     Jack,
	"jack":  Jack,
	"q":     Queen,
	"queen": Queen,
	"k":     King,
	"king":  King,
	"a":     Ace,
	"ace":   Ace,
}

// ParseRank maps console input to a rank. Anything that is not 2-14 or a
// face alias yields Invalid.
func ParseRank(input string) Rank {
	s := strings.ToLower(strings.TrimSpace(input))
	if r, ok := faceAliases[s]; ok {
		return r
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Invalid
	}
	r := Rank(n)
	if !r.Valid() {
		return Invalid
	}
	return r
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// String returns the display label, e.g. "♥Q"
func (c Card) String() string {
	return c.Suit.String() + c.Rank.String()
}

// Name returns a readable name, e.g. "Queen of hearts"
func (c Card) Name() string {
	return fmt.Sprintf("%s of %s", c.Rank.Name(), c.Suit.Name())
}

// Less orders cards by suit, then rank
func Less(a, b Card) bool {
	if a.Suit != b.Suit {
		return a.Suit < b.Suit
	}
	return a.Rank < b.Rank
}

// Compare is the three-way form of Less, for slices.SortFunc
func Compare(a, b Card) int {
	switch {
	case Less(a, b):
		return -1
	case Less(b, a):
		return 1
	default:
		return 0
	}
}
