package deck

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/arcanaland/gofish/internal/card"
)

// Size is the number of cards in a full deck
const Size = 52

// ErrDeckExhausted is returned when a draw asks for more cards than remain
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck is the draw pile. It is created full and only ever shrinks.
type Deck struct {
	cards []card.Card
	rng   *rand.Rand
}

// New creates a full 52 card deck that draws using rng
func New(rng *rand.Rand) *Deck {
	cards := make([]card.Card, 0, Size)
	for _, suit := range card.Suits {
		for rank := card.MinRank; rank <= card.MaxRank; rank++ {
			cards = append(cards, card.Card{Suit: suit, Rank: rank})
		}
	}

	return &Deck{cards: cards, rng: rng}
}

// NewSeeded creates a deck whose draws are reproducible for the given seed
func NewSeeded(seed uint64) *Deck {
	return New(NewRand(seed))
}

// NewRand returns the generator used for a seeded game
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Len returns the number of cards left
func (d *Deck) Len() int {
	return len(d.cards)
}

// Empty reports whether the deck has no cards left
func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards
func (d *Deck) Cards() []card.Card {
	out := make([]card.Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// DrawRandom removes n cards chosen uniformly at random without replacement.
// The deck is left untouched when fewer than n cards remain.
func (d *Deck) DrawRandom(n int) ([]card.Card, error) {
	if n <= 0 {
		return nil, nil
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("draw %d of %d: %w", n, len(d.cards), ErrDeckExhausted)
	}

	drawn := make([]card.Card, 0, n)
	for i := 0; i < n; i++ {
		idx := d.rng.IntN(len(d.cards))
		drawn = append(drawn, d.cards[idx])

		// Order of the pile is irrelevant, swap-remove
		last := len(d.cards) - 1
		d.cards[idx] = d.cards[last]
		d.cards = d.cards[:last]
	}

	return drawn, nil
}
