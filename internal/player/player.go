package player

import (
	"slices"

	"github.com/arcanaland/gofish/internal/card"
)

// BookSize is the number of same-rank cards that complete a book
const BookSize = 4

// CPUName is the name given to the computer opponent
const CPUName = "Computer"

// Book is a completed set of all four cards of one rank
type Book struct {
	Rank card.Rank
}

// Player represents one seat at the table
type Player struct {
	Name  string
	IsCPU bool
	Hand  []card.Card
	Books []Book
}

// New creates a human player
func New(name string) *Player {
	return &Player{
		Name:  name,
		Hand:  make([]card.Card, 0, 52),
		Books: make([]Book, 0, card.NumRanks),
	}
}

// NewCPU creates the computer opponent
func NewCPU() *Player {
	p := New(CPUName)
	p.IsCPU = true
	return p
}

// Give adds cards to the hand
func (p *Player) Give(cards ...card.Card) {
	p.Hand = append(p.Hand, cards...)
}

// Holds reports whether the hand has at least one card of rank r
func (p *Player) Holds(r card.Rank) bool {
	return slices.ContainsFunc(p.Hand, func(c card.Card) bool { return c.Rank == r })
}

// TakeRank removes and returns every card of rank r
func (p *Player) TakeRank(r card.Rank) []card.Card {
	var taken []card.Card
	p.Hand = slices.DeleteFunc(p.Hand, func(c card.Card) bool {
		if c.Rank == r {
			taken = append(taken, c)
			return true
		}
		return false
	})
	return taken
}

// RankCounts counts the cards of each rank in the hand
func (p *Player) RankCounts() map[card.Rank]int {
	counts := make(map[card.Rank]int)
	for _, c := range p.Hand {
		counts[c.Rank]++
	}
	return counts
}

// CollectBooks moves every completed rank out of the hand and into Books.
// Ranks completing at the same time are booked in ascending order.
func (p *Player) CollectBooks() []Book {
	counts := p.RankCounts()

	var books []Book
	for r := card.MinRank; r <= card.MaxRank; r++ {
		if counts[r] < BookSize {
			continue
		}
		books = append(books, Book{Rank: r})
		p.TakeRank(r)
	}

	p.Books = append(p.Books, books...)
	return books
}

// BookCount returns the number of completed books
func (p *Player) BookCount() int {
	return len(p.Books)
}

// SortedHand returns a copy of the hand ordered by suit, then rank
func (p *Player) SortedHand() []card.Card {
	hand := slices.Clone(p.Hand)
	slices.SortFunc(hand, card.Compare)
	return hand
}

// HandLabels returns the display labels of the sorted hand
func (p *Player) HandLabels() []string {
	hand := p.SortedHand()
	labels := make([]string, len(hand))
	for i, c := range hand {
		labels[i] = c.String()
	}
	return labels
}

// ChooseRank picks the rank the computer asks for: the rank it holds the
// fewest copies of, lowest rank first on ties. An empty hand yields MinRank.
func (p *Player) ChooseRank() card.Rank {
	counts := p.RankCounts()

	best, bestCount := card.MinRank, 0
	for r := card.MinRank; r <= card.MaxRank; r++ {
		n := counts[r]
		if n == 0 {
			continue
		}
		if bestCount == 0 || n < bestCount {
			best, bestCount = r, n
		}
	}
	return best
}
