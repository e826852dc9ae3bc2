package poker

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Card suit constants (0-3), matching the deck grid's suit rows.
const (
	Club    = 0 // ♣ (black)
	Diamond = 1 // ♦ (red)
	Heart   = 2 // ♥ (red)
	Spade   = 3 // ♠ (black)
)

// Card rank constants for face cards and ace. Ranks run 2..14 with
// the ace high.
const (
	Jack  = 11 // J
	Queen = 12 // Q
	King  = 13 // K
	Ace   = 14 // A
)

// Card represents a playing card with suit and rank.
type Card struct {
	suit uint8 // 0-3: clubs, diamonds, hearts, spades
	rank uint8 // 2-14: deuce through ace
}

// NewCard creates a new Card with validation.
func NewCard(suit uint8, rank uint8) (Card, error) {
	if suit > Spade || rank < 2 || rank > Ace {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}

	return Card{
		suit: suit,
		rank: rank,
	}, nil
}

// RankFromFace converts a face column index of the deck grid into a
// rank. Face 0 is the ace and maps to 14; faces 1..12 map to 2..13.
func RankFromFace(face int) (uint8, error) {
	if face < 0 || face >= 13 {
		return 0, fmt.Errorf("invalid face index %d", face)
	}
	if face == 0 {
		return Ace, nil
	}
	return uint8(face + 1), nil
}

// Suit returns the suit value of the Card (0-3: clubs, diamonds, hearts, spades).
func (c Card) Suit() uint8 {
	return c.suit
}

// Rank returns the rank value of the Card (2-14: deuce through ace).
func (c Card) Rank() uint8 {
	return c.rank
}

// SuitName returns the full English suit name.
func SuitName(suit uint8) string {
	switch suit {
	case Club:
		return "Clubs"
	case Diamond:
		return "Diamonds"
	case Heart:
		return "Hearts"
	case Spade:
		return "Spades"
	default:
		return "?"
	}
}

// String returns a human-readable representation of the Card using suit
// symbols (♣, ♦, ♥, ♠) and rank abbreviations (A, J, Q, K, or number).
func (c Card) String() string {
	var suit string
	switch c.suit {
	case Club:
		suit = pterm.Black("♣")
	case Diamond:
		suit = pterm.LightRed("♦")
	case Heart:
		suit = pterm.LightRed("♥")
	case Spade:
		suit = pterm.Black("♠")
	default:
		suit = "?"
	}

	var rankStr string
	switch c.rank {
	case Ace:
		rankStr = "A"
	case Jack:
		rankStr = "J"
	case Queen:
		rankStr = "Q"
	case King:
		rankStr = "K"
	default:
		rankStr = fmt.Sprintf("%d", c.rank)
	}
	return rankStr + suit
}
