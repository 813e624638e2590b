// Package engine implements the mechanical core of a cribbage game: packed
// card identifiers, a 52-card deck drawn without replacement and a 121-hole
// scoring board.
//
// Nothing in this package is safe for concurrent mutation. Each game session
// owns its own Deck and Board.
package engine

import (
	"fmt"
	"math/bits"
)

// Suit constants: one bit each in the upper 4 bits of Card.
const (
	SuitClubs    uint8 = 0x10
	SuitDiamonds uint8 = 0x20
	SuitHearts   uint8 = 0x40
	SuitSpades   uint8 = 0x80
)

// Rank constants, packed into the lower 4 bits of Card.
const (
	RankAce   uint8 = 1
	RankTwo   uint8 = 2
	RankThree uint8 = 3
	RankFour  uint8 = 4
	RankFive  uint8 = 5
	RankSix   uint8 = 6
	RankSeven uint8 = 7
	RankEight uint8 = 8
	RankNine  uint8 = 9
	RankTen   uint8 = 10
	RankJack  uint8 = 11
	RankQueen uint8 = 12
	RankKing  uint8 = 13
)

const (
	NumSuits = 4
	NumRanks = 13
	DeckSize = NumSuits * NumRanks

	suitMask uint8 = 0xF0
	rankMask uint8 = 0x0F
)

// Suits lists the suit bits in suit order (clubs < diamonds < hearts < spades).
var Suits = [NumSuits]uint8{SuitClubs, SuitDiamonds, SuitHearts, SuitSpades}

// Ranks lists the ranks in rank order (ace < two < ... < king).
var Ranks = [NumRanks]uint8{
	RankAce, RankTwo, RankThree, RankFour, RankFive, RankSix, RankSeven,
	RankEight, RankNine, RankTen, RankJack, RankQueen, RankKing,
}

// Card is a packed uint8: upper 4 bits = one suit bit, lower 4 bits = rank.
type Card uint8

// NoCard is the all-zero sentinel returned when no card could be produced.
const NoCard Card = 0

// NewCard constructs a Card from a suit bit and a rank.
func NewCard(suit, rank uint8) Card {
	return Card((suit & suitMask) | (rank & rankMask))
}

// Suit returns the suit bits (upper 4).
func (c Card) Suit() uint8 { return uint8(c) & suitMask }

// Rank returns the rank bits (lower 4).
func (c Card) Rank() uint8 { return uint8(c) & rankMask }

// Valid reports whether exactly one suit bit is set and the rank is in [1,13].
func (c Card) Valid() bool {
	_, ok := decode(c)
	return ok
}

// suitSlot returns the position of c's suit in Suits.
func (c Card) suitSlot() (int, bool) {
	s := c.Suit()
	if bits.OnesCount8(s) != 1 {
		return 0, false
	}
	return bits.TrailingZeros8(s) - 4, true
}

// AllCards returns the 52 cards in draw-index order.
func AllCards() [DeckSize]Card {
	var out [DeckSize]Card
	for i := range out {
		out[i], _ = encode(i + 1)
	}
	return out
}

// ---------------------------------------------------------------------------
// Draw index codec
// ---------------------------------------------------------------------------

// Encode returns the card for draw index idx in [1,52]. Index 1 is the ace of
// clubs, 13 the king of clubs, 14 the ace of diamonds and 52 the king of spades.
// Out-of-range indices yield NoCard and an ErrInvalidIndex error.
func Encode(idx int) (Card, error) {
	c, ok := encode(idx)
	if !ok {
		pkgLogger().WithField("index", idx).Warn("no card for draw index")
		return NoCard, fmt.Errorf("%w: %d not in [1,%d]", ErrInvalidIndex, idx, DeckSize)
	}
	return c, nil
}

// Decode returns the draw index of c. Malformed cards yield ErrInvalidIdentifier.
func Decode(c Card) (int, error) {
	idx, ok := decode(c)
	if !ok {
		pkgLogger().WithField("card", fmt.Sprintf("%#04x", uint8(c))).Warn("malformed card identifier")
		return 0, fmt.Errorf("%w: %#04x", ErrInvalidIdentifier, uint8(c))
	}
	return idx, nil
}

func encode(idx int) (Card, bool) {
	if idx < 1 || idx > DeckSize {
		return NoCard, false
	}
	slot := (idx - 1) / NumRanks
	rank := uint8((idx-1)%NumRanks + 1)
	return Card(Suits[slot] | rank), true
}

func decode(c Card) (int, bool) {
	slot, ok := c.suitSlot()
	if !ok {
		return 0, false
	}
	r := c.Rank()
	if r < RankAce || r > RankKing {
		return 0, false
	}
	return slot*NumRanks + int(r), true
}
