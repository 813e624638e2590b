package engine

import (
	"fmt"
	"strings"
)

var suitNames = [NumSuits]string{"Clubs", "Diamonds", "Hearts", "Spades"}

var rankNames = [NumRanks]string{
	"Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Jack", "Queen", "King",
}

// SuitName returns the plural suit name ("Hearts") or "" for an unknown suit.
func SuitName(suit uint8) string {
	if suit&^suitMask != 0 {
		return ""
	}
	c := NewCard(suit, RankAce)
	slot, ok := c.suitSlot()
	if !ok {
		return ""
	}
	return suitNames[slot]
}

// RankName returns the rank name ("Queen") or "" for an unknown rank.
func RankName(rank uint8) string {
	if rank < RankAce || rank > RankKing {
		return ""
	}
	return rankNames[rank-1]
}

// String renders the card as "<Rank> of <Suit>", e.g. "Queen of Hearts".
func (c Card) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Invalid card (%#04x)", uint8(c))
	}
	return RankName(c.Rank()) + " of " + SuitName(c.Suit())
}

// rankLetter converts a rank to its single-character code.
func rankLetter(rank uint8) string {
	switch rank {
	case RankAce:
		return "A"
	case RankTen:
		return "T"
	case RankJack:
		return "J"
	case RankQueen:
		return "Q"
	case RankKing:
		return "K"
	default:
		if rank >= RankTwo && rank <= RankNine {
			return string(rune('0' + rank))
		}
		return "?"
	}
}

// suitLetter converts a suit bit to its single-character code.
func suitLetter(suit uint8) string {
	switch suit {
	case SuitClubs:
		return "C"
	case SuitDiamonds:
		return "D"
	case SuitHearts:
		return "H"
	case SuitSpades:
		return "S"
	default:
		return "?"
	}
}

// Short renders the two-character code of the card, e.g. "QH" or "TC".
func (c Card) Short() string {
	return rankLetter(c.Rank()) + suitLetter(c.Suit())
}

// ParseCard parses the short form produced by Short. Input is
// case-insensitive and "10" is accepted for ten.
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return NoCard, fmt.Errorf("%w: %q", ErrInvalidIdentifier, s)
	}
	rankStr, suitStr := s[:len(s)-1], s[len(s)-1:]
	if rankStr == "10" {
		rankStr = "T"
	}

	var rank, suit uint8
	for _, r := range Ranks {
		if rankLetter(r) == rankStr {
			rank = r
			break
		}
	}
	for _, su := range Suits {
		if suitLetter(su) == suitStr {
			suit = su
			break
		}
	}
	if rank == 0 || suit == 0 {
		return NoCard, fmt.Errorf("%w: %q", ErrInvalidIdentifier, s)
	}
	return NewCard(suit, rank), nil
}
