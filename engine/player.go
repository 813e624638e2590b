package engine

import (
	"fmt"
	"strings"
)

// Player is anything that holds a hand of cards and can describe it.
type Player interface {
	Hand() []Card
	DescribeHand() string
}

const (
	// HandMaxPreShow is the hand size after the deal, before discarding to the crib.
	HandMaxPreShow = 6
	// HandMaxPostShow is the hand size once the crib discards are made.
	HandMaxPostShow = 4
)

// CribbagePlayer holds up to HandMaxPreShow cards.
type CribbagePlayer struct {
	Name string

	hand    [HandMaxPreShow]Card
	handLen uint8
}

var _ Player = (*CribbagePlayer)(nil)

// NewCribbagePlayer returns a player with an empty hand.
func NewCribbagePlayer(name string) *CribbagePlayer {
	return &CribbagePlayer{Name: name}
}

// Hand returns a copy of the cards held, in the order they were taken.
func (p *CribbagePlayer) Hand() []Card {
	out := make([]Card, p.handLen)
	copy(out, p.hand[:p.handLen])
	return out
}

// HandLen returns the number of cards held.
func (p *CribbagePlayer) HandLen() int { return int(p.handLen) }

// Holds reports whether c is in the hand.
func (p *CribbagePlayer) Holds(c Card) bool {
	return p.indexOf(c) >= 0
}

// Take adds c to the hand.
func (p *CribbagePlayer) Take(c Card) error {
	if !c.Valid() {
		return fmt.Errorf("take card: %w: %#04x", ErrInvalidIdentifier, uint8(c))
	}
	if p.handLen >= HandMaxPreShow {
		return fmt.Errorf("take %s: %w (%d cards)", c.Short(), ErrHandFull, p.handLen)
	}
	p.hand[p.handLen] = c
	p.handLen++
	return nil
}

// Discard removes c from the hand, keeping the order of the rest.
func (p *CribbagePlayer) Discard(c Card) error {
	i := p.indexOf(c)
	if i < 0 {
		return fmt.Errorf("discard %s: %w", c.Short(), ErrCardNotHeld)
	}
	copy(p.hand[i:p.handLen], p.hand[i+1:p.handLen])
	p.handLen--
	p.hand[p.handLen] = NoCard
	return nil
}

// Clear empties the hand and returns the cards that were held.
func (p *CribbagePlayer) Clear() []Card {
	out := p.Hand()
	p.hand = [HandMaxPreShow]Card{}
	p.handLen = 0
	return out
}

// Ready reports whether the hand is down to the post-show size.
func (p *CribbagePlayer) Ready() bool { return p.handLen == HandMaxPostShow }

// DescribeHand lists the held cards by name, e.g. "Ace of Clubs, Five of Hearts".
func (p *CribbagePlayer) DescribeHand() string {
	if p.handLen == 0 {
		return "(empty hand)"
	}
	names := make([]string, 0, p.handLen)
	for _, c := range p.hand[:p.handLen] {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}

func (p *CribbagePlayer) indexOf(c Card) int {
	for i := uint8(0); i < p.handLen; i++ {
		if p.hand[i] == c {
			return int(i)
		}
	}
	return -1
}
