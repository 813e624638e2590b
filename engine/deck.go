package engine

import (
	"fmt"
	"math/bits"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Deck is a standard 52-card deck drawn without replacement. Cards drawn are
// tracked as a consumed set of draw indices; returning a card puts it back
// into the pool. A Deck is not safe for concurrent use.
type Deck struct {
	ID uuid.UUID

	// consumed has bit i set when draw index i (1..52) is out of the deck.
	consumed uint64
	rng      uint64
	log      logrus.FieldLogger
}

// DeckOption configures a Deck at construction.
type DeckOption func(*Deck)

// WithSeed makes the draw sequence reproducible.
func WithSeed(seed uint64) DeckOption {
	return func(d *Deck) { d.rng = seed }
}

// WithDeckLogger sets the logger used for deck diagnostics.
func WithDeckLogger(l logrus.FieldLogger) DeckOption {
	return func(d *Deck) {
		if l != nil {
			d.log = l
		}
	}
}

// NewDeck returns a full deck. Without WithSeed it is seeded from the clock.
func NewDeck(opts ...DeckOption) *Deck {
	d := &Deck{
		ID:  uuid.New(),
		rng: uint64(time.Now().UnixNano()),
		log: pkgLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == 0 {
		d.rng = 1 // xorshift can't start at 0
	}
	d.log = d.log.WithField("deck", d.ID)
	return d
}

// ---------------------------------------------------------------------------
// xorshift64 RNG
// ---------------------------------------------------------------------------

func (d *Deck) nextRand() uint64 {
	x := d.rng
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	d.rng = x
	return x
}

// randN returns a random number in [0, n).
func (d *Deck) randN(n uint64) uint64 {
	return d.nextRand() % n
}

// ---------------------------------------------------------------------------
// Draw / return
// ---------------------------------------------------------------------------

// Remaining returns the number of cards still in the deck.
func (d *Deck) Remaining() int { return DeckSize - d.Drawn() }

// Drawn returns the number of cards currently out of the deck.
func (d *Deck) Drawn() int { return bits.OnesCount64(d.consumed) }

// IsDrawn reports whether c is currently out of the deck.
func (d *Deck) IsDrawn(c Card) bool {
	idx, ok := decode(c)
	return ok && d.consumed&bit(idx) != 0
}

// Draw removes a uniformly random card from the remaining pool and returns it.
func (d *Deck) Draw() (Card, error) {
	n := d.Remaining()
	if n == 0 {
		d.log.Info("draw from empty deck")
		return NoCard, ErrDeckExhausted
	}

	// Take the offset-th unconsumed index in ascending order.
	offset := int(d.randN(uint64(n)))
	idx := 0
	for i := 1; i <= DeckSize; i++ {
		if d.consumed&bit(i) != 0 {
			continue
		}
		if offset == 0 {
			idx = i
			break
		}
		offset--
	}

	d.consumed |= bit(idx)
	c, _ := encode(idx)
	d.log.WithFields(logrus.Fields{"index": idx, "card": c.Short()}).Debug("card drawn")
	return c, nil
}

// DrawN draws n cards. If fewer than n remain nothing is drawn.
func (d *Deck) DrawN(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("draw %d cards: negative count", n)
	}
	if rem := d.Remaining(); n > rem {
		d.log.WithFields(logrus.Fields{"want": n, "remaining": rem}).Info("not enough cards to draw")
		return nil, fmt.Errorf("draw %d cards with %d remaining: %w", n, rem, ErrDeckExhausted)
	}
	out := make([]Card, 0, n)
	for range n {
		c, err := d.Draw()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// ReturnCard puts c back into the deck. Returning a card that is not out of
// the deck is a no-op.
func (d *Deck) ReturnCard(c Card) error {
	idx, ok := decode(c)
	if !ok {
		d.log.WithField("card", fmt.Sprintf("%#04x", uint8(c))).Warn("cannot return malformed card")
		return fmt.Errorf("return card: %w: %#04x", ErrInvalidIdentifier, uint8(c))
	}
	d.release(idx)
	return nil
}

// ReturnIndex puts the card with draw index idx back into the deck.
func (d *Deck) ReturnIndex(idx int) error {
	if idx < 1 || idx > DeckSize {
		d.log.WithField("index", idx).Warn("cannot return card for draw index")
		return fmt.Errorf("return card: %w: %d not in [1,%d]", ErrInvalidIndex, idx, DeckSize)
	}
	d.release(idx)
	return nil
}

func (d *Deck) release(idx int) {
	if d.consumed&bit(idx) == 0 {
		return
	}
	d.consumed &^= bit(idx)
	d.log.WithField("index", idx).Debug("card returned")
}

// Reset returns every drawn card to the deck. The RNG is not reseeded.
func (d *Deck) Reset() { d.consumed = 0 }

// ---------------------------------------------------------------------------
// Snapshot undo (Save / Restore)
// ---------------------------------------------------------------------------

// DeckSnapshot is a value copy of a deck's consumed set and RNG state.
type DeckSnapshot struct {
	consumed uint64
	rng      uint64
}

// Save returns a snapshot of the current deck state.
func (d *Deck) Save() DeckSnapshot { return DeckSnapshot{consumed: d.consumed, rng: d.rng} }

// Restore replaces the deck state with the given snapshot.
func (d *Deck) Restore(s DeckSnapshot) {
	d.consumed = s.consumed
	d.rng = s.rng
}

func bit(idx int) uint64 { return 1 << uint(idx) }
