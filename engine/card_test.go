package engine

import (
	"errors"
	"testing"
)

// TestEncodeKnownCards pins the corners of the draw index enumeration.
func TestEncodeKnownCards(t *testing.T) {
	tests := []struct {
		idx  int
		want Card
	}{
		{1, NewCard(SuitClubs, RankAce)},
		{13, NewCard(SuitClubs, RankKing)},
		{14, NewCard(SuitDiamonds, RankAce)},
		{26, NewCard(SuitDiamonds, RankKing)},
		{27, NewCard(SuitHearts, RankAce)},
		{40, NewCard(SuitSpades, RankAce)},
		{52, NewCard(SuitSpades, RankKing)},
	}
	for _, tt := range tests {
		got, err := Encode(tt.idx)
		if err != nil {
			t.Errorf("Encode(%d) error: %v", tt.idx, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Encode(%d) = %#04x, want %#04x", tt.idx, uint8(got), uint8(tt.want))
		}
	}

	// Raw bit layout: suit bit high, rank low.
	if c, _ := Encode(1); uint8(c) != 0x11 {
		t.Errorf("ace of clubs = %#04x, want 0x11", uint8(c))
	}
	if c, _ := Encode(52); uint8(c) != 0x8D {
		t.Errorf("king of spades = %#04x, want 0x8d", uint8(c))
	}
}

// TestCodecRoundTrip verifies Decode(Encode(i)) == i for every draw index.
func TestCodecRoundTrip(t *testing.T) {
	for i := 1; i <= DeckSize; i++ {
		c, err := Encode(i)
		if err != nil {
			t.Fatalf("Encode(%d) error: %v", i, err)
		}
		got, err := Decode(c)
		if err != nil {
			t.Fatalf("Decode(Encode(%d)) error: %v", i, err)
		}
		if got != i {
			t.Errorf("Decode(Encode(%d)) = %d", i, got)
		}
	}
}

// TestCodecInverseOverValidCards verifies Encode(Decode(c)) == c for every
// suit×rank combination.
func TestCodecInverseOverValidCards(t *testing.T) {
	for _, s := range Suits {
		for _, r := range Ranks {
			c := NewCard(s, r)
			idx, err := Decode(c)
			if err != nil {
				t.Fatalf("Decode(%v) error: %v", c.Short(), err)
			}
			back, err := Encode(idx)
			if err != nil || back != c {
				t.Errorf("Encode(Decode(%#04x)) = %#04x, %v", uint8(c), uint8(back), err)
			}
		}
	}
}

// TestEncodeInjective verifies no two draw indices share a card.
func TestEncodeInjective(t *testing.T) {
	seen := make(map[Card]int)
	for i := 1; i <= DeckSize; i++ {
		c, _ := Encode(i)
		if prev, ok := seen[c]; ok {
			t.Errorf("Encode(%d) and Encode(%d) both = %#04x", prev, i, uint8(c))
		}
		seen[c] = i
	}
	if len(seen) != DeckSize {
		t.Errorf("got %d distinct cards, want %d", len(seen), DeckSize)
	}
}

// TestEncodeOutOfRange verifies out-of-range indices yield NoCard.
func TestEncodeOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, 0, 53, 100} {
		c, err := Encode(idx)
		if c != NoCard {
			t.Errorf("Encode(%d) = %#04x, want NoCard", idx, uint8(c))
		}
		if !errors.Is(err, ErrInvalidIndex) {
			t.Errorf("Encode(%d) err = %v, want ErrInvalidIndex", idx, err)
		}
	}
}

// TestDecodeMalformed verifies Decode rejects cards without exactly one suit
// bit or with a rank outside [1,13].
func TestDecodeMalformed(t *testing.T) {
	bad := []Card{
		NoCard,
		0x01,                              // no suit
		0x10,                              // rank 0
		0x1E,                              // rank 14
		0x1F,                              // rank 15
		0x31,                              // clubs|diamonds
		0xF1,                              // every suit bit
		Card(SuitHearts | SuitSpades | 5), // two suits
	}
	for _, c := range bad {
		if c.Valid() {
			t.Errorf("%#04x.Valid() = true", uint8(c))
		}
		idx, err := Decode(c)
		if !errors.Is(err, ErrInvalidIdentifier) {
			t.Errorf("Decode(%#04x) err = %v, want ErrInvalidIdentifier", uint8(c), err)
		}
		if idx != 0 {
			t.Errorf("Decode(%#04x) = %d, want 0", uint8(c), idx)
		}
	}
}

// TestCardSuitRank verifies Suit/Rank roundtrip for every suit×rank combo.
func TestCardSuitRank(t *testing.T) {
	for _, s := range Suits {
		for _, r := range Ranks {
			c := NewCard(s, r)
			if c.Suit() != s {
				t.Errorf("NewCard(%#04x,%d).Suit() = %#04x", s, r, c.Suit())
			}
			if c.Rank() != r {
				t.Errorf("NewCard(%#04x,%d).Rank() = %d", s, r, c.Rank())
			}
			if !c.Valid() {
				t.Errorf("NewCard(%#04x,%d) not valid", s, r)
			}
		}
	}
}

// TestAllCardsOrder verifies AllCards follows the draw index order.
func TestAllCardsOrder(t *testing.T) {
	all := AllCards()
	for i, c := range all {
		idx, err := Decode(c)
		if err != nil || idx != i+1 {
			t.Errorf("AllCards()[%d] decodes to %d, %v", i, idx, err)
		}
	}
}
