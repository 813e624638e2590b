package engine

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	StartRow  = 0
	FinalRow  = 120
	TotalRows = FinalRow + 1

	MaxPlayers     = 3
	DefaultPlayers = 2

	// NoWinner is the winner value of a board nobody has won.
	NoWinner = -1
)

// Board is a cribbage scoring board: one peg per player on a 121-hole track.
// Pegs only move forward and the first peg to reach FinalRow wins the board.
// A Board is not safe for concurrent use.
type Board struct {
	ID uuid.UUID

	positions []int
	winner    int
	log       logrus.FieldLogger
}

// BoardOption configures a Board at construction.
type BoardOption func(*Board)

// WithBoardLogger sets the logger used for board diagnostics.
func WithBoardLogger(l logrus.FieldLogger) BoardOption {
	return func(b *Board) {
		if l != nil {
			b.log = l
		}
	}
}

// NewBoard creates a board for numPlayers players with every peg on StartRow.
// A player count outside [1, MaxPlayers] falls back to DefaultPlayers.
func NewBoard(numPlayers int, opts ...BoardOption) *Board {
	b := &Board{
		ID:     uuid.New(),
		winner: NoWinner,
		log:    pkgLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.log = b.log.WithField("board", b.ID)

	if numPlayers < 1 || numPlayers > MaxPlayers {
		b.log.WithFields(logrus.Fields{"requested": numPlayers, "players": DefaultPlayers}).
			Warn("unsupported player count, using default")
		numPlayers = DefaultPlayers
	}
	b.positions = make([]int, numPlayers)
	return b
}

// NumPlayers returns the number of pegs on the board.
func (b *Board) NumPlayers() int { return len(b.positions) }

// Position returns the row of player's peg, or -1 for an unknown player.
func (b *Board) Position(player int) int {
	if player < 0 || player >= len(b.positions) {
		return -1
	}
	return b.positions[player]
}

// Positions returns a copy of every player's row.
func (b *Board) Positions() []int {
	out := make([]int, len(b.positions))
	copy(out, b.positions)
	return out
}

// MovePeg moves player's peg to row. The move is made only when row is ahead
// of the peg's current row; otherwise false and an ErrInvalidMove error are
// returned and the board is unchanged. Reaching FinalRow records the player
// as winner unless the board already has one.
func (b *Board) MovePeg(player, row int) (bool, error) {
	l := b.log.WithFields(logrus.Fields{"player": player, "row": row})

	if player < 0 || player >= len(b.positions) {
		l.Info("peg move for unknown player")
		return false, fmt.Errorf("%w: no player %d", ErrInvalidMove, player)
	}
	if row > FinalRow {
		l.Info("peg move past final row")
		return false, fmt.Errorf("%w: row %d past final row %d", ErrInvalidMove, row, FinalRow)
	}

	switch loc := b.positions[player]; {
	case loc > row:
		l.WithField("current", loc).Info("can't move peg to an earlier row")
		return false, fmt.Errorf("%w: player %d at row %d cannot move back to %d", ErrInvalidMove, player, loc, row)
	case loc == row:
		l.WithField("current", loc).Info("can't move peg to the same row")
		return false, fmt.Errorf("%w: player %d already at row %d", ErrInvalidMove, player, row)
	}

	b.positions[player] = row
	if row == FinalRow && b.winner == NoWinner {
		b.winner = player
		l.Info("board won")
	}
	return true, nil
}

// Advance moves player's peg forward by points, stopping at FinalRow.
func (b *Board) Advance(player, points int) (bool, error) {
	if player < 0 || player >= len(b.positions) {
		return false, fmt.Errorf("%w: no player %d", ErrInvalidMove, player)
	}
	row := FinalRow
	if cur := b.positions[player]; points < FinalRow-cur {
		row = cur + points
	}
	return b.MovePeg(player, row)
}

// CheckWin returns the winning player. ok is false while nobody has won.
func (b *Board) CheckWin() (player int, ok bool) {
	return b.winner, b.winner != NoWinner
}

// Standings returns player numbers from first place to last: the winner
// first, then by row descending, ties broken by player number.
func (b *Board) Standings() []int {
	out := make([]int, len(b.positions))
	for i := range out {
		out[i] = i
	}
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := out[i], out[j]
		if pi == b.winner || pj == b.winner {
			return pi == b.winner
		}
		return b.positions[pi] > b.positions[pj]
	})
	return out
}
