// Package board holds a position: the letters on the grid, which of them
// are wildcards, and the rack to play from.
package board

import (
	"errors"
	"fmt"

	"github.com/domino14/lettersinarow/move"
	"github.com/domino14/lettersinarow/tilemapping"
)

const (
	DefaultRows = 15
	DefaultCols = 15
)

var (
	// ErrInvalidCandidate wraps every reason a candidate cannot be applied.
	ErrInvalidCandidate = errors.New("invalid candidate")
	ErrNoCoveringTile   = errors.New("no rack tile for letter")
	ErrLetterMismatch   = errors.New("letter conflicts with the board")
	ErrOutOfBounds      = errors.New("word runs off the board")
	ErrEmptyWord        = errors.New("candidate has no letters")

	ErrBadCell = errors.New("bad board cell")
)

// State is a board position. Methods that change the position return a
// new State; the receiver is never modified, except by SetLetter, which
// exists for building positions.
type State struct {
	squares [][]Square
	rack    tilemapping.Rack
}

// NewEmpty creates a blank rows x cols board holding the given rack.
func NewEmpty(rows, cols int, tiles []tilemapping.Letter) *State {
	squares := make([][]Square, rows)
	for r := range squares {
		squares[r] = make([]Square, cols)
		for c := range squares[r] {
			squares[r][c].letter = tilemapping.Empty
		}
	}
	return &State{squares: squares, rack: tilemapping.NewRack(tiles)}
}

// Empty creates a blank board of the standard size.
func Empty(tiles []tilemapping.Letter) *State {
	return NewEmpty(DefaultRows, DefaultCols, tiles)
}

func (s *State) Rows() int {
	return len(s.squares)
}

func (s *State) Cols() int {
	if len(s.squares) == 0 {
		return 0
	}
	return len(s.squares[0])
}

func (s *State) InBounds(row, col int) bool {
	return row >= 0 && row < s.Rows() && col >= 0 && col < s.Cols()
}

func (s *State) Square(row, col int) Square {
	return s.squares[row][col]
}

func (s *State) Letter(row, col int) tilemapping.Letter {
	return s.squares[row][col].letter
}

func (s *State) IsEmpty(row, col int) bool {
	return s.squares[row][col].IsEmpty()
}

// IsWildcard is true where a wildcard tile stands in for the letter.
func (s *State) IsWildcard(row, col int) bool {
	return s.squares[row][col].wildcard
}

// IsPlaced is true for cells filled by the ApplyCandidate that produced s.
func (s *State) IsPlaced(row, col int) bool {
	return s.squares[row][col].placed
}

// Rack returns a copy of the rack.
func (s *State) Rack() tilemapping.Rack {
	return s.rack.Copy()
}

// WithRack returns a copy of s holding a fresh rack.
func (s *State) WithRack(tiles []tilemapping.Letter) *State {
	n := s.Copy()
	n.rack = tilemapping.NewRack(tiles)
	return n
}

// SetLetter puts a letter on the board in place. Pass tilemapping.Empty to
// clear a cell.
func (s *State) SetLetter(row, col int, l tilemapping.Letter, wildcard bool) {
	s.squares[row][col] = Square{letter: l, wildcard: wildcard && l != tilemapping.Empty}
}

// IsBoardEmpty is true if no letters are on the board.
func (s *State) IsBoardEmpty() bool {
	return s.TilesPlayed() == 0
}

// TilesPlayed counts the occupied cells.
func (s *State) TilesPlayed() int {
	n := 0
	for _, row := range s.squares {
		for _, sq := range row {
			if !sq.IsEmpty() {
				n++
			}
		}
	}
	return n
}

func (s *State) Copy() *State {
	squares := make([][]Square, len(s.squares))
	for r := range squares {
		squares[r] = make([]Square, len(s.squares[r]))
		copy(squares[r], s.squares[r])
	}
	return &State{squares: squares, rack: s.rack.Copy()}
}

// Transpose returns a copy with rows and columns swapped, so that columns
// can be searched as if they were rows.
func (s *State) Transpose() *State {
	rows, cols := s.Rows(), s.Cols()
	squares := make([][]Square, cols)
	for c := range squares {
		squares[c] = make([]Square, rows)
		for r := 0; r < rows; r++ {
			squares[c][r] = s.squares[r][c]
		}
	}
	return &State{squares: squares, rack: s.rack.Copy()}
}

// ApplyCandidate returns a new board with c played. Empty cells take an
// exact rack tile if one is unused, else a wildcard. Occupied cells must
// already hold the candidate's letter. Rack tiles used by earlier
// applications stay used. Every error wraps ErrInvalidCandidate and s is
// left as it was.
func (s *State) ApplyCandidate(c move.Candidate) (*State, error) {
	if c.Word == "" {
		return nil, fmt.Errorf("%w: %w at (%d, %d)", ErrInvalidCandidate, ErrEmptyWord, c.Row, c.Col)
	}
	n := s.Copy()
	for r := range n.squares {
		for col := range n.squares[r] {
			n.squares[r][col].placed = false
		}
	}
	for i := 0; i < len(c.Word); i++ {
		l := tilemapping.Letter(c.Word[i])
		row, col := c.Cell(i)
		if !n.InBounds(row, col) {
			return nil, fmt.Errorf("%w: %w: %v at (%d, %d)",
				ErrInvalidCandidate, ErrOutOfBounds, c, row, col)
		}
		sq := &n.squares[row][col]
		if !sq.IsEmpty() {
			if sq.letter != l {
				return nil, fmt.Errorf("%w: %w: %v puts %v on %v at (%d, %d)",
					ErrInvalidCandidate, ErrLetterMismatch, c, l, sq.letter, row, col)
			}
			continue
		}
		if !l.IsLetter() {
			return nil, fmt.Errorf("%w: %w: %v has %q", ErrInvalidCandidate,
				ErrNoCoveringTile, c, rune(l))
		}
		ok, wildcard := n.rack.Cover(l)
		if !ok {
			return nil, fmt.Errorf("%w: %w: %v needs %v at (%d, %d)",
				ErrInvalidCandidate, ErrNoCoveringTile, c, l, row, col)
		}
		*sq = Square{letter: l, wildcard: wildcard, placed: true}
	}
	return n, nil
}
