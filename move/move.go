package move

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Direction is the orientation of a placement.
type Direction uint8

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

var ErrBadCoords = errors.New("bad coordinates")

// Candidate is a proposed placement of a word. Row and Col are where its
// first letter goes on the un-transposed board. A Candidate is a plain
// value; it does not know which board it was generated for.
type Candidate struct {
	Word string
	Row  int
	Col  int
	Dir  Direction
}

// Compare orders candidates by word, then row, then column, then
// direction with horizontal first. It returns -1, 0 or 1.
func (c Candidate) Compare(o Candidate) int {
	if c.Word != o.Word {
		return strings.Compare(c.Word, o.Word)
	}
	switch {
	case c.Row != o.Row:
		return sign(c.Row - o.Row)
	case c.Col != o.Col:
		return sign(c.Col - o.Col)
	case c.Dir != o.Dir:
		return sign(int(c.Dir) - int(o.Dir))
	}
	return 0
}

func sign(x int) int {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// Coords is the candidate's position in board-game notation.
func (c Candidate) Coords() string {
	return ToBoardGameCoords(c.Row, c.Col, c.Dir == Vertical)
}

// Cell returns the board cell of the i-th letter of the word.
func (c Candidate) Cell(i int) (row, col int) {
	if c.Dir == Vertical {
		return c.Row + i, c.Col
	}
	return c.Row, c.Col + i
}

func (c Candidate) String() string {
	return fmt.Sprintf("%s %s", c.Coords(), c.Word)
}

// NewCandidate parses a placement such as "8H KAZOO" given as separate
// coordinates and word.
func NewCandidate(coords, word string) (Candidate, error) {
	row, col, vertical, err := ParseCoords(coords)
	if err != nil {
		return Candidate{}, err
	}
	word = strings.ToUpper(strings.TrimSpace(word))
	if word == "" {
		return Candidate{}, errors.New("empty word")
	}
	dir := Horizontal
	if vertical {
		dir = Vertical
	}
	return Candidate{Word: word, Row: row, Col: col, Dir: dir}, nil
}

// Scored is a candidate with the score it would earn.
type Scored struct {
	Candidate
	Score int
}

func (s Scored) String() string {
	return fmt.Sprintf("%s (%d)", s.Candidate, s.Score)
}

// Better reports whether s ranks ahead of o: a higher score, or an equal
// score and a smaller candidate.
func (s Scored) Better(o Scored) bool {
	if s.Score != o.Score {
		return s.Score > o.Score
	}
	return s.Candidate.Compare(o.Candidate) < 0
}

var reVertical, reHorizontal *regexp.Regexp

func init() {
	reVertical = regexp.MustCompile(`^(?P<col>[A-Z])(?P<row>[0-9]+)$`)
	reHorizontal = regexp.MustCompile(`^(?P<row>[0-9]+)(?P<col>[A-Z])$`)
}

// ToBoardGameCoords converts the row, col, and orientation of a play to
// coordinates like 5F or G4. Rows count from 1 and columns are letters.
// Horizontal plays put the row first.
func ToBoardGameCoords(row int, col int, vertical bool) string {
	colCoords := string(rune('A' + col))
	rowCoords := strconv.Itoa(row + 1)
	if vertical {
		return colCoords + rowCoords
	}
	return rowCoords + colCoords
}

// ParseCoords does the inverse operation of ToBoardGameCoords. Lower case
// is accepted.
func ParseCoords(c string) (row, col int, vertical bool, err error) {
	c = strings.ToUpper(strings.TrimSpace(c))
	if m := reVertical.FindStringSubmatch(c); len(m) == 3 {
		row, _ = strconv.Atoi(m[2])
		col = int(m[1][0] - 'A')
		vertical = true
	} else if m := reHorizontal.FindStringSubmatch(c); len(m) == 3 {
		row, _ = strconv.Atoi(m[1])
		col = int(m[2][0] - 'A')
	} else {
		return 0, 0, false, fmt.Errorf("%w: %q", ErrBadCoords, c)
	}
	if row < 1 {
		return 0, 0, false, fmt.Errorf("%w: %q", ErrBadCoords, c)
	}
	return row - 1, col, vertical, nil
}
