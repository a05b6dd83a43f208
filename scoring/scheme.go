// Package scoring holds the point values, bonus-square grids and bingo
// bonus that decide how much a placement is worth.
package scoring

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/lettersinarow/tilemapping"
)

// ErrConfiguration is returned when a scheme cannot be used, either because
// it is malformed or because it does not fit the board it is used with.
var ErrConfiguration = errors.New("configuration error")

// A Scheme is immutable once built. Share it freely between goroutines.
type Scheme struct {
	Name             string
	Points           [tilemapping.NumTiles]int
	WordMultiplier   [][]int
	LetterMultiplier [][]int
	Bingo            int
}

// PointValue is the face value of a tile. Anything that is not a tile is
// worth nothing.
func (s *Scheme) PointValue(l tilemapping.Letter) int {
	if !l.IsTile() {
		return 0
	}
	return s.Points[l.Index()]
}

func (s *Scheme) Rows() int {
	return len(s.WordMultiplier)
}

func (s *Scheme) Cols() int {
	if len(s.WordMultiplier) == 0 {
		return 0
	}
	return len(s.WordMultiplier[0])
}

// Transpose returns the scheme with the rows and columns of both grids
// swapped. Searching a transposed board needs a transposed scheme.
func (s *Scheme) Transpose() *Scheme {
	return &Scheme{
		Name:             s.Name,
		Points:           s.Points,
		WordMultiplier:   transpose(s.WordMultiplier),
		LetterMultiplier: transpose(s.LetterMultiplier),
		Bingo:            s.Bingo,
	}
}

// Validate checks that the scheme can score a rows x cols board.
func (s *Scheme) Validate(rows, cols int) error {
	if err := checkGrid("word multipliers", s.WordMultiplier, rows, cols); err != nil {
		return err
	}
	if err := checkGrid("letter multipliers", s.LetterMultiplier, rows, cols); err != nil {
		return err
	}
	for i, p := range s.Points {
		if p < 0 {
			return fmt.Errorf("%w: negative point value for %v", ErrConfiguration,
				tilemapping.LetterFromIndex(i))
		}
	}
	if s.Bingo < 0 {
		return fmt.Errorf("%w: negative bingo bonus", ErrConfiguration)
	}
	return nil
}

func checkGrid(what string, grid [][]int, rows, cols int) error {
	if len(grid) != rows {
		return fmt.Errorf("%w: %s have %d rows, board has %d",
			ErrConfiguration, what, len(grid), rows)
	}
	for i, row := range grid {
		if len(row) != cols {
			return fmt.Errorf("%w: %s row %d has %d columns, board has %d",
				ErrConfiguration, what, i, len(row), cols)
		}
		if lo.Min(row) < 1 {
			return fmt.Errorf("%w: %s row %d has a multiplier below 1",
				ErrConfiguration, what, i)
		}
	}
	return nil
}

// CountCells returns the number of cells of grid that hold exactly mult.
func CountCells(grid [][]int, mult int) int {
	return lo.SumBy(grid, func(row []int) int {
		return lo.Count(row, mult)
	})
}

func transpose(grid [][]int) [][]int {
	if len(grid) == 0 {
		return nil
	}
	t := make([][]int, len(grid[0]))
	for c := range t {
		t[c] = make([]int, len(grid))
		for r := range grid {
			t[c][r] = grid[r][c]
		}
	}
	return t
}

// ParseGrid reads a whitespace-separated grid of integers, one row per line.
// Blank lines are skipped. Every row must have the same width.
func ParseGrid(text string) ([][]int, error) {
	var grid [][]int
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: bad grid value %q", ErrConfiguration, f)
			}
			row[i] = v
		}
		if len(grid) > 0 && len(row) != len(grid[0]) {
			return nil, fmt.Errorf("%w: ragged grid row %d", ErrConfiguration, len(grid))
		}
		grid = append(grid, row)
	}
	if len(grid) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrConfiguration)
	}
	return grid, nil
}

// Mirror expands the top-left quadrant of a symmetric board, centre row and
// column included, into the whole board. A q x q quadrant becomes a
// (2q-1) x (2q-1) grid.
func Mirror(quadrant [][]int) ([][]int, error) {
	q := len(quadrant)
	if q == 0 {
		return nil, fmt.Errorf("%w: empty quadrant", ErrConfiguration)
	}
	for _, row := range quadrant {
		if len(row) != q {
			return nil, fmt.Errorf("%w: quadrant must be square, got %dx%d",
				ErrConfiguration, q, len(row))
		}
	}
	n := q - 1
	size := 2*n + 1
	grid := make([][]int, size)
	for r := range grid {
		src := r
		if r > n {
			src = 2*n - r
		}
		grid[r] = make([]int, size)
		for c := range grid[r] {
			sc := c
			if c > n {
				sc = 2*n - c
			}
			grid[r][c] = quadrant[src][sc]
		}
	}
	return grid, nil
}

// FromQuadrant builds a scheme whose grids are given as top-left quadrants.
func FromQuadrant(name string, points map[tilemapping.Letter]int,
	wordQuadrant, letterQuadrant string, bingo int) (*Scheme, error) {

	s := &Scheme{Name: name, Bingo: bingo}
	if err := s.setPoints(points); err != nil {
		return nil, err
	}
	var err error
	for _, g := range []struct {
		text string
		dest *[][]int
	}{
		{wordQuadrant, &s.WordMultiplier},
		{letterQuadrant, &s.LetterMultiplier},
	} {
		var q [][]int
		if q, err = ParseGrid(g.text); err != nil {
			return nil, err
		}
		if *g.dest, err = Mirror(q); err != nil {
			return nil, err
		}
	}
	if err = s.Validate(s.Rows(), s.Cols()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheme) setPoints(points map[tilemapping.Letter]int) error {
	for i := 0; i < tilemapping.NumTiles; i++ {
		l := tilemapping.LetterFromIndex(i)
		p, ok := points[l]
		if !ok {
			return fmt.Errorf("%w: no point value for %v", ErrConfiguration, l)
		}
		s.Points[i] = p
	}
	if len(points) != tilemapping.NumTiles {
		return fmt.Errorf("%w: point table has %d entries, want %d",
			ErrConfiguration, len(points), tilemapping.NumTiles)
	}
	return nil
}
