package movegen

import (
	"github.com/domino14/lettersinarow/board"
	"github.com/domino14/lettersinarow/lexicon"
	"github.com/domino14/lettersinarow/scoring"
	"github.com/domino14/lettersinarow/tilemapping"
)

// constraint is what the perpendicular letters above and below a square
// allow there. score is the face value of those letters; forms is false if
// there are none, in which case no cross word is made.
type constraint struct {
	allowed tilemapping.LetterSet
	score   int
	forms   bool
}

// frame is the search state along one branch. It is passed by value, so
// returning from a call undoes whatever the call added.
type frame struct {
	used     uint64
	wordMult int
	main     int
	cross    int
}

// rowSearch finds every placement in one row of a board. Vertical
// placements are found by searching a row of the transposed board with the
// transposed scheme.
type rowSearch struct {
	st     *board.State
	scheme *scoring.Scheme
	vocab  *lexicon.Vocabulary
	row    int
	width  int

	tiles   []tilemapping.Letter
	allUsed uint64

	start       []bool
	leftRun     []string
	rightRun    []string
	constraints []constraint

	record  func(word string, col, score int)
	emitted int
}

func newRowSearch(st *board.State, scheme *scoring.Scheme, vocab *lexicon.Vocabulary,
	row int, record func(word string, col, score int)) *rowSearch {

	rack := st.Rack()
	tiles := rack.Unused()
	width := st.Cols()
	rs := &rowSearch{
		st:          st,
		scheme:      scheme,
		vocab:       vocab,
		row:         row,
		width:       width,
		tiles:       tiles,
		allUsed:     uint64(1)<<uint(len(tiles)) - 1,
		start:       startMask(st, row),
		leftRun:     make([]string, width),
		rightRun:    make([]string, width),
		constraints: make([]constraint, width),
		record:      record,
	}
	for col := 0; col < width; col++ {
		rs.leftRun[col], _ = rs.run(row, col, 0, -1)
		rs.rightRun[col], _ = rs.run(row, col, 0, 1)
		if st.IsEmpty(row, col) {
			rs.constraints[col] = rs.constraintAt(col)
		}
	}
	return rs
}

// faceValue is what a letter already on the board is worth. A wildcard
// stays worth nothing after it is played.
func (rs *rowSearch) faceValue(row, col int) int {
	if rs.st.IsWildcard(row, col) {
		return 0
	}
	return rs.scheme.PointValue(rs.st.Letter(row, col))
}

// run returns the letters contiguous to (row, col) in direction (dr, dc),
// not counting (row, col) itself, in reading order, and their value.
func (rs *rowSearch) run(row, col, dr, dc int) (string, int) {
	var letters []byte
	score := 0
	r, c := row+dr, col+dc
	for rs.st.InBounds(r, c) && !rs.st.IsEmpty(r, c) {
		letters = append(letters, byte(rs.st.Letter(r, c)))
		score += rs.faceValue(r, c)
		r, c = r+dr, c+dc
	}
	if dr < 0 || dc < 0 {
		for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
			letters[i], letters[j] = letters[j], letters[i]
		}
	}
	return string(letters), score
}

func (rs *rowSearch) constraintAt(col int) constraint {
	above, aboveScore := rs.run(rs.row, col, -1, 0)
	below, belowScore := rs.run(rs.row, col, 1, 0)
	if above == "" && below == "" {
		return constraint{allowed: tilemapping.AllLetters}
	}
	c := constraint{score: aboveScore + belowScore, forms: true}
	for _, l := range tilemapping.Options(tilemapping.Wildcard) {
		if rs.vocab.IsWord(above + string(rune(l)) + below) {
			c.allowed.Set(l)
		}
	}
	return c
}

// startMask marks the empty squares of row that touch a letter on any
// side. On an empty board the centre square is the only start.
func startMask(st *board.State, row int) []bool {
	cols := st.Cols()
	mask := make([]bool, cols)
	if st.IsBoardEmpty() {
		if row == st.Rows()/2 {
			mask[cols/2] = true
		}
		return mask
	}
	occupied := func(r, c int) bool {
		return st.InBounds(r, c) && !st.IsEmpty(r, c)
	}
	for col := 0; col < cols; col++ {
		if occupied(row, col) {
			continue
		}
		mask[col] = occupied(row, col-1) || occupied(row, col+1) ||
			occupied(row-1, col) || occupied(row+1, col)
	}
	return mask
}

func (rs *rowSearch) search() {
	for col, ok := range rs.start {
		if ok {
			rs.expand(col, rs.leftRun[col], rs.rightRun[col], frame{wordMult: 1}, true)
		}
	}
}

// expand tries every unused rack tile on the empty square pos, which sits
// between the letters pre and post. Only placed tiles count towards the main
// word; the letters of pre and post score nothing for it. Once the search
// has stepped right it never turns left again.
func (rs *rowSearch) expand(pos int, pre, post string, f frame, searchLeft bool) {
	leftPos := pos - 1 - len(pre)
	rightPos := pos + 1 + len(post)
	c := rs.constraints[pos]
	wm := rs.scheme.WordMultiplier[rs.row][pos]
	lm := rs.scheme.LetterMultiplier[rs.row][pos]

	f.wordMult *= wm

	var tried [tilemapping.NumTiles]bool
	for i, tile := range rs.tiles {
		bit := uint64(1) << uint(i)
		if f.used&bit != 0 || tried[tile.Index()] {
			continue
		}
		tried[tile.Index()] = true
		tileValue := lm * rs.scheme.PointValue(tile)

		for _, l := range tilemapping.Options(tile) {
			if !c.allowed.Contains(l) {
				continue
			}
			word := pre + string(rune(l)) + post
			if !rs.vocab.IsSubstring(word) {
				continue
			}
			next := f
			next.used |= bit
			next.main += tileValue
			if c.forms {
				next.cross += wm * (c.score + tileValue)
			}
			if rs.vocab.IsWord(word) {
				score := next.wordMult*next.main + next.cross
				if next.used == rs.allUsed {
					score += rs.scheme.Bingo
				}
				rs.emitted++
				rs.record(word, pos-len(pre), score)
			}
			if rightPos < rs.width && rs.vocab.IsPrefix(word) {
				rs.expand(rightPos, word, rs.rightRun[rightPos], next, false)
			}
			if searchLeft && leftPos >= 0 && !rs.start[leftPos] {
				rs.expand(leftPos, rs.leftRun[leftPos], word, next, true)
			}
		}
	}
}
