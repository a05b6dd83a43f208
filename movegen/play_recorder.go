package movegen

import (
	"github.com/domino14/lettersinarow/move"
)

// A rowTask is one row of one orientation of the board.
type rowTask struct {
	row      int
	vertical bool
}

// recorder returns the function a row search calls for each word it finds.
// Vertical words are found on the transposed board, so their row and
// column are flipped back before they are kept.
func recorder(best *BestCandidates, task rowTask) func(word string, col, score int) {
	return func(word string, col, score int) {
		row := task.row
		dir := move.Horizontal
		if task.vertical {
			row, col = col, row
			dir = move.Vertical
		}
		best.Add(move.Candidate{Word: word, Row: row, Col: col, Dir: dir}, score)
	}
}
