package board

import (
	"fmt"

	"github.com/domino14/lettersinarow/scoring"
	"github.com/domino14/lettersinarow/tilemapping"
)

// A BonusSquare is the display marker of a premium square.
type BonusSquare rune

const (
	// Bonus3WS is a triple word score
	Bonus3WS BonusSquare = '='
	// Bonus3LS is a triple letter score
	Bonus3LS BonusSquare = '"'
	// Bonus2LS is a double letter score
	Bonus2LS BonusSquare = '\''
	// Bonus2WS is a double word score
	Bonus2WS BonusSquare = '-'
	// NoBonus marks a plain square.
	NoBonus BonusSquare = '.'
)

const (
	colorPlaced = "\033[31;1m"
	colorReset  = "\033[0m"
)

// BonusAt returns the marker for a square of the given scheme.
func BonusAt(s *scoring.Scheme, row, col int) BonusSquare {
	switch {
	case s.WordMultiplier[row][col] >= 3:
		return Bonus3WS
	case s.WordMultiplier[row][col] == 2:
		return Bonus2WS
	case s.LetterMultiplier[row][col] >= 3:
		return Bonus3LS
	case s.LetterMultiplier[row][col] == 2:
		return Bonus2LS
	}
	return NoBonus
}

func (b BonusSquare) displayString(color bool) string {
	if !color {
		return string(b)
	}
	switch b {
	case Bonus3WS:
		return fmt.Sprintf("\033[31m%s\033[0m", string(b))
	case Bonus2WS:
		return fmt.Sprintf("\033[35m%s\033[0m", string(b))
	case Bonus3LS:
		return fmt.Sprintf("\033[34m%s\033[0m", string(b))
	case Bonus2LS:
		return fmt.Sprintf("\033[36m%s\033[0m", string(b))
	}
	return string(b)
}

// A Square is a single cell of the board: a letter (tilemapping.Empty if
// there is none), whether a wildcard tile stands there, and whether the most
// recent ApplyCandidate put it there.
type Square struct {
	letter   tilemapping.Letter
	wildcard bool
	placed   bool
}

func (s Square) String() string {
	return fmt.Sprintf("<(%v) wc=%v placed=%v>", s.letter, s.wildcard, s.placed)
}

func (s Square) Letter() tilemapping.Letter {
	return s.letter
}

func (s Square) IsEmpty() bool {
	return s.letter == tilemapping.Empty
}

// DisplayString shows a wildcard letter in lower case.
func (s Square) DisplayString(bonus BonusSquare, color bool) string {
	if s.IsEmpty() {
		return bonus.displayString(color)
	}
	ch := string(rune(s.letter))
	if s.wildcard {
		ch = string(rune(s.letter) + ('a' - 'A'))
	}
	if color && s.placed {
		return colorPlaced + ch + colorReset
	}
	return ch
}
