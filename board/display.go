package board

import (
	"fmt"
	"strings"

	"github.com/domino14/lettersinarow/scoring"
)

// ToDisplayText renders the board for a terminal. Empty squares show the
// premium markers of scheme, if it is not nil and fits the board. With
// color, the tiles placed by the last ApplyCandidate and the rack tiles
// they used are highlighted.
func (s *State) ToDisplayText(scheme *scoring.Scheme, color bool) string {
	var str strings.Builder
	rows, cols := s.Rows(), s.Cols()
	if scheme != nil && scheme.Validate(rows, cols) != nil {
		scheme = nil
	}
	str.WriteString("\n   ")
	for i := 0; i < cols; i++ {
		str.WriteString(fmt.Sprintf("%c ", 'A'+i))
	}
	str.WriteString("\n   " + strings.Repeat("-", cols*2) + "\n")
	for i := 0; i < rows; i++ {
		str.WriteString(fmt.Sprintf("%2d|", i+1))
		for j := 0; j < cols; j++ {
			bonus := NoBonus
			if scheme != nil {
				bonus = BonusAt(scheme, i, j)
			}
			str.WriteString(s.squares[i][j].DisplayString(bonus, color))
			if j < cols-1 {
				str.WriteByte(' ')
			}
		}
		str.WriteString("|\n")
	}
	str.WriteString("   " + strings.Repeat("-", cols*2) + "\n")
	str.WriteString("Rack: " + s.rackDisplay(color) + "\n")
	return str.String()
}

func (s *State) rackDisplay(color bool) string {
	var sb strings.Builder
	for i, t := range s.rack.Tiles {
		if color && s.rack.Used[i] {
			sb.WriteString(colorPlaced + t.String() + colorReset)
		} else {
			sb.WriteString(t.String())
		}
	}
	return sb.String()
}
