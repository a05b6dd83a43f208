package tilemapping

import (
	"errors"
	"fmt"
	"strings"
)

// A Letter is a single tile or board cell, stored as its upper-case ASCII
// byte. The wildcard and the empty cell get their own bytes.
const (
	// Wildcard is a tile that may stand for any letter. It scores zero.
	Wildcard Letter = '*'
	// Empty marks an empty board cell.
	Empty Letter = ' '

	// NumLetters is the size of the alphabet, not counting the wildcard.
	NumLetters = 26
	// NumTiles counts every distinct tile, wildcard included.
	NumTiles = NumLetters + 1

	// Alphabet lists every letter in order.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var ErrBadTile = errors.New("not a valid tile")

type Letter byte

// IsLetter returns true for A through Z.
func (l Letter) IsLetter() bool {
	return l >= 'A' && l <= 'Z'
}

// IsTile returns true for anything that can sit on a rack.
func (l Letter) IsTile() bool {
	return l.IsLetter() || l == Wildcard
}

// Index is the position of the letter in the alphabet. The wildcard has
// index NumLetters, so Index can address a NumTiles-long table.
func (l Letter) Index() int {
	if l == Wildcard {
		return NumLetters
	}
	return int(l - 'A')
}

func (l Letter) String() string {
	return string(rune(l))
}

// LetterFromIndex is the inverse of Index.
func LetterFromIndex(i int) Letter {
	if i == NumLetters {
		return Wildcard
	}
	return Letter('A' + i)
}

// ParseTile upper-cases r and checks that it is a rack tile. Both '*' and
// '?' are accepted for the wildcard.
func ParseTile(r rune) (Letter, error) {
	if r == '?' {
		return Wildcard, nil
	}
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r > 0x7f || !Letter(r).IsTile() {
		return 0, fmt.Errorf("%w: %q", ErrBadTile, r)
	}
	return Letter(r), nil
}

// ToLetters converts a user-visible string of tiles such as "AEI*RST".
func ToLetters(s string) ([]Letter, error) {
	letters := make([]Letter, 0, len(s))
	for _, r := range strings.TrimSpace(s) {
		if r == ' ' || r == '\t' || r == ',' {
			continue
		}
		l, err := ParseTile(r)
		if err != nil {
			return nil, err
		}
		letters = append(letters, l)
	}
	return letters, nil
}

// LettersString is the user-visible form of a tile slice.
func LettersString(letters []Letter) string {
	var sb strings.Builder
	for _, l := range letters {
		sb.WriteByte(byte(l))
	}
	return sb.String()
}

// LetterSet is a bit mask of acceptable letters, with bit i set for the
// letter with Index i. It is the same idea as a cross-set.
type LetterSet uint32

// AllLetters allows every letter. It is the cross-set of a square with no
// perpendicular neighbours.
const AllLetters LetterSet = (1 << NumLetters) - 1

func (s LetterSet) Contains(l Letter) bool {
	if !l.IsLetter() {
		return false
	}
	return s&(1<<uint(l.Index())) != 0
}

func (s *LetterSet) Set(l Letter) {
	*s |= 1 << uint(l.Index())
}

// LetterSetFromString builds a set from a string of letters; anything that
// is not A-Z is ignored.
func LetterSetFromString(letters string) LetterSet {
	var s LetterSet
	for i := 0; i < len(letters); i++ {
		if l := Letter(letters[i]); l.IsLetter() {
			s.Set(l)
		}
	}
	return s
}

// String lists the letters in alphabetical order.
func (s LetterSet) String() string {
	var sb strings.Builder
	for i := 0; i < NumLetters; i++ {
		if s&(1<<uint(i)) != 0 {
			sb.WriteByte(Alphabet[i])
		}
	}
	return sb.String()
}

// Options returns the letters a tile can be realised as: itself, or the
// whole alphabet for a wildcard.
func Options(t Letter) []Letter {
	if t == Wildcard {
		return allLetters
	}
	return allLetters[t.Index() : t.Index()+1]
}

var allLetters []Letter

func init() {
	allLetters = make([]Letter, NumLetters)
	for i := range allLetters {
		allLetters[i] = LetterFromIndex(i)
	}
}
