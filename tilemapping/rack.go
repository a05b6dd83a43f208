package tilemapping

import (
	"strings"

	"github.com/samber/lo"
)

// DefaultRackSize is the number of tiles a player normally holds.
const DefaultRackSize = 7

// Rack is an ordered collection of tiles with a parallel mask of the tiles
// that a placement has already consumed. Each tile may be consumed at most
// once.
type Rack struct {
	Tiles []Letter
	Used  []bool
}

// NewRack creates a rack with every tile unused.
func NewRack(tiles []Letter) Rack {
	t := make([]Letter, len(tiles))
	copy(t, tiles)
	return Rack{Tiles: t, Used: make([]bool, len(tiles))}
}

// RackFromString creates a Rack from a user-visible string such as "AEI*RST".
func RackFromString(s string) (Rack, error) {
	tiles, err := ToLetters(s)
	if err != nil {
		return Rack{}, err
	}
	return NewRack(tiles), nil
}

// Copy returns a deep copy of this rack.
func (r Rack) Copy() Rack {
	n := Rack{
		Tiles: make([]Letter, len(r.Tiles)),
		Used:  make([]bool, len(r.Used)),
	}
	copy(n.Tiles, r.Tiles)
	copy(n.Used, r.Used)
	return n
}

// NumTiles is the rack length, used or not.
func (r Rack) NumTiles() int {
	return len(r.Tiles)
}

// NumUsed counts consumed tiles.
func (r Rack) NumUsed() int {
	return lo.Count(r.Used, true)
}

// Unused returns the tiles not yet consumed, in rack order.
func (r Rack) Unused() []Letter {
	return lo.Filter(r.Tiles, func(_ Letter, i int) bool {
		return !r.Used[i]
	})
}

// take marks the first unused tile equal to l as used and returns its
// index, or -1 if there is none.
func (r Rack) take(l Letter) int {
	for i, t := range r.Tiles {
		if !r.Used[i] && t == l {
			r.Used[i] = true
			return i
		}
	}
	return -1
}

// Cover consumes a tile for a letter placed on the board. An exact letter
// is preferred over a wildcard. It reports whether a tile was found and
// whether it was the wildcard. The rack is modified in place.
func (r Rack) Cover(l Letter) (ok bool, wildcard bool) {
	if r.take(l) >= 0 {
		return true, false
	}
	if r.take(Wildcard) >= 0 {
		return true, true
	}
	return false, false
}

// String returns a user-visible version of this rack.
func (r Rack) String() string {
	var sb strings.Builder
	for _, t := range r.Tiles {
		sb.WriteByte(byte(t))
	}
	return sb.String()
}
