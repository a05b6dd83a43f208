package tilemapping

import (
	"lukechampine.com/frand"
)

// LetterDistribution encodes how many of each tile a full bag holds.
type LetterDistribution struct {
	Name         string
	distribution [NumTiles]int
}

// EnglishLetterDistribution is the standard 100-tile English bag.
func EnglishLetterDistribution() *LetterDistribution {
	return &LetterDistribution{
		Name: "English",
		distribution: [NumTiles]int{
			9, 2, 2, 4, 12, 2, 3, 2, 9, 1, 1, 4, 2, 6, 8,
			2, 1, 6, 4, 6, 4, 2, 2, 1, 2, 1,
			2, // wildcards
		},
	}
}

// NumTotalTiles is the size of a full bag.
func (ld *LetterDistribution) NumTotalTiles() int {
	n := 0
	for _, c := range ld.distribution {
		n += c
	}
	return n
}

// Count returns how many copies of l the bag starts with.
func (ld *LetterDistribution) Count(l Letter) int {
	return ld.distribution[l.Index()]
}

// Bag is a drawable multiset of tiles.
type Bag struct {
	tiles []Letter
}

// NewBag fills a bag from a distribution.
func NewBag(ld *LetterDistribution) *Bag {
	b := &Bag{tiles: make([]Letter, 0, ld.NumTotalTiles())}
	for i, c := range ld.distribution {
		for j := 0; j < c; j++ {
			b.tiles = append(b.tiles, LetterFromIndex(i))
		}
	}
	return b
}

// TilesRemaining is the number of tiles still in the bag.
func (b *Bag) TilesRemaining() int {
	return len(b.tiles)
}

// Draw removes up to n random tiles from the bag.
func (b *Bag) Draw(n int) []Letter {
	if n > len(b.tiles) {
		n = len(b.tiles)
	}
	drawn := make([]Letter, 0, n)
	for i := 0; i < n; i++ {
		k := frand.Intn(len(b.tiles))
		drawn = append(drawn, b.tiles[k])
		last := len(b.tiles) - 1
		b.tiles[k] = b.tiles[last]
		b.tiles = b.tiles[:last]
	}
	return drawn
}
