package scoring

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/lettersinarow/tilemapping"
)

func TestClassicLayout(t *testing.T) {
	is := is.New(t)
	s := Classic()
	is.Equal(s.Rows(), 15)
	is.Equal(s.Cols(), 15)
	is.Equal(s.Bingo, 50)
	is.Equal(CountCells(s.WordMultiplier, 3), 8)
	is.Equal(CountCells(s.WordMultiplier, 2), 17)
	is.Equal(CountCells(s.LetterMultiplier, 3), 12)
	is.Equal(CountCells(s.LetterMultiplier, 2), 24)
	is.Equal(s.WordMultiplier[7][7], 2)
	is.Equal(s.WordMultiplier[0][14], 3)
	is.Equal(s.LetterMultiplier[14][11], 2)
}

func TestAppyLayout(t *testing.T) {
	is := is.New(t)
	s := Appy()
	is.Equal(s.Bingo, 35)
	is.Equal(CountCells(s.WordMultiplier, 3), 8)
	is.Equal(CountCells(s.WordMultiplier, 2), 13)
	is.Equal(CountCells(s.LetterMultiplier, 3), 16)
	is.Equal(CountCells(s.LetterMultiplier, 2), 24)
	is.Equal(s.WordMultiplier[7][7], 1)
}

func TestPremiumsDoNotOverlap(t *testing.T) {
	is := is.New(t)
	for _, s := range []*Scheme{Classic(), Appy()} {
		for r := range s.WordMultiplier {
			for c := range s.WordMultiplier[r] {
				is.True(s.WordMultiplier[r][c] == 1 || s.LetterMultiplier[r][c] == 1)
			}
		}
		is.Equal(len(s.Points), 27)
		is.Equal(s.PointValue(tilemapping.Wildcard), 0)
	}
}

func TestPointValue(t *testing.T) {
	is := is.New(t)
	is.Equal(Classic().PointValue('Q'), 10)
	is.Equal(Classic().PointValue('H'), 4)
	is.Equal(Appy().PointValue('H'), 3)
	is.Equal(Appy().PointValue('J'), 10)
	is.Equal(Classic().PointValue(tilemapping.Empty), 0)
}

func TestMirror(t *testing.T) {
	is := is.New(t)
	g, err := Mirror([][]int{{1, 2}, {3, 4}})
	is.NoErr(err)
	is.Equal(g, [][]int{{1, 2, 1}, {3, 4, 3}, {1, 2, 1}})

	_, err = Mirror([][]int{{1, 2}})
	is.True(errors.Is(err, ErrConfiguration))
}

func TestTranspose(t *testing.T) {
	is := is.New(t)
	s := &Scheme{
		WordMultiplier:   [][]int{{1, 2, 3}, {1, 1, 1}},
		LetterMultiplier: [][]int{{1, 1, 1}, {2, 1, 1}},
	}
	tr := s.Transpose()
	is.Equal(tr.Rows(), 3)
	is.Equal(tr.Cols(), 2)
	is.Equal(tr.WordMultiplier[2][0], 3)
	is.Equal(tr.LetterMultiplier[0][1], 2)
	is.Equal(tr.Transpose().WordMultiplier, s.WordMultiplier)
}

func TestValidate(t *testing.T) {
	is := is.New(t)
	is.NoErr(Classic().Validate(15, 15))
	is.True(errors.Is(Classic().Validate(15, 13), ErrConfiguration))
	is.True(errors.Is(Classic().Validate(11, 15), ErrConfiguration))

	bad := Classic().Transpose()
	bad.Points[0] = -1
	is.True(errors.Is(bad.Validate(15, 15), ErrConfiguration))

	zero := &Scheme{
		WordMultiplier:   [][]int{{0}},
		LetterMultiplier: [][]int{{1}},
	}
	is.True(errors.Is(zero.Validate(1, 1), ErrConfiguration))
}

func TestLookup(t *testing.T) {
	is := is.New(t)
	s, err := Lookup("Classic")
	is.NoErr(err)
	is.Equal(s, Classic())
	s, err = Lookup(" APPY ")
	is.NoErr(err)
	is.Equal(s, Appy())
	_, err = Lookup("wordfeud")
	is.True(errors.Is(err, ErrConfiguration))
	is.Equal(Names(), []string{"appy", "classic"})
}

func TestLoadMatchesBuiltin(t *testing.T) {
	is := is.New(t)
	s, err := Load("testdata/classic.yaml")
	is.NoErr(err)
	is.Equal(s, Classic())
}

func TestResolve(t *testing.T) {
	is := is.New(t)
	s, err := Resolve("appy")
	is.NoErr(err)
	is.Equal(s.Name, AppyName)

	s, err = Resolve("testdata/small.yaml")
	is.NoErr(err)
	is.Equal(s.Rows(), 2)
	is.Equal(s.Cols(), 3)
	is.Equal(s.WordMultiplier[1][1], 2)
	is.Equal(s.LetterMultiplier[0][0], 3)

	_, err = Resolve("testdata/missing_points.yaml")
	is.True(errors.Is(err, ErrConfiguration))

	_, err = Resolve("no-such-scheme")
	is.True(errors.Is(err, ErrConfiguration))
}

func TestReadRejectsBadGrids(t *testing.T) {
	is := is.New(t)
	var sb strings.Builder
	sb.WriteString("name: x\nbingo: 1\npoints: {")
	for i := 0; i < tilemapping.NumTiles; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("\"" + tilemapping.LetterFromIndex(i).String() + "\": 1")
	}
	sb.WriteString("}\n")
	points := sb.String()

	_, err := Read(strings.NewReader(points + "word_multipliers: \"1 1\\n1\"\nletter_multipliers: \"1\"\n"))
	is.True(errors.Is(err, ErrConfiguration))

	_, err = Read(strings.NewReader(points + "word_multipliers: \"1 1\"\nletter_multipliers: \"1\"\n"))
	is.True(errors.Is(err, ErrConfiguration))

	s, err := Read(strings.NewReader(points + "word_multipliers: \"1 2\"\nletter_multipliers: \"1 1\"\n"))
	is.NoErr(err)
	is.Equal(s.Cols(), 2)

	_, err = Read(strings.NewReader(points + "size: 3\nword_multipliers: \"1 2\"\nletter_multipliers: \"1 1\"\n"))
	is.True(errors.Is(err, ErrConfiguration))
}
