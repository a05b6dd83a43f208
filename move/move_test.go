package move

import (
	"errors"
	"sort"
	"testing"

	"github.com/matryer/is"
)

type coordTestStruct struct {
	row      int
	col      int
	vertical bool
	output   string
}

var coordTests = []coordTestStruct{
	{0, 0, false, "1A"},
	{0, 0, true, "A1"},
	{14, 14, false, "15O"},
	{14, 14, true, "O15"},
	{9, 8, false, "10I"},
	{9, 8, true, "I10"},
	{1, 7, false, "2H"},
	{1, 7, true, "H2"},
}

func TestToBoardGameCoords(t *testing.T) {
	for _, tc := range coordTests {
		calc := ToBoardGameCoords(tc.row, tc.col, tc.vertical)
		if calc != tc.output {
			t.Errorf("For row=%v col=%v vertical=%v got %v, expected %v",
				tc.row, tc.col, tc.vertical, calc, tc.output)
		}
	}
}

func TestParseCoords(t *testing.T) {
	for _, tc := range coordTests {
		row, col, vertical, err := ParseCoords(tc.output)
		if err != nil || row != tc.row || col != tc.col || vertical != tc.vertical {
			t.Errorf("For coord %v expected (%v, %v, %v) got (%v, %v, %v, %v)",
				tc.output, tc.row, tc.col, tc.vertical, row, col, vertical, err)
		}
	}
}

func TestParseBadCoords(t *testing.T) {
	is := is.New(t)
	for _, c := range []string{"", "H", "8", "8H8", "0H", "HH", "#1"} {
		_, _, _, err := ParseCoords(c)
		is.True(errors.Is(err, ErrBadCoords))
	}
	row, col, v, err := ParseCoords(" h8 ")
	is.NoErr(err)
	is.Equal(row, 7)
	is.Equal(col, 7)
	is.True(v)
}

func TestNewCandidate(t *testing.T) {
	is := is.New(t)
	c, err := NewCandidate("8F", "kazoo")
	is.NoErr(err)
	is.Equal(c, Candidate{Word: "KAZOO", Row: 7, Col: 5, Dir: Horizontal})
	is.Equal(c.String(), "8F KAZOO")

	c, err = NewCandidate("M11", "liar")
	is.NoErr(err)
	is.Equal(c, Candidate{Word: "LIAR", Row: 10, Col: 12, Dir: Vertical})
	r, col := c.Cell(3)
	is.Equal(r, 13)
	is.Equal(col, 12)

	_, err = NewCandidate("M11", " ")
	is.True(err != nil)
}

func TestCompare(t *testing.T) {
	is := is.New(t)
	base := Candidate{Word: "ZAX", Row: 7, Col: 5, Dir: Horizontal}
	is.Equal(base.Compare(base), 0)
	is.Equal(base.Compare(Candidate{Word: "AX", Row: 0, Col: 0}), 1)
	is.Equal(base.Compare(Candidate{Word: "ZAX", Row: 8, Col: 0}), -1)
	is.Equal(base.Compare(Candidate{Word: "ZAX", Row: 7, Col: 4}), 1)
	is.Equal(base.Compare(Candidate{Word: "ZAX", Row: 7, Col: 5, Dir: Vertical}), -1)
}

func TestBetter(t *testing.T) {
	is := is.New(t)
	scored := []Scored{
		{Candidate{Word: "AX", Row: 7, Col: 7}, 18},
		{Candidate{Word: "ZAX", Row: 7, Col: 6, Dir: Vertical}, 38},
		{Candidate{Word: "ZAX", Row: 5, Col: 7, Dir: Vertical}, 38},
		{Candidate{Word: "ZAX", Row: 7, Col: 5}, 38},
	}
	sort.Slice(scored, func(i, j int) bool { return scored[i].Better(scored[j]) })
	is.Equal(scored[0].Candidate, Candidate{Word: "ZAX", Row: 5, Col: 7, Dir: Vertical})
	is.Equal(scored[1].Candidate, Candidate{Word: "ZAX", Row: 7, Col: 5})
	is.Equal(scored[2].Candidate, Candidate{Word: "ZAX", Row: 7, Col: 6, Dir: Vertical})
	is.Equal(scored[3].Score, 18)
}
