package movegen

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/lettersinarow/move"
)

func cand(word string) move.Candidate {
	return move.Candidate{Word: word, Row: 7, Col: 7}
}

func words(res []move.Scored) []string {
	out := make([]string, len(res))
	for i, r := range res {
		out[i] = r.Word
	}
	return out
}

func TestBestCandidates(t *testing.T) {
	is := is.New(t)
	best := NewBestCandidates(2)
	is.Equal(len(best.Results()), 0)

	best.Add(cand("X"), 10)
	is.Equal(best.Results(), []move.Scored{{Candidate: cand("X"), Score: 10}})
	best.Add(cand("X"), 10)
	is.Equal(best.Results(), []move.Scored{{Candidate: cand("X"), Score: 10}})
	best.Add(cand("Y"), 5)
	is.Equal(best.Results(), []move.Scored{{Candidate: cand("X"), Score: 10}, {Candidate: cand("Y"), Score: 5}})
	best.Add(cand("Z"), 6)
	is.Equal(best.Results(), []move.Scored{{Candidate: cand("X"), Score: 10}, {Candidate: cand("Z"), Score: 6}})

	// below the minimum when full: nothing changes
	best.Add(cand("W"), 1)
	is.Equal(words(best.Results()), []string{"X", "Z"})
	is.Equal(best.Len(), 2)
}

func TestBestCandidatesSameCandidateTwoScores(t *testing.T) {
	is := is.New(t)
	best := NewBestCandidates(5)
	best.Add(cand("AX"), 18)
	best.Add(cand("AX"), 2)
	best.Add(cand("AX"), 18)
	is.Equal(best.Results(), []move.Scored{{Candidate: cand("AX"), Score: 18}, {Candidate: cand("AX"), Score: 2}})
}

func TestBestCandidatesTies(t *testing.T) {
	is := is.New(t)
	best := NewBestCandidates(2)
	best.Add(cand("ZAX"), 38)
	best.Add(cand("AXE"), 38)
	// an equal score only gets in by ranking ahead of the worst entry
	best.Add(cand("EX"), 38)
	is.Equal(words(best.Results()), []string{"AXE", "EX"})
	best.Add(cand("ZZZ"), 38)
	is.Equal(words(best.Results()), []string{"AXE", "EX"})
}

func TestBestCandidatesZeroCapacity(t *testing.T) {
	is := is.New(t)
	for _, n := range []int{0, -3} {
		best := NewBestCandidates(n)
		best.Add(cand("ZAX"), 38)
		is.Equal(best.Len(), 0)
	}
}

func TestMergeOrderIndependent(t *testing.T) {
	is := is.New(t)
	entries := []move.Scored{
		{Candidate: cand("A"), Score: 3}, {Candidate: cand("B"), Score: 9}, {Candidate: cand("C"), Score: 9}, {Candidate: cand("D"), Score: 1},
		{Candidate: cand("E"), Score: 7}, {Candidate: cand("F"), Score: 7}, {Candidate: cand("G"), Score: 12}, {Candidate: cand("A"), Score: 4},
	}
	single := NewBestCandidates(4)
	for _, e := range entries {
		single.Add(e.Candidate, e.Score)
	}
	left, right := NewBestCandidates(4), NewBestCandidates(4)
	for i, e := range entries {
		if i%3 == 0 {
			left.Add(e.Candidate, e.Score)
		} else {
			right.Add(e.Candidate, e.Score)
		}
	}
	lr := NewBestCandidates(4)
	lr.Merge(left)
	lr.Merge(right)
	rl := NewBestCandidates(4)
	rl.Merge(right)
	rl.Merge(left)

	is.Equal(lr.Results(), single.Results())
	is.Equal(rl.Results(), single.Results())
	is.Equal(words(single.Results()), []string{"G", "B", "C", "E"})
}
