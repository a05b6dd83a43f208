package movegen

import (
	"container/heap"
	"sort"

	"github.com/domino14/lettersinarow/move"
)

// scoredHeap keeps the worst entry at the top.
type scoredHeap []move.Scored

func (h scoredHeap) Len() int           { return len(h) }
func (h scoredHeap) Less(i, j int) bool { return h[j].Better(h[i]) }
func (h scoredHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *scoredHeap) Push(x any)        { *h = append(*h, x.(move.Scored)) }
func (h *scoredHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// BestCandidates keeps the n best scored candidates it has been given.
// An exact (candidate, score) pair is only held once, but the same
// candidate under two different scores counts as two entries. It is not
// safe for concurrent use; give each goroutine its own and Merge them.
type BestCandidates struct {
	capacity int
	h        scoredHeap
	seen     map[move.Scored]struct{}
}

func NewBestCandidates(n int) *BestCandidates {
	if n < 0 {
		n = 0
	}
	return &BestCandidates{
		capacity: n,
		h:        make(scoredHeap, 0, n),
		seen:     make(map[move.Scored]struct{}, n),
	}
}

// Add offers a candidate. When the collection is full it is only taken if
// it ranks ahead of the worst entry held, which it then replaces. Ranking
// ahead includes an equal score with a candidate that sorts first, so a
// tie at the cut-off can displace the entry held. The entries kept do not
// depend on the order they arrive in.
func (b *BestCandidates) Add(c move.Candidate, score int) {
	if b.capacity == 0 {
		return
	}
	s := move.Scored{Candidate: c, Score: score}
	if _, ok := b.seen[s]; ok {
		return
	}
	if len(b.h) < b.capacity {
		heap.Push(&b.h, s)
		b.seen[s] = struct{}{}
		return
	}
	worst := b.h[0]
	if !s.Better(worst) {
		return
	}
	delete(b.seen, worst)
	b.h[0] = s
	heap.Fix(&b.h, 0)
	b.seen[s] = struct{}{}
}

// Merge adds every entry of other to b.
func (b *BestCandidates) Merge(other *BestCandidates) {
	for _, s := range other.h {
		b.Add(s.Candidate, s.Score)
	}
}

func (b *BestCandidates) Len() int {
	return len(b.h)
}

// Results returns the entries best first.
func (b *BestCandidates) Results() []move.Scored {
	res := make([]move.Scored, len(b.h))
	copy(res, b.h)
	sort.Slice(res, func(i, j int) bool { return res[i].Better(res[j]) })
	return res
}
