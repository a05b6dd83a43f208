package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/domino14/lettersinarow/move"
)

// hist plots the scores of the last generated moves.
func (sc *ShellController) hist(cmd *shellcmd) (*Response, error) {
	if len(sc.lastGen) == 0 {
		return nil, errors.New("please generate some plays first")
	}
	bins, err := cmd.options.IntDefault("bins", 10)
	if err != nil {
		return nil, err
	}
	if bins < 1 {
		return nil, errors.New("need at least one bin")
	}
	scores := lo.Map(sc.lastGen, func(s move.Scored, _ int) float64 {
		return float64(s.Score)
	})
	mean, stddev := stat.MeanStdDev(scores, nil)
	if len(scores) == 1 {
		stddev = 0
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d moves, mean %.2f, stddev %.2f, min %v, max %v\n",
		len(scores), mean, stddev, lo.Min(scores), lo.Max(scores))
	if err := histogram.Fprint(&sb, histogram.Hist(bins, scores), histogram.Linear(40)); err != nil {
		return nil, err
	}
	return msg(strings.TrimRight(sb.String(), "\n")), nil
}
