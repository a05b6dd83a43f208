package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/lettersinarow/board"
	"github.com/domino14/lettersinarow/config"
	"github.com/domino14/lettersinarow/lexicon"
	"github.com/domino14/lettersinarow/move"
	"github.com/domino14/lettersinarow/movegen"
	"github.com/domino14/lettersinarow/scoring"
	"github.com/domino14/lettersinarow/tilemapping"
)

type Response struct {
	message string
}

type CmdOptions map[string]string

func (c CmdOptions) String(key string) string {
	return c[key]
}

func (c CmdOptions) Int(key string) (int, error) {
	v, ok := c[key]
	if !ok {
		return 0, errors.New(key + " not found in options")
	}
	return strconv.Atoi(v)
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v, ok := c[key]
	if !ok {
		return defaultI, nil
	}
	return strconv.Atoi(v)
}

func (c CmdOptions) Bool(key string) bool {
	return strings.ToLower(c[key]) == "true"
}

func msg(message string) *Response {
	return &Response{message: message}
}

// ctx is the context of the running command, or the background context
// outside one.
func (sc *ShellController) ctx() context.Context {
	sc.cmdMu.Lock()
	defer sc.cmdMu.Unlock()
	if sc.cmdCtx == nil {
		return context.Background()
	}
	return sc.cmdCtx
}

// intArg parses the first positional argument, or returns def if there is
// none.
func intArg(cmd *shellcmd, def int) (int, error) {
	if len(cmd.args) == 0 {
		return def, nil
	}
	n, err := strconv.Atoi(cmd.args[0])
	if err != nil {
		return 0, fmt.Errorf("%s: %w", cmd.cmd, err)
	}
	return n, nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return msg(sc.options.ToDisplayText()), nil
	}
	opt := cmd.args[0]
	if len(cmd.args) == 1 {
		_, val := sc.options.Show(opt)
		return msg(val), nil
	}
	ret, err := sc.options.Set(opt, cmd.args[1:])
	if err != nil {
		return nil, err
	}
	return msg("set " + opt + " to " + ret), nil
}

func (sc *ShellController) setConfig(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) < 2 {
		return nil, errors.New("usage: setconfig <key> <value>")
	}
	key := cmd.args[0]
	value := cmd.args[1]

	sc.config.Set(key, value)
	if err := sc.config.Write(); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}
	return msg(fmt.Sprintf("set config %s to %s and saved to file", key, value)), nil
}

func (sc *ShellController) boardDisplay() string {
	return sc.st.ToDisplayText(sc.scheme, sc.options.color)
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: load <board.tsv>")
	}
	path := sc.dataFile(cmd.args[0])
	st, err := board.OpenTSV(path, sc.config.GetInt(config.ConfigBoardRows),
		sc.config.GetInt(config.ConfigBoardCols))
	if err != nil {
		return nil, err
	}
	sc.st = st
	sc.lastGen = nil
	log.Debug().Str("path", path).Int("tiles", st.TilesPlayed()).Msg("loaded-board")
	return msg(sc.boardDisplay()), nil
}

func (sc *ShellController) dict(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		if sc.vocab == nil {
			return nil, errNoDictionary
		}
		return msg(sc.vocab.String()), nil
	}
	v, err := lexicon.Get(sc.config, sc.dataFile(cmd.args[0]))
	if err != nil {
		return nil, err
	}
	sc.vocab = v
	sc.lastGen = nil
	return msg(v.String()), nil
}

func (sc *ShellController) setScoring(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return msg(fmt.Sprintf("scoring: %s (built in: %s)", sc.scheme.Name,
			strings.Join(scoring.Names(), ", "))), nil
	}
	s, err := sc.resolveScheme(cmd.args[0])
	if err != nil {
		return nil, err
	}
	if err := s.Validate(sc.st.Rows(), sc.st.Cols()); err != nil {
		return nil, err
	}
	sc.scheme = s
	sc.lastGen = nil
	return msg("scoring set to " + s.Name), nil
}

func (sc *ShellController) rack(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return msg(sc.st.Rack().String()), nil
	}
	tiles, err := tilemapping.ToLetters(cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.st = sc.st.WithRack(tiles)
	sc.lastGen = nil
	return msg(sc.boardDisplay()), nil
}

func (sc *ShellController) draw(cmd *shellcmd) (*Response, error) {
	n, err := intArg(cmd, tilemapping.DefaultRackSize)
	if err != nil {
		return nil, err
	}
	if n < 1 || n > movegen.MaxRackSize {
		return nil, fmt.Errorf("can only draw between 1 and %d tiles", movegen.MaxRackSize)
	}
	bag := tilemapping.NewBag(tilemapping.EnglishLetterDistribution())
	sc.st = sc.st.WithRack(bag.Draw(n))
	sc.lastGen = nil
	return msg(sc.boardDisplay()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	return msg(sc.boardDisplay()), nil
}

func moveTableHeader() string {
	return "     Move                 Score"
}

func MoveTableRow(idx int, s move.Scored) string {
	return fmt.Sprintf("%3d: %-21s%d", idx+1, s.Coords()+" "+s.Word, s.Score)
}

func (sc *ShellController) generate(cmd *shellcmd) (*Response, error) {
	if sc.vocab == nil {
		return nil, errNoDictionary
	}
	n, err := intArg(cmd, sc.options.numResults)
	if err != nil {
		return nil, err
	}
	solver := movegen.NewSolver(sc.scheme, sc.vocab, movegen.WithThreads(sc.options.threads))
	res, err := solver.BestWords(sc.ctx(), sc.st, n)
	if errors.Is(err, context.Canceled) {
		return nil, fmt.Errorf("gen interrupted: %w", err)
	}
	if err != nil {
		return nil, err
	}
	sc.lastGen = res
	if sc.history != nil {
		if _, err := sc.history.Record(sc.ctx(), sc.st, sc.scheme.Name, res); err != nil {
			log.Error().Err(err).Msg("recording-solve")
		}
	}
	if len(res) == 0 {
		return msg("no moves found"), nil
	}
	var sb strings.Builder
	sb.WriteString(moveTableHeader())
	for i, s := range res {
		sb.WriteString("\n" + MoveTableRow(i, s))
	}
	return msg(sb.String()), nil
}

func (sc *ShellController) add(cmd *shellcmd) (*Response, error) {
	var c move.Candidate
	switch {
	case len(cmd.args) == 1 && strings.HasPrefix(cmd.args[0], "#"):
		id, err := strconv.Atoi(cmd.args[0][1:])
		if err != nil {
			return nil, err
		}
		idx := id - 1
		if idx < 0 || idx >= len(sc.lastGen) {
			return nil, errors.New("play outside range")
		}
		c = sc.lastGen[idx].Candidate
	case len(cmd.args) == 2:
		var err error
		c, err = move.NewCandidate(cmd.args[0], cmd.args[1])
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("usage: add #<n> or add <coords> <word>")
	}
	st, err := sc.st.ApplyCandidate(c)
	if err != nil {
		return nil, err
	}
	sc.st = st
	sc.lastGen = nil
	log.Debug().Str("move", c.String()).Msg("added-move")
	return msg(sc.boardDisplay()), nil
}

func (sc *ShellController) showHistory(cmd *shellcmd) (*Response, error) {
	if sc.history == nil {
		return nil, errors.New("no history database; start with --history-db")
	}
	n, err := intArg(cmd, 10)
	if err != nil {
		return nil, err
	}
	var solves []string
	if cmd.options.Bool("board") {
		found, err := sc.history.ForBoard(sc.ctx(), sc.st.Fingerprint())
		if err != nil {
			return nil, err
		}
		for _, s := range found {
			solves = append(solves, s.String())
		}
	} else {
		found, err := sc.history.Recent(sc.ctx(), n)
		if err != nil {
			return nil, err
		}
		for _, s := range found {
			solves = append(solves, s.String())
		}
	}
	if len(solves) == 0 {
		return msg("no solves recorded"), nil
	}
	return msg(strings.Join(solves, "\n")), nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	var sb strings.Builder
	if len(cmd.args) == 0 {
		usage(&sb)
	} else {
		usageTopic(&sb, cmd.args[0])
	}
	return msg(strings.TrimRight(sb.String(), "\n")), nil
}
