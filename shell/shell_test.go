package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/lettersinarow/board"
	"github.com/domino14/lettersinarow/config"
	"github.com/domino14/lettersinarow/move"
	"github.com/domino14/lettersinarow/scoring"
)

const wordsPath = "../movegen/testdata/words.txt"

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"   ", nil, errNoData},
		{"load -file /path/to/board.tsv",
			&shellcmd{"load", nil, CmdOptions{"file": "/path/to/board.tsv"}},
			nil},
		{"gen 15",
			&shellcmd{"gen", []string{"15"}, CmdOptions{}},
			nil},
		{"add 8H kazoo -note 'first move' ",
			&shellcmd{"add",
				[]string{"8H", "kazoo"},
				CmdOptions{"note": "first move"}},
			nil,
		},
		{"set threads -1",
			&shellcmd{"set", []string{"threads", "-1"}, CmdOptions{}},
			nil},
		{"hist -bins",
			nil, errWrongOptionSyntax},
	}
	for _, t := range cases {
		cmd, err := extractFields(t.line)
		is.Equal(cmd, t.expCmd)
		is.Equal(err, t.expErr)
	}
}

func writeBoard(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kazoo.tsv")
	if err := os.WriteFile(path, []byte(board.KazooBoard), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestController(t *testing.T, cfg *config.Config) (*ShellController, *bytes.Buffer) {
	t.Helper()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	out := &bytes.Buffer{}
	sc := newController(cfg, ".", out)
	t.Cleanup(sc.Cleanup)
	return sc, out
}

func run(t *testing.T, sc *ShellController, line string) string {
	t.Helper()
	resp, err := sc.handle(line)
	if err != nil {
		t.Fatalf("%s: %v", line, err)
	}
	return resp.message
}

func TestGenAndAdd(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t, nil)

	_, err := sc.handle("gen")
	is.Equal(err, errNoDictionary)

	run(t, sc, "dict "+wordsPath)
	run(t, sc, "load "+writeBoard(t))
	is.Equal(sc.st.Rack().String(), "A*IGQKR")

	out := run(t, sc, "gen 3")
	is.True(strings.Contains(out, "  1: K5 KIRS"))
	is.Equal(len(sc.lastGen), 3)
	is.Equal(sc.lastGen[0], move.Scored{
		Candidate: move.Candidate{Word: "KIRS", Row: 4, Col: 10, Dir: move.Vertical},
		Score:     26,
	})

	_, err = sc.handle("add #4")
	is.True(err != nil)

	run(t, sc, "add #1")
	is.Equal(string(rune(sc.st.Letter(4, 10))), "K")
	is.Equal(string(rune(sc.st.Letter(7, 10))), "S")
	is.Equal(len(sc.lastGen), 0)

	// the same move typed in
	other, _ := newTestController(t, nil)
	run(t, other, "load "+writeBoard(t))
	run(t, other, "add K5 kirs")
	is.Equal(other.st.Fingerprint(), sc.st.Fingerprint())

	_, err = other.handle("add K5 KIRS")
	is.NoErr(err) // already on the board
	_, err = other.handle("add K5 KILO")
	is.True(errors.Is(err, board.ErrInvalidCandidate))
}

func TestInterruptGen(t *testing.T) {
	is := is.New(t)
	sc, out := newTestController(t, nil)
	run(t, sc, "dict "+wordsPath)
	run(t, sc, "load "+writeBoard(t))

	is.True(!sc.Interrupt()) // nothing running

	done := sc.beginCommand()
	is.True(sc.Interrupt())
	_, err := sc.handle("gen 3")
	is.True(errors.Is(err, context.Canceled))
	is.Equal(sc.lastGen, nil)
	done()
	is.True(!sc.Interrupt())

	// the next command gets a fresh context
	sc.Execute(make(chan os.Signal, 1), "gen 3")
	is.True(strings.Contains(out.String(), "  1: K5 KIRS"))
	is.Equal(len(sc.lastGen), 3)
}

func TestRackAndDraw(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t, nil)

	run(t, sc, "rack axezqjv")
	is.Equal(run(t, sc, "rack"), "AXEZQJV")

	_, err := sc.handle("rack AB1")
	is.True(err != nil)

	run(t, sc, "draw")
	is.Equal(sc.st.Rack().NumTiles(), 7)
	run(t, sc, "draw 12")
	is.Equal(sc.st.Rack().NumTiles(), 12)
	_, err = sc.handle("draw 0")
	is.True(err != nil)
}

func TestScoring(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t, nil)
	is.Equal(sc.scheme.Name, scoring.ClassicName)

	run(t, sc, "scoring APPY")
	is.Equal(sc.scheme.Name, scoring.AppyName)
	is.True(strings.Contains(run(t, sc, "scoring"), scoring.AppyName))

	run(t, sc, "scoring ../scoring/testdata/classic.yaml")
	is.Equal(sc.scheme.Points, scoring.Classic().Points)

	// a 2x3 scheme does not fit a 15x15 board
	_, err := sc.handle("scoring ../scoring/testdata/small.yaml")
	is.True(errors.Is(err, scoring.ErrConfiguration))

	run(t, sc, "dict "+wordsPath)
	run(t, sc, "load "+writeBoard(t))
	run(t, sc, "scoring appy")
	run(t, sc, "gen 1")
	is.Equal(sc.lastGen[0].Word, "AKARA")
}

func TestHist(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t, nil)
	_, err := sc.handle("hist")
	is.True(err != nil)

	run(t, sc, "dict "+wordsPath)
	run(t, sc, "load "+writeBoard(t))
	run(t, sc, "gen 100")
	out := run(t, sc, "hist -bins 5")
	is.True(strings.HasPrefix(out, "100 moves, mean "))

	_, err = sc.handle("hist -bins zero")
	is.True(err != nil)
}

func TestHistory(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigHistoryDB, filepath.Join(t.TempDir(), "history.db"))
	sc, _ := newTestController(t, cfg)
	is.True(sc.history != nil)

	is.Equal(run(t, sc, "history"), "no solves recorded")
	run(t, sc, "dict "+wordsPath)
	run(t, sc, "load "+writeBoard(t))
	run(t, sc, "gen 3")
	run(t, sc, "rack QQQ")
	run(t, sc, "gen 3")

	out := run(t, sc, "history")
	lines := strings.Split(out, "\n")
	is.Equal(len(lines), 2)
	is.True(strings.Contains(lines[0], "rack=QQQ"))
	is.True(strings.Contains(lines[0], "no moves"))
	is.True(strings.Contains(lines[1], "rack=A*IGQKR"))
	is.True(strings.Contains(lines[1], "K5 KIRS"))

	is.Equal(len(strings.Split(run(t, sc, "history 1"), "\n")), 1)
	// the current position has the QQQ rack
	is.Equal(len(strings.Split(run(t, sc, "history -board true"), "\n")), 1)

	plain, _ := newTestController(t, nil)
	_, err := plain.handle("history")
	is.True(err != nil)
}

func TestSet(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t, nil)

	is.True(strings.HasPrefix(run(t, sc, "set"), "Settings:"))
	is.Equal(run(t, sc, "set threads 4"), "set threads to 4")
	is.Equal(sc.options.threads, 4)
	is.Equal(run(t, sc, "set color"), "false")
	run(t, sc, "set color true")
	is.True(sc.options.color)

	for _, bad := range []string{"set threads 0", "set threads four", "set nope 1", "set color maybe"} {
		_, err := sc.handle(bad)
		is.True(err != nil) // bad
	}
	_, err := sc.handle("setconfig threads 3")
	is.True(err != nil) // no config file to write

	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigConfigFile, filepath.Join(t.TempDir(), "liar.yaml"))
	withFile, _ := newTestController(t, cfg)
	run(t, withFile, "setconfig threads 3")
	is.Equal(cfg.GetInt(config.ConfigThreads), 3)
}

func TestScript(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t, nil)
	script := fmt.Sprintf(`
liar_dict(%q)
liar_load(%q)
liar_gen("3")
local m, score = liar_best(1)
assert(m == "K5 KIRS", m)
assert(score == 26)
assert(liar_best(9) == nil)
assert(string.sub(liar_gen("x"), 1, 6) == "ERROR:")
liar_add("#1")
`, wordsPath, writeBoard(t))
	path := filepath.Join(t.TempDir(), "play.lua")
	is.NoErr(os.WriteFile(path, []byte(script), 0o644))

	run(t, sc, "script "+path)
	is.Equal(string(rune(sc.st.Letter(4, 10))), "K")

	bad := filepath.Join(t.TempDir(), "bad.lua")
	is.NoErr(os.WriteFile(bad, []byte(`assert(false, "boom")`), 0o644))
	_, err := sc.handle("script " + bad)
	is.True(err != nil)
}

func TestHelpAndUnknown(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t, nil)
	is.True(strings.HasPrefix(run(t, sc, "help"), "Commands:"))
	is.True(strings.HasPrefix(run(t, sc, "help gen"), "gen [n]"))
	is.True(strings.HasPrefix(run(t, sc, "help nope"), "There is no help text"))

	_, err := sc.handle("frobnicate")
	is.True(err != nil)

	var sig chan os.Signal
	sc.Execute(sig, "frobnicate")
	out := sc.out.(*bytes.Buffer).String()
	is.True(strings.HasPrefix(out, `Error: command "frobnicate" not found`))
}

func completions(c *ShellCompleter, line string) []string {
	matches, _ := c.Do([]rune(line), len(line))
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = string(m)
	}
	return out
}

func TestCompleter(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t, nil)
	c := NewShellCompleter(sc)

	is.Equal(completions(c, "sc"), []string{"oring", "ript"})
	is.Equal(completions(c, "set th"), []string{"reads"})
	is.Equal(completions(c, "hist -b"), []string{"ins"})
	is.Equal(completions(c, "history -board "), []string{"true", "false"})
	is.Equal(completions(c, "scoring cl"), []string{"assic"})
	is.Equal(completions(c, "load helptext/us"), []string{"age.txt"})
}
