package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/lettersinarow/board"
	"github.com/domino14/lettersinarow/config"
	"github.com/domino14/lettersinarow/lexicon"
	"github.com/domino14/lettersinarow/move"
	"github.com/domino14/lettersinarow/scoring"
	"github.com/domino14/lettersinarow/store"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errNoDictionary      = errors.New("no dictionary loaded; use `dict <path>` first")
)

// Options to configure the interactive shell
type ShellOptions struct {
	numResults int
	threads    int
	color      bool
}

func NewShellOptions(cfg *config.Config) *ShellOptions {
	return &ShellOptions{
		numResults: cfg.GetInt(config.ConfigNumResults),
		threads:    cfg.GetInt(config.ConfigThreads),
		color:      cfg.GetBool(config.ConfigColor),
	}
}

var optionKeys = []string{"num-results", "threads", "color"}

func (opts *ShellOptions) Show(key string) (bool, string) {
	switch key {
	case "num-results":
		return true, strconv.Itoa(opts.numResults)
	case "threads":
		return true, strconv.Itoa(opts.threads)
	case "color":
		return true, strconv.FormatBool(opts.color)
	default:
		return false, "No such option: " + key
	}
}

func (opts *ShellOptions) ToDisplayText() string {
	out := strings.Builder{}
	out.WriteString("Settings:\n")
	for _, key := range optionKeys {
		_, val := opts.Show(key)
		out.WriteString("  " + key + ": ")
		out.WriteString(val + "\n")
	}
	return out.String()
}

// Set changes an option and returns its new displayed value.
func (opts *ShellOptions) Set(key string, values []string) (string, error) {
	if len(values) != 1 {
		return "", fmt.Errorf("%s takes exactly one value", key)
	}
	v := values[0]
	switch key {
	case "num-results", "threads":
		n, err := strconv.Atoi(v)
		if err != nil {
			return "", err
		}
		if n < 1 {
			return "", fmt.Errorf("%s must be at least 1", key)
		}
		if key == "threads" {
			opts.threads = n
		} else {
			opts.numResults = n
		}
	case "color":
		b, err := strconv.ParseBool(v)
		if err != nil {
			return "", err
		}
		opts.color = b
	default:
		return "", errors.New("No such option: " + key)
	}
	_, shown := opts.Show(key)
	return shown, nil
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

func isOption(f string) bool {
	return len(f) > 1 && f[0] == '-' && (f[1] < '0' || f[1] > '9')
}

// extractFields splits a line into a command, positional arguments and
// `-name value` options. Quoting works as in a POSIX shell.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := &shellcmd{cmd: fields[0], options: CmdOptions{}}
	for i := 1; i < len(fields); i++ {
		if !isOption(fields[i]) {
			cmd.args = append(cmd.args, fields[i])
			continue
		}
		if i == len(fields)-1 {
			return nil, errWrongOptionSyntax
		}
		cmd.options[fields[i][1:]] = fields[i+1]
		i++
	}
	return cmd, nil
}

type ShellController struct {
	l        *readline.Instance
	out      io.Writer
	config   *config.Config
	execPath string
	options  *ShellOptions

	st      *board.State
	scheme  *scoring.Scheme
	vocab   *lexicon.Vocabulary
	lastGen []move.Scored
	history *store.History

	cmdMu     sync.Mutex
	cmdCtx    context.Context
	cmdCancel context.CancelFunc
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func writeln(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (sc *ShellController) showMessage(msg string) {
	writeln(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// newController sets up everything but the readline instance. Output goes
// to out.
func newController(cfg *config.Config, execPath string, out io.Writer) *ShellController {
	sc := &ShellController{
		out:      out,
		config:   cfg,
		execPath: execPath,
		options:  NewShellOptions(cfg),
		st:       board.NewEmpty(cfg.GetInt(config.ConfigBoardRows), cfg.GetInt(config.ConfigBoardCols), nil),
	}
	scheme, err := sc.resolveScheme(cfg.GetString(config.ConfigScoring))
	if err != nil {
		log.Warn().Err(err).Msg("using classic scoring")
		scheme = scoring.Classic()
	}
	sc.scheme = scheme
	if path := cfg.GetString(config.ConfigHistoryDB); path != "" {
		h, err := store.Open(sc.ctx(), path)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("could not open history")
		} else {
			sc.history = h
		}
	}
	return sc
}

func NewShellController(cfg *config.Config, execPath string) *ShellController {
	execPath = config.FindBasePath(execPath)
	sc := newController(cfg, execPath, nil)
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mlettersinarow>\033[0m ",
		HistoryFile:     cfg.GetString(config.ConfigShellHistoryFile),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",
		AutoComplete:    NewShellCompleter(sc),

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	sc.out = l.Stderr()
	return sc
}

// dataFile returns path if it exists, otherwise path under the data
// directory.
func (sc *ShellController) dataFile(path string) string {
	if _, err := os.Stat(path); err == nil || filepath.IsAbs(path) {
		return path
	}
	alt := filepath.Join(sc.config.GetString(config.ConfigDataPath), path)
	if _, err := os.Stat(alt); err == nil {
		return alt
	}
	return path
}

func (sc *ShellController) resolveScheme(nameOrPath string) (*scoring.Scheme, error) {
	if s, err := scoring.Lookup(nameOrPath); err == nil {
		return s, nil
	}
	return scoring.Resolve(sc.dataFile(nameOrPath))
}

func (sc *ShellController) handle(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "help", "h":
		return sc.help(cmd)
	case "load":
		return sc.load(cmd)
	case "dict":
		return sc.dict(cmd)
	case "scoring":
		return sc.setScoring(cmd)
	case "rack":
		return sc.rack(cmd)
	case "draw":
		return sc.draw(cmd)
	case "show", "s":
		return sc.show(cmd)
	case "gen":
		return sc.generate(cmd)
	case "add":
		return sc.add(cmd)
	case "hist":
		return sc.hist(cmd)
	case "history":
		return sc.showHistory(cmd)
	case "set":
		return sc.set(cmd)
	case "setconfig":
		return sc.setConfig(cmd)
	case "script":
		return sc.script(cmd)
	default:
		msg := fmt.Sprintf("command %v not found", strconv.Quote(cmd.cmd))
		log.Info().Msg(msg)
		return nil, errors.New(msg)
	}
}

// beginCommand gives the command about to run a context that Interrupt
// cancels. The returned func must be called when the command is done.
func (sc *ShellController) beginCommand() func() {
	ctx, cancel := context.WithCancel(context.Background())
	sc.cmdMu.Lock()
	sc.cmdCtx, sc.cmdCancel = ctx, cancel
	sc.cmdMu.Unlock()
	return func() {
		sc.cmdMu.Lock()
		sc.cmdCtx, sc.cmdCancel = nil, nil
		sc.cmdMu.Unlock()
		cancel()
	}
}

// Interrupt cancels the command that is running, if any, and reports
// whether there was one.
func (sc *ShellController) Interrupt() bool {
	sc.cmdMu.Lock()
	defer sc.cmdMu.Unlock()
	if sc.cmdCancel == nil {
		return false
	}
	sc.cmdCancel()
	return true
}

// Execute runs a single command line, as given on the command line of the
// shell binary.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	if line == "exit" {
		sig <- syscall.SIGINT
		return
	}
	done := sc.beginCommand()
	resp, err := sc.handle(line)
	done()
	if err != nil {
		sc.showError(err)
	} else if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {

	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "bye" {
			sig <- syscall.SIGINT
			break
		}
		sc.Execute(sig, line)
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Cleanup closes whatever the shell opened.
func (sc *ShellController) Cleanup() {
	if sc.history != nil {
		if err := sc.history.Close(); err != nil {
			log.Error().Err(err).Msg("closing-history")
		}
	}
}
