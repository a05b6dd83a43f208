// Command solve prints the best placements of the rack on a board.
//
//	solve [flags] <board.tsv> <dictionary.txt>
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/lettersinarow/board"
	"github.com/domino14/lettersinarow/config"
	"github.com/domino14/lettersinarow/lexicon"
	"github.com/domino14/lettersinarow/movegen"
	"github.com/domino14/lettersinarow/scoring"
	"github.com/domino14/lettersinarow/store"
)

func main() {
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	cfg := config.DefaultConfig()
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("loading-config")
	}
	cfg.AdjustRelativePaths(filepath.Dir(ex))
	setupLogging(cfg)

	if cfg.GetString(config.ConfigCPUProfile) != "" {
		f, err := os.Create(cfg.GetString(config.ConfigCPUProfile))
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, cfg, os.Stdout); err != nil {
		// deferred profile flush is skipped by Fatal
		pprof.StopCPUProfile()
		log.Fatal().Err(err).Msg("solve-failed")
	}
}

func run(ctx context.Context, cfg *config.Config, w io.Writer) error {
	args := cfg.Args()
	if len(args) != 2 {
		return errors.New("usage: solve [flags] <board.tsv> <dictionary.txt>")
	}
	scheme, err := scoring.Resolve(cfg.GetString(config.ConfigScoring))
	if err != nil {
		return err
	}
	st, err := board.OpenTSV(args[0], cfg.GetInt(config.ConfigBoardRows),
		cfg.GetInt(config.ConfigBoardCols))
	if err != nil {
		return err
	}
	vocab, err := lexicon.Get(cfg, args[1])
	if err != nil {
		return err
	}
	log.Debug().Str("scheme", scheme.Name).Str("rack", st.Rack().String()).
		Str("vocabulary", vocab.String()).Msg("solving")

	solver := movegen.NewSolver(scheme, vocab, movegen.WithThreads(cfg.GetInt(config.ConfigThreads)))
	results, err := solver.BestWords(ctx, st, cfg.GetInt(config.ConfigNumResults))
	if err != nil {
		return err
	}

	if path := cfg.GetString(config.ConfigHistoryDB); path != "" {
		h, err := store.Open(ctx, path)
		if err != nil {
			return err
		}
		defer h.Close()
		id, err := h.Record(ctx, st, scheme.Name, results)
		if err != nil {
			return err
		}
		log.Info().Int64("id", id).Str("path", path).Msg("recorded-solve")
	}

	color := cfg.GetBool(config.ConfigColor)
	for _, r := range results {
		next, err := st.ApplyCandidate(r.Candidate)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "### %d: %s\n", r.Score, r.Word)
		fmt.Fprintln(w, next.ToDisplayText(scheme, color))
		fmt.Fprintln(w)
	}
	return nil
}

func setupLogging(cfg *config.Config) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	level, err := zerolog.ParseLevel(cfg.GetString(config.ConfigLogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	if cfg.GetBool(config.ConfigDebug) {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
}
