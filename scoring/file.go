package scoring

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/domino14/lettersinarow/tilemapping"
)

// schemeFile is the on-disk YAML form of a scheme. Grids are written as
// blocks of whitespace-separated integers.
type schemeFile struct {
	Name              string         `yaml:"name"`
	Bingo             int            `yaml:"bingo"`
	Mirror            bool           `yaml:"mirror"`
	Size              int            `yaml:"size"`
	Points            map[string]int `yaml:"points"`
	WordMultipliers   string         `yaml:"word_multipliers"`
	LetterMultipliers string         `yaml:"letter_multipliers"`
}

// Read parses a YAML scheme.
func Read(r io.Reader) (*Scheme, error) {
	var sf schemeFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	points := make(map[tilemapping.Letter]int, len(sf.Points))
	for k, v := range sf.Points {
		runes := []rune(k)
		if len(runes) != 1 {
			return nil, fmt.Errorf("%w: bad points key %q", ErrConfiguration, k)
		}
		l, err := tilemapping.ParseTile(runes[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		points[l] = v
	}
	s := &Scheme{Name: sf.Name, Bingo: sf.Bingo}
	if err := s.setPoints(points); err != nil {
		return nil, err
	}
	var err error
	for _, g := range []struct {
		text string
		dest *[][]int
	}{
		{sf.WordMultipliers, &s.WordMultiplier},
		{sf.LetterMultipliers, &s.LetterMultiplier},
	} {
		if *g.dest, err = ParseGrid(g.text); err != nil {
			return nil, err
		}
		if sf.Mirror {
			if *g.dest, err = Mirror(*g.dest); err != nil {
				return nil, err
			}
		}
	}
	rows, cols := s.Rows(), s.Cols()
	if sf.Size != 0 && (rows != sf.Size || cols != sf.Size) {
		return nil, fmt.Errorf("%w: grids are %dx%d, size says %d",
			ErrConfiguration, rows, cols, sf.Size)
	}
	if err := s.Validate(rows, cols); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads a YAML scheme file.
func Load(path string) (*Scheme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Resolve accepts either the name of a built-in scheme or the path to a
// scheme file.
func Resolve(nameOrPath string) (*Scheme, error) {
	s, err := Lookup(nameOrPath)
	if err == nil {
		return s, nil
	}
	if _, statErr := os.Stat(nameOrPath); statErr != nil {
		if errors.Is(statErr, os.ErrNotExist) {
			return nil, err
		}
		return nil, statErr
	}
	log.Debug().Str("path", nameOrPath).Msg("loading-scoring-scheme")
	return Load(nameOrPath)
}
