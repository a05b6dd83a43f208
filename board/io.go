package board

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/cespare/xxhash"

	"github.com/domino14/lettersinarow/tilemapping"
)

var cellRegex = regexp.MustCompile(`^(?P<letter>[A-Z])(?P<wildcard>\*)?$`)

// ReadTSV reads a position in tab-separated form. The first line is the
// rack, one tile per field. Each following line is a board row with one
// field per cell: empty, a letter, or a letter followed by * when a wildcard
// tile stands there. Case does not matter. Blank rows and cells past the
// edge of a rows x cols board are ignored; anything else there is an error.
func ReadTSV(r io.Reader, rows, cols int) (*State, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: missing rack line", ErrBadCell)
	}
	var tiles []tilemapping.Letter
	for _, field := range splitLine(scanner.Text()) {
		t, err := tilemapping.ToLetters(field)
		if err != nil {
			return nil, fmt.Errorf("rack: %w", err)
		}
		tiles = append(tiles, t...)
	}
	st := NewEmpty(rows, cols, tiles)

	for row := 0; scanner.Scan(); row++ {
		for col, cell := range splitLine(scanner.Text()) {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			if row >= rows || col >= cols {
				return nil, fmt.Errorf("%w: %q at (%d, %d) is off a %dx%d board",
					ErrBadCell, cell, row, col, rows, cols)
			}
			m := cellRegex.FindStringSubmatch(cell)
			if m == nil {
				return nil, fmt.Errorf("%w: could not read %q at (%d, %d)",
					ErrBadCell, cell, row, col)
			}
			st.SetLetter(row, col, tilemapping.Letter(m[1][0]), m[2] != "")
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return st, nil
}

func splitLine(line string) []string {
	return strings.Split(strings.ToUpper(strings.TrimRight(line, "\r\n")), "\t")
}

// OpenTSV reads a position from a file.
func OpenTSV(path string, rows, cols int) (*State, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	st, err := ReadTSV(f, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return st, nil
}

// WriteTSV writes s in the form ReadTSV reads. The whole rack is written,
// used tiles included.
func (s *State) WriteTSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fields := make([]string, len(s.rack.Tiles))
	for i, t := range s.rack.Tiles {
		fields[i] = t.String()
	}
	bw.WriteString(strings.Join(fields, "\t"))
	bw.WriteByte('\n')
	for _, row := range s.squares {
		fields = fields[:0]
		for _, sq := range row {
			switch {
			case sq.IsEmpty():
				fields = append(fields, "")
			case sq.wildcard:
				fields = append(fields, sq.letter.String()+"*")
			default:
				fields = append(fields, sq.letter.String())
			}
		}
		bw.WriteString(strings.Join(fields, "\t"))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Fingerprint hashes the position, rack included.
func (s *State) Fingerprint() uint64 {
	h := xxhash.New()
	// writes to a hash never fail
	_ = s.WriteTSV(h)
	return h.Sum64()
}
