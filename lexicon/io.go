package lexicon

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/domino14/lettersinarow/cache"
	"github.com/domino14/lettersinarow/config"
)

var ErrUnknownEncoding = errors.New("unknown dictionary encoding")

func decoderFor(enc string) (*encoding.Decoder, error) {
	switch strings.ToLower(strings.TrimSpace(enc)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, enc)
}

// Read builds a Vocabulary from a newline-delimited word list in the given
// encoding.
func Read(r io.Reader, enc string) (*Vocabulary, error) {
	dec, err := decoderFor(enc)
	if err != nil {
		return nil, err
	}
	if dec != nil {
		r = transform.NewReader(r, dec)
	}
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if w := strings.TrimSpace(scanner.Text()); w != "" {
			words = append(words, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return Build(words), nil
}

// Open reads a word list file.
func Open(path, enc string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, enc)
}

// Get loads a word list through the global object cache. The cache key
// includes a hash of the file contents and the encoding, so an edited file
// is indexed again.
func Get(cfg *config.Config, path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	enc := cfg.GetString(config.ConfigDictionaryEncoding)
	key := fmt.Sprintf("vocabulary:%s:%s:%016x", path, enc, xxhash.Sum64(data))
	obj, err := cache.Load(cfg, key, func(cfg *config.Config, key string) (any, error) {
		v, err := Read(bytes.NewReader(data), enc)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", path).Int("words", v.NumWords()).Msg("indexed-dictionary")
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return obj.(*Vocabulary), nil
}
