package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/lettersinarow/config"
)

func TestBuild(t *testing.T) {
	is := is.New(t)
	v := Build([]string{"one", "two", "three", "thrace", "", "ONE"})
	is.Equal(v.NumWords(), 4)
	is.True(v.IsWord("ONE"))
	is.True(!v.IsWord("one"))
	is.True(!v.IsWord("ON"))

	is.True(v.IsPrefix("ON"))
	is.True(v.IsPrefix("ONE"))
	is.True(v.IsPrefix("THR"))
	is.True(!v.IsPrefix("HRA"))

	is.True(v.IsSubstring("HRA"))
	is.True(v.IsSubstring("T"))
	is.True(v.IsSubstring("WO"))
	is.True(!v.IsSubstring("OW"))
	is.True(!v.IsSubstring(""))

	is.True(strings.HasPrefix(v.String(), "Vocabulary(4 words"))
	is.Equal(v.Words(), []string{"ONE", "THRACE", "THREE", "TWO"})
}

func TestIndicesNest(t *testing.T) {
	is := is.New(t)
	v := Build([]string{"cat", "cats", "scat", "at", "tacos"})
	for w := range v.words {
		is.True(v.IsPrefix(w))
	}
	for p := range v.prefixes {
		is.True(v.IsSubstring(p))
	}
	is.True(v.NumWords() <= v.NumPrefixes())
	is.True(v.NumPrefixes() <= v.NumSubstrings())
	is.True(v.SizeEstimate() > 0)
}

func TestOpen(t *testing.T) {
	is := is.New(t)
	v, err := Open("testdata/small.txt", "")
	is.NoErr(err)
	is.Equal(v.Words(), []string{"ONE", "THRACE", "THREE", "TWO"})
}

func TestEncodings(t *testing.T) {
	is := is.New(t)
	v, err := Open("testdata/latin1.txt", "latin1")
	is.NoErr(err)
	is.True(v.IsWord("CAFÉ"))
	is.True(v.IsWord("NAÏVE"))

	v, err = Open("testdata/latin1.txt", "windows-1252")
	is.NoErr(err)
	is.True(v.IsWord("CAFÉ"))

	_, err = Read(strings.NewReader("a\n"), "ebcdic")
	is.True(errors.Is(err, ErrUnknownEncoding))
}

func TestGetCaches(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	path := filepath.Join(t.TempDir(), "words.txt")
	is.NoErr(os.WriteFile(path, []byte("one\ntwo\n"), 0644))

	v1, err := Get(cfg, path)
	is.NoErr(err)
	v2, err := Get(cfg, path)
	is.NoErr(err)
	is.True(v1 == v2)

	is.NoErr(os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0644))
	v3, err := Get(cfg, path)
	is.NoErr(err)
	is.True(v3 != v1)
	is.Equal(v3.NumWords(), 3)

	_, err = Get(cfg, filepath.Join(t.TempDir(), "missing.txt"))
	is.True(err != nil)
}
