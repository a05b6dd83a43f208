package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/domino14/lettersinarow/tilemapping"
)

const (
	ClassicName = "classic"
	AppyName    = "appy"
)

var classicPoints = map[tilemapping.Letter]int{
	'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1, 'F': 4, 'G': 2, 'H': 4, 'I': 1,
	'J': 8, 'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1, 'P': 3, 'Q': 10, 'R': 1,
	'S': 1, 'T': 1, 'U': 1, 'V': 4, 'W': 4, 'X': 8, 'Y': 4, 'Z': 10,
	tilemapping.Wildcard: 0,
}

const classicWordQuadrant = `
3 1 1 1 1 1 1 3
1 2 1 1 1 1 1 1
1 1 2 1 1 1 1 1
1 1 1 2 1 1 1 1
1 1 1 1 2 1 1 1
1 1 1 1 1 1 1 1
1 1 1 1 1 1 1 1
3 1 1 1 1 1 1 2
`

const classicLetterQuadrant = `
1 1 1 2 1 1 1 1
1 1 1 1 1 3 1 1
1 1 1 1 1 1 2 1
2 1 1 1 1 1 1 2
1 1 1 1 1 1 1 1
1 3 1 1 1 3 1 1
1 1 2 1 1 1 2 1
1 1 1 2 1 1 1 1
`

var appyPoints = map[tilemapping.Letter]int{
	'A': 1, 'B': 4, 'C': 4, 'D': 2, 'E': 1, 'F': 4, 'G': 3, 'H': 3, 'I': 1,
	'J': 10, 'K': 5, 'L': 2, 'M': 4, 'N': 2, 'O': 1, 'P': 4, 'Q': 10, 'R': 1,
	'S': 1, 'T': 1, 'U': 2, 'V': 5, 'W': 4, 'X': 8, 'Y': 3, 'Z': 10,
	tilemapping.Wildcard: 0,
}

const appyWordQuadrant = `
1 1 1 3 1 1 1 1
1 1 1 1 1 2 1 1
1 1 1 1 1 1 1 1
3 1 1 1 1 1 1 2
1 1 1 1 1 1 1 1
1 2 1 1 1 1 1 1
1 1 1 1 1 1 1 1
1 1 1 2 1 1 1 2
`

const appyLetterQuadrant = `
1 1 1 1 1 1 3 1
1 1 2 1 1 1 1 1
1 2 1 1 2 1 1 1
1 1 1 3 1 1 1 1
1 1 2 1 1 1 2 1
1 1 1 1 1 3 1 1
3 1 1 1 2 1 1 1
1 1 1 1 1 1 1 1
`

var (
	classic = mustQuadrant(ClassicName, classicPoints, classicWordQuadrant, classicLetterQuadrant, 50)
	appy    = mustQuadrant(AppyName, appyPoints, appyWordQuadrant, appyLetterQuadrant, 35)

	builtin = map[string]*Scheme{
		ClassicName: classic,
		AppyName:    appy,
	}
)

func mustQuadrant(name string, points map[tilemapping.Letter]int, word, letter string, bingo int) *Scheme {
	s, err := FromQuadrant(name, points, word, letter, bingo)
	if err != nil {
		panic(err)
	}
	return s
}

// Classic is the classic crossword game: a 15x15 board and a 50-point bingo.
func Classic() *Scheme {
	return classic
}

// Appy is the mobile-app variant, with its own board and a 35-point bingo.
func Appy() *Scheme {
	return appy
}

// Lookup finds a built-in scheme by name, ignoring case.
func Lookup(name string) (*Scheme, error) {
	s, ok := builtin[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: no scoring scheme named %q (have %s)",
			ErrConfiguration, name, strings.Join(Names(), ", "))
	}
	return s, nil
}

// Names lists the built-in schemes.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
