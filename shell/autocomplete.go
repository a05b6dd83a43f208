package shell

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/domino14/lettersinarow/scoring"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string
	Args    []string
	// Files is set for commands that take a path.
	Files bool
}

var commandMetadata = map[string]CommandMetadata{
	"load":    {Files: true},
	"dict":    {Files: true},
	"script":  {Files: true},
	"scoring": {Files: true},
	"hist":    {Options: []string{"-bins"}},
	"history": {Options: []string{"-board"}},
	"set":     {Args: optionKeys},
	"setconfig": {
		Args: []string{
			"data-path", "scoring", "num-results", "threads",
			"dictionary-encoding", "board-rows", "board-cols", "history-db",
			"color", "cache-memory-fraction",
		},
	},
	"help": {Args: []string{"gen", "add", "scoring", "script", "hist"}},
}

var commandNames = []string{
	"help", "load", "dict", "scoring", "rack", "draw", "show", "gen", "add",
	"hist", "history", "set", "setconfig", "script", "exit",
}

var boolValues = []string{"true", "false"}

// fileCompletions lists the entries of the directory part of prefix.
func fileCompletions(prefix string) []string {
	dir, base := filepath.Split(prefix)
	readFrom := dir
	if readFrom == "" {
		readFrom = "."
	}
	entries, err := os.ReadDir(readFrom)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), base) {
			continue
		}
		name := dir + e.Name()
		if e.IsDir() {
			name += string(filepath.Separator)
		}
		out = append(out, name)
	}
	return out
}

// Do implements the readline.AutoComplete interface
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	// Parse the line using shellquote to handle quoted strings properly
	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		var lastCompleteField string
		if endsWithSpace {
			lastCompleteField = fields[len(fields)-1]
		} else if len(fields) > 1 {
			lastCompleteField = fields[len(fields)-2]
		}

		switch {
		case lastCompleteField == "-board" || lastCompleteField == "color":
			completions = boolValues
		case cmdName == "scoring" && !strings.ContainsRune(prefix, filepath.Separator):
			completions = append(scoring.Names(), fileCompletions(prefix)...)
		default:
			metadata := commandMetadata[cmdName]
			switch {
			case metadata.Files:
				completions = fileCompletions(prefix)
			case strings.HasPrefix(prefix, "-"):
				completions = metadata.Options
			case len(metadata.Args) > 0:
				completions = metadata.Args
			default:
				completions = metadata.Options
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			// Return only the part that needs to be added
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}
	return matches, len(prefix)
}
