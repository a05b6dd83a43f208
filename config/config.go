package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDataPath            = "data-path"
	ConfigScoring             = "scoring"
	ConfigNumResults          = "num-results"
	ConfigThreads             = "threads"
	ConfigDictionaryEncoding  = "dictionary-encoding"
	ConfigBoardRows           = "board-rows"
	ConfigBoardCols           = "board-cols"
	ConfigHistoryDB           = "history-db"
	ConfigColor               = "color"
	ConfigDebug               = "debug"
	ConfigLogLevel            = "log-level"
	ConfigCPUProfile          = "cpu-profile"
	ConfigConfigFile          = "config-file"
	ConfigCacheMemoryFraction = "cache-memory-fraction"
	ConfigShellHistoryFile    = "shell-history-file"
)

// EnvPrefix is prepended to every key to get its environment variable,
// with dashes turned into underscores: LIAR_NUM_RESULTS and so on.
const EnvPrefix = "LIAR"

type Config struct {
	*viper.Viper
	args []string
}

var pathKeys = []string{ConfigDataPath, ConfigHistoryDB, ConfigShellHistoryFile}

func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.SetDefault(ConfigDataPath, "./data")
	c.SetDefault(ConfigScoring, "classic")
	c.SetDefault(ConfigNumResults, 3)
	c.SetDefault(ConfigThreads, 1)
	c.SetDefault(ConfigDictionaryEncoding, "utf-8")
	c.SetDefault(ConfigBoardRows, 15)
	c.SetDefault(ConfigBoardCols, 15)
	c.SetDefault(ConfigHistoryDB, "")
	c.SetDefault(ConfigColor, false)
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigLogLevel, "info")
	c.SetDefault(ConfigCPUProfile, "")
	c.SetDefault(ConfigConfigFile, "")
	c.SetDefault(ConfigCacheMemoryFraction, 0.25)
	c.SetDefault(ConfigShellHistoryFile, "/tmp/lettersinarow-history")
	return c
}

// Load parses command-line flags, then environment variables, then the
// config file named by --config-file if there is one. Flags win over the
// environment, which wins over the file.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("lettersinarow", pflag.ContinueOnError)

	fs.String(ConfigDataPath, c.GetString(ConfigDataPath), "directory holding dictionaries and scoring schemes")
	fs.StringP(ConfigScoring, "s", c.GetString(ConfigScoring), "scoring scheme: classic, appy, or a YAML file")
	fs.IntP(ConfigNumResults, "n", c.GetInt(ConfigNumResults), "number of results to show")
	fs.Int(ConfigThreads, c.GetInt(ConfigThreads), "number of rows to search in parallel")
	fs.String(ConfigDictionaryEncoding, c.GetString(ConfigDictionaryEncoding), "dictionary encoding: utf-8, latin1 or windows-1252")
	fs.Int(ConfigBoardRows, c.GetInt(ConfigBoardRows), "board rows")
	fs.Int(ConfigBoardCols, c.GetInt(ConfigBoardCols), "board columns")
	fs.String(ConfigHistoryDB, c.GetString(ConfigHistoryDB), "SQLite file to record solves in")
	fs.Bool(ConfigColor, c.GetBool(ConfigColor), "highlight placed tiles")
	fs.Bool(ConfigDebug, c.GetBool(ConfigDebug), "debug logging on")
	fs.String(ConfigLogLevel, c.GetString(ConfigLogLevel), "log level: trace, debug, info, warn, error")
	fs.String(ConfigCPUProfile, c.GetString(ConfigCPUProfile), "write a CPU profile to this file")
	fs.String(ConfigConfigFile, c.GetString(ConfigConfigFile), "optional YAML/TOML/JSON config file")
	fs.Float64(ConfigCacheMemoryFraction, c.GetFloat64(ConfigCacheMemoryFraction), "fraction of system memory the dictionary cache may use")
	fs.String(ConfigShellHistoryFile, c.GetString(ConfigShellHistoryFile), "readline history file for the shell")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.SetEnvPrefix(EnvPrefix)
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if cf := c.GetString(ConfigConfigFile); cf != "" {
		c.SetConfigFile(cf)
		if err := c.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", cf, err)
		}
		log.Debug().Str("file", cf).Msg("read-config-file")
	}
	c.args = fs.Args()
	return nil
}

// Args returns the positional arguments left over after flag parsing.
func (c *Config) Args() []string {
	return c.args
}

// AdjustRelativePaths makes the configured paths absolute, taking relative
// ones to be relative to basepath (usually the executable's directory).
func (c *Config) AdjustRelativePaths(basepath string) {
	basepath = FindBasePath(basepath)
	for _, k := range pathKeys {
		p := c.GetString(k)
		if p == "" || filepath.IsAbs(p) {
			continue
		}
		c.Set(k, filepath.Join(basepath, p))
	}
}

// FindBasePath walks up from path looking for a directory that holds a
// data directory. If none is found, path is returned unchanged.
func FindBasePath(path string) string {
	dir := path
	for {
		if fi, err := os.Stat(filepath.Join(dir, "data")); err == nil && fi.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return path
		}
		dir = parent
	}
}

// SanitizedSettings lists every setting as "key = value", sorted by key.
// The config-file key is left out since it cannot be changed at run time.
func (c *Config) SanitizedSettings() []string {
	settings := c.AllSettings()
	keys := make([]string, 0, len(settings))
	for k := range settings {
		if k == ConfigConfigFile {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = fmt.Sprintf("%s = %v", k, settings[k])
	}
	return lines
}

// Write saves the current settings back to the config file.
func (c *Config) Write() error {
	cf := c.GetString(ConfigConfigFile)
	if cf == "" {
		return errors.New("no config file set; start with --config-file")
	}
	return c.WriteConfigAs(cf)
}
