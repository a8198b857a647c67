package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/leg100/tabbed/internal/logging"
	"github.com/leg100/tabbed/internal/session"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/peterbourgon/ff/v4/ffyaml"
)

type config struct {
	DataDir     string
	Session     string
	FileManager string
	OpenWith    string
	DumpRecord  string
	Debug       bool
	Version     bool
	// Files to open once the session has loaded.
	Files []string

	loggingOptions logging.Options
}

// set config in order of precedence:
// 1. flags > 2. env vars > 3. config file
func parse(stderr io.Writer, args []string) (config, error) {
	var cfg config

	home, err := os.UserHomeDir()
	if err != nil {
		return config{}, fmt.Errorf("retrieving user's home directory: %w", err)
	}
	defaultDataDir := filepath.Join(home, ".tabbed")
	defaultConfigFile := filepath.Join(home, ".tabbed.yaml")
	defaultOpenWith := os.Getenv("EDITOR")
	if defaultOpenWith == "" {
		defaultOpenWith = "vi"
	}

	fs := ff.NewFlagSet("tabbed")
	fs.StringVar(&cfg.DataDir, 'd', "data-dir", defaultDataDir, "Directory in which to store settings, sessions and logs.")
	fs.StringVar(&cfg.Session, 's', "session", session.DefaultName, "Session to load at startup.")
	fs.StringVar(&cfg.FileManager, 0, "file-manager", "xdg-open", "Program that opens a file's containing folder.")
	fs.StringVar(&cfg.OpenWith, 0, "open-with", defaultOpenWith, "Program suggested when opening a file with another program.")
	fs.StringVar(&cfg.DumpRecord, 0, "dump-record", "", "Print the saved tab order of a session and exit.")
	fs.BoolVar(&cfg.Debug, 0, "debug", "Log bubbletea messages to messages.log")
	fs.BoolVar(&cfg.Version, 'v', "version", "Print version.")
	_ = fs.String('c', "config", defaultConfigFile, "Path to config file.")

	{
		usage := fmt.Sprintf("Logging level (valid: %s).", strings.Join(logging.ValidLevels(), ","))
		fs.StringEnumVar(&cfg.loggingOptions.Level, 'l', "log-level", usage, logging.ValidLevels()...)
	}

	err = ff.Parse(fs, args,
		ff.WithEnvVarPrefix("TABBED"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ffyaml.Parse),
		ff.WithConfigAllowMissingFile(),
	)
	if err != nil {
		// ff.Parse returns an error if there is an error or if -h/--help is
		// passed; in either case print flag usage in addition to error message.
		fmt.Fprintln(stderr, ffhelp.Flags(fs))
		return config{}, err
	}
	if files := fs.GetArgs(); len(files) > 0 {
		cfg.Files = files
	}

	return cfg, nil
}
