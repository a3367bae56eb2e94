package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

// DemoText is punched when no text is given on the command line.
const DemoText = "RUST CARD PUNCH IS A THING NOW!!111 \\O/"

// Environment variables consulted for settings not given as flags.
const (
	envCharset    = "PUNCHCARD_CHARSET"
	envCharsetDir = "PUNCHCARD_CHARSET_DIR"
	envColor      = "PUNCHCARD_COLOR"
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Config holds the settings of one invocation.
type Config struct {
	Charset    string // charset file (*.json) or registered charset name
	CharsetDir string // directory of additional charset definitions
	Color      string // auto, always or never
	Verbose    bool
	List       bool
	Text       string
}

// parseArgs processes command-line arguments. Settings missing from args are
// taken from the environment through getenv, then from built-in defaults.
// It returns the configuration, a flag telling whether to exit right away, or
// an *ExitError.
func parseArgs(args []string, output io.Writer, getenv func(string) string) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("punchcard", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
punchcard - punch text onto an 80-column style card and print it.

Usage:
  punchcard [options] [TEXT ...]

Arguments:
  TEXT
    Text to punch. Words are joined by single blanks.
    Defaults to a demo sentence.

Options:
`)
		flagSet.PrintDefaults()
	}

	charsetFlag := flagSet.String("charset", getenv(envCharset), "Charset definition file (*.json) or charset name. Default is the built-in ibm029.")
	dirFlag := flagSet.String("charset-dir", getenv(envCharsetDir), "Directory of charset definitions (*.json) to make available by name.")
	colorFlag := flagSet.String("color", withDefault(getenv(envColor), "auto"), "Highlight punched holes. Options: 'auto', 'always' or 'never'.")
	verboseFlag := flagSet.Bool("verbose", false, "Log debug information to stderr.")
	listFlag := flagSet.Bool("list", false, "List available charsets and exit.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	color := strings.ToLower(*colorFlag)
	switch color {
	case "auto", "always", "never":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid color: must be 'auto', 'always' or 'never'"}
	}

	text := DemoText
	if flagSet.NArg() > 0 {
		text = strings.Join(flagSet.Args(), " ")
	}
	config := &Config{
		Charset:    withDefault(*charsetFlag, "ibm029"),
		CharsetDir: *dirFlag,
		Color:      color,
		Verbose:    *verboseFlag,
		List:       *listFlag,
		Text:       text,
	}
	log.WithFields(log.Fields{
		"charset": config.Charset,
		"dir":     config.CharsetDir,
		"color":   config.Color,
	}).Debug("configuration parsed")
	return config, false, nil
}

func withDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
