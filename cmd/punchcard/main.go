package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/npillmayer/punchcard"
	"github.com/npillmayer/punchcard/charsets"
	"github.com/npillmayer/punchcard/jsoncharset"
	"github.com/npillmayer/punchcard/render"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("cannot load .env file: %v", err)
	}

	if err := run(os.Stdout, os.Args[1:], os.Getenv); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run punches the configured text and writes the card to outW.
// Nothing is written if punching or reading back fails.
func run(outW io.Writer, args []string, getenv func(string) string) error {
	config, shouldExit, err := parseArgs(args, outW, getenv)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	if config.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	registry := charsets.Default()
	if config.CharsetDir != "" {
		if err := registry.LoadDir(config.CharsetDir); err != nil {
			return &ExitError{Code: 1, Message: fmt.Sprintf("cannot load charsets: %v", err)}
		}
	}
	if config.List {
		for _, name := range registry.Names() {
			fmt.Fprintln(outW, name)
		}
		return nil
	}

	cs, err := selectCharset(registry, config.Charset)
	if err != nil {
		return &ExitError{Code: 1, Message: fmt.Sprintf("cannot load charset: %v", err)}
	}
	log.Debugf("using %s", cs)

	card := punchcard.NewCard(cs)
	if err := card.PunchString(config.Text); err != nil {
		log.WithField("columns", card.Len()).Debug("punching aborted")
		return &ExitError{Code: 1, Message: err.Error()}
	}
	var opts []render.Option
	switch config.Color {
	case "always":
		opts = append(opts, render.WithStyle(render.HoleStyle))
	case "auto":
		if f, ok := outW.(*os.File); ok {
			opts = append(opts, render.AutoStyle(f))
		}
	}
	if err := render.Card(outW, card, opts...); err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}
	return nil
}

// selectCharset treats names ending in .json and existing files as charset
// definition files, anything else as a registered charset name.
func selectCharset(registry *charsets.Registry, name string) (*punchcard.Charset, error) {
	if strings.EqualFold(filepath.Ext(name), ".json") || isFile(name) {
		log.Debugf("loading charset file %s", name)
		return jsoncharset.LoadFile(name)
	}
	return registry.Lookup(name)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
