package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

var noEnv = env(nil)

func TestRun_ShouldExit(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(out, []string{"-h"}, noEnv)
	require.NoError(t, err, "run() should return a nil error for -h")
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_ParseError(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(out, []string{"--no-such-flag"}, noEnv)
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -no-such-flag")
}

func TestRun_InvalidColor(t *testing.T) {
	err := run(&bytes.Buffer{}, []string{"-color", "rainbow"}, noEnv)
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
}

func TestRun_DemoText(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, run(out, []string{"-color", "never"}, noEnv))
	lines := strings.Split(out.String(), "\n")
	require.Equal(t, "    "+strings.Repeat("_", len(DemoText)+1), lines[0])
	require.Equal(t, "   /"+DemoText, lines[1])
	require.True(t, strings.HasPrefix(lines[2], "12/ "))
	require.True(t, strings.HasPrefix(lines[13], " 9| "))
}

func TestRun_TextArguments(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, run(out, []string{"-color", "never", "HELLO", "WORLD"}, noEnv))
	require.Contains(t, out.String(), "   /HELLO WORLD\n")
}

func TestRun_CharsetFile(t *testing.T) {
	out := &bytes.Buffer{}
	path := filepath.Join("..", "..", "charsets", "testdata", "mini.json")
	require.NoError(t, run(out, []string{"-charset", path, "-color", "never", "AB A"}, noEnv))
	require.Contains(t, out.String(), "12/ ##.#\n")
}

func TestRun_CharsetFromEnvironment(t *testing.T) {
	out := &bytes.Buffer{}
	vars := map[string]string{
		envCharset:    "minim",
		envCharsetDir: filepath.Join("..", "..", "charsets", "testdata"),
		envColor:      "never",
	}
	require.NoError(t, run(out, []string{"BA"}, env(vars)))
	require.Contains(t, out.String(), " 2| #.\n")
}

func TestRun_UnsupportedCharacter(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(out, []string{"-color", "never", "hello"}, noEnv)
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 1, exitErr.Code)
	require.Contains(t, exitErr.Message, "'h'")
	require.Empty(t, out.String(), "no partial card may be printed")
}

func TestRun_UnknownCharset(t *testing.T) {
	err := run(&bytes.Buffer{}, []string{"-charset", "ebcdic"}, noEnv)
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 1, exitErr.Code)
	require.Contains(t, exitErr.Message, "unknown charset")
}

func TestRun_List(t *testing.T) {
	out := &bytes.Buffer{}
	dir := filepath.Join("..", "..", "charsets", "testdata")
	require.NoError(t, run(out, []string{"-list", "-charset-dir", dir}, noEnv))
	require.Equal(t, "ibm029\nmini\nminimal\n", out.String())
}
