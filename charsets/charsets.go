// Package charsets keeps a registry of named charsets.
//
// Charsets may be looked up by full name or by any unique prefix of a name,
// e.g. "ibm" for "ibm029" as long as no other name starts with "ibm".
package charsets

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/derekparker/trie"
	"github.com/npillmayer/punchcard"
	"github.com/npillmayer/punchcard/ibm029"
	"github.com/npillmayer/punchcard/jsoncharset"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'punchcard'
func tracer() tracing.Trace {
	return tracing.Select("punchcard")
}

// ErrUnknownCharset is returned for names which do not match any charset.
var ErrUnknownCharset = errors.New("unknown charset")

// AmbiguousError is returned for a prefix matching more than one charset.
type AmbiguousError struct {
	Prefix     string
	Candidates []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("charset name %q is ambiguous: %s", e.Prefix, strings.Join(e.Candidates, ", "))
}

// Registry maps names to charsets.
type Registry struct {
	names *trie.Trie
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{names: trie.New()}
}

// Default returns a registry holding the built-in charsets.
func Default() *Registry {
	r := NewRegistry()
	r.Register(ibm029.Charset())
	return r
}

// Register adds cs under its name. An existing charset of the same name is replaced.
func (r *Registry) Register(cs *punchcard.Charset) {
	if _, found := r.names.Find(cs.Name()); found {
		r.names.Remove(cs.Name())
	}
	r.names.Add(cs.Name(), cs)
	tracer().Debugf("registered charset %s", cs)
}

// Names returns the names of all registered charsets in ascending order.
func (r *Registry) Names() []string {
	names := r.names.Keys()
	slices.Sort(names)
	return names
}

// Lookup finds a charset by name or by a unique name prefix.
// An empty name never matches.
func (r *Registry) Lookup(name string) (*punchcard.Charset, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrUnknownCharset)
	}
	if node, found := r.names.Find(name); found {
		return node.Meta().(*punchcard.Charset), nil
	}
	candidates := r.names.PrefixSearch(name)
	switch len(candidates) {
	case 0:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
	case 1:
		node, found := r.names.Find(candidates[0])
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
		}
		return node.Meta().(*punchcard.Charset), nil
	}
	slices.Sort(candidates)
	return nil, &AmbiguousError{Prefix: name, Candidates: candidates}
}

// LoadDir registers every JSON charset definition (*.json) found in dir.
// Charsets are named after their file names without extension.
func (r *Registry) LoadDir(dir string) error {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return err
	}
	for _, path := range paths {
		cs, err := jsoncharset.LoadFile(path)
		if err != nil {
			return err
		}
		r.Register(cs)
	}
	return nil
}
