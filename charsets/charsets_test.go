package charsets

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/npillmayer/punchcard/ibm029"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default()
	cs, err := r.Lookup("ibm029")
	if err != nil {
		t.Fatal(err)
	}
	if cs != ibm029.Charset() {
		t.Fatalf("expected the built-in charset")
	}
	if cs, err = r.Lookup("ibm"); err != nil || cs.Name() != "ibm029" {
		t.Fatalf("prefix lookup failed: %v", err)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Default().Lookup("ebcdic")
	if !errors.Is(err, ErrUnknownCharset) {
		t.Fatalf("expected ErrUnknownCharset, got %v", err)
	}
}

func TestLookupEmptyName(t *testing.T) {
	r := NewRegistry()
	r.Register(ibm029.Charset())
	if _, err := r.Lookup(""); !errors.Is(err, ErrUnknownCharset) {
		t.Fatalf("empty name must not match a charset, got %v", err)
	}
}

func TestLoadDirAndAmbiguousPrefix(t *testing.T) {
	r := Default()
	if err := r.LoadDir("testdata"); err != nil {
		t.Fatal(err)
	}
	want := []string{"ibm029", "mini", "minimal"}
	if names := r.Names(); !reflect.DeepEqual(names, want) {
		t.Fatalf("names are %v, want %v", names, want)
	}
	cs, err := r.Lookup("mini")
	if err != nil {
		t.Fatal(err)
	}
	if cs.Name() != "mini" || cs.OnChar() != '#' {
		t.Fatalf("exact name must win over longer names, got %s", cs)
	}
	if cs, err = r.Lookup("minim"); err != nil || cs.Name() != "minimal" {
		t.Fatalf("expected minimal for prefix minim, got %v", err)
	}
	r2 := NewRegistry()
	if err := r2.LoadDir("testdata"); err != nil {
		t.Fatal(err)
	}
	_, err = r2.Lookup("m")
	var ambErr *AmbiguousError
	if !errors.As(err, &ambErr) {
		t.Fatalf("expected AmbiguousError, got %v", err)
	}
	if !reflect.DeepEqual(ambErr.Candidates, []string{"mini", "minimal"}) {
		t.Fatalf("candidates are %v", ambErr.Candidates)
	}
}

func TestRegisterReplaces(t *testing.T) {
	r := NewRegistry()
	if err := r.LoadDir(filepath.Join("testdata")); err != nil {
		t.Fatal(err)
	}
	if err := r.LoadDir("testdata"); err != nil {
		t.Fatal(err)
	}
	if len(r.Names()) != 2 {
		t.Fatalf("re-registering must not duplicate names: %v", r.Names())
	}
}

func TestLoadDirMissing(t *testing.T) {
	r := NewRegistry()
	if err := r.LoadDir(filepath.Join("testdata", "nothing-here")); err != nil {
		t.Fatalf("an empty directory is not an error: %v", err)
	}
	if len(r.Names()) != 0 {
		t.Fatalf("expected no charsets")
	}
}
