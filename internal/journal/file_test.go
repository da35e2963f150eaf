package journal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"journal/internal/entry"
)

func TestAppendToFile_KeepsExistingLines(t *testing.T) {
	p := filepath.Join(t.TempDir(), "j.txt")
	seed := `"d1","p1","r1"` + "\n" +
		"hand-edited note\n" +
		`"d2","p2","apples, pears"` + "\n"
	if err := os.WriteFile(p, []byte(seed), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := AppendToFile(p, entry.New("d3", "p3", "r3")); err != nil {
		t.Fatalf("append: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := seed + `"d3","p3","r3"` + "\n"
	if string(b) != want {
		t.Fatalf("file mismatch:\n got %q\nwant %q", string(b), want)
	}
}

func TestAppendToFile_CreatesFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "new.txt")
	if err := AppendToFile(p, entry.New("d", "p", "r")); err != nil {
		t.Fatalf("append: %v", err)
	}
	s := New()
	res, err := s.LoadFromFile(p)
	if err != nil || res.Loaded != 1 {
		t.Fatalf("unexpected load: %+v %v", res, err)
	}
}

func TestAppendToFile_MissingDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing-dir", "j.txt")
	err := AppendToFile(p, entry.New("d", "p", "r"))
	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Op != "open" {
		t.Fatalf("expected open *IOError, got %v", err)
	}
}

func TestResolveIn(t *testing.T) {
	dir := t.TempDir()
	got, err := ResolveIn(dir, "backup/j.txt")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != filepath.Join(dir, "backup", "j.txt") {
		t.Fatalf("unexpected path %q", got)
	}

	for _, name := range []string{"", "../j.txt", "a/../../j.txt", "/etc/passwd"} {
		if _, err := ResolveIn(dir, name); !errors.Is(err, ErrOutsideDir) {
			t.Fatalf("%q: expected ErrOutsideDir, got %v", name, err)
		}
	}
}
