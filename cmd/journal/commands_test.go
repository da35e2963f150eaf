package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	t.Cleanup(func() { fileFlag = "" })
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("journal %v: %v", args, err)
	}
	return out.String()
}

func TestAddThenList(t *testing.T) {
	t.Setenv("PROMPT_SOURCE", "static")
	p := filepath.Join(t.TempDir(), "j.txt")

	out := run(t, "", "--file", p, "add", "--date", "2024-01-01", "--prompt", "What made me smile today?", "--response", "A good coffee.")
	if !strings.Contains(out, "Entry added") {
		t.Fatalf("unexpected add output: %q", out)
	}
	run(t, "", "--file", p, "add", "--date", "2024-01-02", "--prompt", "What am I grateful for?", "--response", "Family.")

	out = run(t, "", "--file", p, "list")
	first := strings.Index(out, "A good coffee.")
	second := strings.Index(out, "Family.")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("entries missing or out of order: %q", out)
	}
}

func TestAddLeavesExistingLinesAlone(t *testing.T) {
	t.Setenv("PROMPT_SOURCE", "static")
	p := filepath.Join(t.TempDir(), "j.txt")
	seed := `"d1","p1","r1"` + "\n" +
		"hand-edited note\n" +
		`"d2","p2","apples, pears"` + "\n"
	if err := os.WriteFile(p, []byte(seed), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	run(t, "", "--file", p, "add", "--date", "d3", "--prompt", "p3", "--response", "r3")
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if want := seed + `"d3","p3","r3"` + "\n"; string(b) != want {
		t.Fatalf("file mismatch:\n got %q\nwant %q", string(b), want)
	}
}

func TestAddFoldsMultilineResponse(t *testing.T) {
	t.Setenv("PROMPT_SOURCE", "static")
	p := filepath.Join(t.TempDir(), "nested", "j.txt")
	run(t, "", "--file", p, "add", "--date", "d", "--prompt", "p", "--response", "line one\nline two")
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if want := `"d","p","line one line two"` + "\n"; string(b) != want {
		t.Fatalf("file mismatch:\n got %q\nwant %q", string(b), want)
	}
}

func TestListMissingFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing.txt")
	out := run(t, "", "--file", p, "list")
	if !strings.Contains(out, "not found") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestPromptCommand(t *testing.T) {
	t.Setenv("PROMPT_SOURCE", "static")
	out := strings.TrimSpace(run(t, "", "prompt"))
	if !strings.HasSuffix(out, "?") {
		t.Fatalf("unexpected prompt: %q", out)
	}
}

func TestInteractiveMenuQuits(t *testing.T) {
	t.Setenv("PROMPT_SOURCE", "static")
	out := run(t, "5\n", "--file", filepath.Join(t.TempDir(), "j.txt"))
	if !strings.Contains(out, "Goodbye") {
		t.Fatalf("menu did not quit: %q", out)
	}
}
