package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeFile creates a file with parent directories as needed.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// makeTree builds the single-board fixture used across command tests.
func makeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "boards", "Engineering", ".id"), "7\n")
	writeFile(t, filepath.Join(root, "boards", "Engineering", "Todo", "12"),
		"---\nTitle: Fix bug\n---\nLine one.\nLine two.\n")
	return root
}

// runCommand executes the root command with args and returns its output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Help(t *testing.T) {
	out, err := runCommand(t, "--help")
	if err != nil {
		t.Fatalf("help failed: %v", err)
	}

	for _, want := range []string{"generate", "status", "boards", "serve"} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q", want)
		}
	}
}

func TestRootCmd_JSONWithoutSubcommand(t *testing.T) {
	out, err := runCommand(t, "--json")
	if err == nil {
		t.Fatal("expected error for --json without subcommand")
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if result["error"] == nil {
		t.Errorf("result = %v, want error field", result)
	}
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	if _, err := runCommand(t, "nonsense"); err == nil {
		t.Fatal("expected error for unknown command")
	}
}

func TestBuildVersion(t *testing.T) {
	if got := buildVersion(); got != "dev" {
		t.Errorf("buildVersion() = %q, want dev defaults", got)
	}
}
