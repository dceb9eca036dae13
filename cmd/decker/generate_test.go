package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// expectedDeck is the rendered document for the makeTree fixture.
const expectedDeck = "# 7 - Engineering\n" +
	"\n## [B007-C12] Fix bug Todo\n" +
	"> <details >\n" +
	">     <summary>Details</summary>\n" +
	"> Line one.\n" +
	"> Line two.\n" +
	"> </details>\n"

func TestGenerateCommand(t *testing.T) {
	root := makeTree(t)

	out, err := runCommand(t, "generate", "--root", root, "--json")
	if err != nil {
		t.Fatalf("generate failed: %v\n%s", err, out)
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if boards, ok := result["boards"].(float64); !ok || int(boards) != 1 {
		t.Errorf("boards = %v, want 1", result["boards"])
	}
	if cards, ok := result["cards"].(float64); !ok || int(cards) != 1 {
		t.Errorf("cards = %v, want 1", result["cards"])
	}

	data, err := os.ReadFile(filepath.Join(root, "deck.md"))
	if err != nil {
		t.Fatalf("reading deck.md: %v", err)
	}
	if string(data) != expectedDeck {
		t.Errorf("deck.md = %q, want %q", data, expectedDeck)
	}
}

func TestGenerateCommand_Idempotent(t *testing.T) {
	root := makeTree(t)

	if _, err := runCommand(t, "generate", "--root", root); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	first, err := os.ReadFile(filepath.Join(root, "deck.md"))
	if err != nil {
		t.Fatalf("reading deck.md: %v", err)
	}

	if _, err := runCommand(t, "generate", "--root", root); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	second, err := os.ReadFile(filepath.Join(root, "deck.md"))
	if err != nil {
		t.Fatalf("reading deck.md: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("re-running generate on an unchanged tree changed the output")
	}
}

func TestGenerateCommand_OutFlag(t *testing.T) {
	root := makeTree(t)

	if _, err := runCommand(t, "generate", "--root", root, "--out", "REPORT.md"); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, "REPORT.md")); err != nil {
		t.Errorf("REPORT.md not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "deck.md")); err == nil {
		t.Error("default output should not exist when --out is set")
	}
}

func TestGenerateCommand_OverviewPreamble(t *testing.T) {
	root := makeTree(t)
	writeFile(t, filepath.Join(root, "overview.md"), "Team board report.\n")

	if _, err := runCommand(t, "generate", "--root", root); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "deck.md"))
	if err != nil {
		t.Fatalf("reading deck.md: %v", err)
	}
	if string(data) != "Team board report.\n"+expectedDeck {
		t.Errorf("deck.md = %q, want overview preamble then boards", data)
	}
}

func TestGenerateCommand_MissingTree(t *testing.T) {
	out, err := runCommand(t, "generate", "--root", t.TempDir(), "--json")
	if err == nil {
		t.Fatal("expected error for missing deck directory")
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("error output is not JSON: %v\n%s", err, out)
	}
	if result["error"] == nil {
		t.Errorf("result = %v, want error field", result)
	}
}

func TestGenerateCommand_ConfigFile(t *testing.T) {
	root := makeTree(t)
	writeFile(t, filepath.Join(root, ".decker.yml"), "output: FROM_CONFIG.md\n")

	if _, err := runCommand(t, "generate", "--root", root); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "FROM_CONFIG.md")); err != nil {
		t.Errorf("config file output path not used: %v", err)
	}
}
