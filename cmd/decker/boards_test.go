package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

func TestBoardsCommand_JSON(t *testing.T) {
	root := makeTree(t)

	out, err := runCommand(t, "boards", "--root", root, "--json")
	if err != nil {
		t.Fatalf("boards failed: %v\n%s", err, out)
	}

	var result struct {
		Count  int `json:"count"`
		Boards []struct {
			ID      int    `json:"id"`
			Name    string `json:"name"`
			Columns []struct {
				Name  string `json:"name"`
				Cards []any  `json:"cards"`
			} `json:"columns"`
		} `json:"boards"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}

	if result.Count != 1 || len(result.Boards) != 1 {
		t.Fatalf("result = %+v, want one board", result)
	}
	board := result.Boards[0]
	if board.ID != 7 || board.Name != "Engineering" {
		t.Errorf("board = %+v", board)
	}
	if len(board.Columns) != 1 || board.Columns[0].Name != "Todo" || len(board.Columns[0].Cards) != 1 {
		t.Errorf("columns = %+v", board.Columns)
	}
}

func TestBoardsCommand_Table(t *testing.T) {
	root := makeTree(t)
	// A second column whose status label overrides the directory name.
	writeFile(t, filepath.Join(root, "boards", "Engineering", "Doing", ".status"),
		"---\nstatustext: In Progress\n---\n")
	writeFile(t, filepath.Join(root, "boards", "Engineering", "Doing", "3"),
		"---\nTitle: Other task\n---\n")

	out, err := runCommand(t, "boards", "--root", root)
	if err != nil {
		t.Fatalf("boards failed: %v", err)
	}

	for _, want := range []string{"BOARD", "Engineering", "In Progress", "Todo"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBoardsCommand_Empty(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "boards", ".keep"), "")

	out, err := runCommand(t, "boards", "--root", root)
	if err != nil {
		t.Fatalf("boards failed: %v", err)
	}
	if !strings.Contains(out, "No boards found") {
		t.Errorf("output = %q, want empty-tree message", out)
	}
}
