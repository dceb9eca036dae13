package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadEnvFiles loads DECKER_* (and any other) variables from env files in
// the current directory. First match for each variable wins; variables
// already set in the environment always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local (per-tree override, gitignored)
//  2. $CWD/.env       (per-tree)
func LoadEnvFiles() {
	_ = loadEnvFile(".env.local")
	_ = loadEnvFile(".env")
}

// loadEnvFile reads one env file and sets any variables not already in the
// environment. Returns nil if the file doesn't exist.
func loadEnvFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if os.Getenv(key) == "" {
			_ = os.Setenv(key, value)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading env file %s: %w", path, err)
	}
	return nil
}

// parseEnvLine extracts KEY=VALUE from a line, handling an optional
// "export " prefix and optional single or double quotes around the value.
func parseEnvLine(line string) (key, value string, ok bool) {
	rawKey, rawValue, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}

	key = strings.TrimSpace(rawKey)
	key = strings.TrimPrefix(key, "export ")
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}

	value = strings.TrimSpace(rawValue)
	if len(value) >= 2 {
		if (value[0] == '"' && value[len(value)-1] == '"') ||
			(value[0] == '\'' && value[len(value)-1] == '\'') {
			value = value[1 : len(value)-1]
		}
	}

	return key, value, true
}
