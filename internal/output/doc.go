// Package output provides structured output handling for the decker CLI.
//
// This package handles both human-readable and JSON output formats, so every
// command works equally well for people and for scripts or agents.
//
// # Printer
//
// The Printer is the primary interface for command output. It switches
// format based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//
//	printer.Success(map[string]any{"message": "Deck written", "cards": 12})
//	printer.Error(err)
//	printer.Println("Some text")
//
// # JSON Mode
//
// When JSON mode is enabled (via --json), all output is structured:
//
//	// Success: {"message": "...", "cards": N, ...}
//	// Error: {"error": "message", "code": N}
//
// # Styling
//
// Human-readable output uses lipgloss styles that automatically disable
// when output is piped or --color=never is set.
//
// # Exit Codes
//
// The package defines standard exit codes and error constructors:
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: User error (bad args, bad sidecar)
//	output.ExitSystemError // 2: System error (I/O failure)
//
//	output.NewUserError("board Engineering: missing .id sidecar")
//	output.NewSystemError("creating output file deck.md")
//
// These errors carry exit codes used for both JSON error output and the
// process exit code.
package output
