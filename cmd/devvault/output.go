package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/matsen/devvault/internal/storage"
	"github.com/matsen/devvault/internal/vault"
)

// MaxColumnWidth caps column widths in query tables.
const MaxColumnWidth = 40

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if jsonOutput {
		outputJSON(vault.ErrorResponse{Error: msg})
	} else {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	}
	os.Exit(code)
}

// exitCodeFor maps a handler error to a process exit code. Not-found and
// validation failures were already reported to the user and are not fatal.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, vault.ErrNotFound), errors.Is(err, vault.ErrInvalidInput):
		return ExitSuccess
	case errors.Is(err, vault.ErrVaultNotEmpty):
		return ExitError
	default:
		return ExitDataError
	}
}

// finish exits with an error message if err is fatal.
func finish(err error) {
	if code := exitCodeFor(err); code != ExitSuccess {
		exitWithError(code, "%v", err)
	}
}

// parseID parses a snippet ID argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid ID %q: must be an integer", arg)
	}
	return id, nil
}

// mustParseID parses a snippet ID argument, exits on error.
func mustParseID(arg string) int {
	id, err := parseID(arg)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	return id
}

// formatTable renders records as an aligned table with columns in cols order.
func formatTable(cols []string, records []storage.Record) string {
	if len(records) == 0 {
		return "(0 rows)\n"
	}

	widths := make(map[string]int)
	for _, col := range cols {
		widths[col] = utf8.RuneCountInString(col)
	}
	for _, record := range records {
		for _, col := range cols {
			if n := utf8.RuneCountInString(formatValue(record[col])); n > widths[col] {
				widths[col] = n
			}
		}
	}
	for col := range widths {
		if widths[col] > MaxColumnWidth {
			widths[col] = MaxColumnWidth
		}
	}

	var sb strings.Builder

	var header []string
	for _, col := range cols {
		header = append(header, padRight(strings.ToUpper(col), widths[col]))
	}
	sb.WriteString(strings.TrimRight(strings.Join(header, "  "), " "))
	sb.WriteString("\n")

	for _, record := range records {
		var row []string
		for _, col := range cols {
			row = append(row, padRight(truncate(formatValue(record[col]), widths[col]), widths[col]))
		}
		sb.WriteString(strings.TrimRight(strings.Join(row, "  "), " "))
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("(%d rows)\n", len(records)))
	return sb.String()
}

// formatValue renders a cell on one line; NULL prints as empty.
func formatValue(v any) string {
	if v == nil {
		return ""
	}
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", `\n`)
}

// truncate shortens s to width runes, marking the cut with "...".
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

// padRight pads a string with spaces on the right, counting runes.
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
