// Package vault implements the snippet commands: add, list, view, search,
// delete, and stats.
//
// Every command follows the same cycle: load the whole store, operate, save
// the whole store back if something changed. Nothing is cached between
// commands, so two processes writing at once can lose an update (last write
// wins). No locking is attempted.
package vault

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/matsen/devvault/internal/clipboard"
	"github.com/matsen/devvault/internal/display"
	"github.com/matsen/devvault/internal/logging"
	"github.com/matsen/devvault/internal/prompt"
	"github.com/matsen/devvault/internal/snippet"
	"github.com/matsen/devvault/internal/stats"
	"github.com/matsen/devvault/internal/storage"
)

var (
	// ErrNotFound is returned when no snippet has the requested ID.
	ErrNotFound = errors.New("snippet not found")
	// ErrInvalidInput is returned when user input fails validation.
	ErrInvalidInput = errors.New("invalid input")
)

// Store loads and saves the complete snippet collection.
type Store interface {
	Load() ([]snippet.Snippet, error)
	Save([]snippet.Snippet) error
}

// App wires a store to interactive input and formatted output.
type App struct {
	Store  Store
	Prompt *prompt.Prompter
	Out    *display.Printer
	Log    *slog.Logger

	// JSON switches read commands to machine-readable output.
	JSON bool

	// Now returns the creation time for new snippets.
	Now func() time.Time

	// Clipboard receives code for view --copy. Defaults to clipboard.Copy.
	Clipboard func(string) error
}

// ErrorResponse is the JSON shape of a handled failure in JSON mode.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) log() *slog.Logger {
	if a.Log == nil {
		return logging.Discard()
	}
	return a.Log
}

func (a *App) load() ([]snippet.Snippet, error) {
	snippets, err := a.Store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading vault: %w", err)
	}
	a.log().Debug("loaded vault", "snippets", len(snippets))
	return snippets, nil
}

func (a *App) save(snippets []snippet.Snippet) error {
	if err := a.Store.Save(snippets); err != nil {
		return fmt.Errorf("saving vault: %w", err)
	}
	a.log().Debug("saved vault", "snippets", len(snippets))
	return nil
}

// outputJSON writes v as indented JSON to the printer's writer.
func (a *App) outputJSON(v any) error {
	enc := json.NewEncoder(a.Out.Writer())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// notFound reports a missing ID and returns ErrNotFound.
func (a *App) notFound(id int) error {
	msg := fmt.Sprintf("Snippet #%d not found.", id)
	if a.JSON {
		if err := a.outputJSON(ErrorResponse{Error: msg}); err != nil {
			return err
		}
	} else {
		a.Out.Error(msg)
	}
	return fmt.Errorf("%w: #%d", ErrNotFound, id)
}

// invalid reports a validation failure and returns ErrInvalidInput.
func (a *App) invalid(msg string) error {
	a.Out.Error(msg)
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.TrimSuffix(msg, "."))
}

// Add prompts for a new snippet, validates it, and appends it to the store.
func (a *App) Add() (snippet.Snippet, error) {
	a.Out.Heading("Add a new snippet")

	title, err := a.Prompt.Ask(a.Out.Label("Title: "))
	if err != nil {
		return snippet.Snippet{}, err
	}
	if title == "" {
		return snippet.Snippet{}, a.invalid("Title cannot be empty.")
	}

	language, err := a.Prompt.Ask(a.Out.Label("Language (e.g. python, bash, js): "))
	if err != nil {
		return snippet.Snippet{}, err
	}
	description, err := a.Prompt.Ask(a.Out.Label("Short description (optional): "))
	if err != nil {
		return snippet.Snippet{}, err
	}
	tagsRaw, err := a.Prompt.Ask(a.Out.Label("Tags (comma-separated, e.g. loop,string): "))
	if err != nil {
		return snippet.Snippet{}, err
	}

	fmt.Fprintln(a.Out.Writer(), a.Out.Label("Paste your code below."))
	a.Out.Hint(fmt.Sprintf("Type '%s' on a new line when finished:\n", prompt.EndSentinel))

	code, err := a.Prompt.ReadUntil(prompt.EndSentinel)
	if err != nil {
		return snippet.Snippet{}, err
	}
	if strings.TrimSpace(code) == "" {
		return snippet.Snippet{}, a.invalid("Code cannot be empty.")
	}

	snippets, err := a.load()
	if err != nil {
		return snippet.Snippet{}, err
	}

	s := snippet.New(storage.NextID(snippets), title, language, description, tagsRaw, code, a.now())
	snippets = append(snippets, s)
	if err := a.save(snippets); err != nil {
		return snippet.Snippet{}, err
	}

	a.Out.Success(fmt.Sprintf("Snippet #%d '%s' saved!", s.ID, s.Title))
	return s, nil
}

// List prints every snippet in stored order without code.
func (a *App) List() ([]snippet.Snippet, error) {
	snippets, err := a.load()
	if err != nil {
		return nil, err
	}

	if a.JSON {
		return snippets, a.outputJSON(snippets)
	}

	if len(snippets) == 0 {
		a.Out.Warn("No snippets yet. Run: devvault add")
		return snippets, nil
	}

	a.Out.SnippetList(fmt.Sprintf("%d snippet(s) in your vault", len(snippets)), snippets)
	return snippets, nil
}

// View prints one snippet including its code.
func (a *App) View(id int) (snippet.Snippet, error) {
	snippets, err := a.load()
	if err != nil {
		return snippet.Snippet{}, err
	}

	idx, found := storage.FindByID(snippets, id)
	if !found {
		return snippet.Snippet{}, a.notFound(id)
	}
	s := snippets[idx]

	if a.JSON {
		return s, a.outputJSON(s)
	}

	a.Out.Blank()
	a.Out.Snippet(s, true)
	a.Out.Blank()
	return s, nil
}

// CopyCode puts the code of s on the clipboard. A missing clipboard helper
// is reported as a warning, not an error.
func (a *App) CopyCode(s snippet.Snippet) error {
	copyFn := a.Clipboard
	if copyFn == nil {
		copyFn = clipboard.Copy
	}

	err := copyFn(s.Code)
	switch {
	case errors.Is(err, clipboard.ErrUnavailable):
		if a.JSON {
			a.log().Warn("code not copied", "id", s.ID, "error", err)
		} else {
			a.Out.Warn("No clipboard helper found (pbcopy, wl-copy, xclip, xsel, clip). Code not copied.")
		}
		return nil
	case err != nil:
		return fmt.Errorf("copying snippet #%d: %w", s.ID, err)
	}

	a.log().Debug("copied code", "id", s.ID, "bytes", len(s.Code))
	if !a.JSON {
		a.Out.Success(fmt.Sprintf("Code of snippet #%d copied to clipboard.", s.ID))
	}
	return nil
}

// Search prints snippets whose title, language, description, tags, or code
// contain query, ignoring case.
func (a *App) Search(query string) ([]snippet.Snippet, error) {
	if strings.TrimSpace(query) == "" {
		return nil, a.invalid("Search query cannot be empty.")
	}

	snippets, err := a.load()
	if err != nil {
		return nil, err
	}

	results := snippet.Filter(snippets, query)
	if results == nil {
		results = []snippet.Snippet{}
	}
	a.log().Debug("searched vault", "query", query, "results", len(results))

	if a.JSON {
		return results, a.outputJSON(results)
	}

	q := strings.ToLower(query)
	if len(results) == 0 {
		a.Out.Warn(fmt.Sprintf("No snippets found for '%s'.", q))
		return results, nil
	}

	a.Out.SnippetList(fmt.Sprintf("%d result(s) for '%s'", len(results), q), results)
	return results, nil
}

// Delete removes a snippet after the user confirms with "y".
// It reports whether the snippet was deleted.
func (a *App) Delete(id int) (bool, error) {
	snippets, err := a.load()
	if err != nil {
		return false, err
	}

	remaining, found := storage.RemoveByID(snippets, id)
	if !found {
		return false, a.notFound(id)
	}

	ok, err := a.Prompt.Confirm(a.Out.Question(fmt.Sprintf("Delete snippet #%d? (y/n): ", id)))
	if err != nil {
		return false, err
	}
	if !ok {
		a.Out.Muted("Cancelled.")
		return false, nil
	}

	if err := a.save(remaining); err != nil {
		return false, err
	}

	a.Out.Success(fmt.Sprintf("Snippet #%d deleted.", id))
	return true, nil
}

// Stats prints language and tag frequencies.
func (a *App) Stats() (stats.Summary, error) {
	snippets, err := a.load()
	if err != nil {
		return stats.Summary{}, err
	}

	sum := stats.Compute(snippets)

	if a.JSON {
		return sum, a.outputJSON(sum)
	}

	if len(snippets) == 0 {
		a.Out.Warn("Your vault is empty.")
		return sum, nil
	}

	a.Out.Stats(sum)
	return sum, nil
}
