// Package clipboard copies snippet code to the system clipboard through the
// platform's command-line helpers.
package clipboard

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable is returned when no clipboard helper is installed.
var ErrUnavailable = errors.New("no clipboard helper found")

// Helper is a command that reads the new clipboard contents from stdin.
type Helper struct {
	Name string
	Args []string

	// Wayland helpers only work inside a Wayland session.
	Wayland bool
}

// helpers lists candidates per GOOS in order of preference.
var helpers = map[string][]Helper{
	"darwin": {
		{Name: "pbcopy"},
	},
	"linux": {
		{Name: "wl-copy", Wayland: true},
		{Name: "xclip", Args: []string{"-selection", "clipboard"}},
		{Name: "xsel", Args: []string{"--clipboard", "--input"}},
	},
	"windows": {
		{Name: "clip"},
	},
}

// lookPath is swapped out in tests.
var lookPath = exec.LookPath

// Detect returns the first installed helper for goos.
func Detect(goos string) (Helper, error) {
	wayland := os.Getenv("WAYLAND_DISPLAY") != ""
	for _, h := range helpers[goos] {
		if h.Wayland && !wayland {
			continue
		}
		if _, err := lookPath(h.Name); err == nil {
			return h, nil
		}
	}
	return Helper{}, ErrUnavailable
}

// Copy places text on the clipboard. Returns ErrUnavailable if no helper is
// installed for the current platform.
//
// xclip and wl-copy fork a child that owns the selection and outlives the
// helper, so no output pipes are attached: stdout goes to the null device and
// stderr straight to ours.
func Copy(text string) error {
	h, err := Detect(runtime.GOOS)
	if err != nil {
		return err
	}

	cmd := exec.Command(h.Name, h.Args...)
	cmd.Stdin = strings.NewReader(text)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", h.Name, err)
	}
	return nil
}
