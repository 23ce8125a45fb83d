package clipboard

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePath makes only the named commands resolvable.
func fakePath(t *testing.T, installed ...string) {
	t.Helper()
	orig := lookPath
	t.Cleanup(func() { lookPath = orig })

	lookPath = func(name string) (string, error) {
		for _, n := range installed {
			if n == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", exec.ErrNotFound
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name      string
		goos      string
		wayland   string
		installed []string
		want      string
		wantErr   bool
	}{
		{"macOS", "darwin", "", []string{"pbcopy"}, "pbcopy", false},
		{"xclip preferred over xsel", "linux", "", []string{"xsel", "xclip"}, "xclip", false},
		{"xsel fallback", "linux", "", []string{"xsel"}, "xsel", false},
		{"wl-copy under wayland", "linux", "wayland-0", []string{"wl-copy", "xclip"}, "wl-copy", false},
		{"wl-copy skipped outside wayland", "linux", "", []string{"wl-copy", "xclip"}, "xclip", false},
		{"only wl-copy outside wayland", "linux", "", []string{"wl-copy"}, "", true},
		{"windows", "windows", "", []string{"clip"}, "clip", false},
		{"nothing installed", "linux", "", nil, "", true},
		{"unsupported platform", "plan9", "", []string{"pbcopy", "xclip"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("WAYLAND_DISPLAY", tt.wayland)
			fakePath(t, tt.installed...)

			got, err := Detect(tt.goos)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnavailable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestDetect_XclipTargetsClipboard(t *testing.T) {
	t.Setenv("WAYLAND_DISPLAY", "")
	fakePath(t, "xclip")

	h, err := Detect("linux")
	require.NoError(t, err)
	assert.Equal(t, []string{"-selection", "clipboard"}, h.Args)
}

func TestCopy_Unavailable(t *testing.T) {
	t.Setenv("WAYLAND_DISPLAY", "")
	fakePath(t)

	assert.ErrorIs(t, Copy("print(1)"), ErrUnavailable)
}

// installHelper puts a shell script named after every helper first on PATH.
func installHelper(t *testing.T, script string) {
	t.Helper()
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		t.Skip("shell helpers need a unix system")
	}

	dir := t.TempDir()
	for _, name := range []string{"pbcopy", "xclip", "xsel"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755))
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("WAYLAND_DISPLAY", "")
}

func TestCopy_HelperLeavesChildRunning(t *testing.T) {
	out := filepath.Join(t.TempDir(), "clipboard.txt")
	t.Setenv("DEVVAULT_TEST_CLIP", out)
	// Like xclip: read the selection, then keep a child alive to serve it.
	installHelper(t, "cat > \"$DEVVAULT_TEST_CLIP\"\n( sleep 5 ) &\n")

	start := time.Now()
	require.NoError(t, Copy("hello"))
	assert.Less(t, time.Since(start), 3*time.Second, "Copy waited for the helper's child")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestCopy_HelperFails(t *testing.T) {
	installHelper(t, "cat > /dev/null\nexit 3\n")

	err := Copy("hello")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "running ")
}
