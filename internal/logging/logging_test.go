package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)

	log.Debug("loaded vault", "path", "/tmp/v.json", "snippets", 3)

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, `msg="loaded vault"`)
	assert.Contains(t, out, "snippets=3")
}

func TestNew_QuietDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)

	log.Debug("hidden")
	log.Info("hidden too")
	assert.Zero(t, buf.Len(), "unexpected output:\n%s", buf.String())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().Error("nothing", "k", "v")
	})
}
