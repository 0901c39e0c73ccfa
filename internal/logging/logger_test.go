package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, false)

	l := For("keeper")
	l.Info().Msg("started")
	l.Debug().Msg("hidden at info level")

	out := buf.String()
	assert.Contains(t, out, "started")
	assert.Contains(t, out, "component=keeper")
	assert.NotContains(t, out, "hidden at info level")
}

func TestSetupDebug(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, true)
	t.Cleanup(func() { Setup(&bytes.Buffer{}, false) })

	l := For("ui")
	l.Debug().Msg("tick")
	assert.Contains(t, buf.String(), "tick")
}

func TestOpenCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")

	closer, err := Open(path, false)
	require.NoError(t, err)

	l := For("test")
	l.Info().Msg("written to file")
	require.NoError(t, closer.Close())

	l = For("test")
	l.Info().Msg("after close")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
	assert.NotContains(t, string(data), "after close")
}
