package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("MAZE", "\033[36m", &buf)
	require.NoError(t, err)

	l.Info("maze generated")
	l.Debug("hidden")
	out := buf.String()
	assert.Contains(t, out, "MAZE")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "maze generated")
	assert.NotContains(t, out, "hidden")

	require.NoError(t, l.SetLevel("debug"))
	l.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")

	assert.Error(t, l.SetLevel("loud"))

	_, err = New("MAZE", "", nil)
	assert.ErrorIs(t, err, ErrNilWriter)
}
