package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterLoggerSuppressesDebugUnlessVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, false)
	Debug(true, l, "hidden", nil)
	Warn(l, "shown", map[string]any{"path": "/tmp/x"})

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "/tmp/x")
}

func TestWriterLoggerVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, true)
	Debug(true, l, "completion request", map[string]any{"model": "m", "bytes": 12})
	Debug(false, l, "disabled", nil)

	out := buf.String()
	assert.Contains(t, out, "completion request")
	assert.Contains(t, out, "model")
	assert.Contains(t, out, "bytes")
	assert.NotContains(t, out, "disabled")
}

func TestWriterLoggerErrorPayload(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, false)
	Error(l, "save failed", errors.New("disk full"))
	assert.Contains(t, buf.String(), "disk full")
}

func TestHelpersTolerateNilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		Debug(true, nil, "x", nil)
		Debugf(true, nil, "x %d", 1)
		Info(nil, "x", nil)
		Warn(nil, "x", nil)
		Error(nil, "x", nil)
	})
}

func TestNewWriterLoggerNilWriter(t *testing.T) {
	assert.Equal(t, NopLogger{}, NewWriterLogger(nil, true))
	assert.Equal(t, NopLogger{}, NewZapLogger(nil))
}
