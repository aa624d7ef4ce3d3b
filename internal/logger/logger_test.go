package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewWriterLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, "mailer")

	l.Info().Msg("hello")

	entry := decode(t, &buf)
	assert.Equal(t, "mailer", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, zerolog.TimestampFieldName)
	assert.Contains(t, entry[callerField], "TestNewWriterLogger_Fields")
}

func TestNewWriterLogger_Globals(t *testing.T) {
	NewWriterLogger(&bytes.Buffer{}, "x")

	assert.Equal(t, callerField, zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewLogger_NotNil(t *testing.T) {
	require.NotNil(t, NewLogger("server"))
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Zero(t, buf.Len())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := NewWriterLogger(&buf, "parent")

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "abc")
	})
	child.Info().Send()

	entry := decode(t, &buf)
	assert.Equal(t, "parent", entry["role"])
	assert.Equal(t, "abc", entry["trace_id"])

	buf.Reset()
	parent.Info().Send()
	assert.NotContains(t, decode(t, &buf), "trace_id")
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewWriterLogger(&buf, "server")

	parent.WithComponent(Component).Warn().Msg("decryption failed")

	entry := decode(t, &buf)
	assert.Equal(t, Component, entry[ComponentField])
	assert.Equal(t, "server", entry["role"])

	buf.Reset()
	parent.Info().Msg("plain")
	assert.NotContains(t, decode(t, &buf), ComponentField)
}

func TestFromContext(t *testing.T) {
	t.Run("attached", func(t *testing.T) {
		var buf bytes.Buffer
		zl := zerolog.New(&buf).With().Str("k", "v").Logger()

		FromContext(zl.WithContext(context.Background())).Info().Send()

		assert.Equal(t, "v", decode(t, &buf)["k"])
	})

	t.Run("empty context", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("req", "1").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Send()

	assert.Equal(t, "1", decode(t, &buf)["req"])
}
