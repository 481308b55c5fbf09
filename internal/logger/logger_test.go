package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	return entry
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("go-phone-auth-server")
	require.NotNil(t, l)
	l.Logger = l.Output(&buf)

	l.Info().Msg("listening")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "go-phone-auth-server", entry["role"])
	assert.Equal(t, "listening", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

// TestSetLevel verifies level parsing and that an empty level is a no-op.
func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	require.NoError(t, SetLevel("WARN"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	require.NoError(t, SetLevel(""))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	assert.Error(t, SetLevel("loud"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

// TestNewFileLogger_WritesToFile verifies that entries land in the rotated
// file output.
func TestNewFileLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.log")
	l := NewFileLogger("file-role", path, false)

	l.Info().Msg("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "file-role", entry["role"])
	assert.Equal(t, "to file", entry["message"])
}

// TestNewFileLogger_EmptyPath verifies the stdout fallback.
func TestNewFileLogger_EmptyPath(t *testing.T) {
	require.NotNil(t, NewFileLogger("stdout-role", "", true))
}

// TestGooseLogger_Printf verifies that goose output is tagged and trimmed.
func TestGooseLogger_Printf(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf)}

	NewGooseLogger(l).Printf("OK   %s\n", "00001_create_users.sql")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "goose", entry["component"])
	assert.Equal(t, "OK   00001_create_users.sql", entry["message"])
}

// TestGooseLogger_Fatalf verifies that Fatalf panics after logging.
func TestGooseLogger_Fatalf(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf)}

	assert.PanicsWithValue(t, "boom", func() {
		NewGooseLogger(l).Fatalf("boom")
	})
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestNop(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	require.NotNil(t, l)
	l.Logger = l.Output(&buf)

	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("parent-role")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	require.NotNil(t, child)
	assert.NotSame(t, parent, child)

	child.Info().Msg("child")
	assert.Equal(t, "parent-role", decodeEntry(t, buf.Bytes())["role"])
}

func TestFromContext(t *testing.T) {
	t.Run("without logger", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})

	t.Run("attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := zerolog.New(&buf).With().Str("trace_id", "abc").Logger().WithContext(context.Background())

		FromContext(ctx).Info().Msg("scoped")
		assert.Equal(t, "abc", decodeEntry(t, buf.Bytes())["trace_id"])
	})
}

func TestFromRequest(t *testing.T) {
	t.Run("without logger", func(t *testing.T) {
		require.NotNil(t, FromRequest(httptest.NewRequest(http.MethodPost, "/api/login", nil)))
	})

	t.Run("attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := zerolog.New(&buf).With().Str("trace_id", "req-1").Logger().WithContext(context.Background())
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil).WithContext(ctx)

		FromRequest(req).Info().Msg("scoped")
		assert.Equal(t, "req-1", decodeEntry(t, buf.Bytes())["trace_id"])
	})
}
