package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func decode(t *testing.T, buf *bytes.Buffer) []logEntry {
	t.Helper()

	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry logEntry
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestThemeScopeCarriesComponent(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	root, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log := root.ForComponent("export").ForTheme("dark")
	log.Info("recolored theme", "palettes", 4)

	entries := decode(t, buf)
	require.Len(t, entries, 1)
	require.Equal(t, "recolored theme", entries[0]["message"])
	require.Equal(t, "dark", entries[0][KeyTheme])
	require.Equal(t, "export", entries[0][KeyComponent])
	require.Equal(t, float64(4), entries[0]["palettes"])
	require.Equal(t, "info", entries[0]["level"])
}

func TestScopesDoNotLeakIntoParent(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	root, err := New(Options{Writer: buf})
	require.NoError(t, err)

	cli := root.ForComponent("cli")
	cli.ForTheme("light").Info("first")
	cli.Info("second")

	entries := decode(t, buf)
	require.Len(t, entries, 2)
	require.Equal(t, "light", entries[0][KeyTheme])
	require.NotContains(t, entries[1], KeyTheme)
	require.Equal(t, "cli", entries[1][KeyComponent])
}

func TestDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestErrorIncludesPathAndCause(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.ForPath("design.yaml").Error(errors.New("boom"), "failed", "line", 12)

	entries := decode(t, buf)
	require.Len(t, entries, 1)
	require.Equal(t, "failed", entries[0]["message"])
	require.Equal(t, "design.yaml", entries[0][KeyPath])
	require.Equal(t, "boom", entries[0]["error"])
	require.Equal(t, float64(12), entries[0]["line"])
}

func TestRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	nilLogger.Info("ignored")
	nilLogger.Error(errors.New("ignored"), "ignored")
	require.Nil(t, nilLogger.ForTheme("dark"))
	nilLogger.ForComponent("cli").Warn("ignored", "k", "v")

	nop := Nop()
	nop.Warn("ignored")
	require.NotNil(t, nop.ForPath("out"))
}
