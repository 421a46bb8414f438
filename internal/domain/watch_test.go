package domain

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "scratchbook.dev/pkg/scratchbook/internal/model"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer

	original := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))
	t.Cleanup(func() { slog.SetDefault(original) })

	return &buf
}

func newReloadSession(t *testing.T, persisted string) *watchSession {
	t.Helper()

	const location = m.Path("/work/demo.scratchbook")

	storage := newMemoryStorage("/work")
	storage.put(location, persisted)

	w := NewWorkflow(storage, nil, nil, NewContentProvider(storage), nil, nil, WorkflowConfig{}).(*workflow)

	doc := m.NewDocument(m.NewCell(m.Executable, m.LanguageTypeScript, "let x = 1;"))
	doc.Location = location

	return &watchSession{w: w, doc: doc, cell: 0}
}

func TestWatchSession_ReloadLogsTemplateFallback(t *testing.T) {
	logs := captureLogs(t)
	session := newReloadSession(t, `{"cells": [`)

	require.NoError(t, session.reload(context.Background()))

	assert.True(t, matchesTemplate(session.doc))
	assert.Contains(t, logs.String(), "level=INFO")
	assert.Contains(t, logs.String(), "empty template")
	assert.Contains(t, logs.String(), "demo.scratchbook")
}

func TestWatchSession_ReloadValidNotebookIsQuiet(t *testing.T) {
	data, err := Encode(m.NewDocument(m.NewCell(m.Executable, m.LanguageTypeScript, "let x = 2;")))
	require.NoError(t, err)

	logs := captureLogs(t)
	session := newReloadSession(t, string(data))

	require.NoError(t, session.reload(context.Background()))

	require.Len(t, session.doc.Cells, 1)
	assert.Equal(t, "let x = 2;", session.doc.Cells[0].Content)
	assert.NotContains(t, logs.String(), "empty template")
}

func TestMatchesTemplate(t *testing.T) {
	assert.True(t, matchesTemplate(m.Template()))

	edited := m.Template()
	edited.Cells[3].Content = "let x = 1;"
	assert.False(t, matchesTemplate(edited))

	assert.False(t, matchesTemplate(m.NewDocument()))
}
