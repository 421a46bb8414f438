package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "scratchbook.dev/pkg/scratchbook/internal/model"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		cells []m.Cell
	}{
		{
			name:  "empty document",
			cells: nil,
		},
		{
			name: "manifest and code",
			cells: []m.Cell{
				m.NewCell(m.Executable, m.LanguageManifest, `{"name":"demo","main":"./extension.js"}`),
				m.NewCell(m.Executable, m.LanguageTypeScript, "export function activate() {}\n"),
			},
		},
		{
			name: "mixed kinds keep order",
			cells: []m.Cell{
				m.NewCell(m.Markup, m.LanguageMarkdown, "# Title\n\nSome *notes*."),
				m.NewCell(m.Executable, "python", "print('not staged')"),
				m.NewCell(m.Markup, "", ""),
				m.NewCell(m.Executable, m.LanguageTypeScript, "let s = \"quotes \\\" and\ttabs\";\r\n// ünïcödé 🚀"),
				m.NewCell(m.Executable, m.LanguageManifest, "{}"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode(m.NewDocument(tt.cells...))
			require.NoError(t, err)

			got := Decode(data)

			require.Len(t, got.Cells, len(tt.cells))

			for i, want := range tt.cells {
				assert.Equal(t, want.Kind, got.Cells[i].Kind, "cell %d kind", i)
				assert.Equal(t, want.Language, got.Cells[i].Language, "cell %d language", i)
				assert.Equal(t, want.Content, got.Cells[i].Content, "cell %d content", i)
			}
		})
	}
}

func TestEncode_PersistedForm(t *testing.T) {
	doc := m.NewDocument(
		m.NewCell(m.Markup, m.LanguageMarkdown, "notes"),
		m.NewCell(m.Executable, m.LanguageManifest, "{}"),
	)
	doc.Metadata["ignored"] = true

	data, err := Encode(doc)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, map[string]any{}, raw["metadata"])
	assert.Equal(t, []any{
		map[string]any{"cellKind": "markdown", "source": "notes", "language": "markdown"},
		map[string]any{"cellKind": "code", "source": "{}", "language": "json"},
	}, raw["cells"])
	assert.Equal(t, byte('\n'), data[len(data)-1])
}

func TestEncode_DropsRunState(t *testing.T) {
	cell, err := m.Transition(m.NewCell(m.Executable, m.LanguageTypeScript, "let a = 1;"), m.Running)
	require.NoError(t, err)

	cell, err = m.Transition(cell, m.Failed)
	require.NoError(t, err)

	data, err := Encode(m.NewDocument(cell))
	require.NoError(t, err)

	assert.NotContains(t, string(data), "failed")
	assert.Equal(t, m.Idle, Decode(data).Cells[0].RunState())
}

func TestDecode_FallsBackToTemplate(t *testing.T) {
	template := m.Template()

	inputs := map[string][]byte{
		"empty bytes":       nil,
		"not json":          []byte("definitely not json"),
		"truncated":         []byte(`{"cells":[{"cellKind":"code"`),
		"json array":        []byte(`[1,2,3]`),
		"missing cells":     []byte(`{"metadata":{}}`),
		"null cells":        []byte(`{"cells":null}`),
		"cells not array":   []byte(`{"cells":"nope"}`),
		"unknown cell kind": []byte(`{"cells":[{"cellKind":"raw","source":"x","language":"text"}]}`),
		"wrong field type":  []byte(`{"cells":[{"cellKind":"code","source":42,"language":"json"}]}`),
		"invalid utf8 json": {0xff, 0xfe, 0xfd},
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			var got *m.Document

			require.NotPanics(t, func() { got = Decode(input) })
			require.Len(t, got.Cells, len(template.Cells))

			for i := range template.Cells {
				assert.Equal(t, template.Cells[i].Kind, got.Cells[i].Kind)
				assert.Equal(t, template.Cells[i].Language, got.Cells[i].Language)
				assert.Equal(t, template.Cells[i].Content, got.Cells[i].Content)
			}
		})
	}
}

func TestDecode_IgnoresUnknownFields(t *testing.T) {
	data := []byte(`{
		"version": 3,
		"cells": [{"cellKind": "code", "source": "{}", "language": "json", "outputs": []}]
	}`)

	doc := Decode(data)

	require.Len(t, doc.Cells, 1)
	assert.Equal(t, m.Executable, doc.Cells[0].Kind)
	assert.Equal(t, "{}", doc.Cells[0].Content)
	assert.Empty(t, doc.Metadata)
	assert.Equal(t, m.SupportedLanguages, doc.Languages)
}

func TestDecode_EmptyCellsIsNotFallback(t *testing.T) {
	doc := Decode([]byte(`{"cells":[]}`))

	assert.Empty(t, doc.Cells)
}
