package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	m "scratchbook.dev/pkg/scratchbook/internal/model"
)

// Persisted cell kinds.
const (
	persistedCode     = "code"
	persistedMarkdown = "markdown"
)

var errMalformedNotebook = errors.New("malformed notebook")

type persistedCell struct {
	CellKind string `json:"cellKind"`
	Source   string `json:"source"`
	Language string `json:"language"`
}

type persistedNotebook struct {
	Cells    []persistedCell `json:"cells"`
	Metadata map[string]any  `json:"metadata"`
}

// Decode parses persisted notebook bytes. It never fails: anything that is
// not a valid persisted notebook decodes to the template document.
func Decode(data []byte) *m.Document {
	doc, err := decodeStrict(data)
	if err != nil {
		slog.Debug("Falling back to template notebook", "error", err)
		return m.Template()
	}

	return doc
}

func decodeStrict(data []byte) (*m.Document, error) {
	var raw struct {
		Cells *[]persistedCell `json:"cells"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformedNotebook, err)
	}

	if raw.Cells == nil {
		return nil, fmt.Errorf("%w: missing cells", errMalformedNotebook)
	}

	cells := make([]m.Cell, 0, len(*raw.Cells))

	for i, pc := range *raw.Cells {
		kind, err := decodeKind(pc.CellKind)
		if err != nil {
			return nil, fmt.Errorf("%w: cell %d: %w", errMalformedNotebook, i, err)
		}

		cells = append(cells, m.NewCell(kind, pc.Language, pc.Source))
	}

	return m.NewDocument(cells...), nil
}

func decodeKind(kind string) (m.CellKind, error) {
	switch kind {
	case persistedCode:
		return m.Executable, nil
	case persistedMarkdown:
		return m.Markup, nil
	default:
		return m.Markup, fmt.Errorf("unknown cell kind %q", kind)
	}
}

// Encode renders doc in the persisted form. Run state is not persisted and
// metadata is always written empty.
func Encode(doc *m.Document) ([]byte, error) {
	out := persistedNotebook{
		Cells:    make([]persistedCell, 0, len(doc.Cells)),
		Metadata: map[string]any{},
	}

	for _, cell := range doc.Cells {
		kind := persistedMarkdown
		if cell.Kind == m.Executable {
			kind = persistedCode
		}

		out.Cells = append(out.Cells, persistedCell{
			CellKind: kind,
			Source:   cell.Content,
			Language: cell.Language,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode notebook: %w", err)
	}

	return append(data, '\n'), nil
}
