package model

// Document is the in-memory notebook: ordered cells plus metadata.
type Document struct {
	// ID and Location identify an open document session. They are not persisted.
	ID        string
	Location  Path
	Cells     []Cell
	Metadata  map[string]any
	Languages []string
}

// SupportedLanguages lists the languages a notebook declares.
var SupportedLanguages = []string{LanguageManifest, LanguageTypeScript, LanguageMarkdown}

// NewDocument builds a document from cells, preserving their order.
func NewDocument(cells ...Cell) *Document {
	return &Document{
		Cells:     cells,
		Metadata:  map[string]any{},
		Languages: append([]string(nil), SupportedLanguages...),
	}
}

// ManifestIndex returns the index of the first manifest cell, or -1.
func (d *Document) ManifestIndex() int {
	for i, cell := range d.Cells {
		if cell.IsManifest() {
			return i
		}
	}

	return -1
}

// FirstCodeIndex returns the index of the first executable cell that is not
// the manifest, or -1.
func (d *Document) FirstCodeIndex() int {
	for i, cell := range d.Cells {
		if cell.Kind == Executable && !cell.IsManifest() {
			return i
		}
	}

	return -1
}

const (
	templateManifestNote = "## Manifest\n\nDescribe the package in the JSON cell below. " +
		"It is staged as `package.json`."
	templateCodeNote = "## Extension\n\nWrite the extension entry point in the TypeScript cell below. " +
		"It is staged as `extension.ts` and type-checked on run."
)

// Template returns the starter document used for new notebooks and for
// persisted bytes that cannot be decoded.
func Template() *Document {
	return NewDocument(
		NewCell(Markup, LanguageMarkdown, templateManifestNote),
		NewCell(Executable, LanguageManifest, ""),
		NewCell(Markup, LanguageMarkdown, templateCodeNote),
		NewCell(Executable, LanguageTypeScript, ""),
	)
}
