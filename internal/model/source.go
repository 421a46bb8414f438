package model

// Path represents a file system path.
type Path string

// Staged file names written into the staging directory.
const (
	ManifestFileName = "package.json"
	CodeFileName     = "extension.ts"
)

// StagedProject holds the files written by a successful staging pass.
type StagedProject struct {
	Dir      Path
	Manifest Path
	Code     Path
}

// Files lists the staged files in the order they are handed to the compiler.
func (p StagedProject) Files() []Path {
	return []Path{p.Code}
}
