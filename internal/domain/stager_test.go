package domain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"scratchbook.dev/pkg/scratchbook/internal/adapter"
	m "scratchbook.dev/pkg/scratchbook/internal/model"
)

const stagingTarget = m.Path("/work/.scratchbook/staging")

func stagedDocument() *m.Document {
	return m.NewDocument(
		m.NewCell(m.Markup, m.LanguageMarkdown, "notes"),
		m.NewCell(m.Executable, m.LanguageManifest, `{"name":"demo"}`),
		m.NewCell(m.Executable, m.LanguageTypeScript, "export const one = 1;\n"),
		m.NewCell(m.Executable, m.LanguageTypeScript, "export const two = 2;\n"),
	)
}

func TestStager_StageReplacesEverything(t *testing.T) {
	storage := newMemoryStorage(stagingTarget)

	for i := range 5 {
		storage.put(stagingTarget+m.Path(fmt.Sprintf("/stale-%d.txt", i)), "old")
	}

	storage.put(stagingTarget+"/node_modules/left-pad/index.js", "module.exports = 1")

	project, err := NewStager(storage).Stage(context.Background(), stagedDocument(), 3, stagingTarget)
	require.NoError(t, err)

	entries, err := storage.ReadDir(context.Background(), stagingTarget)
	require.NoError(t, err)

	assert.Equal(t, []m.Path{
		stagingTarget + "/" + m.CodeFileName,
		stagingTarget + "/" + m.ManifestFileName,
	}, entries)

	manifest, _ := storage.content(project.Manifest)
	assert.Equal(t, `{"name":"demo"}`, manifest)

	code, _ := storage.content(project.Code)
	assert.Equal(t, "export const two = 2;\n", code)

	assert.Equal(t, []m.Path{project.Code}, project.Files())
}

func TestStager_NoManifestIsNoOp(t *testing.T) {
	storage := newMemoryStorage(stagingTarget)
	storage.put(stagingTarget+"/keep.txt", "untouched")

	_, beforeWrites, beforeRemoves := storage.counts()

	doc := m.NewDocument(
		m.NewCell(m.Markup, m.LanguageMarkdown, "no manifest here"),
		m.NewCell(m.Executable, m.LanguageTypeScript, "let x = 1;"),
	)

	_, err := NewStager(storage).Stage(context.Background(), doc, 1, stagingTarget)
	require.ErrorIs(t, err, ErrNothingToStage)

	_, writes, removes := storage.counts()
	assert.Equal(t, beforeWrites, writes)
	assert.Equal(t, beforeRemoves, removes)

	keep, ok := storage.content(stagingTarget + "/keep.txt")
	assert.True(t, ok)
	assert.Equal(t, "untouched", keep)
}

func TestStager_ManifestIsFirstJSONCell(t *testing.T) {
	storage := newMemoryStorage(stagingTarget)

	doc := m.NewDocument(
		m.NewCell(m.Executable, m.LanguageManifest, `{"first":true}`),
		m.NewCell(m.Executable, m.LanguageManifest, `{"second":true}`),
		m.NewCell(m.Executable, m.LanguageTypeScript, ""),
	)

	project, err := NewStager(storage).Stage(context.Background(), doc, 2, stagingTarget)
	require.NoError(t, err)

	manifest, _ := storage.content(project.Manifest)
	assert.Equal(t, `{"first":true}`, manifest)
}

func TestStager_DeletionFailureDoesNotAbort(t *testing.T) {
	storage := newMemoryStorage(stagingTarget)
	storage.put(stagingTarget+"/locked.txt", "locked")
	storage.put(stagingTarget+"/a.txt", "a")
	storage.put(stagingTarget+"/b.txt", "b")
	storage.failRm[stagingTarget+"/locked.txt"] = errors.New("permission denied")

	_, err := NewStager(storage).Stage(context.Background(), stagedDocument(), 2, stagingTarget)
	require.NoError(t, err)

	_, ok := storage.content(stagingTarget + "/a.txt")
	assert.False(t, ok)

	_, ok = storage.content(stagingTarget + "/b.txt")
	assert.False(t, ok)

	_, ok = storage.content(stagingTarget + "/" + m.CodeFileName)
	assert.True(t, ok)
}

func TestStager_WriteFailurePropagates(t *testing.T) {
	storage := newMemoryStorage(stagingTarget)
	storage.failWrite[stagingTarget+"/"+m.CodeFileName] = errors.New("read-only file system")

	_, err := NewStager(storage).Stage(context.Background(), stagedDocument(), 2, stagingTarget)
	require.Error(t, err)
	assert.Contains(t, err.Error(), m.CodeFileName)

	manifest, ok := storage.content(stagingTarget + "/" + m.ManifestFileName)
	assert.True(t, ok, "manifest is written before the code file")
	assert.Equal(t, `{"name":"demo"}`, manifest)
}

func TestStager_MissingTargetDir(t *testing.T) {
	storage := newMemoryStorage()

	_, err := NewStager(storage).Stage(context.Background(), stagedDocument(), 2, stagingTarget)
	require.Error(t, err)
}

func TestStager_CellOutOfRange(t *testing.T) {
	storage := newMemoryStorage(stagingTarget)

	_, err := NewStager(storage).Stage(context.Background(), stagedDocument(), 9, stagingTarget)
	require.ErrorIs(t, err, ErrCellOutOfRange)
}

func TestStager_LocalStorage(t *testing.T) {
	dir := t.TempDir()

	for i := range 5 {
		require.NoError(t, os.WriteFile(filepath.Join(dir, fmt.Sprintf("unrelated-%d.log", i)), []byte("x"), 0o600))
	}

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "out", "nested"), 0o750))

	_, err := NewStager(adapter.NewLocalStorageAdapter()).Stage(context.Background(), stagedDocument(), 2, m.Path(dir))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	assert.ElementsMatch(t, []string{m.ManifestFileName, m.CodeFileName}, names)
}
