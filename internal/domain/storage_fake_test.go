package domain

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	m "scratchbook.dev/pkg/scratchbook/internal/model"
)

// memoryStorage is an in-memory StorageAdapter that counts operations.
type memoryStorage struct {
	mu        sync.Mutex
	files     map[m.Path][]byte
	dirs      map[m.Path]bool
	failWrite map[m.Path]error
	failRm    map[m.Path]error
	onWrite   func(path m.Path)
	reads     int
	writes    int
	removes   int
}

func newMemoryStorage(dirs ...m.Path) *memoryStorage {
	s := &memoryStorage{
		files:     map[m.Path][]byte{},
		dirs:      map[m.Path]bool{},
		failWrite: map[m.Path]error{},
		failRm:    map[m.Path]error{},
	}

	for _, dir := range dirs {
		s.mkdirAll(dir)
	}

	return s
}

func (s *memoryStorage) put(path m.Path, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mkdirAll(m.Path(filepath.Dir(string(path))))
	s.files[path] = []byte(content)
}

func (s *memoryStorage) content(path m.Path) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.files[path]

	return string(data), ok
}

func (s *memoryStorage) counts() (reads, writes, removes int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.reads, s.writes, s.removes
}

func (s *memoryStorage) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.reads++

	data, ok := s.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: string(path), Err: fs.ErrNotExist}
	}

	return append([]byte(nil), data...), nil
}

func (s *memoryStorage) WriteFile(ctx context.Context, path m.Path, content []byte, _ os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.write(path, content); err != nil {
		return err
	}

	if s.onWrite != nil {
		s.onWrite(path)
	}

	return nil
}

func (s *memoryStorage) write(path m.Path, content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failWrite[path]; err != nil {
		return err
	}

	if !s.dirs[m.Path(filepath.Dir(string(path)))] {
		return &fs.PathError{Op: "open", Path: string(path), Err: fs.ErrNotExist}
	}

	s.writes++
	s.files[path] = append([]byte(nil), content...)

	return nil
}

func (s *memoryStorage) Remove(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failRm[path]; err != nil {
		return err
	}

	s.removes++
	prefix := string(path) + string(filepath.Separator)

	delete(s.files, path)
	delete(s.dirs, path)

	for file := range s.files {
		if strings.HasPrefix(string(file), prefix) {
			delete(s.files, file)
		}
	}

	for dir := range s.dirs {
		if strings.HasPrefix(string(dir), prefix) {
			delete(s.dirs, dir)
		}
	}

	return nil
}

func (s *memoryStorage) ReadDir(ctx context.Context, dir m.Path) ([]m.Path, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirs[dir] {
		return nil, &fs.PathError{Op: "open", Path: string(dir), Err: fs.ErrNotExist}
	}

	var entries []m.Path

	for file := range s.files {
		if filepath.Dir(string(file)) == string(dir) {
			entries = append(entries, file)
		}
	}

	for sub := range s.dirs {
		if sub != dir && filepath.Dir(string(sub)) == string(dir) {
			entries = append(entries, sub)
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i] < entries[j] })

	return entries, nil
}

func (s *memoryStorage) MkdirAll(ctx context.Context, dir m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.mkdirAll(dir)

	return nil
}

func (s *memoryStorage) mkdirAll(dir m.Path) {
	for {
		s.dirs[dir] = true

		parent := m.Path(filepath.Dir(string(dir)))
		if parent == dir {
			return
		}

		dir = parent
	}
}

func (s *memoryStorage) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if data, ok := s.files[path]; ok {
		return memoryFileInfo{name: filepath.Base(string(path)), size: int64(len(data))}, nil
	}

	if s.dirs[path] {
		return memoryFileInfo{name: filepath.Base(string(path)), dir: true}, nil
	}

	return nil, &fs.PathError{Op: "stat", Path: string(path), Err: fs.ErrNotExist}
}

func (s *memoryStorage) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

type memoryFileInfo struct {
	name string
	size int64
	dir  bool
}

func (i memoryFileInfo) Name() string       { return i.name }
func (i memoryFileInfo) Size() int64        { return i.size }
func (i memoryFileInfo) ModTime() time.Time { return time.Time{} }
func (i memoryFileInfo) IsDir() bool        { return i.dir }
func (i memoryFileInfo) Sys() any           { return nil }

func (i memoryFileInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0o755
	}

	return 0o644
}
