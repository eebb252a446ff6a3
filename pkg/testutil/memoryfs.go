package testutil

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryFS implements types.FS with in-memory storage. It supports
// per-path error injection so tests can exercise copy failures.
type MemoryFS struct {
	mu    sync.RWMutex
	files map[string]*fileNode

	errorPaths map[string]error
}

// fileNode represents a file or directory in memory
type fileNode struct {
	name    string
	mode    fs.FileMode
	modTime time.Time
	content []byte
	isDir   bool
}

// NewMemoryFS creates a new in-memory filesystem with a root directory
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		files: map[string]*fileNode{
			"/": {name: "/", mode: 0755 | fs.ModeDir, modTime: time.Now(), isDir: true},
		},
		errorPaths: make(map[string]error),
	}
}

// InjectError makes any operation touching path fail with err
func (m *MemoryFS) InjectError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorPaths[normalize(path)] = err
}

func normalize(path string) string {
	if !filepath.IsAbs(path) {
		path = "/" + path
	}
	return filepath.Clean(path)
}

func (m *MemoryFS) checkError(path string) error {
	if err, ok := m.errorPaths[path]; ok {
		return err
	}
	return nil
}

func (m *MemoryFS) getNode(path string) (*fileNode, error) {
	if err := m.checkError(path); err != nil {
		return nil, err
	}
	node, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return node, nil
}

func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, err := m.getNode(normalize(name))
	if err != nil {
		return nil, err
	}
	return &fileInfo{node: node}, nil
}

func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	path := normalize(name)
	node, err := m.getNode(path)
	if err != nil {
		return nil, err
	}
	if node.isDir {
		return nil, &fs.PathError{Op: "read", Path: path, Err: fs.ErrInvalid}
	}
	out := make([]byte, len(node.content))
	copy(out, node.content)
	return out, nil
}

func (m *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := normalize(name)
	if err := m.checkError(path); err != nil {
		return err
	}

	parent := filepath.Dir(path)
	parentNode, ok := m.files[parent]
	if !ok || !parentNode.isDir {
		return &fs.PathError{Op: "write", Path: path, Err: fs.ErrNotExist}
	}

	content := make([]byte, len(data))
	copy(content, data)
	m.files[path] = &fileNode{
		name:    filepath.Base(path),
		mode:    perm,
		modTime: time.Now(),
		content: content,
	}
	return nil
}

func (m *MemoryFS) MkdirAll(path string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = normalize(path)
	if err := m.checkError(path); err != nil {
		return err
	}

	cur := "/"
	for _, part := range strings.Split(strings.Trim(path, "/"), "/") {
		if part == "" {
			continue
		}
		cur = filepath.Join(cur, part)
		if node, ok := m.files[cur]; ok {
			if !node.isDir {
				return &fs.PathError{Op: "mkdir", Path: cur, Err: fs.ErrExist}
			}
			continue
		}
		m.files[cur] = &fileNode{
			name:    part,
			mode:    perm | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		}
	}
	return nil
}

func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	path := normalize(name)
	node, err := m.getNode(path)
	if err != nil {
		return nil, err
	}
	if !node.isDir {
		return nil, &fs.PathError{Op: "readdir", Path: path, Err: fs.ErrInvalid}
	}

	var entries []fs.DirEntry
	for p, n := range m.files {
		if p != path && filepath.Dir(p) == path {
			entries = append(entries, &dirEntry{node: n})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func (m *MemoryFS) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := normalize(name)
	if err := m.checkError(path); err != nil {
		return err
	}
	if _, ok := m.files[path]; !ok {
		return &fs.PathError{Op: "remove", Path: path, Err: fs.ErrNotExist}
	}
	delete(m.files, path)
	return nil
}

func (m *MemoryFS) RemoveAll(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = normalize(path)
	if err := m.checkError(path); err != nil {
		return err
	}
	for p := range m.files {
		if p == path || strings.HasPrefix(p, path+"/") {
			delete(m.files, p)
		}
	}
	return nil
}

func (m *MemoryFS) Rename(oldpath, newpath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	oldpath = normalize(oldpath)
	newpath = normalize(newpath)
	if err := m.checkError(oldpath); err != nil {
		return err
	}
	node, ok := m.files[oldpath]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldpath, Err: fs.ErrNotExist}
	}
	delete(m.files, oldpath)
	node.name = filepath.Base(newpath)
	m.files[newpath] = node
	return nil
}

// Exists reports whether a path is present (test convenience)
func (m *MemoryFS) Exists(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.files[normalize(path)]
	return ok
}

// fileInfo adapts fileNode to fs.FileInfo
type fileInfo struct {
	node *fileNode
}

func (f *fileInfo) Name() string       { return f.node.name }
func (f *fileInfo) Size() int64        { return int64(len(f.node.content)) }
func (f *fileInfo) Mode() fs.FileMode  { return f.node.mode }
func (f *fileInfo) ModTime() time.Time { return f.node.modTime }
func (f *fileInfo) IsDir() bool        { return f.node.isDir }
func (f *fileInfo) Sys() any           { return nil }

// dirEntry adapts fileNode to fs.DirEntry
type dirEntry struct {
	node *fileNode
}

func (d *dirEntry) Name() string               { return d.node.name }
func (d *dirEntry) IsDir() bool                { return d.node.isDir }
func (d *dirEntry) Type() fs.FileMode          { return d.node.mode.Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return &fileInfo{node: d.node}, nil }
