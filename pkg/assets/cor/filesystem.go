// Package cor keeps a copy of every file read from a slow backend in memory,
// so that later reads do not hit the backend again.
package cor

import (
	"bytes"
	"io"
	"io/fs"
	"time"

	"github.com/infratech/site/internal/syncx"
	"github.com/pkg/errors"
)

// FileSystem implements fs.FS with copy-on-read behavior. Files larger than
// the configured limit are streamed from the backend and never cached.
type FileSystem struct {
	backend fs.FS
	maxSize int64
	files   syncx.Map[string, *cachedFile]
}

type cachedFile struct {
	data []byte
	info fs.FileInfo
}

// Open implements fs.FS.
func (f *FileSystem) Open(name string) (fs.File, error) {
	if cached, exists := f.files.Load(name); exists {
		return newFile(cached), nil
	}

	file, err := f.backend.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, errors.WithStack(err)
	}

	if info.IsDir() || info.Size() > f.maxSize {
		return file, nil
	}

	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cached, _ := f.files.LoadOrStore(name, &cachedFile{
		data: data,
		info: &fileInfo{
			name:    info.Name(),
			size:    int64(len(data)),
			mode:    info.Mode(),
			modTime: info.ModTime(),
		},
	})

	return newFile(cached), nil
}

func New(backend fs.FS, maxSize int64) *FileSystem {
	return &FileSystem{
		backend: backend,
		maxSize: maxSize,
	}
}

// File is an in-memory copy of a backend file.
type File struct {
	*bytes.Reader
	info fs.FileInfo
}

// Stat implements fs.File.
func (f *File) Stat() (fs.FileInfo, error) {
	return f.info, nil
}

// Close implements fs.File.
func (f *File) Close() error {
	return nil
}

func newFile(c *cachedFile) *File {
	return &File{
		Reader: bytes.NewReader(c.data),
		info:   c.info,
	}
}

// fileInfo freezes the size of a cached file.
type fileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (fi *fileInfo) Name() string       { return fi.name }
func (fi *fileInfo) Size() int64        { return fi.size }
func (fi *fileInfo) Mode() fs.FileMode  { return fi.mode }
func (fi *fileInfo) ModTime() time.Time { return fi.modTime }
func (fi *fileInfo) IsDir() bool        { return false }
func (fi *fileInfo) Sys() any           { return nil }

var (
	_ fs.FS       = &FileSystem{}
	_ fs.File     = &File{}
	_ io.Seeker   = &File{}
	_ fs.FileInfo = &fileInfo{}
)
