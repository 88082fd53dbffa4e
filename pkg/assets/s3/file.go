package s3

import (
	"io/fs"
	"path"
	"time"

	"github.com/minio/minio-go/v7"
)

// File is a bucket object opened for reading. The embedded object provides
// Read, Seek and Close, which lets http.FileServer serve ranges.
type File struct {
	*minio.Object
	info minio.ObjectInfo
}

// Stat implements fs.File.
func (f *File) Stat() (fs.FileInfo, error) {
	return &fileInfo{f.info}, nil
}

type fileInfo struct {
	info minio.ObjectInfo
}

func (fi *fileInfo) Name() string       { return path.Base(fi.info.Key) }
func (fi *fileInfo) Size() int64        { return fi.info.Size }
func (fi *fileInfo) Mode() fs.FileMode  { return 0o444 }
func (fi *fileInfo) ModTime() time.Time { return fi.info.LastModified }
func (fi *fileInfo) IsDir() bool        { return false }
func (fi *fileInfo) Sys() any           { return fi.info }

var (
	_ fs.File     = &File{}
	_ fs.FileInfo = &fileInfo{}
)
