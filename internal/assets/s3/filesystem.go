package s3

import (
	"context"
	"io/fs"
	"path"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

// FileSystem exposes the objects of a bucket as a read only fs.FS.
type FileSystem struct {
	client *minio.Client
	bucket string
	prefix string
}

// Open implements fs.FS.
func (f *FileSystem) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}

	key := path.Join(f.prefix, name)

	object, err := f.client.GetObject(context.Background(), f.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: errors.WithStack(err)}
	}

	info, err := object.Stat()
	if err != nil {
		object.Close()

		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
		}

		return nil, &fs.PathError{Op: "open", Path: name, Err: errors.WithStack(err)}
	}

	return &File{object: object, info: info}, nil
}

var _ fs.FS = &FileSystem{}

type File struct {
	object *minio.Object
	info   minio.ObjectInfo
}

// Read implements fs.File.
func (f *File) Read(b []byte) (int, error) {
	return f.object.Read(b)
}

// Seek implements io.Seeker.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.object.Seek(offset, whence)
}

// Close implements fs.File.
func (f *File) Close() error {
	if err := f.object.Close(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Stat implements fs.File.
func (f *File) Stat() (fs.FileInfo, error) {
	return &FileInfo{f.info}, nil
}

var _ fs.File = &File{}

type FileInfo struct {
	info minio.ObjectInfo
}

func (i *FileInfo) Name() string       { return path.Base(i.info.Key) }
func (i *FileInfo) Size() int64        { return i.info.Size }
func (i *FileInfo) Mode() fs.FileMode  { return 0444 }
func (i *FileInfo) ModTime() time.Time { return i.info.LastModified }
func (i *FileInfo) IsDir() bool        { return false }
func (i *FileInfo) Sys() any           { return nil }

var _ fs.FileInfo = &FileInfo{}

func NewFileSystem(client *minio.Client, bucket string, prefix string) *FileSystem {
	return &FileSystem{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}
