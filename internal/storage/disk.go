package storage

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Uploader persists an uploaded image and returns the URL path it is
// served under. The catalog only depends on this narrow surface.
type Uploader interface {
	Save(fh *multipart.FileHeader) (string, error)
}

// Disk stores uploads on the local filesystem; the router serves the
// directory under /uploads.
type Disk struct {
	dir string
}

func NewDisk(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Disk{dir: dir}, nil
}

func (d *Disk) Save(fh *multipart.FileHeader) (string, error) {
	name := uuid.NewString() + filepath.Ext(fh.Filename)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(d.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}
