package media

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// DiskUploader writes photos into a local upload directory and returns
// the relative path. Used when Cloudinary is not configured.
type DiskUploader struct {
	dir string
}

func NewDiskUploader(dir string) (*DiskUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskUploader{dir: dir}, nil
}

func (u *DiskUploader) Upload(file *multipart.FileHeader, name string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	path := filepath.Join(u.dir, name+filepath.Ext(file.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return path, nil
}
