package upload

import (
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"

	usecase "liga/backend/internal/usecase/post"
)

// DiskStore writes uploaded images to a local directory and exposes them
// under a fixed URL prefix.
type DiskStore struct {
	dir       string
	urlPrefix string
}

// NewDiskStore creates the upload directory if needed and returns a store
// serving files under urlPrefix.
func NewDiskStore(dir, urlPrefix string) (*DiskStore, error) {
	if dir == "" {
		return nil, errors.New("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{dir: dir, urlPrefix: urlPrefix}, nil
}

// Ensure DiskStore implements the ImageStore interface.
var _ usecase.ImageStore = (*DiskStore)(nil)

// Save writes the file under the store directory keyed by its base name and
// returns the public URL path.
func (s *DiskStore) Save(filename string, data io.Reader) (string, error) {
	name := filepath.Base(filepath.Clean(filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", errors.New("invalid file name")
	}

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, data); err != nil {
		return "", err
	}
	return path.Join(s.urlPrefix, name), nil
}
