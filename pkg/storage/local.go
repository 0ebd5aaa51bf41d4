package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage writes uploaded files to a directory on disk.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) *LocalStorage {
	return &LocalStorage{dir: dir}
}

// Save stores the contents of src under name, creating the upload
// directory if it does not exist yet.
func (s *LocalStorage) Save(name string, src io.Reader) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (s *LocalStorage) Dir() string {
	return s.dir
}
