package storage

import "io"

type StorageService interface {
	Save(name string, src io.Reader) error
}
