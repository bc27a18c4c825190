package ports

import "io"

type FileSystemPort interface {
	Open(path string) (io.ReadCloser, error)
	IsDir(path string) (bool, error)
	Walk(root string) ([]string, error)
	Exists(path string) (bool, error)
}
