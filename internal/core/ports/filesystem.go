package ports

import "io/fs"

// FileSystem abstracts the read-only filesystem operations used by detection and discovery.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// ReadDir lists the entries of the directory at path.
	ReadDir(path string) ([]fs.DirEntry, error)
	// Stat returns file info for the given path.
	Stat(path string) (fs.FileInfo, error)
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}
