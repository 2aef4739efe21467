// Package walker discovers Swift source files to lint.
package walker

import "context"

// Callback receives one discovered file. Implementations may invoke it
// from multiple goroutines concurrently.
type Callback func(path string, content []byte) error

// Walker yields Swift source files from a root.
type Walker interface {
	Walk(ctx context.Context, callback Callback) error
}

// Config for file discovery.
type Config struct {
	// Root is the starting path.
	Root string

	// Excluded are path patterns (gitignore syntax) to skip, typically
	// from the configuration's excluded list.
	Excluded []string

	// IncludeHidden includes hidden files/directories (starting with .).
	IncludeHidden bool

	// MaxFileSize is the maximum file size to process (0 = no limit).
	MaxFileSize int64

	// FollowSymlinks follows symbolic links.
	FollowSymlinks bool
}
