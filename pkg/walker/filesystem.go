package walker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/sync/errgroup"
)

// FilesystemWalker walks a directory tree for Swift files.
type FilesystemWalker struct {
	config Config
}

// NewFilesystemWalker creates a new filesystem walker.
func NewFilesystemWalker(config Config) *FilesystemWalker {
	return &FilesystemWalker{config: config}
}

// Walk discovers Swift files under the root and yields their content.
// Phase 1: walk the directory tree and collect eligible paths (fast,
// sequential). Phase 2: read files and invoke the callback in parallel.
func (w *FilesystemWalker) Walk(ctx context.Context, callback Callback) error {
	// Combine .gitignore patterns (if present) with configured excludes.
	var patterns []string
	gitignorePath := filepath.Join(w.config.Root, ".gitignore")
	if data, err := os.ReadFile(gitignorePath); err == nil {
		patterns = append(patterns, strings.Split(string(data), "\n")...)
	}
	patterns = append(patterns, w.config.Excluded...)

	var ignore *gitignore.GitIgnore
	if len(patterns) > 0 {
		ignore = gitignore.CompileIgnoreLines(patterns...)
	}

	// Phase 1: collect eligible file paths.
	var files []string
	err := filepath.Walk(w.config.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if info.IsDir() {
			if !w.config.IncludeHidden && isHidden(info.Name()) && path != w.config.Root {
				return filepath.SkipDir
			}
			return nil
		}

		if info.Mode()&os.ModeSymlink != 0 && !w.config.FollowSymlinks {
			return nil
		}

		if !w.config.IncludeHidden && isHidden(info.Name()) {
			return nil
		}

		if !isSwiftSource(path) {
			return nil
		}

		if w.config.MaxFileSize > 0 && info.Size() > w.config.MaxFileSize {
			return nil
		}

		if ignore != nil {
			relPath, err := filepath.Rel(w.config.Root, path)
			if err != nil {
				return err
			}
			if ignore.MatchesPath(relPath) {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return err
	}

	// Phase 2: read and process files in parallel.
	numReaders := runtime.NumCPU()
	if numReaders < 1 {
		numReaders = 1
	}

	origCtx := ctx
	g, ctx := errgroup.WithContext(ctx)
	pathsCh := make(chan string, numReaders*2)

	g.Go(func() error {
		defer close(pathsCh)
		for _, f := range files {
			select {
			case pathsCh <- f:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < numReaders; i++ {
		g.Go(func() error {
			for f := range pathsCh {
				if err := w.processFile(ctx, f, callback); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	// If the caller's context was cancelled but all goroutines finished
	// before noticing, propagate the cancellation.
	if origCtx.Err() != nil {
		return origCtx.Err()
	}
	return nil
}

// processFile reads a single file and invokes the callback.
func (w *FilesystemWalker) processFile(ctx context.Context, path string, callback Callback) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	return callback(path, content)
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

func isSwiftSource(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".swift")
}
