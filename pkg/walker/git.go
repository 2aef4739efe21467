package walker

import (
	"context"
	"fmt"
	"io"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GitWalker yields the Swift files tracked by a git repository at a
// given revision, skipping untracked files and build products entirely.
type GitWalker struct {
	config Config
	// CommitRef optionally specifies the revision to walk (defaults to HEAD).
	CommitRef string
}

// NewGitWalker creates a new git walker.
func NewGitWalker(config Config) *GitWalker {
	return &GitWalker{
		config:    config,
		CommitRef: "HEAD",
	}
}

// Walk enumerates tracked Swift files at the configured revision.
func (w *GitWalker) Walk(ctx context.Context, callback Callback) error {
	repo, err := git.PlainOpen(w.config.Root)
	if err != nil {
		return fmt.Errorf("failed to open git repository: %w", err)
	}

	ref, err := repo.ResolveRevision(plumbing.Revision(w.CommitRef))
	if err != nil {
		return fmt.Errorf("failed to resolve ref %s: %w", w.CommitRef, err)
	}

	commit, err := repo.CommitObject(*ref)
	if err != nil {
		return fmt.Errorf("failed to get commit: %w", err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return fmt.Errorf("failed to get tree: %w", err)
	}

	err = tree.Files().ForEach(func(f *object.File) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !isSwiftSource(f.Name) {
			return nil
		}

		if w.config.MaxFileSize > 0 && f.Size > w.config.MaxFileSize {
			return nil
		}

		content, err := f.Contents()
		if err != nil {
			return fmt.Errorf("failed to get contents of %s: %w", f.Name, err)
		}

		return callback(f.Name, []byte(content))
	})
	if err != nil && err != io.EOF {
		return err
	}
	return nil
}
