// Package gitsync commits exported files into the git repository that
// contains them.
package gitsync

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

var (
	// ErrNotRepository is returned when no repository contains the files.
	ErrNotRepository = errors.New("not inside a git repository")
	// ErrUnrelatedChanges is returned when the index holds staged changes to
	// files outside the request, which a commit would otherwise sweep in.
	ErrUnrelatedChanges = errors.New("index has unrelated staged changes")
)

// Author identifies the commit signature.
type Author struct {
	Name  string
	Email string
}

// DefaultAuthor signs commits when the caller has no identity configured.
var DefaultAuthor = Author{Name: "swatchy", Email: "swatchy@localhost"}

// CommitRequest describes a commit of freshly written files.
type CommitRequest struct {
	// Dir is any directory inside the working tree.
	Dir     string
	Paths   []string
	Message string
	Author  Author
	When    time.Time
}

// Result reports what Commit did.
type Result struct {
	Hash      plumbing.Hash
	Committed bool
}

// Commit stages the given paths and commits them. When staging leaves the
// tree clean no commit is created.
func Commit(req CommitRequest) (Result, error) {
	repo, err := git.PlainOpenWithOptions(req.Dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return Result{}, fmt.Errorf("%s: %w", req.Dir, ErrNotRepository)
		}
		return Result{}, fmt.Errorf("open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return Result{}, fmt.Errorf("open worktree: %w", err)
	}
	root, err := filepath.EvalSymlinks(wt.Filesystem.Root())
	if err != nil {
		return Result{}, err
	}

	owned := make(map[string]struct{}, len(req.Paths))
	for _, path := range req.Paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return Result{}, err
		}
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			abs = resolved
		}
		rel, err := filepath.Rel(root, abs)
		if err != nil {
			return Result{}, fmt.Errorf("path %s outside worktree: %w", path, err)
		}
		rel = filepath.ToSlash(rel)
		if _, err := wt.Add(rel); err != nil {
			return Result{}, fmt.Errorf("stage %s: %w", rel, err)
		}
		owned[rel] = struct{}{}
	}

	status, err := wt.Status()
	if err != nil {
		return Result{}, fmt.Errorf("read status: %w", err)
	}
	changed, unrelated := stagedChanges(status, owned)
	if !changed {
		return Result{}, nil
	}
	if len(unrelated) > 0 {
		return Result{}, fmt.Errorf("%w: %s", ErrUnrelatedChanges, strings.Join(unrelated, ", "))
	}

	author := req.Author
	if author.Name == "" {
		author = DefaultAuthor
	}
	when := req.When
	if when.IsZero() {
		when = time.Now()
	}

	hash, err := wt.Commit(req.Message, &git.CommitOptions{
		Author: &object.Signature{Name: author.Name, Email: author.Email, When: when},
	})
	if err != nil {
		return Result{}, fmt.Errorf("commit: %w", err)
	}
	return Result{Hash: hash, Committed: true}, nil
}

// stagedChanges reports whether any owned path is staged, and lists the other
// staged paths in order.
func stagedChanges(status git.Status, owned map[string]struct{}) (bool, []string) {
	changed := false
	var unrelated []string
	for path, s := range status {
		if s.Staging == git.Unmodified || s.Staging == git.Untracked {
			continue
		}
		if _, ok := owned[path]; ok {
			changed = true
			continue
		}
		unrelated = append(unrelated, path)
	}
	sort.Strings(unrelated)
	return changed, unrelated
}
