package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/woozymasta/semtag"
)

const tagRefPrefix = "refs/tags/"

// ErrDiverged is returned by FetchAndPull when the current branch and its
// remote counterpart have diverged and cannot be fast-forwarded.
var ErrDiverged = errors.New("local branch diverged from remote")

// Repository wraps a go-git repository opened from a working directory.
type Repository struct {
	repo *git.Repository
	log  *slog.Logger
}

// Open opens the repository containing path (parent directories are searched
// for .git). A nil logger discards output.
func Open(path string, logger *slog.Logger) (*Repository, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository %q: %w", path, err)
	}

	return New(r, logger), nil
}

// New wraps an already opened repository.
func New(r *git.Repository, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Repository{repo: r, log: logger}
}

// Tags returns the short names of all tag references.
func (r *Repository) Tags() ([]string, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer iter.Close()

	var out []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		out = append(out, strings.TrimPrefix(ref.Name().String(), tagRefPrefix))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	return out, nil
}

// TagExists reports whether a tag named name exists.
func (r *Repository) TagExists(name string) (bool, error) {
	_, err := r.repo.Reference(plumbing.NewTagReferenceName(name), false)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("lookup tag %q: %w", name, err)
	}
}

// CreateTag creates a lightweight tag at HEAD.
// An existing tag yields a *semtag.TagExistsError.
func (r *Repository) CreateTag(name string) (*plumbing.Reference, error) {
	head, err := r.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}

	ref, err := r.repo.CreateTag(name, head.Hash(), nil)
	if errors.Is(err, git.ErrTagExists) {
		return nil, &semtag.TagExistsError{Tag: name}
	}
	if err != nil {
		return nil, fmt.Errorf("create tag %q: %w", name, err)
	}

	r.log.Info("tag created", "tag", name, "commit", head.Hash().String())

	return ref, nil
}

// Remotes returns the names of configured remotes.
func (r *Repository) Remotes() ([]string, error) {
	remotes, err := r.repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("list remotes: %w", err)
	}

	out := make([]string, 0, len(remotes))
	for _, rem := range remotes {
		out = append(out, rem.Config().Name)
	}

	return out, nil
}

// FetchAndPull fetches every remote (tags included) and pulls the current
// branch from it. Up-to-date remotes are not an error. Pull is fast-forward
// only: a diverged branch fails with ErrDiverged and nothing is merged.
func (r *Repository) FetchAndPull(ctx context.Context) error {
	remotes, err := r.repo.Remotes()
	if err != nil {
		return fmt.Errorf("list remotes: %w", err)
	}

	for _, rem := range remotes {
		name := rem.Config().Name
		r.log.Info("found remote", "remote", name)

		err := rem.FetchContext(ctx, &git.FetchOptions{
			RemoteName: name,
			Tags:       git.AllTags,
		})
		if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
			return fmt.Errorf("fetch %s: %w", name, err)
		}

		if err := r.pull(ctx, name); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) pull(ctx context.Context, remote string) error {
	head, err := r.repo.Head()
	if err != nil {
		return fmt.Errorf("resolve HEAD: %w", err)
	}

	if !head.Name().IsBranch() {
		r.log.Warn("detached HEAD, pull skipped", "remote", remote)
		return nil
	}

	wt, err := r.repo.Worktree()
	if errors.Is(err, git.ErrIsBareRepository) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}

	err = wt.PullContext(ctx, &git.PullOptions{
		RemoteName:    remote,
		ReferenceName: head.Name(),
	})
	if errors.Is(err, git.ErrNonFastForwardUpdate) {
		return fmt.Errorf("pull %s %s: %w: %w", remote, head.Name().Short(), ErrDiverged, err)
	}
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("pull %s %s: %w", remote, head.Name().Short(), err)
	}

	return nil
}

// PushTag pushes refs/tags/<name> to every remote.
func (r *Repository) PushTag(ctx context.Context, name string) error {
	remotes, err := r.repo.Remotes()
	if err != nil {
		return fmt.Errorf("list remotes: %w", err)
	}

	ref := plumbing.NewTagReferenceName(name)
	spec := config.RefSpec(ref.String() + ":" + ref.String())

	for _, rem := range remotes {
		remote := rem.Config().Name
		r.log.Info("pushing tag", "tag", name, "remote", remote)

		err := rem.PushContext(ctx, &git.PushOptions{
			RemoteName: remote,
			RefSpecs:   []config.RefSpec{spec},
		})
		if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
			return fmt.Errorf("push %s to %s: %w", name, remote, err)
		}
	}

	return nil
}
