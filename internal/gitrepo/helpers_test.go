package gitrepo

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// initRepo creates a non-bare repository with one commit.
func initRepo(t *testing.T) (*git.Repository, string) {
	t.Helper()

	dir := t.TempDir()
	r, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	commitFile(t, r, dir, "init")

	return r, dir
}

// commitFile writes a file named after msg and commits it.
func commitFile(t *testing.T, r *git.Repository, dir, msg string) plumbing.Hash {
	t.Helper()

	name := msg + ".txt"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(msg+"\n"), 0o644))

	wt, err := r.Worktree()
	require.NoError(t, err)

	_, err = wt.Add(name)
	require.NoError(t, err)

	h, err := wt.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{Name: "semtag", Email: "semtag@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	return h
}

// tagHead creates lightweight tags at HEAD.
func tagHead(t *testing.T, r *git.Repository, names ...string) {
	t.Helper()

	head, err := r.Head()
	require.NoError(t, err)

	for _, n := range names {
		_, err := r.CreateTag(n, head.Hash(), nil)
		require.NoError(t, err)
	}
}

// addBareRemote creates a bare repository and registers it as remote name.
func addBareRemote(t *testing.T, r *git.Repository, name string) (*git.Repository, string) {
	t.Helper()

	dir := t.TempDir()
	bare, err := git.PlainInit(dir, true)
	require.NoError(t, err)

	_, err = r.CreateRemote(&config.RemoteConfig{Name: name, URLs: []string{dir}})
	require.NoError(t, err)

	return bare, dir
}

// requireGitBinary skips tests that use the file transport, which runs
// git-upload-pack / git-receive-pack.
func requireGitBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not found: " + err.Error())
	}
}

func tagNames(n int, prefix string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = prefix + "1.0." + strconv.Itoa(i)
	}

	return out
}
