package github

import (
	"context"
	"errors"
)

// GitHubClient provides an abstraction over the GitHub API operations
// depfilter needs to read catalogs hosted in repositories.
type GitHubClient interface {
	// GetFileContents returns the decoded content of a file.
	// An empty ref selects the repository's default branch.
	GetFileContents(ctx context.Context, owner, repo, path, ref string) ([]byte, error)
}

// ErrNotAFile is returned when the path names a directory or symlink.
var ErrNotAFile = errors.New("path is not a file")

// FileRef identifies a file in a repository
type FileRef struct {
	Owner string
	Repo  string
	Path  string
	Ref   string
}

// String returns the canonical github:owner/repo/path[@ref] form
func (f FileRef) String() string {
	s := "github:" + f.Owner + "/" + f.Repo + "/" + f.Path
	if f.Ref != "" {
		s += "@" + f.Ref
	}
	return s
}
