package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jakoblorz/go-depfilter/internal/filesystem"
	"github.com/jakoblorz/go-depfilter/internal/github"
)

// Source fetches the raw catalog document.
type Source interface {
	// Name identifies the source in logs and errors. Its extension selects the decoder.
	Name() string
	Fetch(ctx context.Context) ([]byte, error)
}

// Deps are the collaborators sources are built from.
type Deps struct {
	FS         filesystem.FileSystem
	HTTPClient *http.Client
	GitHub     github.GitHubClient
}

// NewSource picks a Source for ref:
// http(s) URLs are fetched over HTTP, github:owner/repo/path[@ref] through the
// GitHub contents API, anything else is a path on the filesystem.
func NewSource(ref string, deps Deps) (Source, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("catalog source must not be empty")
	}

	switch {
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return NewHTTPSource(ref, deps.HTTPClient), nil
	case github.IsFileRef(ref):
		fileRef, err := github.ParseFileRef(ref)
		if err != nil {
			return nil, err
		}
		client := deps.GitHub
		if client == nil {
			client = github.NewClientWithoutAuth()
		}
		return NewGitHubSource(client, fileRef), nil
	default:
		if deps.FS == nil {
			return nil, fmt.Errorf("no filesystem available for catalog source %s", ref)
		}
		return NewFileSource(deps.FS, ref), nil
	}
}

// FileSource reads the catalog from a file.
type FileSource struct {
	fs   filesystem.FileSystem
	path string
}

func NewFileSource(fs filesystem.FileSystem, path string) *FileSource {
	return &FileSource{fs: fs, path: path}
}

func (s *FileSource) Name() string {
	return s.path
}

func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	return data, nil
}

// HTTPSource GETs the catalog from a URL. Any non-2xx status is a failure.
type HTTPSource struct {
	client *http.Client
	url    string
}

func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{client: client, url: url}
}

func (s *HTTPSource) Name() string {
	return s.url
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.5")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch %s: unexpected status %s", s.url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return data, nil
}

// GitHubSource reads the catalog from a file in a GitHub repository.
type GitHubSource struct {
	client github.GitHubClient
	ref    github.FileRef
}

func NewGitHubSource(client github.GitHubClient, ref github.FileRef) *GitHubSource {
	return &GitHubSource{client: client, ref: ref}
}

func (s *GitHubSource) Name() string {
	return s.ref.String()
}

func (s *GitHubSource) Fetch(ctx context.Context) ([]byte, error) {
	return s.client.GetFileContents(ctx, s.ref.Owner, s.ref.Repo, s.ref.Path, s.ref.Ref)
}
