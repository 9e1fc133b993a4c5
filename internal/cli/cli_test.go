package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/jakoblorz/go-depfilter/internal/catalog"
	"github.com/jakoblorz/go-depfilter/internal/config"
	"github.com/jakoblorz/go-depfilter/internal/filesystem"
	"github.com/jakoblorz/go-depfilter/internal/github"
	"github.com/stretchr/testify/require"
)

const testCatalog = `[
  {"id": 1, "name": "alpha", "dependencies": {"react": "^16.0.0", "redux": "^4.0.0"}},
  {"id": 2, "name": "beta", "dependencies": {"react": "^15.0.0", "mobx": "^5.0.0"}},
  {"id": 3, "name": "gamma"}
]`

type result struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, fs filesystem.FileSystem, gh github.GitHubClient, args ...string) result {
	t.Helper()
	return runContext(t, context.Background(), fs, gh, args...)
}

func runContext(t *testing.T, ctx context.Context, fs filesystem.FileSystem, gh github.GitHubClient, args ...string) result {
	t.Helper()

	cmd := NewRootCommand(fs, gh)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func catalogFS() *filesystem.MockFileSystem {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("projects.json", []byte(testCatalog))
	return fs
}

func TestList_Unfiltered(t *testing.T) {
	res := run(t, catalogFS(), github.NewMockClient(), "list")
	require.NoError(t, res.err)
	require.Equal(t, "3 of 3 projects\n\nalpha  react, redux\nbeta   react, mobx\ngamma\n", res.stdout)
}

func TestRoot_DefaultsToList(t *testing.T) {
	res := run(t, catalogFS(), github.NewMockClient(), "--tag", "mobx")
	require.NoError(t, res.err)
	require.Equal(t, "1 of 3 projects depending on mobx\n\nbeta  react, mobx\n", res.stdout)
}

func TestList_AllTagsMustMatch(t *testing.T) {
	res := run(t, catalogFS(), github.NewMockClient(), "list", "--tag", "react", "--tag", "redux")
	require.NoError(t, res.err)
	require.Equal(t, "1 of 3 projects depending on react + redux\n\nalpha  react, redux\n", res.stdout)

	res = run(t, catalogFS(), github.NewMockClient(), "list", "--tag", "react,redux,mobx")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "No projects match the selected dependencies.")
}

func TestList_JSON(t *testing.T) {
	res := run(t, catalogFS(), github.NewMockClient(), "list", "--tag", "react", "--format", "json")
	require.NoError(t, res.err)

	var out struct {
		Selected []string `json:"selected"`
		Total    int      `json:"total"`
		Projects []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"projects"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))
	require.Equal(t, []string{"react"}, out.Selected)
	require.Equal(t, 3, out.Total)
	require.Len(t, out.Projects, 2)
	require.Equal(t, "1", out.Projects[0].ID)
	require.Equal(t, "beta", out.Projects[1].Name)
}

func TestList_InvalidFormat(t *testing.T) {
	res := run(t, catalogFS(), github.NewMockClient(), "list", "--format", "xml")
	require.Error(t, res.err)
	require.Contains(t, res.err.Error(), "invalid output format: xml")
}

func TestList_LoadFailureIsLoggedNotSurfaced(t *testing.T) {
	res := run(t, filesystem.NewMockFileSystem(), github.NewMockClient(), "list")
	require.NoError(t, res.err)
	require.Equal(t, "No projects loaded.\n", res.stdout)
	require.Contains(t, res.stderr, catalog.LoadFailedMessage)
	require.Contains(t, res.stderr, "source=projects.json")
}

func TestList_Strict(t *testing.T) {
	res := run(t, filesystem.NewMockFileSystem(), github.NewMockClient(), "list", "--strict")
	require.Error(t, res.err)
	require.ErrorIs(t, res.err, catalog.ErrDataLoad)
	require.Contains(t, res.stderr, catalog.LoadFailedMessage)
}

func TestList_SourceFlag(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("data/catalog.yaml", []byte("- name: delta\n  dependencies:\n    vue: ^3.0.0\n"))

	res := run(t, fs, github.NewMockClient(), "list", "--source", "data/catalog.yaml")
	require.NoError(t, res.err)
	require.Equal(t, "1 of 1 projects\n\ndelta  vue\n", res.stdout)
}

func TestList_SourceFromEnv(t *testing.T) {
	t.Setenv("DEPFILTER_SOURCE", "other.json")

	fs := filesystem.NewMockFileSystem()
	fs.AddFile("other.json", []byte(`[{"name": "epsilon"}]`))

	res := run(t, fs, github.NewMockClient(), "list")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "epsilon")
}

func TestList_GitHubSource(t *testing.T) {
	gh := github.NewMockClient()
	gh.AddFile("acme", "catalog", "projects.json", "v2", []byte(testCatalog))

	res := run(t, filesystem.NewMockFileSystem(), gh, "list", "--source", "github:acme/catalog/projects.json@v2", "--tag", "redux")
	require.NoError(t, res.err)
	require.Equal(t, "1 of 3 projects depending on redux\n\nalpha  react, redux\n", res.stdout)
	require.Equal(t, 1, gh.Calls())
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	res := run(t, catalogFS(), github.NewMockClient(), "list", "--log-level", "loud")
	require.Error(t, res.err)
	require.ErrorIs(t, res.err, config.ErrConfig)
}

func TestTags(t *testing.T) {
	res := run(t, catalogFS(), github.NewMockClient(), "tags")
	require.NoError(t, res.err)
	require.Equal(t, "TAG    PROJECTS\nreact  2\nredux  1\nmobx   1\n", res.stdout)
}

func TestTags_Versions(t *testing.T) {
	res := run(t, catalogFS(), github.NewMockClient(), "tags", "--versions")
	require.NoError(t, res.err)
	snaps.MatchSnapshot(t, res.stdout)
	require.Contains(t, res.stdout, "react  2         ^15.0.0 ^16.0.0\n")
}

func TestTags_JSON(t *testing.T) {
	res := run(t, catalogFS(), github.NewMockClient(), "tags", "--format", "json", "--versions")
	require.NoError(t, res.err)

	var usage []struct {
		Tag      string   `json:"tag"`
		Projects int      `json:"projects"`
		Versions []string `json:"versions"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &usage))
	require.Len(t, usage, 3)
	require.Equal(t, "react", usage[0].Tag)
	require.Equal(t, []string{"^15.0.0", "^16.0.0"}, usage[0].Versions)
}

func TestRender_Stdout(t *testing.T) {
	res := run(t, catalogFS(), github.NewMockClient(), "render", "--tag", "react")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "<!DOCTYPE html>")
	require.Contains(t, res.stdout, `<a class="btn-primary" href="/">react</a>`)
	require.Contains(t, res.stdout, "2 of 3 projects")
}

func TestRender_ToFile(t *testing.T) {
	fs := catalogFS()

	res := run(t, fs, github.NewMockClient(), "render", "--style-prefix", "label", "-o", "public/index.html")
	require.NoError(t, res.err)
	require.Empty(t, res.stdout)
	require.Contains(t, res.stderr, "Wrote public/index.html (3 of 3 projects)")

	data, err := fs.ReadFile("public/index.html")
	require.NoError(t, err)
	require.Contains(t, string(data), `<a class="label-default" href="/?tag=mobx">mobx</a>`)
}

func TestRender_LoadFailure(t *testing.T) {
	res := run(t, filesystem.NewMockFileSystem(), github.NewMockClient(), "render")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "0 of 0 projects")
	require.Contains(t, res.stderr, catalog.LoadFailedMessage)
}

func TestServe_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	res := runContext(t, ctx, catalogFS(), github.NewMockClient(), "serve", "--http-addr", "127.0.0.1:0")
	require.NoError(t, res.err)
	require.Contains(t, res.stderr, "catalog loaded")
	require.Contains(t, res.stderr, "projects=3")
}
