package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClient_GetFileContents(t *testing.T) {
	payload := `[{"id":1,"dependencies":{"react":"^16"}}]`

	var gotPath, gotRef string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRef = r.URL.Query().Get("ref")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"type":     "file",
			"encoding": "base64",
			"name":     "projects.json",
			"path":     "projects.json",
			"content":  base64.StdEncoding.EncodeToString([]byte(payload)),
		})
	}))
	defer srv.Close()

	client, err := NewClientWithBaseURL(srv.URL + "/")
	require.NoError(t, err)

	data, err := client.GetFileContents(context.Background(), "acme", "catalog", "projects.json", "main")
	require.NoError(t, err)
	require.Equal(t, payload, string(data))
	require.Equal(t, "/api/v3/repos/acme/catalog/contents/projects.json", gotPath)
	require.Equal(t, "main", gotRef)
}

func TestClient_GetFileContents_Directory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"type":"file","name":"a.json","path":"data/a.json"}]`))
	}))
	defer srv.Close()

	client, err := NewClientWithBaseURL(srv.URL + "/")
	require.NoError(t, err)

	_, err = client.GetFileContents(context.Background(), "acme", "catalog", "data", "")
	require.ErrorIs(t, err, ErrNotAFile)
}

func TestMockClient(t *testing.T) {
	m := NewMockClient()
	m.AddFile("acme", "catalog", "projects.json", "", []byte(`[]`))

	data, err := m.GetFileContents(context.Background(), "acme", "catalog", "projects.json", "")
	require.NoError(t, err)
	require.Equal(t, `[]`, string(data))

	_, err = m.GetFileContents(context.Background(), "acme", "catalog", "projects.json", "dev")
	require.Error(t, err)
	require.Equal(t, 2, m.Calls())
}
