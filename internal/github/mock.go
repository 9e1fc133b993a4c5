package github

import (
	"context"
	"fmt"
	"sync"
)

// MockClient implements GitHubClient for testing
type MockClient struct {
	mu    sync.RWMutex
	files map[string][]byte // key: "owner/repo/path@ref"
	calls int

	// Hook for testing error scenarios
	GetFileContentsError error
}

// NewMockClient creates a new MockClient
func NewMockClient() *MockClient {
	return &MockClient{
		files: make(map[string][]byte),
	}
}

// AddFile registers file content for a ref (empty ref = default branch)
func (m *MockClient) AddFile(owner, repo, path, ref string, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files[fileKey(owner, repo, path, ref)] = content
}

func (m *MockClient) GetFileContents(ctx context.Context, owner, repo, path, ref string) ([]byte, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.GetFileContentsError != nil {
		return nil, m.GetFileContentsError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	content, ok := m.files[fileKey(owner, repo, path, ref)]
	if !ok {
		return nil, fmt.Errorf("failed to get contents of %s/%s/%s: 404 Not Found", owner, repo, path)
	}
	return content, nil
}

// Calls returns how many times GetFileContents was invoked
func (m *MockClient) Calls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}

func fileKey(owner, repo, path, ref string) string {
	return fmt.Sprintf("%s/%s/%s@%s", owner, repo, path, ref)
}
