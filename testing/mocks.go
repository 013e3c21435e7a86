package testing

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// MockAssetServer serves a release asset over HTTP for download tests
type MockAssetServer struct {
	*httptest.Server

	mu       sync.Mutex
	body     []byte
	status   int
	requests int
}

// NewMockAssetServer creates a server that returns the given asset bytes
func NewMockAssetServer(t *testing.T, body []byte) *MockAssetServer {
	t.Helper()

	mock := &MockAssetServer{
		body:   body,
		status: http.StatusOK,
	}

	mock.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		status, data := mock.status, mock.body
		mock.requests++
		mock.mu.Unlock()

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Write(data)
	}))

	t.Cleanup(func() {
		mock.Server.Close()
	})

	return mock
}

// SetStatus changes the status returned for subsequent requests
func (m *MockAssetServer) SetStatus(status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = status
}

// RequestCount returns the number of requests served so far
func (m *MockAssetServer) RequestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests
}

// NewMockReleaseServer creates a server that answers the latest-release
// endpoint for the given owner/repo with the given tag
func NewMockReleaseServer(t *testing.T, owner, repo, tag string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/"+owner+"/"+repo+"/releases/latest" {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "Not Found"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"tag_name": tag})
	}))

	t.Cleanup(server.Close)
	return server
}
