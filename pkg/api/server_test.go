package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(runner Runner) (*Server, *Registry) {
	registry := NewRegistry()
	return NewServer(nil, nil, registry, runner), registry
}

func doRequest(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Routes().ServeHTTP(w, req)
	return w
}

func TestHealth_Degraded(t *testing.T) {
	srv, _ := newTestServer(nil)
	w := doRequest(t, srv, http.MethodGet, "/health", "")

	// nil db and redis: nothing to check, so the server reports healthy.
	assert.Equal(t, http.StatusOK, w.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "healthy", payload["status"])
}

func TestStartWorkflow(t *testing.T) {
	t.Run("valid request launches the runner", func(t *testing.T) {
		var ran atomic.Bool
		srv, registry := newTestServer(func(ctx context.Context, wf *Workflow) {
			ran.Store(true)
		})

		w := doRequest(t, srv, http.MethodPost, "/workflow/start",
			`{"story_id": "AUTH-001", "project_path": "/tmp/repo", "wave_number": 1}`)
		require.Equal(t, http.StatusOK, w.Code)

		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
		threadID, _ := payload["thread_id"].(string)
		require.NotEmpty(t, threadID)

		wf, ok := registry.Get(threadID)
		require.True(t, ok)
		assert.Equal(t, "AUTH-001", wf.StoryID)
		assert.Equal(t, WorkflowRunning, wf.Status)

		assert.Eventually(t, ran.Load, time.Second, 10*time.Millisecond)
	})

	t.Run("missing required fields rejected", func(t *testing.T) {
		srv, _ := newTestServer(nil)
		w := doRequest(t, srv, http.MethodPost, "/workflow/start", `{"story_id": "AUTH-001"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		srv, _ := newTestServer(nil)
		w := doRequest(t, srv, http.MethodPost, "/workflow/start", `{`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestWorkflowStatus(t *testing.T) {
	srv, registry := newTestServer(nil)
	wf, _ := registry.Create(context.Background(), Workflow{StoryID: "AUTH-001"})

	t.Run("known thread", func(t *testing.T) {
		w := doRequest(t, srv, http.MethodGet, "/workflow/"+wf.ThreadID+"/status", "")
		require.Equal(t, http.StatusOK, w.Code)

		var got Workflow
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "AUTH-001", got.StoryID)
	})

	t.Run("unknown thread", func(t *testing.T) {
		w := doRequest(t, srv, http.MethodGet, "/workflow/nope/status", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestStopWorkflow(t *testing.T) {
	srv, registry := newTestServer(nil)
	wf, ctx := registry.Create(context.Background(), Workflow{StoryID: "AUTH-001"})

	w := doRequest(t, srv, http.MethodPost, "/workflow/"+wf.ThreadID+"/stop", "")
	require.Equal(t, http.StatusOK, w.Code)

	got, ok := registry.Get(wf.ThreadID)
	require.True(t, ok)
	assert.Equal(t, WorkflowStopped, got.Status)
	assert.Error(t, ctx.Err(), "workflow context is cancelled on stop")

	w = doRequest(t, srv, http.MethodPost, "/workflow/nope/stop", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResetWorkflow(t *testing.T) {
	srv, registry := newTestServer(nil)
	wf, _ := registry.Create(context.Background(), Workflow{StoryID: "AUTH-001"})
	registry.Update(wf.ThreadID, func(w *Workflow) {
		w.Status = WorkflowFailed
		w.NeedsHuman = true
		w.Error = "gate 4 failed"
		w.CurrentGate = 4
	})

	w := doRequest(t, srv, http.MethodPost, "/workflow/"+wf.ThreadID+"/reset",
		`{"reset_to_gate": 2, "reason": "manual retry"}`)
	require.Equal(t, http.StatusOK, w.Code)

	got, ok := registry.Get(wf.ThreadID)
	require.True(t, ok)
	assert.Equal(t, WorkflowRunning, got.Status)
	assert.False(t, got.NeedsHuman)
	assert.Empty(t, got.Error)
	assert.Equal(t, 2, got.CurrentGate)

	w = doRequest(t, srv, http.MethodPost, "/workflow/nope/reset", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListWorkflows(t *testing.T) {
	srv, registry := newTestServer(nil)
	registry.Create(context.Background(), Workflow{StoryID: "AUTH-001"})
	registry.Create(context.Background(), Workflow{StoryID: "PAY-001"})

	w := doRequest(t, srv, http.MethodGet, "/workflows", "")
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Workflows []Workflow `json:"workflows"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Len(t, payload.Workflows, 2)
}
