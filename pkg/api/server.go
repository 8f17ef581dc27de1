// Package api exposes the orchestrator's HTTP surface: workflow lifecycle,
// health, and Prometheus metrics.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/Boomerang-Apps/wave/pkg/database"
)

var (
	workflowsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wave_workflows_started_total",
		Help: "Workflows started through the API.",
	})
	workflowsStopped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wave_workflows_stopped_total",
		Help: "Workflows stopped through the API.",
	})
	activeWorkflows = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wave_workflows_active",
		Help: "Workflows currently running.",
	})
)

// Runner starts a workflow's execution in the background; the API does not
// block on it. Implementations update the registry as work progresses.
type Runner func(ctx context.Context, wf *Workflow)

// Server is the HTTP API.
type Server struct {
	db       *database.Client
	redis    *redis.Client
	registry *Registry
	runner   Runner
}

// NewServer creates a server. db and redis may be nil in degraded modes;
// the affected endpoints report accordingly.
func NewServer(db *database.Client, redisClient *redis.Client, registry *Registry, runner Runner) *Server {
	return &Server{db: db, redis: redisClient, registry: registry, runner: runner}
}

// Routes builds the gin engine with all endpoints registered.
func (s *Server) Routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", s.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/workflow/start", s.StartWorkflow)
	r.GET("/workflow/:thread_id/status", s.WorkflowStatus)
	r.POST("/workflow/:thread_id/stop", s.StopWorkflow)
	r.POST("/workflow/:thread_id/reset", s.ResetWorkflow)
	r.GET("/workflows", s.ListWorkflows)
	return r
}

// Health reports database and redis connectivity.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	payload := gin.H{"status": "healthy"}
	healthy := true

	if s.db != nil {
		dbHealth, err := database.Health(ctx, s.db.DB())
		payload["database"] = dbHealth
		if err != nil {
			healthy = false
			payload["database_error"] = err.Error()
		}
	}
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			healthy = false
			payload["redis_error"] = err.Error()
		} else {
			payload["redis"] = "ok"
		}
	}

	if !healthy {
		payload["status"] = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, payload)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// StartWorkflowRequest is the POST /workflow/start body.
type StartWorkflowRequest struct {
	StoryID      string  `json:"story_id" binding:"required"`
	ProjectPath  string  `json:"project_path" binding:"required"`
	Requirements string  `json:"requirements"`
	WaveNumber   int     `json:"wave_number"`
	TokenLimit   int64   `json:"token_limit"`
	CostLimitUSD float64 `json:"cost_limit_usd"`
}

// StartWorkflow registers a workflow and launches the runner.
func (s *Server) StartWorkflow(c *gin.Context) {
	var req StartWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request", "error": err.Error()})
		return
	}

	wf, ctx := s.registry.Create(context.Background(), Workflow{
		StoryID:      req.StoryID,
		ProjectPath:  req.ProjectPath,
		Requirements: req.Requirements,
		WaveNumber:   req.WaveNumber,
		TokenLimit:   req.TokenLimit,
		CostLimitUSD: req.CostLimitUSD,
	})

	workflowsStarted.Inc()
	activeWorkflows.Inc()
	if s.runner != nil {
		go func() {
			defer activeWorkflows.Dec()
			s.runner(ctx, wf)
		}()
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"thread_id": wf.ThreadID,
		"message":   "workflow started",
	})
}

// WorkflowStatus returns the workflow state snapshot.
func (s *Server) WorkflowStatus(c *gin.Context) {
	wf, ok := s.registry.Get(c.Param("thread_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "workflow not found"})
		return
	}
	c.JSON(http.StatusOK, wf)
}

// StopWorkflow cancels a workflow gracefully.
func (s *Server) StopWorkflow(c *gin.Context) {
	threadID := c.Param("thread_id")
	if !s.registry.Stop(threadID) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "workflow not found"})
		return
	}
	workflowsStopped.Inc()
	c.JSON(http.StatusOK, gin.H{"success": true, "thread_id": threadID, "message": "workflow stopped"})
}

// ResetWorkflowRequest is the POST /workflow/{thread_id}/reset body.
type ResetWorkflowRequest struct {
	ClearTasks   bool   `json:"clear_tasks"`
	ClearResults bool   `json:"clear_results"`
	ResetToGate  *int   `json:"reset_to_gate"`
	Reason       string `json:"reason"`
}

// ResetWorkflow clears in-memory workflow state and optionally the
// workflow's Redis task and result keys. 404 on unknown thread.
func (s *Server) ResetWorkflow(c *gin.Context) {
	threadID := c.Param("thread_id")

	var req ResetWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request", "error": err.Error()})
		return
	}

	if !s.registry.Reset(threadID, req.ResetToGate) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "workflow not found"})
		return
	}

	cleared := 0
	if s.redis != nil && (req.ClearTasks || req.ClearResults) {
		cleared = s.clearKeys(c.Request.Context(), req.ClearTasks, req.ClearResults)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"thread_id":    threadID,
		"message":      "workflow reset",
		"keys_cleared": cleared,
		"reason":       req.Reason,
	})
}

// clearKeys removes task/result keys; best effort.
func (s *Server) clearKeys(ctx context.Context, tasks, results bool) int {
	cleared := 0
	patterns := []string{}
	if tasks {
		patterns = append(patterns, "wave:task:*")
	}
	if results {
		patterns = append(patterns, "wave:result:*")
	}
	for _, pattern := range patterns {
		iter := s.redis.Scan(ctx, 0, pattern, 100).Iterator()
		for iter.Next(ctx) {
			if s.redis.Del(ctx, iter.Val()).Err() == nil {
				cleared++
			}
		}
	}
	return cleared
}

// ListWorkflows returns all workflows this instance knows about.
func (s *Server) ListWorkflows(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"workflows": s.registry.List()})
}
