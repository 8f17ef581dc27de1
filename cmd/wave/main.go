package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/Boomerang-Apps/wave/pkg/api"
	"github.com/Boomerang-Apps/wave/pkg/bus"
	"github.com/Boomerang-Apps/wave/pkg/config"
	"github.com/Boomerang-Apps/wave/pkg/database"
	"github.com/Boomerang-Apps/wave/pkg/engine"
	"github.com/Boomerang-Apps/wave/pkg/executor"
	"github.com/Boomerang-Apps/wave/pkg/gates"
	"github.com/Boomerang-Apps/wave/pkg/llm"
	"github.com/Boomerang-Apps/wave/pkg/models"
	"github.com/Boomerang-Apps/wave/pkg/prd"
	"github.com/Boomerang-Apps/wave/pkg/recovery"
	"github.com/Boomerang-Apps/wave/pkg/safety"
	"github.com/Boomerang-Apps/wave/pkg/services"
	"github.com/Boomerang-Apps/wave/pkg/slack"
	"github.com/Boomerang-Apps/wave/pkg/version"
	"github.com/Boomerang-Apps/wave/pkg/worktree"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir", getEnv("CONFIG_DIR", "config"), "Directory containing configuration files")
	flag.Parse()

	if err := godotenv.Load(filepath.Join(*configDir, ".env")); err != nil {
		slog.Warn("No .env file loaded", "config_dir", *configDir)
	}

	slog.Info("Starting wave orchestrator", "version", version.Full(), "config_dir", *configDir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 1. Load configuration
	cfg, err := config.Load(*configDir)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Connect to PostgreSQL and run migrations
	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database configuration", "error", err)
		os.Exit(1)
	}
	db, err := database.NewClient(ctx, dbCfg)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close database client", "error", err)
		}
	}()
	slog.Info("Database connected")

	// 3. Connect to Redis
	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.Error("Invalid Redis URL", "error", err)
		os.Exit(1)
	}
	redisClient := redis.NewClient(redisOpts)
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close Redis client", "error", err)
		}
	}()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("Failed to ping Redis", "error", err)
		os.Exit(1)
	}
	slog.Info("Redis connected", "url", cfg.Redis.URL)

	// 4. Build the gate system and services
	system, err := gates.NewSystem(gates.Mode(cfg.Runner.GateMode))
	if err != nil {
		slog.Error("Failed to build gate system", "error", err)
		os.Exit(1)
	}
	sessions := services.NewSessionService(db.Client)
	stories := services.NewStoryService(db.Client)
	checkpoints := services.NewCheckpointService(db.Client)

	// 5. Execution engine and recovery manager
	eng := engine.New(db.Client, stories, checkpoints, system, cfg.Runner.MaxRetries, engine.Callbacks{
		OnGateComplete: func(executionID string, gate gates.Gate, result models.GateResult) {
			slog.Debug("Gate complete", "execution_id", executionID, "gate", int(gate), "status", string(result.Status))
		},
	})
	recoveryMgr := recovery.NewManager(db.Client, stories, checkpoints, system)

	// 6. Safety checker, notifier, LLM provider
	checker := safety.NewChecker(0.85)
	notifier := slack.NewNotifier(cfg.Slack)
	provider := buildProvider(cfg)
	slog.Info("LLM provider ready", "provider", provider.Name())

	project := getEnv("WAVE_PROJECT", "wave")
	var publisher *bus.Publisher
	if cfg.Runner.EnablePubSub {
		publisher = bus.NewPublisher(redisClient, project, "orchestrator")
	}

	// 7. HTTP API with the workflow runner
	registry := api.NewRegistry()
	runner := newWorkflowRunner(cfg, eng, sessions, provider, checker, publisher, notifier, registry)
	server := api.NewServer(db, redisClient, registry, runner)

	httpServer := &http.Server{
		Addr:    ":" + getEnv("PORT", "8080"),
		Handler: server.Routes(),
	}

	// 8. Recover interrupted sessions from their checkpoints
	go func() {
		sessionList, err := sessions.List(ctx, "in_progress")
		if err != nil {
			slog.Error("Failed to list running sessions", "error", err)
			return
		}
		for _, sess := range sessionList {
			result, err := recoveryMgr.RecoverSession(ctx, sess.ID, recovery.ResumeFromLast)
			if err != nil {
				slog.Error("Session recovery failed", "session_id", sess.ID, "error", err)
				continue
			}
			slog.Info("Session recovered", "session_id", sess.ID, "recovered", result.Recovered, "failed", len(result.Failed))
		}
	}()

	// 9. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 10. Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("HTTP server failed", "error", err)
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown failed", "error", err)
	}
	cancel()
	slog.Info("Shutdown complete")
}

// buildProvider selects the LLM provider: simulation when configured,
// otherwise the first of Anthropic, OpenAI, xAI with an API key, wrapped in
// a circuit breaker.
func buildProvider(cfg *config.Config) llm.Provider {
	if cfg.Runner.SimulateLLM {
		return llm.NewSimulatedProvider()
	}
	var inner llm.Provider
	switch {
	case os.Getenv("ANTHROPIC_API_KEY") != "":
		inner = llm.NewAnthropicProvider(os.Getenv("ANTHROPIC_API_KEY"))
	case os.Getenv("OPENAI_API_KEY") != "":
		inner = llm.NewOpenAIProvider(os.Getenv("OPENAI_API_KEY"))
	case os.Getenv("XAI_API_KEY") != "":
		inner = llm.NewXAIProvider(os.Getenv("XAI_API_KEY"))
	default:
		slog.Warn("No LLM API key configured, falling back to simulation")
		return llm.NewSimulatedProvider()
	}
	return llm.NewBreakerProvider(inner)
}

// newWorkflowRunner builds the api.Runner that executes one workflow end to
// end: parse the PRD, create the session, run every story through the gates
// in parallel worktrees, and merge the survivors.
func newWorkflowRunner(cfg *config.Config, eng *engine.Engine, sessions *services.SessionService, provider llm.Provider, checker *safety.Checker, publisher *bus.Publisher, notifier *slack.Notifier, registry *api.Registry) api.Runner {
	return func(ctx context.Context, wf *api.Workflow) {
		fail := func(err error) {
			slog.Error("Workflow failed", "thread_id", wf.ThreadID, "error", err)
			registry.Update(wf.ThreadID, func(w *api.Workflow) {
				w.Status = api.WorkflowFailed
				w.Error = err.Error()
			})
		}

		doc, err := loadPRD(wf)
		if err != nil {
			fail(err)
			return
		}

		sess, err := sessions.Create(ctx, models.CreateSessionRequest{
			ProjectName: filepath.Base(wf.ProjectPath),
			WaveNumber:  wf.WaveNumber,
			BudgetUSD:   wf.CostLimitUSD,
			StoryCount:  len(doc.Stories),
		})
		if err != nil {
			fail(err)
			return
		}
		if _, err := sessions.Start(ctx, sess.ID); err != nil {
			fail(err)
			return
		}
		registry.Update(wf.ThreadID, func(w *api.Workflow) { w.SessionID = sess.ID })

		tokenLimit := wf.TokenLimit
		if tokenLimit <= 0 {
			tokenLimit = cfg.Budget.TokenLimit
		}
		budget := safety.NewBudgetTracker(tokenLimit, cfg.Budget.CostLimitUSD, cfg.Budget.HardLimit)
		storyRunner := engine.NewRunner(eng, sessions, provider, checker, budget, publisher, "")

		worktrees := worktree.NewManager(wf.ProjectPath, "", "")
		exec := executor.New(worktrees, cfg.Executor.MaxParallel)

		results, err := exec.Execute(ctx, doc.Stories, func(ctx context.Context, task models.StoryTask, worktreePath string) (models.StoryResult, error) {
			result, err := storyRunner.RunStory(ctx, sess.ID, task, worktreePath)
			if _, recordErr := sessions.RecordStoryOutcome(ctx, sess.ID, result.Success); recordErr != nil {
				slog.Warn("Failed to record story outcome", "session_id", sess.ID, "error", recordErr)
			}
			if check := budget.Check(); check.Level != safety.AlertNormal {
				if notifyErr := notifier.NotifyBudget(ctx, sess.ID, check); notifyErr != nil {
					slog.Warn("Budget notification failed", "error", notifyErr)
				}
			}
			if errors.Is(err, engine.ErrEmergencyStop) {
				if notifyErr := notifier.NotifyEmergencyStop(ctx, sess.ID, result.Error); notifyErr != nil {
					slog.Warn("Emergency stop notification failed", "error", notifyErr)
				}
			}
			return result, err
		})
		if err != nil {
			if _, failErr := sessions.Fail(ctx, sess.ID, err.Error()); failErr != nil {
				slog.Error("Failed to mark session failed", "session_id", sess.ID, "error", failErr)
			}
			fail(err)
			return
		}

		failed := 0
		for _, r := range results {
			if !r.Success {
				failed++
			}
		}
		if failed > 0 {
			msg := fmt.Sprintf("%d of %d stories failed", failed, len(results))
			if _, failErr := sessions.Fail(ctx, sess.ID, msg); failErr != nil {
				slog.Error("Failed to mark session failed", "session_id", sess.ID, "error", failErr)
			}
			fail(errors.New(msg))
			return
		}

		if _, err := sessions.Complete(ctx, sess.ID); err != nil {
			fail(err)
			return
		}
		registry.Update(wf.ThreadID, func(w *api.Workflow) { w.Status = api.WorkflowComplete })
		tokens, cost := budget.Usage()
		slog.Info("Workflow complete",
			"thread_id", wf.ThreadID,
			"session_id", sess.ID,
			"stories", len(results),
			"tokens", tokens,
			"cost_usd", cost)
	}
}

// loadPRD resolves the workflow's PRD: inline requirements win, otherwise
// PRD.md in the project root.
func loadPRD(wf *api.Workflow) (*prd.Document, error) {
	if wf.Requirements != "" {
		return prd.Parse([]byte(wf.Requirements))
	}
	path := filepath.Join(wf.ProjectPath, "PRD.md")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PRD at %s: %w", path, err)
	}
	return prd.Parse(data)
}
