// Quill analytics server — provides the HTTP API, manages queue workers,
// and orchestrates agentic query processing.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/quillhq/quill/pkg/agent"
	"github.com/quillhq/quill/pkg/agent/research"
	"github.com/quillhq/quill/pkg/agent/websearch"
	"github.com/quillhq/quill/pkg/api"
	"github.com/quillhq/quill/pkg/cleanup"
	"github.com/quillhq/quill/pkg/config"
	"github.com/quillhq/quill/pkg/database"
	"github.com/quillhq/quill/pkg/events"
	"github.com/quillhq/quill/pkg/jobs"
	"github.com/quillhq/quill/pkg/llm"
	"github.com/quillhq/quill/pkg/queue"
	"github.com/quillhq/quill/pkg/services"
	"github.com/quillhq/quill/pkg/version"
)

// warehouseQueryTimeout bounds every SQL statement a job runs against a
// customer warehouse.
const warehouseQueryTimeout = 30 * time.Second

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()
	logger := slog.Default()

	slog.Info("Starting Quill",
		"version", version.Full(),
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time recovery of leases this pod held before a crash
	if err := queue.RecoverStartupLeases(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to recover startup leases", "error", err)
		// Non-fatal — continue
	}

	// 4. Domain services
	jobService := services.NewJobService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	modelService := services.NewModelService(dbClient.Client)
	connectorService := services.NewConnectorService(dbClient.Client)
	slog.Info("Services initialized")

	// 5. Message broker. The durable event log is the source of truth, so a
	// missing broker degrades to polling rather than failing startup.
	var broker events.MessageBroker
	redisBroker, err := events.NewRedisBroker(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		slog.Warn("Redis broker unavailable, live event publishing disabled",
			"addr", cfg.Redis.Addr, "error", err)
	} else {
		broker = redisBroker
		defer func() {
			if err := redisBroker.Close(); err != nil {
				slog.Error("Error closing broker", "error", err)
			}
		}()
		slog.Info("Message broker connected", "addr", cfg.Redis.Addr)
	}
	emitter := events.NewEmitter(jobService, eventService, broker)

	// 6. LLM clients
	providerCfg, err := cfg.GetLLMProvider(cfg.Defaults.LLMProvider)
	if err != nil {
		slog.Error("Failed to resolve default LLM provider", "error", err)
		os.Exit(1)
	}
	completer, err := llm.NewCompleter(providerCfg)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "provider", cfg.Defaults.LLMProvider, "error", err)
		os.Exit(1)
	}
	slog.Info("LLM client initialized", "provider", cfg.Defaults.LLMProvider, "model", providerCfg.Model)

	builderOpts := []jobs.BuilderOption{}

	var embedder agent.Embedder
	var vectors agent.ManagedVectorDB
	if cfg.Defaults.EmbeddingProvider != "" {
		embCfg, err := cfg.GetLLMProvider(cfg.Defaults.EmbeddingProvider)
		if err != nil {
			slog.Error("Failed to resolve embedding provider", "error", err)
			os.Exit(1)
		}
		embedder, err = llm.NewEmbedder(embCfg)
		if err != nil {
			slog.Error("Failed to initialize embedder", "provider", cfg.Defaults.EmbeddingProvider, "error", err)
			os.Exit(1)
		}
		vectors = agent.NewMemoryVectorDB()
		builderOpts = append(builderOpts, jobs.WithEntityAugmentation(embedder, vectors))
		slog.Info("Entity augmentation enabled", "provider", cfg.Defaults.EmbeddingProvider)
	}

	var searchProvider websearch.Provider
	if cfg.WebSearch.Provider == "duckduckgo" {
		searchProvider = websearch.NewDuckDuckGoProvider(nil)
		builderOpts = append(builderOpts, jobs.WithWebSearch(searchProvider))
		slog.Info("Web search enabled", "provider", cfg.WebSearch.Provider)
	}

	// 7. Job handlers
	opener := jobs.NewRecordOpener(connectorService, jobs.EnvSecrets, warehouseQueryTimeout)
	builder := jobs.NewBuilder(modelService, opener, completer, logger, builderOpts...)

	handlers := queue.NewHandlerRegistry()
	mustRegister(handlers, jobs.NewSemanticQueryHandler(builder, emitter, logger))
	if searchProvider != nil {
		searchAgent := websearch.New(searchProvider, logger,
			websearch.WithMaxResults(cfg.WebSearch.MaxResults))
		mustRegister(handlers, jobs.NewDeepResearchHandler(
			research.New(completer, searchAgent, logger), emitter, logger))
	}
	if embedder != nil {
		mustRegister(handlers, jobs.NewModelRefreshHandler(
			modelService, opener, embedder, vectors, emitter, logger))
	}

	// 8. Start worker pool (before HTTP server)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, jobService, handlers, emitter)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. Retention cleanup
	retention := cleanup.NewService(cfg.Retention, jobService)
	retention.Start(ctx)

	// 10. HTTP server
	serverOpts := []api.Option{
		api.WithPool(workerPool),
		api.WithDB(dbClient.DB()),
	}
	if broker != nil {
		serverOpts = append(serverOpts, api.WithBroker(broker))
	}
	if def, err := cfg.GetAgent("analyst"); err == nil && def.Guardrails != nil {
		guardrail, err := api.NewGuardrail(def.Guardrails)
		if err != nil {
			slog.Error("Failed to compile guardrails", "error", err)
			os.Exit(1)
		}
		serverOpts = append(serverOpts, api.WithGuardrail(guardrail))
	}

	server := api.NewServer(jobService, eventService, modelService, connectorService, logger, serverOpts...)
	httpServer := &http.Server{
		Addr:    cfg.Server.ListenAddr,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Quill started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount,
		"job_types", handlers.JobTypes())

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown
	retention.Stop()

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	// Stop worker pool (wait for active jobs to complete)
	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete jobs will be lease-recovered")
	}

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func mustRegister(r *queue.HandlerRegistry, h queue.JobHandler) {
	if err := r.Register(h); err != nil {
		slog.Error("Failed to register job handler", "job_type", h.JobType(), "error", err)
		os.Exit(1)
	}
}
