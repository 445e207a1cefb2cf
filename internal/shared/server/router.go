package server

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerprep-backend/internal/analysis"
	"careerprep-backend/internal/builder"
	"careerprep-backend/internal/history"
	"careerprep-backend/internal/llm"
	"careerprep-backend/internal/llm/gemini"
	"careerprep-backend/internal/shared/config"
	"careerprep-backend/internal/shared/metrics"
	"careerprep-backend/internal/shared/server/middleware"
	"careerprep-backend/internal/shared/server/respond"
	"careerprep-backend/internal/shared/storage/db"
	"careerprep-backend/internal/shared/storage/object"
	localstore "careerprep-backend/internal/shared/storage/object/local"
	s3store "careerprep-backend/internal/shared/storage/object/s3"
	"careerprep-backend/internal/shared/telemetry"
)

// analyze sits in front of the AI call, so it gets its own bucket.
var analyzeRateRule = middleware.RateLimitRule{Rate: 0.2, Burst: 5}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Identity(),
	)

	// Dependencies
	llmClient := newLLMClient(cfg)
	store := newObjectStore(cfg)
	sqlDB := openDatabase(cfg)

	var historyRepo history.Repo
	if sqlDB != nil {
		historyRepo = &history.PGRepo{DB: sqlDB}
	} else {
		historyRepo = history.NewMemoryRepo()
	}

	analysisSvc := analysis.NewService(llmClient, cfg.AITimeout)
	analysisHandler := analysis.NewHandler(analysisSvc, historyRepo)
	historyHandler := history.NewHandler(historyRepo)
	builderHandler := builder.NewHandler(store)

	limiter := middleware.NewRateLimiter(nil)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	analysisHandler.RegisterRoutes(api, middleware.RateLimit(analyzeRateRule, limiter))
	historyHandler.RegisterRoutes(api)
	builderHandler.RegisterRoutes(api)
	r.GET("/metrics", metrics.Handler())

	return r
}

// newLLMClient builds the Gemini client, or nil when no credential is
// configured. A nil client degrades analysis to heuristic-only results.
func newLLMClient(cfg config.Config) llm.Client {
	if cfg.GeminiAPIKey == "" {
		telemetry.Warn("llm.disabled", map[string]any{"reason": "GEMINI_API_KEY not set"})
		return nil
	}
	client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		telemetry.Error("llm.init.failed", map[string]any{"error": err.Error()})
		return nil
	}
	return client
}

func newObjectStore(cfg config.Config) object.ObjectStore {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			telemetry.Error("store.s3.init.failed", map[string]any{"error": err.Error()})
		} else {
			return store
		}
	}
	return localstore.New(cfg.LocalStoreDir)
}

// openDatabase connects and migrates, or returns nil so repositories
// fall back to memory.
func openDatabase(cfg config.Config) *sql.DB {
	if cfg.DatabaseURL == "" {
		return nil
	}
	conn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		telemetry.Error("db.connect.failed", map[string]any{"error": err.Error()})
		return nil
	}
	if err := db.RunMigrations(context.Background(), conn); err != nil {
		telemetry.Error("db.migrate.failed", map[string]any{"error": err.Error()})
		_ = conn.Close()
		return nil
	}
	return conn
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
