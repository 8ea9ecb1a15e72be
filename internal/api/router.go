package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"nutrismart/internal/api/handlers/health"
	recipesHandler "nutrismart/internal/api/handlers/recipes"
	shoppingHandler "nutrismart/internal/api/handlers/shopping"
	"nutrismart/internal/api/middleware"
	"nutrismart/internal/core/ai"
	"nutrismart/internal/core/recipe"
	"nutrismart/internal/core/shopping"
	"nutrismart/internal/infrastructure/config"
	"nutrismart/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	timeoutDuration = 120 * time.Second
	// Request body size limit (1MB). All write endpoints carry small
	// JSON payloads.
	maxBodySize = 1 << 20
)

// Dependencies bundles the long-lived components the router wires into
// handlers. Closeables are owned by the caller.
type Dependencies struct {
	AICache       *ai.Cache
	SnapshotStore shopping.SnapshotStore
}

// SetupRouter builds the gin engine with all middleware and routes.
func SetupRouter(cfg *config.Config, deps Dependencies) (*gin.Engine, error) {
	common.LogInfo("starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	// Recipe catalog, seeded from file when configured.
	recipeStore := recipe.NewSeededStore(cfg.Recipes.SeedFile)
	if recipeStore.Len() == 0 {
		return nil, fmt.Errorf("recipe store is empty after seeding")
	}

	// AI-backed generation is optional. Without an API key the endpoint
	// reports service unavailable instead of failing startup.
	var generator *recipe.Generator
	if cfg.OpenRouter.APIKey != "" {
		aiService := ai.NewService(cfg, deps.AICache)
		generator = recipe.NewGenerator(aiService, recipeStore)
	} else {
		common.LogWarn("OpenRouter API key not configured, recipe generation disabled")
	}

	manager := shopping.NewManager(
		recipeStore,
		deps.SnapshotStore,
		recipeStore.DefaultSelection(cfg.Shopping.DefaultSelection),
	)
	manager.Load(context.Background())

	common.LogInfo("services initialized",
		zap.Int("recipes", recipeStore.Len()),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Bool("generation_enabled", generator != nil),
		zap.String("shopping_backend", cfg.Shopping.Backend),
	)

	// Per-request timeout.
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, common.ErrorResponse{
				Code:    common.ErrCodeRequestTimeout,
				Message: "request timeout",
				Details: timeoutDuration.String(),
			})
			c.Abort()
		}
	})

	healthHandler := health.NewHandler(cfg)
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.ReadinessCheck)
	router.GET("/live", healthHandler.LivenessCheck)

	api := router.Group("/api/v1")
	{
		rh := recipesHandler.NewHandler(recipeStore, generator)
		recipeGroup := api.Group("/recipes")
		{
			recipeGroup.GET("", rh.HandleList)
			recipeGroup.GET("/:id", rh.HandleGet)
			recipeGroup.POST("/generate", middleware.Deduplication(cfg), rh.HandleGenerate)
		}

		sh := shoppingHandler.NewHandler(manager, recipeStore)
		listGroup := api.Group("/shopping-list")
		{
			listGroup.GET("", sh.HandleGetList)
			listGroup.POST("/recipes/:id/toggle", sh.HandleToggleRecipe)
			listGroup.POST("/items/quantity", sh.HandleSetQuantity)
			listGroup.POST("/items/check", sh.HandleSetChecked)
			listGroup.POST("/reset", sh.HandleReset)
		}
	}

	common.LogInfo("router setup completed",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}

// NewSnapshotStore builds the snapshot persistence backend selected by
// the configuration.
func NewSnapshotStore(cfg *config.Config) (shopping.SnapshotStore, error) {
	switch cfg.Shopping.Backend {
	case "memory":
		return shopping.NewMemorySnapshotStore(), nil
	case "file":
		return shopping.NewFileSnapshotStore(cfg.Shopping.SnapshotFile), nil
	case "redis":
		return shopping.NewRedisSnapshotStore(
			cfg.Redis.Addr,
			cfg.Redis.Password,
			cfg.Redis.DB,
			cfg.Shopping.StorageKey,
		)
	default:
		return nil, fmt.Errorf("unknown shopping backend %q", cfg.Shopping.Backend)
	}
}
