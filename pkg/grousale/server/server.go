// Package server assembles the gin engine and the storage backend.
package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/mikepea/grousale/api/swagger"
	"github.com/mikepea/grousale/pkg/grousale/config"
	"github.com/mikepea/grousale/pkg/grousale/cors"
	"github.com/mikepea/grousale/pkg/grousale/database"
	"github.com/mikepea/grousale/pkg/grousale/groups"
	"github.com/mikepea/grousale/pkg/grousale/logging"
	"github.com/mikepea/grousale/pkg/grousale/metrics"
	"github.com/mikepea/grousale/pkg/grousale/storage"
	"github.com/mikepea/grousale/pkg/grousale/storage/gormstore"
	"github.com/mikepea/grousale/pkg/grousale/storage/memory"
)

// LivenessMessage is served on GET /
const LivenessMessage = "✅ Grousale backend is live!"

// NewStore opens the storage backend selected by cfg.
func NewStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return memory.New(), nil
	case config.StoreSQLite:
		if err := database.Connect(cfg.DBPath); err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		slog.Info("Database migrations completed", "dsn", cfg.DBPath)
		return gormstore.New(database.GetDB()), nil
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

// New builds the gin engine with all routes registered.
func New(cfg *config.Config, reg groups.Registry) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logging.RequestLogger(), cors.Middleware(cfg.CORSOrigins))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, LivenessMessage)
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "grousale",
		})
	})

	r.GET("/metrics", metrics.Handler())

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	groupsHandler := groups.NewHandler(reg)
	groupsHandler.RegisterRoutes(r.Group(""))

	return r
}
