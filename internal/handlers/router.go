package handlers

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pizza-api/internal/config"
	"pizza-api/internal/middleware"
	"pizza-api/internal/validation"
)

// NewRouter assembles the gin engine with all routes and middleware. The
// store is injected once here instead of living in package-level state.
func NewRouter(cfg *config.Config, st DocumentStore, log *slog.Logger) *gin.Engine {
	validation.Init()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	// Permissive by design for demo use: any origin, with credentials.
	// AllowOriginFunc is required because the cors package refuses
	// AllowAllOrigins combined with AllowCredentials.
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))

	menu := NewMenuHandler(st, log)
	orders := NewOrderHandler(st, log)
	diag := NewDiagnosticsHandler(st, cfg)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Pizza API is running"})
	})
	r.GET("/test", diag.Test)

	api := r.Group("/api")
	{
		api.GET("/menu", menu.List)
		api.POST("/menu", menu.Create)
		api.POST("/order", orders.Create)
		api.GET("/orders", orders.List)
	}

	return r
}
