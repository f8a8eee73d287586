package router

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/shopfront/internal/server/http/handlers"
	"github.com/polkiloo/shopfront/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware. Cross-origin
// requests are allowed from any origin, matching the public API surface.
func Setup(facade handlers.CommerceFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(cors.Default())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	indexHandler := handlers.NewIndexHandler()
	productHandler := handlers.NewProductHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)

	engine.GET("/", indexHandler.Home)

	api := engine.Group("/api")
	api.GET("/products", productHandler.List)
	api.POST("/order", orderHandler.Place)
	api.GET("/track/:order_id", orderHandler.Track)
	api.POST("/payment/:order_id", paymentHandler.Process)
	api.GET("/orders", orderHandler.List)

	return engine
}
