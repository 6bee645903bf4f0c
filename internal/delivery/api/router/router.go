// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler *handler.CatalogHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	StoreHandler   *handler.StoreHandler
	SensorHandler  *handler.SensorHandler
	TestHandler    *handler.TestHandler
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler *handler.CatalogHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	storeHandler   *handler.StoreHandler
	sensorHandler  *handler.SensorHandler
	testHandler    *handler.TestHandler
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler: params.CatalogHandler,
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
		storeHandler:   params.StoreHandler,
		sensorHandler:  params.SensorHandler,
		testHandler:    params.TestHandler,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	apiV1.GET("/categories", r.catalogHandler.ListCategories)

	// Catalog routes
	productsGroup := apiV1.Group("/products")
	{
		productsGroup.GET("", r.catalogHandler.ListProducts)
		productsGroup.GET("/export", r.catalogHandler.ExportCatalog)
		productsGroup.GET("/code/:code", r.catalogHandler.GetProductByCode)
		productsGroup.GET("/:id", r.catalogHandler.GetProduct)
		productsGroup.GET("/:id/qr", r.catalogHandler.GetProductQR)
	}

	apiV1.POST("/scanner/scan", r.catalogHandler.ScanCode)

	// Cart routes
	cartGroup := apiV1.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
		cartGroup.POST("/checkout", r.cartHandler.Checkout)
		cartGroup.GET("/stream", r.cartHandler.Stream)
	}

	// Order history routes
	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
	}

	// Store locator routes
	storesGroup := apiV1.Group("/stores")
	{
		storesGroup.GET("/nearby", r.storeHandler.NearbyStores)
		storesGroup.GET("/:id/navigation", r.storeHandler.Navigation)
	}

	// Device sensor routes
	sensorsGroup := apiV1.Group("/sensors")
	{
		sensorsGroup.GET("/location", r.sensorHandler.GetLocation)
		sensorsGroup.POST("/location", r.sensorHandler.UpdateLocation)
		sensorsGroup.POST("/acceleration", r.sensorHandler.RecordAcceleration)
		sensorsGroup.POST("/shake", r.sensorHandler.SimulateShake)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
		testGroup.GET("/error", r.testHandler.TestErrorEndpoint)
	}
}
