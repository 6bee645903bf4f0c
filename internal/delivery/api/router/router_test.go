package router

import (
	"net/http"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func registeredRoutes(e *echo.Echo) map[string]bool {
	routes := make(map[string]bool)
	for _, route := range e.Routes() {
		routes[route.Method+" "+route.Path] = true
	}

	return routes
}

func TestRouter_RegisterRoutes(t *testing.T) {
	e := echo.New()
	r := NewRouter(RouterParams{
		CatalogHandler: &handler.CatalogHandler{},
		CartHandler:    &handler.CartHandler{},
		OrderHandler:   &handler.OrderHandler{},
		StoreHandler:   &handler.StoreHandler{},
		SensorHandler:  &handler.SensorHandler{},
		TestHandler:    &handler.TestHandler{},
		Config:         &config.Config{},
	})

	r.RegisterRoutes(e)
	r.RegisterTestRoutes(e)

	routes := registeredRoutes(e)
	for _, want := range []string{
		http.MethodGet + " /health",
		http.MethodGet + " /api/v1/categories",
		http.MethodGet + " /api/v1/products",
		http.MethodGet + " /api/v1/products/export",
		http.MethodGet + " /api/v1/products/code/:code",
		http.MethodGet + " /api/v1/products/:id",
		http.MethodGet + " /api/v1/products/:id/qr",
		http.MethodPost + " /api/v1/scanner/scan",
		http.MethodGet + " /api/v1/cart",
		http.MethodDelete + " /api/v1/cart",
		http.MethodPost + " /api/v1/cart/items",
		http.MethodDelete + " /api/v1/cart/items/:id",
		http.MethodPost + " /api/v1/cart/checkout",
		http.MethodGet + " /api/v1/cart/stream",
		http.MethodGet + " /api/v1/orders",
		http.MethodGet + " /api/v1/orders/:id",
		http.MethodGet + " /api/v1/stores/nearby",
		http.MethodGet + " /api/v1/stores/:id/navigation",
		http.MethodGet + " /api/v1/sensors/location",
		http.MethodPost + " /api/v1/sensors/location",
		http.MethodPost + " /api/v1/sensors/acceleration",
		http.MethodPost + " /api/v1/sensors/shake",
	} {
		assert.True(t, routes[want], want)
	}

	assert.False(t, routes[http.MethodGet+" /test/public"])
}

func TestRouter_RegisterTestRoutes_Enabled(t *testing.T) {
	e := echo.New()
	r := NewRouter(RouterParams{
		TestHandler: &handler.TestHandler{},
		Config:      &config.Config{TestRoutes: &config.TestRoutesConfig{Enabled: true}},
	})

	r.RegisterTestRoutes(e)

	routes := registeredRoutes(e)
	assert.True(t, routes[http.MethodGet+" /test/public"])
	assert.True(t, routes[http.MethodGet+" /test/error"])
}
