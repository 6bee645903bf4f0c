package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SensorHandler receives readings pushed by the device
type SensorHandler struct {
	sensorUC usecase.SensorUsecase
}

// NewSensorHandler is the constructor for SensorHandler
func NewSensorHandler(sensorUC usecase.SensorUsecase) *SensorHandler {
	return &SensorHandler{sensorUC: sensorUC}
}

// LocationRequest represents a location fix
type LocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"latitude_value"`
	Longitude float64 `json:"longitude" validate:"longitude_value"`
}

// AccelerationRequest represents one accelerometer reading in g
type AccelerationRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// GetLocation returns the current location
func (h *SensorHandler) GetLocation(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.sensorUC.CurrentLocation(c.Request().Context()))
}

// UpdateLocation records a location fix
func (h *SensorHandler) UpdateLocation(c echo.Context) error {
	var req LocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	coord := entity.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude}
	if err := h.sensorUC.UpdateLocation(c.Request().Context(), coord); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, coord)
}

// RecordAcceleration feeds an accelerometer reading to the shake detector
func (h *SensorHandler) RecordAcceleration(c echo.Context) error {
	var req AccelerationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid acceleration input")
	}

	sample := entity.AccelerationSample{X: req.X, Y: req.Y, Z: req.Z}
	shaken := h.sensorUC.RecordAcceleration(c.Request().Context(), sample)

	return response.Success(c, http.StatusOK, map[string]any{
		"magnitude": sample.Magnitude(),
		"shake":     shaken,
	})
}

// SimulateShake emits a shake event without a reading
func (h *SensorHandler) SimulateShake(c echo.Context) error {
	h.sensorUC.SimulateShake(c.Request().Context())

	return response.Success(c, http.StatusAccepted, map[string]string{"message": "Shake simulated"})
}
