package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// StoreHandler serves the nearby stores screen
type StoreHandler struct {
	storeUC usecase.StoreUsecase
}

// NewStoreHandler is the constructor for StoreHandler
func NewStoreHandler(storeUC usecase.StoreUsecase) *StoreHandler {
	return &StoreHandler{storeUC: storeUC}
}

// NearbyStores lists stores by distance from ?lat=&lon=, or from the current location
func (h *StoreHandler) NearbyStores(c echo.Context) error {
	from, err := originFromQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	stores, err := h.storeUC.NearbyStores(c.Request().Context(), from)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stores)
}

// Navigation returns distance and ETA to a store
func (h *StoreHandler) Navigation(c echo.Context) error {
	from, err := originFromQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	navigation, err := h.storeUC.Navigation(c.Request().Context(), c.Param("id"), from)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, navigation)
}

// originFromQuery returns nil when neither lat nor lon is given.
func originFromQuery(c echo.Context) (*entity.Coordinate, error) {
	rawLat, rawLon := c.QueryParam("lat"), c.QueryParam("lon")
	if rawLat == "" && rawLon == "" {
		return nil, nil
	}

	lat, latErr := strconv.ParseFloat(rawLat, 64)
	lon, lonErr := strconv.ParseFloat(rawLon, 64)
	if latErr != nil || lonErr != nil {
		return nil, domainerrors.ErrInvalidCoordinate.WithDetails("lat and lon must both be numbers")
	}

	return &entity.Coordinate{Latitude: lat, Longitude: lon}, nil
}
