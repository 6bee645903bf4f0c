package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"gte=1,lte=999"`
}

type locationRequest struct {
	Latitude  float64 `json:"latitude" validate:"latitude_value"`
	Longitude float64 `json:"longitude" validate:"longitude_value"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&addItemRequest{ProductID: "0190f1c2-0000-7000-8000-000000000001", Quantity: 1}))

	err := v.Validate(&addItemRequest{Quantity: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product_id is required")
	assert.Contains(t, err.Error(), "quantity must be at least 1")

	err = v.Validate(&addItemRequest{ProductID: "nope", Quantity: 1000})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product_id must be a valid UUID")
	assert.Contains(t, err.Error(), "quantity must be at most 999")
}

func TestValidate_Coordinates(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&locationRequest{Latitude: 10.42, Longitude: -75.53}))

	err := v.Validate(&locationRequest{Latitude: 91, Longitude: -181})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "latitude is out of range")
	assert.Contains(t, err.Error(), "longitude is out of range")
}
