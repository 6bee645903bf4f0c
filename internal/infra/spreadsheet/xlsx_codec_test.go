package spreadsheet

import (
	"bytes"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func TestXLSXCodec_RoundTrip(t *testing.T) {
	codec := NewXLSXCodec()
	products := []*entity.Product{
		{
			ID:          uuid.Must(uuid.NewV7()),
			Name:        "AMD Ryzen 5 5600X",
			Category:    entity.CategoryProcessors,
			Price:       decimal.RequireFromString("850000"),
			Description: "6 núcleos",
			Stock:       15,
			Code:        "1234567890123",
			ImageURL:    "https://example.com/ryzen.jpg",
		},
		{
			ID:       uuid.Must(uuid.NewV7()),
			Name:     "Corsair 16GB",
			Category: entity.CategoryMemory,
			Price:    decimal.RequireFromString("320000.50"),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, products))

	decoded, skipped, err := codec.Decode(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, decoded, 2)

	assert.Equal(t, uuid.Nil, decoded[0].ID)
	assert.Equal(t, "AMD Ryzen 5 5600X", decoded[0].Name)
	assert.Equal(t, entity.CategoryProcessors, decoded[0].Category)
	assert.True(t, decoded[0].Price.Equal(decimal.RequireFromString("850000")))
	assert.Equal(t, 15, decoded[0].Stock)
	assert.Equal(t, "1234567890123", decoded[0].Code)
	assert.True(t, decoded[1].Price.Equal(decimal.RequireFromString("320000.50")))
	assert.Empty(t, decoded[1].Code)
}

func TestXLSXCodec_DecodeSkipsInvalidRows(t *testing.T) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(SheetName)
	require.NoError(t, err)

	addRow := func(values ...string) {
		row := sheet.AddRow()
		for _, v := range values {
			row.AddCell().SetString(v)
		}
	}

	addRow(headers...)
	addRow("", "Valid", "Cases", "100", "", "2", "", "")
	addRow("", "", "Cases", "100", "", "", "", "")         // no name
	addRow("", "No price", "Cases", "abc", "", "", "", "") // bad price
	addRow("", "Negative", "Cases", "-1", "", "", "", "")  // negative price
	addRow("", "No category", "", "10", "", "", "", "")
	addRow("", "", "", "", "", "", "", "") // blank row

	var buf bytes.Buffer
	require.NoError(t, file.Write(&buf))

	products, skipped, err := NewXLSXCodec().Decode(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Valid", products[0].Name)
	assert.Equal(t, 2, products[0].Stock)
	assert.Equal(t, 4, skipped)
}

func TestXLSXCodec_DecodeRejectsGarbage(t *testing.T) {
	data := []byte("not a workbook")

	_, _, err := NewXLSXCodec().Decode(bytes.NewReader(data), int64(len(data)))
	assert.Error(t, err)
}
