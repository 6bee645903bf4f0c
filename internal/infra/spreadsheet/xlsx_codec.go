// Package spreadsheet reads and writes the catalog as an Excel workbook.
package spreadsheet

import (
	"io"
	"strconv"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
)

// SheetName is the worksheet written by Encode.
const SheetName = "Productos"

const (
	colID = iota
	colName
	colCategory
	colPrice
	colDescription
	colStock
	colCode
	colImage
	columnCount
)

//nolint:gochecknoglobals
var headers = []string{"ID", "Nombre", "Categoría", "Precio", "Descripción", "Stock", "Código", "Imagen"}

type xlsxCodec struct{}

// NewXLSXCodec creates the catalog codec backed by tealeg/xlsx
func NewXLSXCodec() service.CatalogCodec {
	return &xlsxCodec{}
}

// Encode writes a header row followed by one row per product
func (c *xlsxCodec) Encode(w io.Writer, products []*entity.Product) error {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet(SheetName)
	if err != nil {
		return errors.Wrap(err, "failed to create sheet")
	}

	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetString(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetString(p.ID.String())
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(string(p.Category))
		row.AddCell().SetString(p.Price.StringFixed(2))
		row.AddCell().SetString(p.Description)
		row.AddCell().SetInt(p.Stock)
		row.AddCell().SetString(p.Code)
		row.AddCell().SetString(p.ImageURL)
	}

	if err := file.Write(w); err != nil {
		return errors.Wrap(err, "failed to write workbook")
	}

	return nil
}

// Decode reads the first sheet. The first row is the header and the ID column is ignored.
// Rows with an empty name, a missing category, or a missing or negative price are skipped.
// Blank rows are ignored without being counted.
func (c *xlsxCodec) Decode(r io.ReaderAt, size int64) ([]*entity.Product, int, error) {
	file, err := xlsx.OpenReaderAt(r, size)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to parse workbook")
	}

	if len(file.Sheets) == 0 || len(file.Sheets[0].Rows) < 1 {
		return nil, 0, errors.New("workbook is empty or missing header row")
	}

	sheet := file.Sheets[0]
	products := make([]*entity.Product, 0, len(sheet.Rows))
	skipped := 0

	for i := 1; i < len(sheet.Rows); i++ {
		row := sheet.Rows[i]
		if row == nil || isBlank(row) {
			continue
		}

		product, ok := parseRow(row)
		if !ok {
			skipped++

			continue
		}
		products = append(products, product)
	}

	return products, skipped, nil
}

func parseRow(row *xlsx.Row) (*entity.Product, bool) {
	get := func(index int) string {
		if index < len(row.Cells) && row.Cells[index] != nil {
			return strings.TrimSpace(row.Cells[index].String())
		}

		return ""
	}

	name := get(colName)
	category := entity.Category(get(colCategory))
	price, err := decimal.NewFromString(get(colPrice))
	if name == "" || category.IsAll() || err != nil || price.IsNegative() {
		return nil, false
	}

	stock := 0
	if raw := get(colStock); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil && parsed > 0 {
			stock = int(parsed)
		}
	}

	return &entity.Product{
		Name:        name,
		Category:    category,
		Price:       price.Round(2),
		Description: get(colDescription),
		Stock:       stock,
		Code:        get(colCode),
		ImageURL:    get(colImage),
	}, true
}

func isBlank(row *xlsx.Row) bool {
	for i, cell := range row.Cells {
		if i >= columnCount {
			break
		}
		if cell != nil && strings.TrimSpace(cell.String()) != "" {
			return false
		}
	}

	return true
}
