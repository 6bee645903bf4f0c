// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category is the product category. The set is open; known values are listed below.
type Category string

const (
	// CategoryAll is the sentinel that disables category filtering.
	CategoryAll Category = "Todos"

	CategoryProcessors   Category = "Procesadores"
	CategoryGraphics     Category = "Tarjetas Gráficas"
	CategoryMemory       Category = "Memorias RAM"
	CategoryMotherboards Category = "Motherboards"
	CategoryStorage      Category = "Almacenamiento"
	CategoryPowerSupply  Category = "Fuentes de Poder"
	CategoryCooling      Category = "Refrigeración"
	CategoryCases        Category = "Cases"
)

// KnownCategories returns the categories shown by the storefront, sentinel first.
func KnownCategories() []Category {
	return []Category{
		CategoryAll,
		CategoryProcessors,
		CategoryGraphics,
		CategoryMemory,
		CategoryMotherboards,
		CategoryStorage,
		CategoryPowerSupply,
		CategoryCooling,
		CategoryCases,
	}
}

// IsAll reports whether the category means "no filter".
// The English alias "All" is accepted as well.
func (c Category) IsAll() bool {
	trimmed := strings.TrimSpace(string(c))

	return trimmed == "" || trimmed == string(CategoryAll) || strings.EqualFold(trimmed, "all")
}

// Product is a catalog item. Products are immutable once the catalog is loaded.
type Product struct {
	ID          uuid.UUID       `json:"id"`          // Time-ordered identifier; id order is insertion order.
	Name        string          `json:"name"`        // Display name.
	Category    Category        `json:"category"`    // Catalog category.
	Price       decimal.Decimal `json:"price"`       // Current unit price.
	Description string          `json:"description"` // Free text description.
	Stock       int             `json:"stock"`       // Units on hand. Informational only.
	Code        string          `json:"code"`        // Optional external barcode. Not unique.
	ImageURL    string          `json:"image_url"`   // Image reference.
	CreatedAt   time.Time       `json:"created_at"`
}

// ProductFilter narrows ListProducts. Zero values mean "no filter".
type ProductFilter struct {
	Category Category
	Search   string
}

// HasCategory reports whether the filter restricts by category.
func (f ProductFilter) HasCategory() bool {
	return !f.Category.IsAll()
}

// SearchTerm returns the trimmed search text.
func (f ProductFilter) SearchTerm() string {
	return strings.TrimSpace(f.Search)
}

// Matches applies the filter semantics in memory.
func (f ProductFilter) Matches(p *Product) bool {
	if f.HasCategory() && p.Category != Category(strings.TrimSpace(string(f.Category))) {
		return false
	}

	term := strings.ToLower(f.SearchTerm())
	if term == "" {
		return true
	}

	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term)
}
