package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Category    string          `gorm:"type:varchar(100);not null;index"`
	Price       decimal.Decimal `gorm:"type:numeric(14,2);not null;check:price >= 0"`
	Description string          `gorm:"type:text;not null;default:''"`
	Stock       int             `gorm:"not null;default:0;check:stock >= 0"`
	Code        *string         `gorm:"type:varchar(64);index"`
	ImageURL    string          `gorm:"type:varchar(255);not null;default:''"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
