package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Storage shapes for the catalog tables. The server reads these once at
// startup and folds them into the in-memory Catalog; cmd/seed writes them.

// CatalogCategoryRow is a row of the catalog_categories table.
type CatalogCategoryRow struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Key           string    `json:"key" gorm:"not null;uniqueIndex"` // base | toppings | extras
	Name          string    `json:"name" gorm:"not null"`
	Description   string    `json:"description"`
	Required      bool      `json:"required" gorm:"not null;default:false"`
	MaxSelections int       `json:"max_selections" gorm:"not null;default:1;check:max_selections >= 1"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Items []CatalogItemRow `json:"items,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
}

func (r *CatalogCategoryRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (CatalogCategoryRow) TableName() string {
	return "catalog_categories"
}

// CatalogItemRow is a row of the catalog_items table. Position preserves the
// fixture's display order.
type CatalogItemRow struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CategoryID  uuid.UUID `json:"category_id" gorm:"type:uuid;not null;index"`
	Key         string    `json:"key" gorm:"not null;index"` // stable id within the category
	Name        string    `json:"name" gorm:"not null"`
	Price       int       `json:"price" gorm:"not null;check:price >= 0"`
	Description string    `json:"description"`
	Position    int       `json:"position" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (r *CatalogItemRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (CatalogItemRow) TableName() string {
	return "catalog_items"
}

// QuantityRuleRow carries the quantity bounds and the preset shortcuts as a
// single JSONB-backed row. The server uses the first row only.
type QuantityRuleRow struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	MinQuantity     int            `json:"min_quantity" gorm:"not null"`
	MaxQuantity     int            `json:"max_quantity" gorm:"not null"`
	DefaultQuantity int            `json:"default_quantity" gorm:"not null"`
	Presets         datatypes.JSON `json:"presets" gorm:"type:jsonb;not null;default:'[]'"` // []QuantityPreset
	CreatedAt       time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (r *QuantityRuleRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (QuantityRuleRow) TableName() string {
	return "quantity_rules"
}
