package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Offer is one promotional banner entry shown on the storefront.
type Offer struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title           string    `json:"title" gorm:"not null"`
	Description     string    `json:"description" gorm:"not null"`
	DiscountPercent int       `json:"discount_percent" gorm:"not null;default:0;check:discount_percent >= 0 AND discount_percent <= 100"`
	StartsAt        time.Time `json:"starts_at" gorm:"not null;index"`
	EndsAt          time.Time `json:"ends_at" gorm:"not null;index"`
	Active          bool      `json:"active" gorm:"not null;default:true;index"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (o *Offer) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Offer) TableName() string {
	return "offers"
}
