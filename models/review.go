package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer review attached to a product.
type Review struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Comment     string    `gorm:"size:1000"`
	Rating      int
	ProductCode string `gorm:"size:64;index;not null"`
	CreatedAt   time.Time
}

func (Review) TableName() string {
	return "reviews"
}
