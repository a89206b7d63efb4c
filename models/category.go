package models

import "time"

// Category groups products. Categories form a tree through ParentCode; the
// tree is the single authoritative representation and cycles are not
// detected, so callers patching parent codes can create one.
type Category struct {
	Code        string  `gorm:"primaryKey;size:64"`
	Name        string  `gorm:"not null"`
	Description string
	ParentCode  *string   `gorm:"size:64;index"`
	Parent      *Category `gorm:"foreignKey:ParentCode;references:Code"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Category) TableName() string {
	return "categories"
}
