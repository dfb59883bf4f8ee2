package models

import (
	"time"

	"gorm.io/gorm"
)

type Artwork struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	// Price in whole currency units (INR). Gateways want minor units,
	// so multiply by 100 at the payment boundary.
	Price      int64      `gorm:"not null" json:"price"`
	Image      string     `gorm:"not null" json:"image"`
	Medium     string     `json:"medium"`
	Dimensions string     `json:"dimensions"`
	InStock    bool       `gorm:"default:true" json:"in_stock"`
	ArtistID   string     `gorm:"index" json:"artist_id"`
	Artist     User       `gorm:"foreignKey:ArtistID" json:"artist"`
	Categories []Category `gorm:"many2many:artwork_categories;" json:"categories"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
