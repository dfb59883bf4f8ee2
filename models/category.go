package models

type Category struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"unique;not null" json:"name"`
	Image    string    `json:"image"`
	Artworks []Artwork `gorm:"many2many:artwork_categories" json:"artworks,omitempty"`
}
