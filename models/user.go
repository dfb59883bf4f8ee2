package models

import "time"

type Role string

const (
	RoleUser   Role = "user"
	RoleArtist Role = "artist"
	RoleAdmin  Role = "admin"
)

type User struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Phone    string `json:"phone"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Role     Role   `gorm:"type:VARCHAR(10);default:'user'" json:"role"`
	// Artists start unapproved; their artworks stay out of the public
	// catalog until an admin approves the account.
	Approved  bool          `json:"approved"`
	Artist    ArtistProfile `gorm:"embedded;embeddedPrefix:artist_" json:"artist_profile"`
	Address   Address       `gorm:"embedded" json:"address"`
	Cart      Cart          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	Orders    []Order       `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"orders"`
	CreatedAt time.Time     `json:"created_at"`
}

// ArtistProfile is only meaningful for users with RoleArtist.
type ArtistProfile struct {
	Bio            string `json:"bio"`
	Specialization string `json:"specialization"`
	Portfolio      string `json:"portfolio"`
}

// Address model embedded in User
type Address struct {
	Country    string `json:"country"`
	State      string `json:"state"`
	City       string `json:"city"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
}

func (u *User) IsAdmin() bool  { return u.Role == RoleAdmin }
func (u *User) IsArtist() bool { return u.Role == RoleArtist }
