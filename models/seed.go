package models

import (
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedAccount struct {
	Email    string
	Password string
	Name     string
	Role     Role
	Approved bool
	Avatar   string
	Artist   ArtistProfile
}

var seedAccounts = []seedAccount{
	{
		Email:    "admin@kalabazaar.com",
		Password: "admin123",
		Name:     "Admin User",
		Role:     RoleAdmin,
		Approved: true,
	},
	{
		Email:    "demo@kalabazaar.com",
		Password: "demo123",
		Name:     "Demo User",
		Role:     RoleUser,
		Approved: true,
	},
	{
		Email:    "ananya@kalabazaar.com",
		Password: "artist123",
		Name:     "Ananya Sharma",
		Role:     RoleArtist,
		Approved: true,
		Avatar:   "https://images.unsplash.com/photo-1494790108377-be9c29b29330?q=80&w=100&auto=format&fit=crop",
		Artist: ArtistProfile{
			Bio:            "Contemporary artist known for vibrant abstract compositions inspired by Indian culture.",
			Specialization: "Abstract",
		},
	},
	{
		Email:    "vikram@kalabazaar.com",
		Password: "artist123",
		Name:     "Vikram Mehta",
		Role:     RoleArtist,
		Approved: true,
		Avatar:   "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?q=80&w=100&auto=format&fit=crop",
		Artist: ArtistProfile{
			Bio:            "Specializes in landscape paintings that capture the serene beauty of rural India.",
			Specialization: "Landscape",
		},
	},
	{
		Email:    "priya@kalabazaar.com",
		Password: "artist123",
		Name:     "Priya Patel",
		Role:     RoleArtist,
		Approved: true,
		Avatar:   "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?q=80&w=100&auto=format&fit=crop",
		Artist: ArtistProfile{
			Bio:            "Modern artist exploring the intersection of traditional Indian art forms and contemporary techniques.",
			Specialization: "Contemporary",
		},
	},
	{
		Email:    "rajiv@kalabazaar.com",
		Password: "artist123",
		Name:     "Rajiv Singh",
		Role:     RoleArtist,
		Approved: true,
		Avatar:   "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?q=80&w=100&auto=format&fit=crop",
		Artist: ArtistProfile{
			Bio:            "Digital artist known for blending photography with digital manipulation to create surreal landscapes.",
			Specialization: "Digital",
		},
	},
}

var seedCategories = []string{"Landscape", "Abstract", "Contemporary", "Architecture", "Folk Art"}

type seedArtwork struct {
	Title       string
	Description string
	Price       int64
	Image       string
	Category    string
	Medium      string
	Dimensions  string
	ArtistEmail string
}

var seedArtworks = []seedArtwork{
	{
		Title:       "Mystic Ganges at Dawn",
		Description: "A vibrant depiction of the holy Ganges river at sunrise, with boats and temples silhouetted against the golden sky.",
		Price:       45000,
		Image:       "https://images.unsplash.com/photo-1523712999610-f77fbcfc3843?q=80&w=500&auto=format&fit=crop",
		Category:    "Landscape",
		Medium:      "Oil on Canvas",
		Dimensions:  "30 x 40 inches",
		ArtistEmail: "ananya@kalabazaar.com",
	},
	{
		Title:       "Urban Rhythms",
		Description: "An abstract representation of the hustle and bustle of Mumbai streets, capturing the energy and chaos of urban India.",
		Price:       35000,
		Image:       "https://images.unsplash.com/photo-1500673922987-e212871fec22?q=80&w=500&auto=format&fit=crop",
		Category:    "Abstract",
		Medium:      "Acrylic on Canvas",
		Dimensions:  "36 x 48 inches",
		ArtistEmail: "vikram@kalabazaar.com",
	},
	{
		Title:       "Himalayan Serenity",
		Description: "A peaceful landscape capturing the majestic Himalayan mountains at dusk, with soft pastel colors and gentle brushstrokes.",
		Price:       52000,
		Image:       "https://images.unsplash.com/photo-1506744038136-46273834b3fb?q=80&w=500&auto=format&fit=crop",
		Category:    "Landscape",
		Medium:      "Watercolor",
		Dimensions:  "24 x 36 inches",
		ArtistEmail: "priya@kalabazaar.com",
	},
	{
		Title:       "Monsoon Melodies",
		Description: "A contemporary piece capturing the essence of Indian monsoon - the patterns of rain, the scent of wet earth, and the vibrant greenery.",
		Price:       28000,
		Image:       "https://images.unsplash.com/photo-1501854140801-50d01698950b?q=80&w=500&auto=format&fit=crop",
		Category:    "Contemporary",
		Medium:      "Mixed Media",
		Dimensions:  "30 x 30 inches",
		ArtistEmail: "rajiv@kalabazaar.com",
	},
	{
		Title:       "Heritage Echoes",
		Description: "A detailed portrayal of ancient Indian architecture, featuring intricate carvings and stunning symmetry of a historic temple.",
		Price:       65000,
		Image:       "https://images.unsplash.com/photo-1493397212122-2b85dda8106b?q=80&w=500&auto=format&fit=crop",
		Category:    "Architecture",
		Medium:      "Charcoal and Ink",
		Dimensions:  "40 x 50 inches",
		ArtistEmail: "ananya@kalabazaar.com",
	},
	{
		Title:       "Dancing Light",
		Description: "An abstract exploration of light and shadow, inspired by the play of sunshine through temple windows.",
		Price:       42000,
		Image:       "https://images.unsplash.com/photo-1615729947596-a598e5de0ab3?q=80&w=500&auto=format&fit=crop",
		Category:    "Abstract",
		Medium:      "Oil on Canvas",
		Dimensions:  "36 x 36 inches",
		ArtistEmail: "vikram@kalabazaar.com",
	},
	{
		Title:       "Village Chronicles",
		Description: "A narrative painting depicting daily life in a rural Indian village, showcasing traditional customs and simple joys.",
		Price:       38000,
		Image:       "https://images.unsplash.com/photo-1492321936769-b49830bc1d1e?q=80&w=500&auto=format&fit=crop",
		Category:    "Folk Art",
		Medium:      "Acrylic on Handmade Paper",
		Dimensions:  "24 x 36 inches",
		ArtistEmail: "priya@kalabazaar.com",
	},
	{
		Title:       "Cosmic Reflections",
		Description: "A modern interpretation of ancient cosmic symbolism in Indian mythology, rendered in a contemporary style.",
		Price:       55000,
		Image:       "https://images.unsplash.com/photo-1487958449943-2429e8be8625?q=80&w=500&auto=format&fit=crop",
		Category:    "Contemporary",
		Medium:      "Digital Print on Canvas",
		Dimensions:  "40 x 40 inches",
		ArtistEmail: "rajiv@kalabazaar.com",
	},
}

// Seed loads the fixture accounts, categories and artworks. Safe to
// run on every boot: existing rows are left alone.
func Seed(db *gorm.DB) error {
	users := make(map[string]*User, len(seedAccounts))
	for _, acc := range seedAccounts {
		email := strings.ToLower(acc.Email)

		var user User
		err := db.Where("email = ?", email).First(&user).Error
		if err == nil {
			users[email] = &user
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(acc.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user = User{
			ID:       "seed-" + strings.SplitN(email, "@", 2)[0],
			Email:    email,
			Password: string(hash),
			Name:     acc.Name,
			Avatar:   acc.Avatar,
			Role:     acc.Role,
			Approved: acc.Approved,
			Artist:   acc.Artist,
			Cart:     Cart{},
		}
		user.Cart.UserID = user.ID
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		users[email] = &user
	}

	categories := make(map[string]*Category, len(seedCategories))
	for _, name := range seedCategories {
		var cat Category
		if err := db.Where("name = ?", name).FirstOrCreate(&cat, Category{Name: name}).Error; err != nil {
			return err
		}
		categories[name] = &cat
	}

	for _, art := range seedArtworks {
		var count int64
		if err := db.Model(&Artwork{}).Where("title = ?", art.Title).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		artist, ok := users[art.ArtistEmail]
		if !ok {
			continue
		}
		artwork := Artwork{
			Title:       art.Title,
			Description: art.Description,
			Price:       art.Price,
			Image:       art.Image,
			Medium:      art.Medium,
			Dimensions:  art.Dimensions,
			InStock:     true,
			ArtistID:    artist.ID,
		}
		if cat, ok := categories[art.Category]; ok {
			artwork.Categories = []Category{*cat}
		}
		if err := db.Create(&artwork).Error; err != nil {
			return err
		}
	}

	log.Println("✅ Fixture data seeded")
	return nil
}
