package artworkController

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jineshsingatkar/ArtVista/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Artwork{},
		&models.Category{},
		&models.Cart{},
		&models.CartItem{},
	))
	return db
}

func seedGallery(t *testing.T, db *gorm.DB) {
	t.Helper()

	approved := models.User{ID: "artist-ok", Email: "ok@kalabazaar.com", Password: "x", Name: "Ananya Sharma", Role: models.RoleArtist, Approved: true}
	pending := models.User{ID: "artist-new", Email: "new@kalabazaar.com", Password: "x", Name: "New Artist", Role: models.RoleArtist, Approved: false}
	require.NoError(t, db.Create(&approved).Error)
	require.NoError(t, db.Create(&pending).Error)

	landscape := models.Category{Name: "Landscape"}
	abstract := models.Category{Name: "Abstract"}
	require.NoError(t, db.Create(&landscape).Error)
	require.NoError(t, db.Create(&abstract).Error)

	works := []models.Artwork{
		{Title: "Mystic Ganges at Dawn", Description: "Golden sunrise over the river", Price: 45000, Image: "a.jpg", Medium: "Oil on Canvas", InStock: true, ArtistID: approved.ID, Categories: []models.Category{landscape}},
		{Title: "Urban Rhythms", Description: "The energy of Mumbai streets", Price: 35000, Image: "b.jpg", Medium: "Acrylic on Canvas", InStock: true, ArtistID: approved.ID, Categories: []models.Category{abstract}},
		{Title: "Hidden Work", Description: "Should not be listed", Price: 10000, Image: "c.jpg", Medium: "Oil on Canvas", InStock: true, ArtistID: pending.ID},
	}
	for i := range works {
		require.NoError(t, db.Create(&works[i]).Error)
	}
}

func listArtworks(t *testing.T, db *gorm.DB, query string) []models.Artwork {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/artworks", GetArtworks(db))

	req := httptest.NewRequest(http.MethodGet, "/artworks"+query, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var artworks []models.Artwork
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &artworks))
	return artworks
}

func titles(artworks []models.Artwork) []string {
	out := make([]string, 0, len(artworks))
	for _, a := range artworks {
		out = append(out, a.Title)
	}
	return out
}

func TestGetArtworksHidesUnapprovedArtists(t *testing.T) {
	db := setupTestDB(t)
	seedGallery(t, db)

	artworks := listArtworks(t, db, "")
	assert.Len(t, artworks, 2)
	assert.NotContains(t, titles(artworks), "Hidden Work")
}

func TestGetArtworksSearchIsCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	seedGallery(t, db)

	artworks := listArtworks(t, db, "?search=GANGES")
	require.Len(t, artworks, 1)
	assert.Equal(t, "Mystic Ganges at Dawn", artworks[0].Title)

	// Medium matches too
	artworks = listArtworks(t, db, "?search=acrylic")
	require.Len(t, artworks, 1)
	assert.Equal(t, "Urban Rhythms", artworks[0].Title)
}

func TestGetArtworksPriceRange(t *testing.T) {
	db := setupTestDB(t)
	seedGallery(t, db)

	artworks := listArtworks(t, db, "?min_price=40000")
	require.Len(t, artworks, 1)
	assert.Equal(t, "Mystic Ganges at Dawn", artworks[0].Title)

	artworks = listArtworks(t, db, "?max_price=40000")
	require.Len(t, artworks, 1)
	assert.Equal(t, "Urban Rhythms", artworks[0].Title)
}

func TestGetArtworksCategoryFilter(t *testing.T) {
	db := setupTestDB(t)
	seedGallery(t, db)

	var abstract models.Category
	require.NoError(t, db.Where("name = ?", "Abstract").First(&abstract).Error)

	artworks := listArtworks(t, db, "?category_id=2")
	require.Len(t, artworks, 1)
	assert.Equal(t, "Urban Rhythms", artworks[0].Title)
}

func TestGetArtworksSortByPrice(t *testing.T) {
	db := setupTestDB(t)
	seedGallery(t, db)

	artworks := listArtworks(t, db, "?sort_by=price&order=asc")
	require.Len(t, artworks, 2)
	assert.Equal(t, "Urban Rhythms", artworks[0].Title)
	assert.Equal(t, "Mystic Ganges at Dawn", artworks[1].Title)
}

func TestGetArtworksRejectsBadPriceFilter(t *testing.T) {
	db := setupTestDB(t)
	seedGallery(t, db)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/artworks", GetArtworks(db))

	req := httptest.NewRequest(http.MethodGet, "/artworks?min_price=cheap", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetArtworkByID(t *testing.T) {
	db := setupTestDB(t)
	seedGallery(t, db)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/artworks/:id", GetArtworkByID(db))

	req := httptest.NewRequest(http.MethodGet, "/artworks/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var artwork models.Artwork
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &artwork))
	assert.Equal(t, "Mystic Ganges at Dawn", artwork.Title)
	assert.Equal(t, "Ananya Sharma", artwork.Artist.Name)

	req = httptest.NewRequest(http.MethodGet, "/artworks/999", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
