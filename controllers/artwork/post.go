package artworkController

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jineshsingatkar/ArtVista/models"
)

const defaultUploadRoot = "/var/www/artvista/uploads"

func uploadRoot() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return defaultUploadRoot
}

func saveUploadedImage(c *gin.Context, field, subdir string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", err
	}

	saveDir := filepath.Join(uploadRoot(), subdir)
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	return fmt.Sprintf("/uploads/%s/%s", subdir, filename), nil
}

// CreateArtwork creates a new artwork with categories + image upload.
// Admins may list for any artist via the artist_id form field; artists
// always list for themselves.
func CreateArtwork(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := c.PostForm("title")
		priceStr := c.PostForm("price")
		if title == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title and price are required"})
			return
		}

		price, err := strconv.ParseInt(priceStr, 10, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		artistID := c.PostForm("artist_id")
		if role := c.GetString("role"); role == string(models.RoleArtist) {
			artistID = c.GetString("user_id")
		}
		if artistID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "artist_id is required"})
			return
		}
		var artist models.User
		if err := db.First(&artist, "id = ?", artistID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Artist does not exist"})
			return
		}

		var categories []models.Category
		if categoryIDsStr := c.PostForm("category_ids"); categoryIDsStr != "" {
			idTokens := strings.Split(categoryIDsStr, ",")
			var parsedIDs []uint
			for _, tok := range idTokens {
				tok = strings.TrimSpace(tok)
				if tok == "" {
					continue
				}
				if id64, parseErr := strconv.ParseUint(tok, 10, 64); parseErr == nil {
					parsedIDs = append(parsedIDs, uint(id64))
				} else {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_ids format"})
					return
				}
			}
			if len(parsedIDs) > 0 {
				if err := db.Where("id IN ?", parsedIDs).Find(&categories).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
					return
				}
			}
		}

		imageURL, err := saveUploadedImage(c, "image", "artworks")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}

		inStock := true
		if v := c.PostForm("in_stock"); v != "" {
			inStock = v == "true" || v == "1"
		}

		newArtwork := models.Artwork{
			Title:       title,
			Description: c.PostForm("description"),
			Price:       price,
			Image:       imageURL,
			Medium:      c.PostForm("medium"),
			Dimensions:  c.PostForm("dimensions"),
			InStock:     inStock,
			ArtistID:    artistID,
			Categories:  categories,
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}
		if err := tx.Create(&newArtwork).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artwork"})
			return
		}
		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
			return
		}

		c.JSON(http.StatusCreated, newArtwork)
	}
}
