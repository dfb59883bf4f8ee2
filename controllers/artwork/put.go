package artworkController

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jineshsingatkar/ArtVista/models"
)

// UpdateArtwork updates an existing artwork by ID.
// Accepts the same fields as CreateArtwork and an optional "image" file.
// Artists may only touch their own listings.
func UpdateArtwork(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid artwork ID"})
			return
		}

		var artwork models.Artwork
		if err := db.Preload("Categories").First(&artwork, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
			return
		}

		if role := c.GetString("role"); role == string(models.RoleArtist) && artwork.ArtistID != c.GetString("user_id") {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your listing"})
			return
		}

		if v := c.PostForm("title"); v != "" {
			artwork.Title = v
		}
		if v := c.PostForm("description"); v != "" {
			artwork.Description = v
		}
		if v := c.PostForm("medium"); v != "" {
			artwork.Medium = v
		}
		if v := c.PostForm("dimensions"); v != "" {
			artwork.Dimensions = v
		}
		if v := c.PostForm("price"); v != "" {
			if p, err := strconv.ParseInt(v, 10, 64); err == nil && p >= 0 {
				artwork.Price = p
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
		}
		if v := c.PostForm("in_stock"); v != "" {
			artwork.InStock = v == "true" || v == "1"
		}

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
				}
			}
			if len(parsedIDs) > 0 {
				var categories []models.Category
				if err := db.Where("id IN ?", parsedIDs).Find(&categories).Error; err == nil {
					if err := db.Model(&artwork).Association("Categories").Replace(categories); err != nil {
						c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update categories"})
						return
					}
				}
			}
		}

		if imageURL, err := saveUploadedImage(c, "image", "artworks"); err == nil {
			artwork.Image = imageURL
		}

		if err := db.Save(&artwork).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artwork"})
			return
		}

		c.JSON(http.StatusOK, artwork)
	}
}
