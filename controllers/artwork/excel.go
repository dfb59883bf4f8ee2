package artworkController

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/jineshsingatkar/ArtVista/models"
)

// ImportArtworksFromExcel bulk-loads the catalog from a spreadsheet.
// Rows with an ID column update existing artworks, the rest insert.
func ImportArtworksFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]
			if len(row.Cells) < 9 {
				skippedCount++
				continue
			}

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			title := get(1)
			description := get(2)
			price, priceErr := strconv.ParseInt(get(3), 10, 64)
			medium := get(4)
			dimensions := get(5)
			inStock := strings.EqualFold(get(6), "true") || get(6) == "1"
			image := get(7)
			artistID := get(8)
			categoryIDStr := get(9)

			if title == "" || priceErr != nil {
				skippedCount++
				continue
			}

			var categories []models.Category
			for _, part := range strings.Split(categoryIDStr, ",") {
				if id, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
					categories = append(categories, models.Category{ID: uint(id)})
				}
			}

			artwork := models.Artwork{
				Title:       title,
				Description: description,
				Price:       price,
				Medium:      medium,
				Dimensions:  dimensions,
				InStock:     inStock,
				Image:       image,
				ArtistID:    artistID,
				Categories:  categories,
			}

			if idStr != "" {
				if id, err := strconv.Atoi(idStr); err == nil {
					var existing models.Artwork
					if err := db.Preload("Categories").First(&existing, id).Error; err == nil {
						existing.Title = artwork.Title
						existing.Description = artwork.Description
						existing.Price = artwork.Price
						existing.Medium = artwork.Medium
						existing.Dimensions = artwork.Dimensions
						existing.InStock = artwork.InStock
						existing.Image = artwork.Image
						existing.ArtistID = artwork.ArtistID

						if err := db.Model(&existing).Association("Categories").Replace(categories); err != nil {
							skippedCount++
							continue
						}

						if err := db.Save(&existing).Error; err == nil {
							updatedCount++
							continue
						}
					}
				}
			}

			if err := db.Create(&artwork).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
