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

func ExportArtworksToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var artworks []models.Artwork
		if err := db.Preload("Categories").Find(&artworks).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch artworks"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Artworks")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Title", "Description", "Price", "Medium", "Dimensions",
			"InStock", "Image", "ArtistID", "CategoryIDs", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, a := range artworks {
			row := sheet.AddRow()

			row.AddCell().SetValue(a.ID)
			row.AddCell().SetValue(a.Title)
			row.AddCell().SetValue(a.Description)
			row.AddCell().SetValue(a.Price)
			row.AddCell().SetValue(a.Medium)
			row.AddCell().SetValue(a.Dimensions)
			row.AddCell().SetValue(strconv.FormatBool(a.InStock))
			row.AddCell().SetValue(a.Image)
			row.AddCell().SetValue(a.ArtistID)

			var catIDs []string
			for _, cat := range a.Categories {
				catIDs = append(catIDs, strconv.Itoa(int(cat.ID)))
			}
			row.AddCell().SetValue(strings.Join(catIDs, ","))

			row.AddCell().SetValue(a.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(a.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=artworks.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
