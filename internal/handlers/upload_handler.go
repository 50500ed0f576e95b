package handlers

import (
	"log/slog"
	"path/filepath"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/0xGitteth/Exhibit-sub000/internal/helpers"
)

// Upload accepts a multipart file and answers {"file_url": ...}. Files go to
// Cloudinary when it is configured; otherwise they land on local disk so
// development works without credentials.
func Upload(cld *cloudinary.Cloudinary, uploadDir string, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(400, gin.H{"error": "file is required"})
			return
		}

		if cld != nil {
			file, err := fileHeader.Open()
			if err != nil {
				c.JSON(500, gin.H{"error": err.Error()})
				return
			}
			defer file.Close()

			url, err := helpers.UploadImage(c.Request.Context(), cld, file, helpers.PostFolder)
			if err != nil {
				logger.Error("Cloudinary upload failed", "file", fileHeader.Filename, "error", err)
				c.JSON(500, gin.H{"error": err.Error()})
				return
			}
			c.JSON(200, gin.H{"file_url": url})
			return
		}

		name := uuid.New().String() + filepath.Ext(fileHeader.Filename)
		if err := c.SaveUploadedFile(fileHeader, filepath.Join(uploadDir, name)); err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"file_url": "/uploads/" + name})
	}
}
