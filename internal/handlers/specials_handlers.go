package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hitaishi/buildmart-api/internal/models"
)

//
// --- Specials Handlers (multipart image upload) ---
//

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// saveUploadedImage stores a multipart image under dir with a generated
// collision-free name and returns the stored filename.
func (h *Handlers) saveUploadedImage(c *gin.Context, field, dir string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("invalid file type %q", ext)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	filename := uuid.New().String() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}
	return filename, nil
}

// removeStoredImage deletes a previously stored upload. Used both for
// cleanup when the row write fails and when a record is replaced/deleted.
func removeStoredImage(dir, filename string) {
	if filename == "" {
		return
	}
	path := filepath.Join(dir, filename)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("WARNING: failed to remove stored image %s: %v", path, err)
	}
}

// CreateSpecial is the handler for POST /api/specials
func (h *Handlers) CreateSpecial(c *gin.Context) {
	name := c.PostForm("name")
	special := c.PostForm("special")
	description := c.PostForm("description")
	priceStr := c.PostForm("price")
	originalPriceStr := c.PostForm("originalPrice")
	cuisine := c.PostForm("cuisine")
	offer := c.PostForm("offer")
	searchTerms := c.PostForm("searchTerms")

	if name == "" || special == "" || description == "" || priceStr == "" || cuisine == "" || offer == "" || searchTerms == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
		return
	}
	originalPrice, _ := strconv.ParseFloat(originalPriceStr, 64)

	image, err := h.saveUploadedImage(c, "image", h.Cfg.UploadsDir)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	res, err := h.DB.Exec(`
		INSERT INTO specials
		(name, special, description, price, originalPrice, cuisine, offer, image, searchTerms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		name, special, description, price, originalPrice, cuisine, offer, image, searchTerms)
	if err != nil {
		// Never leave an orphaned file behind a failed insert.
		removeStoredImage(h.Cfg.UploadsDir, image)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	id, _ := res.LastInsertId()

	c.JSON(http.StatusCreated, gin.H{
		"message": "Special added successfully",
		"id":      id,
		"image":   image,
	})
}

// GetSpecials is the handler for GET /api/specials
func (h *Handlers) GetSpecials(c *gin.Context) {
	rows, err := h.DB.Query(`
		SELECT id, name, special, description, price, originalPrice, cuisine, offer, image, searchTerms, created_at
		FROM specials ORDER BY created_at DESC`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch specials"})
		return
	}
	defer rows.Close()

	specials := []models.Special{}
	for rows.Next() {
		var s models.Special
		if err := rows.Scan(&s.ID, &s.Name, &s.Special, &s.Description, &s.Price, &s.OriginalPrice,
			&s.Cuisine, &s.Offer, &s.Image, &s.SearchTerms, &s.CreatedAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch specials"})
			return
		}
		specials = append(specials, s)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch specials"})
		return
	}

	c.JSON(http.StatusOK, specials)
}
