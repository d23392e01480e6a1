package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hitaishi/buildmart-api/internal/models"
)

//
// --- Catalog Handlers ---
//

type productInput struct {
	Name     string  `json:"name"`
	Category *string `json:"category"`
	Price    float64 `json:"price"`
	Discount int     `json:"discount"`
	Rating   float64 `json:"rating"`
	Image    *string `json:"image"`
}

// GetProducts is the handler for GET /api/products
// Newest first so freshly added items surface on top.
func (h *Handlers) GetProducts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "999"))
	if err != nil || limit <= 0 {
		limit = 999
	}

	rows, err := h.DB.Query(`
		SELECT id, name, category, price, discount, rating, image
		FROM products ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
			return
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct is the handler for GET /api/product/:id
func (h *Handlers) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	row := h.DB.QueryRow(`
		SELECT id, name, category, price, discount, rating, image
		FROM products WHERE id = ? LIMIT 1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": p})
}

// CreateProduct is the handler for POST /api/products
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
		return
	}

	res, err := h.DB.Exec(`
		INSERT INTO products (name, category, price, discount, rating, image)
		VALUES (?, ?, ?, ?, ?, ?)`,
		input.Name, input.Category, input.Price, input.Discount, input.Rating, input.Image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	id, _ := res.LastInsertId()

	c.JSON(http.StatusOK, gin.H{"message": "Product added", "id": id})
}

// UpdateProduct is the handler for PUT /api/products/:id
func (h *Handlers) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
		return
	}

	res, err := h.DB.Exec(`
		UPDATE products SET name=?, category=?, price=?, discount=?, rating=?, image=?
		WHERE id=?`,
		input.Name, input.Category, input.Price, input.Discount, input.Rating, input.Image, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "id": id})
}

// DeleteProduct is the handler for DELETE /api/products/:id
func (h *Handlers) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	res, err := h.DB.Exec("DELETE FROM products WHERE id=?", id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted", "id": id})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	var category, image sql.NullString
	if err := row.Scan(&p.ID, &p.Name, &category, &p.Price, &p.Discount, &p.Rating, &image); err != nil {
		return p, err
	}
	if category.Valid {
		p.Category = &category.String
	}
	if image.Valid {
		p.Image = &image.String
	}
	return p, nil
}
