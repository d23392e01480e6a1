package handlers

import (
	"database/sql"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"

	"github.com/hitaishi/buildmart-api/internal/models"
)

//
// --- Extended Catalog Handlers (product_uploads) ---
//
// Extended products carry category-specific attribute columns (cement,
// bricks, building materials, steel, plumbing, interior) and a disk-stored
// image uploaded through multipart forms.
//

const extendedProductColumns = `id, productName, slug, brand, category, description, price, discount, finalPrice,
	quantity, quantityUnit, rating, moq, warranty, color, imageUrl, imagePath,
	cementType, cementGrade, settingTime, compressiveStrength,
	brickType, brickSize, weight,
	materialType, thickness, density, application,
	steelType, diameter, steelGrade, yieldStrength,
	plumbingType, material, pressureRating,
	interiorType, finishType, coverage, installation,
	created_at, updated_at, status, createdBy, seller_id`

func (h *Handlers) extendedUploadsDir() string {
	return filepath.Join(h.Cfg.UploadsDir, "products")
}

// Form helpers: absent or empty fields map to SQL NULL, matching the
// loosely-typed multipart forms the storefront sends.

func formStr(c *gin.Context, keys ...string) *string {
	for _, key := range keys {
		if v := c.PostForm(key); v != "" {
			return &v
		}
	}
	return nil
}

func formInt(c *gin.Context, key string) *int {
	v := c.PostForm(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

func formIntDefault(c *gin.Context, key string, def int) int {
	if n := formInt(c, key); n != nil {
		return *n
	}
	return def
}

func formFloat(c *gin.Context, key string) *float64 {
	v := c.PostForm(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func formFloatDefault(c *gin.Context, key string, def float64) float64 {
	if f := formFloat(c, key); f != nil {
		return *f
	}
	return def
}

// CreateExtendedProduct is the handler for POST /api/product_uploads
func (h *Handlers) CreateExtendedProduct(c *gin.Context) {
	productName := c.PostForm("productName")
	category := c.PostForm("category")
	price := formFloat(c, "price")

	if productName == "" || category == "" || price == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Product name, category, and price are required",
		})
		return
	}

	discount := formIntDefault(c, "discount", 0)
	finalPrice := formFloatDefault(c, "finalPrice", *price-*price*float64(discount)/100)

	var imageURL, imagePath *string
	if _, err := c.FormFile("image"); err == nil {
		filename, err := h.saveUploadedImage(c, "image", h.extendedUploadsDir())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid image file"})
			return
		}
		url := h.Cfg.BaseURL + "/uploads/products/" + filename
		imageURL, imagePath = &url, &filename
	}

	productSlug := slug.Make(productName)

	res, err := h.DB.Exec(`
		INSERT INTO products_extended (
			productName, slug, brand, category, description, price, discount, finalPrice,
			quantity, quantityUnit, rating, moq, warranty, color,
			imageUrl, imagePath,
			cementType, cementGrade, settingTime, compressiveStrength,
			brickType, brickSize, weight,
			materialType, thickness, density, application,
			steelType, diameter, steelGrade, yieldStrength,
			plumbingType, material, pressureRating,
			interiorType, finishType, coverage, installation,
			status, createdBy
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		productName,
		productSlug,
		formStr(c, "brand"),
		category,
		formStr(c, "description"),
		*price,
		discount,
		finalPrice,
		formIntDefault(c, "quantity", 1),
		orDefault(formStr(c, "quantityUnit"), "piece"),
		formFloatDefault(c, "rating", 0),
		formIntDefault(c, "moq", 1),
		formIntDefault(c, "warranty", 0),
		formStr(c, "color"),
		imageURL,
		imagePath,
		formStr(c, "cementType"),
		formStr(c, "cementGrade", "grade"),
		formInt(c, "settingTime"),
		formFloat(c, "compressiveStrength"),
		formStr(c, "brickType"),
		formStr(c, "brickSize", "size"),
		formFloat(c, "weight"),
		formStr(c, "materialType"),
		formInt(c, "thickness"),
		formInt(c, "density"),
		formStr(c, "application"),
		formStr(c, "steelType"),
		formFloat(c, "diameter"),
		formStr(c, "steelGrade"),
		formInt(c, "yieldStrength"),
		formStr(c, "plumbingType"),
		formStr(c, "material"),
		formInt(c, "pressureRating"),
		formStr(c, "interiorType"),
		formStr(c, "finishType"),
		formFloat(c, "coverage"),
		formStr(c, "installation"),
		"active",
		"admin")
	if err != nil {
		if imagePath != nil {
			removeStoredImage(h.extendedUploadsDir(), *imagePath)
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to save product to database",
		})
		return
	}
	productID, _ := res.LastInsertId()

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Product uploaded successfully",
		"productId": productID,
		"product": gin.H{
			"id":          productID,
			"productName": productName,
			"slug":        productSlug,
			"category":    category,
			"price":       finalPrice,
			"imageUrl":    imageURL,
		},
	})
}

// ListExtendedProducts is the handler for GET /api/product_uploads
func (h *Handlers) ListExtendedProducts(c *gin.Context) {
	status := c.DefaultQuery("status", "active")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid limit"})
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid offset"})
		return
	}

	query := "SELECT " + extendedProductColumns + " FROM products_extended WHERE status = ?"
	args := []any{status}
	if category := c.Query("category"); category != "" {
		query += " AND category = ?"
		args = append(args, category)
	}
	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	products, err := h.queryExtendedProducts(query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "total": len(products), "products": products})
}

// GetExtendedProductsByCategory is the handler for GET /api/product_uploads/category/:category
func (h *Handlers) GetExtendedProductsByCategory(c *gin.Context) {
	category := c.Param("category")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid limit"})
		return
	}

	products, err := h.queryExtendedProducts(
		"SELECT "+extendedProductColumns+" FROM products_extended WHERE category = ? AND status = ? ORDER BY created_at DESC LIMIT ?",
		category, "active", limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"category": category,
		"total":    len(products),
		"products": products,
	})
}

// GetExtendedProduct is the handler for GET /api/product_uploads/:id
func (h *Handlers) GetExtendedProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product ID"})
		return
	}

	row := h.DB.QueryRow("SELECT "+extendedProductColumns+" FROM products_extended WHERE id = ? LIMIT 1", id)
	p, err := scanExtendedProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": p})
}

// UpdateExtendedProduct is the handler for PUT /api/product_uploads/:id
// A replacement image deletes the previously stored file.
func (h *Handlers) UpdateExtendedProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product ID"})
		return
	}

	var oldImageURL, oldImagePath sql.NullString
	err = h.DB.QueryRow("SELECT imageUrl, imagePath FROM products_extended WHERE id = ?", id).
		Scan(&oldImageURL, &oldImagePath)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch product"})
		return
	}

	price := formFloatDefault(c, "price", 0)
	discount := formIntDefault(c, "discount", 0)
	finalPrice := formFloatDefault(c, "finalPrice", price-price*float64(discount)/100)

	var imageURL, imagePath *string
	if oldImageURL.Valid {
		imageURL = &oldImageURL.String
	}
	if oldImagePath.Valid {
		imagePath = &oldImagePath.String
	}
	newUpload := false
	if _, err := c.FormFile("image"); err == nil {
		filename, err := h.saveUploadedImage(c, "image", h.extendedUploadsDir())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid image file"})
			return
		}
		if oldImagePath.Valid {
			removeStoredImage(h.extendedUploadsDir(), oldImagePath.String)
		}
		url := h.Cfg.BaseURL + "/uploads/products/" + filename
		imageURL, imagePath = &url, &filename
		newUpload = true
	}

	_, err = h.DB.Exec(`
		UPDATE products_extended SET
			productName = ?, slug = ?, brand = ?, category = ?, description = ?,
			price = ?, discount = ?, finalPrice = ?, quantity = ?, quantityUnit = ?,
			rating = ?, moq = ?, warranty = ?, color = ?, imageUrl = ?, imagePath = ?,
			cementType = ?, cementGrade = ?, settingTime = ?, compressiveStrength = ?,
			brickType = ?, brickSize = ?, weight = ?,
			materialType = ?, thickness = ?, density = ?, application = ?,
			steelType = ?, diameter = ?, steelGrade = ?, yieldStrength = ?,
			plumbingType = ?, material = ?, pressureRating = ?,
			interiorType = ?, finishType = ?, coverage = ?, installation = ?,
			status = ?
		WHERE id = ?`,
		c.PostForm("productName"),
		slug.Make(c.PostForm("productName")),
		formStr(c, "brand"),
		c.PostForm("category"),
		formStr(c, "description"),
		price,
		discount,
		finalPrice,
		formIntDefault(c, "quantity", 1),
		orDefault(formStr(c, "quantityUnit"), "piece"),
		formFloatDefault(c, "rating", 0),
		formIntDefault(c, "moq", 1),
		formIntDefault(c, "warranty", 0),
		formStr(c, "color"),
		imageURL,
		imagePath,
		formStr(c, "cementType"),
		formStr(c, "cementGrade", "grade"),
		formInt(c, "settingTime"),
		formFloat(c, "compressiveStrength"),
		formStr(c, "brickType"),
		formStr(c, "brickSize", "size"),
		formFloat(c, "weight"),
		formStr(c, "materialType"),
		formInt(c, "thickness"),
		formInt(c, "density"),
		formStr(c, "application"),
		formStr(c, "steelType"),
		formFloat(c, "diameter"),
		formStr(c, "steelGrade"),
		formInt(c, "yieldStrength"),
		formStr(c, "plumbingType"),
		formStr(c, "material"),
		formInt(c, "pressureRating"),
		formStr(c, "interiorType"),
		formStr(c, "finishType"),
		formFloat(c, "coverage"),
		formStr(c, "installation"),
		orDefault(formStr(c, "status"), "active"),
		id)
	if err != nil {
		if newUpload && imagePath != nil {
			removeStoredImage(h.extendedUploadsDir(), *imagePath)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Product updated successfully",
		"productId": id,
	})
}

// DeleteExtendedProduct is the handler for DELETE /api/product_uploads/:id
func (h *Handlers) DeleteExtendedProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product ID"})
		return
	}

	var imagePath sql.NullString
	err = h.DB.QueryRow("SELECT imagePath FROM products_extended WHERE id = ?", id).Scan(&imagePath)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Database error"})
		return
	}

	if _, err := h.DB.Exec("DELETE FROM products_extended WHERE id = ?", id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete product"})
		return
	}

	if imagePath.Valid {
		removeStoredImage(h.extendedUploadsDir(), imagePath.String)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
}

func (h *Handlers) queryExtendedProducts(query string, args ...any) ([]models.ExtendedProduct, error) {
	rows, err := h.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.ExtendedProduct{}
	for rows.Next() {
		p, err := scanExtendedProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func scanExtendedProduct(row rowScanner) (models.ExtendedProduct, error) {
	var p models.ExtendedProduct
	var (
		brand, description, quantityUnit, color, imageURL, imagePath  sql.NullString
		cementType, cementGrade, brickType, brickSize                 sql.NullString
		materialType, application, steelType, steelGrade              sql.NullString
		plumbingType, material, interiorType, finishType, installType sql.NullString
		createdBy                                                     sql.NullString
		finalPrice, compressive, weight, diameter, coverage           sql.NullFloat64
		settingTime, thickness, density, yieldStrength, pressure      sql.NullInt64
		sellerID                                                      sql.NullInt64
	)

	err := row.Scan(
		&p.ID, &p.ProductName, &p.Slug, &brand, &p.Category, &description, &p.Price, &p.Discount, &finalPrice,
		&p.Quantity, &quantityUnit, &p.Rating, &p.MOQ, &p.Warranty, &color, &imageURL, &imagePath,
		&cementType, &cementGrade, &settingTime, &compressive,
		&brickType, &brickSize, &weight,
		&materialType, &thickness, &density, &application,
		&steelType, &diameter, &steelGrade, &yieldStrength,
		&plumbingType, &material, &pressure,
		&interiorType, &finishType, &coverage, &installType,
		&p.CreatedAt, &p.UpdatedAt, &p.Status, &createdBy, &sellerID,
	)
	if err != nil {
		return p, err
	}

	p.Brand = nullStr(brand)
	p.Description = nullStr(description)
	if finalPrice.Valid {
		p.FinalPrice = finalPrice.Float64
	}
	p.QuantityUnit = nullStr(quantityUnit)
	p.Color = nullStr(color)
	p.ImageURL = nullStr(imageURL)
	p.ImagePath = nullStr(imagePath)
	p.CementType = nullStr(cementType)
	p.CementGrade = nullStr(cementGrade)
	p.SettingTime = nullInt(settingTime)
	p.CompressiveStrength = nullFloat(compressive)
	p.BrickType = nullStr(brickType)
	p.BrickSize = nullStr(brickSize)
	p.Weight = nullFloat(weight)
	p.MaterialType = nullStr(materialType)
	p.Thickness = nullInt(thickness)
	p.Density = nullInt(density)
	p.Application = nullStr(application)
	p.SteelType = nullStr(steelType)
	p.Diameter = nullFloat(diameter)
	p.SteelGrade = nullStr(steelGrade)
	p.YieldStrength = nullInt(yieldStrength)
	p.PlumbingType = nullStr(plumbingType)
	p.Material = nullStr(material)
	p.PressureRating = nullInt(pressure)
	p.InteriorType = nullStr(interiorType)
	p.FinishType = nullStr(finishType)
	p.Coverage = nullFloat(coverage)
	p.Installation = nullStr(installType)
	p.CreatedBy = nullStr(createdBy)
	if sellerID.Valid {
		p.SellerID = &sellerID.Int64
	}
	return p, nil
}

func nullStr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

func orDefault(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}
