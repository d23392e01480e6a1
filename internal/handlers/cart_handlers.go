package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hitaishi/buildmart-api/internal/models"
)

//
// --- Cart Handlers ---
//

// resolveCartID finds the cart for a key, creating it when missing. When
// no key is supplied at all, a fresh cart with a generated key is
// provisioned. The returned createdKey is non-empty exactly when this call
// created the cart, so callers can surface the new key to the client.
func (h *Handlers) resolveCartID(key string) (cartID int64, createdKey string, err error) {
	if key != "" {
		err = h.DB.QueryRow("SELECT id FROM carts WHERE cart_key = ?", key).Scan(&cartID)
		if err == nil {
			return cartID, "", nil
		}
		if err != sql.ErrNoRows {
			return 0, "", err
		}
		res, insErr := h.DB.Exec("INSERT INTO carts (cart_key) VALUES (?)", key)
		if insErr != nil {
			return 0, "", insErr
		}
		cartID, err = res.LastInsertId()
		return cartID, key, err
	}

	newKey := uuid.New().String()
	res, err := h.DB.Exec("INSERT INTO carts (cart_key) VALUES (?)", newKey)
	if err != nil {
		return 0, "", err
	}
	cartID, err = res.LastInsertId()
	return cartID, newKey, err
}

// CreateCart is the handler for POST /api/cart/create
func (h *Handlers) CreateCart(c *gin.Context) {
	cartKey := uuid.New().String()
	if _, err := h.DB.Exec("INSERT INTO carts (cart_key) VALUES (?)", cartKey); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart_key": cartKey})
}

// cartProductInput is the item payload for cart/add; the client may send
// it flat or nested under "product".
type cartProductInput struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
	Image     *string `json:"image"`
}

type addToCartInput struct {
	CartKey string `json:"cart_key"`
	cartProductInput
	Product *cartProductInput `json:"product"`
}

// AddToCart is the handler for POST /api/cart/add
// Adding a product already in the cart increments its quantity; the
// uniqueness key on (cart_id, product_id) makes the merge a single atomic
// upsert rather than a read-then-write.
func (h *Handlers) AddToCart(c *gin.Context) {
	var input addToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	product := input.cartProductInput
	if input.Product != nil {
		product = *input.Product
	}
	if product.ProductID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id required"})
		return
	}
	if product.Qty <= 0 {
		product.Qty = 1
	}

	cartID, createdKey, err := h.resolveCartID(input.CartKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cart initialization failed"})
		return
	}

	res, err := h.DB.Exec(`
		INSERT INTO cart_items (cart_id, product_id, name, price, qty, image)
		VALUES (?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			qty = qty + VALUES(qty)`,
		cartID, product.ProductID, product.Name, product.Price, product.Qty, product.Image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	// MySQL reports 1 affected row for a fresh insert, 2 for a merge.
	message := "Added to cart"
	if affected, _ := res.RowsAffected(); affected > 1 {
		message = "Quantity updated"
	}

	payload := gin.H{"message": message}
	if createdKey != "" {
		payload["cart_key"] = createdKey
	}
	c.JSON(http.StatusOK, payload)
}

// GetCart is the handler for GET /api/cart/:cart_key
// An unknown key yields an empty item list, not an error.
func (h *Handlers) GetCart(c *gin.Context) {
	key := c.Param("cart_key")

	// Fall back to the catalog image when the cart item carries none.
	rows, err := h.DB.Query(`
		SELECT c.id, ci.id, ci.product_id, ci.name, ci.price, ci.qty, COALESCE(ci.image, p.image)
		FROM carts c
		LEFT JOIN cart_items ci ON ci.cart_id = c.id
		LEFT JOIN products p ON p.id = ci.product_id
		WHERE c.cart_key = ?`, key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	defer rows.Close()

	var cartID int64
	items := []models.CartItem{}
	found := false

	for rows.Next() {
		var itemID, productID sql.NullInt64
		var name, image sql.NullString
		var price sql.NullFloat64
		var qty sql.NullInt64

		if err := rows.Scan(&cartID, &itemID, &productID, &name, &price, &qty, &image); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
			return
		}
		found = true

		if !itemID.Valid {
			continue // cart row matched but has no items
		}
		item := models.CartItem{
			ID:        itemID.Int64,
			ProductID: productID.Int64,
			Name:      name.String,
			Price:     price.Float64,
			Qty:       int(qty.Int64),
		}
		if image.Valid {
			item.Image = &image.String
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}

	if !found {
		c.JSON(http.StatusOK, gin.H{"cart": nil, "items": []models.CartItem{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cart":  models.Cart{ID: cartID, CartKey: key},
		"items": items,
	})
}

type updateCartInput struct {
	CartKey string `json:"cart_key"`
	ItemID  int64  `json:"item_id"`
	Qty     int    `json:"qty"`
}

// UpdateCartItem is the handler for POST /api/cart/update
// The statement is scoped to the addressed cart; an item id belonging to
// another cart matches zero rows, which is not an error.
func (h *Handlers) UpdateCartItem(c *gin.Context) {
	var input updateCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if input.CartKey == "" || input.ItemID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart_key and item_id required"})
		return
	}

	_, err := h.DB.Exec(`
		UPDATE cart_items ci
		JOIN carts c ON ci.cart_id = c.id
		SET ci.qty = ?
		WHERE c.cart_key = ? AND ci.id = ?`,
		input.Qty, input.CartKey, input.ItemID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Updated"})
}

type removeCartInput struct {
	CartKey string `json:"cart_key"`
	ItemID  int64  `json:"item_id"`
}

// RemoveCartItem is the handler for POST /api/cart/remove
// The join guards against deleting an item through another cart's key.
func (h *Handlers) RemoveCartItem(c *gin.Context) {
	var input removeCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if input.CartKey == "" || input.ItemID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart_key and item_id required"})
		return
	}

	_, err := h.DB.Exec(`
		DELETE ci FROM cart_items ci
		JOIN carts c ON ci.cart_id = c.id
		WHERE c.cart_key = ? AND ci.id = ?`,
		input.CartKey, input.ItemID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed"})
}
