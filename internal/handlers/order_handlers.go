package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hitaishi/buildmart-api/internal/models"
)

//
// --- Checkout & Order Handlers ---
//

type checkoutInput struct {
	CartKey      string `json:"cart_key"`
	CustomerName string `json:"customer_name"`
	Email        string `json:"email"`
	Address      string `json:"address"`
}

// Checkout is the handler for POST /api/checkout
// Order creation, item snapshotting and cart clearing run inside one
// transaction: either the order exists with all its items and an empty
// cart, or nothing changed. The cart row itself survives so its key stays
// addressable.
func (h *Handlers) Checkout(c *gin.Context) {
	var input checkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input: " + err.Error()})
		return
	}
	if input.CartKey == "" || input.CustomerName == "" || input.Email == "" || input.Address == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Missing required fields: cart_key, customer_name, email, address",
		})
		return
	}

	tx, err := h.DB.BeginTx(c, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to start transaction"})
		return
	}
	defer tx.Rollback() // Safety net

	var cartID int64
	err = tx.QueryRow("SELECT id FROM carts WHERE cart_key = ?", input.CartKey).Scan(&cartID)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Cart empty or not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Database error"})
		return
	}

	// Same image fallback as the cart listing; prices come from the cart
	// item snapshot here and are never re-read from the live catalog.
	rows, err := tx.Query(`
		SELECT ci.product_id, ci.name, ci.price, ci.qty, COALESCE(ci.image, p.image)
		FROM cart_items ci
		LEFT JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = ?`, cartID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Database error"})
		return
	}
	defer rows.Close()

	var items []models.OrderItem
	var total float64
	for rows.Next() {
		var item models.OrderItem
		var image sql.NullString
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Price, &item.Qty, &image); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Database error"})
			return
		}
		if image.Valid {
			item.Image = &image.String
		}
		total += item.Price * float64(item.Qty)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Database error"})
		return
	}
	rows.Close()

	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Cart is empty"})
		return
	}

	res, err := tx.Exec(`
		INSERT INTO orders (cart_id, customer_name, email, address, total)
		VALUES (?, ?, ?, ?, ?)`,
		cartID, input.CustomerName, input.Email, input.Address, total)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create order"})
		return
	}
	orderID, err := res.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create order"})
		return
	}

	for _, item := range items {
		_, err := tx.Exec(`
			INSERT INTO order_items (order_id, product_id, name, price, qty, image)
			VALUES (?, ?, ?, ?, ?, ?)`,
			orderID, item.ProductID, item.Name, item.Price, item.Qty, item.Image)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save order items"})
			return
		}
	}

	if _, err := tx.Exec("DELETE FROM cart_items WHERE cart_id = ?", cartID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to clear cart"})
		return
	}

	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to commit transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order placed successfully",
		"orderId": orderID,
		"total":   total,
	})
}

// GetOrdersByEmail is the handler for GET /api/orders/:email
func (h *Handlers) GetOrdersByEmail(c *gin.Context) {
	emailAddr := c.Param("email")
	if emailAddr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email required"})
		return
	}

	rows, err := h.DB.Query(`
		SELECT id, customer_name, email, total, status, created_at
		FROM orders WHERE email = ? ORDER BY created_at DESC`, emailAddr)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Database error"})
		return
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.Email, &o.Total, &o.Status, &o.CreatedAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Database error"})
			return
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

// GetOrderDetails is the handler for GET /api/order/:orderId
func (h *Handlers) GetOrderDetails(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil || orderID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid order ID"})
		return
	}

	var o models.Order
	err = h.DB.QueryRow(`
		SELECT id, customer_name, email, address, total, status, created_at
		FROM orders WHERE id = ?`, orderID).
		Scan(&o.ID, &o.CustomerName, &o.Email, &o.Address, &o.Total, &o.Status, &o.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Database error"})
		return
	}

	items, err := h.queryOrderItems(orderID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": o, "items": items})
}

// GetAllOrders is the handler for GET /api/all-orders
// Admin listing: the 50 newest orders, each with its item snapshot.
func (h *Handlers) GetAllOrders(c *gin.Context) {
	rows, err := h.DB.Query(`
		SELECT id, customer_name, email, address, total, status, created_at
		FROM orders ORDER BY created_at DESC LIMIT 50`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Database error"})
		return
	}
	defer rows.Close()

	orders := []models.OrderWithItems{}
	for rows.Next() {
		var o models.OrderWithItems
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.Email, &o.Address, &o.Total, &o.Status, &o.CreatedAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Database error"})
			return
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Database error"})
		return
	}
	rows.Close()

	for i := range orders {
		items, err := h.queryOrderItems(orders[i].ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Database error"})
			return
		}
		orders[i].Items = items
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

func (h *Handlers) queryOrderItems(orderID int64) ([]models.OrderItem, error) {
	rows, err := h.DB.Query(`
		SELECT product_id, name, price, qty, image
		FROM order_items WHERE order_id = ?`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		var image sql.NullString
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Price, &item.Qty, &image); err != nil {
			return nil, err
		}
		if image.Valid {
			item.Image = &image.String
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
