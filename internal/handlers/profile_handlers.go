package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hitaishi/buildmart-api/internal/email"
	"github.com/hitaishi/buildmart-api/internal/models"
)

//
// --- Registration Handlers ---
//

type sellerRegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	Address  string `json:"address"`
	GST      string `json:"gst"`
	Password string `json:"password"`
}

type buyerRegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

// emailRegistered reports whether the address exists in either profile
// table. The cross-table rule cannot be a single-table constraint, so both
// tables are consulted in one statement.
func (h *Handlers) emailRegistered(emailAddr string) (bool, error) {
	rows, err := h.DB.Query(`
		SELECT email FROM seller_profiles WHERE email = ?
		UNION
		SELECT email FROM buyer_profiles WHERE email = ?`,
		emailAddr, emailAddr)
	if err != nil {
		return false, err
	}
	defer rows.Close()
	return rows.Next(), rows.Err()
}

// RegisterSeller is the handler for POST /api/seller-profile
func (h *Handlers) RegisterSeller(c *gin.Context) {
	var input sellerRegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if input.Name == "" || input.Email == "" || input.Password == "" || input.Address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all required fields (Name, Email, Password, Address)"})
		return
	}

	taken, err := h.emailRegistered(input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if taken {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered as buyer or seller"})
		return
	}

	var password models.Password
	if err := password.Set(input.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	_, err = h.DB.Exec(`
		INSERT INTO seller_profiles (name, email, phone, company, address, gst, password)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		input.Name, input.Email, input.Phone, input.Company, input.Address, input.GST, password.Hash)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error inserting seller profile"})
		return
	}

	log.Printf("Seller registered successfully: %s", input.Email)
	h.sendWelcomeEmail(c, input.Email, input.Name, "seller")

	c.JSON(http.StatusOK, gin.H{"message": "Seller profile submitted successfully"})
}

// RegisterBuyer is the handler for POST /api/buyer-profile
func (h *Handlers) RegisterBuyer(c *gin.Context) {
	var input buyerRegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if input.Name == "" || input.Email == "" || input.Password == "" || input.Address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all required fields (Name, Email, Password, Address)"})
		return
	}

	taken, err := h.emailRegistered(input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if taken {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered as buyer or seller"})
		return
	}

	var password models.Password
	if err := password.Set(input.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	_, err = h.DB.Exec(`
		INSERT INTO buyer_profiles (name, email, phone, address, password)
		VALUES (?, ?, ?, ?, ?)`,
		input.Name, input.Email, input.Phone, input.Address, password.Hash)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error inserting buyer profile"})
		return
	}

	log.Printf("Buyer registered successfully: %s", input.Email)
	h.sendWelcomeEmail(c, input.Email, input.Name, "buyer")

	c.JSON(http.StatusOK, gin.H{"message": "Buyer profile submitted successfully"})
}

func (h *Handlers) sendWelcomeEmail(c *gin.Context, to, name, role string) {
	h.notify(c, email.Message{
		To:      to,
		Subject: fmt.Sprintf("Welcome to the Hitaishi %s platform", role),
		HTML: fmt.Sprintf(
			"<p>Hello %s,</p><p>Your %s registration is successful!</p>"+
				"<p>Thank you for joining Hitaishi Constructions. You can now log in with your email and password.</p>",
			name, role),
	})
}

// GetSellers is the handler for GET /api/seller-profile
// Password hashes never leave the database.
func (h *Handlers) GetSellers(c *gin.Context) {
	rows, err := h.DB.Query(`
		SELECT id, name, email, phone, company, address, gst, created_at
		FROM seller_profiles ORDER BY created_at DESC`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching sellers"})
		return
	}
	defer rows.Close()

	sellers := []models.SellerProfile{}
	for rows.Next() {
		var s models.SellerProfile
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Company, &s.Address, &s.GST, &s.CreatedAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching sellers"})
			return
		}
		sellers = append(sellers, s)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching sellers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "sellers": sellers})
}

// GetBuyers is the handler for GET /api/buyer-profile
func (h *Handlers) GetBuyers(c *gin.Context) {
	rows, err := h.DB.Query(`
		SELECT id, name, email, phone, address, created_at
		FROM buyer_profiles ORDER BY created_at DESC`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching buyers"})
		return
	}
	defer rows.Close()

	buyers := []models.BuyerProfile{}
	for rows.Next() {
		var b models.BuyerProfile
		if err := rows.Scan(&b.ID, &b.Name, &b.Email, &b.Phone, &b.Address, &b.CreatedAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching buyers"})
			return
		}
		buyers = append(buyers, b)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching buyers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "buyers": buyers})
}
