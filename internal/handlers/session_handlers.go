package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hitaishi/buildmart-api/internal/models"
)

//
// --- Login & Session Handlers ---
//

// SessionName is the cookie the session rides on.
const SessionName = "bm_session"

type loginInput struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
	UserType   string `json:"userType"`
}

// Login is the handler for POST /api/login
// The identifier may be an email or a phone number. A wrong password is a
// normal "invalid credentials" result, not an error response.
func (h *Handlers) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input"})
		return
	}
	if input.UserType != "buyer" && input.UserType != "seller" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid user type"})
		return
	}

	table := "buyer_profiles"
	if input.UserType == "seller" {
		table = "seller_profiles"
	}

	var user models.SessionUser
	var hash string
	err := h.DB.QueryRow(
		"SELECT id, name, email, password FROM "+table+" WHERE email = ? OR phone = ? LIMIT 1",
		input.Identifier, input.Identifier).
		Scan(&user.ID, &user.Name, &user.Email, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Database error"})
		return
	}

	password := models.Password{Hash: hash}
	match, err := password.Matches(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Database error"})
		return
	}
	if !match {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}
	user.UserType = input.UserType

	session, _ := h.Sessions.Get(c.Request, SessionName)
	session.Values["user_id"] = user.ID
	session.Values["name"] = user.Name
	session.Values["email"] = user.Email
	session.Values["user_type"] = user.UserType
	if err := session.Save(c.Request, c.Writer); err != nil {
		log.Printf("Session save error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Session save failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Login successful", "user": user})
}

// Me is the handler for GET /api/me
func (h *Handlers) Me(c *gin.Context) {
	session, _ := h.Sessions.Get(c.Request, SessionName)
	userID, ok := session.Values["user_id"].(int64)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"success": false, "user": nil})
		return
	}

	name, _ := session.Values["name"].(string)
	emailAddr, _ := session.Values["email"].(string)
	userType, _ := session.Values["user_type"].(string)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": models.SessionUser{
			ID:       userID,
			Name:     name,
			Email:    emailAddr,
			UserType: userType,
		},
	})
}

// Logout is the handler for POST /api/logout
// MaxAge < 0 both drops the server-held values and instructs the client
// to discard the cookie.
func (h *Handlers) Logout(c *gin.Context) {
	session, _ := h.Sessions.Get(c.Request, SessionName)
	session.Options.MaxAge = -1
	for k := range session.Values {
		delete(session.Values, k)
	}
	if err := session.Save(c.Request, c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}
