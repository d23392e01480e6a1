package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hitaishi/buildmart-api/internal/email"
	"github.com/hitaishi/buildmart-api/internal/models"
)

//
// --- Contact Form Handlers ---
//

type contactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitContact is the handler for POST /api/contact_us
// The message is persisted first; the admin notification is best-effort
// and only shows up in the emailStatus field.
func (h *Handlers) SubmitContact(c *gin.Context) {
	var input contactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
		return
	}
	if input.Name == "" || input.Email == "" || input.Subject == "" || input.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	_, err := h.DB.Exec(`
		INSERT INTO contact_messages (name, email, subject, message)
		VALUES (?, ?, ?, ?)`,
		input.Name, input.Email, input.Subject, input.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}

	status := h.notify(c, email.Message{
		To:      h.Cfg.AdminEmail,
		Subject: "New Contact Form: " + input.Subject,
		HTML: fmt.Sprintf(
			"<h3>New Contact Message</h3><p><strong>From:</strong> %s (%s)</p>"+
				"<p><strong>Subject:</strong> %s</p><p><strong>Message:</strong></p><p>%s</p>",
			input.Name, input.Email, input.Subject, input.Message),
	})

	message := "Message sent successfully and email delivered."
	if status == "pending" {
		message = "Message received! Email notification pending."
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "emailStatus": status})
}

// GetContacts is the handler for GET /api/contact_us
func (h *Handlers) GetContacts(c *gin.Context) {
	h.listContacts(c, "SELECT id, name, email, subject, message, created_at FROM contact_messages ORDER BY created_at DESC")
}

// GetContactsByEmail is the handler for GET /api/contact_us/:email
func (h *Handlers) GetContactsByEmail(c *gin.Context) {
	h.listContacts(c,
		"SELECT id, name, email, subject, message, created_at FROM contact_messages WHERE email = ? ORDER BY created_at DESC",
		c.Param("email"))
}

func (h *Handlers) listContacts(c *gin.Context, query string, args ...any) {
	rows, err := h.DB.Query(query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch messages"})
		return
	}
	defer rows.Close()

	messages := []models.ContactMessage{}
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch messages"})
			return
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch messages"})
		return
	}

	c.JSON(http.StatusOK, messages)
}
