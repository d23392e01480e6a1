package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"

	"github.com/hitaishi/buildmart-api/internal/email"
)

//
// --- Newsletter Handlers ---
//

// mysqlDuplicateEntry is ER_DUP_ENTRY: a uniqueness constraint fired.
const mysqlDuplicateEntry = 1062

type subscribeInput struct {
	Email string `json:"email"`
}

// Subscribe is the handler for POST /api/subscribe
// The unique index on email makes the duplicate check atomic; a second
// subscription attempt surfaces as a conflict with exactly one row kept.
func (h *Handlers) Subscribe(c *gin.Context) {
	var input subscribeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if input.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required."})
		return
	}

	_, err := h.DB.Exec("INSERT INTO newsletter_subscriptions (email) VALUES (?)", input.Email)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already subscribed."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error."})
		return
	}

	status := h.notify(c, email.Message{
		To:      input.Email,
		Subject: "Thank you for subscribing to Hitaishi Constructions!",
		HTML: "<p>Hello,</p><p>Thank you for subscribing to <strong>Hitaishi Constructions</strong> newsletter!</p>" +
			"<p>You'll now receive regular updates and offers.</p><p>Best Regards,<br>Team Hitaishi</p>",
	})

	message := "Subscribed and confirmation email sent."
	if status == "pending" {
		message = "Subscription saved successfully!"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "emailStatus": status})
}
