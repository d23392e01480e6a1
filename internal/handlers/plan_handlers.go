package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hitaishi/buildmart-api/internal/email"
	"github.com/hitaishi/buildmart-api/internal/models"
)

//
// --- Plan Submission Handlers ---
//

type planInput struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	Plan     string `json:"plan"`
	Price    string `json:"price"`
}

// SubmitPlan is the handler for POST /api/bm_plans
// Two notifications go out after the insert: one to the admin inbox, one
// confirming to the submitter. Only the submitter's drives emailStatus.
func (h *Handlers) SubmitPlan(c *gin.Context) {
	var input planInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
		return
	}
	if input.FullName == "" || input.Email == "" || input.Phone == "" || input.Plan == "" || input.Price == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All required fields must be filled."})
		return
	}

	_, err := h.DB.Exec(`
		INSERT INTO bm_plans (fullName, email, phone, company, plan, price)
		VALUES (?, ?, ?, ?, ?, ?)`,
		input.FullName, input.Email, input.Phone, input.Company, input.Plan, input.Price)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database insertion error"})
		return
	}

	company := input.Company
	if company == "" {
		company = "N/A"
	}
	h.notify(c, email.Message{
		To:      h.Cfg.AdminEmail,
		Subject: "New Plan Submission: " + input.Plan,
		HTML: fmt.Sprintf(
			"<h3>New Plan Submission Received</h3><p><strong>Name:</strong> %s</p>"+
				"<p><strong>Email:</strong> %s</p><p><strong>Phone:</strong> %s</p>"+
				"<p><strong>Company:</strong> %s</p><p><strong>Selected Plan:</strong> %s</p>"+
				"<p><strong>Price:</strong> %s</p>",
			input.FullName, input.Email, input.Phone, company, input.Plan, input.Price),
	})

	status := h.notify(c, email.Message{
		To:      input.Email,
		Subject: "Your Plan Submission was Successful!",
		HTML: fmt.Sprintf(
			"<h3>Thank you, %s!</h3><p>Your plan submission has been received successfully.</p>"+
				"<p><strong>Selected Plan:</strong> %s</p><p><strong>Price:</strong> %s</p>"+
				"<p>We will get in touch with you shortly.</p><p>Regards,<br>Team Hitaishi</p>",
			input.FullName, input.Plan, input.Price),
	})

	message := "Plan submitted successfully. Confirmation email sent."
	if status == "pending" {
		message = "Plan submitted successfully! Confirmation email pending."
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "emailStatus": status})
}

// GetPlans is the handler for GET /api/bm_plans
func (h *Handlers) GetPlans(c *gin.Context) {
	plans, err := h.queryPlans("SELECT id, fullName, email, phone, company, plan, price, submitted_at FROM bm_plans ORDER BY submitted_at DESC")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching data"})
		return
	}
	c.JSON(http.StatusOK, plans)
}

// GetPlansByEmail is the handler for GET /api/bm_plans/:email
func (h *Handlers) GetPlansByEmail(c *gin.Context) {
	plans, err := h.queryPlans(
		"SELECT id, fullName, email, phone, company, plan, price, submitted_at FROM bm_plans WHERE email = ? ORDER BY submitted_at DESC",
		c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if len(plans) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No plans found for this email."})
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (h *Handlers) queryPlans(query string, args ...any) ([]models.PlanSubmission, error) {
	rows, err := h.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := []models.PlanSubmission{}
	for rows.Next() {
		var p models.PlanSubmission
		if err := rows.Scan(&p.ID, &p.FullName, &p.Email, &p.Phone, &p.Company, &p.Plan, &p.Price, &p.SubmittedAt); err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}
