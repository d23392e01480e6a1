package handlers

import (
	"net/http"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planRouter(h *Handlers) *gin.Engine {
	r := gin.New()
	r.POST("/api/bm_plans", h.SubmitPlan)
	r.GET("/api/bm_plans", h.GetPlans)
	r.GET("/api/bm_plans/:email", h.GetPlansByEmail)
	return r
}

func TestSubmitPlanPersistsAndConfirms(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bm_plans")).
		WithArgs("Asha Rao", "asha@example.com", "9876543210", "", "Premium", "45000").
		WillReturnResult(sqlmock.NewResult(1, 1))

	w := performJSON(t, planRouter(h), http.MethodPost, "/api/bm_plans", gin.H{
		"fullName": "Asha Rao",
		"email":    "asha@example.com",
		"phone":    "9876543210",
		"plan":     "Premium",
		"price":    "45000",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sent", decodeBody(t, w)["emailStatus"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitPlanRequiresFields(t *testing.T) {
	h, mock := newTestHandlers(t)

	w := performJSON(t, planRouter(h), http.MethodPost, "/api/bm_plans", gin.H{
		"fullName": "Asha Rao",
		"email":    "asha@example.com",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPlansByEmailNotFound(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bm_plans WHERE email = ?")).
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "fullName", "email", "phone", "company", "plan", "price", "submitted_at"}))

	w := performJSON(t, planRouter(h), http.MethodGet, "/api/bm_plans/ghost@example.com", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No plans found for this email.", decodeBody(t, w)["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}
