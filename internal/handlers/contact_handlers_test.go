package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contactRouter(h *Handlers) *gin.Engine {
	r := gin.New()
	r.POST("/api/contact_us", h.SubmitContact)
	r.GET("/api/contact_us", h.GetContacts)
	r.GET("/api/contact_us/:email", h.GetContactsByEmail)
	return r
}

func TestSubmitContactPersistsMessage(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO contact_messages")).
		WithArgs("Asha Rao", "asha@example.com", "Bulk order", "Need 500 bags of cement.").
		WillReturnResult(sqlmock.NewResult(1, 1))

	w := performJSON(t, contactRouter(h), http.MethodPost, "/api/contact_us", gin.H{
		"name":    "Asha Rao",
		"email":   "asha@example.com",
		"subject": "Bulk order",
		"message": "Need 500 bags of cement.",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sent", decodeBody(t, w)["emailStatus"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitContactRequiresAllFields(t *testing.T) {
	h, mock := newTestHandlers(t)

	w := performJSON(t, contactRouter(h), http.MethodPost, "/api/contact_us", gin.H{
		"name":  "Asha Rao",
		"email": "asha@example.com",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetContactsByEmailReturnsArray(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM contact_messages WHERE email = ?")).
		WithArgs("asha@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "subject", "message", "created_at"}).
			AddRow(1, "Asha Rao", "asha@example.com", "Bulk order", "Need 500 bags.", time.Now()))

	w := performJSON(t, contactRouter(h), http.MethodGet, "/api/contact_us/asha@example.com", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var messages []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	require.Len(t, messages, 1)
	assert.Equal(t, "Bulk order", messages[0]["subject"])
	require.NoError(t, mock.ExpectationsWereMet())
}
