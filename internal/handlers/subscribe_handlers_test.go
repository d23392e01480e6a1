package handlers

import (
	"net/http"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subscribeRouter(h *Handlers) *gin.Engine {
	r := gin.New()
	r.POST("/api/subscribe", h.Subscribe)
	return r
}

func TestSubscribeStoresEmail(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO newsletter_subscriptions (email) VALUES (?)")).
		WithArgs("asha@example.com").
		WillReturnResult(sqlmock.NewResult(1, 1))

	w := performJSON(t, subscribeRouter(h), http.MethodPost, "/api/subscribe", gin.H{
		"email": "asha@example.com",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "sent", body["emailStatus"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscribeDuplicateConflicts(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO newsletter_subscriptions (email) VALUES (?)")).
		WithArgs("asha@example.com").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	w := performJSON(t, subscribeRouter(h), http.MethodPost, "/api/subscribe", gin.H{
		"email": "asha@example.com",
	})

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Email already subscribed.", decodeBody(t, w)["error"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscribeRequiresEmail(t *testing.T) {
	h, mock := newTestHandlers(t)

	w := performJSON(t, subscribeRouter(h), http.MethodPost, "/api/subscribe", gin.H{})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
