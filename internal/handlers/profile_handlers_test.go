package handlers

import (
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileRouter(h *Handlers) *gin.Engine {
	r := gin.New()
	r.POST("/api/seller-profile", h.RegisterSeller)
	r.GET("/api/seller-profile", h.GetSellers)
	r.POST("/api/buyer-profile", h.RegisterBuyer)
	r.GET("/api/buyer-profile", h.GetBuyers)
	return r
}

func TestRegisterBuyerStoresHashedPassword(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT email FROM seller_profiles WHERE email = ?")).
		WithArgs("asha@example.com", "asha@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"email"}))
	// The stored password is a bcrypt hash, never the plaintext.
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO buyer_profiles")).
		WithArgs("Asha Rao", "asha@example.com", "9876543210", "12 MG Road", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	w := performJSON(t, profileRouter(h), http.MethodPost, "/api/buyer-profile", gin.H{
		"name":     "Asha Rao",
		"email":    "asha@example.com",
		"phone":    "9876543210",
		"address":  "12 MG Road",
		"password": "secret123",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Buyer profile submitted successfully", decodeBody(t, w)["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterBuyerRejectsDuplicateEmail(t *testing.T) {
	h, mock := newTestHandlers(t)

	// The address is already taken as a seller: no insert may happen.
	mock.ExpectQuery(regexp.QuoteMeta("SELECT email FROM seller_profiles WHERE email = ?")).
		WithArgs("asha@example.com", "asha@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"email"}).AddRow("asha@example.com"))

	w := performJSON(t, profileRouter(h), http.MethodPost, "/api/buyer-profile", gin.H{
		"name":     "Asha Rao",
		"email":    "asha@example.com",
		"address":  "12 MG Road",
		"password": "secret123",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already registered as buyer or seller", decodeBody(t, w)["error"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterSellerRequiresFields(t *testing.T) {
	h, mock := newTestHandlers(t)

	w := performJSON(t, profileRouter(h), http.MethodPost, "/api/seller-profile", gin.H{
		"name":  "Bare Seller",
		"email": "seller@example.com",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterSellerSucceeds(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT email FROM seller_profiles WHERE email = ?")).
		WithArgs("seller@example.com", "seller@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"email"}))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO seller_profiles")).
		WithArgs("Ravi Traders", "seller@example.com", "9000000000", "Ravi Traders Pvt Ltd",
			"Plot 4, Industrial Area", "29ABCDE1234F1Z5", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	w := performJSON(t, profileRouter(h), http.MethodPost, "/api/seller-profile", gin.H{
		"name":     "Ravi Traders",
		"email":    "seller@example.com",
		"phone":    "9000000000",
		"company":  "Ravi Traders Pvt Ltd",
		"address":  "Plot 4, Industrial Area",
		"gst":      "29ABCDE1234F1Z5",
		"password": "secret123",
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBuyersOmitsPasswords(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM buyer_profiles")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "address", "created_at"}).
			AddRow(1, "Asha Rao", "asha@example.com", "9876543210", "12 MG Road", time.Now()))

	w := performJSON(t, profileRouter(h), http.MethodGet, "/api/buyer-profile", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	require.NoError(t, mock.ExpectationsWereMet())
}
