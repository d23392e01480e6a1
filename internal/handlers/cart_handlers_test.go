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

func cartRouter(h *Handlers) *gin.Engine {
	r := gin.New()
	r.POST("/api/cart/add", h.AddToCart)
	r.GET("/api/cart/:cart_key", h.GetCart)
	r.POST("/api/cart/update", h.UpdateCartItem)
	r.POST("/api/cart/remove", h.RemoveCartItem)
	return r
}

func TestAddToCartInsertsNewItem(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM carts WHERE cart_key = ?")).
		WithArgs("key-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cart_items")).
		WithArgs(int64(7), int64(3), "UltraTech Cement", 10.0, 2, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	w := performJSON(t, cartRouter(h), http.MethodPost, "/api/cart/add", gin.H{
		"cart_key":   "key-1",
		"product_id": 3,
		"name":       "UltraTech Cement",
		"price":      10.0,
		"qty":        2,
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Added to cart", body["message"])
	assert.NotContains(t, body, "cart_key")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddToCartMergesDuplicateProduct(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM carts WHERE cart_key = ?")).
		WithArgs("key-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	// MySQL reports two affected rows when the upsert hit an existing item.
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cart_items")).
		WithArgs(int64(7), int64(3), "UltraTech Cement", 10.0, 1, nil).
		WillReturnResult(sqlmock.NewResult(0, 2))

	w := performJSON(t, cartRouter(h), http.MethodPost, "/api/cart/add", gin.H{
		"cart_key":   "key-1",
		"product_id": 3,
		"name":       "UltraTech Cement",
		"price":      10.0,
		"qty":        1,
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Quantity updated", decodeBody(t, w)["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddToCartProvisionsMissingCart(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO carts (cart_key) VALUES (?)")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cart_items")).
		WithArgs(int64(9), int64(5), "TMT Bar", 55.0, 1, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	w := performJSON(t, cartRouter(h), http.MethodPost, "/api/cart/add", gin.H{
		"product_id": 5,
		"name":       "TMT Bar",
		"price":      55.0,
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Added to cart", body["message"])
	assert.NotEmpty(t, body["cart_key"], "a generated cart key should be returned")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddToCartAcceptsNestedProduct(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM carts WHERE cart_key = ?")).
		WithArgs("key-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cart_items")).
		WithArgs(int64(7), int64(8), "Red Bricks", 6.5, 100, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	w := performJSON(t, cartRouter(h), http.MethodPost, "/api/cart/add", gin.H{
		"cart_key": "key-1",
		"product": gin.H{
			"product_id": 8,
			"name":       "Red Bricks",
			"price":      6.5,
			"qty":        100,
		},
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddToCartRequiresProductID(t *testing.T) {
	h, mock := newTestHandlers(t)

	w := performJSON(t, cartRouter(h), http.MethodPost, "/api/cart/add", gin.H{
		"cart_key": "key-1",
		"name":     "No ID",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCartUnknownKeyReturnsEmpty(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE c.cart_key = ?")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "item_id", "product_id", "name", "price", "qty", "image"}))

	w := performJSON(t, cartRouter(h), http.MethodGet, "/api/cart/ghost", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Nil(t, body["cart"])
	assert.Empty(t, body["items"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCartListsItems(t *testing.T) {
	h, mock := newTestHandlers(t)

	rows := sqlmock.NewRows([]string{"id", "item_id", "product_id", "name", "price", "qty", "image"}).
		AddRow(7, 1, 3, "UltraTech Cement", 10.0, 2, "cement.png").
		AddRow(7, 2, 5, "TMT Bar", 55.0, 1, nil)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE c.cart_key = ?")).
		WithArgs("key-1").
		WillReturnRows(rows)

	w := performJSON(t, cartRouter(h), http.MethodGet, "/api/cart/key-1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	items, ok := body["items"].([]any)
	require.True(t, ok)
	assert.Len(t, items, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCartItemScopedToCartKey(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE cart_items ci")).
		WithArgs(4, "key-1", int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := performJSON(t, cartRouter(h), http.MethodPost, "/api/cart/update", gin.H{
		"cart_key": "key-1",
		"item_id":  2,
		"qty":      4,
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveCartItemIgnoresForeignCart(t *testing.T) {
	h, mock := newTestHandlers(t)

	// Item 2 belongs to another cart: the join matches nothing, which is
	// still a successful request.
	mock.ExpectExec(regexp.QuoteMeta("DELETE ci FROM cart_items ci")).
		WithArgs("other-cart", int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := performJSON(t, cartRouter(h), http.MethodPost, "/api/cart/remove", gin.H{
		"cart_key": "other-cart",
		"item_id":  2,
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Removed", decodeBody(t, w)["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}
