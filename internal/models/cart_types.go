package models

import "time"

// Cart is addressed by clients exclusively through its opaque cart_key;
// the numeric id never leaves the server except inside cart payloads.
type Cart struct {
	ID        int64     `json:"id" db:"id"`
	CartKey   string    `json:"cart_key" db:"cart_key"`
	CreatedAt time.Time `json:"-" db:"created_at"`
}

// CartItem rows are unique per (cart_id, product_id); adding the same
// product again increments qty through an upsert instead of inserting.
type CartItem struct {
	ID        int64   `json:"id" db:"id"`
	CartID    int64   `json:"-" db:"cart_id"`
	ProductID int64   `json:"product_id" db:"product_id"`
	Name      string  `json:"name" db:"name"`
	Price     float64 `json:"price" db:"price"`
	Qty       int     `json:"qty" db:"qty"`
	Image     *string `json:"image" db:"image"`
}
