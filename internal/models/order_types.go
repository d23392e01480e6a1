package models

import "time"

type Order struct {
	ID           int64     `json:"id" db:"id"`
	CartID       int64     `json:"cart_id,omitempty" db:"cart_id"`
	CustomerName string    `json:"customer_name" db:"customer_name"`
	Email        string    `json:"email" db:"email"`
	Address      string    `json:"address,omitempty" db:"address"`
	Total        float64   `json:"total" db:"total"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// OrderItem is a point-in-time copy of the cart item taken at checkout.
// Later catalog edits or cart mutations never reach back into it.
type OrderItem struct {
	ID        int64   `json:"id,omitempty" db:"id"`
	OrderID   int64   `json:"-" db:"order_id"`
	ProductID int64   `json:"product_id" db:"product_id"`
	Name      string  `json:"name" db:"name"`
	Price     float64 `json:"price" db:"price"`
	Qty       int     `json:"qty" db:"qty"`
	Image     *string `json:"image" db:"image"`
}

// OrderWithItems is the admin listing shape: an order plus its snapshot.
type OrderWithItems struct {
	Order
	Items []OrderItem `json:"items"`
}
