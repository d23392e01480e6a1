package models

type Product struct {
	ID       int64   `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	Category *string `json:"category" db:"category"`
	Price    float64 `json:"price" db:"price"`
	Discount int     `json:"discount" db:"discount"`
	Rating   float64 `json:"rating" db:"rating"`
	Image    *string `json:"image" db:"image"`
}
