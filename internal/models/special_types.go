package models

import "time"

// Special is a promoted offer with a disk-stored image (multipart upload).
type Special struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Special       string    `json:"special" db:"special"`
	Description   string    `json:"description" db:"description"`
	Price         float64   `json:"price" db:"price"`
	OriginalPrice float64   `json:"originalPrice" db:"originalPrice"`
	Cuisine       string    `json:"cuisine" db:"cuisine"`
	Offer         string    `json:"offer" db:"offer"`
	Image         string    `json:"image" db:"image"`
	SearchTerms   string    `json:"searchTerms" db:"searchTerms"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
