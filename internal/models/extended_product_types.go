package models

import "time"

// ExtendedProduct carries the category-specific attribute columns of the
// extended catalog. Pointers keep absent attributes out of the JSON and
// let them round-trip as SQL NULLs.
type ExtendedProduct struct {
	ID           int64   `json:"id" db:"id"`
	ProductName  string  `json:"productName" db:"productName"`
	Slug         string  `json:"slug" db:"slug"`
	Brand        *string `json:"brand,omitempty" db:"brand"`
	Category     string  `json:"category" db:"category"`
	Description  *string `json:"description,omitempty" db:"description"`
	Price        float64 `json:"price" db:"price"`
	Discount     int     `json:"discount" db:"discount"`
	FinalPrice   float64 `json:"finalPrice" db:"finalPrice"`
	Quantity     int     `json:"quantity" db:"quantity"`
	QuantityUnit *string `json:"quantityUnit,omitempty" db:"quantityUnit"`
	Rating       float64 `json:"rating" db:"rating"`
	MOQ          int     `json:"moq" db:"moq"`
	Warranty     int     `json:"warranty" db:"warranty"`
	Color        *string `json:"color,omitempty" db:"color"`
	ImageURL     *string `json:"imageUrl" db:"imageUrl"`
	ImagePath    *string `json:"imagePath,omitempty" db:"imagePath"`

	// Cement
	CementType          *string  `json:"cementType,omitempty" db:"cementType"`
	CementGrade         *string  `json:"cementGrade,omitempty" db:"cementGrade"`
	SettingTime         *int     `json:"settingTime,omitempty" db:"settingTime"`
	CompressiveStrength *float64 `json:"compressiveStrength,omitempty" db:"compressiveStrength"`

	// Bricks
	BrickType *string  `json:"brickType,omitempty" db:"brickType"`
	BrickSize *string  `json:"brickSize,omitempty" db:"brickSize"`
	Weight    *float64 `json:"weight,omitempty" db:"weight"`

	// Building materials
	MaterialType *string `json:"materialType,omitempty" db:"materialType"`
	Thickness    *int    `json:"thickness,omitempty" db:"thickness"`
	Density      *int    `json:"density,omitempty" db:"density"`
	Application  *string `json:"application,omitempty" db:"application"`

	// Iron & steel
	SteelType     *string  `json:"steelType,omitempty" db:"steelType"`
	Diameter      *float64 `json:"diameter,omitempty" db:"diameter"`
	SteelGrade    *string  `json:"steelGrade,omitempty" db:"steelGrade"`
	YieldStrength *int     `json:"yieldStrength,omitempty" db:"yieldStrength"`

	// Plumbing
	PlumbingType   *string `json:"plumbingType,omitempty" db:"plumbingType"`
	Material       *string `json:"material,omitempty" db:"material"`
	PressureRating *int    `json:"pressureRating,omitempty" db:"pressureRating"`

	// Home interior
	InteriorType *string  `json:"interiorType,omitempty" db:"interiorType"`
	FinishType   *string  `json:"finishType,omitempty" db:"finishType"`
	Coverage     *float64 `json:"coverage,omitempty" db:"coverage"`
	Installation *string  `json:"installation,omitempty" db:"installation"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
	Status    string    `json:"status" db:"status"`
	CreatedBy *string   `json:"createdBy,omitempty" db:"createdBy"`
	SellerID  *int64    `json:"seller_id,omitempty" db:"seller_id"`
}
