package models

import "time"

// Product statuses. Status is derived from stock on every write and is
// never accepted from input.
const (
	StatusActive     = "Active"
	StatusOutOfStock = "Out of Stock"
)

// Product represents a catalog item sold by the merchant.
// Price is decimal text exactly as submitted (e.g. "45.50"); the store
// never does arithmetic on it.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(255)"`
	Description string    `json:"description"`
	Price       string    `json:"price" gorm:"type:varchar(32)"`
	Stock       int       `json:"stock"`
	ImageURL    string    `json:"imageUrl"`
	Status      string    `json:"status" gorm:"type:varchar(32)"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
