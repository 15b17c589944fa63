package models

import "time"

// HeroBanner is a promotional banner shown on the storefront carousel.
// Order defines the display sequence; among active banners it is a total
// order, ties broken by the store's default ordering. The column is named
// display_order because "order" is an SQL keyword.
type HeroBanner struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"type:varchar(255)"`
	ImageURL  string    `json:"imageUrl"`
	Link      string    `json:"link"`
	Order     int       `json:"order" gorm:"column:display_order"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
