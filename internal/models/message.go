package models

import "time"

// Message statuses. The transition is one-way: New -> Read.
const (
	MessageStatusNew  = "New"
	MessageStatusRead = "Read"
)

// DefaultSubject is stamped on messages arriving through the public
// contact form, which has no subject field.
const DefaultSubject = "General Inquiry"

// Message is an inbound contact-form submission. Name, Email and Message
// are never modified after submission; only Status changes.
type Message struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(255)"`
	Email     string    `json:"email" gorm:"type:varchar(255)"`
	Subject   string    `json:"subject" gorm:"type:varchar(255)"`
	Message   string    `json:"message"`
	Status    string    `json:"status" gorm:"type:varchar(32)"`
	CreatedAt time.Time `json:"createdAt"`
}
