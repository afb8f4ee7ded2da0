package models

import "time"

// ContactSubmission represents a stored contact form submission.
// Records are immutable once created; there is no update or delete path.
type ContactSubmission struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// ContactInput is the payload accepted by POST /api/contact.
type ContactInput struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,min=10"`
	Message string `json:"message" validate:"required,min=10"`
}
