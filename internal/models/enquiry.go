package models

import "time"

// ProductCategories is the closed set of categories the enquiry form
// accepts. The validator rejects anything outside it.
var ProductCategories = []string{
	"submersible-pumps",
	"monoblock-pumps",
	"borewell-pumps",
	"agriculture-pumps",
	"industrial-pumps",
}

// ProductEnquiry represents a stored product enquiry. Message is a pointer
// so an enquiry submitted without one stays distinguishable from an empty
// message.
type ProductEnquiry struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Company         string    `json:"company,omitempty"`
	ProductCategory string    `json:"productCategory"`
	Quantity        string    `json:"quantity,omitempty"`
	Message         *string   `json:"message"`
	SubmittedAt     time.Time `json:"submittedAt"`
}

// EnquiryInput is the payload accepted by POST /api/enquiry. Company,
// quantity and message are optional.
type EnquiryInput struct {
	Name            string  `json:"name" validate:"required,min=2"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           string  `json:"phone" validate:"required,min=10"`
	Company         string  `json:"company"`
	ProductCategory string  `json:"productCategory" validate:"required,oneof=submersible-pumps monoblock-pumps borewell-pumps agriculture-pumps industrial-pumps"`
	Quantity        string  `json:"quantity"`
	Message         *string `json:"message"`
}
