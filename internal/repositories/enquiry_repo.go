package repositories

import (
	"bajrangpumps/internal/models"
)

// EnquiryRepository defines the interface for product enquiry storage.
type EnquiryRepository interface {
	Create(input *models.EnquiryInput) (*models.ProductEnquiry, error)
	GetAll() ([]models.ProductEnquiry, error)
}
