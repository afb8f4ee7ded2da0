package repositories

import (
	"bajrangpumps/internal/models"
)

// ContactRepository defines the interface for contact submission storage.
// Submissions are append-only: there is no update or delete.
type ContactRepository interface {
	Create(input *models.ContactInput) (*models.ContactSubmission, error)
	GetAll() ([]models.ContactSubmission, error)
}
