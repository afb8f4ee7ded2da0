package repositories

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"bajrangpumps/internal/models"
)

// MemoryContactRepository is an in-memory implementation of
// ContactRepository. Records live for the process lifetime only; a restart
// loses them. The order slice preserves insertion order so GetAll is
// reproducible within a run, which a bare map range would not be.
type MemoryContactRepository struct {
	contacts map[string]models.ContactSubmission
	order    []string
	mu       sync.RWMutex
}

// NewMemoryContactRepository creates a new instance of MemoryContactRepository.
func NewMemoryContactRepository() *MemoryContactRepository {
	return &MemoryContactRepository{
		contacts: make(map[string]models.ContactSubmission),
	}
}

// Create stores a validated contact submission under a fresh identifier and
// returns the full record.
func (r *MemoryContactRepository) Create(input *models.ContactInput) (*models.ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub := models.ContactSubmission{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Message:     input.Message,
		SubmittedAt: time.Now(),
	}

	if _, exists := r.contacts[sub.ID]; exists {
		return nil, fmt.Errorf("contact submission with ID %s already exists", sub.ID)
	}
	r.contacts[sub.ID] = sub
	r.order = append(r.order, sub.ID)
	return &sub, nil
}

// GetAll returns all contact submissions in insertion order.
func (r *MemoryContactRepository) GetAll() ([]models.ContactSubmission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.ContactSubmission, 0, len(r.order))
	for _, id := range r.order {
		list = append(list, r.contacts[id])
	}
	return list, nil
}
