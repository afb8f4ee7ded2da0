package repositories

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"bajrangpumps/internal/models"
)

// MemoryEnquiryRepository is an in-memory implementation of EnquiryRepository.
type MemoryEnquiryRepository struct {
	enquiries map[string]models.ProductEnquiry
	order     []string
	mu        sync.RWMutex
}

// NewMemoryEnquiryRepository creates a new instance of MemoryEnquiryRepository.
func NewMemoryEnquiryRepository() *MemoryEnquiryRepository {
	return &MemoryEnquiryRepository{
		enquiries: make(map[string]models.ProductEnquiry),
	}
}

// Create stores a validated product enquiry under a fresh identifier and
// returns the full record.
func (r *MemoryEnquiryRepository) Create(input *models.EnquiryInput) (*models.ProductEnquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	enq := models.ProductEnquiry{
		ID:              uuid.New().String(),
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		Company:         input.Company,
		ProductCategory: input.ProductCategory,
		Quantity:        input.Quantity,
		Message:         input.Message,
		SubmittedAt:     time.Now(),
	}

	if _, exists := r.enquiries[enq.ID]; exists {
		return nil, fmt.Errorf("enquiry with ID %s already exists", enq.ID)
	}
	r.enquiries[enq.ID] = enq
	r.order = append(r.order, enq.ID)
	return &enq, nil
}

// GetAll returns all product enquiries in insertion order.
func (r *MemoryEnquiryRepository) GetAll() ([]models.ProductEnquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.ProductEnquiry, 0, len(r.order))
	for _, id := range r.order {
		list = append(list, r.enquiries[id])
	}
	return list, nil
}
