package repositories_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"bajrangpumps/internal/models"
	"bajrangpumps/internal/repositories"
)

func TestMemoryContactRepository_CreateAssignsUniqueIDs(t *testing.T) {
	repo := repositories.NewMemoryContactRepository()

	seen := make(map[string]bool)
	for i := 0; i < 25; i++ {
		sub, err := repo.Create(&models.ContactInput{
			Name:    fmt.Sprintf("Customer %d", i),
			Email:   fmt.Sprintf("customer%d@example.com", i),
			Phone:   "9876543210",
			Message: "Need a quote for a submersible pump",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, sub.ID)
		assert.False(t, seen[sub.ID], "ID %s was assigned twice", sub.ID)
		seen[sub.ID] = true
		assert.False(t, sub.SubmittedAt.IsZero())
	}
}

func TestMemoryContactRepository_GetAllPreservesInsertionOrder(t *testing.T) {
	repo := repositories.NewMemoryContactRepository()

	var ids []string
	for i := 0; i < 10; i++ {
		sub, err := repo.Create(&models.ContactInput{
			Name:    fmt.Sprintf("Customer %d", i),
			Email:   "customer@example.com",
			Phone:   "9876543210",
			Message: "Interested in agriculture pumps",
		})
		assert.NoError(t, err)
		ids = append(ids, sub.ID)
	}

	list, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, list, 10)
	for i, sub := range list {
		assert.Equal(t, ids[i], sub.ID)
	}

	// Repeated reads with no intervening writes return the same list.
	again, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Equal(t, list, again)
}

func TestMemoryContactRepository_ConcurrentCreates(t *testing.T) {
	repo := repositories.NewMemoryContactRepository()

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := repo.Create(&models.ContactInput{
				Name:    fmt.Sprintf("Concurrent %d", i),
				Email:   "concurrent@example.com",
				Phone:   "9876543210",
				Message: "Please send me your product catalogue",
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	list, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, list, n)

	seen := make(map[string]bool)
	for _, sub := range list {
		assert.False(t, seen[sub.ID])
		seen[sub.ID] = true
	}
}

func TestMemoryEnquiryRepository_CreateKeepsOptionalMessageDistinct(t *testing.T) {
	repo := repositories.NewMemoryEnquiryRepository()

	// No message at all.
	withoutMsg, err := repo.Create(&models.EnquiryInput{
		Name:            "Ravi Kumar",
		Email:           "ravi@example.com",
		Phone:           "9876543210",
		ProductCategory: "borewell-pumps",
	})
	assert.NoError(t, err)
	assert.Nil(t, withoutMsg.Message)

	// Explicitly empty message.
	empty := ""
	withEmptyMsg, err := repo.Create(&models.EnquiryInput{
		Name:            "Ravi Kumar",
		Email:           "ravi@example.com",
		Phone:           "9876543210",
		ProductCategory: "borewell-pumps",
		Message:         &empty,
	})
	assert.NoError(t, err)
	assert.NotNil(t, withEmptyMsg.Message)
	assert.Equal(t, "", *withEmptyMsg.Message)

	list, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, withoutMsg.ID, list[0].ID)
	assert.Equal(t, withEmptyMsg.ID, list[1].ID)
}
