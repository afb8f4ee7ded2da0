package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"bajrangpumps/internal/models"
	"bajrangpumps/internal/services"
)

// ContactHandler handles HTTP requests for contact form submissions.
type ContactHandler struct {
	service  *services.SubmissionService
	validate *validator.Validate
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *services.SubmissionService) *ContactHandler {
	return &ContactHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the contact routes with the Fiber app.
func (h *ContactHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/contact", h.HandleSubmitContact)
	router.Get("/contacts", h.HandleListContacts)
}

// HandleSubmitContact validates and stores a contact form submission.
func (h *ContactHandler) HandleSubmitContact(c *fiber.Ctx) error {
	var input models.ContactInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(&input); err != nil {
		return validationErrorResponse(c, err)
	}

	sub, err := h.service.SubmitContact(&input)
	if err != nil {
		log.Printf("Error storing contact submission: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Contact form submitted successfully",
		"data":    sub,
	})
}

// HandleListContacts returns all stored contact submissions.
func (h *ContactHandler) HandleListContacts(c *fiber.Ctx) error {
	contacts, err := h.service.ListContacts()
	if err != nil {
		log.Printf("Error listing contact submissions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    contacts,
	})
}
