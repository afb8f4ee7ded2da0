package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"bajrangpumps/internal/models"
	"bajrangpumps/internal/services"
)

// EnquiryHandler handles HTTP requests for product enquiries.
type EnquiryHandler struct {
	service  *services.SubmissionService
	validate *validator.Validate
}

// NewEnquiryHandler creates a new EnquiryHandler.
func NewEnquiryHandler(service *services.SubmissionService) *EnquiryHandler {
	return &EnquiryHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the enquiry routes with the Fiber app.
func (h *EnquiryHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/enquiry", h.HandleSubmitEnquiry)
	router.Get("/enquiries", h.HandleListEnquiries)
}

// HandleSubmitEnquiry validates and stores a product enquiry.
func (h *EnquiryHandler) HandleSubmitEnquiry(c *fiber.Ctx) error {
	var input models.EnquiryInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(&input); err != nil {
		return validationErrorResponse(c, err)
	}

	enq, err := h.service.SubmitEnquiry(&input)
	if err != nil {
		log.Printf("Error storing enquiry: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Enquiry submitted successfully. Our sales team will contact you shortly.",
		"data":    enq,
	})
}

// HandleListEnquiries returns all stored product enquiries.
func (h *EnquiryHandler) HandleListEnquiries(c *fiber.Ctx) error {
	enquiries, err := h.service.ListEnquiries()
	if err != nil {
		log.Printf("Error listing enquiries: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    enquiries,
	})
}
