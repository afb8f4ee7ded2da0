package services

import (
	"fmt"
	"log"

	"bajrangpumps/internal/models"
	"bajrangpumps/internal/repositories"
)

// Notifier delivers a human-readable notification for a stored submission.
type Notifier interface {
	SendContactNotification(sub *models.ContactSubmission) error
	SendEnquiryNotification(enq *models.ProductEnquiry) error
}

// Exporter appends a stored submission as a row in a tabular backend.
type Exporter interface {
	AppendContact(sub *models.ContactSubmission) error
	AppendEnquiry(enq *models.ProductEnquiry) error
}

// SubmissionService runs the fan-out pipeline for form submissions:
// persist, then notify and export best-effort. Once a record is stored the
// submission counts as accepted; side-channel failures are logged and
// swallowed so the caller never sees them.
type SubmissionService struct {
	contactRepo    repositories.ContactRepository
	enquiryRepo    repositories.EnquiryRepository
	notifier       Notifier
	localExporter  Exporter
	remoteExporter Exporter
}

// NewSubmissionService creates a new SubmissionService. Any of the side
// channels may be nil, in which case that stage is skipped.
func NewSubmissionService(
	contactRepo repositories.ContactRepository,
	enquiryRepo repositories.EnquiryRepository,
	notifier Notifier,
	localExporter Exporter,
	remoteExporter Exporter,
) *SubmissionService {
	return &SubmissionService{
		contactRepo:    contactRepo,
		enquiryRepo:    enquiryRepo,
		notifier:       notifier,
		localExporter:  localExporter,
		remoteExporter: remoteExporter,
	}
}

// SubmitContact stores a validated contact submission and fans it out to
// the side channels. The returned record carries the generated identifier.
func (s *SubmissionService) SubmitContact(input *models.ContactInput) (*models.ContactSubmission, error) {
	sub, err := s.contactRepo.Create(input)
	if err != nil {
		return nil, fmt.Errorf("failed to store contact submission: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.SendContactNotification(sub); err != nil {
			log.Printf("Warning: contact %s notification not delivered: %v", sub.ID, err)
		}
	}
	if s.localExporter != nil {
		if err := s.localExporter.AppendContact(sub); err != nil {
			log.Printf("Warning: contact %s not appended to workbook: %v", sub.ID, err)
		}
	}
	if s.remoteExporter != nil {
		if err := s.remoteExporter.AppendContact(sub); err != nil {
			log.Printf("Warning: contact %s not appended to remote sheet: %v", sub.ID, err)
		}
	}

	return sub, nil
}

// ListContacts returns all stored contact submissions in insertion order.
func (s *SubmissionService) ListContacts() ([]models.ContactSubmission, error) {
	return s.contactRepo.GetAll()
}

// SubmitEnquiry stores a validated product enquiry and fans it out to the
// side channels.
func (s *SubmissionService) SubmitEnquiry(input *models.EnquiryInput) (*models.ProductEnquiry, error) {
	enq, err := s.enquiryRepo.Create(input)
	if err != nil {
		return nil, fmt.Errorf("failed to store enquiry: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.SendEnquiryNotification(enq); err != nil {
			log.Printf("Warning: enquiry %s notification not delivered: %v", enq.ID, err)
		}
	}
	if s.localExporter != nil {
		if err := s.localExporter.AppendEnquiry(enq); err != nil {
			log.Printf("Warning: enquiry %s not appended to workbook: %v", enq.ID, err)
		}
	}
	if s.remoteExporter != nil {
		if err := s.remoteExporter.AppendEnquiry(enq); err != nil {
			log.Printf("Warning: enquiry %s not appended to remote sheet: %v", enq.ID, err)
		}
	}

	return enq, nil
}

// ListEnquiries returns all stored product enquiries in insertion order.
func (s *SubmissionService) ListEnquiries() ([]models.ProductEnquiry, error) {
	return s.enquiryRepo.GetAll()
}
