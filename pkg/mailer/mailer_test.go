package mailer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bajrangpumps/internal/models"
	"bajrangpumps/pkg/mailer"
)

func TestMailer_Enabled(t *testing.T) {
	full := mailer.Config{
		Host:     "smtp.gmail.com",
		Port:     587,
		Username: "sales@example.com",
		Password: "app-password",
		From:     "sales@example.com",
		To:       "owner@example.com",
	}
	assert.True(t, mailer.New(full).Enabled())

	for name, strip := range map[string]func(c mailer.Config) mailer.Config{
		"no host":     func(c mailer.Config) mailer.Config { c.Host = ""; return c },
		"no username": func(c mailer.Config) mailer.Config { c.Username = ""; return c },
		"no password": func(c mailer.Config) mailer.Config { c.Password = ""; return c },
		"no to":       func(c mailer.Config) mailer.Config { c.To = ""; return c },
	} {
		assert.False(t, mailer.New(strip(full)).Enabled(), name)
	}
}

func TestMailer_NotConfiguredIsReportedNotFatal(t *testing.T) {
	m := mailer.New(mailer.Config{})

	sub := &models.ContactSubmission{
		ID:          "contact-1",
		Name:        "Ghanshyam Thorat",
		Email:       "ghanshyam@example.com",
		Phone:       "9876543210",
		Message:     "Please send a quotation",
		SubmittedAt: time.Now(),
	}
	assert.ErrorIs(t, m.SendContactNotification(sub), mailer.ErrNotConfigured)

	enq := &models.ProductEnquiry{
		ID:              "enquiry-1",
		Name:            "Ravi Kumar",
		Email:           "ravi@example.com",
		Phone:           "9876543210",
		ProductCategory: "borewell-pumps",
		SubmittedAt:     time.Now(),
	}
	assert.ErrorIs(t, m.SendEnquiryNotification(enq), mailer.ErrNotConfigured)
}
