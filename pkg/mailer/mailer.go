package mailer

import (
	"errors"
	"fmt"
	"log"

	mail "github.com/wneessen/go-mail"

	"bajrangpumps/internal/models"
)

// ErrNotConfigured is returned when SMTP credentials are absent. Callers
// treat it as a reported, non-fatal outcome.
var ErrNotConfigured = errors.New("mailer is not configured")

// Config holds SMTP connection details for the notification mailbox.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// Mailer sends a notification email to the sales mailbox for each stored
// submission. One attempt per submission, no retry.
type Mailer struct {
	cfg Config
}

// New creates a new Mailer.
func New(cfg Config) *Mailer {
	return &Mailer{cfg: cfg}
}

// Enabled reports whether the mailer has everything it needs to send.
func (m *Mailer) Enabled() bool {
	return m.cfg.Host != "" && m.cfg.Username != "" && m.cfg.Password != "" && m.cfg.To != ""
}

// SendContactNotification emails a summary of a contact form submission.
func (m *Mailer) SendContactNotification(sub *models.ContactSubmission) error {
	if !m.Enabled() {
		log.Printf("[MAILER] SMTP not configured, skipping contact notification for %s", sub.ID)
		return ErrNotConfigured
	}

	subject := fmt.Sprintf("New Contact Form Submission from %s", sub.Name)
	submitted := models.FormatSubmittedAt(sub.SubmittedAt)

	textBody := fmt.Sprintf(`New Contact Form Submission

Name: %s
Email: %s
Phone: %s

Message:
%s

Submitted on: %s
Submission ID: %s`, sub.Name, sub.Email, sub.Phone, sub.Message, submitted, sub.ID)

	htmlBody := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2563eb; border-bottom: 2px solid #2563eb; padding-bottom: 10px;">New Contact Form Submission</h2>
  <p><strong>Name:</strong> %s</p>
  <p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
  <p><strong>Phone:</strong> %s</p>
  <div style="background-color: #f3f4f6; padding: 15px; border-radius: 5px;">
    <p style="white-space: pre-wrap;">%s</p>
  </div>
  <p style="color: #6b7280; font-size: 12px;">Submitted on %s &middot; ID %s</p>
</div>`, sub.Name, sub.Email, sub.Email, sub.Phone, sub.Message, submitted, sub.ID)

	return m.send(subject, htmlBody, textBody)
}

// SendEnquiryNotification emails a summary of a product enquiry. The subject
// line carries the selected category so the sales team can triage from the
// inbox list alone.
func (m *Mailer) SendEnquiryNotification(enq *models.ProductEnquiry) error {
	if !m.Enabled() {
		log.Printf("[MAILER] SMTP not configured, skipping enquiry notification for %s", enq.ID)
		return ErrNotConfigured
	}

	subject := fmt.Sprintf("New Product Enquiry from %s - %s", enq.Name, enq.ProductCategory)
	submitted := models.FormatSubmittedAt(enq.SubmittedAt)

	company := "Not provided"
	if enq.Company != "" {
		company = enq.Company
	}
	quantity := "Not provided"
	if enq.Quantity != "" {
		quantity = enq.Quantity
	}
	message := ""
	if enq.Message != nil {
		message = *enq.Message
	}

	textBody := fmt.Sprintf(`New Product Enquiry

Name: %s
Email: %s
Phone: %s
Company: %s

Product Category: %s
Quantity: %s

Message:
%s

Submitted on: %s
Enquiry ID: %s`, enq.Name, enq.Email, enq.Phone, company, enq.ProductCategory, quantity, message, submitted, enq.ID)

	htmlBody := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2563eb; border-bottom: 2px solid #2563eb; padding-bottom: 10px;">New Product Enquiry</h2>
  <p><strong>Name:</strong> %s</p>
  <p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
  <p><strong>Phone:</strong> %s</p>
  <p><strong>Company:</strong> %s</p>
  <div style="background-color: #eff6ff; padding: 15px; border-radius: 5px; border-left: 4px solid #2563eb;">
    <p><strong>Product Category:</strong> %s</p>
    <p><strong>Quantity:</strong> %s</p>
  </div>
  <div style="background-color: #f3f4f6; padding: 15px; border-radius: 5px;">
    <p style="white-space: pre-wrap;">%s</p>
  </div>
  <p style="color: #6b7280; font-size: 12px;">Submitted on %s &middot; ID %s</p>
</div>`, enq.Name, enq.Email, enq.Email, enq.Phone, company, enq.ProductCategory, quantity, message, submitted, enq.ID)

	return m.send(subject, htmlBody, textBody)
}

// send builds a multipart message (plain text with an HTML alternative) and
// delivers it in a single attempt.
func (m *Mailer) send(subject, htmlBody, textBody string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(m.cfg.To); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, textBody)
	msg.AddAlternativeString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
