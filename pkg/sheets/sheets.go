package sheets

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"bajrangpumps/internal/models"
)

// DefaultBaseURL is the Google Sheets API endpoint.
const DefaultBaseURL = "https://sheets.googleapis.com"

const (
	contactRange = "Contact Forms!A:F"
	enquiryRange = "Product Enquiries!A:I"
)

// ErrNotConfigured is returned when the spreadsheet ID or API key is
// absent. Callers treat it as a reported, non-fatal outcome.
var ErrNotConfigured = errors.New("google sheets is not configured")

// Config holds the remote spreadsheet identity and credential.
type Config struct {
	SpreadsheetID string
	APIKey        string
	// BaseURL overrides the API endpoint; tests point it at a local server.
	BaseURL string
}

// Client appends submission rows to a Google spreadsheet through the
// values:append endpoint. An unconfigured client is a safe no-op.
type Client struct {
	cfg Config
}

// NewClient creates a new Client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Client{cfg: cfg}
}

// Enabled reports whether the client has both a spreadsheet and a credential.
func (c *Client) Enabled() bool {
	return c.cfg.SpreadsheetID != "" && c.cfg.APIKey != ""
}

// AppendContact appends a contact submission row to the "Contact Forms"
// sheet, mirroring the local workbook's column order.
func (c *Client) AppendContact(sub *models.ContactSubmission) error {
	return c.append(contactRange, []interface{}{
		sub.ID,
		sub.Name,
		sub.Email,
		sub.Phone,
		sub.Message,
		models.FormatSubmittedAt(sub.SubmittedAt),
	})
}

// AppendEnquiry appends a product enquiry row to the "Product Enquiries"
// sheet.
func (c *Client) AppendEnquiry(enq *models.ProductEnquiry) error {
	message := ""
	if enq.Message != nil {
		message = *enq.Message
	}
	return c.append(enquiryRange, []interface{}{
		enq.ID,
		enq.Name,
		enq.Email,
		enq.Phone,
		enq.Company,
		enq.ProductCategory,
		enq.Quantity,
		message,
		models.FormatSubmittedAt(enq.SubmittedAt),
	})
}

type appendRequest struct {
	Values [][]interface{} `json:"values"`
}

// append issues a single values:append call. Non-success responses come
// back as errors; the caller decides they are non-fatal.
func (c *Client) append(valueRange string, row []interface{}) error {
	if !c.Enabled() {
		return ErrNotConfigured
	}

	uri := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s:append?valueInputOption=RAW&key=%s",
		c.cfg.BaseURL,
		url.PathEscape(c.cfg.SpreadsheetID),
		url.PathEscape(valueRange),
		url.QueryEscape(c.cfg.APIKey),
	)

	agent := fiber.AcquireAgent()
	req := agent.Request()
	req.Header.SetMethod(fiber.MethodPost)
	req.SetRequestURI(uri)
	agent.JSON(appendRequest{Values: [][]interface{}{row}})

	if err := agent.Parse(); err != nil {
		return fmt.Errorf("failed to build sheets request: %w", err)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("sheets append request failed: %w", errs[0])
	}
	if code < 200 || code >= 300 {
		return fmt.Errorf("sheets append returned status %d: %s", code, body)
	}
	return nil
}
