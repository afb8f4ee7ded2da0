package excel

import (
	"fmt"
	"os"
	"sync"

	"github.com/xuri/excelize/v2"

	"bajrangpumps/internal/models"
)

const (
	contactSheet = "Contact Forms"
	enquirySheet = "Product Enquiries"
	defaultSheet = "Sheet1"
)

var (
	contactHeaders = []interface{}{"ID", "Name", "Email", "Phone", "Message", "Submitted At"}
	enquiryHeaders = []interface{}{"ID", "Name", "Email", "Phone", "Company", "Product Category", "Quantity", "Message", "Submitted At"}
)

// Exporter appends submissions to a local workbook, one sheet per record
// kind. Every append reads the workbook, adds a row and rewrites the file,
// so a single mutex serializes writers; without it two concurrent
// submissions could interleave and silently drop a row.
type Exporter struct {
	path string
	mu   sync.Mutex
}

// NewExporter creates an Exporter writing to the workbook at path. The file
// is created on first append.
func NewExporter(path string) *Exporter {
	return &Exporter{path: path}
}

// Path returns the workbook location.
func (e *Exporter) Path() string {
	return e.path
}

// AppendContact adds a contact submission row to the "Contact Forms" sheet.
func (e *Exporter) AppendContact(sub *models.ContactSubmission) error {
	row := []interface{}{
		sub.ID,
		sub.Name,
		sub.Email,
		sub.Phone,
		sub.Message,
		models.FormatSubmittedAt(sub.SubmittedAt),
	}
	return e.append(contactSheet, contactHeaders, row)
}

// AppendEnquiry adds a product enquiry row to the "Product Enquiries"
// sheet. Optional fields render as blank cells.
func (e *Exporter) AppendEnquiry(enq *models.ProductEnquiry) error {
	message := ""
	if enq.Message != nil {
		message = *enq.Message
	}
	row := []interface{}{
		enq.ID,
		enq.Name,
		enq.Email,
		enq.Phone,
		enq.Company,
		enq.ProductCategory,
		enq.Quantity,
		message,
		models.FormatSubmittedAt(enq.SubmittedAt),
	}
	return e.append(enquirySheet, enquiryHeaders, row)
}

func (e *Exporter) append(sheet string, headers, row []interface{}) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	f, err := e.open()
	if err != nil {
		return err
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return fmt.Errorf("failed to look up sheet %q: %w", sheet, err)
	}
	if idx == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
		}
		if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
			return fmt.Errorf("failed to write header row: %w", err)
		}
		// A fresh workbook carries an empty default sheet we never use.
		if di, _ := f.GetSheetIndex(defaultSheet); di != -1 {
			_ = f.DeleteSheet(defaultSheet)
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return fmt.Errorf("failed to compute append cell: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &row); err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}

	if err := f.SaveAs(e.path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", e.path, err)
	}
	return nil
}

func (e *Exporter) open() (*excelize.File, error) {
	if _, err := os.Stat(e.path); err == nil {
		f, err := excelize.OpenFile(e.path)
		if err != nil {
			return nil, fmt.Errorf("failed to open workbook %s: %w", e.path, err)
		}
		return f, nil
	}
	return excelize.NewFile(), nil
}
