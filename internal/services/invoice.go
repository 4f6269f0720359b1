package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/YamileOchoa/Hospital-System/internal/apiclient"
	"github.com/YamileOchoa/Hospital-System/internal/models"
)

// Document formats.
const (
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
)

var (
	// ErrFormatNotImplemented is returned for docx without contacting the API.
	ErrFormatNotImplemented = errors.New("document format not implemented")
	ErrUnknownFormat        = errors.New("unknown document format")
)

const invoicesPath = "/facturas"

// Document is a downloaded invoice rendition.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

type InvoiceService struct {
	resource[models.Invoice, *models.Invoice]
	api *apiclient.Client
}

func NewInvoiceService(api *apiclient.Client) *InvoiceService {
	return &InvoiceService{
		resource: newResource[models.Invoice](api, invoicesPath),
		api:      api,
	}
}

// DocumentFilename is the name a downloaded invoice is saved under.
func DocumentFilename(id int64, format string) string {
	return fmt.Sprintf("factura_%d.%s", id, format)
}

// Download fetches the invoice rendered in format. Only pdf is served.
func (s *InvoiceService) Download(ctx context.Context, id int64, format string) (*Document, error) {
	switch format {
	case FormatPDF:
	case FormatDOCX:
		return nil, ErrFormatNotImplemented
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	data, ct, err := s.api.GetBytes(ctx, fmt.Sprintf("%s/%d/pdf", invoicesPath, id))
	if err != nil {
		return nil, err
	}
	if ct == "" {
		ct = "application/pdf"
	}
	return &Document{Filename: DocumentFilename(id, format), ContentType: ct, Data: data}, nil
}

func (s *InvoiceService) Details(ctx context.Context, id int64) ([]models.InvoiceDetail, error) {
	var out []models.InvoiceDetail
	if err := s.api.Get(ctx, fmt.Sprintf("%s/%d/detalles", invoicesPath, id), &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.InvoiceDetail{}
	}
	return out, nil
}

func (s *InvoiceService) AddDetail(ctx context.Context, id int64, d *models.InvoiceDetail) (*models.InvoiceDetail, error) {
	d.InvoiceID = id
	var out models.InvoiceDetail
	if err := s.api.Post(ctx, fmt.Sprintf("%s/%d/detalles", invoicesPath, id), d, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetStatus patches only the status of an invoice.
func (s *InvoiceService) SetStatus(ctx context.Context, id int64, status string) (*models.Invoice, error) {
	var out models.Invoice
	body := map[string]string{"estado": status}
	if err := s.api.Patch(ctx, fmt.Sprintf("%s/%d/estado", invoicesPath, id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *InvoiceService) ListByPatient(ctx context.Context, patientID int64) ([]models.Invoice, error) {
	var out []models.Invoice
	if err := s.api.Get(ctx, fmt.Sprintf("%s/paciente/%d", invoicesPath, patientID), &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Invoice{}
	}
	return out, nil
}
