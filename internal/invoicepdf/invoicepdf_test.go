package invoicepdf

import (
	"bytes"
	"testing"

	"github.com/YamileOchoa/Hospital-System/internal/models"
)

func TestRender(t *testing.T) {
	inv := models.Invoice{ID: 7, PatientID: 1, IssueDate: "2025-01-15", Total: 150, Status: models.InvoicePaid}
	p := models.Patient{ID: 1, DNI: "12345678", FirstName: "Ana", LastName: "Ruiz"}
	details := []models.InvoiceDetail{{Concept: "Consulta cardiológica", Amount: 100}, {Concept: "Electrocardiograma", Amount: 50}}

	out, err := Render(inv, p, details)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("not a pdf: %q", out[:16])
	}
	if len(out) < 500 {
		t.Fatalf("suspiciously small document: %d bytes", len(out))
	}
}

func TestRenderWithoutDetails(t *testing.T) {
	out, err := Render(models.Invoice{ID: 1}, models.Patient{}, nil)
	if err != nil || len(out) == 0 {
		t.Fatalf("expected a document, got %d bytes err=%v", len(out), err)
	}
	if orNA("") != "N/A" || orNA("x") != "x" {
		t.Fatalf("unexpected placeholder")
	}
}
