// Package invoicepdf renders a hospital invoice as a PDF document.
package invoicepdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/YamileOchoa/Hospital-System/internal/models"
)

const notAvailable = "N/A"

// Render lays out the invoice header, the patient block, the detail table
// and the total.
func Render(inv models.Invoice, patient models.Patient, details []models.InvoiceDetail) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, tr("Factura Hospitalaria"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	line := func(label, value string) {
		pdf.CellFormat(0, 7, tr(label+": "+value), "", 1, "L", false, 0, "")
	}
	line("Factura", fmt.Sprintf("%d", inv.ID))
	line("Paciente", patient.FullName())
	line("DNI", orNA(patient.DNI))
	line("Correo", orNA(patient.Email))
	line("Teléfono", orNA(patient.Phone))
	line("Fecha de Emisión", inv.IssueDate)
	line("Estado", inv.Status)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr("Detalles de la factura:"), "", 1, "L", false, 0, "")
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(130, 8, tr("Concepto"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 8, tr("Monto (S/.)"), "1", 1, "R", true, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, d := range details {
		pdf.CellFormat(130, 8, tr(d.Concept), "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 8, fmt.Sprintf("%.2f", d.Amount), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("Total: S/ %.2f", inv.Total), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice %d: %w", inv.ID, err)
	}
	return buf.Bytes(), nil
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
