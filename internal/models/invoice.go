package models

import "time"

// Invoice statuses.
const (
	InvoicePending = "pendiente"
	InvoicePaid    = "pagado"
)

// InvoiceStatuses lists the values offered by the invoice form.
var InvoiceStatuses = []string{InvoicePending, InvoicePaid}

// Invoice is a hospital bill issued to a patient. The total is entered by
// the user; detail lines are informative.
type Invoice struct {
	ID        int64           `gorm:"column:id_factura;primaryKey" json:"idFactura"`
	PatientID int64           `gorm:"column:id_paciente;index;not null" json:"idPaciente" validate:"required"`
	IssueDate string          `gorm:"column:fecha_emision;size:10;not null" json:"fechaEmision" validate:"required"`
	Total     float64         `gorm:"column:total;not null;default:0" json:"total"`
	Status    string          `gorm:"column:estado;size:20;default:pendiente" json:"estado,omitempty"`
	Details   []InvoiceDetail `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"detalles,omitempty"`
}

func (Invoice) TableName() string { return "facturas" }

func (i *Invoice) SetID(id int64) { i.ID = id }

// IsPaid reports whether the invoice has been settled.
func (i Invoice) IsPaid() bool { return i.Status == InvoicePaid }

// Badge returns the bootstrap badge colour for the invoice status.
func (i Invoice) Badge() string {
	if i.IsPaid() {
		return "bg-success"
	}
	return "bg-warning text-dark"
}

// IssuedAt parses the issue date. Both "2006-01-02" and full RFC 3339
// timestamps are accepted; only the calendar date is kept.
func (i Invoice) IssuedAt() (time.Time, bool) {
	s := i.IssueDate
	if len(s) >= 10 {
		s = s[:10]
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DetailsTotal sums the amounts of the detail lines.
func (i Invoice) DetailsTotal() float64 {
	var total float64
	for _, d := range i.Details {
		total += d.Amount
	}
	return total
}

func NewInvoice() Invoice {
	return Invoice{Status: InvoicePending, Total: 0}
}

// InvoiceDetail is one concept line on an invoice.
type InvoiceDetail struct {
	ID        int64   `gorm:"column:id_detalle_factura;primaryKey" json:"idDetalleFactura"`
	InvoiceID int64   `gorm:"column:id_factura;index;not null" json:"idFactura"`
	Concept   string  `gorm:"column:concepto;size:255;not null" json:"concepto" validate:"required"`
	Amount    float64 `gorm:"column:monto;not null" json:"monto"`
}

func (InvoiceDetail) TableName() string { return "detalle_factura" }
