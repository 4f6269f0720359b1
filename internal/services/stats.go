package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/YamileOchoa/Hospital-System/i18n"
	"github.com/YamileOchoa/Hospital-System/internal/models"
)

// InvoiceSummary holds the presentation aggregates of an invoice list.
type InvoiceSummary struct {
	TotalIncome float64
	Paid        float64
	Pending     float64
	Count       int
	Monthly     []MonthBucket
}

// MonthBucket groups the invoices issued in one calendar month. Any status
// other than paid counts as pending inside a bucket.
type MonthBucket struct {
	Label   string
	Year    int
	Month   time.Month
	Total   float64
	Count   int
	Paid    float64
	Pending float64
}

// Summarize computes the invoice dashboard figures from scratch. Invoices
// with an unparseable issue date count toward the totals but fall in no
// month bucket. Buckets are returned in chronological order.
func Summarize(invoices []models.Invoice, lang string) InvoiceSummary {
	sum := InvoiceSummary{Count: len(invoices)}
	buckets := map[[2]int]*MonthBucket{}
	for _, inv := range invoices {
		sum.TotalIncome += inv.Total
		switch inv.Status {
		case models.InvoicePaid:
			sum.Paid += inv.Total
		case models.InvoicePending:
			sum.Pending += inv.Total
		}

		issued, ok := inv.IssuedAt()
		if !ok {
			continue
		}
		key := [2]int{issued.Year(), int(issued.Month())}
		b, ok := buckets[key]
		if !ok {
			b = &MonthBucket{
				Label: i18n.MonthLabel(lang, issued.Year(), issued.Month()),
				Year:  issued.Year(),
				Month: issued.Month(),
			}
			buckets[key] = b
		}
		b.Total += inv.Total
		b.Count++
		if inv.IsPaid() {
			b.Paid += inv.Total
		} else {
			b.Pending += inv.Total
		}
	}

	sum.Monthly = make([]MonthBucket, 0, len(buckets))
	for _, b := range buckets {
		sum.Monthly = append(sum.Monthly, *b)
	}
	sort.Slice(sum.Monthly, func(i, j int) bool {
		a, b := sum.Monthly[i], sum.Monthly[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Month < b.Month
	})
	return sum
}

// PatientNames indexes "nombres apellidos" by patient id.
func PatientNames(patients []models.Patient) map[int64]string {
	names := make(map[int64]string, len(patients))
	for _, p := range patients {
		names[p.ID] = p.FullName()
	}
	return names
}

// DisplayName resolves the patient shown on an invoice row, falling back
// to the raw reference when the patient is unknown.
func DisplayName(inv models.Invoice, names map[int64]string) string {
	if n, ok := names[inv.PatientID]; ok && n != "" {
		return n
	}
	return fmt.Sprintf("ID: %d", inv.PatientID)
}
