package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/YamileOchoa/Hospital-System/httpx"
	"github.com/YamileOchoa/Hospital-System/internal/middleware"
	"github.com/YamileOchoa/Hospital-System/internal/models"
	"github.com/YamileOchoa/Hospital-System/internal/services"
	"github.com/YamileOchoa/Hospital-System/validation"
)

const invoicesURL = "/facturas"

type InvoiceHandler struct {
	pages
	svc      *services.InvoiceService
	patients *services.PatientService
}

func NewInvoiceHandler(s Services, delay time.Duration) *InvoiceHandler {
	return &InvoiceHandler{pages: newPages(delay), svc: s.Invoices, patients: s.Patients}
}

// InvoiceRow is one line of the invoice table.
type InvoiceRow struct {
	Invoice models.Invoice
	Patient string
}

// chartData feeds the monthly bar chart and the paid/pending pie.
type chartData struct {
	Labels       []string  `json:"labels"`
	Paid         []float64 `json:"paid"`
	Pending      []float64 `json:"pending"`
	PaidLabel    string    `json:"paidLabel"`
	PendingLabel string    `json:"pendingLabel"`
	TotalPaid    float64   `json:"totalPaid"`
	TotalPending float64   `json:"totalPending"`
}

func newChartData(r *http.Request, sum services.InvoiceSummary) chartData {
	c := chartData{
		Labels:       make([]string, 0, len(sum.Monthly)),
		Paid:         make([]float64, 0, len(sum.Monthly)),
		Pending:      make([]float64, 0, len(sum.Monthly)),
		PaidLabel:    tr(r, "invoices.paid"),
		PendingLabel: tr(r, "invoices.pending"),
		TotalPaid:    sum.Paid,
		TotalPending: sum.Pending,
	}
	for _, b := range sum.Monthly {
		c.Labels = append(c.Labels, b.Label)
		c.Paid = append(c.Paid, b.Paid)
		c.Pending = append(c.Pending, b.Pending)
	}
	return c
}

// List fetches invoices and patients concurrently. A failed patient fetch
// only degrades names to "ID: n"; a failed invoice fetch shows the error
// alone. ?paciente=n narrows the list to one patient.
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter := validation.ParseID(r.URL.Query().Get("paciente"))

	var (
		invoices []models.Invoice
		patients []models.Patient
		g        errgroup.Group
	)
	g.Go(func() error {
		var err error
		if filter > 0 {
			invoices, err = h.svc.ListByPatient(ctx, filter)
		} else {
			invoices, err = h.svc.List(ctx)
		}
		return err
	})
	g.Go(func() error {
		var err error
		if patients, err = h.patients.List(ctx); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("patient names unavailable")
		}
		return nil
	})
	err := g.Wait()

	names := services.PatientNames(patients)
	opts := make([]Option, 0, len(patients))
	for _, p := range patients {
		opts = append(opts, idOption(p.ID, p.FullName()))
	}
	data := map[string]any{
		"ShowCharts":     r.URL.Query().Get("graficos") == "1",
		"Filter":         filter,
		"PatientOptions": opts,
	}
	if err != nil {
		data["Error"] = failure(r, "invoices.load_error", err)
		render(w, r, http.StatusOK, "facturas/index.html", data)
		return
	}

	rows := make([]InvoiceRow, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, InvoiceRow{Invoice: inv, Patient: services.DisplayName(inv, names)})
	}
	sum := services.Summarize(invoices, middleware.LangFrom(r))
	data["Rows"] = rows
	data["Summary"] = sum
	data["Chart"] = newChartData(r, sum)
	render(w, r, http.StatusOK, "facturas/index.html", data)
}

func (h *InvoiceHandler) form(w http.ResponseWriter, r *http.Request, status int, inv models.Invoice, id int64, errs validation.Violations, msg string) {
	render(w, r, status, "facturas/form.html", h.formData(r, inv, id, errs, msg))
}

// formData loads the patient select and, when editing, the detail lines.
func (h *InvoiceHandler) formData(r *http.Request, inv models.Invoice, id int64, errs validation.Violations, msg string) map[string]any {
	ctx := r.Context()
	var (
		patients []models.Patient
		details  []models.InvoiceDetail
		g        errgroup.Group
	)
	g.Go(func() error {
		var err error
		patients, err = h.patients.List(ctx)
		return err
	})
	if id != 0 {
		g.Go(func() error {
			var err error
			details, err = h.svc.Details(ctx, id)
			return err
		})
	}
	if err := g.Wait(); err != nil && msg == "" {
		msg = failure(r, "invoices.one_load_error", err)
	}

	opts := make([]Option, 0, len(patients))
	for _, p := range patients {
		label := p.FullName()
		if label == "" {
			label = fmt.Sprintf("ID: %d", p.ID)
		}
		opts = append(opts, idOption(p.ID, label))
	}
	inv.ID = id
	inv.Details = details
	return map[string]any{
		"Invoice":        inv,
		"Editing":        id != 0,
		"Action":         formAction(invoicesURL, id),
		"PatientOptions": opts,
		"StatusOptions":  translatedOptions(r, "status.", models.InvoiceStatuses),
		"Detail":         models.InvoiceDetail{},
		"Errors":         errs,
		"Error":          msg,
	}
}

func (h *InvoiceHandler) New(w http.ResponseWriter, r *http.Request) {
	h.form(w, r, http.StatusOK, models.NewInvoice(), 0, nil, "")
}

func (h *InvoiceHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	inv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.form(w, r, http.StatusOK, models.NewInvoice(), id, nil, failure(r, "invoices.one_load_error", err))
		return
	}
	h.form(w, r, http.StatusOK, dateInput(*inv), id, nil, "")
}

// dateInput trims the issue date to YYYY-MM-DD for the date input, even
// when the API sends a timestamp.
func dateInput(inv models.Invoice) models.Invoice {
	if len(inv.IssueDate) > 10 {
		inv.IssueDate = inv.IssueDate[:10]
	}
	return inv
}

func invoiceFromForm(r *http.Request) (models.Invoice, validation.Violations) {
	inv := models.Invoice{
		PatientID: validation.ParseID(r.PostFormValue("idPaciente")),
		IssueDate: r.PostFormValue("fechaEmision"),
		Total:     validation.ParseAmount(r.PostFormValue("total")),
		Status:    r.PostFormValue("estado"),
	}
	if inv.Status == "" {
		inv.Status = models.InvoicePending
	}
	v := make(validation.Violations)
	validation.RequiredID("idPaciente", inv.PatientID, v)
	validation.Required("fechaEmision", inv.IssueDate, v)
	validation.Required("total", r.PostFormValue("total"), v)
	return inv, v
}

func downloadURL(id int64, format string) string {
	return fmt.Sprintf("%s/%d/descargar/%s", invoicesURL, id, format)
}

// Create saves the invoice and hands its PDF to the saved page, which
// downloads it before navigating back.
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	inv, v := invoiceFromForm(r)
	if !v.Empty() {
		h.form(w, r, http.StatusUnprocessableEntity, inv, 0, v, "")
		return
	}
	created, err := h.svc.Create(r.Context(), &inv)
	if err != nil {
		h.form(w, r, http.StatusOK, inv, 0, nil, saveFailure(r, "invoices.save_error", err))
		return
	}
	download := ""
	if created.ID != 0 {
		download = downloadURL(created.ID, services.FormatPDF)
	}
	h.saved(w, r, "invoices.created", invoicesURL, download)
}

func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	inv, v := invoiceFromForm(r)
	if !v.Empty() {
		h.form(w, r, http.StatusUnprocessableEntity, inv, id, v, "")
		return
	}
	if _, err := h.svc.Update(r.Context(), id, &inv); err != nil {
		h.form(w, r, http.StatusOK, inv, id, nil, saveFailure(r, "invoices.save_error", err))
		return
	}
	h.saved(w, r, "invoices.updated", invoicesURL, downloadURL(id, services.FormatPDF))
}

func (h *InvoiceHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	confirmDelete(w, r, invoicesURL, "invoices.confirm_delete")
}

func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	performDelete(w, r, invoicesURL, "invoices.delete_error", h.svc.Delete)
}

// Download streams the invoice document as an attachment. Word is not
// available yet: the user goes back to the list with a notice and the API
// is not contacted.
func (h *InvoiceHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	doc, err := h.svc.Download(r.Context(), id, r.PathValue("format"))
	switch {
	case errors.Is(err, services.ErrFormatNotImplemented):
		redirectWithFlash(w, r, middleware.FlashWarning, "invoices.word_unavailable", invoicesURL)
		return
	case errors.Is(err, services.ErrUnknownFormat):
		NotFound(w, r)
		return
	case err != nil:
		failure(r, "invoices.download_error", err)
		redirectWithFlash(w, r, middleware.FlashError, "invoices.download_error", invoicesURL)
		return
	}
	httpx.Attachment(w, doc.Filename, doc.ContentType, doc.Data)
}

// MarkPaid patches the invoice status to pagado.
func (h *InvoiceHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if _, err := h.svc.SetStatus(r.Context(), id, models.InvoicePaid); err != nil {
		failure(r, "invoices.status_error", err)
		redirectWithFlash(w, r, middleware.FlashError, "invoices.status_error", invoicesURL)
		return
	}
	redirectWithFlash(w, r, middleware.FlashSuccess, "invoices.status_updated", invoicesURL)
}

// AddDetail appends a concept line and returns to the edit page. An
// incomplete line re-renders the page with the line errors.
func (h *InvoiceHandler) AddDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	back := formAction(invoicesURL, id)
	d := models.InvoiceDetail{
		Concept: strings.TrimSpace(r.PostFormValue("concepto")),
		Amount:  validation.ParseAmount(r.PostFormValue("monto")),
	}
	v := make(validation.Violations)
	validation.Required("concepto", d.Concept, v)
	validation.Required("monto", r.PostFormValue("monto"), v)
	if !v.Empty() {
		inv, err := h.svc.Get(r.Context(), id)
		if err != nil {
			failure(r, "invoices.one_load_error", err)
			redirectWithFlash(w, r, middleware.FlashError, "invoices.detail_error", back)
			return
		}
		data := h.formData(r, dateInput(*inv), id, nil, "")
		data["Detail"] = d
		data["DetailErrors"] = v
		render(w, r, http.StatusUnprocessableEntity, "facturas/form.html", data)
		return
	}
	if _, err := h.svc.AddDetail(r.Context(), id, &d); err != nil {
		failure(r, "invoices.detail_error", err)
		redirectWithFlash(w, r, middleware.FlashError, "invoices.detail_error", back)
		return
	}
	redirectWithFlash(w, r, middleware.FlashSuccess, "invoices.detail_added", back)
}
