package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/YamileOchoa/Hospital-System/internal/apiclient"
	"github.com/YamileOchoa/Hospital-System/internal/config"
	"github.com/YamileOchoa/Hospital-System/internal/db"
	"github.com/YamileOchoa/Hospital-System/internal/models"
	"github.com/YamileOchoa/Hospital-System/internal/services"
)

func newTestAPI(t *testing.T) (*echo.Echo, *gorm.DB, *bytes.Buffer) {
	t.Helper()
	cfg := config.DatabaseConfig{Driver: "sqlite", SQLitePath: "file:" + t.Name() + "?mode=memory&cache=shared"}
	conn, err := db.Connect(context.Background(), cfg, false)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Seed(conn); err != nil {
		t.Fatalf("seed: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			sqlDB.Close()
		}
	})
	var logs bytes.Buffer
	return New(conn, zerolog.New(&logs)), conn, &logs
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, rec, &body)
	return body.Message
}

func createPatient(t *testing.T, e *echo.Echo, dni string) models.Patient {
	t.Helper()
	rec := do(e, http.MethodPost, "/api/pacientes", fmt.Sprintf(`{"dni":%q,"nombres":"Ana","apellidos":"Pérez","sexo":"F"}`, dni))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create patient: %d %s", rec.Code, rec.Body.String())
	}
	var p models.Patient
	decodeBody(t, rec, &p)
	return p
}

func TestPatientCreateOpensHistory(t *testing.T) {
	e, _, _ := newTestAPI(t)
	p := createPatient(t, e, "12345678")
	if p.ID == 0 || p.Status != models.StatusActive {
		t.Fatalf("unexpected patient %+v", p)
	}

	rec := do(e, http.MethodGet, fmt.Sprintf("/api/pacientes/%d/historia", p.ID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("history: %d %s", rec.Code, rec.Body.String())
	}
	var h models.ClinicalHistory
	decodeBody(t, rec, &h)
	if h.PatientID != p.ID || h.Observations != models.AutoHistoryNote || h.OpenedOn != time.Now().Format(time.DateOnly) {
		t.Fatalf("unexpected history %+v", h)
	}

	path := fmt.Sprintf("/api/historias/%d/antecedentes", h.ID)
	rec = do(e, http.MethodPost, path, `{"tipo":"alergias","descripcion":"Penicilina"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add antecedent: %d %s", rec.Code, rec.Body.String())
	}
	rec = do(e, http.MethodGet, path, "")
	var list []models.Antecedent
	decodeBody(t, rec, &list)
	if len(list) != 1 || list[0].Description != "Penicilina" || list[0].HistoryID != h.ID {
		t.Fatalf("unexpected antecedents %+v", list)
	}

	rec = do(e, http.MethodPost, path, `{"tipo":"alergias"}`)
	if rec.Code != http.StatusBadRequest || !strings.Contains(message(t, rec), "descripcion") {
		t.Fatalf("expected validation error, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestPatientDeleteRemovesHistory(t *testing.T) {
	e, conn, _ := newTestAPI(t)
	p := createPatient(t, e, "11111111")

	rec := do(e, http.MethodDelete, fmt.Sprintf("/api/pacientes/%d", p.ID), "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: %d %s", rec.Code, rec.Body.String())
	}
	var n int64
	conn.Model(&models.ClinicalHistory{}).Where("id_paciente = ?", p.ID).Count(&n)
	if n != 0 {
		t.Fatalf("history left behind")
	}
	rec = do(e, http.MethodGet, fmt.Sprintf("/api/pacientes/%d/historia", p.ID), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestPatientErrors(t *testing.T) {
	e, _, _ := newTestAPI(t)
	createPatient(t, e, "22222222")

	tests := []struct {
		method, path, body string
		status             int
		msg                string
	}{
		{http.MethodGet, "/api/pacientes/99", "", http.StatusNotFound, "Paciente no encontrado"},
		{http.MethodDelete, "/api/pacientes/99", "", http.StatusNotFound, "Paciente no encontrado"},
		{http.MethodGet, "/api/pacientes/abc", "", http.StatusBadRequest, "Identificador inválido"},
		{http.MethodPost, "/api/pacientes", `{"nombres":"X","apellidos":"Y"}`, http.StatusBadRequest, "el campo dni es obligatorio"},
		{http.MethodPost, "/api/pacientes", `{"dni":`, http.StatusBadRequest, ""},
		{http.MethodPost, "/api/pacientes", `{"dni":"22222222","nombres":"X","apellidos":"Y"}`, http.StatusConflict, "22222222"},
	}
	for _, tt := range tests {
		rec := do(e, tt.method, tt.path, tt.body)
		if rec.Code != tt.status {
			t.Fatalf("%s %s: expected %d got %d %s", tt.method, tt.path, tt.status, rec.Code, rec.Body.String())
		}
		if msg := message(t, rec); !strings.Contains(msg, tt.msg) {
			t.Fatalf("%s %s: message %q does not contain %q", tt.method, tt.path, msg, tt.msg)
		}
	}
}

func TestPatientUpdateUsesPathID(t *testing.T) {
	e, _, _ := newTestAPI(t)
	p := createPatient(t, e, "33333333")
	rec := do(e, http.MethodPut, fmt.Sprintf("/api/pacientes/%d", p.ID), `{"idPaciente":500,"dni":"33333333","nombres":"Ana María","apellidos":"Pérez","estado":"inactivo"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: %d %s", rec.Code, rec.Body.String())
	}
	var got models.Patient
	decodeBody(t, rec, &got)
	if got.ID != p.ID || got.FirstName != "Ana María" || got.Status != models.StatusInactive {
		t.Fatalf("unexpected patient %+v", got)
	}
	if rec := do(e, http.MethodGet, "/api/pacientes/500", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("body id must not create a row, got %d", rec.Code)
	}
}

func TestSpecialties(t *testing.T) {
	e, _, _ := newTestAPI(t)
	rec := do(e, http.MethodGet, "/api/medicos/especialidades", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list: %d %s", rec.Code, rec.Body.String())
	}
	var list []models.Specialty
	decodeBody(t, rec, &list)
	if len(list) != 5 || list[0].Name != "Medicina General" {
		t.Fatalf("unexpected specialties %+v", list)
	}

	rec = do(e, http.MethodPost, "/api/medicos/especialidades", `{"nombre":"Neurología"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", rec.Code, rec.Body.String())
	}
	rec = do(e, http.MethodPost, "/api/medicos/especialidades", `{"nombre":"Neurología"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected conflict got %d", rec.Code)
	}
}

func TestDoctorLicenseConflict(t *testing.T) {
	e, _, _ := newTestAPI(t)
	rec := do(e, http.MethodPost, "/api/medicos", `{"nombres":"Luis","apellidos":"Soto","colegiatura":"CMP-1","especialidad":{"idEspecialidad":2}}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", rec.Code, rec.Body.String())
	}
	var first models.Doctor
	decodeBody(t, rec, &first)
	if first.SpecialtyName() != "Cardiología" || first.Status != models.StatusActive {
		t.Fatalf("unexpected doctor %+v", first)
	}

	rec = do(e, http.MethodPost, "/api/medicos", `{"nombres":"Eva","apellidos":"Ríos","colegiatura":"CMP-1","especialidad":{"idEspecialidad":1}}`)
	if rec.Code != http.StatusConflict || message(t, rec) != "Ya existe un médico con la colegiatura: CMP-1" {
		t.Fatalf("expected create conflict, got %d %s", rec.Code, rec.Body.String())
	}

	rec = do(e, http.MethodPost, "/api/medicos", `{"nombres":"Eva","apellidos":"Ríos","colegiatura":"CMP-2","especialidad":{"idEspecialidad":1}}`)
	var second models.Doctor
	decodeBody(t, rec, &second)

	path := fmt.Sprintf("/api/medicos/%d", second.ID)
	rec = do(e, http.MethodPut, path, `{"nombres":"Eva","apellidos":"Ríos","colegiatura":"CMP-1","especialidad":{"idEspecialidad":1}}`)
	if rec.Code != http.StatusConflict || message(t, rec) != "Otra persona ya tiene esta colegiatura: CMP-1" {
		t.Fatalf("expected update conflict, got %d %s", rec.Code, rec.Body.String())
	}
	rec = do(e, http.MethodPut, path, `{"nombres":"Eva","apellidos":"Ríos","colegiatura":"CMP-2","especialidad":{"idEspecialidad":3}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update own license: %d %s", rec.Code, rec.Body.String())
	}
	decodeBody(t, rec, &second)
	if second.SpecialtyRef() != 3 || second.SpecialtyName() != "Pediatría" {
		t.Fatalf("specialty not changed: %+v", second)
	}
}

func TestDoctorSpecialtyChecked(t *testing.T) {
	e, _, _ := newTestAPI(t)
	rec := do(e, http.MethodPost, "/api/medicos", `{"nombres":"Luis","apellidos":"Soto","colegiatura":"CMP-9"}`)
	if rec.Code != http.StatusBadRequest || message(t, rec) != "La especialidad es obligatoria" {
		t.Fatalf("unexpected %d %s", rec.Code, rec.Body.String())
	}
	rec = do(e, http.MethodPost, "/api/medicos", `{"nombres":"Luis","apellidos":"Soto","colegiatura":"CMP-9","especialidad":{"idEspecialidad":77}}`)
	if rec.Code != http.StatusBadRequest || !strings.Contains(message(t, rec), "77") {
		t.Fatalf("unexpected %d %s", rec.Code, rec.Body.String())
	}
}

func TestAppointmentsAndConsultations(t *testing.T) {
	e, _, _ := newTestAPI(t)
	rec := do(e, http.MethodPost, "/api/citas", `{"idPaciente":1,"idMedico":1,"fecha":"2025-03-01","hora":"09:30","motivo":"Control"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create appointment: %d %s", rec.Code, rec.Body.String())
	}
	var a models.Appointment
	decodeBody(t, rec, &a)
	if a.Status != models.AppointmentScheduled {
		t.Fatalf("expected default status, got %q", a.Status)
	}

	rec = do(e, http.MethodPost, "/api/consultas", fmt.Sprintf(`{"idCita":%d,"idMedico":1,"idPaciente":1,"fecha":"2025-03-01","motivoConsulta":"Control"}`, a.ID))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create consultation: %d %s", rec.Code, rec.Body.String())
	}
	rec = do(e, http.MethodGet, "/api/consultas", "")
	var list []models.Consultation
	decodeBody(t, rec, &list)
	if len(list) != 1 || list[0].AppointmentID != a.ID {
		t.Fatalf("unexpected consultations %+v", list)
	}
	if rec := do(e, http.MethodDelete, "/api/citas/42", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestInvoiceLifecycle(t *testing.T) {
	e, conn, _ := newTestAPI(t)
	p := createPatient(t, e, "44444444")

	rec := do(e, http.MethodPost, "/api/facturas", fmt.Sprintf(`{"idPaciente":%d,"fechaEmision":"2025-01-10","total":225}`, p.ID))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", rec.Code, rec.Body.String())
	}
	var inv models.Invoice
	decodeBody(t, rec, &inv)
	if inv.Status != models.InvoicePending || inv.Total != 225 {
		t.Fatalf("unexpected invoice %+v", inv)
	}
	base := fmt.Sprintf("/api/facturas/%d", inv.ID)

	rec = do(e, http.MethodPost, base+"/detalles", `{"concepto":"Consulta","monto":75.5}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add detail: %d %s", rec.Code, rec.Body.String())
	}
	var details []models.InvoiceDetail
	decodeBody(t, do(e, http.MethodGet, base+"/detalles", ""), &details)
	if len(details) != 1 || details[0].InvoiceID != inv.ID || details[0].Amount != 75.5 {
		t.Fatalf("unexpected details %+v", details)
	}

	rec = do(e, http.MethodPatch, base+"/estado", `{"estado":"pagado"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d %s", rec.Code, rec.Body.String())
	}
	decodeBody(t, rec, &inv)
	if !inv.IsPaid() {
		t.Fatalf("expected paid invoice %+v", inv)
	}
	if rec := do(e, http.MethodPatch, base+"/estado", `{"estado":"anulado"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected invalid status, got %d", rec.Code)
	}

	var mine []models.Invoice
	decodeBody(t, do(e, http.MethodGet, fmt.Sprintf("/api/facturas/paciente/%d", p.ID), ""), &mine)
	if len(mine) != 1 {
		t.Fatalf("expected one invoice for patient, got %+v", mine)
	}
	var none []models.Invoice
	decodeBody(t, do(e, http.MethodGet, "/api/facturas/paciente/999", ""), &none)
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty array, got %+v", none)
	}

	rec = do(e, http.MethodGet, base+"/pdf", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("pdf: %d %s", rec.Code, rec.Body.String())
	}
	want := fmt.Sprintf("attachment; filename=factura_%d.pdf", inv.ID)
	if got := rec.Header().Get("Content-Disposition"); got != want {
		t.Fatalf("expected %q got %q", want, got)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Fatalf("not a pdf")
	}

	if rec := do(e, http.MethodDelete, base, ""); rec.Code != http.StatusNoContent {
		t.Fatalf("delete: %d", rec.Code)
	}
	var n int64
	conn.Model(&models.InvoiceDetail{}).Where("id_factura = ?", inv.ID).Count(&n)
	if n != 0 {
		t.Fatalf("details left behind")
	}
	if rec := do(e, http.MethodGet, base+"/pdf", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestInvoiceRequiresPatient(t *testing.T) {
	e, _, _ := newTestAPI(t)
	rec := do(e, http.MethodPost, "/api/facturas", `{"idPaciente":9,"fechaEmision":"2025-01-10","total":10}`)
	if rec.Code != http.StatusBadRequest || message(t, rec) != "Paciente no encontrado" {
		t.Fatalf("unexpected %d %s", rec.Code, rec.Body.String())
	}
}

func TestRequestIDAndAccessLog(t *testing.T) {
	e, _, logs := newTestAPI(t)
	rec := do(e, http.MethodGet, "/api/citas/7", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
	rid := rec.Header().Get(requestIDHeader)
	if rid == "" {
		t.Fatalf("expected request id header")
	}
	out := logs.String()
	if !strings.Contains(out, `"status":404`) || !strings.Contains(out, rid) {
		t.Fatalf("unexpected access log %s", out)
	}
}

// TestServicesAgainstAPI drives the console service layer over real HTTP.
func TestServicesAgainstAPI(t *testing.T) {
	e, _, _ := newTestAPI(t)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	client := apiclient.New(srv.URL + Prefix)
	ctx := context.Background()

	patients := services.NewPatientService(client)
	p, err := patients.Create(ctx, &models.Patient{DNI: "55555555", FirstName: "Rosa", LastName: "Quispe"})
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}
	h, err := patients.ClinicalHistory(ctx, p.ID)
	if err != nil || h.PatientID != p.ID {
		t.Fatalf("history: %+v %v", h, err)
	}
	if _, err := patients.ClinicalHistory(ctx, 999); !errors.Is(err, services.ErrNoClinicalHistory) {
		t.Fatalf("expected ErrNoClinicalHistory got %v", err)
	}

	doctors := services.NewDoctorService(client)
	specs, err := doctors.Specialties(ctx)
	if err != nil || len(specs) == 0 {
		t.Fatalf("specialties: %v", err)
	}
	_, err = doctors.Create(ctx, &models.Doctor{FirstName: "A", LastName: "B", License: "X1", Specialty: &models.Specialty{ID: specs[0].ID}})
	if err != nil {
		t.Fatalf("create doctor: %v", err)
	}
	_, err = doctors.Create(ctx, &models.Doctor{FirstName: "C", LastName: "D", License: "X1", Specialty: &models.Specialty{ID: specs[0].ID}})
	var se *apiclient.StatusError
	if !errors.As(err, &se) || se.Status != http.StatusConflict || se.Message != "Ya existe un médico con la colegiatura: X1" {
		t.Fatalf("expected conflict, got %v", err)
	}

	invoices := services.NewInvoiceService(client)
	inv, err := invoices.Create(ctx, &models.Invoice{PatientID: p.ID, IssueDate: "2025-02-01", Total: 50, Status: models.InvoicePending})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	doc, err := invoices.Download(ctx, inv.ID, services.FormatPDF)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if doc.Filename != fmt.Sprintf("factura_%d.pdf", inv.ID) || doc.ContentType != "application/pdf" {
		t.Fatalf("unexpected document %s %s", doc.Filename, doc.ContentType)
	}
}
