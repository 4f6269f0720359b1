package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/YamileOchoa/Hospital-System/internal/middleware"
	"github.com/YamileOchoa/Hospital-System/internal/models"
	"github.com/YamileOchoa/Hospital-System/internal/services"
	"github.com/YamileOchoa/Hospital-System/validation"
)

const patientsURL = "/pacientes"

type PatientHandler struct {
	pages
	svc *services.PatientService
}

func NewPatientHandler(svc *services.PatientService, delay time.Duration) *PatientHandler {
	return &PatientHandler{pages: newPages(delay), svc: svc}
}

func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{}
	patients, err := h.svc.List(r.Context())
	if err != nil {
		data["Error"] = failure(r, "patients.load_error", err)
	} else {
		data["Patients"] = patients
	}
	render(w, r, http.StatusOK, "pacientes/index.html", data)
}

func (h *PatientHandler) form(w http.ResponseWriter, r *http.Request, status int, p models.Patient, id int64, errs validation.Violations, msg string) {
	render(w, r, status, "pacientes/form.html", map[string]any{
		"Patient":       p,
		"Editing":       id != 0,
		"Action":        formAction(patientsURL, id),
		"SexOptions":    []Option{{Value: "M", Label: "M"}, {Value: "F", Label: "F"}},
		"StatusOptions": translatedOptions(r, "status.", []string{models.StatusActive, models.StatusInactive}),
		"Errors":        errs,
		"Error":         msg,
	})
}

func (h *PatientHandler) New(w http.ResponseWriter, r *http.Request) {
	h.form(w, r, http.StatusOK, models.NewPatient(), 0, nil, "")
}

func (h *PatientHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.form(w, r, http.StatusOK, models.NewPatient(), id, nil, failure(r, "patients.one_load_error", err))
		return
	}
	h.form(w, r, http.StatusOK, *p, id, nil, "")
}

func patientFromForm(r *http.Request) (models.Patient, validation.Violations) {
	p := models.Patient{
		DNI:       strings.TrimSpace(r.PostFormValue("dni")),
		FirstName: strings.TrimSpace(r.PostFormValue("nombres")),
		LastName:  strings.TrimSpace(r.PostFormValue("apellidos")),
		BirthDate: r.PostFormValue("fechaNacimiento"),
		Sex:       r.PostFormValue("sexo"),
		Address:   strings.TrimSpace(r.PostFormValue("direccion")),
		Phone:     strings.TrimSpace(r.PostFormValue("telefono")),
		Email:     strings.TrimSpace(r.PostFormValue("correo")),
		Status:    r.PostFormValue("estado"),
	}
	v := make(validation.Violations)
	validation.Required("dni", p.DNI, v)
	validation.Required("nombres", p.FirstName, v)
	validation.Required("apellidos", p.LastName, v)
	validation.Required("fechaNacimiento", p.BirthDate, v)
	return p, v
}

func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, v := patientFromForm(r)
	if !v.Empty() {
		h.form(w, r, http.StatusUnprocessableEntity, p, 0, v, "")
		return
	}
	if _, err := h.svc.Create(r.Context(), &p); err != nil {
		h.form(w, r, http.StatusOK, p, 0, nil, saveFailure(r, "patients.save_error", err))
		return
	}
	h.saved(w, r, "patients.created", patientsURL, "")
}

func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, v := patientFromForm(r)
	if !v.Empty() {
		h.form(w, r, http.StatusUnprocessableEntity, p, id, v, "")
		return
	}
	if _, err := h.svc.Update(r.Context(), id, &p); err != nil {
		h.form(w, r, http.StatusOK, p, id, nil, saveFailure(r, "patients.save_error", err))
		return
	}
	h.saved(w, r, "patients.updated", patientsURL, "")
}

func (h *PatientHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	confirmDelete(w, r, patientsURL, "patients.confirm_delete")
}

func (h *PatientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	performDelete(w, r, patientsURL, "patients.delete_error", h.svc.Delete)
}

func historyURL(patientID int64) string {
	return fmt.Sprintf("%s/historia/%d", patientsURL, patientID)
}

// History shows the clinical history of a patient and its antecedents.
// ?nuevo=1 opens the inline form.
func (h *PatientHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	h.history(w, r, http.StatusOK, id, r.URL.Query().Get("nuevo") == "1", models.NewAntecedent(), nil)
}

func (h *PatientHandler) history(w http.ResponseWriter, r *http.Request, status int, patientID int64, showForm bool, a models.Antecedent, errs validation.Violations) {
	data := map[string]any{
		"PatientID":   patientID,
		"ShowForm":    showForm,
		"Antecedent":  a,
		"TypeOptions": translatedOptions(r, "tipo.", models.AntecedentTypes),
		"Errors":      errs,
	}
	hist, err := h.svc.ClinicalHistory(r.Context(), patientID)
	switch {
	case errors.Is(err, services.ErrNoClinicalHistory):
		data["NotFound"] = true
	case err != nil:
		data["Error"] = failure(r, "history.load_error", err)
	default:
		antecedents, err := h.svc.Antecedents(r.Context(), hist.ID)
		if err != nil {
			data["Error"] = failure(r, "history.load_error", err)
			break
		}
		data["History"] = hist
		data["Antecedents"] = antecedents
	}
	render(w, r, status, "pacientes/historia.html", data)
}

// AddAntecedent appends one entry and redirects back so both levels are
// fetched again.
func (h *PatientHandler) AddAntecedent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	a := models.Antecedent{
		Type:        r.PostFormValue("tipo"),
		Description: strings.TrimSpace(r.PostFormValue("descripcion")),
	}
	v := make(validation.Violations)
	validation.Required("descripcion", a.Description, v)
	if !slices.Contains(models.AntecedentTypes, a.Type) {
		v["tipo"] = "required"
	}
	if !v.Empty() {
		h.history(w, r, http.StatusUnprocessableEntity, id, true, a, v)
		return
	}

	hist, err := h.svc.ClinicalHistory(r.Context(), id)
	if err == nil {
		_, err = h.svc.AddAntecedent(r.Context(), hist.ID, &a)
	}
	if err != nil {
		failure(r, "history.add_error", err)
		redirectWithFlash(w, r, middleware.FlashError, "history.add_error", historyURL(id)+"?nuevo=1")
		return
	}
	redirectWithFlash(w, r, middleware.FlashSuccess, "history.added", historyURL(id))
}
