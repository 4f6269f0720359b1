package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/YamileOchoa/Hospital-System/internal/middleware"
	"github.com/YamileOchoa/Hospital-System/internal/models"
	"github.com/YamileOchoa/Hospital-System/internal/services"
	"github.com/YamileOchoa/Hospital-System/validation"
)

const (
	doctorsURL     = "/medicos"
	specialtiesURL = "/especialidades"
)

type DoctorHandler struct {
	pages
	svc *services.DoctorService
}

func NewDoctorHandler(svc *services.DoctorService, delay time.Duration) *DoctorHandler {
	return &DoctorHandler{pages: newPages(delay), svc: svc}
}

func (h *DoctorHandler) List(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{}
	doctors, err := h.svc.List(r.Context())
	if err != nil {
		data["Error"] = failure(r, "doctors.load_error", err)
	} else {
		data["Doctors"] = doctors
	}
	render(w, r, http.StatusOK, "medicos/index.html", data)
}

// form renders the doctor form with the specialty select filled from the
// API. A failed specialty fetch is reported unless msg already carries an
// error.
func (h *DoctorHandler) form(w http.ResponseWriter, r *http.Request, status int, d models.Doctor, id int64, errs validation.Violations, msg string) {
	specialties, err := h.svc.Specialties(r.Context())
	if err != nil && msg == "" {
		msg = failure(r, "specs.load_error", err)
	}
	opts := make([]Option, 0, len(specialties))
	for _, s := range specialties {
		opts = append(opts, idOption(s.ID, s.Name))
	}
	render(w, r, status, "medicos/form.html", map[string]any{
		"Doctor":           d,
		"Editing":          id != 0,
		"Action":           formAction(doctorsURL, id),
		"SpecialtyOptions": opts,
		"StatusOptions":    translatedOptions(r, "status.", []string{models.StatusActive, models.StatusInactive}),
		"Errors":           errs,
		"Error":            msg,
	})
}

func (h *DoctorHandler) New(w http.ResponseWriter, r *http.Request) {
	h.form(w, r, http.StatusOK, models.NewDoctor(), 0, nil, "")
}

func (h *DoctorHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	d, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.form(w, r, http.StatusOK, models.NewDoctor(), id, nil, failure(r, "doctors.one_load_error", err))
		return
	}
	h.form(w, r, http.StatusOK, *d, id, nil, "")
}

func doctorFromForm(r *http.Request) (models.Doctor, validation.Violations) {
	d := models.Doctor{
		FirstName: strings.TrimSpace(r.PostFormValue("nombres")),
		LastName:  strings.TrimSpace(r.PostFormValue("apellidos")),
		License:   strings.TrimSpace(r.PostFormValue("colegiatura")),
		Phone:     strings.TrimSpace(r.PostFormValue("telefono")),
		Email:     strings.TrimSpace(r.PostFormValue("correo")),
		Status:    r.PostFormValue("estado"),
	}
	specialtyID := validation.ParseID(r.PostFormValue("idEspecialidad"))
	if specialtyID > 0 {
		d.Specialty = &models.Specialty{ID: specialtyID}
	}
	v := make(validation.Violations)
	validation.Required("nombres", d.FirstName, v)
	validation.Required("apellidos", d.LastName, v)
	validation.Required("colegiatura", d.License, v)
	validation.RequiredID("idEspecialidad", specialtyID, v)
	return d, v
}

func (h *DoctorHandler) Create(w http.ResponseWriter, r *http.Request) {
	d, v := doctorFromForm(r)
	if !v.Empty() {
		h.form(w, r, http.StatusUnprocessableEntity, d, 0, v, "")
		return
	}
	if _, err := h.svc.Create(r.Context(), &d); err != nil {
		h.form(w, r, http.StatusOK, d, 0, nil, saveFailure(r, "doctors.save_error", err))
		return
	}
	h.saved(w, r, "doctors.created", doctorsURL, "")
}

func (h *DoctorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	d, v := doctorFromForm(r)
	if !v.Empty() {
		h.form(w, r, http.StatusUnprocessableEntity, d, id, v, "")
		return
	}
	if _, err := h.svc.Update(r.Context(), id, &d); err != nil {
		h.form(w, r, http.StatusOK, d, id, nil, saveFailure(r, "doctors.save_error", err))
		return
	}
	h.saved(w, r, "doctors.updated", doctorsURL, "")
}

func (h *DoctorHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	confirmDelete(w, r, doctorsURL, "doctors.confirm_delete")
}

func (h *DoctorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	performDelete(w, r, doctorsURL, "doctors.delete_error", h.svc.Delete)
}

func (h *DoctorHandler) specialties(w http.ResponseWriter, r *http.Request, status int, s models.Specialty, errs validation.Violations, msg string) {
	data := map[string]any{
		"Specialty": s,
		"Errors":    errs,
		"Error":     msg,
	}
	list, err := h.svc.Specialties(r.Context())
	if err != nil {
		data["LoadFailed"] = true
		if msg == "" {
			data["Error"] = failure(r, "specs.load_error", err)
		}
	}
	data["Specialties"] = list
	render(w, r, status, "medicos/especialidades.html", data)
}

// Specialties lists the specialties with the create form on top.
func (h *DoctorHandler) Specialties(w http.ResponseWriter, r *http.Request) {
	h.specialties(w, r, http.StatusOK, models.Specialty{}, nil, "")
}

func (h *DoctorHandler) CreateSpecialty(w http.ResponseWriter, r *http.Request) {
	s := models.Specialty{
		Name:        strings.TrimSpace(r.PostFormValue("nombre")),
		Description: strings.TrimSpace(r.PostFormValue("descripcion")),
	}
	v := make(validation.Violations)
	validation.Required("nombre", s.Name, v)
	if !v.Empty() {
		h.specialties(w, r, http.StatusUnprocessableEntity, s, v, "")
		return
	}
	if _, err := h.svc.CreateSpecialty(r.Context(), &s); err != nil {
		h.specialties(w, r, http.StatusOK, s, nil, saveFailure(r, "specs.create_error", err))
		return
	}
	redirectWithFlash(w, r, middleware.FlashSuccess, "specs.created", specialtiesURL)
}
