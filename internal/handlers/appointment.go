package handlers

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/YamileOchoa/Hospital-System/internal/models"
	"github.com/YamileOchoa/Hospital-System/internal/services"
	"github.com/YamileOchoa/Hospital-System/validation"
)

const appointmentsURL = "/citas"

type AppointmentHandler struct {
	pages
	svc      *services.AppointmentService
	patients *services.PatientService
	doctors  *services.DoctorService
}

func NewAppointmentHandler(s Services, delay time.Duration) *AppointmentHandler {
	return &AppointmentHandler{
		pages:    newPages(delay),
		svc:      s.Appointments,
		patients: s.Patients,
		doctors:  s.Doctors,
	}
}

func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{}
	appts, err := h.svc.List(r.Context())
	if err != nil {
		data["Error"] = failure(r, "appts.load_error", err)
	} else {
		data["Appointments"] = appts
	}
	render(w, r, http.StatusOK, "citas/index.html", data)
}

// references loads the patient and doctor selects concurrently.
func (h *AppointmentHandler) references(r *http.Request) (patients, doctors []Option, err error) {
	var (
		ps []models.Patient
		ds []models.Doctor
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		ps, err = h.patients.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		ds, err = h.doctors.List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	for _, p := range ps {
		patients = append(patients, idOption(p.ID, p.FullName()))
	}
	for _, d := range ds {
		doctors = append(doctors, idOption(d.ID, d.FullName()))
	}
	return patients, doctors, nil
}

func (h *AppointmentHandler) form(w http.ResponseWriter, r *http.Request, status int, a models.Appointment, id int64, errs validation.Violations, msg string) {
	patients, doctors, err := h.references(r)
	if err != nil && msg == "" {
		msg = failure(r, "appts.refs_error", err)
	}
	render(w, r, status, "citas/form.html", map[string]any{
		"Appointment":    a,
		"Editing":        id != 0,
		"Action":         formAction(appointmentsURL, id),
		"PatientOptions": patients,
		"DoctorOptions":  doctors,
		"StatusOptions":  translatedOptions(r, "status.", models.AppointmentStatuses),
		"Errors":         errs,
		"Error":          msg,
	})
}

func (h *AppointmentHandler) New(w http.ResponseWriter, r *http.Request) {
	h.form(w, r, http.StatusOK, models.NewAppointment(), 0, nil, "")
}

func (h *AppointmentHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.form(w, r, http.StatusOK, models.NewAppointment(), id, nil, failure(r, "appts.one_load_error", err))
		return
	}
	h.form(w, r, http.StatusOK, *a, id, nil, "")
}

func appointmentFromForm(r *http.Request) (models.Appointment, validation.Violations) {
	a := models.Appointment{
		PatientID: validation.ParseID(r.PostFormValue("idPaciente")),
		DoctorID:  validation.ParseID(r.PostFormValue("idMedico")),
		Date:      r.PostFormValue("fecha"),
		Time:      r.PostFormValue("hora"),
		Reason:    strings.TrimSpace(r.PostFormValue("motivo")),
		Status:    r.PostFormValue("estado"),
	}
	if a.Status == "" {
		a.Status = models.AppointmentScheduled
	}
	v := make(validation.Violations)
	validation.RequiredID("idPaciente", a.PatientID, v)
	validation.RequiredID("idMedico", a.DoctorID, v)
	validation.Required("fecha", a.Date, v)
	validation.Required("hora", a.Time, v)
	validation.Required("motivo", a.Reason, v)
	return a, v
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	a, v := appointmentFromForm(r)
	if !v.Empty() {
		h.form(w, r, http.StatusUnprocessableEntity, a, 0, v, "")
		return
	}
	if _, err := h.svc.Create(r.Context(), &a); err != nil {
		h.form(w, r, http.StatusOK, a, 0, nil, saveFailure(r, "appts.save_error", err))
		return
	}
	h.saved(w, r, "appts.created", appointmentsURL, "")
}

func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	a, v := appointmentFromForm(r)
	if !v.Empty() {
		h.form(w, r, http.StatusUnprocessableEntity, a, id, v, "")
		return
	}
	if _, err := h.svc.Update(r.Context(), id, &a); err != nil {
		h.form(w, r, http.StatusOK, a, id, nil, saveFailure(r, "appts.save_error", err))
		return
	}
	h.saved(w, r, "appts.updated", appointmentsURL, "")
}

func (h *AppointmentHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	confirmDelete(w, r, appointmentsURL, "appts.confirm_delete")
}

func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	performDelete(w, r, appointmentsURL, "appts.delete_error", h.svc.Delete)
}

const consultationsURL = "/consultas"

type ConsultationHandler struct {
	pages
	svc *services.ConsultationService
}

func NewConsultationHandler(svc *services.ConsultationService, delay time.Duration) *ConsultationHandler {
	return &ConsultationHandler{pages: newPages(delay), svc: svc}
}

func (h *ConsultationHandler) List(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{}
	list, err := h.svc.List(r.Context())
	if err != nil {
		data["Error"] = failure(r, "consults.load_error", err)
	} else {
		data["Consultations"] = list
	}
	render(w, r, http.StatusOK, "consultas/index.html", data)
}

func (h *ConsultationHandler) form(w http.ResponseWriter, r *http.Request, status int, c models.Consultation, id int64, errs validation.Violations, msg string) {
	render(w, r, status, "consultas/form.html", map[string]any{
		"Consultation": c,
		"Editing":      id != 0,
		"Action":       formAction(consultationsURL, id),
		"Errors":       errs,
		"Error":        msg,
	})
}

func (h *ConsultationHandler) New(w http.ResponseWriter, r *http.Request) {
	h.form(w, r, http.StatusOK, models.Consultation{}, 0, nil, "")
}

func (h *ConsultationHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.form(w, r, http.StatusOK, models.Consultation{}, id, nil, failure(r, "consults.one_load_error", err))
		return
	}
	h.form(w, r, http.StatusOK, *c, id, nil, "")
}

func consultationFromForm(r *http.Request) (models.Consultation, validation.Violations) {
	c := models.Consultation{
		AppointmentID: validation.ParseID(r.PostFormValue("idCita")),
		DoctorID:      validation.ParseID(r.PostFormValue("idMedico")),
		PatientID:     validation.ParseID(r.PostFormValue("idPaciente")),
		Date:          r.PostFormValue("fecha"),
		Time:          r.PostFormValue("hora"),
		Reason:        strings.TrimSpace(r.PostFormValue("motivoConsulta")),
		Observations:  strings.TrimSpace(r.PostFormValue("observaciones")),
	}
	v := make(validation.Violations)
	validation.RequiredID("idCita", c.AppointmentID, v)
	validation.RequiredID("idMedico", c.DoctorID, v)
	validation.RequiredID("idPaciente", c.PatientID, v)
	validation.Required("fecha", c.Date, v)
	validation.Required("hora", c.Time, v)
	validation.Required("motivoConsulta", c.Reason, v)
	return c, v
}

func (h *ConsultationHandler) Create(w http.ResponseWriter, r *http.Request) {
	c, v := consultationFromForm(r)
	if !v.Empty() {
		h.form(w, r, http.StatusUnprocessableEntity, c, 0, v, "")
		return
	}
	if _, err := h.svc.Create(r.Context(), &c); err != nil {
		h.form(w, r, http.StatusOK, c, 0, nil, saveFailure(r, "consults.save_error", err))
		return
	}
	h.saved(w, r, "consults.created", consultationsURL, "")
}

func (h *ConsultationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	c, v := consultationFromForm(r)
	if !v.Empty() {
		h.form(w, r, http.StatusUnprocessableEntity, c, id, v, "")
		return
	}
	if _, err := h.svc.Update(r.Context(), id, &c); err != nil {
		h.form(w, r, http.StatusOK, c, id, nil, saveFailure(r, "consults.save_error", err))
		return
	}
	h.saved(w, r, "consults.updated", consultationsURL, "")
}

func (h *ConsultationHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	confirmDelete(w, r, consultationsURL, "consults.confirm_delete")
}

func (h *ConsultationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	performDelete(w, r, consultationsURL, "consults.delete_error", h.svc.Delete)
}
