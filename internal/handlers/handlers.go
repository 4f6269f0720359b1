// Package handlers implements the admin console pages: list views, form
// views and the medical-history view. Every page fetches from the REST API
// through the entity services on each request.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/YamileOchoa/Hospital-System/i18n"
	"github.com/YamileOchoa/Hospital-System/internal/apiclient"
	"github.com/YamileOchoa/Hospital-System/internal/middleware"
	"github.com/YamileOchoa/Hospital-System/internal/services"
	"github.com/YamileOchoa/Hospital-System/validation"
	"github.com/YamileOchoa/Hospital-System/view"
)

// DefaultRedirectDelay is how long the saved page stays up before going
// back to the list.
const DefaultRedirectDelay = 1500 * time.Millisecond

// Services bundles the entity services used by the console.
type Services struct {
	Patients      *services.PatientService
	Doctors       *services.DoctorService
	Appointments  *services.AppointmentService
	Consultations *services.ConsultationService
	Invoices      *services.InvoiceService
}

// NewServices builds every entity service on top of one API client.
func NewServices(api *apiclient.Client) Services {
	return Services{
		Patients:      services.NewPatientService(api),
		Doctors:       services.NewDoctorService(api),
		Appointments:  services.NewAppointmentService(api),
		Consultations: services.NewConsultationService(api),
		Invoices:      services.NewInvoiceService(api),
	}
}

// Option is one entry of a form select.
type Option struct {
	Value string
	Label string
}

// translatedOptions labels each value with the catalogue entry prefix+value.
func translatedOptions(r *http.Request, prefix string, values []string) []Option {
	lang := middleware.LangFrom(r)
	opts := make([]Option, 0, len(values))
	for _, v := range values {
		opts = append(opts, Option{Value: v, Label: i18n.T(lang, prefix+v)})
	}
	return opts
}

func idOption(id int64, label string) Option {
	return Option{Value: strconv.FormatInt(id, 10), Label: label}
}

func tr(r *http.Request, code string) string {
	return i18n.T(middleware.LangFrom(r), code)
}

func render(w http.ResponseWriter, r *http.Request, status int, name string, data map[string]any) {
	if err := view.RenderStatus(w, r, status, name, data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("template", name).Msg("render failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// NotFound renders the console 404 page.
func NotFound(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusNotFound, "notfound.html", nil)
}

// pathID reads the {id} route value. Anything but a positive integer is
// answered with the 404 page.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id := validation.ParseID(r.PathValue("id"))
	if id <= 0 {
		NotFound(w, r)
		return 0, false
	}
	return id, true
}

// failure logs err and returns the localized message for code.
func failure(r *http.Request, code string, err error) string {
	zerolog.Ctx(r.Context()).Error().Err(err).Str("code", code).Msg("api request failed")
	return tr(r, code)
}

// saveFailure is failure plus the server's own message on client errors,
// e.g. a duplicate colegiatura.
func saveFailure(r *http.Request, code string, err error) string {
	msg := failure(r, code, err)
	var se *apiclient.StatusError
	if errors.As(err, &se) && se.Status >= 400 && se.Status < 500 && se.Message != "" {
		msg += ": " + se.Message
	}
	return msg
}

func redirectWithFlash(w http.ResponseWriter, r *http.Request, kind, code, to string) {
	middleware.Flash(w, r, kind, code)
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// pages carries what every handler shares: the saved-page delay.
type pages struct {
	delay time.Duration
}

func newPages(delay time.Duration) pages {
	if delay < 0 {
		delay = DefaultRedirectDelay
	}
	return pages{delay: delay}
}

// saved shows the transient success message and navigates to redirect
// after the configured delay. A non-empty download is fetched alongside.
func (p pages) saved(w http.ResponseWriter, r *http.Request, code, redirect, download string) {
	render(w, r, http.StatusOK, "saved.html", map[string]any{
		"Message":        tr(r, code),
		"Redirect":       redirect,
		"RefreshSeconds": strconv.FormatFloat(p.delay.Seconds(), 'f', -1, 64),
		"DelayMS":        p.delay.Milliseconds(),
		"Download":       download,
	})
}

// confirmDelete renders the confirmation page. Nothing is sent to the API.
func confirmDelete(w http.ResponseWriter, r *http.Request, collection, promptCode string) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	render(w, r, http.StatusOK, "confirm.html", map[string]any{
		"Prompt": tr(r, promptCode),
		"Detail": fmt.Sprintf("ID: %d", id),
		"Action": fmt.Sprintf("%s/eliminar/%d", collection, id),
		"Cancel": collection,
	})
}

// performDelete deletes the record and goes back to the list, which then
// refetches.
func performDelete(w http.ResponseWriter, r *http.Request, collection, errCode string, del func(context.Context, int64) error) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := del(r.Context(), id); err != nil {
		failure(r, errCode, err)
		redirectWithFlash(w, r, middleware.FlashError, errCode, collection)
		return
	}
	redirectWithFlash(w, r, middleware.FlashSuccess, "common.deleted", collection)
}

func formAction(collection string, id int64) string {
	if id == 0 {
		return collection
	}
	return fmt.Sprintf("%s/editar/%d", collection, id)
}
