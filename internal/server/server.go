// Package server wires the admin console: route table, landing page,
// health endpoints and the middleware chain.
package server

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/YamileOchoa/Hospital-System/httpx"
	"github.com/YamileOchoa/Hospital-System/internal/apiclient"
	"github.com/YamileOchoa/Hospital-System/internal/handlers"
	"github.com/YamileOchoa/Hospital-System/internal/middleware"
	"github.com/YamileOchoa/Hospital-System/view"
	"github.com/YamileOchoa/Hospital-System/web"
)

// Options configures the console.
type Options struct {
	API           *apiclient.Client
	Logger        zerolog.Logger
	RedirectDelay time.Duration
	Lang          string
	Dev           bool
	// Templates overrides the embedded templates (tests, live editing).
	Templates fs.FS
}

// Section is one card of the landing page.
type Section struct {
	Title       string
	Description string
	Color       string
	URL         string
}

// Sections lists the landing page cards in navigation order.
var Sections = []Section{
	{Title: "nav.patients", Description: "home.patients", Color: "#2E86DE", URL: "/pacientes"},
	{Title: "nav.doctors", Description: "home.doctors", Color: "#28B463", URL: "/medicos"},
	{Title: "nav.appts", Description: "home.appts", Color: "#17A2B8", URL: "/citas"},
	{Title: "nav.consults", Description: "home.consults", Color: "#F1C40F", URL: "/consultas"},
	{Title: "nav.invoices", Description: "home.invoices", Color: "#C0392B", URL: "/facturas"},
}

// App is the console root handler.
type App struct {
	mux      *http.ServeMux
	handler  http.Handler
	services handlers.Services
	opts     Options
}

// New builds the console handler with every route and middleware applied.
func New(opts Options) *App {
	if opts.RedirectDelay == 0 {
		opts.RedirectDelay = handlers.DefaultRedirectDelay
	}
	tpl := opts.Templates
	if tpl == nil {
		tpl = web.Templates()
	}
	view.SetFS(tpl)
	view.SetDev(opts.Dev)
	view.SetLangResolver(middleware.LangFrom)
	view.SetFlashResolver(func(w http.ResponseWriter, r *http.Request) any {
		return middleware.PopFlash(w, r)
	})

	app := &App{
		mux:      http.NewServeMux(),
		services: handlers.NewServices(opts.API),
		opts:     opts,
	}
	app.setupRoutes()

	var h http.Handler = middleware.PrefsWithDefault(opts.Lang)(app.mux)
	h = middleware.Recover(h)
	h = middleware.Logger(h)
	app.handler = middleware.RequestID(opts.Logger)(h)
	return app
}

// ServeHTTP runs the request through request id, access log, recovery and
// language preferences, outermost first.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

func (a *App) setupRoutes() {
	delay := a.opts.RedirectDelay
	s := a.services

	a.mux.HandleFunc("GET /{$}", a.landingPage)
	a.mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	a.mux.HandleFunc("GET /healthz", a.healthz)

	ph := handlers.NewPatientHandler(s.Patients, delay)
	a.mux.HandleFunc("GET /pacientes", ph.List)
	a.mux.HandleFunc("GET /pacientes/nuevo", ph.New)
	a.mux.HandleFunc("POST /pacientes", ph.Create)
	a.mux.HandleFunc("GET /pacientes/editar/{id}", ph.Edit)
	a.mux.HandleFunc("POST /pacientes/editar/{id}", ph.Update)
	a.mux.HandleFunc("GET /pacientes/eliminar/{id}", ph.ConfirmDelete)
	a.mux.HandleFunc("POST /pacientes/eliminar/{id}", ph.Delete)
	a.mux.HandleFunc("GET /pacientes/historia/{id}", ph.History)
	a.mux.HandleFunc("POST /pacientes/historia/{id}", ph.AddAntecedent)

	dh := handlers.NewDoctorHandler(s.Doctors, delay)
	a.mux.HandleFunc("GET /medicos", dh.List)
	a.mux.HandleFunc("GET /medicos/nuevo", dh.New)
	a.mux.HandleFunc("POST /medicos", dh.Create)
	a.mux.HandleFunc("GET /medicos/editar/{id}", dh.Edit)
	a.mux.HandleFunc("POST /medicos/editar/{id}", dh.Update)
	a.mux.HandleFunc("GET /medicos/eliminar/{id}", dh.ConfirmDelete)
	a.mux.HandleFunc("POST /medicos/eliminar/{id}", dh.Delete)
	a.mux.HandleFunc("GET /especialidades", dh.Specialties)
	a.mux.HandleFunc("POST /especialidades", dh.CreateSpecialty)

	ah := handlers.NewAppointmentHandler(s, delay)
	a.mux.HandleFunc("GET /citas", ah.List)
	a.mux.HandleFunc("GET /citas/nueva", ah.New)
	a.mux.HandleFunc("POST /citas", ah.Create)
	a.mux.HandleFunc("GET /citas/editar/{id}", ah.Edit)
	a.mux.HandleFunc("POST /citas/editar/{id}", ah.Update)
	a.mux.HandleFunc("GET /citas/eliminar/{id}", ah.ConfirmDelete)
	a.mux.HandleFunc("POST /citas/eliminar/{id}", ah.Delete)

	ch := handlers.NewConsultationHandler(s.Consultations, delay)
	a.mux.HandleFunc("GET /consultas", ch.List)
	a.mux.HandleFunc("GET /consultas/nueva", ch.New)
	a.mux.HandleFunc("POST /consultas", ch.Create)
	a.mux.HandleFunc("GET /consultas/editar/{id}", ch.Edit)
	a.mux.HandleFunc("POST /consultas/editar/{id}", ch.Update)
	a.mux.HandleFunc("GET /consultas/eliminar/{id}", ch.ConfirmDelete)
	a.mux.HandleFunc("POST /consultas/eliminar/{id}", ch.Delete)

	ih := handlers.NewInvoiceHandler(s, delay)
	a.mux.HandleFunc("GET /facturas", ih.List)
	a.mux.HandleFunc("GET /facturas/nueva", ih.New)
	a.mux.HandleFunc("POST /facturas", ih.Create)
	a.mux.HandleFunc("GET /facturas/editar/{id}", ih.Edit)
	a.mux.HandleFunc("POST /facturas/editar/{id}", ih.Update)
	a.mux.HandleFunc("GET /facturas/eliminar/{id}", ih.ConfirmDelete)
	a.mux.HandleFunc("POST /facturas/eliminar/{id}", ih.Delete)
	a.mux.HandleFunc("GET /facturas/{id}/descargar/{format}", ih.Download)
	a.mux.HandleFunc("POST /facturas/pagar/{id}", ih.MarkPaid)
	a.mux.HandleFunc("POST /facturas/detalles/{id}", ih.AddDetail)

	a.mux.HandleFunc("/", handlers.NotFound)
}

func (a *App) landingPage(w http.ResponseWriter, r *http.Request) {
	if err := view.Render(w, r, "home.html", map[string]any{"Sections": Sections}); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("render home")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// healthz checks that the REST API answers a cheap collection read.
func (a *App) healthz(w http.ResponseWriter, r *http.Request) {
	if _, err := a.services.Doctors.Specialties(r.Context()); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("api unreachable")
		httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "api": a.opts.API.BaseURL()})
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
