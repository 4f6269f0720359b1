// Package api is the reference REST backend the console talks to. It
// serves the hospital entities from gorm under /api.
package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/YamileOchoa/Hospital-System/internal/models"
)

// Prefix is the mount point of every API route.
const Prefix = "/api"

// New builds the echo instance with middleware, validation and routes.
func New(db *gorm.DB, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newValidator()
	e.HTTPErrorHandler = errorHandler
	e.Use(RequestID(logger))
	e.Use(Logger())
	e.Use(Recovery())

	registerRoutes(e.Group(Prefix), db)
	return e
}

func registerRoutes(g *echo.Group, db *gorm.DB) {
	patients := newPatientRoutes(db)
	g.GET("/pacientes/:id/historia", patients.history)
	patients.mount(g, "/pacientes")
	g.GET("/historias/:id/antecedentes", patients.antecedents)
	g.POST("/historias/:id/antecedentes", patients.addAntecedent)

	doctors := newDoctorRoutes(db)
	g.GET("/medicos/especialidades", doctors.specialties)
	g.POST("/medicos/especialidades", doctors.createSpecialty)
	doctors.mount(g, "/medicos")

	newCollection[models.Appointment](db, "Cita no encontrada").mount(g, "/citas")
	newCollection[models.Consultation](db, "Consulta no encontrada").mount(g, "/consultas")

	invoices := newInvoiceRoutes(db)
	g.GET("/facturas/paciente/:id", invoices.byPatient)
	g.PATCH("/facturas/:id/estado", invoices.setStatus)
	g.GET("/facturas/:id/detalles", invoices.details)
	g.POST("/facturas/:id/detalles", invoices.addDetail)
	g.GET("/facturas/:id/pdf", invoices.pdf)
	invoices.mount(g, "/facturas")
}

// requestValidator adapts validator/v10 to echo.Validator. Violations
// become a 400 listing the offending JSON fields.
type requestValidator struct {
	v *validator.Validate
}

func newValidator() *requestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &requestValidator{v: v}
}

func (rv *requestValidator) Validate(i any) error {
	if err := rv.v.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		if fe.Tag() == "required" {
			msgs = append(msgs, fmt.Sprintf("el campo %s es obligatorio", fe.Field()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("el campo %s no es válido (%s)", fe.Field(), fe.Tag()))
	}
	return strings.Join(msgs, ", ")
}

// errorHandler writes every error as {"message": "..."}.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status := http.StatusInternalServerError
	msg := http.StatusText(status)

	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		status = he.Code
		msg = fmt.Sprint(he.Message)
	case errors.Is(err, gorm.ErrRecordNotFound):
		status = http.StatusNotFound
		msg = "Registro no encontrado"
	default:
		zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("unhandled api error")
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, map[string]string{"message": msg})
	}
	if err != nil {
		zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("write error response")
	}
}

// paramID parses the :id path parameter.
func paramID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Identificador inválido: "+c.Param("id"))
	}
	return id, nil
}

// bind decodes the JSON body into in and validates it.
func bind(c echo.Context, in any) error {
	if err := c.Bind(in); err != nil {
		return err
	}
	return c.Validate(in)
}

func notFound(msg string) error {
	return echo.NewHTTPError(http.StatusNotFound, msg)
}
