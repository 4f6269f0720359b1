package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/YamileOchoa/Hospital-System/internal/models"
)

type doctorRoutes struct {
	*collection[models.Doctor, *models.Doctor]
}

func newDoctorRoutes(db *gorm.DB) *doctorRoutes {
	col := newCollection[models.Doctor](db, "Médico no encontrado")
	col.preload = []string{"Specialty"}
	col.check = checkDoctor
	return &doctorRoutes{collection: col}
}

// checkDoctor resolves the specialty reference and keeps colegiatura
// unique.
func checkDoctor(tx *gorm.DB, d *models.Doctor, id int64) error {
	if d.Status == "" {
		d.Status = models.StatusActive
	}
	ref := d.SpecialtyRef()
	if ref == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "La especialidad es obligatoria")
	}
	var n int64
	if err := tx.Model(&models.Specialty{}).Where("id_especialidad = ?", ref).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Especialidad no encontrada: %d", ref))
	}
	d.SpecialtyID = &ref

	if err := tx.Model(&models.Doctor{}).Where("colegiatura = ? AND id_medico <> ?", d.License, id).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		if id == 0 {
			return echo.NewHTTPError(http.StatusConflict, "Ya existe un médico con la colegiatura: "+d.License)
		}
		return echo.NewHTTPError(http.StatusConflict, "Otra persona ya tiene esta colegiatura: "+d.License)
	}
	return nil
}

func (dr *doctorRoutes) specialties(c echo.Context) error {
	out := []models.Specialty{}
	if err := dr.db.WithContext(c.Request().Context()).Order("id_especialidad").Find(&out).Error; err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (dr *doctorRoutes) createSpecialty(c echo.Context) error {
	var s models.Specialty
	if err := bind(c, &s); err != nil {
		return err
	}
	s.ID = 0
	db := dr.db.WithContext(c.Request().Context())
	var n int64
	if err := db.Model(&models.Specialty{}).Where("nombre = ?", s.Name).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return echo.NewHTTPError(http.StatusConflict, "Ya existe la especialidad: "+s.Name)
	}
	if err := db.Create(&s).Error; err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, s)
}
