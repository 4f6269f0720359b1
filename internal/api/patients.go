package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/YamileOchoa/Hospital-System/internal/models"
)

type patientRoutes struct {
	*collection[models.Patient, *models.Patient]
}

func newPatientRoutes(db *gorm.DB) *patientRoutes {
	col := newCollection[models.Patient](db, "Paciente no encontrado")
	col.check = checkPatient
	col.afterCreate = openHistory
	col.beforeDelete = deletePatientRecords
	return &patientRoutes{collection: col}
}

func checkPatient(tx *gorm.DB, p *models.Patient, id int64) error {
	if p.Status == "" {
		p.Status = models.StatusActive
	}
	var n int64
	if err := tx.Model(&models.Patient{}).Where("dni = ? AND id_paciente <> ?", p.DNI, id).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return echo.NewHTTPError(http.StatusConflict, "Ya existe un paciente con el DNI: "+p.DNI)
	}
	return nil
}

// openHistory gives every new patient an empty clinical history.
func openHistory(tx *gorm.DB, p *models.Patient) error {
	h := models.ClinicalHistory{
		PatientID:    p.ID,
		OpenedOn:     time.Now().Format(time.DateOnly),
		Observations: models.AutoHistoryNote,
	}
	if err := tx.Create(&h).Error; err != nil {
		return fmt.Errorf("open clinical history: %w", err)
	}
	return nil
}

func deletePatientRecords(tx *gorm.DB, id int64) error {
	histories := tx.Model(&models.ClinicalHistory{}).Select("id_historia").Where("id_paciente = ?", id)
	if err := tx.Where("id_historia IN (?)", histories).Delete(&models.Antecedent{}).Error; err != nil {
		return err
	}
	return tx.Where("id_paciente = ?", id).Delete(&models.ClinicalHistory{}).Error
}

// history returns the clinical history of the patient in :id.
func (pr *patientRoutes) history(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var h models.ClinicalHistory
	err = pr.db.WithContext(c.Request().Context()).Where("id_paciente = ?", id).First(&h).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(fmt.Sprintf("El paciente %d no tiene historia clínica", id))
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h)
}

func (pr *patientRoutes) findHistory(c echo.Context) (int64, error) {
	id, err := paramID(c)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := pr.db.WithContext(c.Request().Context()).Model(&models.ClinicalHistory{}).Where("id_historia = ?", id).Count(&n).Error; err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, notFound("Historia clínica no encontrada")
	}
	return id, nil
}

func (pr *patientRoutes) antecedents(c echo.Context) error {
	id, err := pr.findHistory(c)
	if err != nil {
		return err
	}
	out := []models.Antecedent{}
	if err := pr.db.WithContext(c.Request().Context()).Where("id_historia = ?", id).Order("id_antecedente").Find(&out).Error; err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (pr *patientRoutes) addAntecedent(c echo.Context) error {
	id, err := pr.findHistory(c)
	if err != nil {
		return err
	}
	var a models.Antecedent
	if err := bind(c, &a); err != nil {
		return err
	}
	a.ID = 0
	a.HistoryID = id
	if err := pr.db.WithContext(c.Request().Context()).Create(&a).Error; err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, a)
}
