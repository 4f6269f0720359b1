package api

import (
	"errors"
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/YamileOchoa/Hospital-System/httpx"
	"github.com/YamileOchoa/Hospital-System/internal/invoicepdf"
	"github.com/YamileOchoa/Hospital-System/internal/models"
	"github.com/YamileOchoa/Hospital-System/internal/services"
)

type invoiceRoutes struct {
	*collection[models.Invoice, *models.Invoice]
}

func newInvoiceRoutes(db *gorm.DB) *invoiceRoutes {
	col := newCollection[models.Invoice](db, "Factura no encontrada")
	col.check = checkInvoice
	col.beforeDelete = func(tx *gorm.DB, id int64) error {
		return tx.Where("id_factura = ?", id).Delete(&models.InvoiceDetail{}).Error
	}
	return &invoiceRoutes{collection: col}
}

func validStatus(status string) error {
	if !slices.Contains(models.InvoiceStatuses, status) {
		return echo.NewHTTPError(http.StatusBadRequest, "Estado de factura inválido: "+status)
	}
	return nil
}

func checkInvoice(tx *gorm.DB, inv *models.Invoice, _ int64) error {
	if inv.Status == "" {
		inv.Status = models.InvoicePending
	}
	if err := validStatus(inv.Status); err != nil {
		return err
	}
	var n int64
	if err := tx.Model(&models.Patient{}).Where("id_paciente = ?", inv.PatientID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Paciente no encontrado")
	}
	inv.Details = nil
	return nil
}

func (ir *invoiceRoutes) byPatient(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	out := []models.Invoice{}
	if err := ir.db.WithContext(c.Request().Context()).Where("id_paciente = ?", id).Find(&out).Error; err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

type statusChange struct {
	Status string `json:"estado" validate:"required"`
}

// setStatus changes only the estado column.
func (ir *invoiceRoutes) setStatus(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	inv, err := ir.find(c, id)
	if err != nil {
		return err
	}
	var body statusChange
	if err := bind(c, &body); err != nil {
		return err
	}
	if err := validStatus(body.Status); err != nil {
		return err
	}
	if err := ir.db.WithContext(c.Request().Context()).Model(inv).Update("estado", body.Status).Error; err != nil {
		return err
	}
	inv.Status = body.Status
	return c.JSON(http.StatusOK, inv)
}

func (ir *invoiceRoutes) loadDetails(c echo.Context, id int64) ([]models.InvoiceDetail, error) {
	out := []models.InvoiceDetail{}
	err := ir.db.WithContext(c.Request().Context()).Where("id_factura = ?", id).Order("id_detalle_factura").Find(&out).Error
	return out, err
}

func (ir *invoiceRoutes) details(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if _, err := ir.find(c, id); err != nil {
		return err
	}
	out, err := ir.loadDetails(c, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (ir *invoiceRoutes) addDetail(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if _, err := ir.find(c, id); err != nil {
		return err
	}
	var d models.InvoiceDetail
	if err := bind(c, &d); err != nil {
		return err
	}
	d.ID = 0
	d.InvoiceID = id
	if err := ir.db.WithContext(c.Request().Context()).Create(&d).Error; err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, d)
}

// pdf renders the invoice with its patient and detail lines. A patient
// that no longer exists prints as N/A.
func (ir *invoiceRoutes) pdf(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	inv, err := ir.find(c, id)
	if err != nil {
		return err
	}
	var patient models.Patient
	err = ir.db.WithContext(c.Request().Context()).First(&patient, inv.PatientID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	details, err := ir.loadDetails(c, id)
	if err != nil {
		return err
	}
	doc, err := invoicepdf.Render(*inv, patient, details)
	if err != nil {
		return err
	}
	httpx.Attachment(c.Response(), services.DocumentFilename(id, services.FormatPDF), "application/pdf", doc)
	return nil
}
