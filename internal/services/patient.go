package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/YamileOchoa/Hospital-System/internal/apiclient"
	"github.com/YamileOchoa/Hospital-System/internal/models"
)

// ErrNoClinicalHistory is returned when a patient has no history record.
var ErrNoClinicalHistory = errors.New("patient has no clinical history")

const patientsPath = "/pacientes"

type PatientService struct {
	resource[models.Patient, *models.Patient]
	api *apiclient.Client
}

func NewPatientService(api *apiclient.Client) *PatientService {
	return &PatientService{
		resource: newResource[models.Patient](api, patientsPath),
		api:      api,
	}
}

// ClinicalHistory resolves the history record of a patient.
func (s *PatientService) ClinicalHistory(ctx context.Context, patientID int64) (*models.ClinicalHistory, error) {
	var h models.ClinicalHistory
	err := s.api.Get(ctx, fmt.Sprintf("%s/%d/historia", patientsPath, patientID), &h)
	if errors.Is(err, apiclient.ErrNotFound) {
		return nil, ErrNoClinicalHistory
	}
	if err != nil {
		return nil, err
	}
	if h.ID == 0 {
		return nil, ErrNoClinicalHistory
	}
	return &h, nil
}

func (s *PatientService) Antecedents(ctx context.Context, historyID int64) ([]models.Antecedent, error) {
	var out []models.Antecedent
	if err := s.api.Get(ctx, antecedentsPath(historyID), &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Antecedent{}
	}
	return out, nil
}

// AddAntecedent appends one entry to a history.
func (s *PatientService) AddAntecedent(ctx context.Context, historyID int64, a *models.Antecedent) (*models.Antecedent, error) {
	a.HistoryID = historyID
	var out models.Antecedent
	if err := s.api.Post(ctx, antecedentsPath(historyID), a, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func antecedentsPath(historyID int64) string {
	return fmt.Sprintf("/historias/%d/antecedentes", historyID)
}
