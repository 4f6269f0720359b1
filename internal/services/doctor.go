package services

import (
	"context"

	"github.com/YamileOchoa/Hospital-System/internal/apiclient"
	"github.com/YamileOchoa/Hospital-System/internal/models"
)

const (
	doctorsPath     = "/medicos"
	specialtiesPath = "/medicos/especialidades"
)

// DoctorService also manages specialties, which live under the doctor
// resource on the API.
type DoctorService struct {
	resource[models.Doctor, *models.Doctor]
	specialties resource[models.Specialty, *models.Specialty]
}

func NewDoctorService(api *apiclient.Client) *DoctorService {
	return &DoctorService{
		resource:    newResource[models.Doctor](api, doctorsPath),
		specialties: newResource[models.Specialty](api, specialtiesPath),
	}
}

func (s *DoctorService) Specialties(ctx context.Context) ([]models.Specialty, error) {
	return s.specialties.List(ctx)
}

func (s *DoctorService) CreateSpecialty(ctx context.Context, sp *models.Specialty) (*models.Specialty, error) {
	return s.specialties.Create(ctx, sp)
}

type AppointmentService struct {
	resource[models.Appointment, *models.Appointment]
}

func NewAppointmentService(api *apiclient.Client) *AppointmentService {
	return &AppointmentService{resource: newResource[models.Appointment](api, "/citas")}
}

type ConsultationService struct {
	resource[models.Consultation, *models.Consultation]
}

func NewConsultationService(api *apiclient.Client) *ConsultationService {
	return &ConsultationService{resource: newResource[models.Consultation](api, "/consultas")}
}
