package models

// Appointment statuses.
const (
	AppointmentScheduled = "programada"
	AppointmentAttended  = "atendida"
	AppointmentCancelled = "cancelada"
)

// AppointmentStatuses lists the values offered by the appointment form.
var AppointmentStatuses = []string{AppointmentScheduled, AppointmentAttended, AppointmentCancelled}

// Appointment is a scheduled visit of a patient to a doctor.
type Appointment struct {
	ID        int64  `gorm:"column:id_cita;primaryKey" json:"idCita"`
	PatientID int64  `gorm:"column:id_paciente;index;not null" json:"idPaciente" validate:"required"`
	DoctorID  int64  `gorm:"column:id_medico;index;not null" json:"idMedico" validate:"required"`
	Date      string `gorm:"column:fecha;size:10;not null" json:"fecha" validate:"required"`
	Time      string `gorm:"column:hora;size:8;not null" json:"hora" validate:"required"`
	Reason    string `gorm:"column:motivo;size:255" json:"motivo,omitempty"`
	Status    string `gorm:"column:estado;size:20;default:programada" json:"estado,omitempty"`
}

func (Appointment) TableName() string { return "citas" }

func (a *Appointment) SetID(id int64) { a.ID = id }

// Badge returns the bootstrap badge colour for the appointment status.
func (a Appointment) Badge() string {
	switch a.Status {
	case AppointmentScheduled:
		return "bg-info"
	case AppointmentAttended:
		return "bg-success"
	default:
		return "bg-danger"
	}
}

func NewAppointment() Appointment {
	return Appointment{Status: AppointmentScheduled}
}

// Consultation records what happened during an attended appointment.
type Consultation struct {
	ID            int64  `gorm:"column:id_consulta;primaryKey" json:"idConsulta"`
	AppointmentID int64  `gorm:"column:id_cita;index;not null" json:"idCita" validate:"required"`
	DoctorID      int64  `gorm:"column:id_medico;index;not null" json:"idMedico" validate:"required"`
	PatientID     int64  `gorm:"column:id_paciente;index;not null" json:"idPaciente" validate:"required"`
	Date          string `gorm:"column:fecha;size:10;not null" json:"fecha" validate:"required"`
	Time          string `gorm:"column:hora;size:8" json:"hora,omitempty"`
	Reason        string `gorm:"column:motivo_consulta;size:255" json:"motivoConsulta,omitempty"`
	Observations  string `gorm:"column:observaciones;type:text" json:"observaciones,omitempty"`
}

func (Consultation) TableName() string { return "consultas" }

func (c *Consultation) SetID(id int64) { c.ID = id }
