package models

import "strings"

// Status values shared by patients and doctors.
const (
	StatusActive   = "activo"
	StatusInactive = "inactivo"
)

// Patient is a person registered at the hospital.
type Patient struct {
	ID        int64  `gorm:"column:id_paciente;primaryKey" json:"idPaciente"`
	DNI       string `gorm:"column:dni;size:8;uniqueIndex;not null" json:"dni" validate:"required"`
	FirstName string `gorm:"column:nombres;size:100;not null" json:"nombres" validate:"required"`
	LastName  string `gorm:"column:apellidos;size:100;not null" json:"apellidos" validate:"required"`
	BirthDate string `gorm:"column:fecha_nacimiento;size:10" json:"fechaNacimiento,omitempty"`
	Sex       string `gorm:"column:sexo;size:1" json:"sexo,omitempty"`
	Address   string `gorm:"column:direccion;size:255" json:"direccion,omitempty"`
	Phone     string `gorm:"column:telefono;size:20" json:"telefono,omitempty"`
	Email     string `gorm:"column:correo;size:120" json:"correo,omitempty"`
	Status    string `gorm:"column:estado;size:20;default:activo" json:"estado,omitempty"`
}

func (Patient) TableName() string { return "pacientes" }

// SetID implements the keyed contract used by the service layer.
func (p *Patient) SetID(id int64) { p.ID = id }

// FullName returns "nombres apellidos" trimmed.
func (p Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// IsActive reports whether the patient is flagged as active.
func (p Patient) IsActive() bool { return p.Status == StatusActive }

// NewPatient returns the default record shown by an empty patient form.
func NewPatient() Patient {
	return Patient{Sex: "M", Status: StatusActive}
}

// Specialty is a medical specialty referenced by doctors.
type Specialty struct {
	ID          int64  `gorm:"column:id_especialidad;primaryKey" json:"idEspecialidad"`
	Name        string `gorm:"column:nombre;size:100;uniqueIndex;not null" json:"nombre,omitempty" validate:"required"`
	Description string `gorm:"column:descripcion;size:255" json:"descripcion,omitempty"`
}

func (Specialty) TableName() string { return "especialidades" }

func (s *Specialty) SetID(id int64) { s.ID = id }

// Doctor is a physician. The specialty travels as a reference object
// ({"idEspecialidad": n}) on the wire.
type Doctor struct {
	ID          int64      `gorm:"column:id_medico;primaryKey" json:"idMedico"`
	FirstName   string     `gorm:"column:nombres;size:100;not null" json:"nombres" validate:"required"`
	LastName    string     `gorm:"column:apellidos;size:100;not null" json:"apellidos" validate:"required"`
	License     string     `gorm:"column:colegiatura;size:30;uniqueIndex;not null" json:"colegiatura" validate:"required"`
	Phone       string     `gorm:"column:telefono;size:20" json:"telefono,omitempty"`
	Email       string     `gorm:"column:correo;size:120" json:"correo,omitempty"`
	Status      string     `gorm:"column:estado;size:20;default:activo" json:"estado,omitempty"`
	SpecialtyID *int64     `gorm:"column:id_especialidad;index" json:"-"`
	Specialty   *Specialty `gorm:"foreignKey:SpecialtyID;references:ID" json:"especialidad,omitempty" validate:"-"`
}

func (Doctor) TableName() string { return "medicos" }

func (d *Doctor) SetID(id int64) { d.ID = id }

func (d Doctor) FullName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}

func (d Doctor) IsActive() bool { return d.Status == StatusActive }

// SpecialtyRef returns the referenced specialty id, or 0 when unset.
func (d Doctor) SpecialtyRef() int64 {
	if d.Specialty != nil && d.Specialty.ID != 0 {
		return d.Specialty.ID
	}
	if d.SpecialtyID != nil {
		return *d.SpecialtyID
	}
	return 0
}

// SpecialtyName returns the embedded specialty name if the API sent one.
func (d Doctor) SpecialtyName() string {
	if d.Specialty == nil {
		return ""
	}
	return d.Specialty.Name
}

func NewDoctor() Doctor {
	return Doctor{Status: StatusActive}
}

// BadgeClass maps an active/inactive flag to a bootstrap badge colour.
func BadgeClass(status string) string {
	if status == StatusActive {
		return "bg-success"
	}
	return "bg-secondary"
}
