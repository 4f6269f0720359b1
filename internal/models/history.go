package models

// Antecedent types offered by the medical-history form.
const (
	AntecedentAllergy = "alergias"
	AntecedentIllness = "enfermedades previas"
	AntecedentSurgery = "cirugías"
	AntecedentOther   = "otros"
)

var AntecedentTypes = []string{AntecedentAllergy, AntecedentIllness, AntecedentSurgery, AntecedentOther}

// AutoHistoryNote is stored on histories opened together with a new patient.
const AutoHistoryNote = "Historia clínica creada automáticamente"

// ClinicalHistory is the one-to-one medical record container of a patient.
type ClinicalHistory struct {
	ID           int64        `gorm:"column:id_historia;primaryKey" json:"idHistoria"`
	PatientID    int64        `gorm:"column:id_paciente;uniqueIndex;not null" json:"idPaciente"`
	OpenedOn     string       `gorm:"column:fecha_apertura;size:10" json:"fechaApertura,omitempty"`
	Observations string       `gorm:"column:observaciones;type:text" json:"observaciones,omitempty"`
	Antecedents  []Antecedent `gorm:"foreignKey:HistoryID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ClinicalHistory) TableName() string { return "historias_clinicas" }

// Antecedent is a single typed note under a clinical history.
type Antecedent struct {
	ID          int64  `gorm:"column:id_antecedente;primaryKey" json:"idAntecedente"`
	HistoryID   int64  `gorm:"column:id_historia;index;not null" json:"idHistoria"`
	Type        string `gorm:"column:tipo;size:40;not null" json:"tipo" validate:"required"`
	Description string `gorm:"column:descripcion;type:text;not null" json:"descripcion" validate:"required"`
}

func (Antecedent) TableName() string { return "antecedentes" }

func NewAntecedent() Antecedent {
	return Antecedent{Type: AntecedentAllergy}
}

// All returns every model managed by the reference API, in migration order.
func All() []any {
	return []any{
		&Specialty{},
		&Patient{},
		&Doctor{},
		&Appointment{},
		&Consultation{},
		&Invoice{},
		&InvoiceDetail{},
		&ClinicalHistory{},
		&Antecedent{},
	}
}
