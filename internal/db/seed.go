package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/YamileOchoa/Hospital-System/internal/models"
)

// baselineSpecialties are created once so doctors can be registered on a
// fresh database.
var baselineSpecialties = []models.Specialty{
	{Name: "Medicina General", Description: "Atención primaria y diagnóstico general"},
	{Name: "Cardiología", Description: "Enfermedades del corazón y del sistema circulatorio"},
	{Name: "Pediatría", Description: "Atención médica de niños y adolescentes"},
	{Name: "Ginecología", Description: "Salud del sistema reproductor femenino"},
	{Name: "Traumatología", Description: "Lesiones del aparato locomotor"},
}

// Seed inserts the baseline specialties. Running it twice is harmless.
func Seed(db *gorm.DB) error {
	for _, s := range baselineSpecialties {
		if err := db.Where(models.Specialty{Name: s.Name}).FirstOrCreate(&s).Error; err != nil {
			return fmt.Errorf("seed specialty %q: %w", s.Name, err)
		}
	}
	return nil
}
