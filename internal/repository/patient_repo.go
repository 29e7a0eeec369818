package repository

import (
	"errors"

	"patients-api/internal/models"

	"gorm.io/gorm"
)

// ErrPatientNotFound is returned when a lookup by eid matches no row.
var ErrPatientNotFound = errors.New("patient not found")

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// GetPatientByEid retrieves a single patient by its eid
func (r *PatientRepository) GetPatientByEid(eid uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.Where("eid = ?", eid).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return &patient, nil
}

// FindFirstByFname retrieves the first patient whose first name contains
// the given substring, in storage order. Returns (nil, nil) when nothing
// matches; several rows may match and all but the first are dropped.
func (r *PatientRepository) FindFirstByFname(fname string) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.Where("fname LIKE ?", "%"+fname+"%").First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

// ListPatients retrieves one page of patients ordered by eid
func (r *PatientRepository) ListPatients(offset, limit int) ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.Order("eid ASC").
		Offset(offset).
		Limit(limit).
		Find(&patients).Error
	return patients, err
}

// CountPatients returns the total number of patient rows
func (r *PatientRepository) CountPatients() (int64, error) {
	var count int64
	err := r.db.Model(&models.Patient{}).Count(&count).Error
	return count, err
}

// CreatePatient inserts a new patient row; storage assigns the eid
func (r *PatientRepository) CreatePatient(patient *models.Patient) error {
	return r.db.Create(patient).Error
}

// Migrate creates the PATIENTS table if it does not exist yet
func (r *PatientRepository) Migrate() error {
	return r.db.AutoMigrate(&models.Patient{})
}

// RecreateTable drops the PATIENTS table (if present), creates it from
// the model definition and inserts the given seed rows. Destroys all
// existing data; callers are responsible for confirmation.
func (r *PatientRepository) RecreateTable(seed []models.Patient) error {
	migrator := r.db.Migrator()

	if migrator.HasTable(&models.Patient{}) {
		if err := migrator.DropTable(&models.Patient{}); err != nil {
			return err
		}
	}

	if err := migrator.CreateTable(&models.Patient{}); err != nil {
		return err
	}

	if len(seed) == 0 {
		return nil
	}
	return r.db.Create(&seed).Error
}
