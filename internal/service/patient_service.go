package service

import (
	"errors"
	"fmt"

	"patients-api/internal/models"
	"patients-api/pkg/pagination"
)

// ErrConfirmationRequired is returned when the destructive recreate
// operation is requested without an explicit confirmation.
var ErrConfirmationRequired = errors.New("confirmation is missing")

// PatientStore is the storage contract the service depends on.
// Implemented by repository.PatientRepository.
type PatientStore interface {
	GetPatientByEid(eid uint) (*models.Patient, error)
	FindFirstByFname(fname string) (*models.Patient, error)
	ListPatients(offset, limit int) ([]models.Patient, error)
	CountPatients() (int64, error)
	CreatePatient(patient *models.Patient) error
	RecreateTable(seed []models.Patient) error
}

type PatientService struct {
	store PatientStore
}

func NewPatientService(store PatientStore) *PatientService {
	return &PatientService{store: store}
}

// GetPatientByEid retrieves a single patient record by its eid
func (s *PatientService) GetPatientByEid(eid uint) (*models.Patient, error) {
	return s.store.GetPatientByEid(eid)
}

// FindPatientByName retrieves the first patient whose first name contains
// the given substring, or nil when no row matches. At most one row is
// returned even when several match; the lookup is lossy by contract.
func (s *PatientService) FindPatientByName(fname string) (*models.Patient, error) {
	return s.store.FindFirstByFname(fname)
}

// ListPatients retrieves one page of patients plus pagination metadata.
// A page past the last one yields an empty slice, not an error.
func (s *PatientService) ListPatients(params pagination.Params) ([]models.Patient, pagination.Meta, error) {
	total, err := s.store.CountPatients()
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("failed to count patients: %w", err)
	}

	patients, err := s.store.ListPatients(params.Offset(), params.PerPage)
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("failed to list patients: %w", err)
	}
	if patients == nil {
		patients = []models.Patient{}
	}

	return patients, pagination.BuildMeta(params, total), nil
}

// CreatePatient persists a new patient row; storage assigns the eid and
// the passed record is updated with it. Not idempotent: identical
// payloads create distinct rows.
func (s *PatientService) CreatePatient(patient *models.Patient) error {
	if err := s.store.CreatePatient(patient); err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

// RecreateDatabase drops and recreates the PATIENTS table and inserts
// the built-in sample records. Refuses to act unless confirmed is
// literally true; without confirmation no mutation happens.
func (s *PatientService) RecreateDatabase(confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}

	if err := s.store.RecreateTable(models.SamplePatients()); err != nil {
		return fmt.Errorf("failed to recreate database: %w", err)
	}
	return nil
}
