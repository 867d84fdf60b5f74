package assignment

import (
	"time"

	"github.com/google/uuid"
)

// Medication maps to the medications table: the deduplicated drug catalog.
// The (name, dosage, frequency) triple is the natural key; rows are created
// lazily on first use and never updated or deleted. Rows no assignment
// references any more are left in place.
type Medication struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Dosage    string    `db:"dosage" json:"dosage"`
	Frequency string    `db:"frequency" json:"frequency"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Assignment maps to the assignments table: the link between a patient, a
// catalog medication, and the prescribing caretaker when one was involved.
// CaretakerID is nil for self-assigned medications. StartDate is fixed at
// creation; the only mutation ever applied is repointing MedicationID.
type Assignment struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	PatientID    uuid.UUID  `db:"patient_id" json:"patient_id"`
	MedicationID uuid.UUID  `db:"medication_id" json:"medication_id"`
	CaretakerID  *uuid.UUID `db:"caretaker_id" json:"caretaker_id,omitempty"`
	StartDate    time.Time  `db:"start_date" json:"start_date"`
}

// ListEntry is one row of a caller's assignment list. The counterpart name
// depends on who is asking: patients see the prescribing caretaker's name
// ("Self" when the assignment was self-created), caretakers see the
// patient's name.
type ListEntry struct {
	ID                  uuid.UUID `json:"id"`
	MedicationName      string    `json:"medication_name"`
	MedicationDosage    string    `json:"medication_dosage"`
	MedicationFrequency string    `json:"medication_frequency"`
	StartDate           string    `json:"start_date"`
	CaretakerName       string    `json:"caretaker_name,omitempty"`
	PatientName         string    `json:"patient_name,omitempty"`
}

// SelfAssigned is the sentinel shown in place of a caretaker name on rows a
// patient created for themselves.
const SelfAssigned = "Self"
