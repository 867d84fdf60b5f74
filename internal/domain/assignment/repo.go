package assignment

import (
	"context"

	"github.com/google/uuid"
)

// MedicationRepository is the catalog side: resolve-or-create against the
// natural key is the only operation this subsystem needs.
type MedicationRepository interface {
	// ResolveOrCreate returns the id of the medication matching the triple
	// exactly (case- and whitespace-sensitive), inserting it first if no
	// such row exists. Calling it twice with the same triple returns the
	// same id both times.
	ResolveOrCreate(ctx context.Context, name, dosage, frequency string) (uuid.UUID, error)
}

// AssignmentRepository is the ledger. Ownership is enforced per operation:
// the role-scoped variants filter on the patient or caretaker column inside
// the write itself, so "not found" and "not yours" are indistinguishable by
// construction.
type AssignmentRepository interface {
	// Insert adds the assignment unless the (patient, medication) pair is
	// already present; it reports whether a row was actually written.
	Insert(ctx context.Context, a *Assignment) (bool, error)

	ListForPatient(ctx context.Context, patientID uuid.UUID) ([]ListEntry, error)
	ListForCaretaker(ctx context.Context, caretakerID uuid.UUID) ([]ListEntry, error)

	// Repoint* swap the medication reference on a single assignment,
	// conditional on the caller owning the row under their role's column.
	RepointMedicationAsPatient(ctx context.Context, id, patientID, medicationID uuid.UUID) (bool, error)
	RepointMedicationAsCaretaker(ctx context.Context, id, caretakerID, medicationID uuid.UUID) (bool, error)

	OwnedByPatient(ctx context.Context, id, patientID uuid.UUID) (bool, error)
	OwnedByCaretaker(ctx context.Context, id, caretakerID uuid.UUID) (bool, error)

	// Delete removes the row by id and reports whether it still existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
