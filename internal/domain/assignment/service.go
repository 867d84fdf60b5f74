package assignment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/medtrack/medtrack/internal/domain/identity"
	"github.com/medtrack/medtrack/internal/platform/auth"
)

// Service implements the role-scoped assignment operations. All three
// stores are injected; nothing here holds state across requests.
type Service struct {
	medications MedicationRepository
	assignments AssignmentRepository
	users       identity.UserRepository
}

func NewService(meds MedicationRepository, assigns AssignmentRepository, users identity.UserRepository) *Service {
	return &Service{
		medications: meds,
		assignments: assigns,
		users:       users,
	}
}

type CreateInput struct {
	Name      string
	Dosage    string
	Frequency string
	// PatientID names the target patient; required for caretaker callers,
	// ignored for patients (who always assign to themselves).
	PatientID *uuid.UUID
}

// Create resolves the medication, inserts the assignment for the role's
// target patient, and returns the caller's refreshed list. The medication
// row persists even when a later check rejects the request; that orphan is
// reused on the next attempt.
func (s *Service) Create(ctx context.Context, caller auth.Caller, in CreateInput) ([]ListEntry, error) {
	if in.Name == "" || in.Dosage == "" || in.Frequency == "" {
		return nil, ErrMissingField
	}

	medicationID, err := s.medications.ResolveOrCreate(ctx, in.Name, in.Dosage, in.Frequency)
	if err != nil {
		return nil, fmt.Errorf("resolve medication: %w", err)
	}

	a := Assignment{MedicationID: medicationID}
	switch caller.Role {
	case auth.RolePatient:
		a.PatientID = caller.ID
	case auth.RoleCaretaker:
		if in.PatientID == nil {
			return nil, ErrMissingPatient
		}
		target, err := s.users.GetByID(ctx, *in.PatientID)
		if errors.Is(err, identity.ErrUserNotFound) {
			return nil, ErrPatientNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("look up patient: %w", err)
		}
		if target.Role != auth.RolePatient {
			return nil, ErrPatientNotFound
		}
		a.PatientID = *in.PatientID
		caretakerID := caller.ID
		a.CaretakerID = &caretakerID
	default:
		return nil, ErrUnknownRole
	}

	inserted, err := s.assignments.Insert(ctx, &a)
	if err != nil {
		return nil, fmt.Errorf("insert assignment: %w", err)
	}
	if !inserted {
		return nil, ErrDuplicateAssignment
	}

	return s.listFor(ctx, caller)
}

// List returns the caller's assignments shaped for their role. An empty
// result is reported as ErrNoAssignments rather than an empty list.
func (s *Service) List(ctx context.Context, caller auth.Caller) ([]ListEntry, error) {
	entries, err := s.listFor(ctx, caller)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoAssignments
	}
	return entries, nil
}

type UpdateInput struct {
	Name      string
	Dosage    string
	Frequency string
}

// Update repoints the assignment's medication to the row matching the new
// triple. The ownership check is the write's own filter: zero rows affected
// means the assignment does not exist or belongs to someone else, and the
// caller is not told which.
func (s *Service) Update(ctx context.Context, caller auth.Caller, id uuid.UUID, in UpdateInput) error {
	if in.Name == "" || in.Dosage == "" || in.Frequency == "" {
		return ErrMissingField
	}

	medicationID, err := s.medications.ResolveOrCreate(ctx, in.Name, in.Dosage, in.Frequency)
	if err != nil {
		return fmt.Errorf("resolve medication: %w", err)
	}

	var updated bool
	switch caller.Role {
	case auth.RolePatient:
		updated, err = s.assignments.RepointMedicationAsPatient(ctx, id, caller.ID, medicationID)
	case auth.RoleCaretaker:
		updated, err = s.assignments.RepointMedicationAsCaretaker(ctx, id, caller.ID, medicationID)
	default:
		return ErrUnknownRole
	}
	if err != nil {
		return fmt.Errorf("update assignment: %w", err)
	}
	if !updated {
		return ErrNotOwner
	}
	return nil
}

// Delete removes an assignment the caller owns under their role's column and
// returns the refreshed list. The ownership check runs first; a row that
// vanishes between the check and the delete surfaces as ErrNotFound.
func (s *Service) Delete(ctx context.Context, caller auth.Caller, id uuid.UUID) ([]ListEntry, error) {
	var owned bool
	var err error
	switch caller.Role {
	case auth.RolePatient:
		owned, err = s.assignments.OwnedByPatient(ctx, id, caller.ID)
	case auth.RoleCaretaker:
		owned, err = s.assignments.OwnedByCaretaker(ctx, id, caller.ID)
	default:
		return nil, ErrUnknownRole
	}
	if err != nil {
		return nil, fmt.Errorf("check ownership: %w", err)
	}
	if !owned {
		return nil, ErrNotOwner
	}

	deleted, err := s.assignments.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete assignment: %w", err)
	}
	if !deleted {
		return nil, ErrNotFound
	}

	return s.listFor(ctx, caller)
}

func (s *Service) listFor(ctx context.Context, caller auth.Caller) ([]ListEntry, error) {
	var entries []ListEntry
	var err error
	switch caller.Role {
	case auth.RolePatient:
		entries, err = s.assignments.ListForPatient(ctx, caller.ID)
	case auth.RoleCaretaker:
		entries, err = s.assignments.ListForCaretaker(ctx, caller.ID)
	default:
		return nil, ErrUnknownRole
	}
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return entries, nil
}
