package assignment

import "errors"

var (
	ErrMissingField        = errors.New("name, dosage and frequency are required")
	ErrMissingPatient      = errors.New("patient_id is required when a caretaker adds a medication")
	ErrPatientNotFound     = errors.New("patient does not exist")
	ErrDuplicateAssignment = errors.New("medication already assigned to this patient")
	ErrNoAssignments       = errors.New("no medications found")
	// ErrNotOwner covers both a missing row and a row the caller does not
	// own; the two are deliberately not distinguished so callers cannot
	// probe for the existence of other users' assignments.
	ErrNotOwner    = errors.New("assignment not found or not authorized")
	ErrNotFound    = errors.New("no medication found to delete")
	ErrUnknownRole = errors.New("unauthorized role")
)
