package assignment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// =========== Medication catalog ===========

type medicationRepoPG struct{ pool *pgxpool.Pool }

func NewMedicationRepoPG(pool *pgxpool.Pool) MedicationRepository {
	return &medicationRepoPG{pool: pool}
}

// ResolveOrCreate is a single round trip: the conditional insert and the
// natural-key lookup run in one statement, so two concurrent calls with the
// same triple cannot both insert. The UNIQUE constraint on
// (name, dosage, frequency) backs the ON CONFLICT arm.
func (r *medicationRepoPG) ResolveOrCreate(ctx context.Context, name, dosage, frequency string) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `
		WITH ins AS (
			INSERT INTO medications (id, name, dosage, frequency)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (name, dosage, frequency) DO NOTHING
			RETURNING id
		)
		SELECT id FROM ins
		UNION ALL
		SELECT id FROM medications WHERE name = $2 AND dosage = $3 AND frequency = $4
		LIMIT 1`,
		uuid.New(), name, dosage, frequency).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// =========== Assignment ledger ===========

type assignmentRepoPG struct{ pool *pgxpool.Pool }

func NewAssignmentRepoPG(pool *pgxpool.Pool) AssignmentRepository {
	return &assignmentRepoPG{pool: pool}
}

func (r *assignmentRepoPG) Insert(ctx context.Context, a *Assignment) (bool, error) {
	a.ID = uuid.New()
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO assignments (id, patient_id, medication_id, caretaker_id, start_date)
		VALUES ($1, $2, $3, $4, CURRENT_DATE)
		ON CONFLICT (patient_id, medication_id) DO NOTHING`,
		a.ID, a.PatientID, a.MedicationID, a.CaretakerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *assignmentRepoPG) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]ListEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, m.name, m.dosage, m.frequency, a.start_date,
			COALESCE(c.name, '`+SelfAssigned+`') AS caretaker_name
		FROM assignments a
		JOIN medications m ON a.medication_id = m.id
		LEFT JOIN users c ON a.caretaker_id = c.id
		WHERE a.patient_id = $1
		ORDER BY a.created_at`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntries(rows, true)
}

func (r *assignmentRepoPG) ListForCaretaker(ctx context.Context, caretakerID uuid.UUID) ([]ListEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, m.name, m.dosage, m.frequency, a.start_date,
			p.name AS patient_name
		FROM assignments a
		JOIN medications m ON a.medication_id = m.id
		JOIN users p ON a.patient_id = p.id
		WHERE a.caretaker_id = $1
		ORDER BY a.created_at`, caretakerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntries(rows, false)
}

// scanEntries reads list rows; the sixth column is the counterpart name,
// placed in CaretakerName for a patient's view and PatientName for a
// caretaker's.
func scanEntries(rows pgx.Rows, patientView bool) ([]ListEntry, error) {
	var entries []ListEntry
	for rows.Next() {
		var e ListEntry
		var startDate time.Time
		var counterpart string
		if err := rows.Scan(&e.ID, &e.MedicationName, &e.MedicationDosage,
			&e.MedicationFrequency, &startDate, &counterpart); err != nil {
			return nil, err
		}
		e.StartDate = startDate.Format("2006-01-02")
		if patientView {
			e.CaretakerName = counterpart
		} else {
			e.PatientName = counterpart
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *assignmentRepoPG) RepointMedicationAsPatient(ctx context.Context, id, patientID, medicationID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE assignments SET medication_id = $3
		WHERE id = $1 AND patient_id = $2`,
		id, patientID, medicationID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *assignmentRepoPG) RepointMedicationAsCaretaker(ctx context.Context, id, caretakerID, medicationID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE assignments SET medication_id = $3
		WHERE id = $1 AND caretaker_id = $2`,
		id, caretakerID, medicationID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *assignmentRepoPG) OwnedByPatient(ctx context.Context, id, patientID uuid.UUID) (bool, error) {
	var owned bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM assignments WHERE id = $1 AND patient_id = $2)`,
		id, patientID).Scan(&owned)
	return owned, err
}

func (r *assignmentRepoPG) OwnedByCaretaker(ctx context.Context, id, caretakerID uuid.UUID) (bool, error) {
	var owned bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM assignments WHERE id = $1 AND caretaker_id = $2)`,
		id, caretakerID).Scan(&owned)
	return owned, err
}

func (r *assignmentRepoPG) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
