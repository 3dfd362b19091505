package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinicemr/clinic/internal/entity"
)

const uniqueViolation = "23505"

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

func isUniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return pgErr.ConstraintName, true
	}

	return "", false
}

// versionMismatch tells a stale version apart from a deleted row after a versioned update touched nothing.
func (r *Repository) versionMismatch(ctx context.Context, table string, id uuid.UUID) error {
	var exists bool

	err := r.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM "+table+" WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return err
	}

	if !exists {
		return entity.ErrNotFound
	}

	return entity.ErrConflict
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.ErrNotFound
	}

	return err
}

func nullUUID(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: !id.IsNil()}
}

func (r *Repository) Patient(ctx context.Context, id uuid.UUID) (entity.Patient, error) {
	const q = `
	SELECT id, clinic_id, first_name, last_name, email, phone, assigned_doctors::text[]
	FROM patients
	WHERE id = $1`

	var (
		p        entity.Patient
		clinicID uuid.NullUUID
		doctors  []string
	)

	err := r.db.QueryRow(ctx, q, id).Scan(
		&p.ID,
		&clinicID,
		&p.FirstName,
		&p.LastName,
		&p.Email,
		&p.Phone,
		&doctors,
	)
	if err != nil {
		return entity.Patient{}, notFound(err)
	}

	p.ClinicID = clinicID.UUID
	p.AssignedDoctors = make([]uuid.UUID, 0, len(doctors))

	for _, v := range doctors {
		doctorID, err := uuid.FromString(v)
		if err != nil {
			return entity.Patient{}, fmt.Errorf("parse assigned doctor %q: %w", v, err)
		}

		p.AssignedDoctors = append(p.AssignedDoctors, doctorID)
	}

	return p, nil
}

func (r *Repository) DoctorByUserID(ctx context.Context, userID uuid.UUID) (entity.Doctor, error) {
	const q = `
	SELECT id, user_id, clinic_id, first_name, last_name, phone, email, specialty
	FROM doctors
	WHERE user_id = $1`

	var (
		d        entity.Doctor
		clinicID uuid.NullUUID
	)

	err := r.db.QueryRow(ctx, q, userID).Scan(
		&d.ID,
		&d.UserID,
		&clinicID,
		&d.FirstName,
		&d.LastName,
		&d.Phone,
		&d.Email,
		&d.Specialty,
	)
	if err != nil {
		return entity.Doctor{}, notFound(err)
	}

	d.ClinicID = clinicID.UUID

	return d, nil
}
