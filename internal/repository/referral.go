package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/clinicemr/clinic/internal/entity"
)

func (r *Repository) CreateReferral(ctx context.Context, ref entity.Referral) error {
	q, args, err := sq.Insert("referrals").
		Columns(referralColumns...).
		Values(referralValues(ref)...).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, q, args...)
	if err != nil {
		return linkCodeTaken(err)
	}

	return nil
}

func linkCodeTaken(err error) error {
	if constraint, ok := isUniqueViolation(err); ok && strings.Contains(constraint, "link_code") {
		return fmt.Errorf("%w: link code", entity.ErrAlreadyExists)
	}

	return err
}

func jsonArray[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}

func referralValues(ref entity.Referral) []any {
	link := linkColumns(ref.Link)

	return []any{
		ref.ID,
		nullUUID(ref.ClinicID),
		ref.PatientID,
		ref.PatientName,
		ref.SpecialistName,
		ref.Specialty,
		ref.SpecialistContact,
		ref.SpecialistAddress,
		ref.Reason,
		ref.ClinicalNotes,
		ref.Urgency,
		ref.Status,
		ref.ReferralDate,
		ref.AppointmentDate,
		ref.Outcome,
		jsonArray(ref.Recommendations),
		jsonArray(ref.Medications),
		nullUUID(ref.ReferredBy),
		ref.ReferringProvider,
		link.code,
		link.url,
		link.generatedAt,
		link.isActive,
		link.accessCount,
		link.lastAccessedAt,
		link.deactivatedAt,
		ref.CreatedBy,
		ref.CreatedAt,
		ref.UpdatedAt,
		ref.Version,
	}
}

type linkRow struct {
	code           zeronull.Text
	url            zeronull.Text
	generatedAt    *time.Time
	isActive       bool
	accessCount    int64
	lastAccessedAt *time.Time
	deactivatedAt  *time.Time
}

func linkColumns(l *entity.ShareableLink) linkRow {
	if l == nil {
		return linkRow{}
	}

	generatedAt := l.GeneratedAt

	return linkRow{
		code:           zeronull.Text(l.Code),
		url:            zeronull.Text(l.URL),
		generatedAt:    &generatedAt,
		isActive:       l.IsActive,
		accessCount:    l.AccessCount,
		lastAccessedAt: l.LastAccessedAt,
		deactivatedAt:  l.DeactivatedAt,
	}
}

func (l linkRow) link() *entity.ShareableLink {
	if l.code == "" {
		return nil
	}

	link := &entity.ShareableLink{
		Code:           string(l.code),
		URL:            string(l.url),
		IsActive:       l.isActive,
		AccessCount:    l.accessCount,
		LastAccessedAt: l.lastAccessedAt,
		DeactivatedAt:  l.deactivatedAt,
	}

	if l.generatedAt != nil {
		link.GeneratedAt = *l.generatedAt
	}

	return link
}

func (r *Repository) Referral(ctx context.Context, id uuid.UUID) (entity.Referral, error) {
	return scanReferral(r.db.QueryRow(ctx, selectReferral+" WHERE id = $1", id))
}

// UpdateReferral stores ref if its version is still current and returns it with the bumped version.
// Access counters are owned by ReferralByLinkCode and only reset when the link code changes.
func (r *Repository) UpdateReferral(ctx context.Context, ref entity.Referral) (entity.Referral, error) {
	const q = `
	UPDATE referrals SET
		patient_name = $1,
		specialist_name = $2,
		specialty = $3,
		specialist_contact = $4,
		specialist_address = $5,
		reason = $6,
		clinical_notes = $7,
		urgency = $8,
		status = $9,
		appointment_date = $10,
		outcome = $11,
		recommendations = $12,
		medications = $13,
		link_code = $14,
		link_url = $15,
		link_generated_at = $16,
		link_is_active = $17,
		link_access_count = CASE WHEN link_code IS DISTINCT FROM $14 THEN $18 ELSE link_access_count END,
		link_last_access_at = CASE WHEN link_code IS DISTINCT FROM $14 THEN $19 ELSE link_last_access_at END,
		link_deactivated_at = $20,
		updated_at = $21,
		version = version + 1
	WHERE id = $22 AND version = $23
	RETURNING version, link_access_count, link_last_access_at`

	link := linkColumns(ref.Link)

	var (
		accessCount    int64
		lastAccessedAt *time.Time
	)

	err := r.db.QueryRow(
		ctx,
		q,
		ref.PatientName,
		ref.SpecialistName,
		ref.Specialty,
		ref.SpecialistContact,
		ref.SpecialistAddress,
		ref.Reason,
		ref.ClinicalNotes,
		ref.Urgency,
		ref.Status,
		ref.AppointmentDate,
		ref.Outcome,
		jsonArray(ref.Recommendations),
		jsonArray(ref.Medications),
		link.code,
		link.url,
		link.generatedAt,
		link.isActive,
		link.accessCount,
		link.lastAccessedAt,
		link.deactivatedAt,
		ref.UpdatedAt,
		ref.ID,
		ref.Version,
	).Scan(&ref.Version, &accessCount, &lastAccessedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Referral{}, r.versionMismatch(ctx, "referrals", ref.ID)
		}

		return entity.Referral{}, linkCodeTaken(err)
	}

	if ref.Link != nil {
		link := *ref.Link
		link.AccessCount = accessCount
		link.LastAccessedAt = lastAccessedAt
		ref.Link = &link
	}

	return ref, nil
}

// ReferralByLinkCode resolves an active shareable link and counts the access in the same statement.
// Unknown and deactivated codes both return ErrNotFound.
func (r *Repository) ReferralByLinkCode(ctx context.Context, code string, now time.Time) (entity.Referral, error) {
	q := `
	UPDATE referrals
	SET link_access_count = link_access_count + 1, link_last_access_at = $2
	WHERE link_code = $1 AND link_is_active
	RETURNING ` + strings.Join(referralColumns, ", ")

	return scanReferral(r.db.QueryRow(ctx, q, code, now))
}

func (r *Repository) DeleteReferral(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM referrals WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) Referrals(ctx context.Context, f entity.ReferralFilter) ([]entity.Referral, int, error) {
	stmt := sq.Select(referralColumns...).
		Column("COUNT(*) OVER() AS total_count").
		From("referrals").
		PlaceholderFormat(sq.Dollar)

	stmt = applyReferralFilter(stmt, f).
		Limit(f.Limit).
		Offset(f.Page*f.Limit - f.Limit).
		OrderBy(fmt.Sprintf("%s %s", f.SortBy, f.OrderBy))

	q, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	referrals := make([]entity.Referral, 0, f.Limit)

	var totalCount int

	for rows.Next() {
		ref, err := scanReferral(rows, &totalCount)
		if err != nil {
			return nil, 0, err
		}

		referrals = append(referrals, ref)
	}

	return referrals, totalCount, rows.Err()
}

func applyReferralFilter(stmt sq.SelectBuilder, f entity.ReferralFilter) sq.SelectBuilder {
	if !f.ClinicID.IsNil() {
		stmt = stmt.Where(sq.Eq{"clinic_id": f.ClinicID})
	}

	if f.PatientID != nil {
		stmt = stmt.Where(sq.Eq{"patient_id": *f.PatientID})
	}

	if f.Status != nil {
		stmt = stmt.Where(sq.Eq{"status": *f.Status})
	}

	if f.Urgency != nil {
		stmt = stmt.Where(sq.Eq{"urgency": *f.Urgency})
	}

	return stmt
}

func scanReferral(row pgx.Row, extra ...any) (entity.Referral, error) {
	var (
		ref        entity.Referral
		clinicID   uuid.NullUUID
		referredBy uuid.NullUUID
		link       linkRow
	)

	dest := []any{
		&ref.ID,
		&clinicID,
		&ref.PatientID,
		&ref.PatientName,
		&ref.SpecialistName,
		&ref.Specialty,
		&ref.SpecialistContact,
		&ref.SpecialistAddress,
		&ref.Reason,
		&ref.ClinicalNotes,
		&ref.Urgency,
		&ref.Status,
		&ref.ReferralDate,
		&ref.AppointmentDate,
		&ref.Outcome,
		&ref.Recommendations,
		&ref.Medications,
		&referredBy,
		&ref.ReferringProvider,
		&link.code,
		&link.url,
		&link.generatedAt,
		&link.isActive,
		&link.accessCount,
		&link.lastAccessedAt,
		&link.deactivatedAt,
		&ref.CreatedBy,
		&ref.CreatedAt,
		&ref.UpdatedAt,
		&ref.Version,
	}

	err := row.Scan(append(dest, extra...)...)
	if err != nil {
		return entity.Referral{}, notFound(err)
	}

	ref.ClinicID = clinicID.UUID
	ref.ReferredBy = referredBy.UUID
	ref.Link = link.link()

	return ref, nil
}
