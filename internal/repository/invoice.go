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

// NextInvoiceSequence atomically reserves the next invoice number of year.
func (r *Repository) NextInvoiceSequence(ctx context.Context, year int) (int64, error) {
	const q = `
	INSERT INTO invoice_counters (year, value)
	VALUES ($1, 1)
	ON CONFLICT (year) DO UPDATE SET value = invoice_counters.value + 1
	RETURNING value`

	var seq int64

	err := r.db.QueryRow(ctx, q, year).Scan(&seq)
	if err != nil {
		return 0, err
	}

	return seq, nil
}

func (r *Repository) CreateInvoice(ctx context.Context, inv entity.Invoice) error {
	q, args, err := sq.Insert("invoices").
		Columns(invoiceColumns...).
		Values(invoiceValues(inv)...).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, q, args...)
	if err != nil {
		if constraint, ok := isUniqueViolation(err); ok && strings.Contains(constraint, "invoice_number") {
			return fmt.Errorf("%w: %w: invoice number %s", entity.ErrInvalidArgument, entity.ErrAlreadyExists, inv.Number)
		}

		return err
	}

	return nil
}

func invoiceValues(inv entity.Invoice) []any {
	return []any{
		inv.ID,
		nullUUID(inv.ClinicID),
		inv.PatientID,
		inv.Number,
		inv.InvoiceDate,
		inv.DueDate,
		inv.Terms,
		inv.Items,
		inv.TaxRate,
		inv.DiscountAmount,
		inv.Subtotal,
		inv.TaxAmount,
		inv.TotalAmount,
		inv.PaidAmount,
		inv.BalanceAmount,
		inv.Status,
		inv.PaymentStatus,
		inv.PaymentMethod,
		inv.PaymentDate,
		inv.PaymentReference,
		inv.Insurance,
		inv.Notes,
		inv.InternalNotes,
		inv.CreatedBy,
		inv.CreatedAt,
		inv.UpdatedAt,
		inv.Version,
	}
}

// Invoice returns the invoice with its payment history.
func (r *Repository) Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	inv, err := scanInvoice(r.db.QueryRow(ctx, selectInvoice+" WHERE id = $1", id))
	if err != nil {
		return entity.Invoice{}, err
	}

	inv.Payments, err = r.invoicePayments(ctx, id)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("payments: %w", err)
	}

	return inv, nil
}

func (r *Repository) invoicePayments(ctx context.Context, invoiceID uuid.UUID) ([]entity.Payment, error) {
	rows, err := r.db.Query(ctx, selectPayment+" WHERE invoice_id = $1 ORDER BY paid_at", invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]entity.Payment, 0)

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}

		payments = append(payments, p)
	}

	return payments, rows.Err()
}

func (r *Repository) InvoicePaymentByKey(ctx context.Context, invoiceID uuid.UUID, key string) (entity.Payment, error) {
	return scanPayment(r.db.QueryRow(ctx, selectPayment+" WHERE invoice_id = $1 AND idempotency_key = $2", invoiceID, key))
}

// UpdateInvoice stores inv if its version is still current and returns it with the bumped version.
func (r *Repository) UpdateInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error) {
	return r.updateInvoice(ctx, r.db, inv)
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *Repository) updateInvoice(ctx context.Context, db querier, inv entity.Invoice) (entity.Invoice, error) {
	const q = `
	UPDATE invoices SET
		due_date = $1,
		terms = $2,
		items = $3,
		tax_rate = $4,
		discount_amount = $5,
		subtotal = $6,
		tax_amount = $7,
		total_amount = $8,
		paid_amount = $9,
		balance_amount = $10,
		status = $11,
		payment_status = $12,
		payment_method = $13,
		payment_date = $14,
		payment_reference = $15,
		insurance = $16,
		notes = $17,
		internal_notes = $18,
		updated_at = $19,
		version = version + 1
	WHERE id = $20 AND version = $21
	RETURNING version`

	err := db.QueryRow(
		ctx,
		q,
		inv.DueDate,
		inv.Terms,
		inv.Items,
		inv.TaxRate,
		inv.DiscountAmount,
		inv.Subtotal,
		inv.TaxAmount,
		inv.TotalAmount,
		inv.PaidAmount,
		inv.BalanceAmount,
		inv.Status,
		inv.PaymentStatus,
		inv.PaymentMethod,
		inv.PaymentDate,
		inv.PaymentReference,
		inv.Insurance,
		inv.Notes,
		inv.InternalNotes,
		inv.UpdatedAt,
		inv.ID,
		inv.Version,
	).Scan(&inv.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Invoice{}, r.versionMismatch(ctx, "invoices", inv.ID)
		}

		return entity.Invoice{}, err
	}

	return inv, nil
}

// AddInvoicePayment records p and stores inv in one transaction. A reused idempotency key
// is reported as ErrAlreadyExists.
func (r *Repository) AddInvoicePayment(ctx context.Context, inv entity.Invoice, p entity.Payment) (entity.Invoice, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.Invoice{}, err
	}

	defer tx.Rollback(ctx) //nolint:errcheck

	const q = `
	INSERT INTO invoice_payments (id, invoice_id, amount, method, reference, idempotency_key, paid_at, created_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = tx.Exec(ctx, q,
		p.ID,
		p.InvoiceID,
		p.Amount,
		p.Method,
		p.Reference,
		zeronull.Text(p.IdempotencyKey),
		p.PaidAt,
		p.CreatedBy,
	)
	if err != nil {
		if _, ok := isUniqueViolation(err); ok {
			return entity.Invoice{}, fmt.Errorf("%w: payment %s", entity.ErrAlreadyExists, p.IdempotencyKey)
		}

		return entity.Invoice{}, err
	}

	inv, err = r.updateInvoice(ctx, tx, inv)
	if err != nil {
		return entity.Invoice{}, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return entity.Invoice{}, err
	}

	inv.Payments = append(inv.Payments, p)

	return inv, nil
}

func (r *Repository) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) Invoices(ctx context.Context, f entity.InvoiceFilter) ([]entity.Invoice, int, error) {
	stmt := sq.Select(invoiceColumns...).
		Column("COUNT(*) OVER() AS total_count").
		From("invoices").
		PlaceholderFormat(sq.Dollar)

	stmt = applyInvoiceFilter(stmt, f).
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

	invoices := make([]entity.Invoice, 0, f.Limit)

	var totalCount int

	for rows.Next() {
		inv, err := scanInvoice(rows, &totalCount)
		if err != nil {
			return nil, 0, err
		}

		invoices = append(invoices, inv)
	}

	return invoices, totalCount, rows.Err()
}

func applyInvoiceFilter(stmt sq.SelectBuilder, f entity.InvoiceFilter) sq.SelectBuilder {
	if !f.ClinicID.IsNil() {
		stmt = stmt.Where(sq.Eq{"clinic_id": f.ClinicID})
	}

	if f.PatientID != nil {
		stmt = stmt.Where(sq.Eq{"patient_id": *f.PatientID})
	}

	if f.Status != nil {
		stmt = stmt.Where(sq.Eq{"status": *f.Status})
	}

	if f.PaymentStatus != nil {
		stmt = stmt.Where(sq.Eq{"payment_status": *f.PaymentStatus})
	}

	return stmt
}

var notCollectable = []entity.InvoiceStatus{entity.InvoiceStatusPaid, entity.InvoiceStatusCancelled}

// OverdueInvoices returns collectable invoices due before now, oldest due date first.
func (r *Repository) OverdueInvoices(ctx context.Context, clinicID uuid.UUID, now time.Time) ([]entity.Invoice, error) {
	stmt := sq.Select(invoiceColumns...).
		From("invoices").
		Where(sq.Lt{"due_date": now}).
		Where(sq.NotEq{"status": notCollectable}).
		OrderBy("due_date ASC").
		PlaceholderFormat(sq.Dollar)

	if !clinicID.IsNil() {
		stmt = stmt.Where(sq.Eq{"clinic_id": clinicID})
	}

	return r.queryInvoices(ctx, stmt)
}

// InvoicesByDateRange returns invoices dated within [from, to], both ends inclusive.
func (r *Repository) InvoicesByDateRange(ctx context.Context, clinicID uuid.UUID, from, to time.Time) ([]entity.Invoice, error) {
	stmt := sq.Select(invoiceColumns...).
		From("invoices").
		Where(sq.GtOrEq{"invoice_date": from}).
		Where(sq.LtOrEq{"invoice_date": to}).
		OrderBy("invoice_date ASC").
		PlaceholderFormat(sq.Dollar)

	if !clinicID.IsNil() {
		stmt = stmt.Where(sq.Eq{"clinic_id": clinicID})
	}

	return r.queryInvoices(ctx, stmt)
}

func (r *Repository) queryInvoices(ctx context.Context, stmt sq.SelectBuilder) ([]entity.Invoice, error) {
	q, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := make([]entity.Invoice, 0)

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}

		invoices = append(invoices, inv)
	}

	return invoices, rows.Err()
}

// MarkOverdue moves Draft and Sent invoices past their due date to Overdue.
func (r *Repository) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	const q = `
	UPDATE invoices
	SET status = $1, updated_at = $2, version = version + 1
	WHERE status IN ($3, $4) AND due_date < $2`

	result, err := r.db.Exec(ctx, q,
		entity.InvoiceStatusOverdue,
		now,
		entity.InvoiceStatusDraft,
		entity.InvoiceStatusSent,
	)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

func (r *Repository) InvoiceSummary(ctx context.Context, clinicID uuid.UUID, now time.Time) (entity.InvoiceSummary, error) {
	stmt := sq.Select(
		"status",
		"COUNT(*)",
		"COALESCE(SUM(total_amount), 0)",
		"COALESCE(SUM(paid_amount), 0)",
		"COALESCE(SUM(balance_amount), 0)",
	).
		Column(sq.Expr("COUNT(*) FILTER (WHERE due_date < ?)", now)).
		Column(sq.Expr("COALESCE(SUM(balance_amount) FILTER (WHERE due_date < ?), 0)", now)).
		From("invoices").
		GroupBy("status").
		PlaceholderFormat(sq.Dollar)

	if !clinicID.IsNil() {
		stmt = stmt.Where(sq.Eq{"clinic_id": clinicID})
	}

	q, args, err := stmt.ToSql()
	if err != nil {
		return entity.InvoiceSummary{}, err
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return entity.InvoiceSummary{}, err
	}
	defer rows.Close()

	summary := entity.NewInvoiceSummary()

	for rows.Next() {
		var t entity.InvoiceStatusTotals

		err = rows.Scan(&t.Status, &t.Count, &t.Total, &t.Paid, &t.Balance, &t.PastDueCount, &t.PastDueBalance)
		if err != nil {
			return entity.InvoiceSummary{}, err
		}

		summary.Add(t)
	}

	return summary, rows.Err()
}

func scanInvoice(row pgx.Row, extra ...any) (entity.Invoice, error) {
	var (
		inv      entity.Invoice
		clinicID uuid.NullUUID
	)

	dest := []any{
		&inv.ID,
		&clinicID,
		&inv.PatientID,
		&inv.Number,
		&inv.InvoiceDate,
		&inv.DueDate,
		&inv.Terms,
		&inv.Items,
		&inv.TaxRate,
		&inv.DiscountAmount,
		&inv.Subtotal,
		&inv.TaxAmount,
		&inv.TotalAmount,
		&inv.PaidAmount,
		&inv.BalanceAmount,
		&inv.Status,
		&inv.PaymentStatus,
		&inv.PaymentMethod,
		&inv.PaymentDate,
		&inv.PaymentReference,
		&inv.Insurance,
		&inv.Notes,
		&inv.InternalNotes,
		&inv.CreatedBy,
		&inv.CreatedAt,
		&inv.UpdatedAt,
		&inv.Version,
	}

	err := row.Scan(append(dest, extra...)...)
	if err != nil {
		return entity.Invoice{}, notFound(err)
	}

	inv.ClinicID = clinicID.UUID

	return inv, nil
}

func scanPayment(row pgx.Row) (entity.Payment, error) {
	var p entity.Payment

	err := row.Scan(
		&p.ID,
		&p.InvoiceID,
		&p.Amount,
		&p.Method,
		&p.Reference,
		(*zeronull.Text)(&p.IdempotencyKey),
		&p.PaidAt,
		&p.CreatedBy,
	)
	if err != nil {
		return entity.Payment{}, notFound(err)
	}

	return p, nil
}
