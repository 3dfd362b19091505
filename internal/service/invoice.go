package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/clinicemr/clinic/internal/entity"
)

// CreateInvoice stores a new Draft invoice. Number is assigned from the yearly counter when empty.
func (s *Service) CreateInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Invoice{}, err
	}

	now := time.Now()

	inv.ID = uuid.Must(uuid.NewV4())
	inv.ClinicID = user.ClinicID
	inv.Status = entity.InvoiceStatusDraft
	inv.PaidAmount = decimal.Zero
	inv.PaymentDate = nil
	inv.PaymentReference = ""
	inv.Payments = nil
	inv.CreatedBy = user.ID
	inv.CreatedAt = now
	inv.UpdatedAt = now
	inv.Version = 1

	if inv.InvoiceDate.IsZero() {
		inv.InvoiceDate = now
	}

	inv.Recalculate()

	err = inv.Validate()
	if err != nil {
		return entity.Invoice{}, err
	}

	if inv.Number == "" {
		seq, err := s.repo.NextInvoiceSequence(ctx, now.Year())
		if err != nil {
			return entity.Invoice{}, fmt.Errorf("next invoice sequence: %w", err)
		}

		inv.Number = entity.FormatInvoiceNumber(now.Year(), seq)
	}

	err = s.repo.CreateInvoice(ctx, inv)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("create invoice: %w", err)
	}

	slog.InfoContext(ctx, "invoice created", "invoice_id", inv.ID, "number", inv.Number, "total", inv.TotalAmount)

	return inv, nil
}

func (s *Service) Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	inv, err := s.repo.Invoice(ctx, id)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get invoice %s: %w", id, err)
	}

	return inv, nil
}

func (s *Service) Invoices(ctx context.Context, f entity.InvoiceFilter) ([]entity.Invoice, int, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}

	f.ClinicID = user.ClinicID

	invoices, total, err := s.repo.Invoices(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}

	return invoices, total, nil
}

func (s *Service) UpdateInvoice(ctx context.Context, id uuid.UUID, u entity.InvoiceUpdate) (entity.Invoice, error) {
	inv, err := s.repo.Invoice(ctx, id)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get invoice %s: %w", id, err)
	}

	err = inv.ApplyUpdate(u, time.Now())
	if err != nil {
		return entity.Invoice{}, err
	}

	inv, err = s.repo.UpdateInvoice(ctx, inv)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("update invoice %s: %w", id, err)
	}

	return inv, nil
}

// UpdateInvoiceStatus applies a status change. Paid settles the whole remaining balance.
func (s *Service) UpdateInvoiceStatus(
	ctx context.Context,
	id uuid.UUID,
	status entity.InvoiceStatus,
	method entity.PaymentMethod,
	reference string,
) (entity.Invoice, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Invoice{}, err
	}

	inv, err := s.repo.Invoice(ctx, id)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get invoice %s: %w", id, err)
	}

	prev := inv.Status

	p, err := inv.SetStatus(status, method, reference, time.Now())
	if err != nil {
		return entity.Invoice{}, err
	}

	if p != nil {
		p.ID = uuid.Must(uuid.NewV4())
		p.CreatedBy = user.ID

		inv, err = s.repo.AddInvoicePayment(ctx, inv, *p)
	} else {
		inv, err = s.repo.UpdateInvoice(ctx, inv)
	}

	if err != nil {
		return entity.Invoice{}, fmt.Errorf("update invoice %s status: %w", id, err)
	}

	slog.InfoContext(ctx, "invoice status changed", "invoice_id", id, "from", prev, "to", inv.Status)

	return inv, nil
}

// AddPayment records a payment against the invoice. A repeated idempotency key returns the
// invoice as it is without applying the payment again.
func (s *Service) AddPayment(
	ctx context.Context,
	id uuid.UUID,
	amount decimal.Decimal,
	method entity.PaymentMethod,
	reference string,
	idempotencyKey string,
) (entity.Invoice, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Invoice{}, err
	}

	if idempotencyKey != "" {
		_, err = s.repo.InvoicePaymentByKey(ctx, id, idempotencyKey)
		if err == nil {
			return s.Invoice(ctx, id)
		}

		if !errors.Is(err, entity.ErrNotFound) {
			return entity.Invoice{}, fmt.Errorf("get payment by key: %w", err)
		}
	}

	inv, err := s.repo.Invoice(ctx, id)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get invoice %s: %w", id, err)
	}

	p, err := inv.AddPayment(amount, method, reference, time.Now())
	if err != nil {
		return entity.Invoice{}, err
	}

	p.ID = uuid.Must(uuid.NewV4())
	p.IdempotencyKey = idempotencyKey
	p.CreatedBy = user.ID

	inv, err = s.repo.AddInvoicePayment(ctx, inv, p)
	if err != nil {
		if idempotencyKey != "" && errors.Is(err, entity.ErrAlreadyExists) {
			return s.Invoice(ctx, id)
		}

		return entity.Invoice{}, fmt.Errorf("add payment to invoice %s: %w", id, err)
	}

	slog.InfoContext(ctx, "payment added",
		"invoice_id", id,
		"amount", amount,
		"method", method,
		"payment_status", inv.PaymentStatus,
	)

	return inv, nil
}

func (s *Service) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	err := s.repo.DeleteInvoice(ctx, id)
	if err != nil {
		return fmt.Errorf("delete invoice %s: %w", id, err)
	}

	slog.InfoContext(ctx, "invoice deleted", "invoice_id", id)

	return nil
}

func (s *Service) OverdueInvoices(ctx context.Context) ([]entity.Invoice, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	invoices, err := s.repo.OverdueInvoices(ctx, user.ClinicID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("overdue invoices: %w", err)
	}

	return invoices, nil
}

// InvoicesByDateRange returns invoices dated within [from, to].
func (s *Service) InvoicesByDateRange(ctx context.Context, from, to time.Time) ([]entity.Invoice, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end %s is before start %s", entity.ErrInvalidArgument, to, from)
	}

	invoices, err := s.repo.InvoicesByDateRange(ctx, user.ClinicID, from, to)
	if err != nil {
		return nil, fmt.Errorf("invoices by date range: %w", err)
	}

	return invoices, nil
}

func (s *Service) InvoiceSummary(ctx context.Context) (entity.InvoiceSummary, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.InvoiceSummary{}, err
	}

	summary, err := s.repo.InvoiceSummary(ctx, user.ClinicID, time.Now())
	if err != nil {
		return entity.InvoiceSummary{}, fmt.Errorf("invoice summary: %w", err)
	}

	return summary, nil
}

// ReconcileOverdue persists the Overdue status for invoices whose due date has passed.
func (s *Service) ReconcileOverdue(ctx context.Context) error {
	n, err := s.repo.MarkOverdue(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("mark overdue: %w", err)
	}

	if n > 0 {
		slog.InfoContext(ctx, "invoices marked overdue", "count", n)
	}

	return nil
}
