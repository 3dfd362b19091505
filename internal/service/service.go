package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/clinicemr/clinic/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	NextInvoiceSequence(ctx context.Context, year int) (int64, error)
	CreateInvoice(ctx context.Context, inv entity.Invoice) error
	Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	UpdateInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error)
	AddInvoicePayment(ctx context.Context, inv entity.Invoice, p entity.Payment) (entity.Invoice, error)
	InvoicePaymentByKey(ctx context.Context, invoiceID uuid.UUID, key string) (entity.Payment, error)
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
	Invoices(ctx context.Context, f entity.InvoiceFilter) ([]entity.Invoice, int, error)
	OverdueInvoices(ctx context.Context, clinicID uuid.UUID, now time.Time) ([]entity.Invoice, error)
	InvoicesByDateRange(ctx context.Context, clinicID uuid.UUID, from, to time.Time) ([]entity.Invoice, error)
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
	InvoiceSummary(ctx context.Context, clinicID uuid.UUID, now time.Time) (entity.InvoiceSummary, error)

	Patient(ctx context.Context, id uuid.UUID) (entity.Patient, error)
	DoctorByUserID(ctx context.Context, userID uuid.UUID) (entity.Doctor, error)
	CreateReferral(ctx context.Context, ref entity.Referral) error
	Referral(ctx context.Context, id uuid.UUID) (entity.Referral, error)
	UpdateReferral(ctx context.Context, ref entity.Referral) (entity.Referral, error)
	ReferralByLinkCode(ctx context.Context, code string, now time.Time) (entity.Referral, error)
	DeleteReferral(ctx context.Context, id uuid.UUID) error
	Referrals(ctx context.Context, f entity.ReferralFilter) ([]entity.Referral, int, error)
}

type Notifier interface {
	SendNotification(ctx context.Context, n entity.Notification) error
}

type Service struct {
	repo     Repository
	notifier Notifier
}

func New(repo Repository, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
	}
}
