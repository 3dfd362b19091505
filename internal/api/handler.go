package api

import (
	"context"
	"net/http"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/clinicemr/clinic/internal/entity"
)

// @title Clinic API
// @version 1.0
// @description Invoices and specialist referrals of the clinic EMR
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks

type Service interface {
	CreateInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error)
	Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	Invoices(ctx context.Context, f entity.InvoiceFilter) ([]entity.Invoice, int, error)
	UpdateInvoice(ctx context.Context, id uuid.UUID, u entity.InvoiceUpdate) (entity.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, id uuid.UUID, status entity.InvoiceStatus, method entity.PaymentMethod, reference string) (entity.Invoice, error)
	AddPayment(ctx context.Context, id uuid.UUID, amount decimal.Decimal, method entity.PaymentMethod, reference string, idempotencyKey string) (entity.Invoice, error)
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
	OverdueInvoices(ctx context.Context) ([]entity.Invoice, error)
	InvoicesByDateRange(ctx context.Context, from, to time.Time) ([]entity.Invoice, error)
	InvoiceSummary(ctx context.Context) (entity.InvoiceSummary, error)

	CreateReferral(ctx context.Context, ref entity.Referral) (entity.Referral, error)
	Referral(ctx context.Context, id uuid.UUID) (entity.Referral, error)
	Referrals(ctx context.Context, f entity.ReferralFilter) ([]entity.Referral, int, error)
	UpdateReferralStatus(ctx context.Context, id uuid.UUID, status entity.ReferralStatus) (entity.Referral, error)
	ScheduleReferral(ctx context.Context, id uuid.UUID, appointmentDate time.Time) (entity.Referral, error)
	CompleteReferral(ctx context.Context, id uuid.UUID, outcome string, recommendations []string) (entity.Referral, error)
	CancelReferral(ctx context.Context, id uuid.UUID) (entity.Referral, error)
	MarkReferralNoShow(ctx context.Context, id uuid.UUID) (entity.Referral, error)
	AddReferralMedication(ctx context.Context, id uuid.UUID, m entity.Medication) (entity.Referral, error)
	AddReferralRecommendation(ctx context.Context, id uuid.UUID, text string) (entity.Referral, error)
	GenerateShareableLink(ctx context.Context, id uuid.UUID, baseURL string) (entity.Referral, error)
	DeactivateShareableLink(ctx context.Context, id uuid.UUID) (entity.Referral, error)
	SharedReferral(ctx context.Context, code string) (entity.SharedReferral, error)
	DeleteReferral(ctx context.Context, id uuid.UUID) error
}

type Handler struct {
	s             Service
	validate      *validator.Validate
	publicBaseURL string
}

func NewHandler(s Service, publicBaseURL string) *Handler {
	return &Handler{
		s:             s,
		validate:      newValidator(),
		publicBaseURL: publicBaseURL,
	}
}

// newValidator compares decimal fields as numbers so gte/lte/gt tags apply to money values.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		d, ok := field.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}

		f, _ := d.Float64()

		return f
	}, decimal.Decimal{})

	return v
}

type HealthResponse struct {
	Status string `json:"status"`
}

// HealthHandler reports that the service is up
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, HealthResponse{Status: "ok"})
}
