package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/clinicemr/clinic/internal/entity"
	"github.com/clinicemr/clinic/internal/mocks"
	"github.com/clinicemr/clinic/internal/service"
)

func ctxWithUser(role entity.Role) (context.Context, entity.User) {
	user := entity.User{
		ID:       uuid.Must(uuid.NewV4()),
		Name:     "Test user",
		Email:    "user@example.com",
		Role:     role,
		ClinicID: uuid.Must(uuid.NewV4()),
	}

	return entity.CtxWithUser(context.Background(), user), user
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func requireDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func consultationInvoice() entity.Invoice {
	now := time.Now()

	inv := entity.Invoice{
		ID:          uuid.Must(uuid.NewV4()),
		PatientID:   uuid.Must(uuid.NewV4()),
		Number:      "INV-2026-000001",
		InvoiceDate: now,
		DueDate:     now.AddDate(0, 0, 30),
		Items: []entity.InvoiceItem{
			{Description: "Consultation", Quantity: dec("1"), UnitPrice: dec("100")},
		},
		TaxRate:        dec("10"),
		DiscountAmount: dec("5"),
		PaidAmount:     decimal.Zero,
		Status:         entity.InvoiceStatusDraft,
		Version:        1,
	}
	inv.Recalculate()

	return inv
}

func TestService_CreateInvoice(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	s := service.New(repo, nil)

	ctx, user := ctxWithUser(entity.RoleBilling)
	year := time.Now().Year()

	repo.EXPECT().NextInvoiceSequence(ctx, year).Return(int64(42), nil)
	repo.EXPECT().CreateInvoice(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, inv entity.Invoice) error {
		require.Equal(t, entity.InvoiceStatusDraft, inv.Status)
		require.Equal(t, user.ClinicID, inv.ClinicID)
		return nil
	})

	inv, err := s.CreateInvoice(ctx, entity.Invoice{
		PatientID: uuid.Must(uuid.NewV4()),
		DueDate:   time.Now().AddDate(0, 0, 30),
		Items: []entity.InvoiceItem{
			{Description: "Consultation", Quantity: dec("1"), UnitPrice: dec("100"), Total: dec("999")},
		},
		TaxRate:        dec("10"),
		DiscountAmount: dec("5"),
		PaidAmount:     dec("50"),
		Status:         entity.InvoiceStatusPaid,
	})
	require.NoError(t, err)

	require.Equal(t, entity.FormatInvoiceNumber(year, 42), inv.Number)
	require.Equal(t, entity.InvoiceStatusDraft, inv.Status)
	require.Equal(t, entity.PaymentStatusUnpaid, inv.PaymentStatus)
	require.Equal(t, user.ID, inv.CreatedBy)
	require.False(t, inv.InvoiceDate.IsZero())
	requireDec(t, "100", inv.Items[0].Total)
	requireDec(t, "100", inv.Subtotal)
	requireDec(t, "10", inv.TaxAmount)
	requireDec(t, "105", inv.TotalAmount)
	requireDec(t, "105", inv.BalanceAmount)
}

func TestService_CreateInvoice_ExplicitNumber(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	s := service.New(repo, nil)

	ctx, _ := ctxWithUser(entity.RoleClinicAdmin)

	in := consultationInvoice()
	in.Number = "CUSTOM-7"

	repo.EXPECT().CreateInvoice(ctx, gomock.Any()).
		Return(entity.ErrAlreadyExists)

	_, err := s.CreateInvoice(ctx, in)
	require.ErrorIs(t, err, entity.ErrAlreadyExists)
}

func TestService_CreateInvoice_Invalid(t *testing.T) {
	t.Parallel()

	for name, mutate := range map[string]func(inv *entity.Invoice){
		"no items":          func(inv *entity.Invoice) { inv.Items = nil },
		"no due date":       func(inv *entity.Invoice) { inv.DueDate = time.Time{} },
		"tax rate above":    func(inv *entity.Invoice) { inv.TaxRate = dec("100.01") },
		"discount too big":  func(inv *entity.Invoice) { inv.DiscountAmount = dec("110.01") },
		"tiny quantity":     func(inv *entity.Invoice) { inv.Items[0].Quantity = dec("0.009") },
		"unknown method":    func(inv *entity.Invoice) { inv.PaymentMethod = "Barter" },
		"negative discount": func(inv *entity.Invoice) { inv.DiscountAmount = dec("-1") },
	} {
		mutate := mutate
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			repo := mocks.NewMockRepository(ctrl)
			s := service.New(repo, nil)

			ctx, _ := ctxWithUser(entity.RoleBilling)

			in := consultationInvoice()
			in.Number = ""
			mutate(&in)

			_, err := s.CreateInvoice(ctx, in)
			require.ErrorIs(t, err, entity.ErrInvalidArgument)
		})
	}
}

func TestService_CreateInvoice_Unauthenticated(t *testing.T) {
	t.Parallel()

	s := service.New(mocks.NewMockRepository(gomock.NewController(t)), nil)

	_, err := s.CreateInvoice(context.Background(), consultationInvoice())
	require.ErrorIs(t, err, entity.ErrUnauthenticated)
}

func TestService_AddPayment(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	s := service.New(repo, nil)

	ctx, user := ctxWithUser(entity.RoleBilling)
	stored := consultationInvoice()

	passThrough := func(_ context.Context, inv entity.Invoice, p entity.Payment) (entity.Invoice, error) {
		require.Equal(t, user.ID, p.CreatedBy)
		require.False(t, p.ID.IsNil())

		inv.Version++
		inv.Payments = append(inv.Payments, p)
		stored = inv

		return inv, nil
	}

	repo.EXPECT().Invoice(ctx, stored.ID).DoAndReturn(func(context.Context, uuid.UUID) (entity.Invoice, error) {
		return stored, nil
	}).Times(4)
	repo.EXPECT().AddInvoicePayment(ctx, gomock.Any(), gomock.Any()).DoAndReturn(passThrough).Times(2)

	inv, err := s.AddPayment(ctx, stored.ID, dec("50"), entity.PaymentMethodCash, "", "")
	require.NoError(t, err)
	requireDec(t, "50", inv.PaidAmount)
	requireDec(t, "55", inv.BalanceAmount)
	require.Equal(t, entity.PaymentStatusPartial, inv.PaymentStatus)

	_, err = s.AddPayment(ctx, stored.ID, dec("55.01"), entity.PaymentMethodCash, "", "")
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	inv, err = s.AddPayment(ctx, stored.ID, dec("55"), entity.PaymentMethodCash, "", "")
	require.NoError(t, err)
	requireDec(t, "105", inv.PaidAmount)
	requireDec(t, "0", inv.BalanceAmount)
	require.Equal(t, entity.PaymentStatusPaid, inv.PaymentStatus)
	require.Equal(t, entity.InvoiceStatusPaid, inv.Status)
	require.Len(t, inv.Payments, 2)

	_, err = s.UpdateInvoice(ctx, stored.ID, entity.InvoiceUpdate{Notes: new(string)})
	require.ErrorIs(t, err, entity.ErrInvalidState)
}

func TestService_AddPayment_IdempotencyKey(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	s := service.New(repo, nil)

	ctx, _ := ctxWithUser(entity.RoleBilling)
	stored := consultationInvoice()

	t.Run("replayed key", func(t *testing.T) {
		repo.EXPECT().InvoicePaymentByKey(ctx, stored.ID, "key-1").Return(entity.Payment{Amount: dec("50")}, nil)
		repo.EXPECT().Invoice(ctx, stored.ID).Return(stored, nil)

		inv, err := s.AddPayment(ctx, stored.ID, dec("50"), entity.PaymentMethodCash, "", "key-1")
		require.NoError(t, err)
		requireDec(t, "0", inv.PaidAmount)
	})

	t.Run("concurrent replay", func(t *testing.T) {
		repo.EXPECT().InvoicePaymentByKey(ctx, stored.ID, "key-2").Return(entity.Payment{}, entity.ErrNotFound)
		repo.EXPECT().Invoice(ctx, stored.ID).Return(stored, nil).Times(2)
		repo.EXPECT().AddInvoicePayment(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ entity.Invoice, p entity.Payment) (entity.Invoice, error) {
				require.Equal(t, "key-2", p.IdempotencyKey)
				return entity.Invoice{}, entity.ErrAlreadyExists
			})

		_, err := s.AddPayment(ctx, stored.ID, dec("50"), entity.PaymentMethodCash, "", "key-2")
		require.NoError(t, err)
	})
}

func TestService_AddPayment_CancelledInvoice(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	s := service.New(repo, nil)

	ctx, _ := ctxWithUser(entity.RoleBilling)
	stored := consultationInvoice()
	stored.Status = entity.InvoiceStatusCancelled

	repo.EXPECT().Invoice(ctx, stored.ID).Return(stored, nil)

	_, err := s.AddPayment(ctx, stored.ID, dec("1"), entity.PaymentMethodCard, "", "")
	require.ErrorIs(t, err, entity.ErrInvalidState)
}

func TestService_UpdateInvoiceStatus(t *testing.T) {
	t.Parallel()

	ctx, _ := ctxWithUser(entity.RoleBilling)

	t.Run("paid settles the remainder", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRepository(ctrl)
		s := service.New(repo, nil)

		stored := consultationInvoice()
		stored.PaidAmount = dec("5")
		stored.Recalculate()

		repo.EXPECT().Invoice(ctx, stored.ID).Return(stored, nil)
		repo.EXPECT().AddInvoicePayment(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv entity.Invoice, p entity.Payment) (entity.Invoice, error) {
				requireDec(t, "100", p.Amount)
				require.Equal(t, entity.PaymentMethodCard, p.Method)
				return inv, nil
			})

		inv, err := s.UpdateInvoiceStatus(ctx, stored.ID, entity.InvoiceStatusPaid, entity.PaymentMethodCard, "R-1")
		require.NoError(t, err)
		require.Equal(t, entity.InvoiceStatusPaid, inv.Status)
		require.Equal(t, entity.PaymentStatusPaid, inv.PaymentStatus)
		require.Equal(t, "R-1", inv.PaymentReference)
		require.NotNil(t, inv.PaymentDate)
	})

	t.Run("sent", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRepository(ctrl)
		s := service.New(repo, nil)

		stored := consultationInvoice()

		repo.EXPECT().Invoice(ctx, stored.ID).Return(stored, nil)
		repo.EXPECT().UpdateInvoice(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, inv entity.Invoice) (entity.Invoice, error) {
				return inv, nil
			})

		inv, err := s.UpdateInvoiceStatus(ctx, stored.ID, entity.InvoiceStatusSent, "", "")
		require.NoError(t, err)
		require.Equal(t, entity.InvoiceStatusSent, inv.Status)
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRepository(ctrl)
		s := service.New(repo, nil)

		stored := consultationInvoice()

		repo.EXPECT().Invoice(ctx, stored.ID).Return(stored, nil)

		_, err := s.UpdateInvoiceStatus(ctx, stored.ID, "Archived", "", "")
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})

	t.Run("stale version", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRepository(ctrl)
		s := service.New(repo, nil)

		stored := consultationInvoice()

		repo.EXPECT().Invoice(ctx, stored.ID).Return(stored, nil)
		repo.EXPECT().UpdateInvoice(ctx, gomock.Any()).Return(entity.Invoice{}, entity.ErrConflict)

		_, err := s.UpdateInvoiceStatus(ctx, stored.ID, entity.InvoiceStatusCancelled, "", "")
		require.ErrorIs(t, err, entity.ErrConflict)
	})
}

func TestService_UpdateInvoice(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	s := service.New(repo, nil)

	ctx, _ := ctxWithUser(entity.RoleBilling)
	stored := consultationInvoice()

	rate := dec("20")

	repo.EXPECT().Invoice(ctx, stored.ID).Return(stored, nil)
	repo.EXPECT().UpdateInvoice(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, inv entity.Invoice) (entity.Invoice, error) {
			inv.Version++
			return inv, nil
		})

	inv, err := s.UpdateInvoice(ctx, stored.ID, entity.InvoiceUpdate{TaxRate: &rate})
	require.NoError(t, err)
	requireDec(t, "20", inv.TaxAmount)
	requireDec(t, "115", inv.TotalAmount)
	require.Equal(t, int64(2), inv.Version)

	repo.EXPECT().Invoice(ctx, gomock.Any()).Return(entity.Invoice{}, entity.ErrNotFound)

	_, err = s.UpdateInvoice(ctx, uuid.Must(uuid.NewV4()), entity.InvoiceUpdate{TaxRate: &rate})
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_InvoiceQueries(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	s := service.New(repo, nil)

	ctx, user := ctxWithUser(entity.RoleClinicAdmin)

	repo.EXPECT().Invoices(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, f entity.InvoiceFilter) ([]entity.Invoice, int, error) {
			require.Equal(t, user.ClinicID, f.ClinicID)
			return []entity.Invoice{consultationInvoice()}, 1, nil
		})

	_, total, err := s.Invoices(ctx, entity.InvoiceFilter{ClinicID: uuid.Must(uuid.NewV4()), Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, 1, total)

	repo.EXPECT().OverdueInvoices(ctx, user.ClinicID, gomock.Any()).Return(nil, nil)

	_, err = s.OverdueInvoices(ctx)
	require.NoError(t, err)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().InvoicesByDateRange(ctx, user.ClinicID, from, to).Return(nil, nil)

	_, err = s.InvoicesByDateRange(ctx, from, to)
	require.NoError(t, err)

	_, err = s.InvoicesByDateRange(ctx, to, from)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	repo.EXPECT().InvoiceSummary(ctx, user.ClinicID, gomock.Any()).Return(entity.NewInvoiceSummary(), nil)

	_, err = s.InvoiceSummary(ctx)
	require.NoError(t, err)

	repo.EXPECT().MarkOverdue(gomock.Any(), gomock.Any()).Return(int64(3), nil)
	require.NoError(t, s.ReconcileOverdue(context.Background()))
}
