package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/clinicemr/clinic/internal/api"
	"github.com/clinicemr/clinic/internal/entity"
	"github.com/clinicemr/clinic/internal/mocks"
)

const testToken = "dev"

type Tester struct {
	server      *httptest.Server
	serviceMock *mocks.MockService
	authMock    *mocks.MockAuthService
}

func NewTester(t *testing.T, publicBaseURL string) Tester {
	t.Helper()

	ctrl := gomock.NewController(t)
	serviceMock := mocks.NewMockService(ctrl)
	authMock := mocks.NewMockAuthService(ctrl)

	handler := api.NewHandler(serviceMock, publicBaseURL)
	mw := api.NewMiddleware(authMock)

	server := httptest.NewServer(api.NewRouter(handler, mw))
	t.Cleanup(server.Close)

	return Tester{
		server:      server,
		serviceMock: serviceMock,
		authMock:    authMock,
	}
}

func (tt Tester) loginAs(role entity.Role) entity.User {
	user := entity.User{
		ID:       uuid.Must(uuid.NewV4()),
		Name:     "Test user",
		Email:    "user@example.com",
		Role:     role,
		ClinicID: uuid.Must(uuid.NewV4()),
	}

	tt.authMock.EXPECT().User(gomock.Any(), testToken).Return(user, nil).AnyTimes()

	return user
}

func (tt Tester) do(t *testing.T, method, path string, body any, header http.Header) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader

	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)

		reader = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, tt.server.URL+path, reader)
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")

	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, data
}

func authHeader() http.Header {
	return http.Header{"Authorization": {"Bearer " + testToken}}
}

func testInvoice() entity.Invoice {
	now := time.Now()

	inv := entity.Invoice{
		ID:          uuid.Must(uuid.NewV4()),
		PatientID:   uuid.Must(uuid.NewV4()),
		Number:      "INV-2026-000001",
		InvoiceDate: now,
		DueDate:     now.AddDate(0, 0, 30),
		Items: []entity.InvoiceItem{
			{Description: "Consultation", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
		},
		TaxRate:        decimal.NewFromInt(10),
		DiscountAmount: decimal.NewFromInt(5),
		Status:         entity.InvoiceStatusDraft,
		Version:        1,
	}
	inv.Recalculate()

	return inv
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	tt := NewTester(t, "")

	resp, body := tt.do(t, http.MethodGet, "/api/health", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestHandler_Auth(t *testing.T) {
	t.Parallel()

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()

		tt := NewTester(t, "")

		resp, _ := tt.do(t, http.MethodGet, "/api/invoices", nil, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Parallel()

		tt := NewTester(t, "")
		tt.authMock.EXPECT().User(gomock.Any(), testToken).Return(entity.User{}, entity.ErrUnauthenticated)

		resp, _ := tt.do(t, http.MethodGet, "/api/invoices", nil, authHeader())
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("doctor cannot write invoices", func(t *testing.T) {
		t.Parallel()

		tt := NewTester(t, "")
		tt.loginAs(entity.RoleDoctor)

		resp, _ := tt.do(t, http.MethodDelete, "/api/invoices/"+uuid.Must(uuid.NewV4()).String(), nil, authHeader())
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("billing cannot use referrals", func(t *testing.T) {
		t.Parallel()

		tt := NewTester(t, "")
		tt.loginAs(entity.RoleBilling)

		resp, _ := tt.do(t, http.MethodGet, "/api/referrals", nil, authHeader())
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestHandler_CreateInvoice(t *testing.T) {
	t.Parallel()

	tt := NewTester(t, "")
	tt.loginAs(entity.RoleBilling)

	created := testInvoice()

	tt.serviceMock.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, inv entity.Invoice) (entity.Invoice, error) {
			user, err := entity.UserFromCtx(ctx)
			require.NoError(t, err)
			require.Equal(t, entity.RoleBilling, user.Role)

			require.Equal(t, created.PatientID, inv.PatientID)
			require.Empty(t, inv.Number)
			require.Len(t, inv.Items, 1)
			require.True(t, inv.Items[0].UnitPrice.Equal(decimal.NewFromInt(100)))
			require.True(t, inv.TaxRate.Equal(decimal.NewFromInt(10)))
			require.Equal(t, entity.PaymentMethodBankTransfer, inv.PaymentMethod)

			return created, nil
		})

	resp, body := tt.do(t, http.MethodPost, "/api/invoices", map[string]any{
		"patientId":      created.PatientID,
		"dueDate":        created.DueDate,
		"items":          []map[string]any{{"description": "Consultation", "quantity": 1, "unitPrice": "100"}},
		"taxRate":        10,
		"discountAmount": "5",
		"paymentMethod":  "Bank Transfer",
	}, authHeader())
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var got api.InvoiceResponse
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "100.00", got.Subtotal)
	require.Equal(t, "10.00", got.TaxAmount)
	require.Equal(t, "105.00", got.TotalAmount)
	require.Equal(t, "105.00", got.BalanceAmount)
	require.Equal(t, "Unpaid", got.PaymentStatus)
	require.False(t, got.IsOverdue)
	require.Zero(t, got.DaysOverdue)
}

func TestHandler_CreateInvoice_Validation(t *testing.T) {
	t.Parallel()

	tt := NewTester(t, "")
	tt.loginAs(entity.RoleClinicAdmin)

	resp, body := tt.do(t, http.MethodPost, "/api/invoices", map[string]any{
		"patientId": uuid.Must(uuid.NewV4()),
		"dueDate":   time.Now().AddDate(0, 0, 30),
		"taxRate":   150,
	}, authHeader())
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, string(body))

	var got api.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, "required", got.Fields["CreateInvoiceRequest.Items"])
	require.Equal(t, "lte", got.Fields["CreateInvoiceRequest.TaxRate"])

	resp, _ = tt.do(t, http.MethodPost, "/api/invoices", `{"items":`, authHeader())
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = tt.do(t, http.MethodPost, "/api/invoices", map[string]any{
		"patientId": uuid.Must(uuid.NewV4()),
		"dueDate":   time.Now().AddDate(0, 0, 30),
		"items":     []map[string]any{{"description": "Consultation", "quantity": 0, "unitPrice": -1}},
	}, authHeader())
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, "gte", got.Fields["CreateInvoiceRequest.Items[0].Quantity"])
	require.Equal(t, "gte", got.Fields["CreateInvoiceRequest.Items[0].UnitPrice"])
}

func TestHandler_InvoiceErrors(t *testing.T) {
	t.Parallel()

	tt := NewTester(t, "")
	tt.loginAs(entity.RoleNurse)

	id := uuid.Must(uuid.NewV4())

	tt.serviceMock.EXPECT().Invoice(gomock.Any(), id).Return(entity.Invoice{}, entity.ErrNotFound)

	header := authHeader()
	header.Set("X-Request-Id", "req-42")

	resp, body := tt.do(t, http.MethodGet, "/api/invoices/"+id.String(), nil, header)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "req-42", resp.Header.Get("X-Request-Id"))

	var errResp api.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	require.Equal(t, "req-42", errResp.RequestID)

	resp, _ = tt.do(t, http.MethodGet, "/api/invoices/not-a-uuid", nil, authHeader())
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = tt.do(t, http.MethodGet, "/api/invoices?status=Unknown", nil, authHeader())
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = tt.do(t, http.MethodGet, "/api/invoices?limit=1000", nil, authHeader())
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_Invoices(t *testing.T) {
	t.Parallel()

	tt := NewTester(t, "")
	tt.loginAs(entity.RoleBilling)

	patientID := uuid.Must(uuid.NewV4())
	inv := testInvoice()

	tt.serviceMock.EXPECT().Invoices(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f entity.InvoiceFilter) ([]entity.Invoice, int, error) {
			require.Equal(t, uint64(2), f.Page)
			require.Equal(t, uint64(5), f.Limit)
			require.Equal(t, patientID, *f.PatientID)
			require.Equal(t, entity.InvoiceStatusSent, *f.Status)
			require.Equal(t, entity.PaymentStatusPartial, *f.PaymentStatus)
			require.Equal(t, entity.InvoiceSortByDueDate, f.SortBy)
			require.Equal(t, entity.ASC, f.OrderBy)

			return []entity.Invoice{inv}, 6, nil
		})

	resp, body := tt.do(t, http.MethodGet,
		"/api/invoices?page=2&limit=5&status=Sent&paymentStatus=Partial&sortBy=due_date&orderBy=asc&patientId="+
			patientID.String(), nil, authHeader())
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var got api.InvoicesResponse
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, 6, got.TotalCount)
	require.Len(t, got.Invoices, 1)
	require.Equal(t, inv.Number, got.Invoices[0].InvoiceNumber)
}

func TestHandler_InvoicesByDateRange(t *testing.T) {
	t.Parallel()

	tt := NewTester(t, "")
	tt.loginAs(entity.RoleClinicAdmin)

	tt.serviceMock.EXPECT().InvoicesByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, from, to time.Time) ([]entity.Invoice, error) {
			require.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), from)
			require.Equal(t, time.Date(2026, 1, 31, 23, 59, 59, 999999999, time.UTC), to)

			return nil, nil
		})

	resp, body := tt.do(t, http.MethodGet, "/api/invoices/range?from=2026-01-01&to=2026-01-31", nil, authHeader())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `[]`, string(body))

	resp, _ = tt.do(t, http.MethodGet, "/api/invoices/range?from=2026-01-01", nil, authHeader())
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	tt.serviceMock.EXPECT().InvoicesByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, entity.ErrInvalidArgument)

	resp, _ = tt.do(t, http.MethodGet,
		"/api/invoices/range?from=2026-02-01T00:00:00Z&to=2026-01-01T00:00:00Z", nil, authHeader())
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandler_InvoiceSummary(t *testing.T) {
	t.Parallel()

	tt := NewTester(t, "")
	tt.loginAs(entity.RoleSuperMasterAdmin)

	summary := entity.NewInvoiceSummary()
	summary.Add(entity.InvoiceStatusTotals{
		Status:         entity.InvoiceStatusSent,
		Count:          2,
		Total:          decimal.NewFromInt(200),
		Paid:           decimal.NewFromInt(50),
		Balance:        decimal.NewFromInt(150),
		PastDueCount:   1,
		PastDueBalance: decimal.NewFromInt(100),
	})

	tt.serviceMock.EXPECT().InvoiceSummary(gomock.Any()).Return(summary, nil)

	resp, body := tt.do(t, http.MethodGet, "/api/invoices/summary", nil, authHeader())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got api.InvoiceSummaryResponse
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, 2, got.TotalCount)
	require.Equal(t, 2, got.CountByStatus["Sent"])
	require.Equal(t, "150.00", got.TotalOutstanding)
	require.Equal(t, 1, got.OverdueCount)
	require.Equal(t, "100.00", got.OverdueAmount)
}

func TestHandler_AddPayment(t *testing.T) {
	t.Parallel()

	tt := NewTester(t, "")
	tt.loginAs(entity.RoleBilling)

	inv := testInvoice()

	tt.serviceMock.EXPECT().
		AddPayment(gomock.Any(), inv.ID, gomock.Any(), entity.PaymentMethodCash, "receipt-1", "key-1").
		DoAndReturn(func(
			_ context.Context, _ uuid.UUID, amount decimal.Decimal, _ entity.PaymentMethod, _, _ string,
		) (entity.Invoice, error) {
			require.True(t, amount.Equal(decimal.NewFromInt(50)))

			_, err := inv.AddPayment(amount, entity.PaymentMethodCash, "receipt-1", time.Now())
			require.NoError(t, err)

			return inv, nil
		})

	header := authHeader()
	header.Set("Idempotency-Key", "key-1")

	resp, body := tt.do(t, http.MethodPost, "/api/invoices/"+inv.ID.String()+"/payments", map[string]any{
		"amount":           "50",
		"paymentMethod":    "Cash",
		"paymentReference": "receipt-1",
	}, header)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var got api.InvoiceResponse
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, "50.00", got.PaidAmount)
	require.Equal(t, "55.00", got.BalanceAmount)
	require.Equal(t, "Partial", got.PaymentStatus)

	resp, body = tt.do(t, http.MethodPost, "/api/invoices/"+inv.ID.String()+"/payments", map[string]any{
		"amount":        0,
		"paymentMethod": "Cheque",
	}, authHeader())
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var errResp api.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	require.Equal(t, "gt", errResp.Fields["AddPaymentRequest.Amount"])
	require.Equal(t, "oneof", errResp.Fields["AddPaymentRequest.PaymentMethod"])
}

func TestHandler_UpdateInvoice_Paid(t *testing.T) {
	t.Parallel()

	tt := NewTester(t, "")
	tt.loginAs(entity.RoleBilling)

	id := uuid.Must(uuid.NewV4())

	tt.serviceMock.EXPECT().UpdateInvoice(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, u entity.InvoiceUpdate) (entity.Invoice, error) {
			require.Equal(t, "x", *u.Notes)
			require.Nil(t, u.TaxRate)

			return entity.Invoice{}, entity.ErrInvalidState
		})

	resp, _ := tt.do(t, http.MethodPut, "/api/invoices/"+id.String(), map[string]any{"notes": "x"}, authHeader())
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	tt.serviceMock.EXPECT().
		UpdateInvoiceStatus(gomock.Any(), id, entity.InvoiceStatusPaid, entity.PaymentMethodCard, "").
		Return(entity.Invoice{}, entity.ErrConflict)

	resp, _ = tt.do(t, http.MethodPatch, "/api/invoices/"+id.String()+"/status",
		map[string]any{"status": "Paid", "paymentMethod": "Card"}, authHeader())
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestHandler_DeleteInvoice(t *testing.T) {
	t.Parallel()

	tt := NewTester(t, "")
	tt.loginAs(entity.RoleClinicAdmin)

	id := uuid.Must(uuid.NewV4())
	tt.serviceMock.EXPECT().DeleteInvoice(gomock.Any(), id).Return(nil)

	resp, _ := tt.do(t, http.MethodDelete, "/api/invoices/"+id.String(), nil, authHeader())
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func testReferral() entity.Referral {
	now := time.Now()

	return entity.Referral{
		ID:             uuid.Must(uuid.NewV4()),
		PatientID:      uuid.Must(uuid.NewV4()),
		PatientName:    "Jane Doe",
		SpecialistName: "Dr. House",
		Specialty:      "Nephrology",
		Reason:         "Elevated creatinine",
		ClinicalNotes:  "confidential",
		Urgency:        entity.UrgencyUrgent,
		Status:         entity.ReferralStatusPending,
		ReferralDate:   now,
		CreatedAt:      now,
		UpdatedAt:      now,
		Version:        1,
	}
}

func TestHandler_CreateReferral(t *testing.T) {
	t.Parallel()

	tt := NewTester(t, "")
	tt.loginAs(entity.RoleDoctor)

	ref := testReferral()

	tt.serviceMock.EXPECT().CreateReferral(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in entity.Referral) (entity.Referral, error) {
			require.Equal(t, ref.PatientID, in.PatientID)
			require.Equal(t, entity.UrgencyUrgent, in.Urgency)
			require.Equal(t, "specialist@example.com", in.SpecialistContact.Email)
			require.Len(t, in.Medications, 1)

			return ref, nil
		})

	resp, body := tt.do(t, http.MethodPost, "/api/referrals", map[string]any{
		"patientId":         ref.PatientID,
		"specialistName":    ref.SpecialistName,
		"specialty":         ref.Specialty,
		"reason":            ref.Reason,
		"urgency":           "Urgent",
		"specialistContact": map[string]any{"email": "specialist@example.com"},
		"medications":       []map[string]any{{"name": "Lisinopril", "dosage": "10mg"}},
	}, authHeader())
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var got api.ReferralResponse
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, ref.ID, got.ID)
	require.True(t, got.IsUrgent)
	require.True(t, got.IsPending)
	require.Empty(t, got.Recommendations)
	require.Nil(t, got.ShareableLink)

	resp, body = tt.do(t, http.MethodPost, "/api/referrals", map[string]any{
		"patientId":         ref.PatientID,
		"specialistName":    ref.SpecialistName,
		"specialty":         ref.Specialty,
		"reason":            ref.Reason,
		"urgency":           "ASAP",
		"specialistContact": map[string]any{"email": "not-an-email"},
	}, authHeader())
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var errResp api.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	require.Equal(t, "oneof", errResp.Fields["CreateReferralRequest.Urgency"])
	require.Equal(t, "email", errResp.Fields["CreateReferralRequest.SpecialistContact.Email"])
}

func TestHandler_ReferralStatus(t *testing.T) {
	t.Parallel()

	tt := NewTester(t, "")
	tt.loginAs(entity.RoleDoctor)

	id := uuid.Must(uuid.NewV4())

	resp, _ := tt.do(t, http.MethodPatch, "/api/referrals/"+id.String()+"/status",
		map[string]any{"status": "Approved"}, authHeader())
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	tt.serviceMock.EXPECT().UpdateReferralStatus(gomock.Any(), id, entity.ReferralStatusNoShow).
		Return(entity.Referral{}, entity.ErrForbidden)

	resp, _ = tt.do(t, http.MethodPatch, "/api/referrals/"+id.String()+"/status",
		map[string]any{"status": "No Show"}, authHeader())
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	tt.serviceMock.EXPECT().CancelReferral(gomock.Any(), id).Return(entity.Referral{}, entity.ErrInvalidState)

	resp, _ = tt.do(t, http.MethodPost, "/api/referrals/"+id.String()+"/cancel", nil, authHeader())
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	appointment := time.Date(2026, 11, 2, 10, 0, 0, 0, time.UTC)
	ref := testReferral()
	ref.Status = entity.ReferralStatusScheduled
	ref.AppointmentDate = &appointment

	tt.serviceMock.EXPECT().ScheduleReferral(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, at time.Time) (entity.Referral, error) {
			require.True(t, appointment.Equal(at))

			return ref, nil
		})

	resp, body := tt.do(t, http.MethodPost, "/api/referrals/"+id.String()+"/schedule",
		map[string]any{"appointmentDate": appointment}, authHeader())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got api.ReferralResponse
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, "Scheduled", got.Status)
	require.False(t, got.IsPending)
	require.True(t, appointment.Equal(*got.AppointmentDate))
}

func TestHandler_ShareableLink(t *testing.T) {
	t.Parallel()

	t.Run("configured public url", func(t *testing.T) {
		t.Parallel()

		tt := NewTester(t, "https://clinic.example")
		tt.loginAs(entity.RoleClinicAdmin)

		ref := testReferral()
		ref.GenerateLink("REF-ABC-12345", "https://clinic.example/api/referrals/shared/REF-ABC-12345", time.Now())

		tt.serviceMock.EXPECT().GenerateShareableLink(gomock.Any(), ref.ID, "https://clinic.example").Return(ref, nil)

		resp, body := tt.do(t, http.MethodPost, "/api/referrals/"+ref.ID.String()+"/link", nil, authHeader())
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got api.ReferralResponse
		require.NoError(t, json.Unmarshal(body, &got))
		require.NotNil(t, got.ShareableLink)
		require.Equal(t, "REF-ABC-12345", got.ShareableLink.Code)
		require.True(t, got.ShareableLink.IsActive)
		require.Zero(t, got.ShareableLink.AccessCount)
	})

	t.Run("request host", func(t *testing.T) {
		t.Parallel()

		tt := NewTester(t, "")
		tt.loginAs(entity.RoleClinicAdmin)

		id := uuid.Must(uuid.NewV4())

		tt.serviceMock.EXPECT().GenerateShareableLink(gomock.Any(), id, tt.server.URL).Return(testReferral(), nil)

		resp, _ := tt.do(t, http.MethodPost, "/api/referrals/"+id.String()+"/link", nil, authHeader())
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("deactivate without link", func(t *testing.T) {
		t.Parallel()

		tt := NewTester(t, "")
		tt.loginAs(entity.RoleNurse)

		id := uuid.Must(uuid.NewV4())

		tt.serviceMock.EXPECT().DeactivateShareableLink(gomock.Any(), id).Return(entity.Referral{}, entity.ErrNotFound)

		resp, _ := tt.do(t, http.MethodDelete, "/api/referrals/"+id.String()+"/link", nil, authHeader())
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestHandler_SharedReferral(t *testing.T) {
	t.Parallel()

	tt := NewTester(t, "")

	ref := testReferral()

	tt.serviceMock.EXPECT().SharedReferral(gomock.Any(), "REF-ABC-12345").Return(ref.Shared(), nil)
	tt.serviceMock.EXPECT().SharedReferral(gomock.Any(), "REF-OLD-00000").Return(entity.SharedReferral{}, entity.ErrNotFound)

	resp, body := tt.do(t, http.MethodGet, "/api/referrals/shared/REF-ABC-12345", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotContains(t, string(body), "confidential")

	var got api.SharedReferralResponse
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, "Jane Doe", got.PatientName)
	require.Equal(t, "Urgent", got.Urgency)
	require.Equal(t, "Pending", got.Status)

	resp, _ = tt.do(t, http.MethodGet, "/api/referrals/shared/REF-OLD-00000", nil, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
