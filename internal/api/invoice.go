package api

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/clinicemr/clinic/internal/entity"
)

// @Summary Create invoice
// @Description Creates a Draft invoice. The number is generated when not provided.
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateInvoiceRequest true "Invoice"
// @Success 201 {object} InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Patient not found"
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /invoices [post]
func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateInvoiceRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	inv, err := h.s.CreateInvoice(ctx, req.entity())
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to create invoice")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, newInvoiceResponse(inv, time.Now()))
}

// @Summary List invoices
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param patientId query string false "Patient id"
// @Param status query string false "Invoice status"
// @Param paymentStatus query string false "Payment status"
// @Param page query int false "Page, starts from 1"
// @Param limit query int false "Page size, up to 100"
// @Param sortBy query string false "invoice_number, invoice_date, due_date, total_amount, created_at"
// @Param orderBy query string false "asc or desc"
// @Success 200 {object} InvoicesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /invoices [get]
func (h *Handler) Invoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	f, err := parseInvoiceFilter(r)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid filter")
		return
	}

	invoices, total, err := h.s.Invoices(ctx, f)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get invoices")
		return
	}

	SendJSON(ctx, w, http.StatusOK, InvoicesResponse{
		Invoices:   newInvoicesResponse(invoices, time.Now()),
		TotalCount: total,
		Page:       f.Page,
		Limit:      f.Limit,
	})
}

func parseInvoiceFilter(r *http.Request) (entity.InvoiceFilter, error) {
	var (
		f   entity.InvoiceFilter
		err error
	)

	q := r.URL.Query()

	f.Page, f.Limit, err = paging(r)
	if err != nil {
		return f, err
	}

	f.OrderBy, err = orderBy(r)
	if err != nil {
		return f, err
	}

	f.PatientID, err = optionalUUID(r, "patientId")
	if err != nil {
		return f, err
	}

	f.SortBy = entity.InvoiceSortByCreatedAt
	if v := q.Get("sortBy"); v != "" {
		f.SortBy = entity.InvoiceSortCol(v)
		if !f.SortBy.IsValid() {
			return f, fmt.Errorf("invalid sortBy %q", v)
		}
	}

	if v := q.Get("status"); v != "" {
		status := entity.InvoiceStatus(v)
		if err = status.Validate(); err != nil {
			return f, err
		}

		f.Status = &status
	}

	if v := q.Get("paymentStatus"); v != "" {
		status := entity.PaymentStatus(v)
		if err = status.Validate(); err != nil {
			return f, err
		}

		f.PaymentStatus = &status
	}

	return f, nil
}

// @Summary Overdue invoices
// @Description Invoices past their due date that are neither Paid nor Cancelled, oldest due date first.
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Success 200 {array} InvoiceResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /invoices/overdue [get]
func (h *Handler) OverdueInvoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	invoices, err := h.s.OverdueInvoices(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get overdue invoices")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newInvoicesResponse(invoices, time.Now()))
}

const dateLayout = time.DateOnly

// parseRangeBound accepts RFC 3339 timestamps and plain dates.
// A plain date used as the range end covers the whole day.
func parseRangeBound(q url.Values, name string, end bool) (time.Time, error) {
	v := q.Get(name)
	if v == "" {
		return time.Time{}, fmt.Errorf("%s is required", name)
	}

	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}

	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q, expected RFC 3339 or %s", name, v, dateLayout)
	}

	if end {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	return t, nil
}

// @Summary Invoices by date range
// @Description Invoices with invoice date within [from, to] inclusive.
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param from query string true "Range start, RFC 3339 or YYYY-MM-DD"
// @Param to query string true "Range end, RFC 3339 or YYYY-MM-DD"
// @Success 200 {array} InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /invoices/range [get]
func (h *Handler) InvoicesByDateRange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	from, err := parseRangeBound(q, "from", false)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid date range")
		return
	}

	to, err := parseRangeBound(q, "to", true)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid date range")
		return
	}

	invoices, err := h.s.InvoicesByDateRange(ctx, from, to)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get invoices")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newInvoicesResponse(invoices, time.Now()))
}

// @Summary Invoice statistics
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Success 200 {object} InvoiceSummaryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /invoices/summary [get]
func (h *Handler) InvoiceSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.s.InvoiceSummary(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get invoice summary")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newInvoiceSummaryResponse(summary))
}

// @Summary Get invoice
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice id"
// @Success 200 {object} InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /invoices/{id} [get]
func (h *Handler) Invoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	inv, err := h.s.Invoice(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get invoice")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newInvoiceResponse(inv, time.Now()))
}

// @Summary Update invoice
// @Description Updates editable fields and recomputes totals. Paid invoices cannot be changed.
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice id"
// @Param request body UpdateInvoiceRequest true "Fields to change"
// @Success 200 {object} InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /invoices/{id} [put]
func (h *Handler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req UpdateInvoiceRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	inv, err := h.s.UpdateInvoice(ctx, id, req.entity())
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to update invoice")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newInvoiceResponse(inv, time.Now()))
}

// @Summary Change invoice status
// @Description Paid settles the remaining balance with the given payment method.
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice id"
// @Param request body UpdateInvoiceStatusRequest true "Status"
// @Success 200 {object} InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /invoices/{id}/status [patch]
func (h *Handler) UpdateInvoiceStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req UpdateInvoiceStatusRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	inv, err := h.s.UpdateInvoiceStatus(
		ctx, id, entity.InvoiceStatus(req.Status), entity.PaymentMethod(req.PaymentMethod), req.PaymentReference,
	)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to update invoice status")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newInvoiceResponse(inv, time.Now()))
}

const idempotencyKeyHeader = "Idempotency-Key"

// @Summary Add payment
// @Description Records a payment not exceeding the remaining balance. A repeated Idempotency-Key is applied once.
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice id"
// @Param Idempotency-Key header string false "Client key of the payment attempt"
// @Param request body AddPaymentRequest true "Payment"
// @Success 200 {object} InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /invoices/{id}/payments [post]
func (h *Handler) AddPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	key := r.Header.Get(idempotencyKeyHeader)
	if len(key) > 255 {
		SendJSONErr(ctx, w, http.StatusBadRequest, nil, "Idempotency-Key is too long")
		return
	}

	var req AddPaymentRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	inv, err := h.s.AddPayment(
		ctx, id, req.Amount, entity.PaymentMethod(req.PaymentMethod), req.PaymentReference, key,
	)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to add payment")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newInvoiceResponse(inv, time.Now()))
}

// @Summary Delete invoice
// @Tags invoices
// @Security BearerAuth
// @Param id path string true "Invoice id"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /invoices/{id} [delete]
func (h *Handler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.s.DeleteInvoice(ctx, id); err != nil {
		sendServiceErr(ctx, w, err, "Failed to delete invoice")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
