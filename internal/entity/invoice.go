package entity

import (
	"fmt"
	"math"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "Draft"
	InvoiceStatusSent      InvoiceStatus = "Sent"
	InvoiceStatusPaid      InvoiceStatus = "Paid"
	InvoiceStatusOverdue   InvoiceStatus = "Overdue"
	InvoiceStatusCancelled InvoiceStatus = "Cancelled"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) Validate() error {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return nil
	default:
		return fmt.Errorf("%w: unknown invoice status %q", ErrInvalidArgument, s)
	}
}

type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "Unpaid"
	PaymentStatusPartial  PaymentStatus = "Partial"
	PaymentStatusPaid     PaymentStatus = "Paid"
	PaymentStatusRefunded PaymentStatus = "Refunded" // kept for stored data, never derived
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) Validate() error {
	switch s {
	case PaymentStatusUnpaid, PaymentStatusPartial, PaymentStatusPaid, PaymentStatusRefunded:
		return nil
	default:
		return fmt.Errorf("%w: unknown payment status %q", ErrInvalidArgument, s)
	}
}

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "Cash"
	PaymentMethodCard         PaymentMethod = "Card"
	PaymentMethodInsurance    PaymentMethod = "Insurance"
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
	PaymentMethodOther        PaymentMethod = "Other"
)

func (p PaymentMethod) Validate() error {
	switch p {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodInsurance, PaymentMethodBankTransfer, PaymentMethodOther:
		return nil
	default:
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidArgument, p)
	}
}

func (p PaymentMethod) String() string {
	return string(p)
}

var (
	MinItemQuantity = decimal.RequireFromString("0.01")
	maxTaxRate      = decimal.NewFromInt(100)
	oneHundred      = decimal.NewFromInt(100)
)

const moneyPlaces = 2

type InvoiceItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

type Insurance struct {
	Provider       string          `json:"provider"`
	PolicyNumber   string          `json:"policyNumber"`
	CoverageAmount decimal.Decimal `json:"coverageAmount"`
}

// Payment is a single entry of an invoice payment history.
type Payment struct {
	ID             uuid.UUID
	InvoiceID      uuid.UUID
	Amount         decimal.Decimal
	Method         PaymentMethod
	Reference      string
	IdempotencyKey string
	PaidAt         time.Time
	CreatedBy      uuid.UUID
}

type Invoice struct {
	ID               uuid.UUID
	ClinicID         uuid.UUID
	PatientID        uuid.UUID
	Number           string
	InvoiceDate      time.Time
	DueDate          time.Time
	Terms            string
	Items            []InvoiceItem
	TaxRate          decimal.Decimal // percent, 0..100
	DiscountAmount   decimal.Decimal
	Subtotal         decimal.Decimal
	TaxAmount        decimal.Decimal
	TotalAmount      decimal.Decimal
	PaidAmount       decimal.Decimal
	BalanceAmount    decimal.Decimal
	Status           InvoiceStatus
	PaymentStatus    PaymentStatus
	PaymentMethod    PaymentMethod
	PaymentDate      *time.Time
	PaymentReference string
	Insurance        *Insurance
	Notes            string
	InternalNotes    string
	Payments         []Payment // filled only by single invoice reads
	CreatedBy        uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Version          int64
}

// InvoiceUpdate holds the fields allowed to change on an unpaid invoice. Nil means "keep".
type InvoiceUpdate struct {
	DueDate        *time.Time
	Terms          *string
	Items          []InvoiceItem
	TaxRate        *decimal.Decimal
	DiscountAmount *decimal.Decimal
	PaymentMethod  *PaymentMethod
	Insurance      *Insurance
	Notes          *string
	InternalNotes  *string
}

// FormatInvoiceNumber renders the public invoice number, e.g. INV-2026-000042.
func FormatInvoiceNumber(year int, seq int64) string {
	return fmt.Sprintf("INV-%d-%06d", year, seq)
}

// DerivePaymentStatus maps paid vs total to the settlement state.
func DerivePaymentStatus(paid, total decimal.Decimal) PaymentStatus {
	switch {
	case paid.IsZero():
		return PaymentStatusUnpaid
	case paid.GreaterThanOrEqual(total):
		return PaymentStatusPaid
	default:
		return PaymentStatusPartial
	}
}

// Recalculate recomputes every derived financial field from items and stored amounts.
func (i *Invoice) Recalculate() {
	subtotal := decimal.Zero

	for n := range i.Items {
		i.Items[n].Total = i.Items[n].Quantity.Mul(i.Items[n].UnitPrice).Round(moneyPlaces)
		subtotal = subtotal.Add(i.Items[n].Total)
	}

	i.Subtotal = subtotal
	i.TaxAmount = subtotal.Mul(i.TaxRate).Div(oneHundred).Round(moneyPlaces)
	i.TotalAmount = i.Subtotal.Add(i.TaxAmount).Sub(i.DiscountAmount)
	i.BalanceAmount = i.TotalAmount.Sub(i.PaidAmount)
	i.PaymentStatus = DerivePaymentStatus(i.PaidAmount, i.TotalAmount)
}

// Validate checks the invoice business invariants. Derived fields must be recalculated first.
//
//nolint:cyclop
func (i *Invoice) Validate() error {
	if i.PatientID.IsNil() {
		return fmt.Errorf("%w: patient is required", ErrInvalidArgument)
	}

	if i.DueDate.IsZero() {
		return fmt.Errorf("%w: due date is required", ErrInvalidArgument)
	}

	if len(i.Items) == 0 {
		return fmt.Errorf("%w: at least one item is required", ErrInvalidArgument)
	}

	for n, item := range i.Items {
		if item.Description == "" {
			return fmt.Errorf("%w: item %d description is required", ErrInvalidArgument, n)
		}

		if item.Quantity.LessThan(MinItemQuantity) {
			return fmt.Errorf("%w: item %d quantity %s is less than %s", ErrInvalidArgument, n, item.Quantity, MinItemQuantity)
		}

		if item.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: item %d unit price %s is negative", ErrInvalidArgument, n, item.UnitPrice)
		}
	}

	if i.TaxRate.IsNegative() || i.TaxRate.GreaterThan(maxTaxRate) {
		return fmt.Errorf("%w: tax rate %s is out of range 0..100", ErrInvalidArgument, i.TaxRate)
	}

	if i.DiscountAmount.IsNegative() {
		return fmt.Errorf("%w: discount %s is negative", ErrInvalidArgument, i.DiscountAmount)
	}

	if i.TotalAmount.IsNegative() {
		return fmt.Errorf("%w: discount %s exceeds subtotal with tax %s",
			ErrInvalidArgument, i.DiscountAmount, i.Subtotal.Add(i.TaxAmount))
	}

	if i.PaymentMethod != "" {
		if err := i.PaymentMethod.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// RemainingBalance is the amount still payable.
func (i *Invoice) RemainingBalance() decimal.Decimal {
	return i.TotalAmount.Sub(i.PaidAmount)
}

// ApplyUpdate changes the mutable fields and recalculates. Paid invoices are immutable.
// An update that leaves nothing to pay settles the invoice, and moving the due date of an
// Overdue invoice into the future puts it back to Sent.
func (i *Invoice) ApplyUpdate(u InvoiceUpdate, now time.Time) error {
	if i.Status == InvoiceStatusPaid {
		return fmt.Errorf("%w: invoice %s is paid", ErrInvalidState, i.Number)
	}

	if u.DueDate != nil {
		i.DueDate = *u.DueDate
	}

	if u.Terms != nil {
		i.Terms = *u.Terms
	}

	if u.Items != nil {
		i.Items = u.Items
	}

	if u.TaxRate != nil {
		i.TaxRate = *u.TaxRate
	}

	if u.DiscountAmount != nil {
		i.DiscountAmount = *u.DiscountAmount
	}

	if u.PaymentMethod != nil {
		i.PaymentMethod = *u.PaymentMethod
	}

	if u.Insurance != nil {
		i.Insurance = u.Insurance
	}

	if u.Notes != nil {
		i.Notes = *u.Notes
	}

	if u.InternalNotes != nil {
		i.InternalNotes = *u.InternalNotes
	}

	i.Recalculate()
	i.UpdatedAt = now

	switch {
	case i.Status != InvoiceStatusCancelled && i.PaymentStatus == PaymentStatusPaid:
		i.Status = InvoiceStatusPaid
	case i.Status == InvoiceStatusOverdue && !i.DueDate.Before(now):
		i.Status = InvoiceStatusSent
	}

	return i.Validate()
}

func (i *Invoice) Send(now time.Time) {
	i.Status = InvoiceStatusSent
	i.Recalculate()
	i.UpdatedAt = now
}

func (i *Invoice) Cancel(now time.Time) {
	i.Status = InvoiceStatusCancelled
	i.Recalculate()
	i.UpdatedAt = now
}

// MarkAsPaid settles the invoice in full. The returned payment covers the remainder and
// is zero when nothing was outstanding. Money already received is never reduced.
func (i *Invoice) MarkAsPaid(method PaymentMethod, reference string, now time.Time) Payment {
	remaining := i.RemainingBalance()

	i.PaidAmount = decimal.Max(i.PaidAmount, i.TotalAmount)
	i.Status = InvoiceStatusPaid
	i.setPaymentDetails(method, reference, now)
	i.Recalculate()

	return Payment{
		InvoiceID: i.ID,
		Amount:    decimal.Max(remaining, decimal.Zero),
		Method:    i.PaymentMethod,
		Reference: reference,
		PaidAt:    now,
	}
}

// AddPayment applies a partial or final payment. A payment that settles the balance moves the
// invoice to Paid.
func (i *Invoice) AddPayment(amount decimal.Decimal, method PaymentMethod, reference string, now time.Time) (Payment, error) {
	if !amount.IsPositive() {
		return Payment{}, fmt.Errorf("%w: payment amount %s must be positive", ErrInvalidArgument, amount)
	}

	if method == "" {
		return Payment{}, fmt.Errorf("%w: payment method is required", ErrInvalidArgument)
	}

	if err := method.Validate(); err != nil {
		return Payment{}, err
	}

	if i.Status == InvoiceStatusCancelled {
		return Payment{}, fmt.Errorf("%w: invoice %s is cancelled", ErrInvalidState, i.Number)
	}

	remaining := i.RemainingBalance()
	if amount.GreaterThan(remaining) {
		return Payment{}, fmt.Errorf("%w: payment amount %s exceeds remaining balance %s",
			ErrInvalidArgument, amount, remaining)
	}

	i.PaidAmount = i.PaidAmount.Add(amount)
	i.setPaymentDetails(method, reference, now)
	i.Recalculate()

	if i.PaymentStatus == PaymentStatusPaid {
		i.Status = InvoiceStatusPaid
	}

	return Payment{
		InvoiceID: i.ID,
		Amount:    amount,
		Method:    method,
		Reference: reference,
		PaidAt:    now,
	}, nil
}

// SetStatus dispatches a lifecycle change requested by status value. It returns a payment when
// the change settled an outstanding balance.
func (i *Invoice) SetStatus(status InvoiceStatus, method PaymentMethod, reference string, now time.Time) (*Payment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	switch status {
	case InvoiceStatusSent:
		i.Send(now)
	case InvoiceStatusPaid:
		if method == "" {
			method = i.PaymentMethod
		}

		if method != "" {
			if err := method.Validate(); err != nil {
				return nil, err
			}
		}

		p := i.MarkAsPaid(method, reference, now)
		if p.Amount.IsPositive() {
			return &p, nil
		}
	case InvoiceStatusCancelled:
		i.Cancel(now)
	default:
		i.Status = status
		i.Recalculate()
		i.UpdatedAt = now
	}

	return nil, nil
}

func (i *Invoice) setPaymentDetails(method PaymentMethod, reference string, now time.Time) {
	if method != "" {
		i.PaymentMethod = method
	}

	if reference != "" {
		i.PaymentReference = reference
	}

	paidAt := now
	i.PaymentDate = &paidAt
	i.UpdatedAt = now
}

// IsOverdue reports whether the due date passed while the invoice is still collectable.
func (i *Invoice) IsOverdue(now time.Time) bool {
	if i.Status == InvoiceStatusPaid || i.Status == InvoiceStatusCancelled {
		return false
	}

	return i.DueDate.Before(now)
}

// DaysOverdue is the number of started days since the due date, 0 when not overdue.
func (i *Invoice) DaysOverdue(now time.Time) int {
	if !i.IsOverdue(now) {
		return 0
	}

	const day = 24 * time.Hour

	return int(math.Ceil(float64(now.Sub(i.DueDate)) / float64(day)))
}

// InvoiceSummary is the billing dashboard aggregate.
type InvoiceSummary struct {
	TotalCount       int
	CountByStatus    map[InvoiceStatus]int
	TotalBilled      decimal.Decimal
	TotalPaid        decimal.Decimal
	TotalOutstanding decimal.Decimal
	OverdueCount     int
	OverdueAmount    decimal.Decimal
}

func NewInvoiceSummary() InvoiceSummary {
	return InvoiceSummary{
		CountByStatus:    make(map[InvoiceStatus]int),
		TotalBilled:      decimal.Zero,
		TotalPaid:        decimal.Zero,
		TotalOutstanding: decimal.Zero,
		OverdueAmount:    decimal.Zero,
	}
}

// InvoiceStatusTotals is one per-status aggregate row the summary is built from.
type InvoiceStatusTotals struct {
	Status         InvoiceStatus
	Count          int
	Total          decimal.Decimal
	Paid           decimal.Decimal
	Balance        decimal.Decimal
	PastDueCount   int
	PastDueBalance decimal.Decimal
}

// Add folds t into the summary. Cancelled invoices are counted but never billed or outstanding.
func (s *InvoiceSummary) Add(t InvoiceStatusTotals) {
	s.TotalCount += t.Count
	s.CountByStatus[t.Status] += t.Count
	s.TotalPaid = s.TotalPaid.Add(t.Paid)

	if t.Status == InvoiceStatusCancelled {
		return
	}

	s.TotalBilled = s.TotalBilled.Add(t.Total)

	if t.Status == InvoiceStatusPaid {
		return
	}

	s.TotalOutstanding = s.TotalOutstanding.Add(t.Balance)
	s.OverdueCount += t.PastDueCount
	s.OverdueAmount = s.OverdueAmount.Add(t.PastDueBalance)
}
