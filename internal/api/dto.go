package api

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/clinicemr/clinic/internal/entity"
)

type InvoiceItemRequest struct {
	Description string          `json:"description" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity" validate:"gte=0.01" swaggertype:"string" example:"1"`
	UnitPrice   decimal.Decimal `json:"unitPrice" validate:"gte=0" swaggertype:"string" example:"100.00"`
}

type InsuranceRequest struct {
	Provider       string          `json:"provider" validate:"required"`
	PolicyNumber   string          `json:"policyNumber" validate:"required"`
	CoverageAmount decimal.Decimal `json:"coverageAmount" validate:"gte=0" swaggertype:"string"`
}

func (r *InsuranceRequest) entity() *entity.Insurance {
	if r == nil {
		return nil
	}

	return &entity.Insurance{
		Provider:       r.Provider,
		PolicyNumber:   r.PolicyNumber,
		CoverageAmount: r.CoverageAmount,
	}
}

func invoiceItems(items []InvoiceItemRequest) []entity.InvoiceItem {
	if items == nil {
		return nil
	}

	res := make([]entity.InvoiceItem, 0, len(items))
	for _, v := range items {
		res = append(res, entity.InvoiceItem{
			Description: v.Description,
			Quantity:    v.Quantity,
			UnitPrice:   v.UnitPrice,
		})
	}

	return res
}

type CreateInvoiceRequest struct {
	PatientID      uuid.UUID            `json:"patientId" validate:"required" swaggertype:"string" format:"uuid"`
	InvoiceNumber  string               `json:"invoiceNumber" validate:"omitempty,max=64"`
	InvoiceDate    *time.Time           `json:"invoiceDate"`
	DueDate        time.Time            `json:"dueDate" validate:"required"`
	Terms          string               `json:"terms"`
	Items          []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
	TaxRate        decimal.Decimal      `json:"taxRate" validate:"gte=0,lte=100" swaggertype:"string" example:"10"`
	DiscountAmount decimal.Decimal      `json:"discountAmount" validate:"gte=0" swaggertype:"string" example:"0"`
	PaymentMethod  string               `json:"paymentMethod" validate:"omitempty,oneof=Cash Card Insurance 'Bank Transfer' Other"`
	Insurance      *InsuranceRequest    `json:"insurance" validate:"omitempty"`
	Notes          string               `json:"notes"`
	InternalNotes  string               `json:"internalNotes"`
}

func (r CreateInvoiceRequest) entity() entity.Invoice {
	inv := entity.Invoice{
		PatientID:      r.PatientID,
		Number:         r.InvoiceNumber,
		DueDate:        r.DueDate,
		Terms:          r.Terms,
		Items:          invoiceItems(r.Items),
		TaxRate:        r.TaxRate,
		DiscountAmount: r.DiscountAmount,
		PaymentMethod:  entity.PaymentMethod(r.PaymentMethod),
		Insurance:      r.Insurance.entity(),
		Notes:          r.Notes,
		InternalNotes:  r.InternalNotes,
	}

	if r.InvoiceDate != nil {
		inv.InvoiceDate = *r.InvoiceDate
	}

	return inv
}

type UpdateInvoiceRequest struct {
	DueDate        *time.Time           `json:"dueDate"`
	Terms          *string              `json:"terms"`
	Items          []InvoiceItemRequest `json:"items" validate:"omitempty,min=1,dive"`
	TaxRate        *decimal.Decimal     `json:"taxRate" validate:"omitempty,gte=0,lte=100" swaggertype:"string"`
	DiscountAmount *decimal.Decimal     `json:"discountAmount" validate:"omitempty,gte=0" swaggertype:"string"`
	PaymentMethod  *string              `json:"paymentMethod" validate:"omitempty,oneof=Cash Card Insurance 'Bank Transfer' Other"`
	Insurance      *InsuranceRequest    `json:"insurance" validate:"omitempty"`
	Notes          *string              `json:"notes"`
	InternalNotes  *string              `json:"internalNotes"`
}

func (r UpdateInvoiceRequest) entity() entity.InvoiceUpdate {
	u := entity.InvoiceUpdate{
		DueDate:        r.DueDate,
		Terms:          r.Terms,
		Items:          invoiceItems(r.Items),
		TaxRate:        r.TaxRate,
		DiscountAmount: r.DiscountAmount,
		Insurance:      r.Insurance.entity(),
		Notes:          r.Notes,
		InternalNotes:  r.InternalNotes,
	}

	if r.PaymentMethod != nil {
		m := entity.PaymentMethod(*r.PaymentMethod)
		u.PaymentMethod = &m
	}

	return u
}

type UpdateInvoiceStatusRequest struct {
	Status           string `json:"status" validate:"required,oneof=Draft Sent Paid Overdue Cancelled"`
	PaymentMethod    string `json:"paymentMethod" validate:"omitempty,oneof=Cash Card Insurance 'Bank Transfer' Other"`
	PaymentReference string `json:"paymentReference" validate:"max=255"`
}

type AddPaymentRequest struct {
	Amount           decimal.Decimal `json:"amount" validate:"gt=0" swaggertype:"string" example:"50.00"`
	PaymentMethod    string          `json:"paymentMethod" validate:"required,oneof=Cash Card Insurance 'Bank Transfer' Other"`
	PaymentReference string          `json:"paymentReference" validate:"max=255"`
}

type InvoiceItemResponse struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	Total       string `json:"total"`
}

type InsuranceResponse struct {
	Provider       string `json:"provider"`
	PolicyNumber   string `json:"policyNumber"`
	CoverageAmount string `json:"coverageAmount"`
}

type PaymentResponse struct {
	ID        uuid.UUID `json:"id" swaggertype:"string" format:"uuid"`
	Amount    string    `json:"amount"`
	Method    string    `json:"method"`
	Reference string    `json:"reference,omitempty"`
	PaidAt    time.Time `json:"paidAt"`
}

type InvoiceResponse struct {
	ID               uuid.UUID             `json:"id" swaggertype:"string" format:"uuid"`
	ClinicID         *uuid.UUID            `json:"clinicId,omitempty" swaggertype:"string" format:"uuid"`
	PatientID        uuid.UUID             `json:"patientId" swaggertype:"string" format:"uuid"`
	InvoiceNumber    string                `json:"invoiceNumber"`
	InvoiceDate      time.Time             `json:"invoiceDate"`
	DueDate          time.Time             `json:"dueDate"`
	Terms            string                `json:"terms,omitempty"`
	Items            []InvoiceItemResponse `json:"items"`
	Subtotal         string                `json:"subtotal"`
	TaxRate          string                `json:"taxRate"`
	TaxAmount        string                `json:"taxAmount"`
	DiscountAmount   string                `json:"discountAmount"`
	TotalAmount      string                `json:"totalAmount"`
	PaidAmount       string                `json:"paidAmount"`
	BalanceAmount    string                `json:"balanceAmount"`
	Status           string                `json:"status"`
	PaymentStatus    string                `json:"paymentStatus"`
	PaymentMethod    string                `json:"paymentMethod,omitempty"`
	PaymentDate      *time.Time            `json:"paymentDate,omitempty"`
	PaymentReference string                `json:"paymentReference,omitempty"`
	Insurance        *InsuranceResponse    `json:"insurance,omitempty"`
	Notes            string                `json:"notes,omitempty"`
	InternalNotes    string                `json:"internalNotes,omitempty"`
	Payments         []PaymentResponse     `json:"payments,omitempty"`
	IsOverdue        bool                  `json:"isOverdue"`
	DaysOverdue      int                   `json:"daysOverdue"`
	CreatedBy        uuid.UUID             `json:"createdBy" swaggertype:"string" format:"uuid"`
	CreatedAt        time.Time             `json:"createdAt"`
	UpdatedAt        time.Time             `json:"updatedAt"`
	Version          int64                 `json:"version"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func optionalID(id uuid.UUID) *uuid.UUID {
	if id.IsNil() {
		return nil
	}

	return &id
}

func newInvoiceResponse(inv entity.Invoice, now time.Time) InvoiceResponse {
	resp := InvoiceResponse{
		ID:               inv.ID,
		ClinicID:         optionalID(inv.ClinicID),
		PatientID:        inv.PatientID,
		InvoiceNumber:    inv.Number,
		InvoiceDate:      inv.InvoiceDate,
		DueDate:          inv.DueDate,
		Terms:            inv.Terms,
		Items:            make([]InvoiceItemResponse, 0, len(inv.Items)),
		Subtotal:         money(inv.Subtotal),
		TaxRate:          inv.TaxRate.String(),
		TaxAmount:        money(inv.TaxAmount),
		DiscountAmount:   money(inv.DiscountAmount),
		TotalAmount:      money(inv.TotalAmount),
		PaidAmount:       money(inv.PaidAmount),
		BalanceAmount:    money(inv.BalanceAmount),
		Status:           inv.Status.String(),
		PaymentStatus:    inv.PaymentStatus.String(),
		PaymentMethod:    inv.PaymentMethod.String(),
		PaymentDate:      inv.PaymentDate,
		PaymentReference: inv.PaymentReference,
		Notes:            inv.Notes,
		InternalNotes:    inv.InternalNotes,
		IsOverdue:        inv.IsOverdue(now),
		DaysOverdue:      inv.DaysOverdue(now),
		CreatedBy:        inv.CreatedBy,
		CreatedAt:        inv.CreatedAt,
		UpdatedAt:        inv.UpdatedAt,
		Version:          inv.Version,
	}

	for _, v := range inv.Items {
		resp.Items = append(resp.Items, InvoiceItemResponse{
			Description: v.Description,
			Quantity:    v.Quantity.String(),
			UnitPrice:   money(v.UnitPrice),
			Total:       money(v.Total),
		})
	}

	if inv.Insurance != nil {
		resp.Insurance = &InsuranceResponse{
			Provider:       inv.Insurance.Provider,
			PolicyNumber:   inv.Insurance.PolicyNumber,
			CoverageAmount: money(inv.Insurance.CoverageAmount),
		}
	}

	for _, p := range inv.Payments {
		resp.Payments = append(resp.Payments, PaymentResponse{
			ID:        p.ID,
			Amount:    money(p.Amount),
			Method:    p.Method.String(),
			Reference: p.Reference,
			PaidAt:    p.PaidAt,
		})
	}

	return resp
}

func newInvoicesResponse(invoices []entity.Invoice, now time.Time) []InvoiceResponse {
	res := make([]InvoiceResponse, 0, len(invoices))
	for _, v := range invoices {
		res = append(res, newInvoiceResponse(v, now))
	}

	return res
}

type InvoicesResponse struct {
	Invoices   []InvoiceResponse `json:"invoices"`
	TotalCount int               `json:"totalCount"`
	Page       uint64            `json:"page"`
	Limit      uint64            `json:"limit"`
}

type InvoiceSummaryResponse struct {
	TotalCount       int            `json:"totalCount"`
	CountByStatus    map[string]int `json:"countByStatus"`
	TotalBilled      string         `json:"totalBilled"`
	TotalPaid        string         `json:"totalPaid"`
	TotalOutstanding string         `json:"totalOutstanding"`
	OverdueCount     int            `json:"overdueCount"`
	OverdueAmount    string         `json:"overdueAmount"`
}

func newInvoiceSummaryResponse(s entity.InvoiceSummary) InvoiceSummaryResponse {
	resp := InvoiceSummaryResponse{
		TotalCount:       s.TotalCount,
		CountByStatus:    make(map[string]int, len(s.CountByStatus)),
		TotalBilled:      money(s.TotalBilled),
		TotalPaid:        money(s.TotalPaid),
		TotalOutstanding: money(s.TotalOutstanding),
		OverdueCount:     s.OverdueCount,
		OverdueAmount:    money(s.OverdueAmount),
	}

	for k, v := range s.CountByStatus {
		resp.CountByStatus[k.String()] = v
	}

	return resp
}

type ContactRequest struct {
	Phone string `json:"phone"`
	Email string `json:"email" validate:"omitempty,email"`
	Fax   string `json:"fax"`
}

type CreateReferralRequest struct {
	PatientID         uuid.UUID           `json:"patientId" validate:"required" swaggertype:"string" format:"uuid"`
	PatientName       string              `json:"patientName" validate:"max=255"`
	SpecialistName    string              `json:"specialistName" validate:"required,max=255"`
	Specialty         string              `json:"specialty" validate:"required,max=255"`
	SpecialistContact ContactRequest      `json:"specialistContact"`
	SpecialistAddress entity.Address      `json:"specialistAddress"`
	Reason            string              `json:"reason" validate:"required"`
	ClinicalNotes     string              `json:"clinicalNotes"`
	Urgency           string              `json:"urgency" validate:"omitempty,oneof=Routine Urgent Emergency"`
	ReferralDate      *time.Time          `json:"referralDate"`
	Medications       []MedicationRequest `json:"medications" validate:"omitempty,dive"`
}

func (r CreateReferralRequest) entity() entity.Referral {
	ref := entity.Referral{
		PatientID:      r.PatientID,
		PatientName:    r.PatientName,
		SpecialistName: r.SpecialistName,
		Specialty:      r.Specialty,
		SpecialistContact: entity.ContactInfo{
			Phone: r.SpecialistContact.Phone,
			Email: r.SpecialistContact.Email,
			Fax:   r.SpecialistContact.Fax,
		},
		SpecialistAddress: r.SpecialistAddress,
		Reason:            r.Reason,
		ClinicalNotes:     r.ClinicalNotes,
		Urgency:           entity.Urgency(r.Urgency),
	}

	if r.ReferralDate != nil {
		ref.ReferralDate = *r.ReferralDate
	}

	for _, m := range r.Medications {
		ref.Medications = append(ref.Medications, m.entity())
	}

	return ref
}

type UpdateReferralStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Scheduled Completed Cancelled 'No Show'"`
}

type ScheduleReferralRequest struct {
	AppointmentDate time.Time `json:"appointmentDate" validate:"required"`
}

type CompleteReferralRequest struct {
	Outcome         string   `json:"outcome"`
	Recommendations []string `json:"recommendations" validate:"omitempty,dive,required"`
}

type MedicationRequest struct {
	Name      string `json:"name" validate:"required,max=255"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
}

func (r MedicationRequest) entity() entity.Medication {
	return entity.Medication{
		Name:      r.Name,
		Dosage:    r.Dosage,
		Frequency: r.Frequency,
		Duration:  r.Duration,
	}
}

type RecommendationRequest struct {
	Recommendation string `json:"recommendation" validate:"required"`
}

type ShareableLinkResponse struct {
	Code           string     `json:"code"`
	URL            string     `json:"url"`
	GeneratedAt    time.Time  `json:"generatedAt"`
	IsActive       bool       `json:"isActive"`
	AccessCount    int64      `json:"accessCount"`
	LastAccessedAt *time.Time `json:"lastAccessedAt,omitempty"`
	DeactivatedAt  *time.Time `json:"deactivatedAt,omitempty"`
}

type ReferralResponse struct {
	ID                uuid.UUID              `json:"id" swaggertype:"string" format:"uuid"`
	ClinicID          *uuid.UUID             `json:"clinicId,omitempty" swaggertype:"string" format:"uuid"`
	PatientID         uuid.UUID              `json:"patientId" swaggertype:"string" format:"uuid"`
	PatientName       string                 `json:"patientName"`
	SpecialistName    string                 `json:"specialistName"`
	Specialty         string                 `json:"specialty"`
	SpecialistContact entity.ContactInfo     `json:"specialistContact"`
	SpecialistAddress entity.Address         `json:"specialistAddress"`
	Reason            string                 `json:"reason"`
	ClinicalNotes     string                 `json:"clinicalNotes,omitempty"`
	Urgency           string                 `json:"urgency"`
	Status            string                 `json:"status"`
	ReferralDate      time.Time              `json:"referralDate"`
	AppointmentDate   *time.Time             `json:"appointmentDate,omitempty"`
	Outcome           string                 `json:"outcome,omitempty"`
	Recommendations   []string               `json:"recommendations"`
	Medications       []entity.Medication    `json:"medications"`
	ReferredBy        *uuid.UUID             `json:"referredBy,omitempty" swaggertype:"string" format:"uuid"`
	ReferringProvider *entity.Provider       `json:"referringProvider,omitempty"`
	ShareableLink     *ShareableLinkResponse `json:"shareableLink,omitempty"`
	IsUrgent          bool                   `json:"isUrgent"`
	IsPending         bool                   `json:"isPending"`
	CreatedAt         time.Time              `json:"createdAt"`
	UpdatedAt         time.Time              `json:"updatedAt"`
	Version           int64                  `json:"version"`
}

func newReferralResponse(ref entity.Referral) ReferralResponse {
	resp := ReferralResponse{
		ID:                ref.ID,
		ClinicID:          optionalID(ref.ClinicID),
		PatientID:         ref.PatientID,
		PatientName:       ref.PatientName,
		SpecialistName:    ref.SpecialistName,
		Specialty:         ref.Specialty,
		SpecialistContact: ref.SpecialistContact,
		SpecialistAddress: ref.SpecialistAddress,
		Reason:            ref.Reason,
		ClinicalNotes:     ref.ClinicalNotes,
		Urgency:           ref.Urgency.String(),
		Status:            ref.Status.String(),
		ReferralDate:      ref.ReferralDate,
		AppointmentDate:   ref.AppointmentDate,
		Outcome:           ref.Outcome,
		Recommendations:   ref.Recommendations,
		Medications:       ref.Medications,
		ReferredBy:        optionalID(ref.ReferredBy),
		ReferringProvider: ref.ReferringProvider,
		IsUrgent:          ref.IsUrgent(),
		IsPending:         ref.IsPending(),
		CreatedAt:         ref.CreatedAt,
		UpdatedAt:         ref.UpdatedAt,
		Version:           ref.Version,
	}

	if resp.Recommendations == nil {
		resp.Recommendations = []string{}
	}

	if resp.Medications == nil {
		resp.Medications = []entity.Medication{}
	}

	if ref.Link != nil {
		resp.ShareableLink = &ShareableLinkResponse{
			Code:           ref.Link.Code,
			URL:            ref.Link.URL,
			GeneratedAt:    ref.Link.GeneratedAt,
			IsActive:       ref.Link.IsActive,
			AccessCount:    ref.Link.AccessCount,
			LastAccessedAt: ref.Link.LastAccessedAt,
			DeactivatedAt:  ref.Link.DeactivatedAt,
		}
	}

	return resp
}

type ReferralsResponse struct {
	Referrals  []ReferralResponse `json:"referrals"`
	TotalCount int                `json:"totalCount"`
	Page       uint64             `json:"page"`
	Limit      uint64             `json:"limit"`
}

type SharedReferralResponse struct {
	PatientName     string     `json:"patientName"`
	SpecialistName  string     `json:"specialistName"`
	Specialty       string     `json:"specialty"`
	Reason          string     `json:"reason"`
	Urgency         string     `json:"urgency"`
	Status          string     `json:"status"`
	ReferralDate    time.Time  `json:"referralDate"`
	AppointmentDate *time.Time `json:"appointmentDate,omitempty"`
}

func newSharedReferralResponse(s entity.SharedReferral) SharedReferralResponse {
	return SharedReferralResponse{
		PatientName:     s.PatientName,
		SpecialistName:  s.SpecialistName,
		Specialty:       s.Specialty,
		Reason:          s.Reason,
		Urgency:         s.Urgency.String(),
		Status:          s.Status.String(),
		ReferralDate:    s.ReferralDate,
		AppointmentDate: s.AppointmentDate,
	}
}
