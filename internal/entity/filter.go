package entity

import (
	"github.com/gofrs/uuid/v5"
)

type OrderByCol string

func (o OrderByCol) String() string {
	return string(o)
}

const (
	DESC OrderByCol = "desc"
	ASC  OrderByCol = "asc"
)

func (o OrderByCol) IsValid() bool {
	switch o {
	case DESC, ASC:
		return true
	}

	return false
}

type InvoiceSortCol string

func (c InvoiceSortCol) String() string {
	return string(c)
}

const (
	InvoiceSortByNumber      InvoiceSortCol = "invoice_number"
	InvoiceSortByInvoiceDate InvoiceSortCol = "invoice_date"
	InvoiceSortByDueDate     InvoiceSortCol = "due_date"
	InvoiceSortByTotal       InvoiceSortCol = "total_amount"
	InvoiceSortByCreatedAt   InvoiceSortCol = "created_at"
)

func (c InvoiceSortCol) IsValid() bool {
	switch c {
	case InvoiceSortByNumber, InvoiceSortByInvoiceDate, InvoiceSortByDueDate, InvoiceSortByTotal, InvoiceSortByCreatedAt:
		return true
	}

	return false
}

type InvoiceFilter struct {
	ClinicID      uuid.UUID // uuid.Nil disables tenant filtering
	PatientID     *uuid.UUID
	Status        *InvoiceStatus
	PaymentStatus *PaymentStatus
	Page          uint64
	Limit         uint64
	SortBy        InvoiceSortCol
	OrderBy       OrderByCol
}

type ReferralSortCol string

func (c ReferralSortCol) String() string {
	return string(c)
}

const (
	ReferralSortByReferralDate ReferralSortCol = "referral_date"
	ReferralSortByUrgency      ReferralSortCol = "urgency"
	ReferralSortByCreatedAt    ReferralSortCol = "created_at"
)

func (c ReferralSortCol) IsValid() bool {
	switch c {
	case ReferralSortByReferralDate, ReferralSortByUrgency, ReferralSortByCreatedAt:
		return true
	}

	return false
}

type ReferralFilter struct {
	ClinicID  uuid.UUID
	PatientID *uuid.UUID
	Status    *ReferralStatus
	Urgency   *Urgency
	Page      uint64
	Limit     uint64
	SortBy    ReferralSortCol
	OrderBy   OrderByCol
}
