package repository

var invoiceColumns = []string{
	"id",
	"clinic_id",
	"patient_id",
	"invoice_number",
	"invoice_date",
	"due_date",
	"terms",
	"items",
	"tax_rate",
	"discount_amount",
	"subtotal",
	"tax_amount",
	"total_amount",
	"paid_amount",
	"balance_amount",
	"status",
	"payment_status",
	"payment_method",
	"payment_date",
	"payment_reference",
	"insurance",
	"notes",
	"internal_notes",
	"created_by",
	"created_at",
	"updated_at",
	"version",
}

var referralColumns = []string{
	"id",
	"clinic_id",
	"patient_id",
	"patient_name",
	"specialist_name",
	"specialty",
	"specialist_contact",
	"specialist_address",
	"reason",
	"clinical_notes",
	"urgency",
	"status",
	"referral_date",
	"appointment_date",
	"outcome",
	"recommendations",
	"medications",
	"referred_by",
	"referring_provider",
	"link_code",
	"link_url",
	"link_generated_at",
	"link_is_active",
	"link_access_count",
	"link_last_access_at",
	"link_deactivated_at",
	"created_by",
	"created_at",
	"updated_at",
	"version",
}

const (
	selectInvoice = `SELECT
		id,
		clinic_id,
		patient_id,
		invoice_number,
		invoice_date,
		due_date,
		terms,
		items,
		tax_rate,
		discount_amount,
		subtotal,
		tax_amount,
		total_amount,
		paid_amount,
		balance_amount,
		status,
		payment_status,
		payment_method,
		payment_date,
		payment_reference,
		insurance,
		notes,
		internal_notes,
		created_by,
		created_at,
		updated_at,
		version
	FROM invoices`

	selectReferral = `SELECT
		id,
		clinic_id,
		patient_id,
		patient_name,
		specialist_name,
		specialty,
		specialist_contact,
		specialist_address,
		reason,
		clinical_notes,
		urgency,
		status,
		referral_date,
		appointment_date,
		outcome,
		recommendations,
		medications,
		referred_by,
		referring_provider,
		link_code,
		link_url,
		link_generated_at,
		link_is_active,
		link_access_count,
		link_last_access_at,
		link_deactivated_at,
		created_by,
		created_at,
		updated_at,
		version
	FROM referrals`

	selectPayment = `SELECT
		id,
		invoice_id,
		amount,
		method,
		reference,
		idempotency_key,
		paid_at,
		created_by
	FROM invoice_payments`
)
