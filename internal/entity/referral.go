package entity

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

type ReferralStatus string

const (
	ReferralStatusPending   ReferralStatus = "Pending"
	ReferralStatusScheduled ReferralStatus = "Scheduled"
	ReferralStatusCompleted ReferralStatus = "Completed"
	ReferralStatusCancelled ReferralStatus = "Cancelled"
	ReferralStatusNoShow    ReferralStatus = "No Show"
)

func (s ReferralStatus) String() string {
	return string(s)
}

func (s ReferralStatus) Validate() error {
	if _, ok := referralTransitions[s]; !ok {
		return fmt.Errorf("%w: unknown referral status %q", ErrInvalidArgument, s)
	}

	return nil
}

// referralTransitions lists the statuses reachable from each status.
var referralTransitions = map[ReferralStatus][]ReferralStatus{
	ReferralStatusPending:   {ReferralStatusScheduled, ReferralStatusCompleted, ReferralStatusCancelled},
	ReferralStatusScheduled: {ReferralStatusScheduled, ReferralStatusCompleted, ReferralStatusCancelled, ReferralStatusNoShow},
	ReferralStatusNoShow:    {ReferralStatusScheduled, ReferralStatusCancelled},
	ReferralStatusCompleted: {},
	ReferralStatusCancelled: {},
}

func (s ReferralStatus) CanTransitionTo(next ReferralStatus) bool {
	return s == next || slices.Contains(referralTransitions[s], next)
}

type Urgency string

const (
	UrgencyRoutine   Urgency = "Routine"
	UrgencyUrgent    Urgency = "Urgent"
	UrgencyEmergency Urgency = "Emergency"
)

func (u Urgency) Validate() error {
	switch u {
	case UrgencyRoutine, UrgencyUrgent, UrgencyEmergency:
		return nil
	default:
		return fmt.Errorf("%w: unknown urgency %q", ErrInvalidArgument, u)
	}
}

func (u Urgency) String() string {
	return string(u)
}

type ContactInfo struct {
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
	Fax   string `json:"fax,omitempty"`
}

type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
}

type Medication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage,omitempty"`
	Frequency string `json:"frequency,omitempty"`
	Duration  string `json:"duration,omitempty"`
}

// Provider is a snapshot of the referring doctor taken at referral creation.
type Provider struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type ShareableLink struct {
	Code           string
	URL            string
	GeneratedAt    time.Time
	IsActive       bool
	AccessCount    int64
	LastAccessedAt *time.Time
	DeactivatedAt  *time.Time
}

type Referral struct {
	ID                uuid.UUID
	ClinicID          uuid.UUID
	PatientID         uuid.UUID
	PatientName       string
	SpecialistName    string
	Specialty         string
	SpecialistContact ContactInfo
	SpecialistAddress Address
	Reason            string
	ClinicalNotes     string
	Urgency           Urgency
	Status            ReferralStatus
	ReferralDate      time.Time
	AppointmentDate   *time.Time
	Outcome           string
	Recommendations   []string
	Medications       []Medication
	ReferredBy        uuid.UUID // doctor user id, uuid.Nil when created by staff
	ReferringProvider *Provider
	Link              *ShareableLink
	CreatedBy         uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Version           int64
}

func (r *Referral) IsUrgent() bool {
	return r.Urgency == UrgencyUrgent || r.Urgency == UrgencyEmergency
}

func (r *Referral) IsPending() bool {
	return r.Status == ReferralStatusPending
}

func (r *Referral) Validate() error {
	switch {
	case r.PatientID.IsNil():
		return fmt.Errorf("%w: patient is required", ErrInvalidArgument)
	case strings.TrimSpace(r.PatientName) == "":
		return fmt.Errorf("%w: patient name is required", ErrInvalidArgument)
	case strings.TrimSpace(r.SpecialistName) == "":
		return fmt.Errorf("%w: specialist name is required", ErrInvalidArgument)
	case strings.TrimSpace(r.Specialty) == "":
		return fmt.Errorf("%w: specialty is required", ErrInvalidArgument)
	case strings.TrimSpace(r.Reason) == "":
		return fmt.Errorf("%w: reason is required", ErrInvalidArgument)
	}

	return r.Urgency.Validate()
}

// SetStatus moves the referral to status if the transition is allowed.
func (r *Referral) SetStatus(status ReferralStatus, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if !r.Status.CanTransitionTo(status) {
		return fmt.Errorf("%w: referral %s cannot move from %q to %q", ErrInvalidState, r.ID, r.Status, status)
	}

	r.Status = status
	r.UpdatedAt = now

	return nil
}

func (r *Referral) Schedule(appointmentDate, now time.Time) error {
	if appointmentDate.IsZero() {
		return fmt.Errorf("%w: appointment date is required", ErrInvalidArgument)
	}

	if err := r.SetStatus(ReferralStatusScheduled, now); err != nil {
		return err
	}

	r.AppointmentDate = &appointmentDate

	return nil
}

// Complete closes the referral. Empty outcome or recommendations keep the stored values.
func (r *Referral) Complete(outcome string, recommendations []string, now time.Time) error {
	if err := r.SetStatus(ReferralStatusCompleted, now); err != nil {
		return err
	}

	if outcome != "" {
		r.Outcome = outcome
	}

	if len(recommendations) > 0 {
		r.Recommendations = recommendations
	}

	return nil
}

func (r *Referral) Cancel(now time.Time) error {
	return r.SetStatus(ReferralStatusCancelled, now)
}

func (r *Referral) MarkNoShow(now time.Time) error {
	return r.SetStatus(ReferralStatusNoShow, now)
}

func (r *Referral) AddMedication(m Medication, now time.Time) error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: medication name is required", ErrInvalidArgument)
	}

	r.Medications = append(r.Medications, m)
	r.UpdatedAt = now

	return nil
}

func (r *Referral) AddRecommendation(text string, now time.Time) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: recommendation is empty", ErrInvalidArgument)
	}

	r.Recommendations = append(r.Recommendations, text)
	r.UpdatedAt = now

	return nil
}

// GenerateLink replaces any previous link, so older codes stop resolving.
func (r *Referral) GenerateLink(code, url string, now time.Time) {
	r.Link = &ShareableLink{
		Code:        code,
		URL:         url,
		GeneratedAt: now,
		IsActive:    true,
		AccessCount: 0,
	}
	r.UpdatedAt = now
}

// DeactivateLink disables the shareable link. It reports false when the link was already inactive.
func (r *Referral) DeactivateLink(now time.Time) (bool, error) {
	if r.Link == nil {
		return false, fmt.Errorf("%w: referral %s has no shareable link", ErrNotFound, r.ID)
	}

	if !r.Link.IsActive {
		return false, nil
	}

	deactivatedAt := now
	r.Link.IsActive = false
	r.Link.DeactivatedAt = &deactivatedAt
	r.UpdatedAt = now

	return true, nil
}

// SharedReferral is the unauthenticated view of a referral opened through a shareable link.
type SharedReferral struct {
	ReferralID      uuid.UUID
	PatientName     string
	SpecialistName  string
	Specialty       string
	Reason          string
	Urgency         Urgency
	Status          ReferralStatus
	ReferralDate    time.Time
	AppointmentDate *time.Time
	AccessCount     int64
}

func (r *Referral) Shared() SharedReferral {
	s := SharedReferral{
		ReferralID:      r.ID,
		PatientName:     r.PatientName,
		SpecialistName:  r.SpecialistName,
		Specialty:       r.Specialty,
		Reason:          r.Reason,
		Urgency:         r.Urgency,
		Status:          r.Status,
		ReferralDate:    r.ReferralDate,
		AppointmentDate: r.AppointmentDate,
	}

	if r.Link != nil {
		s.AccessCount = r.Link.AccessCount
	}

	return s
}

const (
	linkCodePrefix    = "REF"
	linkCodeRandLen   = 5
	linkCodeAlphabet  = "0123456789abcdefghijklmnopqrstuvwxyz"
	linkCodeBase      = 36
	linkCodeAlphaSize = int64(len(linkCodeAlphabet))
)

// NewLinkCode builds REF-<base36 unix millis>-<5 random base36 chars>, upper-cased.
func NewLinkCode(now time.Time, rnd io.Reader) (string, error) {
	if rnd == nil {
		rnd = rand.Reader
	}

	suffix := make([]byte, linkCodeRandLen)

	for n := range suffix {
		idx, err := rand.Int(rnd, big.NewInt(linkCodeAlphaSize))
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}

		suffix[n] = linkCodeAlphabet[idx.Int64()]
	}

	code := linkCodePrefix + "-" + strconv.FormatInt(now.UnixMilli(), linkCodeBase) + "-" + string(suffix)

	return strings.ToUpper(code), nil
}
