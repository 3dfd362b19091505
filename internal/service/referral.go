package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/clinicemr/clinic/internal/entity"
)

const (
	sharedReferralPath = "/api/referrals/shared/"
	linkCodeAttempts   = 3
)

// CreateReferral stores a Pending referral for an existing patient. A doctor actor becomes the
// referring provider. The specialist notification is best effort.
func (s *Service) CreateReferral(ctx context.Context, ref entity.Referral) (entity.Referral, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Referral{}, err
	}

	if ref.PatientID.IsNil() {
		return entity.Referral{}, fmt.Errorf("%w: patient is required", entity.ErrInvalidArgument)
	}

	patient, err := s.repo.Patient(ctx, ref.PatientID)
	if err != nil {
		return entity.Referral{}, fmt.Errorf("get patient %s: %w", ref.PatientID, err)
	}

	now := time.Now()

	ref.ID = uuid.Must(uuid.NewV4())
	ref.ClinicID = user.ClinicID
	ref.Status = entity.ReferralStatusPending
	ref.ReferredBy = uuid.Nil
	ref.ReferringProvider = nil
	ref.Link = nil
	ref.CreatedBy = user.ID
	ref.CreatedAt = now
	ref.UpdatedAt = now
	ref.Version = 1

	if ref.PatientName == "" {
		ref.PatientName = patient.FullName()
	}

	if ref.Urgency == "" {
		ref.Urgency = entity.UrgencyRoutine
	}

	if ref.ReferralDate.IsZero() {
		ref.ReferralDate = now
	}

	if user.IsDoctor() {
		doctor, err := s.repo.DoctorByUserID(ctx, user.ID)
		if err != nil {
			return entity.Referral{}, fmt.Errorf("get doctor profile of user %s: %w", user.ID, err)
		}

		ref.ReferredBy = user.ID
		ref.ReferringProvider = &entity.Provider{
			Name:  doctor.FullName(),
			Phone: doctor.Phone,
			Email: doctor.Email,
		}
	}

	err = ref.Validate()
	if err != nil {
		return entity.Referral{}, err
	}

	err = s.repo.CreateReferral(ctx, ref)
	if err != nil {
		return entity.Referral{}, fmt.Errorf("create referral: %w", err)
	}

	slog.InfoContext(ctx, "referral created", "referral_id", ref.ID, "urgency", ref.Urgency)

	s.notifyReferralCreated(ctx, ref)

	return ref, nil
}

func (s *Service) notifyReferralCreated(ctx context.Context, ref entity.Referral) {
	var recipients []string

	if ref.SpecialistContact.Email != "" {
		recipients = append(recipients, ref.SpecialistContact.Email)
	}

	if ref.ReferringProvider != nil && ref.ReferringProvider.Email != "" {
		recipients = append(recipients, ref.ReferringProvider.Email)
	}

	if len(recipients) == 0 {
		slog.DebugContext(ctx, "referral has no notification recipients", "referral_id", ref.ID)
		return
	}

	subject := "New referral: " + ref.Specialty
	if ref.IsUrgent() {
		subject = fmt.Sprintf("[%s] %s", ref.Urgency, subject)
	}

	var msg strings.Builder

	fmt.Fprintf(&msg, "Patient %s has been referred to %s (%s).\n", ref.PatientName, ref.SpecialistName, ref.Specialty)
	fmt.Fprintf(&msg, "Reason: %s\n", ref.Reason)
	fmt.Fprintf(&msg, "Urgency: %s\n", ref.Urgency)

	if ref.ReferringProvider != nil {
		fmt.Fprintf(&msg, "Referred by: %s\n", ref.ReferringProvider.Name)
	}

	err := s.notifier.SendNotification(ctx, entity.Notification{
		Key:        ref.ID.String(),
		Subject:    subject,
		Message:    msg.String(),
		Recipients: recipients,
	})
	if err != nil {
		slog.WarnContext(ctx, "send referral notification", "referral_id", ref.ID, "error", err)
	}
}

func (s *Service) Referral(ctx context.Context, id uuid.UUID) (entity.Referral, error) {
	ref, err := s.repo.Referral(ctx, id)
	if err != nil {
		return entity.Referral{}, fmt.Errorf("get referral %s: %w", id, err)
	}

	return ref, nil
}

func (s *Service) Referrals(ctx context.Context, f entity.ReferralFilter) ([]entity.Referral, int, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}

	f.ClinicID = user.ClinicID

	referrals, total, err := s.repo.Referrals(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("list referrals: %w", err)
	}

	return referrals, total, nil
}

// referralForChange loads the referral and checks that a doctor actor is assigned to its patient.
func (s *Service) referralForChange(ctx context.Context, id uuid.UUID) (entity.Referral, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Referral{}, err
	}

	ref, err := s.repo.Referral(ctx, id)
	if err != nil {
		return entity.Referral{}, fmt.Errorf("get referral %s: %w", id, err)
	}

	if !user.IsDoctor() {
		return ref, nil
	}

	patient, err := s.repo.Patient(ctx, ref.PatientID)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		return entity.Referral{}, fmt.Errorf("get patient %s: %w", ref.PatientID, err)
	}

	if err != nil || !patient.IsAssignedTo(user.ID) {
		return entity.Referral{}, fmt.Errorf("%w: doctor %s is not assigned to patient %s",
			entity.ErrForbidden, user.ID, ref.PatientID)
	}

	return ref, nil
}

func (s *Service) changeReferral(
	ctx context.Context,
	id uuid.UUID,
	change func(ref *entity.Referral, now time.Time) error,
) (entity.Referral, error) {
	ref, err := s.referralForChange(ctx, id)
	if err != nil {
		return entity.Referral{}, err
	}

	err = change(&ref, time.Now())
	if err != nil {
		return entity.Referral{}, err
	}

	ref, err = s.repo.UpdateReferral(ctx, ref)
	if err != nil {
		return entity.Referral{}, fmt.Errorf("update referral %s: %w", id, err)
	}

	return ref, nil
}

func (s *Service) UpdateReferralStatus(ctx context.Context, id uuid.UUID, status entity.ReferralStatus) (entity.Referral, error) {
	ref, err := s.changeReferral(ctx, id, func(ref *entity.Referral, now time.Time) error {
		return ref.SetStatus(status, now)
	})
	if err != nil {
		return entity.Referral{}, err
	}

	slog.InfoContext(ctx, "referral status changed", "referral_id", id, "status", status)

	return ref, nil
}

func (s *Service) ScheduleReferral(ctx context.Context, id uuid.UUID, appointmentDate time.Time) (entity.Referral, error) {
	return s.changeReferral(ctx, id, func(ref *entity.Referral, now time.Time) error {
		return ref.Schedule(appointmentDate, now)
	})
}

func (s *Service) CompleteReferral(ctx context.Context, id uuid.UUID, outcome string, recommendations []string) (entity.Referral, error) {
	return s.changeReferral(ctx, id, func(ref *entity.Referral, now time.Time) error {
		return ref.Complete(outcome, recommendations, now)
	})
}

func (s *Service) CancelReferral(ctx context.Context, id uuid.UUID) (entity.Referral, error) {
	return s.changeReferral(ctx, id, func(ref *entity.Referral, now time.Time) error {
		return ref.Cancel(now)
	})
}

func (s *Service) MarkReferralNoShow(ctx context.Context, id uuid.UUID) (entity.Referral, error) {
	return s.changeReferral(ctx, id, func(ref *entity.Referral, now time.Time) error {
		return ref.MarkNoShow(now)
	})
}

func (s *Service) AddReferralMedication(ctx context.Context, id uuid.UUID, m entity.Medication) (entity.Referral, error) {
	return s.changeReferral(ctx, id, func(ref *entity.Referral, now time.Time) error {
		return ref.AddMedication(m, now)
	})
}

func (s *Service) AddReferralRecommendation(ctx context.Context, id uuid.UUID, text string) (entity.Referral, error) {
	return s.changeReferral(ctx, id, func(ref *entity.Referral, now time.Time) error {
		return ref.AddRecommendation(text, now)
	})
}

// GenerateShareableLink issues a new active link and replaces the previous one.
func (s *Service) GenerateShareableLink(ctx context.Context, id uuid.UUID, baseURL string) (entity.Referral, error) {
	ref, err := s.referralForChange(ctx, id)
	if err != nil {
		return entity.Referral{}, err
	}

	baseURL = strings.TrimRight(baseURL, "/")

	for attempt := 0; attempt < linkCodeAttempts; attempt++ {
		now := time.Now()

		code, err := entity.NewLinkCode(now, nil)
		if err != nil {
			return entity.Referral{}, fmt.Errorf("new link code: %w", err)
		}

		next := ref
		next.GenerateLink(code, baseURL+sharedReferralPath+code, now)

		updated, err := s.repo.UpdateReferral(ctx, next)
		if errors.Is(err, entity.ErrAlreadyExists) {
			slog.WarnContext(ctx, "link code collision", "referral_id", id, "code", code)
			continue
		}

		if err != nil {
			return entity.Referral{}, fmt.Errorf("update referral %s: %w", id, err)
		}

		slog.InfoContext(ctx, "shareable link generated", "referral_id", id)

		return updated, nil
	}

	return entity.Referral{}, fmt.Errorf("%w: no free link code after %d attempts", entity.ErrConflict, linkCodeAttempts)
}

// DeactivateShareableLink disables the referral link. Repeated calls keep the first deactivation.
func (s *Service) DeactivateShareableLink(ctx context.Context, id uuid.UUID) (entity.Referral, error) {
	ref, err := s.referralForChange(ctx, id)
	if err != nil {
		return entity.Referral{}, err
	}

	changed, err := ref.DeactivateLink(time.Now())
	if err != nil {
		return entity.Referral{}, err
	}

	if !changed {
		return ref, nil
	}

	ref, err = s.repo.UpdateReferral(ctx, ref)
	if err != nil {
		return entity.Referral{}, fmt.Errorf("update referral %s: %w", id, err)
	}

	slog.InfoContext(ctx, "shareable link deactivated", "referral_id", id)

	return ref, nil
}

// SharedReferral resolves an active link code and counts the access.
func (s *Service) SharedReferral(ctx context.Context, code string) (entity.SharedReferral, error) {
	ref, err := s.repo.ReferralByLinkCode(ctx, code, time.Now())
	if err != nil {
		return entity.SharedReferral{}, fmt.Errorf("resolve link %q: %w", code, err)
	}

	return ref.Shared(), nil
}

func (s *Service) DeleteReferral(ctx context.Context, id uuid.UUID) error {
	_, err := s.referralForChange(ctx, id)
	if err != nil {
		return err
	}

	err = s.repo.DeleteReferral(ctx, id)
	if err != nil {
		return fmt.Errorf("delete referral %s: %w", id, err)
	}

	slog.InfoContext(ctx, "referral deleted", "referral_id", id)

	return nil
}
