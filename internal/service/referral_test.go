package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/clinicemr/clinic/internal/entity"
	"github.com/clinicemr/clinic/internal/mocks"
	"github.com/clinicemr/clinic/internal/service"
)

func storedReferral(patientID uuid.UUID) entity.Referral {
	now := time.Now()

	return entity.Referral{
		ID:             uuid.Must(uuid.NewV4()),
		PatientID:      patientID,
		PatientName:    "Jane Doe",
		SpecialistName: "Dr. House",
		Specialty:      "Nephrology",
		Reason:         "Elevated creatinine",
		Urgency:        entity.UrgencyRoutine,
		Status:         entity.ReferralStatusPending,
		ReferralDate:   now,
		CreatedAt:      now,
		UpdatedAt:      now,
		Version:        1,
	}
}

func TestService_CreateReferral_Doctor(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	s := service.New(repo, notifier)

	ctx, user := ctxWithUser(entity.RoleDoctor)
	patient := entity.Patient{ID: uuid.Must(uuid.NewV4()), FirstName: "Jane", LastName: "Doe"}

	repo.EXPECT().Patient(ctx, patient.ID).Return(patient, nil)
	repo.EXPECT().DoctorByUserID(ctx, user.ID).Return(entity.Doctor{
		UserID:    user.ID,
		FirstName: "Gregory",
		LastName:  "House",
		Phone:     "+1 555 0100",
		Email:     "house@example.com",
	}, nil)
	repo.EXPECT().CreateReferral(ctx, gomock.Any()).Return(nil)
	notifier.EXPECT().SendNotification(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, n entity.Notification) error {
			require.Equal(t, []string{"nephro@example.com", "house@example.com"}, n.Recipients)
			require.True(t, strings.HasPrefix(n.Subject, "[Urgent]"))
			require.Contains(t, n.Message, "Jane Doe")

			return errors.New("broker is down")
		})

	ref, err := s.CreateReferral(ctx, entity.Referral{
		PatientID:         patient.ID,
		SpecialistName:    "Dr. Kidney",
		Specialty:         "Nephrology",
		SpecialistContact: entity.ContactInfo{Email: "nephro@example.com"},
		Reason:            "Elevated creatinine",
		Urgency:           entity.UrgencyUrgent,
		Status:            entity.ReferralStatusCompleted,
	})
	require.NoError(t, err)

	require.Equal(t, entity.ReferralStatusPending, ref.Status)
	require.Equal(t, "Jane Doe", ref.PatientName)
	require.Equal(t, user.ID, ref.ReferredBy)
	require.Equal(t, &entity.Provider{
		Name:  "Dr. Gregory House",
		Phone: "+1 555 0100",
		Email: "house@example.com",
	}, ref.ReferringProvider)
	require.True(t, ref.IsUrgent())
	require.True(t, ref.IsPending())
}

func TestService_CreateReferral_Admin(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	s := service.New(repo, mocks.NewMockNotifier(ctrl))

	ctx, _ := ctxWithUser(entity.RoleClinicAdmin)
	patientID := uuid.Must(uuid.NewV4())

	repo.EXPECT().Patient(ctx, patientID).Return(entity.Patient{ID: patientID}, nil)
	repo.EXPECT().CreateReferral(ctx, gomock.Any()).Return(nil)

	ref, err := s.CreateReferral(ctx, entity.Referral{
		PatientID:      patientID,
		PatientName:    "John Roe",
		SpecialistName: "Dr. Heart",
		Specialty:      "Cardiology",
		Reason:         "Arrhythmia",
	})
	require.NoError(t, err)
	require.Equal(t, entity.UrgencyRoutine, ref.Urgency)
	require.Nil(t, ref.ReferringProvider)
	require.True(t, ref.ReferredBy.IsNil())
}

func TestService_CreateReferral_Errors(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	s := service.New(repo, mocks.NewMockNotifier(ctrl))

	ctx, _ := ctxWithUser(entity.RoleNurse)

	_, err := s.CreateReferral(ctx, entity.Referral{})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	missing := uuid.Must(uuid.NewV4())
	repo.EXPECT().Patient(ctx, missing).Return(entity.Patient{}, entity.ErrNotFound)

	_, err = s.CreateReferral(ctx, entity.Referral{PatientID: missing, PatientName: "x"})
	require.ErrorIs(t, err, entity.ErrNotFound)

	patientID := uuid.Must(uuid.NewV4())
	repo.EXPECT().Patient(ctx, patientID).Return(entity.Patient{ID: patientID, FirstName: "A", LastName: "B"}, nil)

	_, err = s.CreateReferral(ctx, entity.Referral{PatientID: patientID, Specialty: "x", Reason: "y"})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestService_UpdateReferralStatus_DoctorAssignment(t *testing.T) {
	t.Parallel()

	ctx, user := ctxWithUser(entity.RoleDoctor)
	patientID := uuid.Must(uuid.NewV4())

	t.Run("unassigned doctor", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRepository(ctrl)
		s := service.New(repo, nil)

		ref := storedReferral(patientID)

		repo.EXPECT().Referral(ctx, ref.ID).Return(ref, nil)
		repo.EXPECT().Patient(ctx, patientID).Return(entity.Patient{
			ID:              patientID,
			AssignedDoctors: []uuid.UUID{uuid.Must(uuid.NewV4())},
		}, nil)

		_, err := s.UpdateReferralStatus(ctx, ref.ID, entity.ReferralStatusScheduled)
		require.ErrorIs(t, err, entity.ErrForbidden)
	})

	t.Run("assigned doctor", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRepository(ctrl)
		s := service.New(repo, nil)

		ref := storedReferral(patientID)

		repo.EXPECT().Referral(ctx, ref.ID).Return(ref, nil)
		repo.EXPECT().Patient(ctx, patientID).Return(entity.Patient{
			ID:              patientID,
			AssignedDoctors: []uuid.UUID{user.ID},
		}, nil)
		repo.EXPECT().UpdateReferral(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, ref entity.Referral) (entity.Referral, error) {
				ref.Version++
				return ref, nil
			})

		updated, err := s.UpdateReferralStatus(ctx, ref.ID, entity.ReferralStatusScheduled)
		require.NoError(t, err)
		require.Equal(t, entity.ReferralStatusScheduled, updated.Status)
		require.Equal(t, int64(2), updated.Version)
	})

	t.Run("admin skips assignment", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRepository(ctrl)
		s := service.New(repo, nil)

		adminCtx, _ := ctxWithUser(entity.RoleSuperMasterAdmin)
		ref := storedReferral(patientID)
		ref.Status = entity.ReferralStatusCompleted

		repo.EXPECT().Referral(adminCtx, ref.ID).Return(ref, nil)

		_, err := s.UpdateReferralStatus(adminCtx, ref.ID, entity.ReferralStatusPending)
		require.ErrorIs(t, err, entity.ErrInvalidState)
	})
}

// linkRepo keeps a single referral in memory to follow a link through its lifecycle.
type linkRepo struct {
	ref entity.Referral
}

func (r *linkRepo) expect(repo *mocks.MockRepository) {
	repo.EXPECT().Referral(gomock.Any(), r.ref.ID).
		DoAndReturn(func(context.Context, uuid.UUID) (entity.Referral, error) {
			return r.ref, nil
		}).AnyTimes()

	repo.EXPECT().UpdateReferral(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ref entity.Referral) (entity.Referral, error) {
			if ref.Version != r.ref.Version {
				return entity.Referral{}, entity.ErrConflict
			}

			ref.Version++

			if ref.Link != nil {
				link := *ref.Link
				ref.Link = &link
			}

			r.ref = ref

			return ref, nil
		}).AnyTimes()

	repo.EXPECT().ReferralByLinkCode(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, code string, now time.Time) (entity.Referral, error) {
			if r.ref.Link == nil || r.ref.Link.Code != code || !r.ref.Link.IsActive {
				return entity.Referral{}, entity.ErrNotFound
			}

			link := *r.ref.Link
			link.AccessCount++
			link.LastAccessedAt = &now
			r.ref.Link = &link

			return r.ref, nil
		}).AnyTimes()
}

func TestService_ShareableLinkLifecycle(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	s := service.New(repo, nil)

	ctx, _ := ctxWithUser(entity.RoleClinicAdmin)

	lr := &linkRepo{ref: storedReferral(uuid.Must(uuid.NewV4()))}
	lr.expect(repo)

	ref, err := s.GenerateShareableLink(ctx, lr.ref.ID, "https://clinic.example/")
	require.NoError(t, err)
	require.NotNil(t, ref.Link)
	require.True(t, ref.Link.IsActive)
	require.Equal(t, "https://clinic.example/api/referrals/shared/"+ref.Link.Code, ref.Link.URL)

	code := ref.Link.Code

	for want := int64(1); want <= 2; want++ {
		shared, err := s.SharedReferral(ctx, code)
		require.NoError(t, err)
		require.Equal(t, ref.ID, shared.ReferralID)
		require.Equal(t, want, shared.AccessCount)
	}

	ref, err = s.DeactivateShareableLink(ctx, ref.ID)
	require.NoError(t, err)
	require.False(t, ref.Link.IsActive)

	deactivatedAt := *ref.Link.DeactivatedAt
	version := ref.Version

	ref, err = s.DeactivateShareableLink(ctx, ref.ID)
	require.NoError(t, err)
	require.False(t, ref.Link.IsActive)
	require.Equal(t, deactivatedAt, *ref.Link.DeactivatedAt)
	require.Equal(t, version, ref.Version)

	_, err = s.SharedReferral(ctx, code)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_GenerateShareableLink_Collision(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	s := service.New(repo, nil)

	ctx, _ := ctxWithUser(entity.RoleNurse)
	ref := storedReferral(uuid.Must(uuid.NewV4()))

	repo.EXPECT().Referral(ctx, ref.ID).Return(ref, nil)

	gomock.InOrder(
		repo.EXPECT().UpdateReferral(ctx, gomock.Any()).Return(entity.Referral{}, entity.ErrAlreadyExists),
		repo.EXPECT().UpdateReferral(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, ref entity.Referral) (entity.Referral, error) {
				return ref, nil
			}),
	)

	updated, err := s.GenerateShareableLink(ctx, ref.ID, "http://localhost:8080")
	require.NoError(t, err)
	require.Regexp(t, `^REF-[0-9A-Z]+-[0-9A-Z]{5}$`, updated.Link.Code)

	repo.EXPECT().Referral(ctx, ref.ID).Return(ref, nil)
	repo.EXPECT().UpdateReferral(ctx, gomock.Any()).Return(entity.Referral{}, entity.ErrAlreadyExists).Times(3)

	_, err = s.GenerateShareableLink(ctx, ref.ID, "http://localhost:8080")
	require.ErrorIs(t, err, entity.ErrConflict)
}

func TestService_DeactivateShareableLink_NoLink(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	s := service.New(repo, nil)

	ctx, _ := ctxWithUser(entity.RoleClinicAdmin)
	ref := storedReferral(uuid.Must(uuid.NewV4()))

	repo.EXPECT().Referral(ctx, ref.ID).Return(ref, nil)

	_, err := s.DeactivateShareableLink(ctx, ref.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_ReferralAppendsAndLifecycle(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	s := service.New(repo, nil)

	ctx, _ := ctxWithUser(entity.RoleClinicAdmin)

	lr := &linkRepo{ref: storedReferral(uuid.Must(uuid.NewV4()))}
	lr.expect(repo)

	id := lr.ref.ID

	ref, err := s.AddReferralMedication(ctx, id, entity.Medication{Name: "Lisinopril", Dosage: "10mg"})
	require.NoError(t, err)
	require.Len(t, ref.Medications, 1)

	ref, err = s.AddReferralRecommendation(ctx, id, "low salt diet")
	require.NoError(t, err)
	require.Equal(t, []string{"low salt diet"}, ref.Recommendations)

	appointment := time.Now().AddDate(0, 0, 3)

	ref, err = s.ScheduleReferral(ctx, id, appointment)
	require.NoError(t, err)
	require.Equal(t, entity.ReferralStatusScheduled, ref.Status)

	ref, err = s.MarkReferralNoShow(ctx, id)
	require.NoError(t, err)
	require.Equal(t, entity.ReferralStatusNoShow, ref.Status)

	_, err = s.CompleteReferral(ctx, id, "seen", nil)
	require.ErrorIs(t, err, entity.ErrInvalidState)

	ref, err = s.ScheduleReferral(ctx, id, appointment.AddDate(0, 0, 7))
	require.NoError(t, err)

	ref, err = s.CompleteReferral(ctx, id, "seen", nil)
	require.NoError(t, err)
	require.Equal(t, "seen", ref.Outcome)
	require.Equal(t, []string{"low salt diet"}, ref.Recommendations)

	_, err = s.CancelReferral(ctx, id)
	require.ErrorIs(t, err, entity.ErrInvalidState)

	repo.EXPECT().DeleteReferral(ctx, id).Return(nil)
	require.NoError(t, s.DeleteReferral(ctx, id))
}
