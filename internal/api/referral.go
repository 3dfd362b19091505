package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/clinicemr/clinic/internal/entity"
)

// @Summary Create referral
// @Description Doctors get their profile attached as the referring provider. The specialist is notified by email.
// @Tags referrals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateReferralRequest true "Referral"
// @Success 201 {object} ReferralResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Patient or doctor profile not found"
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /referrals [post]
func (h *Handler) CreateReferral(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateReferralRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	ref, err := h.s.CreateReferral(ctx, req.entity())
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to create referral")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, newReferralResponse(ref))
}

// @Summary List referrals
// @Tags referrals
// @Produce json
// @Security BearerAuth
// @Param patientId query string false "Patient id"
// @Param status query string false "Referral status"
// @Param urgency query string false "Urgency"
// @Param page query int false "Page, starts from 1"
// @Param limit query int false "Page size, up to 100"
// @Param sortBy query string false "referral_date, urgency, created_at"
// @Param orderBy query string false "asc or desc"
// @Success 200 {object} ReferralsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /referrals [get]
func (h *Handler) Referrals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	f, err := parseReferralFilter(r)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid filter")
		return
	}

	referrals, total, err := h.s.Referrals(ctx, f)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get referrals")
		return
	}

	resp := ReferralsResponse{
		Referrals:  make([]ReferralResponse, 0, len(referrals)),
		TotalCount: total,
		Page:       f.Page,
		Limit:      f.Limit,
	}

	for _, v := range referrals {
		resp.Referrals = append(resp.Referrals, newReferralResponse(v))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

func parseReferralFilter(r *http.Request) (entity.ReferralFilter, error) {
	var (
		f   entity.ReferralFilter
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

	f.SortBy = entity.ReferralSortByCreatedAt
	if v := q.Get("sortBy"); v != "" {
		f.SortBy = entity.ReferralSortCol(v)
		if !f.SortBy.IsValid() {
			return f, fmt.Errorf("invalid sortBy %q", v)
		}
	}

	if v := q.Get("status"); v != "" {
		status := entity.ReferralStatus(v)
		if err = status.Validate(); err != nil {
			return f, err
		}

		f.Status = &status
	}

	if v := q.Get("urgency"); v != "" {
		urgency := entity.Urgency(v)
		if err = urgency.Validate(); err != nil {
			return f, err
		}

		f.Urgency = &urgency
	}

	return f, nil
}

// @Summary Get referral
// @Tags referrals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Referral id"
// @Success 200 {object} ReferralResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /referrals/{id} [get]
func (h *Handler) Referral(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ref, err := h.s.Referral(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get referral")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newReferralResponse(ref))
}

// @Summary Delete referral
// @Tags referrals
// @Security BearerAuth
// @Param id path string true "Referral id"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /referrals/{id} [delete]
func (h *Handler) DeleteReferral(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.s.DeleteReferral(ctx, id); err != nil {
		sendServiceErr(ctx, w, err, "Failed to delete referral")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary Change referral status
// @Description Doctors may change referrals of their assigned patients only.
// @Tags referrals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Referral id"
// @Param request body UpdateReferralStatusRequest true "Status"
// @Success 200 {object} ReferralResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /referrals/{id}/status [patch]
func (h *Handler) UpdateReferralStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req UpdateReferralStatusRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	ref, err := h.s.UpdateReferralStatus(ctx, id, entity.ReferralStatus(req.Status))
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to update referral status")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newReferralResponse(ref))
}

// @Summary Schedule referral appointment
// @Tags referrals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Referral id"
// @Param request body ScheduleReferralRequest true "Appointment"
// @Success 200 {object} ReferralResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /referrals/{id}/schedule [post]
func (h *Handler) ScheduleReferral(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req ScheduleReferralRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	ref, err := h.s.ScheduleReferral(ctx, id, req.AppointmentDate)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to schedule referral")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newReferralResponse(ref))
}

// @Summary Complete referral
// @Description Empty outcome or recommendations keep the stored values.
// @Tags referrals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Referral id"
// @Param request body CompleteReferralRequest true "Outcome"
// @Success 200 {object} ReferralResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /referrals/{id}/complete [post]
func (h *Handler) CompleteReferral(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req CompleteReferralRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	ref, err := h.s.CompleteReferral(ctx, id, req.Outcome, req.Recommendations)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to complete referral")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newReferralResponse(ref))
}

// @Summary Cancel referral
// @Tags referrals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Referral id"
// @Success 200 {object} ReferralResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /referrals/{id}/cancel [post]
func (h *Handler) CancelReferral(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ref, err := h.s.CancelReferral(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to cancel referral")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newReferralResponse(ref))
}

// @Summary Mark referral as no show
// @Tags referrals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Referral id"
// @Success 200 {object} ReferralResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /referrals/{id}/no-show [post]
func (h *Handler) MarkReferralNoShow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ref, err := h.s.MarkReferralNoShow(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to mark referral as no show")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newReferralResponse(ref))
}

// @Summary Add medication to referral
// @Tags referrals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Referral id"
// @Param request body MedicationRequest true "Medication"
// @Success 200 {object} ReferralResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /referrals/{id}/medications [post]
func (h *Handler) AddReferralMedication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req MedicationRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	ref, err := h.s.AddReferralMedication(ctx, id, req.entity())
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to add medication")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newReferralResponse(ref))
}

// @Summary Add recommendation to referral
// @Tags referrals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Referral id"
// @Param request body RecommendationRequest true "Recommendation"
// @Success 200 {object} ReferralResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /referrals/{id}/recommendations [post]
func (h *Handler) AddReferralRecommendation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req RecommendationRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	ref, err := h.s.AddReferralRecommendation(ctx, id, req.Recommendation)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to add recommendation")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newReferralResponse(ref))
}

// @Summary Generate shareable link
// @Description Replaces the previous link, so the old code stops resolving.
// @Tags referrals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Referral id"
// @Success 200 {object} ReferralResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /referrals/{id}/link [post]
func (h *Handler) GenerateShareableLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ref, err := h.s.GenerateShareableLink(ctx, id, h.baseURL(r))
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to generate shareable link")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newReferralResponse(ref))
}

// @Summary Deactivate shareable link
// @Tags referrals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Referral id"
// @Success 200 {object} ReferralResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Referral or link not found"
// @Failure 500 {object} ErrorResponse
// @Router /referrals/{id}/link [delete]
func (h *Handler) DeactivateShareableLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ref, err := h.s.DeactivateShareableLink(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to deactivate shareable link")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newReferralResponse(ref))
}

// @Summary Open shared referral
// @Description Public view of a referral by an active link code. Every call counts as an access.
// @Tags referrals
// @Produce json
// @Param code path string true "Link code"
// @Success 200 {object} SharedReferralResponse
// @Failure 404 {object} ErrorResponse "Unknown or inactive link"
// @Failure 500 {object} ErrorResponse
// @Router /referrals/shared/{code} [get]
func (h *Handler) SharedReferral(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	code := strings.TrimSpace(chi.URLParam(r, "code"))
	if code == "" {
		SendJSONErr(ctx, w, http.StatusNotFound, nil, "Not found")
		return
	}

	shared, err := h.s.SharedReferral(ctx, code)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to open shared referral")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newSharedReferralResponse(shared))
}
