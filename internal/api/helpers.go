package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid/v5"

	"github.com/clinicemr/clinic/internal/entity"
	"github.com/clinicemr/clinic/pkg/logger"
)

type ErrorResponse struct {
	Message     string            `json:"message"`
	Description string            `json:"description,omitempty"`
	Fields      map[string]string `json:"fields,omitempty"`
	RequestID   string            `json:"requestId,omitempty"`
}

func SendJSONErr(ctx context.Context, w http.ResponseWriter, code int, originErr error, msgToSend string) {
	resp := ErrorResponse{
		Message:   msgToSend,
		RequestID: logger.RequestIDFromCtx(ctx),
	}

	if originErr != nil {
		resp.Description = originErr.Error()

		if code >= http.StatusInternalServerError {
			slog.ErrorContext(ctx, "api error", "error", originErr.Error())
		} else {
			slog.WarnContext(ctx, "api error", "error", originErr.Error(), "code", code)
		}
	}

	SendJSON(ctx, w, code, resp)
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		code = http.StatusInternalServerError
		http.Error(w, http.StatusText(code), code)

		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

// sendServiceErr maps domain errors to HTTP statuses.
func sendServiceErr(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, entity.ErrUnauthenticated):
		SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Authentication required")
	case errors.Is(err, entity.ErrForbidden):
		SendJSONErr(ctx, w, http.StatusForbidden, err, "Not enough permissions for this action")
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "Not found")
	case errors.Is(err, entity.ErrInvalidArgument):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Validation failed")
	case errors.Is(err, entity.ErrInvalidState):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Action is not allowed in the current state")
	case errors.Is(err, entity.ErrConflict), errors.Is(err, entity.ErrAlreadyExists):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Concurrent modification, retry the request")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, msg)
	}
}

// decodeRequest reads a JSON body into req and validates its shape.
func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request, req any) bool {
	ctx := r.Context()

	err := json.NewDecoder(r.Body).Decode(req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return false
	}

	err = h.validate.Struct(req)
	if err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid request")
			return false
		}

		fields := make(map[string]string, len(ve))
		for _, fe := range ve {
			fields[fe.Namespace()] = fe.Tag()
		}

		slog.WarnContext(ctx, "request validation failed", "fields", fields)
		SendJSON(ctx, w, http.StatusUnprocessableEntity, ErrorResponse{
			Message:     "Validation failed",
			Description: err.Error(),
			Fields:      fields,
			RequestID:   logger.RequestIDFromCtx(ctx),
		})

		return false
	}

	return true
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(r.Context(), w, http.StatusBadRequest, err, "Invalid id")
		return uuid.Nil, false
	}

	return id, true
}

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

func paging(r *http.Request) (page, limit uint64, err error) {
	page, limit = defaultPage, defaultLimit

	if v := r.URL.Query().Get("page"); v != "" {
		page, err = strconv.ParseUint(v, 10, 64)
		if err != nil || page == 0 {
			return 0, 0, fmt.Errorf("invalid page %q", v)
		}
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.ParseUint(v, 10, 64)
		if err != nil || limit == 0 || limit > maxLimit {
			return 0, 0, fmt.Errorf("invalid limit %q, expected 1..%d", v, maxLimit)
		}
	}

	return page, limit, nil
}

func orderBy(r *http.Request) (entity.OrderByCol, error) {
	v := r.URL.Query().Get("orderBy")
	if v == "" {
		return entity.DESC, nil
	}

	o := entity.OrderByCol(v)
	if !o.IsValid() {
		return "", fmt.Errorf("invalid orderBy %q", v)
	}

	return o, nil
}

func optionalUUID(r *http.Request, name string) (*uuid.UUID, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}

	id, err := uuid.FromString(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", name, v, err)
	}

	return &id, nil
}

// baseURL is the configured public address or the address the request came to.
func (h *Handler) baseURL(r *http.Request) string {
	if h.publicBaseURL != "" {
		return h.publicBaseURL
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	return scheme + "://" + r.Host
}
