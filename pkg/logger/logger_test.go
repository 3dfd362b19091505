package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/clinicemr/clinic/pkg/logger"
)

//nolint:paralleltest
func TestHandler_AddsContextAttrs(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := new(bytes.Buffer)

	l, err := logger.NewWithWriter(buf, "debug", "json")
	require.NoError(t, err)

	userID := uuid.Must(uuid.NewV4())

	ctx := logger.WithRequestID(context.Background(), "req-1")
	ctx = logger.WithUserID(ctx, userID)

	l.With("component", "test").InfoContext(ctx, "hello")

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "req-1", got["request_id"])
	require.Equal(t, userID.String(), got["user_id"])
	require.Equal(t, "test", got["component"])
	require.Equal(t, "req-1", logger.RequestIDFromCtx(ctx))
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := logger.NewWithWriter(new(bytes.Buffer), "loud", "json")
	require.Error(t, err)
}
