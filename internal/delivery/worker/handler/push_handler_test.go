package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio/config"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/service"
	mockUC "portfolio/internal/mocks/usecase"
	"portfolio/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

const testSubmissionID = "0192f0c4-8a6e-7d3b-9f51-2c7a4e1b6d90"

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUC.MockNotificationUsecase) {
	notifications := mockUC.NewMockNotificationUsecase(t)
	if cfg == nil {
		cfg = &config.Config{}
	}
	h := NewPushHandler(PushHandlerParams{
		Config:        cfg,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		Notifications: notifications,
	})

	return h, notifications
}

func pushBody(t *testing.T, eventType string, event *service.ContactEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = map[string]string{"event_type": eventType, "request_id": "req-42"}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		req.Header[key] = values
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.ContactEvent{SubmissionID: testSubmissionID, Name: "Ada Lovelace"}

	tests := []struct {
		name       string
		notifyErr  error
		wantStatus int
	}{
		{name: "delivered", wantStatus: http.StatusOK},
		{name: "submission deleted is acknowledged", notifyErr: domainerrors.ErrMessageNotFound, wantStatus: http.StatusOK},
		{name: "bad event is acknowledged", notifyErr: errors.Wrap(impl.ErrInvalidContactEvent, "bad id"), wantStatus: http.StatusOK},
		{name: "store failure is redelivered", notifyErr: errors.New("database is locked"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notifications := newTestPushHandler(t, nil)
			notifications.EXPECT().
				NotifySubmission(mock.Anything, mock.MatchedBy(func(got *service.ContactEvent) bool {
					return got.SubmissionID == testSubmissionID
				})).
				Run(func(ctx context.Context, _ *service.ContactEvent) {
					assert.NotNil(t, ctx)
				}).
				Return(tt.notifyErr)

			rec := servePush(h, pushBody(t, service.ContactSubmittedEvent, event), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_RejectsMalformedMessages(t *testing.T) {
	h, _ := newTestPushHandler(t, nil)

	rec := servePush(h, `{"message":{"data":"%%%"}}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = servePush(h, `{"message":{"data":"`+base64.StdEncoding.EncodeToString([]byte("[1,2]"))+`"}}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_IgnoresOtherEvents(t *testing.T) {
	h, _ := newTestPushHandler(t, nil)

	rec := servePush(h, pushBody(t, "project.updated", &service.ContactEvent{}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: config.PubSubProviderGoogle}}
	cfg.Env.Env = "production"

	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)

		rec := servePush(h, pushBody(t, service.ContactSubmittedEvent, &service.ContactEvent{}), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)
		h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example"}, nil
		}

		rec := servePush(h, pushBody(t, service.ContactSubmittedEvent, &service.ContactEvent{}),
			http.Header{"Authorization": {"Bearer token"}})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, notifications := newTestPushHandler(t, cfg)
		var audience string
		h.validateToken = func(_ context.Context, _ string, aud string) (*idtoken.Payload, error) {
			audience = aud

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		notifications.EXPECT().NotifySubmission(mock.Anything, mock.Anything).Return(nil)

		rec := servePush(h, pushBody(t, service.ContactSubmittedEvent, &service.ContactEvent{SubmissionID: testSubmissionID}),
			http.Header{"Authorization": {"Bearer token"}})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://example.com/push", audience)
	})
}
