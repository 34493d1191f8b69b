package webhook

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/mooring-directory/internal/paymentprovider"
)

// MockService реализует интерфейс webhook.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) HandleWebhookEvent(ctx context.Context, payload []byte, sigHeader string) error {
	args := m.Called(ctx, payload, sigHeader)
	return args.Error(0)
}

func TestWebhookHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		signature      string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "event processed",
			body:      `{"type":"customer.subscription.updated"}`,
			signature: "t=1,v1=abc",
			setupMock: func(m *MockService) {
				m.On("HandleWebhookEvent", mock.Anything,
					[]byte(`{"type":"customer.subscription.updated"}`), "t=1,v1=abc").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"received":true`,
		},
		{
			name:      "invalid signature",
			body:      `{"type":"customer.subscription.updated"}`,
			signature: "bogus",
			setupMock: func(m *MockService) {
				m.On("HandleWebhookEvent", mock.Anything, mock.Anything, "bogus").
					Return(paymentprovider.ErrSignatureVerification)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid webhook signature"`,
		},
		{
			name:      "processing error",
			body:      `{"type":"customer.subscription.updated"}`,
			signature: "t=1,v1=abc",
			setupMock: func(m *MockService) {
				m.On("HandleWebhookEvent", mock.Anything, mock.Anything, mock.Anything).
					Return(errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not process webhook event"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/subscription/webhook", strings.NewReader(tt.body))
			req.Header.Set("Stripe-Signature", tt.signature)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
