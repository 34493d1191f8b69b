package checkout

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/mooring-directory/internal/http/middlewarectx"
	"github.com/magabrotheeeer/mooring-directory/internal/paymentprovider"
	"github.com/magabrotheeeer/mooring-directory/internal/services"
)

// MockService реализует интерфейс checkout.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) CreateCheckout(ctx context.Context, userUID, promoCode string) (*services.CheckoutResult, error) {
	args := m.Called(ctx, userUID, promoCode)
	if res := args.Get(0); res != nil {
		return res.(*services.CheckoutResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCheckoutHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		userUID        string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "pending checkout returns client secret",
			body:    `{"promo_code":"SUMMER10"}`,
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("CreateCheckout", mock.Anything, "uid-1", "SUMMER10").Return(&services.CheckoutResult{
					Status:       "pending",
					ClientSecret: "pi_secret_123",
					Quote: services.Quote{
						BasePrice:      119.99,
						DiscountAmount: 12.00,
						FinalPrice:     107.99,
						Currency:       "eur",
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"client_secret":"pi_secret_123"`,
		},
		{
			name:    "empty body is a checkout without promo",
			body:    ``,
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("CreateCheckout", mock.Anything, "uid-1", "").Return(&services.CheckoutResult{
					Status: paymentprovider.StatusActive,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"active"`,
		},
		{
			name:           "missing user uid in context",
			body:           `{}`,
			userUID:        "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"unauthorized"`,
		},
		{
			name:    "already premium",
			body:    `{}`,
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("CreateCheckout", mock.Anything, "uid-1", "").
					Return(nil, services.ErrAlreadyPremium)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"error":"user already has an active premium subscription"`,
		},
		{
			name:    "promo usage limit reached",
			body:    `{"promo_code":"CAPPED"}`,
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("CreateCheckout", mock.Anything, "uid-1", "CAPPED").
					Return(nil, services.ErrPromoUsageLimitReached)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"promo code usage limit reached"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/subscription/checkout", strings.NewReader(tt.body))
			if tt.userUID != "" {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.UserUID, tt.userUID))
			}

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
