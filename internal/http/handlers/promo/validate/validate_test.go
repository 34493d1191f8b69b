package validate

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/mooring-directory/internal/models"
	"github.com/magabrotheeeer/mooring-directory/internal/services"
)

// MockService реализует интерфейс validate.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Validate(ctx context.Context, code string, now time.Time) (*models.PromoCode, error) {
	args := m.Called(ctx, code, now)
	if res := args.Get(0); res != nil {
		return res.(*models.PromoCode), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockPricing реализует интерфейс validate.Pricing
type MockPricing struct {
	mock.Mock
}

func (m *MockPricing) QuoteFor(ctx context.Context, promo *models.PromoCode) services.Quote {
	args := m.Called(ctx, promo)
	return args.Get(0).(services.Quote)
}

func TestValidateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockService, *MockPricing)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "valid promo returns discounted quote",
			body: `{"code":"SUMMER10"}`,
			setupMocks: func(s *MockService, p *MockPricing) {
				promo := &models.PromoCode{ID: 1, Code: "SUMMER10", DiscountType: models.DiscountPercentage, DiscountValue: 10}
				s.On("Validate", mock.Anything, "SUMMER10", mock.Anything).Return(promo, nil)
				p.On("QuoteFor", mock.Anything, promo).Return(services.Quote{
					BasePrice:      119.99,
					DiscountAmount: 12.00,
					FinalPrice:     107.99,
					Currency:       "eur",
				})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"final_price":107.99`,
		},
		{
			name:           "invalid json",
			body:           `{not-json`,
			setupMocks:     func(_ *MockService, _ *MockPricing) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid request body"`,
		},
		{
			name:           "missing code fails validation",
			body:           `{}`,
			setupMocks:     func(_ *MockService, _ *MockPricing) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Code is a required field`,
		},
		{
			name: "unknown promo code",
			body: `{"code":"GHOST"}`,
			setupMocks: func(s *MockService, _ *MockPricing) {
				s.On("Validate", mock.Anything, "GHOST", mock.Anything).
					Return(nil, services.ErrPromoNotFound)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid promo code"`,
		},
		{
			name: "expired promo code",
			body: `{"code":"OLD2024"}`,
			setupMocks: func(s *MockService, _ *MockPricing) {
				s.On("Validate", mock.Anything, "OLD2024", mock.Anything).
					Return(nil, services.ErrPromoExpired)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"promo code has expired"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			mockPricing := new(MockPricing)
			tt.setupMocks(mockService, mockPricing)

			handler := New(logger, mockService, mockPricing)

			req := httptest.NewRequest(http.MethodPost, "/promocodes/validate", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
			mockPricing.AssertExpectations(t)
		})
	}
}
