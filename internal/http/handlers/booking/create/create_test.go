package create

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
	"github.com/magabrotheeeer/mooring-directory/internal/models"
	"github.com/magabrotheeeer/mooring-directory/internal/services"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, userUID string, req models.DummyBooking) (int, error) {
	args := m.Called(ctx, userUID, req)
	return args.Int(0), args.Error(1)
}

func TestCreateBookingHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	validBody := `{"mooring_location_id":7,"customer_name":"Sailor","customer_email":"sailor@example.com","check_in_date":"10-09-2026","check_out_date":"12-09-2026"}`

	tests := []struct {
		name           string
		body           string
		userUID        string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "successful booking",
			body:    validBody,
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "uid-1", mock.MatchedBy(func(b models.DummyBooking) bool {
					return b.MooringLocationID == 7 && b.CustomerEmail == "sailor@example.com"
				})).Return(42, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":42`,
		},
		{
			name:           "missing user uid in context",
			body:           validBody,
			userUID:        "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"unauthorized"`,
		},
		{
			name:           "missing dates fail validation",
			body:           `{"mooring_location_id":7,"customer_name":"Sailor","customer_email":"sailor@example.com"}`,
			userUID:        "uid-1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field CheckInDate is a required field`,
		},
		{
			name:    "free user is rejected",
			body:    validBody,
			userUID: "uid-free",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "uid-free", mock.Anything).
					Return(0, services.ErrPremiumRequired)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `"error":"premium subscription required"`,
		},
		{
			name:    "unknown location",
			body:    validBody,
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "uid-1", mock.Anything).
					Return(0, services.ErrLocationNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"mooring location not found"`,
		},
		{
			name:    "check-out before check-in",
			body:    validBody,
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "uid-1", mock.Anything).
					Return(0, services.ErrInvalidDates)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"check-out date must be after check-in date"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(tt.body))
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
