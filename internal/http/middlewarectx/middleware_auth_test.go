package middlewarectx

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/mooring-directory/internal/lib/jwt"
	"github.com/magabrotheeeer/mooring-directory/internal/models"
)

// MockAuthService реализует интерфейс middlewarectx.Service
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) ValidateToken(ctx context.Context, token string) (*jwt.CustomClaims, error) {
	args := m.Called(ctx, token)
	if res := args.Get(0); res != nil {
		return res.(*jwt.CustomClaims), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockEntitlements реализует интерфейс middlewarectx.EntitlementService
type MockEntitlements struct {
	mock.Mock
}

func (m *MockEntitlements) Status(ctx context.Context, userUID string) (*models.UserInfo, bool, error) {
	args := m.Called(ctx, userUID)
	if res := args.Get(0); res != nil {
		return res.(*models.UserInfo), args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestJWTMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		setupMock      func(*MockAuthService)
		expectedStatus int
		expectedUID    string
	}{
		{
			name:       "valid token populates context",
			authHeader: "Bearer good-token",
			setupMock: func(m *MockAuthService) {
				m.On("ValidateToken", mock.Anything, "good-token").Return(&jwt.CustomClaims{
					Username: "sailor@example.com",
					Role:     models.RoleUser,
					UserUID:  "uid-1",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedUID:    "uid-1",
		},
		{
			name:           "missing header",
			authHeader:     "",
			setupMock:      func(_ *MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			authHeader:     "Basic abc",
			setupMock:      func(_ *MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer bad-token",
			setupMock: func(m *MockAuthService) {
				m.On("ValidateToken", mock.Anything, "bad-token").
					Return(nil, errors.New("token expired"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := new(MockAuthService)
			tt.setupMock(auth)

			var gotUID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUID, _ = r.Context().Value(UserUID).(string)
				w.WriteHeader(http.StatusOK)
			})

			handler := JWTMiddleware(auth, newNoopLogger())(next)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedUID != "" {
				assert.Equal(t, tt.expectedUID, gotUID)
			}
			auth.AssertExpectations(t)
		})
	}
}

func TestOptionalJWTMiddleware_AnonymousPasses(t *testing.T) {
	auth := new(MockAuthService)

	var sawUID bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawUID = r.Context().Value(UserUID).(string)
		w.WriteHeader(http.StatusOK)
	})

	handler := OptionalJWTMiddleware(auth, newNoopLogger())(next)

	req := httptest.NewRequest(http.MethodGet, "/locations", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, sawUID)
	auth.AssertNotCalled(t, "ValidateToken", mock.Anything, mock.Anything)
}

func TestOptionalJWTMiddleware_InvalidTokenTreatedAsAnonymous(t *testing.T) {
	auth := new(MockAuthService)
	auth.On("ValidateToken", mock.Anything, "bad").Return(nil, errors.New("invalid"))

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := OptionalJWTMiddleware(auth, newNoopLogger())(next)

	req := httptest.NewRequest(http.MethodGet, "/locations", nil)
	req.Header.Set("Authorization", "Bearer bad")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPremiumStatusMiddleware(t *testing.T) {
	tests := []struct {
		name            string
		uidInContext    string
		setupMock       func(*MockEntitlements)
		expectedPremium bool
	}{
		{
			name:         "premium user",
			uidInContext: "uid-1",
			setupMock: func(m *MockEntitlements) {
				m.On("Status", mock.Anything, "uid-1").
					Return(&models.UserInfo{SubscriptionStatus: models.SubscriptionPremium}, true, nil)
			},
			expectedPremium: true,
		},
		{
			name:         "free user",
			uidInContext: "uid-2",
			setupMock: func(m *MockEntitlements) {
				m.On("Status", mock.Anything, "uid-2").
					Return(&models.UserInfo{SubscriptionStatus: models.SubscriptionFree}, false, nil)
			},
			expectedPremium: false,
		},
		{
			name:            "anonymous request",
			uidInContext:    "",
			setupMock:       func(_ *MockEntitlements) {},
			expectedPremium: false,
		},
		{
			name:         "status lookup error falls back to free",
			uidInContext: "uid-3",
			setupMock: func(m *MockEntitlements) {
				m.On("Status", mock.Anything, "uid-3").
					Return(nil, false, errors.New("db error"))
			},
			expectedPremium: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entitlements := new(MockEntitlements)
			tt.setupMock(entitlements)

			var gotPremium bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPremium, _ = r.Context().Value(Premium).(bool)
				w.WriteHeader(http.StatusOK)
			})

			handler := PremiumStatusMiddleware(newNoopLogger(), entitlements)(next)

			req := httptest.NewRequest(http.MethodGet, "/locations", nil)
			if tt.uidInContext != "" {
				req = req.WithContext(context.WithValue(req.Context(), UserUID, tt.uidInContext))
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.expectedPremium, gotPremium)
			entitlements.AssertExpectations(t)
		})
	}
}

func TestAdminOnlyMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := AdminOnlyMiddleware(newNoopLogger())(next)

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req = req.WithContext(context.WithValue(req.Context(), Role, models.RoleAdmin))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req = req.WithContext(context.WithValue(req.Context(), Role, models.RoleUser))
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// без роли в контексте
	req = httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
