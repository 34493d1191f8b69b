package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/mooring-directory/internal/models"
	"github.com/magabrotheeeer/mooring-directory/internal/paymentprovider"
)

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) RegisterUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *UserRepoMock) GetUserByUID(ctx context.Context, uid string) (*models.User, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) GetUserByBillingCustomerID(ctx context.Context, customerID string) (*models.User, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) UpdateUserSubscription(ctx context.Context, uid string, status string, expiresAt *time.Time) (int, error) {
	args := m.Called(ctx, uid, status, expiresAt)
	return args.Int(0), args.Error(1)
}

func (m *UserRepoMock) UpdateUserBillingRefs(ctx context.Context, uid string, customerID, subscriptionID *string) (int, error) {
	args := m.Called(ctx, uid, customerID, subscriptionID)
	return args.Int(0), args.Error(1)
}

type PromoRepoMock struct{ mock.Mock }

func (m *PromoRepoMock) CreatePromoCode(ctx context.Context, promo models.PromoCode) (int, error) {
	args := m.Called(ctx, promo)
	return args.Int(0), args.Error(1)
}

func (m *PromoRepoMock) GetPromoCodeByCode(ctx context.Context, code string) (*models.PromoCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PromoCode), args.Error(1)
}

func (m *PromoRepoMock) ListPromoCodes(ctx context.Context) ([]*models.PromoCode, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.PromoCode), args.Error(1)
}

func (m *PromoRepoMock) IncrementPromoCodeUses(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *PromoRepoMock) DeactivatePromoCode(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

type SettingsRepoMock struct{ mock.Mock }

func (m *SettingsRepoMock) GetSetting(ctx context.Context, key string) (*models.PlatformSetting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlatformSetting), args.Error(1)
}

type LocationRepoMock struct{ mock.Mock }

func (m *LocationRepoMock) CreateLocation(ctx context.Context, loc models.MooringLocation) (int, error) {
	args := m.Called(ctx, loc)
	return args.Int(0), args.Error(1)
}

func (m *LocationRepoMock) ListLocations(ctx context.Context) ([]*models.MooringLocation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.MooringLocation), args.Error(1)
}

func (m *LocationRepoMock) GetLocationByID(ctx context.Context, id int) (*models.MooringLocation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MooringLocation), args.Error(1)
}

func (m *LocationRepoMock) SearchLocations(ctx context.Context, q string) ([]*models.MooringLocation, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]*models.MooringLocation), args.Error(1)
}

type BookingRepoMock struct{ mock.Mock }

func (m *BookingRepoMock) CreateBooking(ctx context.Context, booking models.Booking) (int, error) {
	args := m.Called(ctx, booking)
	return args.Int(0), args.Error(1)
}

func (m *BookingRepoMock) ReadBooking(ctx context.Context, id int) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *BookingRepoMock) ListBookings(ctx context.Context, limit, offset int) ([]*models.Booking, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.Booking), args.Error(1)
}

func (m *BookingRepoMock) ListBookingsByLocation(ctx context.Context, locationID int) ([]*models.Booking, error) {
	args := m.Called(ctx, locationID)
	return args.Get(0).([]*models.Booking), args.Error(1)
}

func (m *BookingRepoMock) UpdateBookingStatus(ctx context.Context, id int, status string) (int, error) {
	args := m.Called(ctx, id, status)
	return args.Int(0), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	return m.Called(key, value, expiration).Error(0)
}

func (m *CacheMock) Invalidate(key string) error {
	return m.Called(key).Error(0)
}

type ProviderMock struct{ mock.Mock }

func (m *ProviderMock) CreateCustomer(ctx context.Context, email, name string) (*paymentprovider.Customer, error) {
	args := m.Called(ctx, email, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentprovider.Customer), args.Error(1)
}

func (m *ProviderMock) CreateSubscription(ctx context.Context, customerID string, price paymentprovider.PriceSpec) (*paymentprovider.Subscription, error) {
	args := m.Called(ctx, customerID, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentprovider.Subscription), args.Error(1)
}

func (m *ProviderMock) GetSubscription(ctx context.Context, subscriptionID string) (*paymentprovider.Subscription, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentprovider.Subscription), args.Error(1)
}

func (m *ProviderMock) CancelAtPeriodEnd(ctx context.Context, subscriptionID string) (*paymentprovider.Subscription, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentprovider.Subscription), args.Error(1)
}

func (m *ProviderMock) ConstructEvent(payload []byte, sigHeader string) (*paymentprovider.Event, error) {
	args := m.Called(payload, sigHeader)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentprovider.Event), args.Error(1)
}

func NewNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}
