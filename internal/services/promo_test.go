package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/mooring-directory/internal/models"
	"github.com/magabrotheeeer/mooring-directory/internal/storage"
)

func TestPromo_Validate(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	expired := now.AddDate(0, 0, -1)
	valid := now.AddDate(0, 1, 0)
	maxUses := 5

	tests := []struct {
		name    string
		promo   *models.PromoCode
		repoErr error
		wantErr error
	}{
		{
			name:    "unknown code",
			repoErr: storage.ErrNotFound,
			wantErr: ErrPromoNotFound,
		},
		{
			name:    "inactive code",
			promo:   &models.PromoCode{Code: "OLD", IsActive: false},
			wantErr: ErrPromoInactive,
		},
		{
			name: "expired code",
			promo: &models.PromoCode{
				Code: "LATE", IsActive: true, ExpiresAt: &expired,
			},
			wantErr: ErrPromoExpired,
		},
		{
			name: "usage limit reached",
			promo: &models.PromoCode{
				Code: "FULL", IsActive: true, MaxUses: &maxUses, CurrentUses: 5,
			},
			wantErr: ErrPromoUsageLimitReached,
		},
		{
			name: "inactive takes priority over expired",
			promo: &models.PromoCode{
				Code: "BOTH", IsActive: false, ExpiresAt: &expired,
			},
			wantErr: ErrPromoInactive,
		},
		{
			name: "valid code",
			promo: &models.PromoCode{
				Code: "SUMMER10", IsActive: true, ExpiresAt: &valid,
				MaxUses: &maxUses, CurrentUses: 2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(PromoRepoMock)
			if tt.repoErr != nil {
				repo.On("GetPromoCodeByCode", mock.Anything, mock.Anything).Return(nil, tt.repoErr)
			} else {
				repo.On("GetPromoCodeByCode", mock.Anything, mock.Anything).Return(tt.promo, nil)
			}
			svc := NewPromoService(repo, NewNoopLogger())

			promo, err := svc.Validate(context.Background(), "any", now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, promo)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.promo, promo)
		})
	}
}

func TestPromo_RecordRedemption(t *testing.T) {
	repo := new(PromoRepoMock)
	repo.On("IncrementPromoCodeUses", mock.Anything, 1).Return(true, nil)
	repo.On("IncrementPromoCodeUses", mock.Anything, 2).Return(false, nil)
	svc := NewPromoService(repo, NewNoopLogger())

	assert.NoError(t, svc.RecordRedemption(context.Background(), 1))
	assert.ErrorIs(t, svc.RecordRedemption(context.Background(), 2), ErrPromoUsageLimitReached)
}

func TestPromo_Create(t *testing.T) {
	repo := new(PromoRepoMock)
	repo.On("CreatePromoCode", mock.Anything, mock.MatchedBy(func(p models.PromoCode) bool {
		return p.Code == "SUMMER10" && p.IsActive && p.MaxUses != nil && *p.MaxUses == 100
	})).Return(7, nil)
	svc := NewPromoService(repo, NewNoopLogger())

	id, err := svc.Create(context.Background(), models.DummyPromoCode{
		Code:          "summer10",
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 10,
		MaxUses:       100,
		ExpiresAt:     "31-12-2026",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, id)
	repo.AssertExpectations(t)
}

func TestPromo_Create_DuplicateCode(t *testing.T) {
	repo := new(PromoRepoMock)
	repo.On("CreatePromoCode", mock.Anything, mock.Anything).
		Return(0, fmt.Errorf("storage.CreatePromoCode: %w", storage.ErrAlreadyExists))
	svc := NewPromoService(repo, NewNoopLogger())

	_, err := svc.Create(context.Background(), models.DummyPromoCode{
		Code:          "SUMMER10",
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 10,
	})
	assert.ErrorIs(t, err, ErrPromoCodeExists)
}

func TestPromo_Create_InvalidDate(t *testing.T) {
	svc := NewPromoService(new(PromoRepoMock), NewNoopLogger())

	_, err := svc.Create(context.Background(), models.DummyPromoCode{
		Code:          "BAD",
		DiscountType:  models.DiscountFixed,
		DiscountValue: 5,
		ExpiresAt:     "2026-12-31",
	})
	assert.Error(t, err)
}

func TestPromo_Deactivate(t *testing.T) {
	repo := new(PromoRepoMock)
	repo.On("DeactivatePromoCode", mock.Anything, 1).Return(1, nil)
	repo.On("DeactivatePromoCode", mock.Anything, 2).Return(0, nil)
	svc := NewPromoService(repo, NewNoopLogger())

	assert.NoError(t, svc.Deactivate(context.Background(), 1))
	assert.ErrorIs(t, svc.Deactivate(context.Background(), 2), ErrPromoNotFound)
}
