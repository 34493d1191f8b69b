package services

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/mooring-directory/internal/models"
)

func TestIsPremium(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 6, 0)
	past := now.AddDate(0, -1, 0)

	tests := []struct {
		name string
		user *models.User
		want bool
	}{
		{
			name: "nil user",
			user: nil,
			want: false,
		},
		{
			name: "free user",
			user: &models.User{SubscriptionStatus: models.SubscriptionFree},
			want: false,
		},
		{
			name: "premium without expiry",
			user: &models.User{SubscriptionStatus: models.SubscriptionPremium},
			want: true,
		},
		{
			name: "premium with future expiry",
			user: &models.User{
				SubscriptionStatus:    models.SubscriptionPremium,
				SubscriptionExpiresAt: &future,
			},
			want: true,
		},
		{
			name: "premium with past expiry",
			user: &models.User{
				SubscriptionStatus:    models.SubscriptionPremium,
				SubscriptionExpiresAt: &past,
			},
			want: false,
		},
		{
			name: "free with future expiry",
			user: &models.User{
				SubscriptionStatus:    models.SubscriptionFree,
				SubscriptionExpiresAt: &future,
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPremium(now, tt.user))
		})
	}
}

func TestRedactLocation_Contacts(t *testing.T) {
	phone := "+353 1 234 5678"
	email := "harbour@example.com"
	website := "https://harbour.example.com"
	loc := &models.MooringLocation{
		Name:     "Howth Marina",
		Phone:    &phone,
		Email:    &email,
		Website:  &website,
		HasFuel:  true,
		HasWater: true,
	}

	redacted := RedactLocation(loc, ListDescriptionLimit)

	require.NotNil(t, redacted.Phone)
	assert.Equal(t, "Upgrade to Premium for contact details", *redacted.Phone)
	require.NotNil(t, redacted.Email)
	assert.Equal(t, "Upgrade to Premium for contact details", *redacted.Email)
	require.NotNil(t, redacted.Website)
	assert.Equal(t, "Upgrade to Premium to access website", *redacted.Website)
	assert.False(t, redacted.HasFuel)
	assert.False(t, redacted.HasWater)

	// исходная запись не изменяется
	assert.Equal(t, phone, *loc.Phone)
	assert.True(t, loc.HasFuel)
}

func TestRedactLocation_MissingWebsiteStaysNil(t *testing.T) {
	phone := "+353 1 234 5678"
	loc := &models.MooringLocation{
		Name:  "No Website Pier",
		Phone: &phone,
	}

	redacted := RedactLocation(loc, ListDescriptionLimit)

	assert.Nil(t, redacted.Website)
	require.NotNil(t, redacted.Phone)
	assert.Equal(t, "Upgrade to Premium for contact details", *redacted.Phone)
}

func TestRedactLocation_DescriptionTruncation(t *testing.T) {
	long := strings.Repeat("a", 200)
	short := "Small sheltered pier"
	multibyte := "a" + strings.Repeat("é", 100)

	tests := []struct {
		name        string
		description *string
		limit       int
		want        string
	}{
		{
			name:        "long description truncated to list limit",
			description: &long,
			limit:       ListDescriptionLimit,
			want:        strings.Repeat("a", 80) + "... Upgrade to Premium for full details",
		},
		{
			name:        "long description truncated to detail limit",
			description: &long,
			limit:       DetailDescriptionLimit,
			want:        strings.Repeat("a", 120) + "... Upgrade to Premium for full details",
		},
		{
			name:        "short description keeps full text",
			description: &short,
			limit:       ListDescriptionLimit,
			want:        short + "... Upgrade to Premium for full details",
		},
		{
			name:        "multibyte description truncated on rune boundary",
			description: &multibyte,
			limit:       ListDescriptionLimit,
			want:        "a" + strings.Repeat("é", 79) + "... Upgrade to Premium for full details",
		},
		{
			name:        "missing description uses fallback",
			description: nil,
			limit:       ListDescriptionLimit,
			want:        "Upgrade to Premium for complete facility information and contact details",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := &models.MooringLocation{Description: tt.description}
			redacted := RedactLocation(loc, tt.limit)
			require.NotNil(t, redacted.Description)
			assert.Equal(t, tt.want, *redacted.Description)
			assert.True(t, utf8.ValidString(*redacted.Description))
		})
	}
}

func TestRedactLocations(t *testing.T) {
	desc := "Deep water berths available year round"
	locs := []*models.MooringLocation{
		{Name: "First", Description: &desc},
		{Name: "Second"},
	}

	redacted := RedactLocations(locs, ListDescriptionLimit)

	require.Len(t, redacted, 2)
	assert.Contains(t, *redacted[0].Description, "Upgrade to Premium for full details")
	assert.Equal(t, "Upgrade to Premium for complete facility information and contact details", *redacted[1].Description)
}
