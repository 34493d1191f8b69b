package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/mooring-directory/internal/models"
)

func locationFixture() *models.MooringLocation {
	phone := "+353 1 234 5678"
	description := strings.Repeat("Sheltered deep water berths. ", 10)
	return &models.MooringLocation{
		ID:      1,
		Name:    "Howth Marina",
		County:  "Dublin",
		Region:  "Leinster",
		Type:    models.LocationTypeMarina,
		HasFuel: true,
		Phone:   &phone,

		Description: &description,
	}
}

func TestLocationList_PremiumSeesFullRecords(t *testing.T) {
	repo := new(LocationRepoMock)
	cache := new(CacheMock)
	cache.On("Get", locationsCacheKey, mock.Anything).Return(false, nil)
	cache.On("Set", locationsCacheKey, mock.Anything, mock.Anything).Return(nil)
	repo.On("ListLocations", mock.Anything).Return([]*models.MooringLocation{locationFixture()}, nil)
	svc := NewLocationService(repo, cache, NewNoopLogger())

	locations, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, locations, 1)
	require.NotNil(t, locations[0].Phone)
	assert.Equal(t, "+353 1 234 5678", *locations[0].Phone)
	assert.True(t, locations[0].HasFuel)
}

func TestLocationList_FreeSeesRedactedRecords(t *testing.T) {
	repo := new(LocationRepoMock)
	cache := new(CacheMock)
	cache.On("Get", locationsCacheKey, mock.Anything).Return(false, nil)
	cache.On("Set", locationsCacheKey, mock.Anything, mock.Anything).Return(nil)
	repo.On("ListLocations", mock.Anything).Return([]*models.MooringLocation{locationFixture()}, nil)
	svc := NewLocationService(repo, cache, NewNoopLogger())

	locations, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, locations, 1)
	require.NotNil(t, locations[0].Phone)
	assert.Equal(t, "Upgrade to Premium for contact details", *locations[0].Phone)
	assert.False(t, locations[0].HasFuel)
	assert.Contains(t, *locations[0].Description, "... Upgrade to Premium for full details")
	// усечение по лимиту списка
	assert.LessOrEqual(t, len(*locations[0].Description),
		ListDescriptionLimit+len("... Upgrade to Premium for full details"))
}

func TestLocationGet_UsesDetailLimit(t *testing.T) {
	repo := new(LocationRepoMock)
	cache := new(CacheMock)
	cache.On("Get", "location:1", mock.Anything).Return(false, nil)
	cache.On("Set", "location:1", mock.Anything, mock.Anything).Return(nil)
	repo.On("GetLocationByID", mock.Anything, 1).Return(locationFixture(), nil)
	svc := NewLocationService(repo, cache, NewNoopLogger())

	location, err := svc.Get(context.Background(), 1, false)
	require.NoError(t, err)
	require.NotNil(t, location.Description)
	prefix := strings.TrimSuffix(*location.Description, "... Upgrade to Premium for full details")
	assert.Len(t, prefix, DetailDescriptionLimit)
}

func TestLocationSearch_NotCached(t *testing.T) {
	repo := new(LocationRepoMock)
	cache := new(CacheMock)
	repo.On("SearchLocations", mock.Anything, "dublin").
		Return([]*models.MooringLocation{locationFixture()}, nil)
	svc := NewLocationService(repo, cache, NewNoopLogger())

	locations, err := svc.Search(context.Background(), "dublin", true)
	require.NoError(t, err)
	assert.Len(t, locations, 1)
	cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestLocationCreate_InvalidatesCache(t *testing.T) {
	repo := new(LocationRepoMock)
	cache := new(CacheMock)
	repo.On("CreateLocation", mock.Anything, mock.MatchedBy(func(loc models.MooringLocation) bool {
		return loc.Name == "New Pier" && loc.Phone == nil
	})).Return(42, nil)
	cache.On("Invalidate", locationsCacheKey).Return(nil)
	svc := NewLocationService(repo, cache, NewNoopLogger())

	id, err := svc.Create(context.Background(), models.DummyLocation{
		Name:      "New Pier",
		Address:   "Pier Road",
		County:    "Galway",
		Region:    "Connacht",
		Type:      models.LocationTypePier,
		Latitude:  53.27,
		Longitude: -9.05,
		Capacity:  20,
		Depth:     3.2,
	})
	require.NoError(t, err)
	assert.Equal(t, 42, id)
	cache.AssertExpectations(t)
}
