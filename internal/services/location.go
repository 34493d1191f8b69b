package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/mooring-directory/internal/models"
)

// LocationRepository описывает контракт для работы с причалами в базе данных.
type LocationRepository interface {
	CreateLocation(ctx context.Context, loc models.MooringLocation) (int, error)
	ListLocations(ctx context.Context) ([]*models.MooringLocation, error)
	GetLocationByID(ctx context.Context, id int) (*models.MooringLocation, error)
	SearchLocations(ctx context.Context, q string) ([]*models.MooringLocation, error)
}

// Cache — контракт кеша для сервисов каталога.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

const locationsCacheKey = "locations:all"

// LocationService отвечает за выдачу каталога причалов.
// В кеше хранятся полные записи; редакция для бесплатных пользователей
// применяется к исходящей проекции при каждом запросе.
type LocationService struct {
	repo  LocationRepository
	cache Cache
	log   *slog.Logger
}

// NewLocationService создает новый экземпляр LocationService.
func NewLocationService(repo LocationRepository, cache Cache, log *slog.Logger) *LocationService {
	return &LocationService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// List возвращает все причалы. Для бесплатных пользователей premium-поля
// отредактированы, описание усечено до лимита списка.
func (s *LocationService) List(ctx context.Context, premium bool) ([]*models.MooringLocation, error) {
	var locations []*models.MooringLocation
	found, err := s.cache.Get(locationsCacheKey, &locations)
	if err != nil {
		s.log.Warn("failed to read locations from cache", slog.Any("err", err))
	}
	if !found {
		locations, err = s.repo.ListLocations(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(locationsCacheKey, locations, time.Hour); err != nil {
			s.log.Warn("failed to cache locations", slog.Any("err", err))
		}
	}

	if premium {
		return locations, nil
	}
	return RedactLocations(locations, ListDescriptionLimit), nil
}

// Get возвращает причал по ID. Для бесплатных пользователей premium-поля
// отредактированы, описание усечено до лимита детальной карточки.
func (s *LocationService) Get(ctx context.Context, id int, premium bool) (*models.MooringLocation, error) {
	var location *models.MooringLocation
	cacheKey := fmt.Sprintf("location:%d", id)
	found, err := s.cache.Get(cacheKey, &location)
	if err != nil {
		s.log.Warn("failed to read location from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if !found {
		location, err = s.repo.GetLocationByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(cacheKey, location, time.Hour); err != nil {
			s.log.Warn("failed to cache location", slog.String("key", cacheKey), slog.Any("err", err))
		}
	}

	if premium {
		return location, nil
	}
	return RedactLocation(location, DetailDescriptionLimit), nil
}

// Search ищет причалы по подстроке в названии, адресе, графстве или регионе.
// Результаты поиска не кешируются.
func (s *LocationService) Search(ctx context.Context, q string, premium bool) ([]*models.MooringLocation, error) {
	locations, err := s.repo.SearchLocations(ctx, q)
	if err != nil {
		return nil, err
	}
	if premium {
		return locations, nil
	}
	return RedactLocations(locations, ListDescriptionLimit), nil
}

// Create создает новый причал и сбрасывает кеш списка.
func (s *LocationService) Create(ctx context.Context, req models.DummyLocation) (int, error) {
	loc := models.MooringLocation{
		Name:             req.Name,
		Address:          req.Address,
		County:           req.County,
		Region:           req.Region,
		Type:             req.Type,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		Capacity:         req.Capacity,
		Depth:            req.Depth,
		HasFuel:          req.HasFuel,
		HasWater:         req.HasWater,
		HasElectricity:   req.HasElectricity,
		HasWasteDisposal: req.HasWasteDisposal,
		HasShowers:       req.HasShowers,
		HasRestaurant:    req.HasRestaurant,
	}
	if req.Phone != "" {
		loc.Phone = &req.Phone
	}
	if req.Email != "" {
		loc.Email = &req.Email
	}
	if req.Website != "" {
		loc.Website = &req.Website
	}
	if req.Description != "" {
		loc.Description = &req.Description
	}

	id, err := s.repo.CreateLocation(ctx, loc)
	if err != nil {
		return 0, err
	}
	s.log.Info("created mooring location", slog.Int("id", id), slog.String("name", loc.Name))

	if err := s.cache.Invalidate(locationsCacheKey); err != nil {
		s.log.Warn("failed to invalidate locations cache", slog.Any("err", err))
	}
	return id, nil
}
