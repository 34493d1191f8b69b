package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/mooring-directory/internal/models"
	"github.com/magabrotheeeer/mooring-directory/internal/storage"
)

// Ошибки бронирования.
var (
	ErrPremiumRequired  = errors.New("premium subscription required")
	ErrLocationNotFound = errors.New("mooring location not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrInvalidDates     = errors.New("check-out date must be after check-in date")
)

// BookingRepository описывает контракт для работы с бронированиями в базе данных.
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking models.Booking) (int, error)
	ReadBooking(ctx context.Context, id int) (*models.Booking, error)
	ListBookings(ctx context.Context, limit, offset int) ([]*models.Booking, error)
	ListBookingsByLocation(ctx context.Context, locationID int) ([]*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int, status string) (int, error)
}

// BookingService отвечает за бронирование причальных мест.
// Право на бронирование проверяется по свежей записи пользователя
// в момент вызова, а не по данным из токена.
type BookingService struct {
	repo      BookingRepository
	locations LocationRepository
	users     UserRepository
	log       *slog.Logger
}

// NewBookingService создает новый экземпляр BookingService.
func NewBookingService(repo BookingRepository, locations LocationRepository,
	users UserRepository, log *slog.Logger) *BookingService {
	return &BookingService{
		repo:      repo,
		locations: locations,
		users:     users,
		log:       log,
	}
}

// Create создает бронирование причального места для premium-пользователя.
func (s *BookingService) Create(ctx context.Context, userUID string, req models.DummyBooking) (int, error) {
	user, err := s.users.GetUserByUID(ctx, userUID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	if !IsPremium(time.Now().UTC(), user) {
		return 0, ErrPremiumRequired
	}

	if _, err := s.locations.GetLocationByID(ctx, req.MooringLocationID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, ErrLocationNotFound
		}
		return 0, err
	}

	checkIn, err := time.Parse("02-01-2006", req.CheckInDate)
	if err != nil {
		return 0, fmt.Errorf("invalid check-in date: %w", err)
	}
	checkOut, err := time.Parse("02-01-2006", req.CheckOutDate)
	if err != nil {
		return 0, fmt.Errorf("invalid check-out date: %w", err)
	}
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights <= 0 {
		return 0, ErrInvalidDates
	}

	booking := models.Booking{
		MooringLocationID: req.MooringLocationID,
		CustomerName:      req.CustomerName,
		CustomerEmail:     req.CustomerEmail,
		CheckInDate:       checkIn,
		CheckOutDate:      checkOut,
		NumberOfNights:    nights,
		Status:            models.BookingPending,
	}
	if req.CustomerPhone != "" {
		booking.CustomerPhone = &req.CustomerPhone
	}
	if req.BoatName != "" {
		booking.BoatName = &req.BoatName
	}
	if req.BoatLength > 0 {
		booking.BoatLength = &req.BoatLength
	}
	if req.SpecialRequests != "" {
		booking.SpecialRequests = &req.SpecialRequests
	}

	id, err := s.repo.CreateBooking(ctx, booking)
	if err != nil {
		return 0, err
	}
	s.log.Info("created booking", slog.Int("id", id),
		slog.Int("location_id", req.MooringLocationID), slog.String("user_uid", userUID))
	return id, nil
}

// Read возвращает бронирование по ID.
func (s *BookingService) Read(ctx context.Context, id int) (*models.Booking, error) {
	booking, err := s.repo.ReadBooking(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

// List возвращает все бронирования с пагинацией.
func (s *BookingService) List(ctx context.Context, limit, offset int) ([]*models.Booking, error) {
	return s.repo.ListBookings(ctx, limit, offset)
}

// ListByLocation возвращает бронирования конкретного причала.
func (s *BookingService) ListByLocation(ctx context.Context, locationID int) ([]*models.Booking, error) {
	return s.repo.ListBookingsByLocation(ctx, locationID)
}

// UpdateStatus изменяет статус бронирования.
func (s *BookingService) UpdateStatus(ctx context.Context, id int, status string) error {
	rows, err := s.repo.UpdateBookingStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrBookingNotFound
	}
	s.log.Info("updated booking status", slog.Int("id", id), slog.String("status", status))
	return nil
}
