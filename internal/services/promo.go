package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/mooring-directory/internal/models"
	"github.com/magabrotheeeer/mooring-directory/internal/storage"
)

// Ошибки проверки промокода. Порядок проверок фиксирован: сначала
// существование кода, затем активность, срок действия и лимит использований.
var (
	ErrPromoNotFound          = errors.New("invalid promo code")
	ErrPromoInactive          = errors.New("promo code is no longer active")
	ErrPromoExpired           = errors.New("promo code has expired")
	ErrPromoUsageLimitReached = errors.New("promo code usage limit reached")
)

// ErrPromoCodeExists возвращается при попытке создать промокод с уже занятым кодом.
var ErrPromoCodeExists = errors.New("promo code already exists")

// PromoRepository описывает контракт для работы с промокодами в базе данных.
type PromoRepository interface {
	CreatePromoCode(ctx context.Context, promo models.PromoCode) (int, error)
	GetPromoCodeByCode(ctx context.Context, code string) (*models.PromoCode, error)
	ListPromoCodes(ctx context.Context) ([]*models.PromoCode, error)
	IncrementPromoCodeUses(ctx context.Context, id int) (bool, error)
	DeactivatePromoCode(ctx context.Context, id int) (int, error)
}

// PromoService отвечает за проверку, погашение и администрирование промокодов.
type PromoService struct {
	repo PromoRepository
	log  *slog.Logger
}

// NewPromoService создает новый экземпляр PromoService.
func NewPromoService(repo PromoRepository, log *slog.Logger) *PromoService {
	return &PromoService{repo: repo, log: log}
}

// Validate проверяет промокод и возвращает его, если код можно применить
// на момент now. Проверка не изменяет счётчик использований.
func (s *PromoService) Validate(ctx context.Context, code string, now time.Time) (*models.PromoCode, error) {
	promo, err := s.repo.GetPromoCodeByCode(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrPromoNotFound
		}
		return nil, err
	}
	if !promo.IsActive {
		return nil, ErrPromoInactive
	}
	if promo.ExpiresAt != nil && now.After(*promo.ExpiresAt) {
		return nil, ErrPromoExpired
	}
	if promo.MaxUses != nil && promo.CurrentUses >= *promo.MaxUses {
		return nil, ErrPromoUsageLimitReached
	}
	return promo, nil
}

// RecordRedemption атомарно фиксирует использование промокода.
// Возвращает ErrPromoUsageLimitReached, если лимит исчерпан
// конкурентным погашением между проверкой и фиксацией.
func (s *PromoService) RecordRedemption(ctx context.Context, id int) error {
	ok, err := s.repo.IncrementPromoCodeUses(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPromoUsageLimitReached
	}
	return nil
}

// Create создает новый промокод из данных запроса администратора.
func (s *PromoService) Create(ctx context.Context, req models.DummyPromoCode) (int, error) {
	var expiresAt *time.Time
	if req.ExpiresAt != "" {
		parsed, err := time.Parse("02-01-2006", req.ExpiresAt)
		if err != nil {
			return 0, fmt.Errorf("invalid expires date: %w", err)
		}
		expiresAt = &parsed
	}

	var maxUses *int
	if req.MaxUses > 0 {
		maxUses = &req.MaxUses
	}
	var description *string
	if req.Description != "" {
		description = &req.Description
	}

	promo := models.PromoCode{
		Code:          strings.ToUpper(req.Code),
		Description:   description,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		MaxUses:       maxUses,
		ExpiresAt:     expiresAt,
		IsActive:      true,
	}
	id, err := s.repo.CreatePromoCode(ctx, promo)
	if errors.Is(err, storage.ErrAlreadyExists) {
		return 0, ErrPromoCodeExists
	}
	if err != nil {
		return 0, err
	}
	s.log.Info("created promo code", slog.String("code", promo.Code), slog.Int("id", id))
	return id, nil
}

// List возвращает все промокоды.
func (s *PromoService) List(ctx context.Context) ([]*models.PromoCode, error) {
	return s.repo.ListPromoCodes(ctx)
}

// Deactivate деактивирует промокод по его ID.
func (s *PromoService) Deactivate(ctx context.Context, id int) error {
	rows, err := s.repo.DeactivatePromoCode(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPromoNotFound
	}
	s.log.Info("deactivated promo code", slog.Int("id", id))
	return nil
}
