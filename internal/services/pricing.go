package services

import (
	"context"
	"log/slog"
	"math"
	"strconv"

	"github.com/magabrotheeeer/mooring-directory/internal/lib/sl"
	"github.com/magabrotheeeer/mooring-directory/internal/models"
)

// SettingsRepository описывает контракт для чтения настроек платформы.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (*models.PlatformSetting, error)
}

// Quote — расчёт цены годовой premium-подписки с учётом промокода.
// Суммы округлены до двух знаков только на выходе; промежуточные
// вычисления выполняются без округления.
type Quote struct {
	BasePrice      float64 `json:"base_price"`
	DiscountAmount float64 `json:"discount_amount"`
	FinalPrice     float64 `json:"final_price"`
	Currency       string  `json:"currency"`
}

// PricingService отвечает за расчёт стоимости подписки.
// Базовая цена читается из настроек платформы; при отсутствии или
// некорректном значении используется цена по умолчанию из конфигурации.
type PricingService struct {
	settings     SettingsRepository
	defaultPrice float64
	currency     string
	log          *slog.Logger
}

// NewPricingService создает новый экземпляр PricingService.
func NewPricingService(settings SettingsRepository, defaultPrice float64, currency string, log *slog.Logger) *PricingService {
	return &PricingService{
		settings:     settings,
		defaultPrice: defaultPrice,
		currency:     currency,
		log:          log,
	}
}

// BasePrice возвращает текущую базовую цену годовой подписки.
func (s *PricingService) BasePrice(ctx context.Context) float64 {
	setting, err := s.settings.GetSetting(ctx, models.SettingPremiumPrice)
	if err != nil {
		s.log.Warn("failed to read premium price setting, using default", sl.Err(err))
		return s.defaultPrice
	}
	price, err := strconv.ParseFloat(setting.Value, 64)
	if err != nil || price <= 0 {
		s.log.Warn("invalid premium price setting, using default",
			slog.String("value", setting.Value))
		return s.defaultPrice
	}
	return price
}

// Compute рассчитывает итоговую цену по базовой цене и промокоду.
// Процентная скидка берётся от базовой цены, фиксированная не может
// превышать её. Итог не бывает отрицательным.
func (s *PricingService) Compute(base float64, promo *models.PromoCode) Quote {
	var discount float64
	if promo != nil {
		switch promo.DiscountType {
		case models.DiscountPercentage:
			discount = base * promo.DiscountValue / 100
		case models.DiscountFixed:
			discount = math.Min(promo.DiscountValue, base)
		}
	}
	return Quote{
		BasePrice:      Round2(base),
		DiscountAmount: Round2(discount),
		FinalPrice:     Round2(math.Max(base-discount, 0)),
		Currency:       s.currency,
	}
}

// QuoteFor возвращает расчёт цены для пользователя с учётом промокода.
func (s *PricingService) QuoteFor(ctx context.Context, promo *models.PromoCode) Quote {
	return s.Compute(s.BasePrice(ctx), promo)
}

// Round2 округляет сумму до двух знаков после запятой.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
