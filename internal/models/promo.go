package models

import "time"

// Типы скидок промокодов.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// PromoCode представляет промокод со скидкой на годовую premium-подписку.
//
// Код хранится в верхнем регистре. Инвариант: при заданном MaxUses
// выполняется CurrentUses <= MaxUses; счётчик увеличивается ровно один раз
// на каждое успешное погашение атомарным условным обновлением в хранилище.
type PromoCode struct {
	ID            int        `json:"id"`
	Code          string     `json:"code"`
	Description   *string    `json:"description,omitempty"`
	DiscountType  string     `json:"discount_type"`
	DiscountValue float64    `json:"discount_value"`
	MaxUses       *int       `json:"max_uses,omitempty"`
	CurrentUses   int        `json:"current_uses"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
}

// DummyPromoCode используется для приёма данных нового промокода из JSON-запроса.
// Дата истечения приходит строкой в формате 02-01-2006.
type DummyPromoCode struct {
	Code          string  `json:"code" validate:"required,alphanum"`
	Description   string  `json:"description,omitempty"`
	DiscountType  string  `json:"discount_type" validate:"required,oneof=percentage fixed"`
	DiscountValue float64 `json:"discount_value" validate:"required,gt=0"`
	MaxUses       int     `json:"max_uses,omitempty" validate:"omitempty,gt=0"`
	ExpiresAt     string  `json:"expires_at,omitempty" validate:"omitempty"`
}
