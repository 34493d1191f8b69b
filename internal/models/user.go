// Package models содержит доменные структуры каталога стоянок:
// пользователей, причалы, промокоды, настройки платформы и бронирования,
// а также вспомогательные Dummy-типы для приёма данных из JSON-запросов.
package models

import "time"

// Статусы подписки пользователя.
const (
	SubscriptionFree    = "free"
	SubscriptionPremium = "premium"
)

// Роли пользователей.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User представляет зарегистрированного пользователя сервиса.
//
// SubscriptionStatus хранит оплаченный статус ("free" или "premium"),
// SubscriptionExpiresAt — дату окончания оплаченного периода (nil для free).
// BillingCustomerID и BillingSubscriptionID — внешние ссылки на объекты
// платёжного провайдера; заполняются менеджером жизненного цикла подписки.
type User struct {
	UID                   string     // Уникальный идентификатор пользователя (uuid)
	Email                 string     // Электронная почта (уникальная)
	Name                  string     // Отображаемое имя
	PasswordHash          string     // bcrypt-хэш пароля
	SubscriptionStatus    string     // "free" или "premium"
	SubscriptionExpiresAt *time.Time // Дата окончания premium-доступа
	BillingCustomerID     *string    // ID клиента у платёжного провайдера
	BillingSubscriptionID *string    // ID подписки у платёжного провайдера
	Role                  string     // "user" или "admin"
	CreatedAt             time.Time
}

// DummyRegister используется для приёма данных регистрации из JSON-запроса.
type DummyRegister struct {
	Email           string `json:"email" validate:"required,email"`
	Name            string `json:"name" validate:"required"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// DummyLogin используется для приёма данных входа из JSON-запроса.
type DummyLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserInfo — публичное представление пользователя для JSON-ответов
// (без хэша пароля и внешних платёжных ссылок).
type UserInfo struct {
	UID                   string     `json:"uid"`
	Email                 string     `json:"email"`
	Name                  string     `json:"name"`
	SubscriptionStatus    string     `json:"subscription_status"`
	SubscriptionExpiresAt *time.Time `json:"subscription_expires_at,omitempty"`
	Role                  string     `json:"role"`
	CreatedAt             time.Time  `json:"created_at"`
}

// Info возвращает публичное представление пользователя.
func (u *User) Info() UserInfo {
	return UserInfo{
		UID:                   u.UID,
		Email:                 u.Email,
		Name:                  u.Name,
		SubscriptionStatus:    u.SubscriptionStatus,
		SubscriptionExpiresAt: u.SubscriptionExpiresAt,
		Role:                  u.Role,
		CreatedAt:             u.CreatedAt,
	}
}
