package models

import "time"

// Ключи настроек платформы, участвующие в ценообразовании.
const (
	SettingPremiumPrice = "premium_price"
	SettingTrialDays    = "trial_days"
)

// PlatformSetting представляет настройку платформы (ключ-значение).
// Ядро только читает настройки; запись выполняется администратором.
type PlatformSetting struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description *string   `json:"description,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DummySetting используется для приёма настройки из JSON-запроса администратора.
type DummySetting struct {
	Key         string `json:"key" validate:"required"`
	Value       string `json:"value" validate:"required"`
	Description string `json:"description,omitempty"`
}
