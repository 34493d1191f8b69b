// Package services содержит бизнес-логику каталога: проверку прав доступа,
// редакцию данных причалов, ценообразование, промокоды, жизненный цикл
// подписки, бронирования и аутентификацию.
package services

import (
	"time"

	"github.com/magabrotheeeer/mooring-directory/internal/models"
)

// Лимиты усечения описаний для бесплатных пользователей.
const (
	ListDescriptionLimit   = 80
	DetailDescriptionLimit = 120
)

// Сообщения, подставляемые вместо premium-полей.
const (
	redactedContactMessage      = "Upgrade to Premium for contact details"
	redactedWebsiteMessage      = "Upgrade to Premium to access website"
	redactedDescriptionSuffix   = "... Upgrade to Premium for full details"
	redactedDescriptionFallback = "Upgrade to Premium for complete facility information and contact details"
)

// IsPremium сообщает, имеет ли пользователь действующий premium-доступ
// на момент now. Статус с истёкшей датой окончания считается бесплатным:
// проверка выполняется лениво, без фонового обновления записей.
func IsPremium(now time.Time, user *models.User) bool {
	if user == nil {
		return false
	}
	if user.SubscriptionStatus != models.SubscriptionPremium {
		return false
	}
	if user.SubscriptionExpiresAt != nil && now.After(*user.SubscriptionExpiresAt) {
		return false
	}
	return true
}

// RedactLocation возвращает копию причала, подготовленную для бесплатного
// пользователя: контакты заменены подсказками об апгрейде, сайт — только
// если он указан, флаги инфраструктуры скрыты, описание усечено до limit
// символов. Исходная запись не изменяется.
func RedactLocation(loc *models.MooringLocation, limit int) *models.MooringLocation {
	redacted := *loc

	contact := redactedContactMessage
	redacted.Phone = &contact
	redacted.Email = &contact
	if loc.Website != nil {
		website := redactedWebsiteMessage
		redacted.Website = &website
	}

	redacted.HasFuel = false
	redacted.HasWater = false
	redacted.HasElectricity = false
	redacted.HasWasteDisposal = false
	redacted.HasShowers = false
	redacted.HasRestaurant = false

	if loc.Description != nil && *loc.Description != "" {
		teaser := *loc.Description
		// Усечение по рунам: байтовый срез ломает многобайтовые символы.
		if runes := []rune(teaser); len(runes) > limit {
			teaser = string(runes[:limit])
		}
		teaser += redactedDescriptionSuffix
		redacted.Description = &teaser
	} else {
		fallback := redactedDescriptionFallback
		redacted.Description = &fallback
	}
	return &redacted
}

// RedactLocations применяет RedactLocation ко всем элементам списка.
func RedactLocations(locs []*models.MooringLocation, limit int) []*models.MooringLocation {
	result := make([]*models.MooringLocation, 0, len(locs))
	for _, loc := range locs {
		result = append(result, RedactLocation(loc, limit))
	}
	return result
}
