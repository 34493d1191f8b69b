package models

import "time"

// RenewalReminder — сообщение для очереди уведомлений о скором окончании
// premium-подписки. Публикуется планировщиком, потребляется сервисом отправки.
type RenewalReminder struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expires_at"`
}
