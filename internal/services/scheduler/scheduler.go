// Package services реализует планировщик напоминаний о продлении подписки:
// ежедневно находит premium-пользователей с истекающей завтра подпиской
// и публикует напоминания в очередь уведомлений.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/mooring-directory/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/mooring-directory/internal/lib/sl"
	"github.com/magabrotheeeer/mooring-directory/internal/models"
	"github.com/streadway/amqp"
)

// UserRepository описывает выборку пользователей с истекающей подпиской.
type UserRepository interface {
	FindPremiumExpiringTomorrow(ctx context.Context) ([]*models.RenewalReminder, error)
}

// SchedulerService периодически публикует напоминания о продлении подписки.
type SchedulerService struct {
	repo UserRepository
	log  *slog.Logger
}

// NewSchedulerService создает новый экземпляр SchedulerService.
func NewSchedulerService(repo UserRepository, log *slog.Logger) *SchedulerService {
	return &SchedulerService{
		repo: repo,
		log:  log,
	}
}

// FindExpiringSubscriptions запускает цикл поиска истекающих подписок
// с суточным интервалом. Первый проход выполняется сразу.
func (s *SchedulerService) FindExpiringSubscriptions(ctx context.Context, channel *amqp.Channel) {
	s.runFindExpiringSubscriptions(ctx, channel)

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runFindExpiringSubscriptions(ctx, channel)
		case <-ctx.Done():
			return
		}
	}
}

func (s *SchedulerService) runFindExpiringSubscriptions(ctx context.Context, channel *amqp.Channel) {
	s.log.Info("starting search for subscriptions expiring tomorrow")
	reminders, err := s.repo.FindPremiumExpiringTomorrow(ctx)
	if err != nil {
		s.log.Error("failed to find expiring subscriptions", sl.Err(err))
		return
	}
	if len(reminders) == 0 {
		s.log.Info("no expiring subscriptions found")
		return
	}
	s.log.Info("found expiring subscriptions", "count", len(reminders))
	for _, reminder := range reminders {
		err = rabbitmq.PublishMessage(channel, rabbitmq.NotificationsExchange, "renewal", reminder)
		if err != nil {
			s.log.Error("failed to publish message", sl.Err(err))
		}
	}
}
