package services

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/magabrotheeeer/mooring-directory/internal/models"
	"github.com/magabrotheeeer/mooring-directory/internal/paymentprovider"
	"github.com/magabrotheeeer/mooring-directory/internal/storage"
)

// Ошибки жизненного цикла подписки.
var (
	ErrAlreadyPremium       = errors.New("user already has an active premium subscription")
	ErrPaymentNotCompleted  = errors.New("payment has not been completed")
	ErrNoActiveSubscription = errors.New("user has no active billing subscription")
	ErrUserNotFound         = errors.New("user not found")
)

// Интервал тарификации подписки у провайдера.
const billingInterval = "year"

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	RegisterUser(ctx context.Context, user models.User) (string, error)
	GetUserByUID(ctx context.Context, uid string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByBillingCustomerID(ctx context.Context, customerID string) (*models.User, error)
	UpdateUserSubscription(ctx context.Context, uid string, status string, expiresAt *time.Time) (int, error)
	UpdateUserBillingRefs(ctx context.Context, uid string, customerID, subscriptionID *string) (int, error)
}

// CheckoutResult — результат создания оформления подписки.
// При полной скидке Status сразу "active" и подтверждение оплаты не требуется;
// иначе Status "pending" и клиент подтверждает платёж по ClientSecret.
type CheckoutResult struct {
	Status       string `json:"status"`
	ClientSecret string `json:"client_secret,omitempty"`
	Quote        Quote  `json:"quote"`
}

// SubscriptionService управляет жизненным циклом premium-подписки:
// оформлением, подтверждением оплаты, отменой и обработкой вебхуков
// платёжного провайдера. Провайдер никогда не является источником
// правды для локального статуса до подтверждённого события.
type SubscriptionService struct {
	users       UserRepository
	promos      *PromoService
	pricing     *PricingService
	provider    paymentprovider.Provider
	productName string
	log         *slog.Logger
}

// NewSubscriptionService создает новый экземпляр SubscriptionService.
func NewSubscriptionService(users UserRepository, promos *PromoService, pricing *PricingService,
	provider paymentprovider.Provider, productName string, log *slog.Logger) *SubscriptionService {
	return &SubscriptionService{
		users:       users,
		promos:      promos,
		pricing:     pricing,
		provider:    provider,
		productName: productName,
		log:         log,
	}
}

// CreateCheckout оформляет годовую premium-подписку для пользователя.
// Промокод проверяется до обращения к провайдеру; его использование
// фиксируется атомарно только после успешного создания подписки.
// При стопроцентной скидке premium выдаётся сразу на год без участия
// провайдера.
func (s *SubscriptionService) CreateCheckout(ctx context.Context, userUID, promoCode string) (*CheckoutResult, error) {
	now := time.Now().UTC()

	user, err := s.users.GetUserByUID(ctx, userUID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if IsPremium(now, user) {
		return nil, ErrAlreadyPremium
	}

	var promo *models.PromoCode
	if promoCode != "" {
		promo, err = s.promos.Validate(ctx, promoCode, now)
		if err != nil {
			return nil, err
		}
	}

	quote := s.pricing.QuoteFor(ctx, promo)

	// полная скидка: premium на год без платёжного провайдера
	if quote.FinalPrice <= 0 {
		if promo != nil {
			if err := s.promos.RecordRedemption(ctx, promo.ID); err != nil {
				return nil, err
			}
		}
		expiresAt := now.AddDate(1, 0, 0)
		if _, err := s.users.UpdateUserSubscription(ctx, user.UID, models.SubscriptionPremium, &expiresAt); err != nil {
			return nil, err
		}
		s.log.Info("granted premium via full discount",
			slog.String("user_uid", user.UID), slog.String("promo", promoCode))
		return &CheckoutResult{Status: paymentprovider.StatusActive, Quote: quote}, nil
	}

	customerID, err := s.ensureCustomer(ctx, user)
	if err != nil {
		return nil, err
	}

	sub, err := s.provider.CreateSubscription(ctx, customerID, paymentprovider.PriceSpec{
		Currency:    quote.Currency,
		ProductName: s.productName,
		UnitAmount:  toMinorUnits(quote.FinalPrice),
		Interval:    billingInterval,
	})
	if err != nil {
		return nil, err
	}

	if promo != nil {
		if err := s.promos.RecordRedemption(ctx, promo.ID); err != nil {
			return nil, err
		}
	}

	if _, err := s.users.UpdateUserBillingRefs(ctx, user.UID, &customerID, &sub.ID); err != nil {
		return nil, err
	}

	s.log.Info("created pending subscription",
		slog.String("user_uid", user.UID), slog.String("subscription_id", sub.ID))
	return &CheckoutResult{
		Status:       sub.Status,
		ClientSecret: sub.ClientSecret,
		Quote:        quote,
	}, nil
}

// ensureCustomer возвращает существующий идентификатор клиента у провайдера
// или создает нового клиента и сохраняет ссылку.
func (s *SubscriptionService) ensureCustomer(ctx context.Context, user *models.User) (string, error) {
	if user.BillingCustomerID != nil && *user.BillingCustomerID != "" {
		return *user.BillingCustomerID, nil
	}
	customer, err := s.provider.CreateCustomer(ctx, user.Email, user.Name)
	if err != nil {
		return "", err
	}
	if _, err := s.users.UpdateUserBillingRefs(ctx, user.UID, &customer.ID, user.BillingSubscriptionID); err != nil {
		return "", err
	}
	return customer.ID, nil
}

// ConfirmSuccess подтверждает оплату: статус перечитывается у провайдера,
// и premium выдаётся только если подписка действительно оплачена.
func (s *SubscriptionService) ConfirmSuccess(ctx context.Context, userUID string) (*models.UserInfo, error) {
	user, err := s.users.GetUserByUID(ctx, userUID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.BillingSubscriptionID == nil || *user.BillingSubscriptionID == "" {
		return nil, ErrNoActiveSubscription
	}

	sub, err := s.provider.GetSubscription(ctx, *user.BillingSubscriptionID)
	if err != nil {
		return nil, err
	}
	if sub.Status != paymentprovider.StatusActive && sub.Status != paymentprovider.StatusTrialing {
		return nil, ErrPaymentNotCompleted
	}

	expiresAt := sub.PeriodEnd.UTC()
	if _, err := s.users.UpdateUserSubscription(ctx, user.UID, models.SubscriptionPremium, &expiresAt); err != nil {
		return nil, err
	}
	user.SubscriptionStatus = models.SubscriptionPremium
	user.SubscriptionExpiresAt = &expiresAt

	s.log.Info("confirmed premium subscription",
		slog.String("user_uid", user.UID), slog.Time("expires_at", expiresAt))
	info := user.Info()
	return &info, nil
}

// Cancel помечает подписку к отмене в конце оплаченного периода.
// Premium-доступ сохраняется до даты окончания; локальный статус
// изменит вебхук о фактическом удалении подписки.
func (s *SubscriptionService) Cancel(ctx context.Context, userUID string) (*time.Time, error) {
	user, err := s.users.GetUserByUID(ctx, userUID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.BillingSubscriptionID == nil || *user.BillingSubscriptionID == "" {
		return nil, ErrNoActiveSubscription
	}

	sub, err := s.provider.CancelAtPeriodEnd(ctx, *user.BillingSubscriptionID)
	if err != nil {
		return nil, err
	}

	periodEnd := sub.PeriodEnd.UTC()
	s.log.Info("scheduled subscription cancellation",
		slog.String("user_uid", user.UID), slog.Time("period_end", periodEnd))
	return &periodEnd, nil
}

// HandleWebhookEvent проверяет подпись и применяет событие провайдера
// к локальному состоянию. Обработка идемпотентна: повторное событие
// приводит запись к тому же состоянию. События незнакомых типов и
// события для неизвестных клиентов игнорируются.
func (s *SubscriptionService) HandleWebhookEvent(ctx context.Context, payload []byte, sigHeader string) error {
	event, err := s.provider.ConstructEvent(payload, sigHeader)
	if err != nil {
		return err
	}
	if event.Subscription == nil {
		s.log.Info("ignoring webhook event", slog.String("type", event.Type))
		return nil
	}

	user, err := s.users.GetUserByBillingCustomerID(ctx, event.Subscription.CustomerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.log.Warn("webhook event for unknown customer",
				slog.String("customer_id", event.Subscription.CustomerID))
			return nil
		}
		return err
	}

	switch event.Type {
	case paymentprovider.EventSubscriptionCreated, paymentprovider.EventSubscriptionUpdated:
		if event.Subscription.Status == paymentprovider.StatusActive ||
			event.Subscription.Status == paymentprovider.StatusTrialing {
			expiresAt := event.Subscription.PeriodEnd.UTC()
			if _, err := s.users.UpdateUserSubscription(ctx, user.UID, models.SubscriptionPremium, &expiresAt); err != nil {
				return err
			}
		} else {
			if _, err := s.users.UpdateUserSubscription(ctx, user.UID, models.SubscriptionFree, nil); err != nil {
				return err
			}
		}
	case paymentprovider.EventSubscriptionDeleted:
		if _, err := s.users.UpdateUserSubscription(ctx, user.UID, models.SubscriptionFree, nil); err != nil {
			return err
		}
	}

	s.log.Info("processed webhook event",
		slog.String("type", event.Type), slog.String("user_uid", user.UID))
	return nil
}

// Status возвращает текущее состояние подписки пользователя.
func (s *SubscriptionService) Status(ctx context.Context, userUID string) (*models.UserInfo, bool, error) {
	user, err := s.users.GetUserByUID(ctx, userUID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, false, ErrUserNotFound
		}
		return nil, false, err
	}
	info := user.Info()
	return &info, IsPremium(time.Now().UTC(), user), nil
}

// toMinorUnits переводит сумму в минимальные единицы валюты.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
