// Package paymentprovider определяет интерфейс платёжного провайдера
// и его реализацию на основе Stripe. Ядро сервиса зависит только от
// интерфейса Provider; провайдер передаётся явно при сборке приложения.
package paymentprovider

import (
	"context"
	"errors"
	"time"
)

// ErrSignatureVerification возвращается, когда подпись вебхука не прошла проверку.
var ErrSignatureVerification = errors.New("webhook signature verification failed")

// Статусы подписки у провайдера, которые считаются оплаченными.
const (
	StatusActive   = "active"
	StatusTrialing = "trialing"
)

// Типы событий вебхука, обрабатываемые сервисом.
const (
	EventSubscriptionCreated = "customer.subscription.created"
	EventSubscriptionUpdated = "customer.subscription.updated"
	EventSubscriptionDeleted = "customer.subscription.deleted"
)

// Customer — клиент у платёжного провайдера.
type Customer struct {
	ID    string
	Email string
}

// PriceSpec описывает цену создаваемой подписки.
// UnitAmount задаётся в минимальных единицах валюты (центах).
type PriceSpec struct {
	Currency    string
	ProductName string
	UnitAmount  int64
	Interval    string
}

// Subscription — состояние подписки у платёжного провайдера.
// ClientSecret заполняется только при создании подписки с отложенной
// оплатой и передаётся клиенту для подтверждения платежа.
type Subscription struct {
	ID                string
	CustomerID        string
	Status            string
	ClientSecret      string
	PeriodEnd         time.Time
	CancelAtPeriodEnd bool
}

// Event — проверенное событие вебхука платёжного провайдера.
// Subscription заполняется для событий жизненного цикла подписки.
type Event struct {
	Type         string
	Subscription *Subscription
}

// Provider — интерфейс платёжного провайдера, используемый менеджером
// жизненного цикла подписки.
type Provider interface {
	CreateCustomer(ctx context.Context, email, name string) (*Customer, error)
	CreateSubscription(ctx context.Context, customerID string, price PriceSpec) (*Subscription, error)
	GetSubscription(ctx context.Context, subscriptionID string) (*Subscription, error)
	CancelAtPeriodEnd(ctx context.Context, subscriptionID string) (*Subscription, error)
	ConstructEvent(payload []byte, sigHeader string) (*Event, error)
}
