package paymentprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"github.com/stripe/stripe-go/v78/webhook"
)

// StripeClient реализует Provider поверх Stripe API.
// Ключи передаются при создании, глобальное состояние библиотеки не используется.
type StripeClient struct {
	api           *client.API
	webhookSecret string

	mu        sync.Mutex
	productID string
}

// NewStripeClient создает клиент Stripe с заданными ключами.
func NewStripeClient(secretKey, webhookSecret string) *StripeClient {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeClient{
		api:           api,
		webhookSecret: webhookSecret,
	}
}

// CreateCustomer создает клиента у провайдера.
func (s *StripeClient) CreateCustomer(ctx context.Context, email, name string) (*Customer, error) {
	const op = "paymentprovider.CreateCustomer"

	params := &stripe.CustomerParams{
		Params: stripe.Params{Context: ctx},
		Email:  stripe.String(email),
		Name:   stripe.String(name),
	}
	c, err := s.api.Customers.New(params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Customer{ID: c.ID, Email: c.Email}, nil
}

// ensureProduct создает продукт подписки при первом обращении
// и переиспользует его для всех последующих цен.
func (s *StripeClient) ensureProduct(ctx context.Context, name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.productID != "" {
		return s.productID, nil
	}

	product, err := s.api.Products.New(&stripe.ProductParams{
		Params: stripe.Params{Context: ctx},
		Name:   stripe.String(name),
	})
	if err != nil {
		return "", err
	}
	s.productID = product.ID
	return s.productID, nil
}

// CreateSubscription создает подписку с отложенной оплатой: платёж
// подтверждается клиентом по возвращённому ClientSecret.
func (s *StripeClient) CreateSubscription(ctx context.Context, customerID string, price PriceSpec) (*Subscription, error) {
	const op = "paymentprovider.CreateSubscription"

	productID, err := s.ensureProduct(ctx, price.ProductName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	params := &stripe.SubscriptionParams{
		Params:   stripe.Params{Context: ctx},
		Customer: stripe.String(customerID),
		Items: []*stripe.SubscriptionItemsParams{
			{
				PriceData: &stripe.SubscriptionItemPriceDataParams{
					Currency:   stripe.String(price.Currency),
					Product:    stripe.String(productID),
					UnitAmount: stripe.Int64(price.UnitAmount),
					Recurring: &stripe.SubscriptionItemPriceDataRecurringParams{
						Interval: stripe.String(price.Interval),
					},
				},
			},
		},
		PaymentBehavior: stripe.String("default_incomplete"),
		PaymentSettings: &stripe.SubscriptionPaymentSettingsParams{
			SaveDefaultPaymentMethod: stripe.String("on_subscription"),
		},
	}
	params.AddExpand("latest_invoice.payment_intent")

	sub, err := s.api.Subscriptions.New(params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return convertSubscription(sub), nil
}

// GetSubscription возвращает текущее состояние подписки у провайдера.
func (s *StripeClient) GetSubscription(ctx context.Context, subscriptionID string) (*Subscription, error) {
	const op = "paymentprovider.GetSubscription"

	sub, err := s.api.Subscriptions.Get(subscriptionID, &stripe.SubscriptionParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return convertSubscription(sub), nil
}

// CancelAtPeriodEnd помечает подписку к отмене в конце оплаченного периода.
func (s *StripeClient) CancelAtPeriodEnd(ctx context.Context, subscriptionID string) (*Subscription, error) {
	const op = "paymentprovider.CancelAtPeriodEnd"

	sub, err := s.api.Subscriptions.Update(subscriptionID, &stripe.SubscriptionParams{
		Params:            stripe.Params{Context: ctx},
		CancelAtPeriodEnd: stripe.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return convertSubscription(sub), nil
}

// ConstructEvent проверяет подпись вебхука и разбирает событие.
func (s *StripeClient) ConstructEvent(payload []byte, sigHeader string) (*Event, error) {
	const op = "paymentprovider.ConstructEvent"

	event, err := webhook.ConstructEvent(payload, sigHeader, s.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrSignatureVerification, err)
	}

	result := &Event{Type: string(event.Type)}

	switch result.Type {
	case EventSubscriptionCreated, EventSubscriptionUpdated, EventSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result.Subscription = convertSubscription(&sub)
	}
	return result, nil
}

func convertSubscription(sub *stripe.Subscription) *Subscription {
	result := &Subscription{
		ID:                sub.ID,
		Status:            string(sub.Status),
		PeriodEnd:         time.Unix(sub.CurrentPeriodEnd, 0),
		CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
	}
	if sub.Customer != nil {
		result.CustomerID = sub.Customer.ID
	}
	if sub.LatestInvoice != nil && sub.LatestInvoice.PaymentIntent != nil {
		result.ClientSecret = sub.LatestInvoice.PaymentIntent.ClientSecret
	}
	return result
}
