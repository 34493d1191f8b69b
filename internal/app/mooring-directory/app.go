// Package mooringdirectory собирает основное HTTP-приложение каталога
// причальных стоянок: хранилище, кеш, платёжный провайдер и все сервисы.
package mooringdirectory

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/mooring-directory/internal/cache"
	"github.com/magabrotheeeer/mooring-directory/internal/config"
	"github.com/magabrotheeeer/mooring-directory/internal/lib/jwt"
	"github.com/magabrotheeeer/mooring-directory/internal/migrations"
	"github.com/magabrotheeeer/mooring-directory/internal/paymentprovider"
	"github.com/magabrotheeeer/mooring-directory/internal/services"
	"github.com/magabrotheeeer/mooring-directory/internal/storage"
)

// App представляет основное HTTP-приложение.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
}

// New создает приложение: подключает базу, применяет миграции,
// инициализирует кеш, платёжного провайдера и сервисы, регистрирует маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	provider := paymentprovider.NewStripeClient(cfg.StripeSecretKey, cfg.StripeWebhookSecret)

	authService := services.NewAuthService(db, jwtMaker)
	pricingService := services.NewPricingService(db, cfg.DefaultPremiumPrice, cfg.Currency, logger)
	promoService := services.NewPromoService(db, logger)
	subscriptionService := services.NewSubscriptionService(db, promoService, pricingService,
		provider, cfg.ProductName, logger)
	locationService := services.NewLocationService(db, cacheRedis, logger)
	bookingService := services.NewBookingService(db, db, db, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, &Deps{
		Auth:          authService,
		Locations:     locationService,
		Bookings:      bookingService,
		Promos:        promoService,
		Pricing:       pricingService,
		Subscriptions: subscriptionService,
		Storage:       db,
		Currency:      cfg.Currency,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и корректно останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.db.DB.Close(); closeErr != nil {
			a.logger.Error("failed to close database", slog.Any("err", closeErr))
		}
		return err
	}
}
