// Package mooringdirectory предоставляет маршруты для основного приложения.
package mooringdirectory

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	adminusers "github.com/magabrotheeeer/mooring-directory/internal/http/handlers/admin/users"
	"github.com/magabrotheeeer/mooring-directory/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/mooring-directory/internal/http/handlers/auth/me"
	"github.com/magabrotheeeer/mooring-directory/internal/http/handlers/auth/register"
	bookingbylocation "github.com/magabrotheeeer/mooring-directory/internal/http/handlers/booking/bylocation"
	bookingcreate "github.com/magabrotheeeer/mooring-directory/internal/http/handlers/booking/create"
	bookinglist "github.com/magabrotheeeer/mooring-directory/internal/http/handlers/booking/list"
	bookingread "github.com/magabrotheeeer/mooring-directory/internal/http/handlers/booking/read"
	bookingstatus "github.com/magabrotheeeer/mooring-directory/internal/http/handlers/booking/status"
	"github.com/magabrotheeeer/mooring-directory/internal/http/handlers/health"
	locationcreate "github.com/magabrotheeeer/mooring-directory/internal/http/handlers/location/create"
	locationlist "github.com/magabrotheeeer/mooring-directory/internal/http/handlers/location/list"
	locationread "github.com/magabrotheeeer/mooring-directory/internal/http/handlers/location/read"
	locationsearch "github.com/magabrotheeeer/mooring-directory/internal/http/handlers/location/search"
	promocreate "github.com/magabrotheeeer/mooring-directory/internal/http/handlers/promo/create"
	promodeactivate "github.com/magabrotheeeer/mooring-directory/internal/http/handlers/promo/deactivate"
	promolist "github.com/magabrotheeeer/mooring-directory/internal/http/handlers/promo/list"
	promovalidate "github.com/magabrotheeeer/mooring-directory/internal/http/handlers/promo/validate"
	settingslist "github.com/magabrotheeeer/mooring-directory/internal/http/handlers/settings/list"
	settingspricing "github.com/magabrotheeeer/mooring-directory/internal/http/handlers/settings/pricing"
	settingsupsert "github.com/magabrotheeeer/mooring-directory/internal/http/handlers/settings/upsert"
	subscriptioncancel "github.com/magabrotheeeer/mooring-directory/internal/http/handlers/subscription/cancel"
	subscriptioncheckout "github.com/magabrotheeeer/mooring-directory/internal/http/handlers/subscription/checkout"
	subscriptionstatus "github.com/magabrotheeeer/mooring-directory/internal/http/handlers/subscription/status"
	subscriptionsuccess "github.com/magabrotheeeer/mooring-directory/internal/http/handlers/subscription/success"
	subscriptionwebhook "github.com/magabrotheeeer/mooring-directory/internal/http/handlers/subscription/webhook"
	"github.com/magabrotheeeer/mooring-directory/internal/http/middlewarectx"
	"github.com/magabrotheeeer/mooring-directory/internal/services"
	"github.com/magabrotheeeer/mooring-directory/internal/storage"
)

// Deps содержит сервисы, необходимые для регистрации маршрутов.
type Deps struct {
	Auth          *services.AuthService
	Locations     *services.LocationService
	Bookings      *services.BookingService
	Promos        *services.PromoService
	Pricing       *services.PricingService
	Subscriptions *services.SubscriptionService
	Storage       *storage.Storage
	Currency      string
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, deps *Deps) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Get("/health", health.New(logger).ServeHTTP)
		r.Post("/register", register.New(logger, deps.Auth).ServeHTTP)
		r.Post("/login", login.New(logger, deps.Auth).ServeHTTP)
		r.Get("/pricing", settingspricing.New(logger, deps.Pricing, deps.Currency).ServeHTTP)

		// Каталог: публичный, но объём ответа зависит от статуса подписки
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.OptionalJWTMiddleware(deps.Auth, logger))
			r.Use(middlewarectx.PremiumStatusMiddleware(logger, deps.Subscriptions))
			r.Get("/locations", locationlist.New(logger, deps.Locations).ServeHTTP)
			r.Get("/locations/search", locationsearch.New(logger, deps.Locations).ServeHTTP)
			r.Get("/locations/{id}", locationread.New(logger, deps.Locations).ServeHTTP)
		})

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(deps.Auth, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger, 10, 30))
			r.Get("/me", me.New(logger, deps.Auth).ServeHTTP)
			r.Post("/promocodes/validate", promovalidate.New(logger, deps.Promos, deps.Pricing).ServeHTTP)
			r.Get("/subscription/status", subscriptionstatus.New(logger, deps.Subscriptions).ServeHTTP)
			r.Post("/subscription/checkout", subscriptioncheckout.New(logger, deps.Subscriptions).ServeHTTP)
			r.Post("/subscription/success", subscriptionsuccess.New(logger, deps.Subscriptions).ServeHTTP)
			r.Post("/subscription/cancel", subscriptioncancel.New(logger, deps.Subscriptions).ServeHTTP)
			r.Post("/bookings", bookingcreate.New(logger, deps.Bookings).ServeHTTP)
			r.Get("/bookings/{id}", bookingread.New(logger, deps.Bookings).ServeHTTP)
		})

		// Административная группа
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(deps.Auth, logger))
			r.Use(middlewarectx.AdminOnlyMiddleware(logger))
			r.Post("/admin/locations", locationcreate.New(logger, deps.Locations).ServeHTTP)
			r.Get("/admin/locations/{id}/bookings", bookingbylocation.New(logger, deps.Bookings).ServeHTTP)
			r.Get("/admin/users", adminusers.New(logger, deps.Storage).ServeHTTP)
			r.Get("/admin/settings", settingslist.New(logger, deps.Storage).ServeHTTP)
			r.Put("/admin/settings", settingsupsert.New(logger, deps.Storage).ServeHTTP)
			r.Post("/admin/promocodes", promocreate.New(logger, deps.Promos).ServeHTTP)
			r.Get("/admin/promocodes", promolist.New(logger, deps.Promos).ServeHTTP)
			r.Delete("/admin/promocodes/{id}", promodeactivate.New(logger, deps.Promos).ServeHTTP)
			r.Get("/admin/bookings", bookinglist.New(logger, deps.Bookings).ServeHTTP)
			r.Put("/admin/bookings/{id}/status", bookingstatus.New(logger, deps.Bookings).ServeHTTP)
		})

		// Webhook endpoint (без аутентификации, подпись проверяется по телу)
		r.Post("/subscription/webhook", subscriptionwebhook.New(logger, deps.Subscriptions).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
