// Package pricing реализует публичный HTTP-обработчик получения
// текущей цены годовой premium-подписки.
package pricing

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/mooring-directory/internal/http/response"
)

// Handler обрабатывает запросы на получение цены подписки.
type Handler struct {
	log      *slog.Logger
	service  Service
	currency string
}

// Service описывает интерфейс расчёта базовой цены подписки.
type Service interface {
	BasePrice(ctx context.Context) float64
}

// New создает новый Handler с переданными логгером, сервисом и валютой.
func New(log *slog.Logger, service Service, currency string) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		currency: currency,
	}
}

// ServeHTTP godoc
// @Summary Цена premium-подписки
// @Description Возвращает текущую цену годовой premium-подписки и валюту.
// @Tags Settings
// @Produce  json
// @Success 200 {object} map[string]any "Цена подписки"
// @Router /pricing [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.settings.pricing"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	price := h.service.BasePrice(r.Context())

	log.Info("success to get premium price", slog.Float64("price", price))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"premium_price": price,
		"currency":      h.currency,
	}))
}
