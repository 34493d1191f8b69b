// Package webhook реализует HTTP-обработчик событий платёжного провайдера.
//
// Тело запроса читается целиком и передаётся сервису вместе с заголовком
// подписи: проверка подписи выполняется по сырым байтам до разбора JSON.
// Обработка идемпотентна — повторная доставка события безопасна,
// неизвестные клиенты и типы событий игнорируются с ответом 200.
package webhook

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/mooring-directory/internal/http/response"
	"github.com/magabrotheeeer/mooring-directory/internal/lib/sl"
	"github.com/magabrotheeeer/mooring-directory/internal/paymentprovider"
)

// Handler обрабатывает webhook-события платёжного провайдера.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс обработки webhook-событий.
type Service interface {
	HandleWebhookEvent(ctx context.Context, payload []byte, sigHeader string) error
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Webhook платёжного провайдера
// @Description Принимает события жизненного цикла подписки от платёжного провайдера. Подпись проверяется по сырому телу запроса.
// @Tags Subscription
// @Accept  json
// @Produce  json
// @Success 200 {object} map[string]any "Событие обработано"
// @Failure 400 {object} response.ErrorResponse "Невалидная подпись или тело запроса"
// @Failure 500 {object} response.ErrorResponse "Ошибка обработки события"
// @Router /subscription/webhook [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.webhook"

	log := h.log.With(slog.String("op", op))

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("failed to read webhook body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to read request body"))
		return
	}
	defer func() { _ = r.Body.Close() }()

	sigHeader := r.Header.Get("Stripe-Signature")

	if err := h.service.HandleWebhookEvent(r.Context(), body, sigHeader); err != nil {
		if errors.Is(err, paymentprovider.ErrSignatureVerification) {
			log.Error("invalid webhook signature")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid webhook signature"))
			return
		}
		log.Error("failed to process webhook event", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not process webhook event"))
		return
	}

	log.Info("webhook processed successfully")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"received": true,
	}))
}
