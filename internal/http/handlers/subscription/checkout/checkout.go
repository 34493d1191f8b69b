// Package checkout реализует HTTP-обработчик оформления годовой premium-подписки.
//
// Обработчик принимает необязательный промокод, делегирует оформление
// менеджеру подписок и возвращает результат: либо подписка активирована
// сразу (100% скидка), либо клиенту возвращается client_secret для
// завершения оплаты на стороне платёжного провайдера.
package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/mooring-directory/internal/http/middlewarectx"
	"github.com/magabrotheeeer/mooring-directory/internal/http/response"
	"github.com/magabrotheeeer/mooring-directory/internal/lib/sl"
	"github.com/magabrotheeeer/mooring-directory/internal/services"
)

// Request — структура входных данных для оформления подписки.
// Промокод необязателен.
type Request struct {
	PromoCode string `json:"promo_code,omitempty"`
}

// Handler обрабатывает запросы на оформление подписки.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс менеджера жизненного цикла подписки.
type Service interface {
	CreateCheckout(ctx context.Context, userUID, promoCode string) (*services.CheckoutResult, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Оформить premium-подписку
// @Description Создает оформление годовой premium-подписки с необязательным промокодом. При 100% скидке подписка активируется сразу, иначе возвращается client_secret для оплаты.
// @Tags Subscription
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Промокод (необязательно)"
// @Success 200 {object} map[string]any "Результат оформления"
// @Failure 400 {object} response.ErrorResponse "Промокод не применим"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 409 {object} response.ErrorResponse "Подписка уже активна"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /subscription/checkout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.checkout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	result, err := h.service.CreateCheckout(r.Context(), userUID, req.PromoCode)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyPremium):
			log.Error("user already has premium", slog.String("uid", userUID))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error(err.Error()))
			return
		case errors.Is(err, services.ErrPromoNotFound),
			errors.Is(err, services.ErrPromoInactive),
			errors.Is(err, services.ErrPromoExpired),
			errors.Is(err, services.ErrPromoUsageLimitReached):
			log.Error("promo code rejected", slog.String("code", req.PromoCode), sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		case errors.Is(err, services.ErrUserNotFound):
			log.Error("user not found", slog.String("uid", userUID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
			return
		default:
			log.Error("failed to create checkout", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not create checkout"))
			return
		}
	}

	log.Info("success to create checkout", slog.String("uid", userUID), slog.String("status", result.Status))
	render.JSON(w, r, response.StatusOKWithData(result))
}
