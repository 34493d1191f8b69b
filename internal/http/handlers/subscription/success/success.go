// Package success реализует HTTP-обработчик подтверждения оплаты подписки.
//
// Обработчик перепроверяет статус подписки у платёжного провайдера
// и активирует premium-доступ только при подтверждённой оплате.
package success

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/mooring-directory/internal/http/middlewarectx"
	"github.com/magabrotheeeer/mooring-directory/internal/http/response"
	"github.com/magabrotheeeer/mooring-directory/internal/lib/sl"
	"github.com/magabrotheeeer/mooring-directory/internal/models"
	"github.com/magabrotheeeer/mooring-directory/internal/services"
)

// Handler обрабатывает запросы на подтверждение оплаты подписки.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс менеджера жизненного цикла подписки.
type Service interface {
	ConfirmSuccess(ctx context.Context, userUID string) (*models.UserInfo, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Подтвердить оплату подписки
// @Description Перепроверяет статус оплаты у платёжного провайдера и активирует premium-доступ.
// @Tags Subscription
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Подписка активирована"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 402 {object} response.ErrorResponse "Оплата не завершена"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /subscription/success [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.success"

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

	info, err := h.service.ConfirmSuccess(r.Context(), userUID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPaymentNotCompleted):
			log.Error("payment not completed", slog.String("uid", userUID))
			w.WriteHeader(http.StatusPaymentRequired)
			render.JSON(w, r, response.Error(err.Error()))
			return
		case errors.Is(err, services.ErrNoActiveSubscription):
			log.Error("no active subscription", slog.String("uid", userUID))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		case errors.Is(err, services.ErrUserNotFound):
			log.Error("user not found", slog.String("uid", userUID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
			return
		default:
			log.Error("failed to confirm payment", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not confirm payment"))
			return
		}
	}

	log.Info("subscription activated", slog.String("uid", userUID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"user": info,
	}))
}
