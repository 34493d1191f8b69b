// Package cancel реализует HTTP-обработчик отмены автопродления подписки.
//
// Отмена назначается на конец оплаченного периода: premium-доступ
// сохраняется до даты окончания, понижение статуса выполняет webhook
// платёжного провайдера.
package cancel

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/mooring-directory/internal/http/middlewarectx"
	"github.com/magabrotheeeer/mooring-directory/internal/http/response"
	"github.com/magabrotheeeer/mooring-directory/internal/lib/sl"
	"github.com/magabrotheeeer/mooring-directory/internal/services"
)

// Handler обрабатывает запросы на отмену автопродления подписки.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс менеджера жизненного цикла подписки.
type Service interface {
	Cancel(ctx context.Context, userUID string) (*time.Time, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Отменить автопродление подписки
// @Description Назначает отмену подписки на конец оплаченного периода. Premium-доступ сохраняется до даты окончания.
// @Tags Subscription
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Дата окончания доступа"
// @Failure 400 {object} response.ErrorResponse "Нет активной подписки"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /subscription/cancel [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.cancel"

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

	periodEnd, err := h.service.Cancel(r.Context(), userUID)
	if err != nil {
		switch {
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
			log.Error("failed to cancel subscription", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not cancel subscription"))
			return
		}
	}

	log.Info("subscription cancellation scheduled", slog.String("uid", userUID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"active_until": periodEnd,
	}))
}
