// Package list реализует HTTP-обработчик получения всех промокодов администратором.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/mooring-directory/internal/http/response"
	"github.com/magabrotheeeer/mooring-directory/internal/lib/sl"
	"github.com/magabrotheeeer/mooring-directory/internal/models"
)

// Handler обрабатывает запросы на получение всех промокодов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики получения промокодов.
type Service interface {
	List(ctx context.Context) ([]*models.PromoCode, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список промокодов
// @Description Возвращает все промокоды со счётчиками использований. Доступно только администраторам.
// @Tags Admin
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Список промокодов"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /admin/promocodes [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.promo.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	promos, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list promo codes", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list promo codes"))
		return
	}

	log.Info("success to list promo codes", slog.Int("count", len(promos)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"promocodes": promos,
	}))
}
