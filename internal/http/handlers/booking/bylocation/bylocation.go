// Package bylocation реализует HTTP-обработчик получения бронирований причала.
// Конечная точка доступна только администраторам.
package bylocation

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/mooring-directory/internal/http/response"
	"github.com/magabrotheeeer/mooring-directory/internal/lib/sl"
	"github.com/magabrotheeeer/mooring-directory/internal/models"
)

// Handler обрабатывает запросы на получение бронирований причала.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики выборки бронирований причала.
type Service interface {
	ListByLocation(ctx context.Context, locationID int) ([]*models.Booking, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Бронирования причала
// @Description Возвращает все бронирования указанного причала. Доступно только администраторам.
// @Tags Admin
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID причала"
// @Success 200 {object} map[string]any "Список бронирований"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /admin/locations/{id}/bookings [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.booking.bylocation"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	locationID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	bookings, err := h.service.ListByLocation(r.Context(), locationID)
	if err != nil {
		log.Error("failed to list bookings by location", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list bookings"))
		return
	}

	log.Info("success to list bookings by location", slog.Int("location_id", locationID), slog.Int("count", len(bookings)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"bookings": bookings,
	}))
}
