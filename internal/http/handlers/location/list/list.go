// Package list реализует HTTP-обработчик получения каталога причалов.
//
// Конечная точка публичная: анонимные и free-пользователи получают записи
// с заглушками вместо контактных данных и усечённым описанием,
// premium-пользователи — полные записи. Признак premium определяется
// middleware на момент запроса.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/mooring-directory/internal/http/middlewarectx"
	"github.com/magabrotheeeer/mooring-directory/internal/http/response"
	"github.com/magabrotheeeer/mooring-directory/internal/lib/sl"
	"github.com/magabrotheeeer/mooring-directory/internal/models"
)

// Handler обрабатывает запросы на получение каталога причалов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики каталога причалов.
type Service interface {
	List(ctx context.Context, premium bool) ([]*models.MooringLocation, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Каталог причалов
// @Description Возвращает все причалы. Контактные данные и полное описание доступны только premium-пользователям.
// @Tags Locations
// @Produce  json
// @Success 200 {object} map[string]any "Список причалов"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /locations [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.location.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	premium, _ := r.Context().Value(middlewarectx.Premium).(bool)

	locations, err := h.service.List(r.Context(), premium)
	if err != nil {
		log.Error("failed to list locations", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list locations"))
		return
	}

	log.Info("success to list locations", slog.Int("count", len(locations)), slog.Bool("premium", premium))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"locations": locations,
	}))
}
