// Package read реализует HTTP-обработчик получения причала по ID.
//
// Для free-пользователей описание усечено до детального лимита,
// контактные данные заменены заглушками.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/mooring-directory/internal/http/middlewarectx"
	"github.com/magabrotheeeer/mooring-directory/internal/http/response"
	"github.com/magabrotheeeer/mooring-directory/internal/lib/sl"
	"github.com/magabrotheeeer/mooring-directory/internal/models"
	"github.com/magabrotheeeer/mooring-directory/internal/storage"
)

// Handler обрабатывает запросы на получение причала по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения причала.
type Service interface {
	Get(ctx context.Context, id int, premium bool) (*models.MooringLocation, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить причал по ID
// @Description Возвращает причал. Контактные данные и полное описание доступны только premium-пользователям.
// @Tags Locations
// @Produce  json
// @Param id path int true "ID причала"
// @Success 200 {object} map[string]any "Данные причала"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Причал не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /locations/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.location.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	premium, _ := r.Context().Value(middlewarectx.Premium).(bool)

	location, err := h.service.Get(r.Context(), id, premium)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Error("location not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("location not found"))
			return
		}
		log.Error("failed to read location", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read location"))
		return
	}

	log.Info("success to read location", slog.Int("id", id), slog.Bool("premium", premium))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"location": location,
	}))
}
