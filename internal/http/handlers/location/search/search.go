// Package search реализует HTTP-обработчик поиска причалов
// по названию, адресу, графству или региону.
package search

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/mooring-directory/internal/http/middlewarectx"
	"github.com/magabrotheeeer/mooring-directory/internal/http/response"
	"github.com/magabrotheeeer/mooring-directory/internal/lib/sl"
	"github.com/magabrotheeeer/mooring-directory/internal/models"
)

// Handler обрабатывает запросы поиска причалов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики поиска причалов.
type Service interface {
	Search(ctx context.Context, q string, premium bool) ([]*models.MooringLocation, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Поиск причалов
// @Description Ищет причалы по подстроке в названии, адресе, графстве или регионе (без учета регистра).
// @Tags Locations
// @Produce  json
// @Param q query string true "Строка поиска"
// @Success 200 {object} map[string]any "Найденные причалы"
// @Failure 400 {object} response.ErrorResponse "Пустая строка поиска"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /locations/search [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.location.search"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		log.Error("empty search query")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("query parameter q is required"))
		return
	}

	premium, _ := r.Context().Value(middlewarectx.Premium).(bool)

	locations, err := h.service.Search(r.Context(), q, premium)
	if err != nil {
		log.Error("failed to search locations", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not search locations"))
		return
	}

	log.Info("success to search locations", slog.String("query", q), slog.Int("count", len(locations)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"locations": locations,
	}))
}
