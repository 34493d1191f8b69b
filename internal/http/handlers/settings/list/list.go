// Package list реализует HTTP-обработчик получения настроек платформы администратором.
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

// Handler обрабатывает запросы на получение настроек платформы.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс чтения настроек платформы.
type Service interface {
	ListSettings(ctx context.Context) ([]*models.PlatformSetting, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Настройки платформы
// @Description Возвращает все настройки платформы. Доступно только администраторам.
// @Tags Admin
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Список настроек"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /admin/settings [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.settings.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	settings, err := h.service.ListSettings(r.Context())
	if err != nil {
		log.Error("failed to list settings", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list settings"))
		return
	}

	log.Info("success to list settings", slog.Int("count", len(settings)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"settings": settings,
	}))
}
