// Package upsert реализует HTTP-обработчик изменения настройки платформы администратором.
//
// Через эту конечную точку администратор меняет в том числе цену
// premium-подписки (ключ premium_price); новое значение применяется
// ко всем последующим расчётам без перезапуска сервиса.
package upsert

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/mooring-directory/internal/http/response"
	"github.com/magabrotheeeer/mooring-directory/internal/lib/sl"
	"github.com/magabrotheeeer/mooring-directory/internal/models"
)

// Handler обрабатывает запросы на изменение настройки платформы.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс записи настроек платформы.
type Service interface {
	UpsertSetting(ctx context.Context, setting models.PlatformSetting) error
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Изменить настройку платформы
// @Description Создает или обновляет настройку по ключу. Доступно только администраторам.
// @Tags Admin
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummySetting true "Настройка платформы"
// @Success 200 {object} map[string]any "Настройка сохранена"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /admin/settings [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.settings.upsert"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummySetting
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("key", req.Key))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	setting := models.PlatformSetting{
		Key:   req.Key,
		Value: req.Value,
	}
	if req.Description != "" {
		setting.Description = &req.Description
	}

	if err := h.service.UpsertSetting(r.Context(), setting); err != nil {
		log.Error("failed to upsert setting", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not save setting"))
		return
	}

	log.Info("success to upsert setting", slog.String("key", req.Key))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"key": req.Key,
	}))
}
