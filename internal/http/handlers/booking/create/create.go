// Package create реализует HTTP-обработчик создания бронирования причального места.
//
// Бронирование доступно только пользователям с действующей premium-подпиской;
// статус перепроверяется сервисом в момент вызова.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/mooring-directory/internal/http/middlewarectx"
	"github.com/magabrotheeeer/mooring-directory/internal/http/response"
	"github.com/magabrotheeeer/mooring-directory/internal/lib/sl"
	"github.com/magabrotheeeer/mooring-directory/internal/models"
	"github.com/magabrotheeeer/mooring-directory/internal/services"
)

// Handler обрабатывает запросы на создание бронирования.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики бронирования.
type Service interface {
	Create(ctx context.Context, userUID string, req models.DummyBooking) (int, error)
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
// @Summary Создать бронирование
// @Description Создает бронирование причального места. Доступно только premium-пользователям.
// @Tags Bookings
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyBooking true "Данные бронирования"
// @Success 200 {object} map[string]any "Успешное создание бронирования"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или даты"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Требуется premium-подписка"
// @Failure 404 {object} response.ErrorResponse "Причал не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /bookings [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.booking.create"

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

	var req models.DummyBooking
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Int("location_id", req.MooringLocationID))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	id, err := h.service.Create(r.Context(), userUID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPremiumRequired):
			log.Error("premium required for booking", slog.String("uid", userUID))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error(err.Error()))
			return
		case errors.Is(err, services.ErrLocationNotFound):
			log.Error("location not found", slog.Int("location_id", req.MooringLocationID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(err.Error()))
			return
		case errors.Is(err, services.ErrInvalidDates):
			log.Error("invalid booking dates")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		default:
			log.Error("failed to create booking", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not create booking"))
			return
		}
	}

	log.Info("success to create booking", slog.Int("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id": id,
	}))
}
