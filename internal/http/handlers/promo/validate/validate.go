// Package validate реализует HTTP-обработчик проверки промокода.
//
// Обработчик проверяет применимость промокода к годовой premium-подписке
// и возвращает расчёт цены со скидкой. Счётчик использований при проверке
// не изменяется — погашение происходит только при оформлении подписки.
package validate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/mooring-directory/internal/http/response"
	"github.com/magabrotheeeer/mooring-directory/internal/lib/sl"
	"github.com/magabrotheeeer/mooring-directory/internal/models"
	"github.com/magabrotheeeer/mooring-directory/internal/services"
)

// Request — структура входных данных для проверки промокода.
type Request struct {
	Code string `json:"code" validate:"required,alphanum"`
}

// Handler обрабатывает запросы на проверку промокода.
type Handler struct {
	log      *slog.Logger
	service  Service
	pricing  Pricing
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики проверки промокода.
type Service interface {
	Validate(ctx context.Context, code string, now time.Time) (*models.PromoCode, error)
}

// Pricing описывает интерфейс расчёта цены подписки с учётом промокода.
type Pricing interface {
	QuoteFor(ctx context.Context, promo *models.PromoCode) services.Quote
}

// New создает новый Handler с переданными логгером и сервисами.
func New(log *slog.Logger, service Service, pricing Pricing) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		pricing:  pricing,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Проверить промокод
// @Description Проверяет применимость промокода и возвращает расчёт цены подписки со скидкой.
// @Tags Promo
// @Accept  json
// @Produce  json
// @Param request body Request true "Промокод"
// @Success 200 {object} map[string]any "Расчёт цены со скидкой"
// @Failure 400 {object} response.ErrorResponse "Промокод не применим"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /promocodes/validate [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.promo.validate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("code", req.Code))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	promo, err := h.service.Validate(r.Context(), req.Code, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPromoNotFound),
			errors.Is(err, services.ErrPromoInactive),
			errors.Is(err, services.ErrPromoExpired),
			errors.Is(err, services.ErrPromoUsageLimitReached):
			log.Error("promo code rejected", slog.String("code", req.Code), sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		default:
			log.Error("failed to validate promo code", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not validate promo code"))
			return
		}
	}

	quote := h.pricing.QuoteFor(r.Context(), promo)

	log.Info("promo code accepted", slog.String("code", promo.Code))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"code":  promo.Code,
		"quote": quote,
	}))
}
