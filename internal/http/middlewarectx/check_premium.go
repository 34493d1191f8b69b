package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/magabrotheeeer/mooring-directory/internal/lib/sl"
	"github.com/magabrotheeeer/mooring-directory/internal/models"
)

// EntitlementService описывает интерфейс для определения статуса подписки пользователя.
type EntitlementService interface {
	Status(ctx context.Context, userUID string) (*models.UserInfo, bool, error)
}

// PremiumStatusMiddleware создает middleware, определяющий признак действующей
// premium-подписки для текущего запроса.
//
// Статус вычисляется на момент запроса, а не берётся из токена: истёкшая
// подписка перестаёт давать premium-доступ без повторного входа. Анонимные
// запросы и ошибки определения статуса обрабатываются как free.
func PremiumStatusMiddleware(log *slog.Logger, entitlements EntitlementService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			premium := false

			userUID, ok := r.Context().Value(UserUID).(string)
			if ok && userUID != "" {
				_, isPremium, err := entitlements.Status(r.Context(), userUID)
				if err != nil {
					log.Error("failed to get subscription status", sl.Err(err))
				} else {
					premium = isPremium
				}
			}

			ctx := context.WithValue(r.Context(), Premium, premium)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
