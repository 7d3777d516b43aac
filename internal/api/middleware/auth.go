package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/cst-sportspot/booking-service/internal/api/handlers"
	"github.com/cst-sportspot/booking-service/internal/domain"
	"github.com/cst-sportspot/booking-service/pkg/authtoken"
)

type contextKey string

const actorKey contextKey = "actor"

const (
	msgMissingToken = "authorization token is required"
	msgInvalidToken = "invalid or expired token"
	msgAdminOnly    = "admin access required"
)

// TokenVerifier интерфейс проверки токена доступа
type TokenVerifier interface {
	Verify(token string) (*authtoken.Claims, error)
}

// UserResolver интерфейс загрузки актора запроса
type UserResolver interface {
	GetDomainByID(ctx context.Context, id int64) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth middleware аутентификации по Bearer токену.
// Проверяет подпись токена и загружает пользователя из хранилища -
// удалённый или изменённый аккаунт отклоняется даже с валидным токеном.
type Auth struct {
	verifier TokenVerifier
	users    UserResolver
	logger   Logger
}

// NewAuth создает middleware аутентификации
func NewAuth(verifier TokenVerifier, users UserResolver, logger Logger) *Auth {
	return &Auth{
		verifier: verifier,
		users:    users,
		logger:   logger,
	}
}

// Require отклоняет запросы без валидного токена
func (a *Auth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		claims, err := a.verifier.Verify(token)
		if err != nil {
			a.logger.Warn("auth: token verification failed: %v", err)
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		actor, err := a.users.GetDomainByID(r.Context(), claims.UserID)
		if err != nil {
			a.logger.Warn("auth: failed to resolve user id=%d: %v", claims.UserID, err)
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

// RequireAdmin отклоняет запросы не-администраторов.
// Используется после Require.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}
		if !actor.IsAdmin() {
			a.logger.Warn("auth: user id=%d is not an admin", actor.ID)
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithActor кладет актора запроса в контекст
func WithActor(ctx context.Context, u *domain.User) context.Context {
	return context.WithValue(ctx, actorKey, u)
}

// ActorFromContext извлекает актора запроса из контекста
func ActorFromContext(ctx context.Context) (*domain.User, bool) {
	u, ok := ctx.Value(actorKey).(*domain.User)
	return u, ok
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
