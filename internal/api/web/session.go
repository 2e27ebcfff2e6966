package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	cookieName = "rodnan_session"
	issuer     = "rodnan"
)

// SessionTTL срок жизни cookie; столько же живёт простаивающий сеанс
const SessionTTL = 12 * time.Hour

type ctxKey struct{}

// SessionTokens подписывает идентификатор сеанса для cookie
type SessionTokens struct{ hmac []byte }

func NewSessionTokens(secret string) *SessionTokens {
	return &SessionTokens{hmac: []byte(secret)}
}

func (t *SessionTokens) Issue(sessionID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.hmac)
}

func (t *SessionTokens) Parse(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return t.hmac, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		return "", err
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", errors.New("invalid session token")
	}
	return claims.Subject, nil
}

// Middleware кладёт ID сеанса в контекст; без валидной cookie выдаёт новый ID.
// Сам сеанс создаётся только первым изменяющим запросом.
func (t *SessionTokens) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string
		if c, err := r.Cookie(cookieName); err == nil {
			sessionID, _ = t.Parse(c.Value)
		}

		if sessionID == "" {
			sessionID = "web:" + uuid.NewString()
			token, err := t.Issue(sessionID)
			if err != nil {
				http.Error(w, "issue session", http.StatusInternalServerError)
				return
			}
			http.SetCookie(w, &http.Cookie{
				Name:     cookieName,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
				MaxAge:   int(SessionTTL / time.Second),
			})
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, sessionID)))
	})
}

func sessionFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
