package middleware

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dukerupert/tradeline/internal/telemetry"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// UserContextKey is the context key for storing the authenticated user
	UserContextKey contextKey = "user"
)

// AuthUser is the caller identified by a verified Supabase access token.
type AuthUser struct {
	ID    uuid.UUID
	Email string
	Role  string
}

// SupabaseClaims are the claims Supabase puts in its HS256 access tokens.
type SupabaseClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// RequireUser verifies the bearer token on the request and stores the
// caller in the context. Missing, malformed, expired or wrongly signed
// tokens get 401.
func RequireUser(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				respondUnauthorized(w, r, "Missing authorization header")
				return
			}

			user, err := parseUserToken(raw, secret)
			if err != nil {
				GetLogger(r.Context()).Debug("rejected access token", "error", err)
				respondUnauthorized(w, r, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, user)
			ctx = WithLogger(ctx, GetLogger(ctx).With(slog.String("user_id", user.ID.String())))
			telemetry.SetRequestUser(ctx, user.ID.String())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseUserToken(raw string, secret []byte) (*AuthUser, error) {
	claims := &SupabaseClaims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (interface{}, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(30*time.Second),
	)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, jwt.ErrTokenInvalidSubject
	}

	return &AuthUser{ID: id, Email: claims.Email, Role: claims.Role}, nil
}

// RequireCronSecret guards the /jobs endpoints with a shared bearer secret.
// An empty configured secret rejects every request.
func RequireCronSecret(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok || secret == "" || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
				respondUnauthorized(w, r, "Invalid cron secret")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// GetUserFromContext retrieves the user from the request context
// Returns nil if no user is authenticated
func GetUserFromContext(ctx context.Context) *AuthUser {
	user, ok := ctx.Value(UserContextKey).(*AuthUser)
	if !ok {
		return nil
	}
	return user
}
