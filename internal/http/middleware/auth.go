package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"hirely.app/api/common/logger"
	"hirely.app/api/internal/model"
	"hirely.app/api/internal/service"
)

type contextKey string

const (
	SessionCookieName              = "hirely_session"
	principalContextKey contextKey = "principal"
)

// RequireAuth resolves the session token into a principal. Accounts without a
// role pass; RequireRole rejects them on role-gated routes.
func RequireAuth(authService service.AuthService, secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token := SessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated", "code": "unauthenticated"})
			return
		}

		principal, err := authService.Resolve(ctx, token)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUnauthenticated):
				ClearSessionCookie(c, secureCookie)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired", "code": "unauthenticated"})
			case errors.Is(err, service.ErrAccountNotFound):
				ClearSessionCookie(c, secureCookie)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "account not found", "code": "account_not_found"})
			default:
				slog.ErrorContext(ctx, "failed to resolve session", "error", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to validate session"})
			}
			return
		}

		ctx = WithPrincipal(ctx, principal)
		fields := logger.LogFields{PrincipalID: logger.Ptr(principal.AccountID)}
		if principal.Role != "" {
			fields.PrincipalID = logger.Ptr(principal.ID)
			fields.PrincipalRole = logger.Ptr(string(principal.Role))
		}
		c.Request = c.Request.WithContext(logger.WithLogFields(ctx, fields))

		c.Next()
	}
}

// RequireRole must run after RequireAuth. With no roles it only requires that
// some role has been chosen.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := GetPrincipal(c.Request.Context())
		if p == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated", "code": "unauthenticated"})
			return
		}
		if p.Role == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "select a role first", "code": "role_required"})
			return
		}
		if len(roles) > 0 && !slices.Contains(roles, p.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden", "code": "forbidden"})
			return
		}
		c.Next()
	}
}

func WithPrincipal(ctx context.Context, p *model.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

func GetPrincipal(ctx context.Context) *model.Principal {
	p, _ := ctx.Value(principalContextKey).(*model.Principal)
	return p
}

// SessionToken reads the session cookie, falling back to a bearer token for
// non-browser clients.
func SessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if scheme, token, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}
	return ""
}

func SetSessionCookie(c *gin.Context, token string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, maxAge, "/", "", secure, true)
}

func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}
