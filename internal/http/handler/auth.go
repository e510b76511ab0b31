package handler

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hirely.app/api/internal/http/dto"
	"hirely.app/api/internal/http/middleware"
	"hirely.app/api/internal/service"
)

const (
	stateCookieName   = "hirely_oauth_state"
	stateCookieMaxAge = 600
)

type AuthHandler struct {
	authService  service.AuthService
	sessionTTL   time.Duration
	secureCookie bool
}

func NewAuthHandler(authService service.AuthService, sessionTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		sessionTTL:   sessionTTL,
		secureCookie: secureCookie,
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.authService.Signup(c.Request.Context(), service.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		respondError(c, err, "signup")
		return
	}

	slog.InfoContext(c.Request.Context(), "account created", "account_id", result.Principal.AccountID)
	h.issueSession(c, http.StatusCreated, result)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "login")
		return
	}
	h.issueSession(c, http.StatusOK, result)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if token := middleware.SessionToken(c); token != "" {
		if err := h.authService.Logout(ctx, token); err != nil {
			slog.WarnContext(ctx, "failed to delete session", "error", err)
		}
	}

	middleware.ClearSessionCookie(c, h.secureCookie)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}

	account, err := h.authService.Account(c.Request.Context(), p)
	if err != nil {
		respondError(c, err, "loading account")
		return
	}

	c.JSON(http.StatusOK, dto.MeResponse{
		Principal:     dto.ToPrincipalResponse(p),
		CanChangeRole: account.CanChangeRole(),
	})
}

func (h *AuthHandler) SelectRole(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req dto.SelectRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	updated, err := h.authService.SelectRole(c.Request.Context(), p, req.Role)
	if err != nil {
		respondError(c, err, "selecting role")
		return
	}

	slog.InfoContext(c.Request.Context(), "role selected", "account_id", updated.AccountID, "role", updated.Role)
	c.JSON(http.StatusOK, dto.ToPrincipalResponse(*updated))
}

// SSOURL returns the hosted sign-in URL. The state is echoed in a cookie so
// Exchange can check it came back unchanged.
func (h *AuthHandler) SSOURL(c *gin.Context) {
	state, err := generateState()
	if err != nil {
		respondError(c, err, "generating oauth state")
		return
	}

	authURL, err := h.authService.GetAuthorizationURL(state)
	if err != nil {
		respondError(c, err, "building authorization url")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, state, stateCookieMaxAge, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, dto.AuthURLResponse{AuthorizationURL: authURL, State: state})
}

func (h *AuthHandler) SSOExchange(c *gin.Context) {
	var req dto.ExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if stored, err := c.Cookie(stateCookieName); err == nil && stored != req.State {
		slog.WarnContext(c.Request.Context(), "oauth state mismatch")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid state", "code": "invalid_state"})
		return
	}
	c.SetCookie(stateCookieName, "", -1, "/", "", h.secureCookie, true)

	result, err := h.authService.HandleCallback(c.Request.Context(), req.Code)
	if err != nil {
		respondError(c, err, "exchanging sso code")
		return
	}
	h.issueSession(c, http.StatusOK, result)
}

// issueSession sets the cookie for browsers and returns the token for
// everything else.
func (h *AuthHandler) issueSession(c *gin.Context, status int, result *service.AuthResult) {
	middleware.SetSessionCookie(c, result.Token, int(h.sessionTTL.Seconds()), h.secureCookie)
	c.JSON(status, dto.SessionResponse{
		Principal: dto.ToPrincipalResponse(result.Principal),
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
	})
}

func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
