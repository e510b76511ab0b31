package handler_test

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"hirely.app/api/internal/http/handler"
	"hirely.app/api/internal/http/middleware"
	"hirely.app/api/internal/model"
	"hirely.app/api/internal/service"
)

var _ = Describe("AuthHandler", func() {
	var (
		router *gin.Engine
		svc    *mockAuthService
	)

	BeforeEach(func() {
		router = newRouter()
		svc = &mockAuthService{}
		h := handler.NewAuthHandler(svc, 24*time.Hour, false)

		router.POST("/auth/signup", h.Signup)
		router.POST("/auth/login", h.Login)
		router.POST("/auth/logout", h.Logout)
		router.GET("/auth/sso/url", h.SSOURL)
		router.POST("/auth/sso/exchange", h.SSOExchange)

		authed := router.Group("/auth", as(model.Principal{AccountID: 3, Email: "new@example.com", Name: "New"}))
		authed.GET("/me", h.Me)
		authed.POST("/role", h.SelectRole)
	})

	issued := func(p model.Principal) *service.AuthResult {
		return &service.AuthResult{Principal: p, Token: "signed.jwt.token", ExpiresAt: time.Now().Add(time.Hour)}
	}

	Describe("Signup", func() {
		It("creates the account, sets the cookie and returns the token", func() {
			var got service.SignupInput
			svc.signupFn = func(_ context.Context, in service.SignupInput) (*service.AuthResult, error) {
				got = in
				return issued(companyPrincipal), nil
			}

			w := perform(router, http.MethodPost, "/auth/signup", map[string]any{
				"email": "acme@example.com", "password": "hunter2hunter2", "name": "Acme", "role": "company",
			})

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(got.Email).To(Equal("acme@example.com"))
			Expect(got.Role).NotTo(BeNil())
			Expect(*got.Role).To(Equal(model.RoleCompany))

			cookie := w.Header().Get("Set-Cookie")
			Expect(cookie).To(ContainSubstring(middleware.SessionCookieName + "=signed.jwt.token"))
			Expect(cookie).To(ContainSubstring("HttpOnly"))
			Expect(cookie).To(ContainSubstring("SameSite=Lax"))

			resp := decode(w)
			Expect(resp["token"]).To(Equal("signed.jwt.token"))
			principal := resp["principal"].(map[string]any)
			Expect(principal["id"]).To(Equal("10"))
			Expect(principal["role"]).To(Equal("company"))
		})

		It("rejects a short password before calling the service", func() {
			called := false
			svc.signupFn = func(context.Context, service.SignupInput) (*service.AuthResult, error) {
				called = true
				return nil, nil
			}

			w := perform(router, http.MethodPost, "/auth/signup", map[string]any{
				"email": "acme@example.com", "password": "short", "name": "Acme",
			})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(called).To(BeFalse())
		})

		It("returns 409 for a taken email", func() {
			svc.signupFn = func(context.Context, service.SignupInput) (*service.AuthResult, error) {
				return nil, service.ErrConflict
			}

			w := perform(router, http.MethodPost, "/auth/signup", map[string]any{
				"email": "acme@example.com", "password": "hunter2hunter2", "name": "Acme",
			})

			Expect(w.Code).To(Equal(http.StatusConflict))
		})
	})

	Describe("Login", func() {
		It("returns 401 with the unauthenticated code on bad credentials", func() {
			svc.loginFn = func(context.Context, string, string) (*service.AuthResult, error) {
				return nil, service.ErrUnauthenticated
			}

			w := perform(router, http.MethodPost, "/auth/login", map[string]any{
				"email": "acme@example.com", "password": "wrong-password",
			})

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(decode(w)["code"]).To(Equal("unauthenticated"))
			Expect(w.Header().Get("Set-Cookie")).To(BeEmpty())
		})
	})

	Describe("Logout", func() {
		It("deletes the session named by the bearer token and clears the cookie", func() {
			var deleted string
			svc.logoutFn = func(_ context.Context, token string) error {
				deleted = token
				return nil
			}

			req := newRequest(http.MethodPost, "/auth/logout")
			req.Header.Set("Authorization", "Bearer abc.def.ghi")
			w := serve(router, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(deleted).To(Equal("abc.def.ghi"))
			Expect(w.Header().Get("Set-Cookie")).To(ContainSubstring("Max-Age=0"))
		})
	})

	Describe("Me", func() {
		It("reports a role-less principal without an id", func() {
			svc.accountFn = func(context.Context, model.Principal) (*model.Account, error) {
				return &model.Account{ID: 3}, nil
			}

			w := perform(router, http.MethodGet, "/auth/me", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			resp := decode(w)
			Expect(resp["can_change_role"]).To(BeTrue())
			principal := resp["principal"].(map[string]any)
			Expect(principal).NotTo(HaveKey("id"))
			Expect(principal["account_id"]).To(Equal("3"))
		})
	})

	Describe("SelectRole", func() {
		It("returns 403 once the switch has been used", func() {
			svc.selectRoleFn = func(context.Context, model.Principal, model.Role) (*model.Principal, error) {
				return nil, service.ErrForbidden
			}

			w := perform(router, http.MethodPost, "/auth/role", map[string]any{"role": "user"})

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("rejects an unknown role", func() {
			w := perform(router, http.MethodPost, "/auth/role", map[string]any{"role": "admin"})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("SSO", func() {
		It("returns 503 when WorkOS is not configured", func() {
			svc.getAuthorizationURLFn = func(string) (string, error) {
				return "", service.ErrNotConfigured
			}

			w := perform(router, http.MethodGet, "/auth/sso/url", nil)

			Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
		})

		It("hands out the url and remembers the state", func() {
			svc.getAuthorizationURLFn = func(state string) (string, error) {
				return "https://auth.example.com/authorize?state=" + state, nil
			}

			w := perform(router, http.MethodGet, "/auth/sso/url", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			resp := decode(w)
			state := resp["state"].(string)
			Expect(state).NotTo(BeEmpty())
			Expect(resp["authorization_url"]).To(HaveSuffix(state))
			Expect(w.Header().Get("Set-Cookie")).To(ContainSubstring("hirely_oauth_state=" + state))
		})

		It("rejects an exchange whose state does not match the cookie", func() {
			req := newJSONRequest(http.MethodPost, "/auth/sso/exchange", `{"code":"c","state":"other"}`)
			req.AddCookie(&http.Cookie{Name: "hirely_oauth_state", Value: "expected"})
			w := serve(router, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["code"]).To(Equal("invalid_state"))
		})

		It("issues a session after a successful exchange", func() {
			svc.handleCallbackFn = func(_ context.Context, code string) (*service.AuthResult, error) {
				Expect(code).To(Equal("the-code"))
				return issued(userPrincipal), nil
			}

			req := newJSONRequest(http.MethodPost, "/auth/sso/exchange", `{"code":"the-code","state":"s1"}`)
			req.AddCookie(&http.Cookie{Name: "hirely_oauth_state", Value: "s1"})
			w := serve(router, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(strings.Join(w.Header().Values("Set-Cookie"), ";")).To(ContainSubstring(middleware.SessionCookieName + "="))
		})
	})
})
