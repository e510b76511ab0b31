package handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"hirely.app/api/internal/http/handler"
	"hirely.app/api/internal/model"
	"hirely.app/api/internal/service"
)

var _ = Describe("error mapping", func() {
	DescribeTable("service errors become statuses",
		func(err error, status int, code string) {
			svc := &mockProfileService{
				getFn: func(context.Context, int64) (*model.User, error) {
					return nil, err
				},
			}
			router := newRouter()
			router.GET("/me/profile", as(userPrincipal), handler.NewProfileHandler(svc).Get)

			w := perform(router, http.MethodGet, "/me/profile", nil)

			Expect(w.Code).To(Equal(status))
			if code != "" {
				Expect(decode(w)["code"]).To(Equal(code))
			}
		},
		Entry("unauthenticated", service.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"),
		Entry("account not found", service.ErrAccountNotFound, http.StatusUnauthorized, "account_not_found"),
		Entry("forbidden", service.ErrForbidden, http.StatusForbidden, "forbidden"),
		Entry("not found", service.ErrNotFound, http.StatusNotFound, "not_found"),
		Entry("wrapped not found", fmt.Errorf("loading: %w", service.ErrNotFound), http.StatusNotFound, "not_found"),
		Entry("validation", &service.ValidationError{Field: "name", Message: "is required"}, http.StatusBadRequest, "validation"),
		Entry("conflict", service.ErrConflict, http.StatusConflict, "conflict"),
		Entry("not configured", service.ErrNotConfigured, http.StatusServiceUnavailable, "not_configured"),
		Entry("anything else", errors.New("boom"), http.StatusInternalServerError, ""),
	)

	It("answers 401 when no principal reached the handler", func() {
		router := newRouter()
		router.GET("/me/profile", handler.NewProfileHandler(&mockProfileService{}).Get)

		w := perform(router, http.MethodGet, "/me/profile", nil)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})
})
