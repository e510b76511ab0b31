package handler_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"hirely.app/api/internal/http/handler"
	"hirely.app/api/internal/model"
	"hirely.app/api/internal/service"
)

func multipartRequest(fields map[string]string, file []byte) *http.Request {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		Expect(mw.WriteField(k, v)).To(Succeed())
	}
	if file != nil {
		part, err := mw.CreateFormFile("file", "logo.png")
		Expect(err).NotTo(HaveOccurred())
		_, err = part.Write(file)
		Expect(err).NotTo(HaveOccurred())
	}
	Expect(mw.Close()).To(Succeed())

	req := httptest.NewRequest(http.MethodPost, "/uploads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

var _ = Describe("UploadHandler", func() {
	var (
		router *gin.Engine
		svc    *mockUploadService
	)

	BeforeEach(func() {
		router = newRouter()
		svc = &mockUploadService{}
		router.POST("/uploads", as(companyPrincipal), handler.NewUploadHandler(svc).Upload)
	})

	It("hands the file and kind to the service", func() {
		svc.uploadFn = func(_ context.Context, p model.Principal, kind service.UploadKind, r io.Reader) (*service.UploadResult, error) {
			Expect(p.ID).To(Equal(companyPrincipal.ID))
			Expect(kind).To(Equal(service.UploadLogo))
			data, err := io.ReadAll(r)
			Expect(err).NotTo(HaveOccurred())
			Expect(data).To(Equal([]byte("png-bytes")))
			return &service.UploadResult{URL: "https://cdn.example.com/uploads/logo/x.png", Key: "logo/x.png", ContentType: "image/png", Size: 9}, nil
		}

		w := serve(router, multipartRequest(map[string]string{"kind": "logo"}, []byte("png-bytes")))

		Expect(w.Code).To(Equal(http.StatusOK))
		resp := decode(w)
		Expect(resp["url"]).To(Equal("https://cdn.example.com/uploads/logo/x.png"))
		Expect(resp["contentType"]).To(Equal("image/png"))
	})

	It("requires a file field", func() {
		w := serve(router, multipartRequest(map[string]string{"kind": "logo"}, nil))

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(decode(w)["field"]).To(Equal("file"))
	})

	It("rejects an oversized body as a validation error", func() {
		big := bytes.Repeat([]byte{0}, service.MaxUploadBytes+128<<10)

		w := serve(router, multipartRequest(nil, big))

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 503 when storage is off", func() {
		svc.uploadFn = func(context.Context, model.Principal, service.UploadKind, io.Reader) (*service.UploadResult, error) {
			return nil, service.ErrNotConfigured
		}

		w := serve(router, multipartRequest(nil, []byte("png-bytes")))

		Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
	})
})
