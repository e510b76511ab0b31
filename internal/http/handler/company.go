package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hirely.app/api/internal/http/dto"
	"hirely.app/api/internal/service"
)

type CompanyHandler struct {
	companyService service.CompanyService
}

func NewCompanyHandler(companyService service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

func (h *CompanyHandler) GetProfile(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}

	company, err := h.companyService.Get(c.Request.Context(), p.ID)
	if err != nil {
		respondError(c, err, "getting company")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

func (h *CompanyHandler) UpdateProfile(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	company, err := h.companyService.Update(c.Request.Context(), p.ID, service.CompanyPatch{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
		Industry:    req.Industry,
		Size:        req.Size,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		respondError(c, err, "updating company")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// Public serves the careers page for a slug.
func (h *CompanyHandler) Public(c *gin.Context) {
	company, jobs, err := h.companyService.GetPublic(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "getting public company")
		return
	}
	c.JSON(http.StatusOK, dto.ToPublicCompanyResponse(company, jobs))
}
