package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hirely.app/api/internal/http/dto"
	"hirely.app/api/internal/service"
)

// ProfileHandler serves the job seeker's own profile.
type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}

	user, err := h.profileService.Get(c.Request.Context(), p.ID)
	if err != nil {
		respondError(c, err, "getting profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(user))
}

func (h *ProfileHandler) Update(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.profileService.Update(c.Request.Context(), p.ID, service.ProfilePatch{
		Name:      req.Name,
		Headline:  req.Headline,
		Location:  req.Location,
		Bio:       req.Bio,
		Skills:    req.Skills,
		ResumeURL: req.ResumeURL,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		respondError(c, err, "updating profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(user))
}
