package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"hirely.app/api/internal/http/dto"
	"hirely.app/api/internal/service"
)

type ApplicantHandler struct {
	applicantService service.ApplicantService
}

func NewApplicantHandler(applicantService service.ApplicantService) *ApplicantHandler {
	return &ApplicantHandler{applicantService: applicantService}
}

// Apply is called by a job seeker on /jobs/:id/apply.
func (h *ApplicantHandler) Apply(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}
	jobID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ApplyRequest
	// An empty body is a valid application.
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
	}

	applicant, err := h.applicantService.Apply(c.Request.Context(), p.ID, jobID, service.ApplyInput{
		Source:      req.Source,
		CoverLetter: req.CoverLetter,
		ResumeURL:   req.ResumeURL,
	})
	if err != nil {
		respondError(c, err, "applying to job")
		return
	}

	slog.InfoContext(c.Request.Context(), "application submitted", "applicant_id", applicant.ID, "job_id", jobID)
	c.JSON(http.StatusCreated, dto.ToApplicantResponse(applicant))
}

func (h *ApplicantHandler) List(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var q dto.ListApplicantsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	list, err := h.applicantService.ListForCompany(c.Request.Context(), p.ID, q.Filter())
	if err != nil {
		respondError(c, err, "listing applicants")
		return
	}
	c.JSON(http.StatusOK, gin.H{"applicants": dto.ToApplicantResponses(list)})
}

func (h *ApplicantHandler) Get(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}
	applicantID, ok := pathID(c, "id")
	if !ok {
		return
	}

	applicant, err := h.applicantService.Get(c.Request.Context(), p.ID, applicantID)
	if err != nil {
		respondError(c, err, "getting applicant")
		return
	}
	c.JSON(http.StatusOK, dto.ToApplicantResponse(applicant))
}

func (h *ApplicantHandler) UpdateStatus(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}
	applicantID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicantStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	applicant, err := h.applicantService.UpdateStatus(c.Request.Context(), p.ID, applicantID, req.Status)
	if err != nil {
		respondError(c, err, "updating applicant status")
		return
	}
	c.JSON(http.StatusOK, dto.ToApplicantResponse(applicant))
}

// ListMine returns the job seeker's own applications.
func (h *ApplicantHandler) ListMine(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}

	list, err := h.applicantService.ListForUser(c.Request.Context(), p.ID)
	if err != nil {
		respondError(c, err, "listing applications")
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": dto.ToApplicantResponses(list)})
}
