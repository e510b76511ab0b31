package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hirely.app/api/internal/http/dto"
	"hirely.app/api/internal/service"
)

type InterviewHandler struct {
	interviewService service.InterviewService
}

func NewInterviewHandler(interviewService service.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviewService: interviewService}
}

// List takes ?upcoming=true to drop past and cancelled interviews.
func (h *InterviewHandler) List(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}
	upcoming, _ := strconv.ParseBool(c.Query("upcoming"))

	list, err := h.interviewService.ListForCompany(c.Request.Context(), p.ID, upcoming)
	if err != nil {
		respondError(c, err, "listing interviews")
		return
	}
	c.JSON(http.StatusOK, gin.H{"interviews": dto.ToInterviewResponses(list)})
}

func (h *InterviewHandler) Create(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req dto.CreateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	interview, err := h.interviewService.Create(c.Request.Context(), p.ID, service.InterviewInput{
		ApplicantID:     req.ApplicantID,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		Type:            req.Type,
		Location:        req.Location,
		Notes:           req.Notes,
	})
	if err != nil {
		respondError(c, err, "scheduling interview")
		return
	}
	c.JSON(http.StatusCreated, dto.ToInterviewResponse(interview))
}

func (h *InterviewHandler) Update(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}
	interviewID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	interview, err := h.interviewService.Update(c.Request.Context(), p.ID, interviewID, service.InterviewPatch{
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		Type:            req.Type,
		Location:        req.Location,
		Notes:           req.Notes,
		Status:          req.Status,
	})
	if err != nil {
		respondError(c, err, "updating interview")
		return
	}
	c.JSON(http.StatusOK, dto.ToInterviewResponse(interview))
}

func (h *InterviewHandler) Cancel(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}
	interviewID, ok := pathID(c, "id")
	if !ok {
		return
	}

	interview, err := h.interviewService.Cancel(c.Request.Context(), p.ID, interviewID)
	if err != nil {
		respondError(c, err, "cancelling interview")
		return
	}
	c.JSON(http.StatusOK, dto.ToInterviewResponse(interview))
}

func (h *InterviewHandler) Delete(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}
	interviewID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.interviewService.Delete(c.Request.Context(), p.ID, interviewID); err != nil {
		respondError(c, err, "deleting interview")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InterviewHandler) ListMine(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}

	list, err := h.interviewService.ListForUser(c.Request.Context(), p.ID)
	if err != nil {
		respondError(c, err, "listing my interviews")
		return
	}
	c.JSON(http.StatusOK, gin.H{"interviews": dto.ToInterviewResponses(list)})
}
