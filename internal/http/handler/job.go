package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"hirely.app/api/internal/http/dto"
	"hirely.app/api/internal/service"
)

type JobHandler struct {
	jobService service.JobService
}

func NewJobHandler(jobService service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

func (h *JobHandler) List(c *gin.Context) {
	var q dto.ListJobsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	jobs, err := h.jobService.List(c.Request.Context(), q.Filter())
	if err != nil {
		respondError(c, err, "listing jobs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": dto.ToJobResponses(jobs)})
}

func (h *JobHandler) Get(c *gin.Context) {
	jobID, ok := pathID(c, "id")
	if !ok {
		return
	}

	job, err := h.jobService.Get(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, err, "getting job")
		return
	}
	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

func (h *JobHandler) ListMine(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.ListForCompany(c.Request.Context(), p.ID)
	if err != nil {
		respondError(c, err, "listing company jobs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": dto.ToJobResponses(jobs)})
}

func (h *JobHandler) Create(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), p.ID, service.JobInput{
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		Remote:         req.Remote,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		Status:         req.Status,
	})
	if err != nil {
		respondError(c, err, "creating job")
		return
	}

	slog.InfoContext(c.Request.Context(), "job created", "job_id", job.ID, "status", job.Status)
	c.JSON(http.StatusCreated, dto.ToJobResponse(job))
}

func (h *JobHandler) Update(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}
	jobID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	job, err := h.jobService.Update(c.Request.Context(), p.ID, jobID, service.JobPatch{
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		Remote:         req.Remote,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		Status:         req.Status,
	})
	if err != nil {
		respondError(c, err, "updating job")
		return
	}
	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

func (h *JobHandler) Delete(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		return
	}
	jobID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.jobService.Delete(c.Request.Context(), p.ID, jobID); err != nil {
		respondError(c, err, "deleting job")
		return
	}
	c.Status(http.StatusNoContent)
}
