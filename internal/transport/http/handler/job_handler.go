package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-job-board/internal/domain"
	resp "go-job-board/internal/transport/http/response"
)

type JobHandler struct {
	jobs domain.JobRepository
	log  *zap.Logger
}

func NewJobHandler(jobs domain.JobRepository, log *zap.Logger) *JobHandler {
	return &JobHandler{jobs: jobs, log: log}
}

func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobs.List(c.Request.Context())
	if err != nil {
		h.log.Error("list jobs", zap.Error(err))
		resp.Error(c, http.StatusInternalServerError, "could not list jobs")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) Create(c *gin.Context) {
	var in createJobPayload
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if msgs := validatePayload(&in); len(msgs) > 0 {
		resp.Error(c, http.StatusBadRequest, strings.Join(msgs, "; "))
		return
	}

	job := domain.Job{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Type:        in.Type,
		Description: in.Description,
		Company: domain.Company{
			Name:         in.Company.Name,
			ContactEmail: in.Company.ContactEmail,
			ContactPhone: in.Company.ContactPhone,
		},
		Location:   in.Location,
		Salary:     *in.Salary,
		PostedDate: time.Now().UTC(),
		Status:     domain.JobStatusOpen,
	}
	if in.PostedDate != nil && !in.PostedDate.IsZero() {
		job.PostedDate = in.PostedDate.Time
	}
	if in.Status != "" {
		job.Status = in.Status
	}

	if err := h.jobs.Create(c.Request.Context(), &job); err != nil {
		h.log.Error("create job", zap.Error(err))
		resp.Error(c, http.StatusInternalServerError, "could not create job")
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if !validID(id) {
		resp.Error(c, http.StatusBadRequest, "invalid job id")
		return
	}
	job, err := h.jobs.FindByID(c.Request.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		resp.Error(c, http.StatusNotFound, "job not found")
		return
	}
	if err != nil {
		h.log.Error("get job", zap.String("id", id), zap.Error(err))
		resp.Error(c, http.StatusInternalServerError, "could not fetch job")
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if !validID(id) {
		resp.Error(c, http.StatusBadRequest, "invalid job id")
		return
	}
	var in updateJobPayload
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if msgs := validatePayload(&in); len(msgs) > 0 {
		resp.Error(c, http.StatusBadRequest, strings.Join(msgs, "; "))
		return
	}

	job, err := h.jobs.FindByID(c.Request.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		resp.Error(c, http.StatusNotFound, "job not found")
		return
	}
	if err != nil {
		h.log.Error("load job for update", zap.String("id", id), zap.Error(err))
		resp.Error(c, http.StatusInternalServerError, "could not update job")
		return
	}

	applyJobUpdate(job, &in)

	if err := h.jobs.Update(c.Request.Context(), job); err != nil {
		h.log.Error("update job", zap.String("id", id), zap.Error(err))
		resp.Error(c, http.StatusInternalServerError, "could not update job")
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !validID(id) {
		resp.Error(c, http.StatusBadRequest, "invalid job id")
		return
	}
	err := h.jobs.Delete(c.Request.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		resp.Error(c, http.StatusNotFound, "job not found")
		return
	}
	if err != nil {
		h.log.Error("delete job", zap.String("id", id), zap.Error(err))
		resp.Error(c, http.StatusInternalServerError, "could not delete job")
		return
	}
	c.Status(http.StatusNoContent)
}

// applyJobUpdate merges only the supplied fields into the stored record.
func applyJobUpdate(job *domain.Job, in *updateJobPayload) {
	if in.Title != nil {
		job.Title = *in.Title
	}
	if in.Type != nil {
		job.Type = *in.Type
	}
	if in.Description != nil {
		job.Description = *in.Description
	}
	if in.Company != nil {
		if in.Company.Name != nil {
			job.Company.Name = *in.Company.Name
		}
		if in.Company.ContactEmail != nil {
			job.Company.ContactEmail = *in.Company.ContactEmail
		}
		if in.Company.ContactPhone != nil {
			job.Company.ContactPhone = *in.Company.ContactPhone
		}
	}
	if in.Location != nil {
		job.Location = *in.Location
	}
	if in.Salary != nil {
		job.Salary = *in.Salary
	}
	if in.PostedDate != nil && !in.PostedDate.IsZero() {
		job.PostedDate = in.PostedDate.Time
	}
	if in.Status != nil {
		job.Status = *in.Status
	}
}

// validID reports whether the path segment is a store-generated identifier.
// Anything that is not a UUID cannot match a record and is a 400, not a 404.
func validID(id string) bool {
	return uuid.Validate(id) == nil
}
