package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/you/jobsvc/domain"
)

// JobHandlers handles job HTTP requests
type JobHandlers struct {
	jobSvc domain.JobService
}

// NewJobHandlers creates new job handlers
func NewJobHandlers(jobSvc domain.JobService) *JobHandlers {
	registerValidators()
	return &JobHandlers{jobSvc: jobSvc}
}

// AddJobRequest represents a new job posting
type AddJobRequest struct {
	JobTitle        string   `json:"jobTitle" binding:"required,min=3,max=100"`
	JobLocation     string   `json:"jobLocation" binding:"required,oneof=onsite remotely hybrid"`
	WorkingTime     string   `json:"workingTime" binding:"required,oneof=part-time full-time"`
	SeniorityLevel  string   `json:"seniorityLevel" binding:"required,oneof=Junior Mid-Level Senior Team-Lead CTO"`
	JobDescription  string   `json:"jobDescription" binding:"required,min=10,max=1000"`
	TechnicalSkills []string `json:"technicalSkills" binding:"required,dive,min=1"`
	SoftSkills      []string `json:"softSkills" binding:"required,dive,min=1"`
}

// UpdateJobRequest represents a partial job update
type UpdateJobRequest struct {
	JobTitle        *string  `json:"jobTitle" binding:"omitempty,min=3,max=100"`
	JobLocation     *string  `json:"jobLocation" binding:"omitempty,oneof=onsite remotely hybrid"`
	WorkingTime     *string  `json:"workingTime" binding:"omitempty,oneof=part-time full-time"`
	SeniorityLevel  *string  `json:"seniorityLevel" binding:"omitempty,oneof=Junior Mid-Level Senior Team-Lead CTO"`
	JobDescription  *string  `json:"jobDescription" binding:"omitempty,min=10,max=1000"`
	TechnicalSkills []string `json:"technicalSkills" binding:"omitempty,dive,min=1"`
	SoftSkills      []string `json:"softSkills" binding:"omitempty,dive,min=1"`
}

// FilterJobsQuery selects jobs; technicalSkills is comma separated.
type FilterJobsQuery struct {
	WorkingTime     string `form:"workingTime" binding:"omitempty,oneof=part-time full-time"`
	JobLocation     string `form:"jobLocation" binding:"omitempty,oneof=onsite remotely hybrid"`
	SeniorityLevel  string `form:"seniorityLevel" binding:"omitempty,oneof=Junior Mid-Level Senior Team-Lead CTO"`
	JobTitle        string `form:"jobTitle" binding:"omitempty,min=3,max=100"`
	TechnicalSkills string `form:"technicalSkills"`
}

// ApplyRequest represents an application to a job
type ApplyRequest struct {
	UserTechSkills []string `json:"userTechSkills" binding:"required,min=1,dive,min=1"`
	UserSoftSkills []string `json:"userSoftSkills" binding:"required,min=1,dive,min=1"`
	UserResume     string   `json:"userResume" binding:"required"`
}

type companyJobsQuery struct {
	CompanyName string `form:"companyName" binding:"required"`
}

// Add creates a job for the caller's company
func (h *JobHandlers) Add(c *gin.Context) {
	p, ok := actor(c)
	if !ok {
		return
	}
	var req AddJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, bindErr(err))
		return
	}

	job, err := h.jobSvc.Create(c.Request.Context(), p, domain.JobInput{
		Title:           req.JobTitle,
		Location:        domain.JobLocation(req.JobLocation),
		WorkingTime:     domain.WorkingTime(req.WorkingTime),
		SeniorityLevel:  domain.SeniorityLevel(req.SeniorityLevel),
		Description:     req.JobDescription,
		TechnicalSkills: req.TechnicalSkills,
		SoftSkills:      req.SoftSkills,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Job added successfully",
		"job":     newJobResponse(job),
	})
}

// Update changes a job of the caller's company
func (h *JobHandlers) Update(c *gin.Context) {
	p, ok := actor(c)
	if !ok {
		return
	}
	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, bindErr(err))
		return
	}

	in := domain.JobUpdate{
		Title:           req.JobTitle,
		Description:     req.JobDescription,
		TechnicalSkills: req.TechnicalSkills,
		SoftSkills:      req.SoftSkills,
	}
	if req.JobLocation != nil {
		v := domain.JobLocation(*req.JobLocation)
		in.Location = &v
	}
	if req.WorkingTime != nil {
		v := domain.WorkingTime(*req.WorkingTime)
		in.WorkingTime = &v
	}
	if req.SeniorityLevel != nil {
		v := domain.SeniorityLevel(*req.SeniorityLevel)
		in.SeniorityLevel = &v
	}

	job, err := h.jobSvc.Update(c.Request.Context(), p, c.Param("jobId"), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Job updated successfully",
		"job":     newJobResponse(job),
	})
}

// Delete removes a job of the caller's company with its applications
func (h *JobHandlers) Delete(c *gin.Context) {
	p, ok := actor(c)
	if !ok {
		return
	}
	if err := h.jobSvc.Delete(c.Request.Context(), p, c.Param("jobId")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

// List returns every job with its company
func (h *JobHandlers) List(c *gin.Context) {
	jobs, err := h.jobSvc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respondJobs(c, jobs)
}

// ListForCompany returns the jobs of the named company
func (h *JobHandlers) ListForCompany(c *gin.Context) {
	var q companyJobsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		fail(c, bindErr(err))
		return
	}
	jobs, err := h.jobSvc.ListForCompanyName(c.Request.Context(), q.CompanyName)
	if err != nil {
		fail(c, err)
		return
	}
	respondJobs(c, jobs)
}

// Filter returns the jobs matching every given criterion
func (h *JobHandlers) Filter(c *gin.Context) {
	var q FilterJobsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		fail(c, bindErr(err))
		return
	}

	jobs, err := h.jobSvc.Filter(c.Request.Context(), domain.JobFilter{
		WorkingTime:     domain.WorkingTime(q.WorkingTime),
		Location:        domain.JobLocation(q.JobLocation),
		SeniorityLevel:  domain.SeniorityLevel(q.SeniorityLevel),
		TitleContains:   q.JobTitle,
		TechnicalSkills: splitList(q.TechnicalSkills),
	})
	if err != nil {
		fail(c, err)
		return
	}
	respondJobs(c, jobs)
}

// Apply submits the caller's application to a job
func (h *JobHandlers) Apply(c *gin.Context) {
	p, ok := actor(c)
	if !ok {
		return
	}
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, bindErr(err))
		return
	}

	application, err := h.jobSvc.Apply(c.Request.Context(), p, c.Param("jobId"), domain.ApplicationInput{
		TechnicalSkills: req.UserTechSkills,
		SoftSkills:      req.UserSoftSkills,
		Resume:          req.UserResume,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Application submitted successfully",
		"application": newApplicationResponse(application),
	})
}

func respondJobs(c *gin.Context, jobs []*domain.Job) {
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Number of jobs fetched: %d", len(jobs)),
		"jobs":    newJobResponses(jobs),
	})
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
