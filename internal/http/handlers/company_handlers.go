package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/jobsvc/domain"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// CompanyHandlers handles company HTTP requests
type CompanyHandlers struct {
	companySvc domain.CompanyService
}

// NewCompanyHandlers creates new company handlers
func NewCompanyHandlers(companySvc domain.CompanyService) *CompanyHandlers {
	registerValidators()
	return &CompanyHandlers{companySvc: companySvc}
}

// AddCompanyRequest represents a new company
type AddCompanyRequest struct {
	CompanyName       string `json:"companyName" binding:"required,min=2,max=100"`
	Description       string `json:"description" binding:"required,min=3,max=1000"`
	Industry          string `json:"industry" binding:"required,max=100"`
	Address           string `json:"address" binding:"required,max=300"`
	NumberOfEmployees string `json:"numberOfEmployees" binding:"required,oneof=1-10 11-20 21-50 51-100 101-200 201-500 501-1000 1000+"`
	CompanyEmail      string `json:"companyEmail" binding:"required,email"`
}

// UpdateCompanyRequest represents a partial company update
type UpdateCompanyRequest struct {
	CompanyName       *string `json:"companyName" binding:"omitempty,min=2,max=100"`
	Description       *string `json:"description" binding:"omitempty,min=3,max=1000"`
	Industry          *string `json:"industry" binding:"omitempty,max=100"`
	Address           *string `json:"address" binding:"omitempty,max=300"`
	NumberOfEmployees *string `json:"numberOfEmployees" binding:"omitempty,oneof=1-10 11-20 21-50 51-100 101-200 201-500 501-1000 1000+"`
	CompanyEmail      *string `json:"companyEmail" binding:"omitempty,email"`
}

type companySearchQuery struct {
	CompanyName string `form:"companyName" binding:"required"`
}

type applicationsDayQuery struct {
	Date string `form:"date" binding:"required,isodate"`
}

// Add creates the caller's company
func (h *CompanyHandlers) Add(c *gin.Context) {
	p, ok := actor(c)
	if !ok {
		return
	}
	var req AddCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, bindErr(err))
		return
	}

	company, err := h.companySvc.Create(c.Request.Context(), p, domain.CompanyInput{
		Name:              req.CompanyName,
		Description:       req.Description,
		Industry:          req.Industry,
		Address:           req.Address,
		NumberOfEmployees: domain.EmployeeBand(req.NumberOfEmployees),
		Email:             req.CompanyEmail,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Company added successfully",
		"company": newCompanyResponse(company),
	})
}

// Update changes a company owned by the caller
func (h *CompanyHandlers) Update(c *gin.Context) {
	p, ok := actor(c)
	if !ok {
		return
	}
	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, bindErr(err))
		return
	}

	in := domain.CompanyUpdate{
		Name:        req.CompanyName,
		Description: req.Description,
		Industry:    req.Industry,
		Address:     req.Address,
		Email:       req.CompanyEmail,
	}
	if req.NumberOfEmployees != nil {
		band := domain.EmployeeBand(*req.NumberOfEmployees)
		in.NumberOfEmployees = &band
	}

	company, err := h.companySvc.Update(c.Request.Context(), p, c.Param("companyId"), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Company updated successfully",
		"company": newCompanyResponse(company),
	})
}

// Delete removes a company owned by the caller
func (h *CompanyHandlers) Delete(c *gin.Context) {
	p, ok := actor(c)
	if !ok {
		return
	}
	if err := h.companySvc.Delete(c.Request.Context(), p, c.Param("companyId")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Company deleted successfully"})
}

// Get returns a company with its jobs
func (h *CompanyHandlers) Get(c *gin.Context) {
	company, jobs, err := h.companySvc.Get(c.Request.Context(), c.Param("companyId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Company data fetched successfully",
		"company": newCompanyResponse(company),
		"jobs":    newJobResponses(jobs),
	})
}

// Search finds companies whose name contains the query
func (h *CompanyHandlers) Search(c *gin.Context) {
	var q companySearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		fail(c, bindErr(err))
		return
	}
	companies, err := h.companySvc.Search(c.Request.Context(), q.CompanyName)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   fmt.Sprintf("Number of companies fetched: %d", len(companies)),
		"companies": newCompanyResponses(companies),
	})
}

// ApplicationsForJob lists applications to a job of the caller's company
func (h *CompanyHandlers) ApplicationsForJob(c *gin.Context) {
	p, ok := actor(c)
	if !ok {
		return
	}
	applications, err := h.companySvc.ApplicationsForJob(c.Request.Context(), p, c.Param("jobId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      fmt.Sprintf("Number of applications fetched: %d", len(applications)),
		"applications": newApplicationResponses(applications),
	})
}

// ApplicationsReport streams the day's applications of the caller's company as xlsx
func (h *CompanyHandlers) ApplicationsReport(c *gin.Context) {
	p, ok := actor(c)
	if !ok {
		return
	}
	var q applicationsDayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		fail(c, bindErr(err))
		return
	}
	day, err := parseDate(q.Date)
	if err != nil {
		fail(c, domain.ValidationFailed("Invalid request", err))
		return
	}

	companyID := c.Param("companyId")
	data, err := h.companySvc.ApplicationsReport(c.Request.Context(), p, companyID, day)
	if err != nil {
		fail(c, err)
		return
	}
	filename := fmt.Sprintf("applications-%s-%s.xlsx", companyID, day.Format(dateLayout))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
