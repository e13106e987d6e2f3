package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/jobsvc/domain"
	"github.com/you/jobsvc/internal/http/handlers"
	"github.com/you/jobsvc/internal/http/middleware"
	"github.com/you/jobsvc/internal/logging"
)

// Deps carries the cross-cutting pieces of the router. Metrics and Limiter may be nil.
type Deps struct {
	Log     logging.Logger
	Audit   domain.AuditLogger
	Metrics *middleware.Metrics
	Limiter *middleware.RateLimiter
}

func BuildRouter(uh *handlers.UserHandlers, ch *handlers.CompanyHandlers, jh *handlers.JobHandlers, authmw *middleware.AuthMW, deps Deps) *gin.Engine {
	r := gin.New()
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Instrument())
	}
	r.Use(
		middleware.RequestLogger(deps.Log),
		middleware.ErrorHandler(deps.Log, deps.Audit, deps.Metrics),
		middleware.Recovery(deps.Log),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	limited := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if deps.Limiter == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{deps.Limiter.Limit(), h}
	}
	guarded := func(allowed domain.RoleSet, h gin.HandlerFunc) []gin.HandlerFunc {
		return append(authmw.Require(allowed), h)
	}

	user := r.Group("/user")
	user.POST("/sign-up", uh.SignUp)
	user.GET("/confirm-email/:token", uh.ConfirmEmail)
	user.POST("/login", limited(uh.Login)...)
	user.PUT("/update", guarded(domain.RolesUserCompanyHR, uh.UpdateAccount)...)
	user.DELETE("/delete", guarded(domain.RolesUserCompanyHR, uh.DeleteAccount)...)
	user.GET("/account", guarded(domain.RolesUserCompanyHR, uh.GetAccount)...)
	user.GET("/profile/:userId", uh.GetProfile)
	user.PUT("/update-password", guarded(domain.RolesUserCompanyHR, uh.UpdatePassword)...)
	user.POST("/forgot-password", limited(uh.ForgotPassword)...)
	user.POST("/reset-password/:token", limited(uh.ResetPassword)...)
	user.GET("/recovery-email-accounts/:recoveryEmail", guarded(domain.RolesAll, uh.AccountsByRecoveryEmail)...)

	company := r.Group("/company")
	company.POST("/add", guarded(domain.RolesCompanyHR, ch.Add)...)
	company.PUT("/update/:companyId", guarded(domain.RolesCompanyHR, ch.Update)...)
	company.DELETE("/delete/:companyId", guarded(domain.RolesCompanyHR, ch.Delete)...)
	company.GET("/data/:companyId", guarded(domain.RolesCompanyHR, ch.Get)...)
	company.GET("/search", guarded(domain.RolesUserCompanyHR, ch.Search)...)
	company.GET("/applications/:jobId", guarded(domain.RolesCompanyHR, ch.ApplicationsForJob)...)
	company.GET("/applications-company/:companyId", guarded(domain.RolesCompanyHR, ch.ApplicationsReport)...)

	job := r.Group("/job")
	job.POST("/add", guarded(domain.RolesCompanyHR, jh.Add)...)
	job.PUT("/update/:jobId", guarded(domain.RolesCompanyHR, jh.Update)...)
	job.DELETE("/delete/:jobId", guarded(domain.RolesCompanyHR, jh.Delete)...)
	job.GET("/all", guarded(domain.RolesUserCompanyHR, jh.List)...)
	job.GET("/company-jobs", guarded(domain.RolesUserCompanyHR, jh.ListForCompany)...)
	job.GET("/filter", guarded(domain.RolesUserCompanyHR, jh.Filter)...)
	job.POST("/apply/:jobId", guarded(domain.RolesUser, jh.Apply)...)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found", "description": c.Request.URL.Path})
	})

	return r
}
