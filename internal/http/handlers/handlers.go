package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/you/jobsvc/domain"
	"github.com/you/jobsvc/internal/http/middleware"
)

// fail hands err to the error handler.
func fail(c *gin.Context, err error) {
	middleware.Fail(c, err)
}

// actor returns the authenticated principal or fails the request.
func actor(c *gin.Context) (domain.Principal, bool) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		fail(c, domain.Unauthenticated("", nil).At("handlers.actor"))
	}
	return p, ok
}

// requestBaseURL rebuilds scheme://host of the incoming request.
func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	if c.Request.Host == "" {
		return ""
	}
	return scheme + "://" + c.Request.Host
}
