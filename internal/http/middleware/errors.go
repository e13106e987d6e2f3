package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/you/jobsvc/domain"
	"github.com/you/jobsvc/internal/logging"
)

// ErrorHandler is the terminal sink for failures recorded with c.Error. It
// writes one {message, description} body with the failure's status, unless
// a response was already written. m may be nil.
func ErrorHandler(log logging.Logger, audit domain.AuditLogger, m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		de := domain.AsError(c.Errors.Last().Err)
		ctx := c.Request.Context()

		var actor string
		if p, ok := PrincipalFrom(c); ok {
			actor = p.AccountID
		}

		fields := []any{
			"kind", de.Kind.String(),
			"op", de.Op,
			"method", c.Request.Method,
			"path", c.FullPath(),
		}
		if de.Resource != "" {
			fields = append(fields, "resource", de.Resource, "resource_id", de.ResourceID)
		}
		if de.Err != nil {
			fields = append(fields, "error", de.Err)
		}
		if de.Kind == domain.KindUnexpected {
			log.Error(ctx, "request failed", fields...)
		} else {
			log.Debug(ctx, "request rejected", fields...)
		}

		if ev := domain.EventForError(de, actor); ev != nil && audit != nil {
			ev.WithIP(c.ClientIP())
			if p, ok := PrincipalFrom(c); ok {
				ev.WithRole(p.Role)
			}
			if err := audit.LogEvent(ctx, ev); err != nil {
				log.Warn(ctx, "audit event dropped", "error", err)
			}
		}
		m.observeFailure(de.Kind)

		if c.Writer.Written() {
			return
		}
		c.JSON(de.Status(), gin.H{
			"message":     de.Message,
			"description": de.Description,
		})
	}
}

// Recovery turns a panic in a later handler into an Unexpected failure for
// the error handler. Register it after ErrorHandler.
func Recovery(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error(c.Request.Context(), "panic recovered", "panic", r, "path", c.Request.URL.Path)
				Fail(c, domain.Unexpected(fmt.Errorf("panic: %v", r)).At("http.recovery"))
			}
		}()
		c.Next()
	}
}
