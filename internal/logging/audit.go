package logging

import (
	"context"

	"github.com/you/jobsvc/domain"
)

// AuditLogger writes audit events as structured log lines.
type AuditLogger struct {
	log Logger
}

func NewAuditLogger(log Logger) *AuditLogger {
	return &AuditLogger{log: log.With("component", "audit")}
}

func (a *AuditLogger) LogEvent(ctx context.Context, event *domain.AuditEvent) error {
	if event == nil {
		return nil
	}
	args := []any{
		"event", string(event.EventType),
		"success", event.Success,
		"ts", event.Timestamp,
	}
	if event.AccountID != "" {
		args = append(args, "account_id", event.AccountID)
	}
	if event.Role != "" {
		args = append(args, "role", string(event.Role))
	}
	if event.Resource != "" {
		args = append(args, "resource", event.Resource, "resource_id", event.ResourceID)
	}
	if event.Op != "" {
		args = append(args, "op", event.Op)
	}
	if event.IPAddress != "" {
		args = append(args, "ip", event.IPAddress)
	}
	if event.ErrorMsg != "" {
		args = append(args, "error", event.ErrorMsg)
	}

	if event.Success {
		a.log.Info(ctx, "audit", args...)
	} else {
		a.log.Warn(ctx, "audit", args...)
	}
	return nil
}

var _ domain.AuditLogger = (*AuditLogger)(nil)
