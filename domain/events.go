package domain

import (
	"context"
	"time"
)

// AuditEventType defines the type of audit event
type AuditEventType string

const (
	// Account events
	AccountSignUpEvent       AuditEventType = "ACCOUNT_SIGNED_UP"
	AccountConfirmedEvent    AuditEventType = "ACCOUNT_CONFIRMED"
	AccountLoginEvent        AuditEventType = "ACCOUNT_LOGIN"
	AccountLoginFailureEvent AuditEventType = "ACCOUNT_LOGIN_FAILED"
	PasswordResetEvent       AuditEventType = "PASSWORD_RESET"

	// Authorization events
	AuthenticationFailedEvent AuditEventType = "AUTHENTICATION_FAILED"
	AccessDeniedEvent         AuditEventType = "ACCESS_DENIED"
	OwnershipDeniedEvent      AuditEventType = "OWNERSHIP_DENIED"
)

// AuditEvent represents a security-relevant event
type AuditEvent struct {
	EventType  AuditEventType `json:"event_type"`
	AccountID  string         `json:"account_id,omitempty"`
	Role       Role           `json:"role,omitempty"`
	Resource   string         `json:"resource,omitempty"`
	ResourceID string         `json:"resource_id,omitempty"`
	Op         string         `json:"op,omitempty"`
	IPAddress  string         `json:"ip_address,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
	ErrorMsg   string         `json:"error_msg,omitempty"`
	Success    bool           `json:"success"`
}

// AuditLogger records audit events
type AuditLogger interface {
	LogEvent(ctx context.Context, event *AuditEvent) error
}

// NewAuditEvent creates a new audit event with common fields populated
func NewAuditEvent(eventType AuditEventType, accountID string) *AuditEvent {
	return &AuditEvent{
		EventType: eventType,
		AccountID: accountID,
		Timestamp: time.Now().UTC(),
		Success:   true,
	}
}

// WithError marks the event as a failure
func (e *AuditEvent) WithError(err error) *AuditEvent {
	e.Success = false
	if err != nil {
		e.ErrorMsg = err.Error()
	}
	return e
}

// WithResource sets the resource the event concerns
func (e *AuditEvent) WithResource(resource, id string) *AuditEvent {
	e.Resource = resource
	e.ResourceID = id
	return e
}

// WithRole sets the actor role
func (e *AuditEvent) WithRole(role Role) *AuditEvent {
	e.Role = role
	return e
}

// WithIP sets the client address
func (e *AuditEvent) WithIP(ip string) *AuditEvent {
	e.IPAddress = ip
	return e
}

// EventForError builds the denial event for a pipeline failure, or nil when
// the failure is not authorization related.
func EventForError(err *Error, actorID string) *AuditEvent {
	var ev *AuditEvent
	switch err.Kind {
	case KindUnauthenticated:
		ev = NewAuditEvent(AuthenticationFailedEvent, actorID)
	case KindForbidden:
		ev = NewAuditEvent(AccessDeniedEvent, actorID)
	case KindNotFoundOrUnauthorized:
		ev = NewAuditEvent(OwnershipDeniedEvent, actorID)
	default:
		return nil
	}
	ev.Op = err.Op
	return ev.WithResource(err.Resource, err.ResourceID).WithError(err)
}
