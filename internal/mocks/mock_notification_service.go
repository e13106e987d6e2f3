package mocks

import (
	"context"
	"sync"

	"github.com/you/jobsvc/domain"
)

// MockMailer implements domain.Mailer interface for testing and records sent mail
type MockMailer struct {
	SendFunc func(ctx context.Context, mail domain.Mail) error

	mu   sync.Mutex
	sent []domain.Mail
}

// NewMockMailer creates a new MockMailer with default behaviors
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) Send(ctx context.Context, mail domain.Mail) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, mail)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, mail)
	return nil
}

// Sent returns the mail delivered through the default behavior.
func (m *MockMailer) Sent() []domain.Mail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Mail(nil), m.sent...)
}

// MockNotificationService implements domain.NotificationService interface for testing
type MockNotificationService struct {
	SendSMSFunc func(to, message string) error
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

func (m *MockNotificationService) SendSMS(to, message string) error {
	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(to, message)
	}
	return nil
}

// MockApplicationsExporter implements domain.ApplicationsExporter interface for testing
type MockApplicationsExporter struct {
	ExportFunc func(applications []*domain.Application) ([]byte, error)
}

// NewMockApplicationsExporter creates a new MockApplicationsExporter with default behaviors
func NewMockApplicationsExporter() *MockApplicationsExporter {
	return &MockApplicationsExporter{}
}

func (m *MockApplicationsExporter) Export(applications []*domain.Application) ([]byte, error) {
	if m.ExportFunc != nil {
		return m.ExportFunc(applications)
	}
	return []byte("xlsx"), nil
}

// MockAuditLogger implements domain.AuditLogger interface for testing and records events
type MockAuditLogger struct {
	mu     sync.Mutex
	events []*domain.AuditEvent
}

// NewMockAuditLogger creates a new MockAuditLogger
func NewMockAuditLogger() *MockAuditLogger {
	return &MockAuditLogger{}
}

func (m *MockAuditLogger) LogEvent(ctx context.Context, event *domain.AuditEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

// Events returns the recorded events.
func (m *MockAuditLogger) Events() []*domain.AuditEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.AuditEvent(nil), m.events...)
}

// Compile-time interface compliance verification
var (
	_ domain.Mailer               = (*MockMailer)(nil)
	_ domain.NotificationService  = (*MockNotificationService)(nil)
	_ domain.ApplicationsExporter = (*MockApplicationsExporter)(nil)
	_ domain.AuditLogger          = (*MockAuditLogger)(nil)
)
