package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name           string
		err            *Error
		expectedKind   Kind
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "unauthenticated",
			err:            Unauthenticated("", nil),
			expectedKind:   KindUnauthenticated,
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Unauthenticated",
		},
		{
			name:           "forbidden",
			err:            Forbidden(RoleUser, RolesCompanyHR),
			expectedKind:   KindForbidden,
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "Unauthorized",
		},
		{
			name:           "not found or unauthorized",
			err:            NotFoundOrUnauthorized(ResourceCompany, "c1"),
			expectedKind:   KindNotFoundOrUnauthorized,
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Not found or unauthorized",
		},
		{
			name:           "conflict",
			err:            Conflict("Email already exists"),
			expectedKind:   KindConflict,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Email already exists",
		},
		{
			name:           "validation failed",
			err:            ValidationFailed("Invalid request", errors.New("title is required")),
			expectedKind:   KindValidationFailed,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request",
		},
		{
			name:           "unexpected",
			err:            Unexpected(errors.New("db down")),
			expectedKind:   KindUnexpected,
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.expectedKind {
				t.Errorf("expected kind %v, got %v", tt.expectedKind, tt.err.Kind)
			}
			if tt.err.Status() != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, tt.err.Status())
			}
			if tt.err.Message != tt.expectedMsg {
				t.Errorf("expected message %q, got %q", tt.expectedMsg, tt.err.Message)
			}
			if tt.err.Description == "" {
				t.Error("description should not be empty")
			}
		})
	}
}

func TestAsError(t *testing.T) {
	conflict := Conflict("Company already exists")
	wrapped := fmt.Errorf("create company: %w", conflict)

	if got := AsError(wrapped); got != conflict {
		t.Errorf("expected wrapped domain error to be extracted, got %v", got)
	}

	plain := errors.New("connection reset")
	got := AsError(plain)
	if got.Kind != KindUnexpected {
		t.Errorf("expected unknown error to become Unexpected, got %v", got.Kind)
	}
	if !errors.Is(got, plain) {
		t.Error("Unexpected should keep the cause in its chain")
	}
}

func TestErrorUnwrap(t *testing.T) {
	err := Unauthenticated("Invalid or expired token", ErrTokenExpired)
	if !errors.Is(err, ErrTokenExpired) {
		t.Error("expected token error to be reachable through Unwrap")
	}
	if err.At("auth.authenticate").Op != "auth.authenticate" {
		t.Error("At should record the operation")
	}
}

func TestNotFoundOrUnauthorizedBodiesMatch(t *testing.T) {
	missing := HideMissing(ErrRecordNotFound, ResourceCompany, "c1")
	notOwner := RequireOwner(ResourceCompany, "c1", "owner", "intruder")

	a, b := AsError(missing), AsError(notOwner)
	if a.Status() != b.Status() || a.Message != b.Message || a.Description != b.Description {
		t.Errorf("missing and not-owned must be indistinguishable: %+v vs %+v", a, b)
	}
}

func TestRequireOwner(t *testing.T) {
	tests := []struct {
		name    string
		ownerID string
		actorID string
		wantErr bool
	}{
		{"owner", "a1", "a1", false},
		{"other account", "a1", "a2", true},
		{"empty owner", "", "a2", true},
		{"empty actor", "a1", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireOwner(ResourceJob, "j1", tt.ownerID, tt.actorID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RequireOwner() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && AsError(err).Kind != KindNotFoundOrUnauthorized {
				t.Errorf("expected NotFoundOrUnauthorized, got %v", err)
			}
		})
	}
}

func TestHideMissingPassesOtherErrors(t *testing.T) {
	boom := errors.New("boom")
	if got := HideMissing(boom, ResourceJob, "j1"); got != boom {
		t.Errorf("expected passthrough, got %v", got)
	}
	if got := HideMissing(nil, ResourceJob, "j1"); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestEventForError(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected AuditEventType
		isNil    bool
	}{
		{"unauthenticated", Unauthenticated("", nil), AuthenticationFailedEvent, false},
		{"forbidden", Forbidden(RoleUser, RolesAdmin), AccessDeniedEvent, false},
		{"ownership", NotFoundOrUnauthorized(ResourceJob, "j1"), OwnershipDeniedEvent, false},
		{"conflict", Conflict("x"), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := EventForError(tt.err, "a1")
			if tt.isNil {
				if ev != nil {
					t.Errorf("expected no event, got %+v", ev)
				}
				return
			}
			if ev == nil {
				t.Fatal("expected event")
			}
			if ev.EventType != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, ev.EventType)
			}
			if ev.Success {
				t.Error("denial events are failures")
			}
		})
	}
}
