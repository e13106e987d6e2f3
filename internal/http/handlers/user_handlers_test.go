package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you/jobsvc/domain"
)

func validSignUp() map[string]any {
	return map[string]any{
		"firstName":    "Grace",
		"lastName":     "Hopper",
		"email":        "grace@example.com",
		"password":     "Passw0rd!",
		"DOB":          "1990-12-09",
		"mobileNumber": "+15550002",
	}
}

func TestUserHandlers_SignUp(t *testing.T) {
	tests := []struct {
		name           string
		mutate         func(body map[string]any)
		setupMocks     func(d *testDeps)
		expectedStatus int
		expectedMsg    string
		expectedDesc   string
	}{
		{
			name:           "successful sign up",
			expectedStatus: http.StatusCreated,
			expectedMsg:    "User created successfully",
		},
		{
			name:           "company hr role",
			mutate:         func(b map[string]any) { b["role"] = "Company_HR" },
			expectedStatus: http.StatusCreated,
			expectedMsg:    "User created successfully",
		},
		{
			name:           "weak password",
			mutate:         func(b map[string]any) { b["password"] = "password" },
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request",
			expectedDesc:   "Password must have at least one lowercase letter, one uppercase letter, one number and one special character",
		},
		{
			name:           "bad mobile number",
			mutate:         func(b map[string]any) { b["mobileNumber"] = "call me" },
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request",
			expectedDesc:   "Mobile Number must be a valid phone number",
		},
		{
			name:           "date of birth in the future",
			mutate:         func(b map[string]any) { b["DOB"] = "2999-01-01" },
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request",
			expectedDesc:   "DOB must be in the past",
		},
		{
			name:           "missing first name",
			mutate:         func(b map[string]any) { delete(b, "firstName") },
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request",
			expectedDesc:   "firstName is required",
		},
		{
			name:           "unknown role",
			mutate:         func(b map[string]any) { b["role"] = "root" },
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid role",
		},
		{
			name: "duplicate email",
			setupMocks: func(d *testDeps) {
				d.accounts.FindByEmailFunc = func(ctx context.Context, email string) (*domain.Account, error) {
					return storedAccount(), nil
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Email already exists",
		},
		{
			name: "confirmation mail fails",
			setupMocks: func(d *testDeps) {
				d.mailer.SendFunc = func(ctx context.Context, mail domain.Mail) error {
					return errors.New("smtp down")
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Email not sent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps()
			var created *domain.Account
			d.accounts.CreateFunc = func(ctx context.Context, a *domain.Account) error {
				created = a
				return nil
			}
			if tt.setupMocks != nil {
				tt.setupMocks(d)
			}
			body := validSignUp()
			if tt.mutate != nil {
				tt.mutate(body)
			}

			r := newTestRouter(http.MethodPost, "/user/sign-up", nil, d.userHandlers().SignUp)
			w := doRequest(t, r, http.MethodPost, "/user/sign-up", body)

			assertStatus(t, w, tt.expectedStatus)
			resp := decode(t, w)
			assert.Equal(t, tt.expectedMsg, resp["message"])
			if tt.expectedDesc != "" {
				assert.Contains(t, resp["description"], tt.expectedDesc)
			}
			if tt.expectedStatus != http.StatusCreated {
				assert.Nil(t, created, "nothing is stored on failure")
				return
			}

			require.NotNil(t, created)
			assert.Equal(t, "A confirmation email has been sent!", resp["confirmation"])
			assert.NotContains(t, w.Body.String(), "hashed_", "password hash must never be serialized")
			user := resp["user"].(map[string]any)
			assert.Equal(t, "Grace Hopper", user["userName"])
			assert.Equal(t, "1990-12-09", user["DOB"])
			assert.Equal(t, "offline", user["status"])

			sent := d.mailer.Sent()
			require.Len(t, sent, 1)
			assert.Contains(t, sent[0].Text, "http://jobs.test/user/confirm-email/confirmation:"+created.ID)
			assert.NotContains(t, sent[0].Text, "example.com/user", "request host is not trusted for links")
		})
	}
}

func TestUserHandlers_ConfirmEmail(t *testing.T) {
	tests := []struct {
		name           string
		token          string
		confirmErr     error
		expectedStatus int
		expectedMsg    string
	}{
		{"confirmed", "confirmation:acc-1", nil, http.StatusOK, "Email confirmed"},
		{"login token rejected", "login:acc-1", nil, http.StatusUnauthorized, "Unauthenticated"},
		{"already confirmed", "confirmation:acc-1", domain.ErrRecordNotFound, http.StatusBadRequest, "User not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps()
			d.accounts.ConfirmFunc = func(ctx context.Context, id string) error { return tt.confirmErr }

			r := newTestRouter(http.MethodGet, "/user/confirm-email/:token", nil, d.userHandlers().ConfirmEmail)
			w := doRequest(t, r, http.MethodGet, "/user/confirm-email/"+tt.token, nil)

			assertStatus(t, w, tt.expectedStatus)
			assert.Equal(t, tt.expectedMsg, decode(t, w)["message"])
		})
	}
}

func TestUserHandlers_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]any
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "by email",
			body:           map[string]any{"credential": "ada@example.com", "password": "Passw0rd!"},
			expectedStatus: http.StatusOK,
			expectedMsg:    "User signed in successfully",
		},
		{
			name:           "by mobile number",
			body:           map[string]any{"credential": "+15550001", "password": "Passw0rd!"},
			expectedStatus: http.StatusOK,
			expectedMsg:    "User signed in successfully",
		},
		{
			name:           "wrong password",
			body:           map[string]any{"credential": "ada@example.com", "password": "nope"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid credentials",
		},
		{
			name:           "unknown account",
			body:           map[string]any{"credential": "nobody@example.com", "password": "Passw0rd!"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid credentials",
		},
		{
			name:           "credential is neither email nor mobile",
			body:           map[string]any{"credential": "ada", "password": "Passw0rd!"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps()
			account := storedAccount()
			d.accounts.FindByEmailFunc = func(ctx context.Context, email string) (*domain.Account, error) {
				if email == account.Email {
					return account, nil
				}
				return nil, domain.ErrRecordNotFound
			}
			d.accounts.FindByMobileFunc = func(ctx context.Context, mobile string) (*domain.Account, error) {
				if mobile == account.MobileNumber {
					return account, nil
				}
				return nil, domain.ErrRecordNotFound
			}

			r := newTestRouter(http.MethodPost, "/user/login", nil, d.userHandlers().Login)
			w := doRequest(t, r, http.MethodPost, "/user/login", tt.body)

			assertStatus(t, w, tt.expectedStatus)
			resp := decode(t, w)
			assert.Equal(t, tt.expectedMsg, resp["message"])
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "login:acc-1", resp["token"])
				assert.Equal(t, domain.StatusOnline, account.Status)
			}
		})
	}
}

func TestUserHandlers_UpdateAccount(t *testing.T) {
	tests := []struct {
		name           string
		principal      *domain.Principal
		body           map[string]any
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "rename",
			principal:      userPrincipal("acc-1"),
			body:           map[string]any{"firstName": "Augusta"},
			expectedStatus: http.StatusOK,
			expectedMsg:    "User updated successfully",
		},
		{
			name:           "empty body",
			principal:      userPrincipal("acc-1"),
			body:           map[string]any{},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "At least one field must be provided",
		},
		{
			name:           "invalid email",
			principal:      userPrincipal("acc-1"),
			body:           map[string]any{"email": "not-an-email"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request",
		},
		{
			name:           "no principal",
			body:           map[string]any{"firstName": "Augusta"},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Unauthenticated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps()
			account := storedAccount()
			d.accounts.FindByIDFunc = accountsByID(account)

			r := newTestRouter(http.MethodPut, "/user/update", tt.principal, d.userHandlers().UpdateAccount)
			w := doRequest(t, r, http.MethodPut, "/user/update", tt.body)

			assertStatus(t, w, tt.expectedStatus)
			resp := decode(t, w)
			assert.Equal(t, tt.expectedMsg, resp["message"])
			if tt.expectedStatus == http.StatusOK {
				user := resp["user"].(map[string]any)
				assert.Equal(t, "Augusta Lovelace", user["userName"])
			}
		})
	}
}

func TestUserHandlers_AccountAndProfile(t *testing.T) {
	d := newTestDeps()
	d.accounts.FindByIDFunc = accountsByID(storedAccount())
	h := d.userHandlers()

	account := newTestRouter(http.MethodGet, "/user/account", userPrincipal("acc-1"), h.GetAccount)
	w := doRequest(t, account, http.MethodGet, "/user/account", nil)
	assertStatus(t, w, http.StatusOK)
	assert.Equal(t, "User account data fetched successfully", decode(t, w)["message"])
	assert.NotContains(t, w.Body.String(), "hashed_")

	profile := newTestRouter(http.MethodGet, "/user/profile/:userId", nil, h.GetProfile)
	w = doRequest(t, profile, http.MethodGet, "/user/profile/acc-1", nil)
	assertStatus(t, w, http.StatusOK)
	user := decode(t, w)["user"].(map[string]any)
	assert.Equal(t, "Ada Lovelace", user["userName"])
	assert.NotContains(t, user, "recoveryEmail")

	w = doRequest(t, profile, http.MethodGet, "/user/profile/missing", nil)
	assertStatus(t, w, http.StatusNotFound)
	assert.Equal(t, "User not found", decode(t, w)["message"])
}

func TestUserHandlers_DeleteAccount(t *testing.T) {
	d := newTestDeps()
	var deleted string
	d.accounts.DeleteFunc = func(ctx context.Context, id string) error {
		deleted = id
		return nil
	}

	r := newTestRouter(http.MethodDelete, "/user/delete", hrPrincipal("hr-1"), d.userHandlers().DeleteAccount)
	w := doRequest(t, r, http.MethodDelete, "/user/delete", nil)

	assertStatus(t, w, http.StatusOK)
	assert.Equal(t, "User account deleted successfully", decode(t, w)["message"])
	assert.Equal(t, "hr-1", deleted)
}

func TestUserHandlers_UpdatePassword(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]any
		expectedStatus int
		expectedMsg    string
	}{
		{"changed", map[string]any{"oldPassword": "Passw0rd!", "newPassword": "N3wPassw0rd!"}, http.StatusOK, "Password updated successfully"},
		{"wrong old password", map[string]any{"oldPassword": "guess", "newPassword": "N3wPassw0rd!"}, http.StatusBadRequest, "Invalid old password"},
		{"weak new password", map[string]any{"oldPassword": "Passw0rd!", "newPassword": "short"}, http.StatusBadRequest, "Invalid request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps()
			account := storedAccount()
			d.accounts.FindByIDFunc = accountsByID(account)

			r := newTestRouter(http.MethodPut, "/user/update-password", userPrincipal("acc-1"), d.userHandlers().UpdatePassword)
			w := doRequest(t, r, http.MethodPut, "/user/update-password", tt.body)

			assertStatus(t, w, tt.expectedStatus)
			assert.Equal(t, tt.expectedMsg, decode(t, w)["message"])
		})
	}
}

func TestUserHandlers_ForgotAndResetPassword(t *testing.T) {
	d := newTestDeps()
	account := storedAccount()
	d.accounts.FindByIDFunc = accountsByID(account)
	d.accounts.FindByEmailFunc = func(ctx context.Context, email string) (*domain.Account, error) {
		if email == account.Email {
			return account, nil
		}
		return nil, domain.ErrRecordNotFound
	}
	h := d.userHandlers()

	forgot := newTestRouter(http.MethodPost, "/user/forgot-password", nil, h.ForgotPassword)
	w := doRequest(t, forgot, http.MethodPost, "/user/forgot-password", map[string]any{"email": "ada@example.com"})
	assertStatus(t, w, http.StatusOK)
	assert.Equal(t, "Password reset email sent", decode(t, w)["message"])
	require.Len(t, d.mailer.Sent(), 1)

	w = doRequest(t, forgot, http.MethodPost, "/user/forgot-password", map[string]any{"email": "nobody@example.com"})
	assertStatus(t, w, http.StatusNotFound)

	reset := newTestRouter(http.MethodPost, "/user/reset-password/:token", nil, h.ResetPassword)
	body := map[string]any{"newPassword": "FreshPassw0rd!"}

	w = doRequest(t, reset, http.MethodPost, "/user/reset-password/reset:acc-1", body)
	assertStatus(t, w, http.StatusOK)
	assert.Equal(t, "Password reset successfully", decode(t, w)["message"])
	assert.Equal(t, "hashed_FreshPassw0rd!", account.PasswordHash)

	w = doRequest(t, reset, http.MethodPost, "/user/reset-password/reset:acc-1", body)
	assertStatus(t, w, http.StatusUnauthorized)
	assert.Equal(t, "Invalid or expired token", decode(t, w)["description"], "reset tokens work once")

	w = doRequest(t, reset, http.MethodPost, "/user/reset-password/login:acc-1", body)
	assertStatus(t, w, http.StatusUnauthorized)
}

func TestUserHandlers_AccountsByRecoveryEmail(t *testing.T) {
	d := newTestDeps()
	d.accounts.FindByRecoveryEmailFunc = func(ctx context.Context, email string) ([]*domain.Account, error) {
		if email != "backup@example.com" {
			return nil, nil
		}
		second := storedAccount()
		second.ID = "acc-2"
		return []*domain.Account{storedAccount(), second}, nil
	}

	r := newTestRouter(http.MethodGet, "/user/recovery-email-accounts/:recoveryEmail", userPrincipal("acc-1"), d.userHandlers().AccountsByRecoveryEmail)

	w := doRequest(t, r, http.MethodGet, "/user/recovery-email-accounts/backup@example.com", nil)
	assertStatus(t, w, http.StatusOK)
	resp := decode(t, w)
	assert.Equal(t, "2 accounts fetched successfully", resp["message"])
	assert.Len(t, resp["users"], 2)

	w = doRequest(t, r, http.MethodGet, "/user/recovery-email-accounts/other@example.com", nil)
	assertStatus(t, w, http.StatusNotFound)
	assert.True(t, strings.HasPrefix(decode(t, w)["message"].(string), "No accounts found"))
}
