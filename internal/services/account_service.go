package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/you/jobsvc/domain"
	"github.com/you/jobsvc/internal/ids"
	"github.com/you/jobsvc/internal/infrastructure/notifications"
	"github.com/you/jobsvc/internal/logging"
)

// AccountConfig holds the account flow settings
type AccountConfig struct {
	// PublicURL prefixes links sent by mail. When empty, confirmation links
	// fall back to the request's scheme and host.
	PublicURL string
	// LoginTTL of zero issues login tokens without expiry.
	LoginTTL        time.Duration
	ConfirmationTTL time.Duration
	ResetTTL        time.Duration
}

// AccountServiceImpl implements domain.AccountService
type AccountServiceImpl struct {
	accounts    domain.AccountRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	ledger      domain.TokenLedger
	mailer      domain.Mailer
	sms         domain.NotificationService
	audit       domain.AuditLogger
	log         logging.Logger
	cfg         AccountConfig
}

// NewAccountService creates a new account service
func NewAccountService(
	accounts domain.AccountRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	ledger domain.TokenLedger,
	mailer domain.Mailer,
	sms domain.NotificationService,
	audit domain.AuditLogger,
	log logging.Logger,
	cfg AccountConfig,
) *AccountServiceImpl {
	return &AccountServiceImpl{
		accounts:    accounts,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		ledger:      ledger,
		mailer:      mailer,
		sms:         sms,
		audit:       audit,
		log:         log.With("component", "account_service"),
		cfg:         cfg,
	}
}

// SignUp implements domain.AccountService
func (s *AccountServiceImpl) SignUp(ctx context.Context, in domain.SignUpInput) (*domain.Account, error) {
	if err := s.ensureUnique(ctx, "", in.Email, in.MobileNumber); err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, domain.ValidationFailed("Invalid role", fmt.Errorf("unknown role %q", role))
	}

	hashedPassword, err := s.passwordSvc.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &domain.Account{
		ID:            ids.New(),
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		UserName:      in.FirstName + " " + in.LastName,
		Email:         in.Email,
		RecoveryEmail: in.RecoveryEmail,
		DOB:           in.DOB,
		MobileNumber:  in.MobileNumber,
		PasswordHash:  hashedPassword,
		Role:          role,
		Status:        domain.StatusOffline,
	}

	token, err := s.tokenSvc.Issue(account.ID, domain.PurposeConfirmation, domain.WithTTL(s.cfg.ConfirmationTTL))
	if err != nil {
		return nil, fmt.Errorf("failed to issue confirmation token: %w", err)
	}
	link := s.baseURL(in.BaseURL) + "/user/confirm-email/" + token

	// The account is only stored once the confirmation mail went out.
	if err := s.mailer.Send(ctx, notifications.ConfirmationMail(account.Email, account.UserName, link)); err != nil {
		s.log.Warn(ctx, "confirmation mail failed", "account_id", account.ID, "error", err)
		e := domain.ValidationFailed("Email not sent", nil)
		e.Err = err
		return nil, e.At("account.sign_up")
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrDuplicateRecord) {
			return nil, domain.Conflict("Account already exists").At("account.sign_up")
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.record(ctx, domain.NewAuditEvent(domain.AccountSignUpEvent, account.ID).WithRole(account.Role))
	return account, nil
}

// ConfirmEmail implements domain.AccountService
func (s *AccountServiceImpl) ConfirmEmail(ctx context.Context, token string) error {
	claims, err := s.tokenSvc.Verify(token, domain.PurposeConfirmation)
	if err != nil {
		return domain.Unauthenticated("Invalid or expired token", err).At("account.confirm_email")
	}

	if err := s.accounts.Confirm(ctx, claims.Subject); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			// Unknown and already confirmed accounts look the same.
			return domain.ValidationFailed("User not found", nil).At("account.confirm_email")
		}
		return fmt.Errorf("failed to confirm account: %w", err)
	}

	s.record(ctx, domain.NewAuditEvent(domain.AccountConfirmedEvent, claims.Subject))
	return nil
}

// Login implements domain.AccountService. credential is an email or a mobile number.
func (s *AccountServiceImpl) Login(ctx context.Context, credential, password string) (*domain.LoginResult, error) {
	account, err := s.findByCredential(ctx, credential)
	if err != nil {
		return nil, err
	}
	if account == nil || !s.passwordSvc.Verify(account.PasswordHash, password) {
		ev := domain.NewAuditEvent(domain.AccountLoginFailureEvent, "")
		if account != nil {
			ev.AccountID = account.ID
		}
		s.record(ctx, ev.WithError(errors.New("invalid credentials")))
		return nil, domain.ValidationFailed("Invalid credentials", nil).At("account.login")
	}

	var opts []domain.IssueOption
	if s.cfg.LoginTTL > 0 {
		opts = append(opts, domain.WithTTL(s.cfg.LoginTTL))
	}
	token, err := s.tokenSvc.Issue(account.ID, domain.PurposeLogin, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to issue login token: %w", err)
	}

	if err := s.accounts.SetStatus(ctx, account.ID, domain.StatusOnline); err != nil {
		return nil, storeErr("update account status", err)
	}
	account.Status = domain.StatusOnline
	account.Version++

	s.record(ctx, domain.NewAuditEvent(domain.AccountLoginEvent, account.ID).WithRole(account.Role))
	return &domain.LoginResult{Token: token, Account: account}, nil
}

// UpdateAccount implements domain.AccountService
func (s *AccountServiceImpl) UpdateAccount(ctx context.Context, actor domain.Principal, in domain.AccountUpdate) (*domain.Account, error) {
	account, err := s.load(ctx, actor.AccountID)
	if err != nil {
		return nil, err
	}

	var email, mobile string
	if in.Email != nil && *in.Email != account.Email {
		email = *in.Email
	}
	if in.MobileNumber != nil && *in.MobileNumber != account.MobileNumber {
		mobile = *in.MobileNumber
	}
	if err := s.ensureUnique(ctx, account.ID, email, mobile); err != nil {
		return nil, err
	}

	if email != "" {
		account.Email = email
	}
	if mobile != "" {
		account.MobileNumber = mobile
	}
	if in.RecoveryEmail != nil {
		account.RecoveryEmail = *in.RecoveryEmail
	}
	if in.DOB != nil {
		account.DOB = *in.DOB
	}
	if in.FirstName != nil {
		account.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		account.LastName = *in.LastName
	}
	account.UserName = account.FirstName + " " + account.LastName

	if err := s.accounts.Update(ctx, account); err != nil {
		if errors.Is(err, domain.ErrDuplicateRecord) {
			return nil, domain.Conflict("Email or mobile number already exists").At("account.update")
		}
		return nil, storeErr("update account", err)
	}
	return account, nil
}

// DeleteAccount implements domain.AccountService
func (s *AccountServiceImpl) DeleteAccount(ctx context.Context, actor domain.Principal) error {
	if err := s.accounts.Delete(ctx, actor.AccountID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.NotFound("User not found", domain.ResourceAccount, actor.AccountID)
		}
		return storeErr("delete account", err)
	}
	return nil
}

// GetAccount implements domain.AccountService
func (s *AccountServiceImpl) GetAccount(ctx context.Context, actor domain.Principal) (*domain.Account, error) {
	return s.load(ctx, actor.AccountID)
}

// GetProfile implements domain.AccountService
func (s *AccountServiceImpl) GetProfile(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.load(ctx, accountID)
}

// UpdatePassword implements domain.AccountService
func (s *AccountServiceImpl) UpdatePassword(ctx context.Context, actor domain.Principal, oldPassword, newPassword string) error {
	account, err := s.load(ctx, actor.AccountID)
	if err != nil {
		return err
	}
	if !s.passwordSvc.Verify(account.PasswordHash, oldPassword) {
		return domain.ValidationFailed("Invalid old password", nil).At("account.update_password")
	}
	return s.setPassword(ctx, account, newPassword)
}

// ForgotPassword implements domain.AccountService. A reset link goes out by mail
// and the account's mobile number gets a notice.
func (s *AccountServiceImpl) ForgotPassword(ctx context.Context, email string) error {
	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.NotFound("User not found", domain.ResourceAccount, "")
		}
		return fmt.Errorf("failed to find account: %w", err)
	}

	token, err := s.tokenSvc.Issue(account.ID, domain.PurposeReset, domain.WithTTL(s.cfg.ResetTTL))
	if err != nil {
		return fmt.Errorf("failed to issue reset token: %w", err)
	}
	link := s.baseURL("") + "/user/reset-password/" + token

	if err := s.mailer.Send(ctx, notifications.ResetMail(account.Email, account.FirstName, link)); err != nil {
		s.log.Warn(ctx, "reset mail failed", "account_id", account.ID, "error", err)
		e := domain.ValidationFailed("Email not sent", nil)
		e.Err = err
		return e.At("account.forgot_password")
	}

	// The SMS is a courtesy notice; its failure does not fail the request.
	if account.MobileNumber != "" {
		if err := s.sms.SendSMS(account.MobileNumber, notifications.ResetRequestedSMS()); err != nil {
			s.log.Warn(ctx, "reset notice sms failed", "account_id", account.ID, "error", err)
		}
	}
	return nil
}

// ResetPassword implements domain.AccountService. Every reset token works once.
func (s *AccountServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	claims, err := s.tokenSvc.Verify(token, domain.PurposeReset)
	if err != nil {
		return domain.Unauthenticated("Invalid or expired token", err).At("account.reset_password")
	}

	account, err := s.load(ctx, claims.Subject)
	if err != nil {
		return err
	}
	hashed, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	ttl := claims.Remaining(time.Now())
	if ttl <= 0 {
		ttl = s.cfg.ResetTTL
	}
	if err := s.ledger.Consume(ctx, claims.ID, ttl); err != nil {
		if errors.Is(err, domain.ErrTokenAlreadyUsed) || errors.Is(err, domain.ErrTokenInvalid) {
			return domain.Unauthenticated("Invalid or expired token", err).At("account.reset_password")
		}
		return fmt.Errorf("failed to consume reset token: %w", err)
	}
	if err := s.accounts.SetPassword(ctx, account.ID, hashed); err != nil {
		// the link stays usable when the write did not happen
		if relErr := s.ledger.Release(ctx, claims.ID); relErr != nil {
			s.log.Warn(ctx, "reset token release failed", "account_id", account.ID, "error", relErr)
		}
		return storeErr("update password", err)
	}
	account.PasswordHash = hashed

	s.record(ctx, domain.NewAuditEvent(domain.PasswordResetEvent, account.ID))
	return nil
}

// AccountsByRecoveryEmail implements domain.AccountService
func (s *AccountServiceImpl) AccountsByRecoveryEmail(ctx context.Context, recoveryEmail string) ([]*domain.Account, error) {
	accounts, err := s.accounts.FindByRecoveryEmail(ctx, recoveryEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to find accounts: %w", err)
	}
	if len(accounts) == 0 {
		return nil, domain.NotFound("No accounts found for the provided recovery email", domain.ResourceAccount, "")
	}
	return accounts, nil
}

func (s *AccountServiceImpl) setPassword(ctx context.Context, account *domain.Account, password string) error {
	hashed, err := s.passwordSvc.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.accounts.SetPassword(ctx, account.ID, hashed); err != nil {
		return storeErr("update password", err)
	}
	account.PasswordHash = hashed
	return nil
}

func (s *AccountServiceImpl) load(ctx context.Context, id string) (*domain.Account, error) {
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NotFound("User not found", domain.ResourceAccount, id)
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	return account, nil
}

// findByCredential returns nil, nil when neither email nor mobile matches.
func (s *AccountServiceImpl) findByCredential(ctx context.Context, credential string) (*domain.Account, error) {
	account, err := s.accounts.FindByEmail(ctx, credential)
	if found, ferr := exists(err); ferr != nil {
		return nil, fmt.Errorf("failed to find account: %w", ferr)
	} else if found {
		return account, nil
	}

	account, err = s.accounts.FindByMobile(ctx, credential)
	if found, ferr := exists(err); ferr != nil {
		return nil, fmt.Errorf("failed to find account: %w", ferr)
	} else if found {
		return account, nil
	}
	return nil, nil
}

// ensureUnique checks email and mobile against accounts other than selfID.
// Empty values are skipped.
func (s *AccountServiceImpl) ensureUnique(ctx context.Context, selfID, email, mobile string) error {
	if email != "" {
		other, err := s.accounts.FindByEmail(ctx, email)
		found, ferr := exists(err)
		if ferr != nil {
			return fmt.Errorf("failed to check email: %w", ferr)
		}
		if found && other.ID != selfID {
			return domain.Conflict("Email already exists")
		}
	}
	if mobile != "" {
		other, err := s.accounts.FindByMobile(ctx, mobile)
		found, ferr := exists(err)
		if ferr != nil {
			return fmt.Errorf("failed to check mobile number: %w", ferr)
		}
		if found && other.ID != selfID {
			return domain.Conflict("Mobile number already exists")
		}
	}
	return nil
}

func (s *AccountServiceImpl) baseURL(fromRequest string) string {
	if s.cfg.PublicURL != "" {
		return s.cfg.PublicURL
	}
	return fromRequest
}

func (s *AccountServiceImpl) record(ctx context.Context, ev *domain.AuditEvent) {
	if s.audit == nil {
		return
	}
	if err := s.audit.LogEvent(ctx, ev); err != nil {
		s.log.Warn(ctx, "audit event dropped", "event", ev.EventType, "error", err)
	}
}

var _ domain.AccountService = (*AccountServiceImpl)(nil)
