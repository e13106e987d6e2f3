package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/you/jobsvc/domain"
)

// UserHandlers handles account HTTP requests
type UserHandlers struct {
	accountSvc domain.AccountService
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(accountSvc domain.AccountService) *UserHandlers {
	registerValidators()
	return &UserHandlers{accountSvc: accountSvc}
}

// SignUpRequest represents a sign-up request
type SignUpRequest struct {
	FirstName     string `json:"firstName" binding:"required,min=3,max=30,alphanum"`
	LastName      string `json:"lastName" binding:"required,min=3,max=30,alphanum"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,strongpassword"`
	RecoveryEmail string `json:"recoveryEmail" binding:"omitempty,email"`
	DOB           string `json:"DOB" binding:"required,isodate,pastdate"`
	MobileNumber  string `json:"mobileNumber" binding:"required,mobile"`
	Role          string `json:"role,omitempty"` // defaults to User
}

// LoginRequest represents a login request; credential is an email or a mobile number.
type LoginRequest struct {
	Credential string `json:"credential" binding:"required,email|mobile"`
	Password   string `json:"password" binding:"required"`
}

// UpdateUserRequest represents a partial account update
type UpdateUserRequest struct {
	Email         *string `json:"email" binding:"omitempty,email"`
	MobileNumber  *string `json:"mobileNumber" binding:"omitempty,mobile"`
	RecoveryEmail *string `json:"recoveryEmail" binding:"omitempty,email"`
	DOB           *string `json:"DOB" binding:"omitempty,isodate,pastdate"`
	FirstName     *string `json:"firstName" binding:"omitempty,min=3,max=30,alphanum"`
	LastName      *string `json:"lastName" binding:"omitempty,min=3,max=30,alphanum"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,strongpassword"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,strongpassword"`
}

// SignUp handles account registration
func (h *UserHandlers) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, bindErr(err))
		return
	}
	dob, err := parseDate(req.DOB)
	if err != nil {
		fail(c, domain.ValidationFailed("Invalid request", err))
		return
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		fail(c, domain.ValidationFailed("Invalid role", err))
		return
	}

	account, err := h.accountSvc.SignUp(c.Request.Context(), domain.SignUpInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Password:      req.Password,
		RecoveryEmail: req.RecoveryEmail,
		DOB:           dob,
		MobileNumber:  req.MobileNumber,
		Role:          role,
		BaseURL:       requestBaseURL(c),
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "User created successfully",
		"confirmation": "A confirmation email has been sent!",
		"user":         newUserResponse(account),
	})
}

// ConfirmEmail handles the link from the confirmation mail
func (h *UserHandlers) ConfirmEmail(c *gin.Context) {
	if err := h.accountSvc.ConfirmEmail(c.Request.Context(), c.Param("token")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email confirmed"})
}

// Login handles login by email or mobile number
func (h *UserHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, bindErr(err))
		return
	}

	result, err := h.accountSvc.Login(c.Request.Context(), req.Credential, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "User signed in successfully",
		"token":   result.Token,
	})
}

// UpdateAccount handles changes to the caller's own account
func (h *UserHandlers) UpdateAccount(c *gin.Context) {
	p, ok := actor(c)
	if !ok {
		return
	}
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, bindErr(err))
		return
	}

	in := domain.AccountUpdate{
		Email:         req.Email,
		MobileNumber:  req.MobileNumber,
		RecoveryEmail: req.RecoveryEmail,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
	}
	if req.DOB != nil {
		dob, err := parseDate(*req.DOB)
		if err != nil {
			fail(c, domain.ValidationFailed("Invalid request", err))
			return
		}
		in.DOB = &dob
	}
	if in.Empty() {
		fail(c, domain.ValidationFailed("At least one field must be provided", nil))
		return
	}

	account, err := h.accountSvc.UpdateAccount(c.Request.Context(), p, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    newUserResponse(account),
	})
}

// DeleteAccount handles removal of the caller's own account
func (h *UserHandlers) DeleteAccount(c *gin.Context) {
	p, ok := actor(c)
	if !ok {
		return
	}
	if err := h.accountSvc.DeleteAccount(c.Request.Context(), p); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User account deleted successfully"})
}

// GetAccount returns the caller's own account
func (h *UserHandlers) GetAccount(c *gin.Context) {
	p, ok := actor(c)
	if !ok {
		return
	}
	account, err := h.accountSvc.GetAccount(c.Request.Context(), p)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "User account data fetched successfully",
		"user":    newUserResponse(account),
	})
}

// GetProfile returns the public profile of any account
func (h *UserHandlers) GetProfile(c *gin.Context) {
	account, err := h.accountSvc.GetProfile(c.Request.Context(), c.Param("userId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "User profile data fetched successfully",
		"user":    newProfileResponse(account),
	})
}

// UpdatePassword handles a password change that proves the old password
func (h *UserHandlers) UpdatePassword(c *gin.Context) {
	p, ok := actor(c)
	if !ok {
		return
	}
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, bindErr(err))
		return
	}
	if err := h.accountSvc.UpdatePassword(c.Request.Context(), p, req.OldPassword, req.NewPassword); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

// ForgotPassword mails a reset link
func (h *UserHandlers) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, bindErr(err))
		return
	}
	if err := h.accountSvc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset email sent"})
}

// ResetPassword consumes a reset token and sets the new password
func (h *UserHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, bindErr(err))
		return
	}
	if err := h.accountSvc.ResetPassword(c.Request.Context(), c.Param("token"), req.NewPassword); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}

// AccountsByRecoveryEmail lists the accounts sharing a recovery email
func (h *UserHandlers) AccountsByRecoveryEmail(c *gin.Context) {
	accounts, err := h.accountSvc.AccountsByRecoveryEmail(c.Request.Context(), c.Param("recoveryEmail"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": strconv.Itoa(len(accounts)) + " accounts fetched successfully",
		"users":   newUserResponses(accounts),
	})
}
