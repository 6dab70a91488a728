// Package authdto - request DTOs for the auth domain.
package authdto

// RegisterInput is the body of POST /api/auth/register.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=30,no_xss"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=user creator"`
}

// VerifyOTPInput is the body of POST /api/auth/verify-otp.
type VerifyOTPInput struct {
	UserID string `json:"userId" validate:"required"`
	OTP    string `json:"otp" validate:"required,len=6,numeric"`
}

// ResendOTPInput is the body of POST /api/auth/resend-otp.
type ResendOTPInput struct {
	UserID string `json:"userId" validate:"required"`
}

// LoginInput is the body of POST /api/auth/login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
