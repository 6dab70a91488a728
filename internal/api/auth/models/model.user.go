// Package models - user account model for the auth domain.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles.
const (
	RoleUser    = "user"
	RoleCreator = "creator"
	RoleAdmin   = "admin"
)

// User is a marketplace account. Token holds the latest session token; the
// auth middleware resolves bearer tokens by looking it up. OTP fields drive
// email verification and are cleared once the account is verified.
type User struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username        string             `json:"username" bson:"username"`
	Email           string             `json:"email" bson:"email"`
	Password        string             `json:"-" bson:"password,omitempty"`
	Role            string             `json:"role" bson:"role"`
	Avatar          string             `json:"avatar,omitempty" bson:"avatar,omitempty"`
	IsEmailVerified bool               `json:"isEmailVerified" bson:"isEmailVerified"`
	IsActive        bool               `json:"isActive" bson:"isActive"`
	OTP             string             `json:"-" bson:"otp,omitempty"`
	OTPExpiresAt    int64              `json:"-" bson:"otpExpiresAt,omitempty"`
	OTPAttempts     int                `json:"-" bson:"otpAttempts,omitempty"`
	LastOTPRequest  int64              `json:"-" bson:"lastOtpRequest,omitempty"`
	Token           string             `json:"-" bson:"token,omitempty"`
	CreatedAt       int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64              `json:"updatedAt" bson:"updatedAt"`
}

// Public returns the user stripped to the fields safe for API responses.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		Role:            u.Role,
		Avatar:          u.Avatar,
		IsEmailVerified: u.IsEmailVerified,
		IsActive:        u.IsActive,
		CreatedAt:       u.CreatedAt,
	}
}

// PublicUser is the API-facing view of a user.
type PublicUser struct {
	ID              primitive.ObjectID `json:"id"`
	Username        string             `json:"username"`
	Email           string             `json:"email"`
	Role            string             `json:"role"`
	Avatar          string             `json:"avatar,omitempty"`
	IsEmailVerified bool               `json:"isEmailVerified"`
	IsActive        bool               `json:"isActive"`
	CreatedAt       int64              `json:"createdAt"`
}
