package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP status code constants
const (
	// Success codes (2xx)
	StatusOK        = 200
	StatusCreated   = 201
	StatusAccepted  = 202
	StatusNoContent = 204

	// Client error codes (4xx)
	StatusBadRequest       = 400
	StatusUnauthorized     = 401
	StatusForbidden        = 403
	StatusNotFound         = 404
	StatusConflict         = 409
	StatusTooManyRequests  = 429

	// Server error codes (5xx)
	StatusInternalServerError = 500
	StatusServiceUnavailable  = 503
)

// Response messages
const (
	MsgSuccess = "Operation successful"
	MsgCreated = "Created successfully"

	MsgBadRequest         = "Invalid request"
	MsgUnauthorized       = "Please log in"
	MsgForbidden          = "Access denied"
	MsgNotFound           = "Resource not found"
	MsgConflict           = "Data conflict"
	MsgTooManyRequests    = "Too many requests"
	MsgInternalError      = "Internal server error"
	MsgServiceUnavailable = "Service unavailable"

	MsgTokenMissing = "Missing authentication token"
	MsgTokenInvalid = "Invalid token"

	MsgValidationError = "Invalid data"
	MsgDatabaseError   = "Database error"
	MsgInvalidFormat   = "Invalid data format"
)

// ErrorCode identifies an error class.
type ErrorCode struct {
	Code        string // Machine-readable code (e.g. AUTH_001)
	Category    string // Broad category (e.g. Authentication)
	SubCategory string // Narrow category (e.g. Token)
	Description string
}

// Error codes, grouped by category.
var (
	// System errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Internal system error",
	}

	// Authentication errors (AUTH_xxx)
	ErrCodeAuth = ErrorCode{
		Code:        "AUTH",
		Category:    "Authentication",
		SubCategory: "General",
		Description: "General authentication error",
	}

	ErrCodeAuthToken = ErrorCode{
		Code:        "AUTH_001",
		Category:    "Authentication",
		SubCategory: "Token",
		Description: "Token error",
	}

	ErrCodeAuthCredentials = ErrorCode{
		Code:        "AUTH_002",
		Category:    "Authentication",
		SubCategory: "Credentials",
		Description: "Credentials error",
	}

	ErrCodeAuthRole = ErrorCode{
		Code:        "AUTH_003",
		Category:    "Authentication",
		SubCategory: "Role",
		Description: "Role error",
	}

	ErrCodeAuthOTP = ErrorCode{
		Code:        "AUTH_004",
		Category:    "Authentication",
		SubCategory: "OTP",
		Description: "Email verification code error",
	}

	// Validation errors (VAL_xxx)
	ErrCodeValidation = ErrorCode{
		Code:        "VAL",
		Category:    "Validation",
		SubCategory: "General",
		Description: "General validation error",
	}

	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Input data error",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Data format error",
	}

	// Database errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "General database error",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Database connection error",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Database query error",
	}

	// Business logic errors (BIZ_xxx)
	ErrCodeBusiness = ErrorCode{
		Code:        "BIZ",
		Category:    "Business",
		SubCategory: "General",
		Description: "General business logic error",
	}

	ErrCodeBusinessState = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "State",
		Description: "Business state error",
	}

	ErrCodeBusinessOperation = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Operation",
		Description: "Business operation error",
	}
)

// Error is the detailed error type returned by services and handlers.
type Error struct {
	Code       ErrorCode
	Message    string
	StatusCode int
	Details    any
}

// Error returns the error message.
func (e *Error) Error() string {
	return e.Message
}

// Is supports errors.Is comparison by code and message.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}
	return false
}

// NewError builds an *Error with full information.
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Shared sentinel errors.
var (
	// Authentication
	ErrInvalidCredentials = NewError(ErrCodeAuthCredentials, "Invalid credentials", StatusUnauthorized, nil)
	ErrEmailNotVerified   = NewError(ErrCodeAuthCredentials, "Please verify your email first", StatusUnauthorized, nil)
	ErrTokenExpired       = NewError(ErrCodeAuthToken, "Session has expired", StatusUnauthorized, nil)
	ErrTokenInvalid       = NewError(ErrCodeAuthToken, MsgTokenInvalid, StatusUnauthorized, nil)
	ErrTokenMissing       = NewError(ErrCodeAuthToken, MsgTokenMissing, StatusUnauthorized, nil)
	ErrUserNotFound       = NewError(ErrCodeAuthCredentials, "User not found", StatusNotFound, nil)
	ErrNotAuthorized      = NewError(ErrCodeAuthRole, "Not authorized", StatusForbidden, nil)

	// OTP verification
	ErrOTPInvalid     = NewError(ErrCodeAuthOTP, "Invalid OTP", StatusBadRequest, nil)
	ErrOTPExpired     = NewError(ErrCodeAuthOTP, "OTP expired", StatusBadRequest, nil)
	ErrOTPAttempts    = NewError(ErrCodeAuthOTP, "Too many failed attempts. Please request a new OTP.", StatusTooManyRequests, nil)
	ErrOTPResendLimit = NewError(ErrCodeAuthOTP, "Please wait 1 minute before requesting another OTP", StatusTooManyRequests, nil)

	// Validation
	ErrInvalidInput  = NewError(ErrCodeValidationInput, "Invalid input data", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, MsgInvalidFormat, StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Missing required field", StatusBadRequest, nil)

	// Database
	ErrNotFound   = NewError(ErrCodeDatabaseQuery, "Data not found", StatusNotFound, nil)
	ErrDuplicate  = NewError(ErrCodeDatabaseQuery, "Data already exists", StatusConflict, nil)
	ErrConnection = NewError(ErrCodeDatabaseConnection, "Database connection error", StatusServiceUnavailable, nil)

	// Business logic
	ErrInvalidState     = NewError(ErrCodeBusinessState, "Invalid state", StatusBadRequest, nil)
	ErrInvalidOperation = NewError(ErrCodeBusinessOperation, "Invalid operation", StatusBadRequest, nil)

	// Maintenance gate
	ErrMaintenanceMode = NewError(ErrCodeBusinessState,
		"Site is currently under maintenance. Please try again later.",
		StatusServiceUnavailable, nil)
)

// MongoDB specific errors.
var (
	ErrMongoConnection = NewError(ErrCodeDatabaseConnection, "MongoDB connection error", StatusServiceUnavailable, nil)
	ErrMongoNetwork    = NewError(ErrCodeDatabaseConnection, "MongoDB network error", StatusServiceUnavailable, nil)
	ErrMongoTimeout    = NewError(ErrCodeDatabaseConnection, "MongoDB connection timed out", StatusServiceUnavailable, nil)
	ErrMongoAuth       = NewError(ErrCodeAuth, "MongoDB authentication error", StatusUnauthorized, nil)
	ErrMongoQuery      = NewError(ErrCodeDatabaseQuery, "MongoDB query error", StatusInternalServerError, nil)
	ErrMongoWrite      = NewError(ErrCodeDatabaseQuery, "MongoDB write error", StatusInternalServerError, nil)
	ErrMongoDuplicate  = NewError(ErrCodeDatabaseQuery, "Duplicate data in MongoDB", StatusConflict, nil)
	ErrMongoSystem     = NewError(ErrCodeDatabase, "MongoDB system error", StatusInternalServerError, nil)
)

// ConvertMongoError maps a MongoDB driver error to the application taxonomy.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// ErrNotFound passes through untouched.
	if errors.Is(err, ErrNotFound) {
		return err
	}

	var mongoErr mongo.CommandError
	if errors.As(err, &mongoErr) {
		switch {
		case mongoErr.Code >= 100 && mongoErr.Code < 200:
			return ErrMongoConnection
		case mongoErr.Code >= 200 && mongoErr.Code < 300:
			return ErrMongoAuth
		case mongoErr.Code >= 300 && mongoErr.Code < 400:
			return ErrMongoQuery
		case mongoErr.Code >= 400 && mongoErr.Code < 500:
			return ErrMongoWrite
		case mongoErr.Code >= 500:
			return ErrMongoSystem
		}
	}

	if mongo.IsDuplicateKeyError(err) {
		return ErrMongoDuplicate
	}
	if mongo.IsNetworkError(err) {
		return ErrMongoNetwork
	}
	if mongo.IsTimeout(err) {
		return ErrMongoTimeout
	}

	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err)
}
