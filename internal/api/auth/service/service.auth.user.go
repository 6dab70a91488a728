package authsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "github.com/InderX84/FarmX/internal/api/auth/dto"
	models "github.com/InderX84/FarmX/internal/api/auth/models"
	basesvc "github.com/InderX84/FarmX/internal/api/base/service"
	"github.com/InderX84/FarmX/internal/common"
	"github.com/InderX84/FarmX/internal/global"
	"github.com/InderX84/FarmX/internal/mailer"
	"github.com/InderX84/FarmX/internal/utility"
)

// Session tokens stay valid this long.
const TokenLifetime = 7 * 24 * time.Hour

// UserService handles registration, email verification and login.
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
	mail *mailer.Mailer
}

// NewUserService creates a UserService. mail may be nil; verification codes
// are then only stored, not delivered.
func NewUserService(mail *mailer.Mailer) (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
		mail:                 mail,
	}, nil
}

// RegisterResult is returned by Register; the client needs the user id to
// submit the verification code.
type RegisterResult struct {
	UserID  primitive.ObjectID `json:"userId"`
	Email   string             `json:"email"`
	Message string             `json:"message"`
}

// LoginResult bundles the session token with the public user view.
type LoginResult struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// Register creates an unverified account and emails a verification code.
func (s *UserService) Register(ctx context.Context, input *authdto.RegisterInput) (*RegisterResult, error) {
	exists, err := s.DocumentExists(ctx, bson.M{"$or": bson.A{
		bson.M{"email": input.Email},
		bson.M{"username": input.Username},
	}})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewError(common.ErrCodeValidationInput,
			"An account with this email or username already exists",
			common.StatusBadRequest, nil)
	}

	hash, err := utility.HashPassword(input.Password)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Failed to hash password", common.StatusInternalServerError, err)
	}

	code, err := utility.GenerateOTP(OTPLength)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Failed to generate verification code", common.StatusInternalServerError, err)
	}

	role := input.Role
	if role == "" {
		role = models.RoleUser
	}

	now := time.Now()
	user := models.User{
		Username:        input.Username,
		Email:           input.Email,
		Password:        hash,
		Role:            role,
		IsEmailVerified: false,
		IsActive:        true,
		OTP:             code,
		OTPExpiresAt:    now.Add(OTPTTL).UnixMilli(),
		LastOTPRequest:  now.UnixMilli(),
	}

	created, err := s.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}

	s.sendOTPAsync(created.Email, created.Username, code)

	return &RegisterResult{
		UserID:  created.ID,
		Email:   created.Email,
		Message: "Registration successful. Please check your email for the verification code.",
	}, nil
}

// VerifyOTP checks the submitted code, marks the account verified and opens a
// session. Wrong codes count against the attempt limit; an already verified
// account gets a 400 and never a session.
func (s *UserService) VerifyOTP(ctx context.Context, input *authdto.VerifyOTPInput) (*LoginResult, error) {
	userID := utility.String2ObjectID(input.UserID)
	if userID.IsZero() {
		return nil, common.ErrInvalidInput
	}

	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}

	if err := CheckVerification(user.IsEmailVerified, user.OTP, user.OTPExpiresAt, user.OTPAttempts, input.OTP, time.Now()); err != nil {
		if errors.Is(err, common.ErrOTPInvalid) {
			if _, updErr := s.UpdateById(ctx, user.ID, &basesvc.UpdateData{
				Inc: map[string]interface{}{"otpAttempts": 1},
			}); updErr != nil {
				logrus.WithError(updErr).Warn("VerifyOTP: failed to record failed attempt")
			}
		}
		return nil, err
	}

	if _, err := s.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"isEmailVerified": true},
		Unset: map[string]interface{}{
			"otp":            "",
			"otpExpiresAt":   "",
			"otpAttempts":    "",
			"lastOtpRequest": "",
		},
	}); err != nil {
		return nil, err
	}

	user.IsEmailVerified = true
	return s.openSession(ctx, &user)
}

// ResendOTP issues a fresh verification code, rate limited per user.
func (s *UserService) ResendOTP(ctx context.Context, input *authdto.ResendOTPInput) error {
	userID := utility.String2ObjectID(input.UserID)
	if userID.IsZero() {
		return common.ErrInvalidInput
	}

	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrUserNotFound
		}
		return err
	}

	if user.IsEmailVerified {
		return errAlreadyVerified
	}

	if !CanResendOTP(user.LastOTPRequest, time.Now()) {
		return common.ErrOTPResendLimit
	}

	code, err := utility.GenerateOTP(OTPLength)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Failed to generate verification code", common.StatusInternalServerError, err)
	}

	now := time.Now()
	if _, err := s.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"otp":            code,
			"otpExpiresAt":   now.Add(OTPTTL).UnixMilli(),
			"lastOtpRequest": now.UnixMilli(),
		},
		Unset: map[string]interface{}{"otpAttempts": ""},
	}); err != nil {
		return err
	}

	s.sendOTPAsync(user.Email, user.Username, code)
	return nil
}

// Login verifies credentials and opens a session. Unverified accounts get a
// response carrying the user id so the client can redirect to verification.
func (s *UserService) Login(ctx context.Context, input *authdto.LoginInput) (*LoginResult, error) {
	user, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utility.ComparePassword(user.Password, input.Password) {
		return nil, common.ErrInvalidCredentials
	}

	if !user.IsEmailVerified {
		return nil, common.NewError(common.ErrCodeAuthCredentials,
			"Please verify your email first",
			common.StatusUnauthorized,
			map[string]interface{}{
				"userId":            user.ID.Hex(),
				"needsVerification": true,
			})
	}

	if !user.IsActive {
		return nil, common.NewError(common.ErrCodeAuthCredentials,
			"Account has been deactivated", common.StatusUnauthorized, nil)
	}

	return s.openSession(ctx, &user)
}

// FindByToken resolves the user owning a session token. Used by the auth
// middleware.
func (s *UserService) FindByToken(ctx context.Context, token string) (models.User, error) {
	return s.FindOne(ctx, bson.M{"token": token}, nil)
}

// Logout clears the stored session token.
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Unset: map[string]interface{}{"token": ""},
	})
	return err
}

// openSession mints a token, stores it on the user and returns the result.
func (s *UserService) openSession(ctx context.Context, user *models.User) (*LoginResult, error) {
	token, err := utility.CreateToken(global.ServerConfig.JwtSecret, user.ID.Hex(), TokenLifetime)
	if err != nil {
		return nil, common.NewError(common.ErrCodeAuthToken, "Failed to create session token", common.StatusInternalServerError, err)
	}

	if _, err := s.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"token": token},
	}); err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: user.Public()}, nil
}

// sendOTPAsync delivers the verification code without blocking the request.
// Failures are logged; the code can always be resent.
func (s *UserService) sendOTPAsync(email, name, code string) {
	if s.mail == nil {
		logrus.WithField("email", email).Warn("SMTP not configured, verification code not sent")
		return
	}
	go func() {
		if err := s.mail.SendOTP(email, name, code); err != nil {
			logrus.WithFields(logrus.Fields{
				"email": email,
				"error": err.Error(),
			}).Error("Failed to send verification code")
		}
	}()
}
