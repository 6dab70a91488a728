// Package authhdl - HTTP handlers for registration, verification and login.
package authhdl

import (
	"github.com/gofiber/fiber/v3"

	authdto "github.com/InderX84/FarmX/internal/api/auth/dto"
	models "github.com/InderX84/FarmX/internal/api/auth/models"
	authsvc "github.com/InderX84/FarmX/internal/api/auth/service"
	basehdl "github.com/InderX84/FarmX/internal/api/base/handler"
	"github.com/InderX84/FarmX/internal/common"
)

// UserHandler serves the /api/auth routes.
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.RegisterInput, authdto.RegisterInput]
	userService *authsvc.UserService
}

// NewUserHandler creates a UserHandler around the given service.
func NewUserHandler(userService *authsvc.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: basehdl.NewBaseHandler[models.User, authdto.RegisterInput, authdto.RegisterInput](userService),
		userService: userService,
	}
}

// HandleRegister creates an unverified account and sends a verification code.
// POST /api/auth/register
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.RegisterInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.userService.Register(c.Context(), &input)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleVerifyOTP verifies the emailed code and opens a session.
// POST /api/auth/verify-otp
func (h *UserHandler) HandleVerifyOTP(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.VerifyOTPInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.userService.VerifyOTP(c.Context(), &input)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleResendOTP issues a fresh verification code.
// POST /api/auth/resend-otp
func (h *UserHandler) HandleResendOTP(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.ResendOTPInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err := h.userService.ResendOTP(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{"message": "A new verification code has been sent"}, nil)
		return nil
	})
}

// HandleLogin authenticates by email and password.
// POST /api/auth/login
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.LoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.userService.Login(c.Context(), &input)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetMyInfo returns the authenticated user.
// GET /api/auth/me
func (h *UserHandler) HandleGetMyInfo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user, ok := c.Locals("user").(models.User)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}
		h.HandleResponse(c, user.Public(), nil)
		return nil
	})
}

// HandleLogout clears the stored session token.
// POST /api/auth/logout
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user, ok := c.Locals("user").(models.User)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}
		err := h.userService.Logout(c.Context(), user.ID)
		h.HandleResponse(c, fiber.Map{"message": "Logged out"}, err)
		return nil
	})
}
