// Package userhdl - HTTP handlers for stats, profiles and user
// administration.
package userhdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	authmodels "github.com/InderX84/FarmX/internal/api/auth/models"
	basehdl "github.com/InderX84/FarmX/internal/api/base/handler"
	userdto "github.com/InderX84/FarmX/internal/api/user/dto"
	usersvc "github.com/InderX84/FarmX/internal/api/user/service"
	"github.com/InderX84/FarmX/internal/common"
)

// UserHandler serves the /api/users routes.
type UserHandler struct {
	*basehdl.BaseHandler[authmodels.User, userdto.UpdateProfileInput, userdto.AdminUpdateUserInput]
	userService *usersvc.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(userService *usersvc.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: basehdl.NewBaseHandler[authmodels.User, userdto.UpdateProfileInput, userdto.AdminUpdateUserInput](userService),
		userService: userService,
	}
}

// HandleStats returns public site totals.
// GET /api/users/stats
func (h *UserHandler) HandleStats(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		stats, err := h.userService.Stats(c.Context())
		h.HandleResponse(c, stats, err)
		return nil
	})
}

// HandleGetProfile returns the caller's profile.
// GET /api/users/profile
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user, ok := c.Locals("user").(authmodels.User)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}
		h.HandleResponse(c, user.Public(), nil)
		return nil
	})
}

// HandleUpdateProfile applies a partial profile update.
// PUT /api/users/profile
func (h *UserHandler) HandleUpdateProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := basehdl.CurrentUserID(c)
		if userID.IsZero() {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		var input userdto.UpdateProfileInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		profile, err := h.userService.UpdateProfile(c.Context(), userID, &input)
		h.HandleResponse(c, profile, err)
		return nil
	})
}

// HandleMyMods returns the caller's own mods, newest first.
// GET /api/users/my-mods
func (h *UserHandler) HandleMyMods(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := basehdl.CurrentUserID(c)
		if userID.IsZero() {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		mods, err := h.userService.MyMods(c.Context(), userID)
		h.HandleResponse(c, mods, err)
		return nil
	})
}

// HandleDashboardStats returns the role-dependent dashboard block.
// GET /api/users/dashboard-stats
func (h *UserHandler) HandleDashboardStats(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user, ok := c.Locals("user").(authmodels.User)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		stats, err := h.userService.DashboardStats(c.Context(), user)
		h.HandleResponse(c, stats, err)
		return nil
	})
}

// HandleListUsers returns one admin page of users.
// GET /api/users
func (h *UserHandler) HandleListUsers(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
		limit, _ := strconv.ParseInt(c.Query("limit", "20"), 10, 64)

		result, err := h.userService.ListUsers(c.Context(), page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleAdminUpdate changes a user's role or active flag. Admin only.
// PUT /api/users/:id
func (h *UserHandler) HandleAdminUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input userdto.AdminUpdateUserInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.AdminUpdate(c.Context(), id, &input)
		h.HandleResponse(c, user, err)
		return nil
	})
}
