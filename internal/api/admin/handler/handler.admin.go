// Package adminhdl - HTTP handlers for site administration.
package adminhdl

import (
	"github.com/gofiber/fiber/v3"

	admindto "github.com/InderX84/FarmX/internal/api/admin/dto"
	models "github.com/InderX84/FarmX/internal/api/admin/models"
	adminsvc "github.com/InderX84/FarmX/internal/api/admin/service"
	basehdl "github.com/InderX84/FarmX/internal/api/base/handler"
)

// AdminHandler serves the /api/admin routes.
type AdminHandler struct {
	*basehdl.BaseHandler[models.Setting, admindto.MaintenanceInput, admindto.MaintenanceInput]
	settingService *adminsvc.SettingService
	resetService   *adminsvc.ResetService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(settingService *adminsvc.SettingService, resetService *adminsvc.ResetService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.Setting, admindto.MaintenanceInput, admindto.MaintenanceInput](settingService),
		settingService: settingService,
		resetService:   resetService,
	}
}

// HandleSetMaintenance toggles maintenance mode. Admin only.
// POST /api/admin/maintenance
func (h *AdminHandler) HandleSetMaintenance(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input admindto.MaintenanceInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		setting, err := h.settingService.SetMaintenance(c.Context(), *input.Enabled, basehdl.CurrentUserID(c))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{
			"maintenanceMode": setting.BoolValue(),
		}, nil)
		return nil
	})
}

// HandleGetMaintenance reports the maintenance flag. Public so the SPA can
// show the banner without a session.
// GET /api/admin/maintenance
func (h *AdminHandler) HandleGetMaintenance(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		h.HandleResponse(c, fiber.Map{
			"maintenanceMode": h.settingService.MaintenanceEnabled(c.Context()),
		}, nil)
		return nil
	})
}

// HandleResetDatabase wipes marketplace data and reseeds defaults. Admin
// only.
// POST /api/admin/reset-db
func (h *AdminHandler) HandleResetDatabase(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		wiped, err := h.resetService.ResetDatabase(c.Context())
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{
			"message": "Database reset complete",
			"deleted": wiped,
		}, nil)
		return nil
	})
}
