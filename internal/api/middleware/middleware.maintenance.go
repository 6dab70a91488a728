package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	models "github.com/InderX84/FarmX/internal/api/auth/models"
	basehdl "github.com/InderX84/FarmX/internal/api/base/handler"
	"github.com/InderX84/FarmX/internal/common"
)

// Paths that stay reachable during maintenance: admins still need to manage
// the site and users need to log in so the gate can recognize them.
var maintenanceExemptPrefixes = []string{
	"/api/admin",
	"/api/auth",
	"/api/health",
}

// MaintenanceGate returns 503 for all non-exempt routes while maintenance
// mode is on. Authenticated admins pass through.
func MaintenanceGate(enabled func(c fiber.Ctx) bool) fiber.Handler {
	return func(c fiber.Ctx) error {
		path := c.Path()
		for _, prefix := range maintenanceExemptPrefixes {
			if strings.HasPrefix(path, prefix) {
				return c.Next()
			}
		}

		if !enabled(c) {
			return c.Next()
		}

		// Admins are exempt; a best-effort token resolve decides.
		if token := bearerToken(c); token != "" {
			if user, err := GetAuthManager().resolveUser(c, token); err == nil && user.Role == models.RoleAdmin {
				return c.Next()
			}
		}

		customErr := common.ErrMaintenanceMode.(*common.Error)
		return basehdl.JSONResponse(c, customErr.StatusCode, fiber.Map{
			"code":            customErr.Code.Code,
			"message":         customErr.Message,
			"maintenanceMode": true,
			"status":          "error",
		})
	}
}
