// Package router wires every HTTP route to its handler and middleware.
package router

import (
	"github.com/gofiber/fiber/v3"

	adminhdl "github.com/InderX84/FarmX/internal/api/admin/handler"
	adminsvc "github.com/InderX84/FarmX/internal/api/admin/service"
	authhdl "github.com/InderX84/FarmX/internal/api/auth/handler"
	cataloghdl "github.com/InderX84/FarmX/internal/api/catalog/handler"
	"github.com/InderX84/FarmX/internal/api/middleware"
	modhdl "github.com/InderX84/FarmX/internal/api/mod/handler"
	modrequesthdl "github.com/InderX84/FarmX/internal/api/modrequest/handler"
	notificationhdl "github.com/InderX84/FarmX/internal/api/notification/handler"
	requesthdl "github.com/InderX84/FarmX/internal/api/request/handler"
	userhdl "github.com/InderX84/FarmX/internal/api/user/handler"
)

// Handlers bundles everything the route table needs.
type Handlers struct {
	Auth          *authhdl.UserHandler
	Mods          *modhdl.ModHandler
	Games         *cataloghdl.GameHandler
	Categories    *cataloghdl.CategoryHandler
	ModRequests   *modrequesthdl.ModRequestHandler
	Requests      *requesthdl.RequestHandler
	Notifications *notificationhdl.NotificationHandler
	Users         *userhdl.UserHandler
	Admin         *adminhdl.AdminHandler

	Settings *adminsvc.SettingService
}

// SetupRoutes registers the full API surface under /api.
// In Fiber v3 route-level middleware comes after the handler.
func SetupRoutes(app *fiber.App, h *Handlers) {
	auth := middleware.AuthMiddleware()
	admin := middleware.RequireAdmin()

	app.Get("/api/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// The gate sits in front of everything except its exempt prefixes.
	app.Use(middleware.MaintenanceGate(func(c fiber.Ctx) bool {
		return h.Settings.MaintenanceEnabled(c.Context())
	}))

	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authGroup.Post("/register", h.Auth.HandleRegister)
	authGroup.Post("/verify-otp", h.Auth.HandleVerifyOTP)
	authGroup.Post("/resend-otp", h.Auth.HandleResendOTP)
	authGroup.Post("/login", h.Auth.HandleLogin)
	authGroup.Get("/me", h.Auth.HandleGetMyInfo, auth)
	authGroup.Post("/logout", h.Auth.HandleLogout, auth)

	// Mods
	mods := api.Group("/mods")
	mods.Get("/", h.Mods.HandleList)
	mods.Get("/:id", h.Mods.FindOneById)
	mods.Post("/", h.Mods.HandleCreate, auth)
	mods.Put("/:id", h.Mods.HandleUpdate, auth)
	mods.Delete("/:id", h.Mods.HandleDelete, auth)
	mods.Post("/:id/download", h.Mods.HandleDownload)
	mods.Patch("/:id/status", h.Mods.HandleUpdateStatus, admin)
	mods.Post("/:id/rating", h.Mods.HandleRate, auth)

	// Catalog
	games := api.Group("/games")
	games.Get("/", h.Games.HandleList)
	games.Post("/", h.Games.HandleCreate, admin)
	games.Put("/:id", h.Games.UpdateById, admin)
	games.Delete("/:id", h.Games.DeleteById, admin)

	categories := api.Group("/categories")
	categories.Get("/", h.Categories.HandleList)
	categories.Post("/", h.Categories.HandleCreate, admin)
	categories.Put("/:id", h.Categories.UpdateById, admin)
	categories.Delete("/:id", h.Categories.DeleteById, admin)

	// Community mod requests
	modRequests := api.Group("/mod-requests")
	modRequests.Get("/", h.ModRequests.HandleList)
	modRequests.Post("/", h.ModRequests.HandleCreate, auth)
	modRequests.Post("/:id/vote", h.ModRequests.HandleVote, auth)
	modRequests.Put("/:id/status", h.ModRequests.HandleUpdateStatus, admin)

	// Purchase requests
	requests := api.Group("/requests")
	requests.Post("/", h.Requests.HandleCreate, auth)
	requests.Get("/my-requests", h.Requests.HandleMyRequests, auth)
	requests.Get("/", h.Requests.HandleListAll, admin)
	requests.Put("/:id", h.Requests.HandleUpdate, admin)

	api.Post("/purchase/request/:modId", h.Requests.HandleRelayPurchase, auth)

	// Notifications
	notifications := api.Group("/notifications")
	notifications.Get("/", h.Notifications.HandleGetInbox, auth)
	notifications.Patch("/mark-all-read", h.Notifications.HandleMarkAllRead, auth)
	notifications.Patch("/:id/read", h.Notifications.HandleMarkRead, auth)

	// Users
	users := api.Group("/users")
	users.Get("/stats", h.Users.HandleStats)
	users.Get("/profile", h.Users.HandleGetProfile, auth)
	users.Put("/profile", h.Users.HandleUpdateProfile, auth)
	users.Get("/my-mods", h.Users.HandleMyMods, auth)
	users.Get("/dashboard-stats", h.Users.HandleDashboardStats, auth)
	users.Get("/", h.Users.HandleListUsers, admin)
	users.Put("/:id", h.Users.HandleAdminUpdate, admin)

	// Admin
	adminGroup := api.Group("/admin")
	adminGroup.Get("/maintenance", h.Admin.HandleGetMaintenance)
	adminGroup.Post("/maintenance", h.Admin.HandleSetMaintenance, admin)
	adminGroup.Post("/reset-db", h.Admin.HandleResetDatabase, admin)
}
