// Package notificationhdl - HTTP handlers for the notification inbox.
package notificationhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/InderX84/FarmX/internal/api/base/handler"
	models "github.com/InderX84/FarmX/internal/api/notification/models"
	notificationsvc "github.com/InderX84/FarmX/internal/api/notification/service"
	"github.com/InderX84/FarmX/internal/common"
)

// NotificationHandler serves the /api/notifications routes. All routes
// require authentication.
type NotificationHandler struct {
	*basehdl.BaseHandler[models.Notification, models.Notification, models.Notification]
	notificationService *notificationsvc.NotificationService
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(notificationService *notificationsvc.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         basehdl.NewBaseHandler[models.Notification, models.Notification, models.Notification](notificationService),
		notificationService: notificationService,
	}
}

// HandleGetInbox returns the latest notifications plus the unread count.
// GET /api/notifications
func (h *NotificationHandler) HandleGetInbox(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := basehdl.CurrentUserID(c)
		if userID.IsZero() {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		inbox, err := h.notificationService.GetInbox(c.Context(), userID)
		h.HandleResponse(c, inbox, err)
		return nil
	})
}

// HandleMarkRead marks one notification as read.
// PATCH /api/notifications/:id/read
func (h *NotificationHandler) HandleMarkRead(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		userID := basehdl.CurrentUserID(c)

		data, err := h.notificationService.MarkRead(c.Context(), id, userID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleMarkAllRead marks every unread notification as read.
// PATCH /api/notifications/mark-all-read
func (h *NotificationHandler) HandleMarkAllRead(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := basehdl.CurrentUserID(c)

		count, err := h.notificationService.MarkAllRead(c.Context(), userID)
		h.HandleResponse(c, fiber.Map{"updated": count}, err)
		return nil
	})
}
