// Package notificationsvc - creating and reading user notifications.
package notificationsvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/InderX84/FarmX/internal/api/base/service"
	models "github.com/InderX84/FarmX/internal/api/notification/models"
	"github.com/InderX84/FarmX/internal/common"
	"github.com/InderX84/FarmX/internal/global"
)

// The inbox only ever returns the most recent entries.
const inboxLimit = 20

// NotificationService manages the notifications collection.
type NotificationService struct {
	*basesvc.BaseServiceMongoImpl[models.Notification]
}

// NewNotificationService creates a NotificationService.
func NewNotificationService() (*NotificationService, error) {
	notificationCollection, exist := global.RegistryCollections.Get(global.ColNames.Notifications)
	if !exist {
		return nil, fmt.Errorf("failed to get notifications collection: %v", common.ErrNotFound)
	}
	return &NotificationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Notification](notificationCollection),
	}, nil
}

// Notify stores a notification for a user.
func (s *NotificationService) Notify(ctx context.Context, userID primitive.ObjectID, ntype, title, message, link string) error {
	_, err := s.InsertOne(ctx, models.Notification{
		User:    userID,
		Type:    ntype,
		Title:   title,
		Message: message,
		Link:    link,
		IsRead:  false,
	})
	return err
}

// NotifyAsync stores a notification without blocking the caller. Delivery is
// best effort; failures are logged.
func (s *NotificationService) NotifyAsync(userID primitive.ObjectID, ntype, title, message, link string) {
	go func() {
		if err := s.Notify(context.Background(), userID, ntype, title, message, link); err != nil {
			logrus.WithFields(logrus.Fields{
				"user":  userID.Hex(),
				"type":  ntype,
				"error": err.Error(),
			}).Error("Failed to store notification")
		}
	}()
}

// Inbox bundles the latest notifications with the unread count.
type Inbox struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int64                 `json:"unreadCount"`
}

// GetInbox returns the latest notifications for a user plus the total number
// of unread ones.
func (s *NotificationService) GetInbox(ctx context.Context, userID primitive.ObjectID) (*Inbox, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(inboxLimit)

	notifications, err := s.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return nil, err
	}

	unread, err := s.CountDocuments(ctx, bson.M{"user": userID, "isRead": false})
	if err != nil {
		return nil, err
	}

	return &Inbox{Notifications: notifications, UnreadCount: unread}, nil
}

// MarkRead marks one notification as read. The user filter keeps users from
// touching other inboxes.
func (s *NotificationService) MarkRead(ctx context.Context, id, userID primitive.ObjectID) (models.Notification, error) {
	return s.UpdateOne(ctx, bson.M{"_id": id, "user": userID}, &basesvc.UpdateData{
		Set: map[string]interface{}{"isRead": true},
	}, nil)
}

// MarkAllRead marks every unread notification of a user as read.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return s.UpdateMany(ctx, bson.M{"user": userID, "isRead": false}, &basesvc.UpdateData{
		Set: map[string]interface{}{"isRead": true},
	}, nil)
}
