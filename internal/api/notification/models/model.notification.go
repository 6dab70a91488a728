// Package models - per-user notifications.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification types.
const (
	TypeModApproved      = "mod_approved"
	TypeModRejected      = "mod_rejected"
	TypeModDeleted       = "mod_deleted"
	TypePurchaseRequest  = "purchase_request"
	TypeRequestCompleted = "request_completed"
	TypeSystem           = "system"
)

// Notification is a single inbox entry for a user.
type Notification struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	Type      string             `json:"type" bson:"type"`
	Title     string             `json:"title" bson:"title"`
	Message   string             `json:"message" bson:"message"`
	Link      string             `json:"link,omitempty" bson:"link,omitempty"`
	IsRead    bool               `json:"isRead" bson:"isRead"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
