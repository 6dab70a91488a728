// Package models - purchase requests for paid mods.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Request states.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// ValidStatus reports whether s is a known request state.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Request is a buyer's purchase request for a paid mod. Payment itself
// happens off-platform; the marketplace only relays contact.
type Request struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Mod        primitive.ObjectID `json:"mod" bson:"mod"`
	ModTitle   string             `json:"modTitle" bson:"modTitle"`
	User       primitive.ObjectID `json:"user" bson:"user"`
	Message    string             `json:"message" bson:"message"`
	Status     string             `json:"status" bson:"status"`
	AdminNotes string             `json:"adminNotes,omitempty" bson:"adminNotes,omitempty"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
