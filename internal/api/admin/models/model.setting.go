// Package models - site settings stored as key/value documents.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Setting keys.
const (
	SettingMaintenanceMode = "maintenanceMode"
)

// Setting is a single site-wide configuration entry.
type Setting struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Key       string             `json:"key" bson:"key"`
	Value     interface{}        `json:"value" bson:"value"`
	UpdatedBy primitive.ObjectID `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// BoolValue reads the value as a boolean, defaulting to false.
func (s Setting) BoolValue() bool {
	b, _ := s.Value.(bool)
	return b
}
