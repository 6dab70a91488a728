package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category groups mods by type (tractors, maps, tools, ...).
type Category struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Icon        string             `json:"icon,omitempty" bson:"icon,omitempty"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
