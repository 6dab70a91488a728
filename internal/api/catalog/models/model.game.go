// Package models - catalog reference data: supported games and mod categories.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Game is a farming simulator title mods can target.
type Game struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	ShortName string             `json:"shortName,omitempty" bson:"shortName,omitempty"`
	Image     string             `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
