// Package models - the mod catalog: uploaded mods, their ratings and
// moderation state.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Moderation states.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ValidStatus reports whether s is a known moderation state.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Rating is a single user's rating of a mod.
type Rating struct {
	User      primitive.ObjectID `json:"user" bson:"user"`
	Rating    int                `json:"rating" bson:"rating"`
	Comment   string             `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
}

// RatingSummary is the denormalized aggregate over Ratings.
type RatingSummary struct {
	Average float64 `json:"average" bson:"average"`
	Count   int     `json:"count" bson:"count"`
}

// Mod is a published or pending marketplace mod. Exactly one of FileURL and
// DownloadLink may be empty.
type Mod struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title           string             `json:"title" bson:"title"`
	Description     string             `json:"description" bson:"description"`
	Version         string             `json:"version,omitempty" bson:"version,omitempty"`
	Tags            []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	Game            primitive.ObjectID `json:"game,omitempty" bson:"game,omitempty"`
	GameName        string             `json:"gameName,omitempty" bson:"gameName,omitempty"`
	Category        primitive.ObjectID `json:"category,omitempty" bson:"category,omitempty"`
	FileURL         string             `json:"fileUrl,omitempty" bson:"fileUrl,omitempty"`
	DownloadLink    string             `json:"downloadLink,omitempty" bson:"downloadLink,omitempty"`
	Images          []string           `json:"images,omitempty" bson:"images,omitempty"`
	IsFree          bool               `json:"isFree" bson:"isFree"`
	Price           float64            `json:"price" bson:"price"`
	ContactEmail    string             `json:"contactEmail,omitempty" bson:"contactEmail,omitempty"`
	Status          string             `json:"status" bson:"status"`
	RejectionReason string             `json:"rejectionReason,omitempty" bson:"rejectionReason,omitempty"`
	Downloads       int64              `json:"downloads" bson:"downloads"`
	Ratings         []Rating           `json:"ratings,omitempty" bson:"ratings,omitempty"`
	Rating          RatingSummary      `json:"rating" bson:"rating"`
	CreatedBy       primitive.ObjectID `json:"createdBy" bson:"createdBy"`
	CreatedAt       int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64              `json:"updatedAt" bson:"updatedAt"`
}

// ApplyRating inserts or replaces the rating of one user and returns the new
// slice. Each user holds at most one rating per mod.
func ApplyRating(ratings []Rating, entry Rating) []Rating {
	for i, r := range ratings {
		if r.User == entry.User {
			ratings[i] = entry
			return ratings
		}
	}
	return append(ratings, entry)
}

// SummarizeRatings recomputes the denormalized average and count.
func SummarizeRatings(ratings []Rating) RatingSummary {
	if len(ratings) == 0 {
		return RatingSummary{}
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}
	return RatingSummary{
		Average: float64(sum) / float64(len(ratings)),
		Count:   len(ratings),
	}
}
