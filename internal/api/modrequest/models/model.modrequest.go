// Package models - community mod requests and their votes.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Request states.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusRejected   = "rejected"
)

// ValidStatus reports whether s is a known request state.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// ModRequest is a community wish for a mod that does not exist yet. Votes
// holds the ids of users who upvoted; VoteCount always mirrors its length.
type ModRequest struct {
	ID           primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Title        string               `json:"title" bson:"title"`
	Description  string               `json:"description" bson:"description"`
	Category     string               `json:"category,omitempty" bson:"category,omitempty"`
	Image        string               `json:"image,omitempty" bson:"image,omitempty"`
	Status       string               `json:"status" bson:"status"`
	DownloadLink string               `json:"downloadLink,omitempty" bson:"downloadLink,omitempty"`
	Votes        []primitive.ObjectID `json:"votes" bson:"votes"`
	VoteCount    int                  `json:"voteCount" bson:"voteCount"`
	CreatedBy    primitive.ObjectID   `json:"createdBy" bson:"createdBy"`
	CreatedAt    int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64                `json:"updatedAt" bson:"updatedAt"`
}

// ToggleVote adds the user's vote or removes it when already present.
// Returns the new slice and whether the vote was added.
func ToggleVote(votes []primitive.ObjectID, userID primitive.ObjectID) ([]primitive.ObjectID, bool) {
	for i, v := range votes {
		if v == userID {
			return append(votes[:i], votes[i+1:]...), false
		}
	}
	return append(votes, userID), true
}
