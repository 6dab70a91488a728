package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestApplyRatingReplacesExisting(t *testing.T) {
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()

	ratings := []Rating{
		{User: alice, Rating: 3},
		{User: bob, Rating: 5},
	}

	ratings = ApplyRating(ratings, Rating{User: alice, Rating: 4, Comment: "better now"})

	if len(ratings) != 2 {
		t.Fatalf("expected 2 ratings, got %d", len(ratings))
	}
	if ratings[0].Rating != 4 || ratings[0].Comment != "better now" {
		t.Errorf("existing rating not replaced: %+v", ratings[0])
	}
}

func TestApplyRatingAppendsNew(t *testing.T) {
	ratings := ApplyRating(nil, Rating{User: primitive.NewObjectID(), Rating: 5})
	if len(ratings) != 1 {
		t.Fatalf("expected 1 rating, got %d", len(ratings))
	}
}

func TestSummarizeRatings(t *testing.T) {
	if got := SummarizeRatings(nil); got.Average != 0 || got.Count != 0 {
		t.Errorf("empty ratings should summarize to zero, got %+v", got)
	}

	ratings := []Rating{
		{User: primitive.NewObjectID(), Rating: 2},
		{User: primitive.NewObjectID(), Rating: 5},
		{User: primitive.NewObjectID(), Rating: 5},
	}
	got := SummarizeRatings(ratings)
	if got.Count != 3 {
		t.Errorf("expected count 3, got %d", got.Count)
	}
	if got.Average != 4 {
		t.Errorf("expected average 4, got %v", got.Average)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusApproved, StatusRejected} {
		if !ValidStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if ValidStatus("published") {
		t.Error("expected unknown status to be invalid")
	}
}
