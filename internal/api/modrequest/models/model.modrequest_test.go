package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToggleVoteAddsAndRemoves(t *testing.T) {
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()

	votes, added := ToggleVote(nil, alice)
	if !added || len(votes) != 1 {
		t.Fatalf("first vote should be added, got added=%v votes=%v", added, votes)
	}

	votes, added = ToggleVote(votes, bob)
	if !added || len(votes) != 2 {
		t.Fatalf("second user's vote should be added, got added=%v votes=%v", added, votes)
	}

	votes, added = ToggleVote(votes, alice)
	if added || len(votes) != 1 {
		t.Fatalf("repeat vote should be removed, got added=%v votes=%v", added, votes)
	}
	if votes[0] != bob {
		t.Error("remaining vote should belong to the other user")
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusInProgress, StatusCompleted, StatusRejected} {
		if !ValidStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if ValidStatus("done") {
		t.Error("expected unknown status to be invalid")
	}
}
