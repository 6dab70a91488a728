package utility

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToMapHonorsBsonTags(t *testing.T) {
	type doc struct {
		Name  string `bson:"name"`
		Email string `bson:"email,omitempty"`
	}

	m, err := ToMap(doc{Name: "jack"})
	if err != nil {
		t.Fatalf("ToMap failed: %v", err)
	}
	if m["name"] != "jack" {
		t.Errorf("expected name=jack, got %v", m["name"])
	}
	if _, ok := m["email"]; ok {
		t.Errorf("omitempty field should be absent, got %v", m["email"])
	}
}

func TestCustomBsonSet(t *testing.T) {
	type doc struct {
		Title string `bson:"title"`
	}

	cb := &CustomBson{}
	m, err := cb.Set(doc{Title: "updated"})
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	set, ok := m["$set"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected $set map, got %T", m["$set"])
	}
	if set["title"] != "updated" {
		t.Errorf("expected title=updated, got %v", set["title"])
	}
}

func TestString2ObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	if got := String2ObjectID(id.Hex()); got != id {
		t.Errorf("round trip mismatch: %v != %v", got, id)
	}
	if got := String2ObjectID("not-an-id"); got != primitive.NilObjectID {
		t.Errorf("invalid hex should yield NilObjectID, got %v", got)
	}
}

func TestCacheExpiry(t *testing.T) {
	cache := NewCache(30*time.Millisecond, time.Minute)
	defer cache.Stop()

	cache.Set("k", "v")
	if v, ok := cache.Get("k"); !ok || v != "v" {
		t.Fatalf("expected fresh entry, got %v %v", v, ok)
	}

	time.Sleep(50 * time.Millisecond)
	if _, ok := cache.Get("k"); ok {
		t.Error("expected entry to expire")
	}
}

func TestGenerateOTP(t *testing.T) {
	code, err := GenerateOTP(6)
	if err != nil {
		t.Fatalf("GenerateOTP failed: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("expected 6 digits, got %q", code)
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			t.Errorf("expected digits only, got %q", code)
		}
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Sup3r-secret")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !ComparePassword(hash, "Sup3r-secret") {
		t.Error("expected matching password to verify")
	}
	if ComparePassword(hash, "wrong") {
		t.Error("expected wrong password to fail")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := CreateToken("test-secret", "abc123", time.Hour)
	if err != nil {
		t.Fatalf("CreateToken failed: %v", err)
	}

	claims, err := ParseToken("test-secret", token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims.UserID != "abc123" {
		t.Errorf("expected userId abc123, got %s", claims.UserID)
	}

	if _, err := ParseToken("other-secret", token); err == nil {
		t.Error("expected wrong secret to fail verification")
	}
}
