package modsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	moddto "github.com/InderX84/FarmX/internal/api/mod/dto"
)

func TestBuildListFilterDefaults(t *testing.T) {
	filter, sort := BuildListFilter(&moddto.ListModsQuery{})

	if filter["status"] != "approved" {
		t.Errorf("expected default status approved, got %v", filter["status"])
	}
	if len(sort) != 1 || sort[0].Key != "createdAt" || sort[0].Value != -1 {
		t.Errorf("expected default sort createdAt desc, got %v", sort)
	}
}

func TestBuildListFilterStatusAll(t *testing.T) {
	filter, _ := BuildListFilter(&moddto.ListModsQuery{Status: "all"})
	if _, ok := filter["status"]; ok {
		t.Error("status=all should not constrain the filter")
	}
}

func TestBuildListFilterTypeAndSearch(t *testing.T) {
	filter, _ := BuildListFilter(&moddto.ListModsQuery{Type: "free", Search: "plow"})

	if filter["isFree"] != true {
		t.Errorf("expected isFree=true, got %v", filter["isFree"])
	}
	text, ok := filter["$text"].(bson.M)
	if !ok || text["$search"] != "plow" {
		t.Errorf("expected $text search on 'plow', got %v", filter["$text"])
	}
}

func TestBuildListFilterSortMapping(t *testing.T) {
	_, sort := BuildListFilter(&moddto.ListModsQuery{Sort: "rating", Order: "asc"})
	if sort[0].Key != "rating.average" || sort[0].Value != 1 {
		t.Errorf("expected rating.average asc, got %v", sort)
	}

	_, sort = BuildListFilter(&moddto.ListModsQuery{Sort: "bogus"})
	if sort[0].Key != "createdAt" {
		t.Errorf("unknown sort should fall back to createdAt, got %v", sort)
	}
}

func TestValidateArchive(t *testing.T) {
	if err := ValidateArchive("tractor.zip", 1024); err != nil {
		t.Errorf("zip should be accepted: %v", err)
	}
	if err := ValidateArchive("tractor.ZIP", 1024); err != nil {
		t.Errorf("extension check should be case insensitive: %v", err)
	}
	if err := ValidateArchive("tractor.exe", 1024); err == nil {
		t.Error("exe should be rejected")
	}
	if err := ValidateArchive("tractor.zip", MaxArchiveSize+1); err == nil {
		t.Error("oversized archive should be rejected")
	}
}

func TestValidateImage(t *testing.T) {
	if err := ValidateImage("image/png", 1024); err != nil {
		t.Errorf("png should be accepted: %v", err)
	}
	if err := ValidateImage("application/pdf", 1024); err == nil {
		t.Error("non-image should be rejected")
	}
	if err := ValidateImage("image/png", MaxImageSize+1); err == nil {
		t.Error("oversized image should be rejected")
	}
}

func TestSplitTags(t *testing.T) {
	tags := splitTags(" tractor , 4x4 ,, harvest ")
	want := []string{"tractor", "4x4", "harvest"}
	if len(tags) != len(want) {
		t.Fatalf("expected %d tags, got %v", len(want), tags)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tag %d: expected %q, got %q", i, want[i], tags[i])
		}
	}
	if splitTags("") != nil {
		t.Error("empty input should yield nil")
	}
}
