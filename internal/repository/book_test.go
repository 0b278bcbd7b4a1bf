package repository

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTitleFilter_EmptyMatchesAll(t *testing.T) {
	filter := titleFilter("")
	if len(filter) != 0 {
		t.Errorf("expected empty filter, got %v", filter)
	}
}

func TestTitleFilter_CaseInsensitiveSubstring(t *testing.T) {
	filter := titleFilter("hobbit")

	re, ok := filter["title"].(primitive.Regex)
	if !ok {
		t.Fatalf("expected a regex on title, got %T", filter["title"])
	}

	if re.Pattern != "hobbit" {
		t.Errorf("expected pattern %q, got %q", "hobbit", re.Pattern)
	}
	if re.Options != "i" {
		t.Errorf("expected case-insensitive options, got %q", re.Options)
	}
}

func TestTitleFilter_EscapesRegexMetacharacters(t *testing.T) {
	filter := titleFilter("C++ (2nd ed.)")

	re := filter["title"].(primitive.Regex)
	if re.Pattern != `C\+\+ \(2nd ed\.\)` {
		t.Errorf("expected escaped pattern, got %q", re.Pattern)
	}
}
