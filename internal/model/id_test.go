package model

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseID_RoundTrip(t *testing.T) {
	original := primitive.NewObjectID()

	parsed, err := ParseID(original.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if parsed != original {
		t.Errorf("expected %v, got %v", original, parsed)
	}
	if parsed.Hex() != original.Hex() {
		t.Errorf("expected hex %q, got %q", original.Hex(), parsed.Hex())
	}
}

func TestParseID_Invalid(t *testing.T) {
	for _, raw := range []string{
		"",
		"not-a-valid-id",
		"abc123",
		"zzzzzzzzzzzzzzzzzzzzzzzz",
		"68b0f0a1d4c3b2a19876543",
	} {
		_, err := ParseID(raw)
		if err == nil {
			t.Errorf("expected error for %q", raw)
			continue
		}
		if !errors.Is(err, ErrInvalidID) {
			t.Errorf("expected ErrInvalidID for %q, got %v", raw, err)
		}
	}
}

func TestParseIDs_FailsOnFirstInvalid(t *testing.T) {
	valid := primitive.NewObjectID().Hex()

	ids, err := ParseIDs([]string{valid, "bogus"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrInvalidID) {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
	if ids != nil {
		t.Errorf("expected nil result on failure, got %v", ids)
	}
}

func TestParseIDs_Empty(t *testing.T) {
	ids, err := ParseIDs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected empty result, got %v", ids)
	}
}
