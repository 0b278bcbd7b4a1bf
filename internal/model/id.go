package model

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID marks an externally supplied identifier that is not a
// well-formed ObjectID hex string. Handlers map it to a 400.
var ErrInvalidID = errors.New("invalid id")

// ParseID converts the wire form of an identifier into the store's
// native form. Every id that crosses the HTTP boundary goes through
// here before it reaches a query, so malformed input never hits the
// driver. The inverse is ObjectID.Hex.
func ParseID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

// ParseIDs converts a slice of wire identifiers, failing on the first
// malformed one.
func ParseIDs(raw []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, r := range raw {
		id, err := ParseID(r)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
