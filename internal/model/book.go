package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Book is the stored shape of a book record. Authors are referenced
// by id, never embedded; the order of the slice is meaningful and is
// preserved through projection. The store does not enforce that the
// referenced authors exist.
type Book struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Title        string               `bson:"title"`
	Authors      []primitive.ObjectID `bson:"authors"`
	NumsOfCopies int                  `bson:"numsOfCopies"`
}

// BookView is the read-time projection of a Book: author ids expanded
// into embedded author data. A referenced author that no longer exists
// leaves a null at its position instead of shifting the rest.
// BookView is never persisted.
type BookView struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Authors      []*AuthorView `json:"authors"`
	NumsOfCopies int           `json:"numsOfCopies"`
}
