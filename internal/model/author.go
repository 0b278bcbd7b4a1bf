package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Author is the stored shape of an author record in the authors
// collection. Authors are created and read but never updated or
// deleted, so they carry no lifecycle metadata.
type Author struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Biography string             `bson:"biography"`
}

// AuthorView is the transport shape of an author, embedded into
// projected books and returned on author creation.
type AuthorView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Biography string `json:"biography"`
}

func (a Author) View() AuthorView {
	return AuthorView{
		ID:        a.ID.Hex(),
		Name:      a.Name,
		Biography: a.Biography,
	}
}
