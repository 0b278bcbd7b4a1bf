// Package resolver implements the book→author reference layer: the
// write-path existence check and the read-path expansion of stored
// author ids into embedded author data.
package resolver

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inventario/internal/model"
	"inventario/internal/repository"
)

type Resolver struct {
	authors repository.AuthorRepository
}

func New(authors repository.AuthorRepository) *Resolver {
	return &Resolver{authors: authors}
}

// VerifyAuthorsExist reports whether every id resolves to a stored
// author. An empty input is vacuously true. This is a check-then-act
// guard: callers invoke it immediately before a book write, and
// nothing prevents an author from disappearing between the check and
// the write. That window is accepted; the read path tolerates dangling
// references instead of assuming the check still holds.
func (r *Resolver) VerifyAuthorsExist(ctx context.Context, ids []primitive.ObjectID) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}

	found, err := r.authors.FindByIDs(ctx, ids)
	if err != nil {
		return false, err
	}

	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return false, nil
		}
	}
	return true, nil
}

// ProjectBook expands a single book's author references into author
// views. Order follows book.Authors; an id that resolves to nothing
// leaves a nil at its position.
func (r *Resolver) ProjectBook(ctx context.Context, book model.Book) (model.BookView, error) {
	views, err := r.ProjectBooks(ctx, []model.Book{book})
	if err != nil {
		return model.BookView{}, err
	}
	return views[0], nil
}

// ProjectBooks expands a batch of books using a single author lookup
// keyed by the union of every referenced id. One store round-trip
// regardless of how many books are projected; the list endpoint relies
// on that.
func (r *Resolver) ProjectBooks(ctx context.Context, books []model.Book) ([]model.BookView, error) {
	union := make([]primitive.ObjectID, 0)
	seen := make(map[primitive.ObjectID]struct{})
	for _, b := range books {
		for _, id := range b.Authors {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			union = append(union, id)
		}
	}

	found, err := r.authors.FindByIDs(ctx, union)
	if err != nil {
		return nil, err
	}

	views := make([]model.BookView, 0, len(books))
	for _, b := range books {
		authors := make([]*model.AuthorView, 0, len(b.Authors))
		for _, id := range b.Authors {
			if a, ok := found[id]; ok {
				v := a.View()
				authors = append(authors, &v)
			} else {
				authors = append(authors, nil)
			}
		}

		views = append(views, model.BookView{
			ID:           b.ID.Hex(),
			Title:        b.Title,
			Authors:      authors,
			NumsOfCopies: b.NumsOfCopies,
		})
	}
	return views, nil
}
