package handler

import (
	"inventario/internal/model"
)

type CreateBookRequest struct {
	Title string `json:"title"`
	// nil means the field was absent; an empty list is a valid book
	// with no authors.
	Authors      []string `json:"authors"`
	NumsOfCopies int      `json:"numsOfCopies" binding:"omitempty,gte=0"`
}

type UpdateBookRequest struct {
	ID      string   `json:"id"`
	Title   *string  `json:"title"`
	Authors []string `json:"authors"`
	// Absent numsOfCopies resets the stored value to 0. The update is
	// a wholesale replacement, not a merge; callers that want to keep
	// the count must resend it.
	NumsOfCopies int `json:"numsOfCopies" binding:"omitempty,gte=0"`
}

type BookMessageResponse struct {
	Message string         `json:"message"`
	Libro   model.BookView `json:"libro"`
}
