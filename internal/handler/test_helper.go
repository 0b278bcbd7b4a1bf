package handler

import (
	"context"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"inventario/internal/model"
	"inventario/internal/repository"
	"inventario/internal/resolver"
)

// memStore is an in-memory stand-in for the two Mongo collections,
// shared by the repository fakes so tests can observe what a handler
// actually persisted.
type memStore struct {
	authors map[primitive.ObjectID]model.Author
	books   map[primitive.ObjectID]model.Book
	order   []primitive.ObjectID
}

func newMemStore() *memStore {
	return &memStore{
		authors: make(map[primitive.ObjectID]model.Author),
		books:   make(map[primitive.ObjectID]model.Book),
	}
}

type memAuthorRepo struct {
	s *memStore
}

func (r *memAuthorRepo) Create(ctx context.Context, author *model.Author) error {
	author.ID = primitive.NewObjectID()
	r.s.authors[author.ID] = *author
	return nil
}

func (r *memAuthorRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]model.Author, error) {
	found := make(map[primitive.ObjectID]model.Author, len(ids))
	for _, id := range ids {
		if a, ok := r.s.authors[id]; ok {
			found[id] = a
		}
	}
	return found, nil
}

type memBookRepo struct {
	s *memStore
}

func (r *memBookRepo) Create(ctx context.Context, book *model.Book) error {
	book.ID = primitive.NewObjectID()
	r.s.books[book.ID] = *book
	r.s.order = append(r.s.order, book.ID)
	return nil
}

func (r *memBookRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Book, error) {
	b, ok := r.s.books[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &b, nil
}

func (r *memBookRepo) List(ctx context.Context, title string) ([]model.Book, error) {
	needle := strings.ToLower(title)
	books := make([]model.Book, 0)
	for _, id := range r.s.order {
		b, ok := r.s.books[id]
		if !ok {
			continue
		}
		if title == "" || strings.Contains(strings.ToLower(b.Title), needle) {
			books = append(books, b)
		}
	}
	return books, nil
}

func (r *memBookRepo) Update(ctx context.Context, book *model.Book) error {
	if _, ok := r.s.books[book.ID]; !ok {
		return repository.ErrNotFound
	}
	r.s.books[book.ID] = *book
	return nil
}

func (r *memBookRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.s.books[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.books, id)
	return nil
}

// fakeBookRepo lets a test force repository errors per call.
type fakeBookRepo struct {
	CreateFn   func(ctx context.Context, book *model.Book) error
	FindByIDFn func(ctx context.Context, id primitive.ObjectID) (*model.Book, error)
	ListFn     func(ctx context.Context, title string) ([]model.Book, error)
	UpdateFn   func(ctx context.Context, book *model.Book) error
	DeleteFn   func(ctx context.Context, id primitive.ObjectID) error
}

func (f *fakeBookRepo) Create(ctx context.Context, book *model.Book) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, book)
	}
	return nil
}

func (f *fakeBookRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Book, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (f *fakeBookRepo) List(ctx context.Context, title string) ([]model.Book, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, title)
	}
	return nil, nil
}

func (f *fakeBookRepo) Update(ctx context.Context, book *model.Book) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, book)
	}
	return nil
}

func (f *fakeBookRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

// fakeAuthorRepo mirrors fakeBookRepo for the author side.
type fakeAuthorRepo struct {
	CreateFn    func(ctx context.Context, author *model.Author) error
	FindByIDsFn func(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]model.Author, error)
}

func (f *fakeAuthorRepo) Create(ctx context.Context, author *model.Author) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, author)
	}
	return nil
}

func (f *fakeAuthorRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]model.Author, error) {
	if f.FindByIDsFn != nil {
		return f.FindByIDsFn(ctx, ids)
	}
	return map[primitive.ObjectID]model.Author{}, nil
}

func setupRouterWithRepos(bookRepo repository.BookRepository, authorRepo repository.AuthorRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()

	res := resolver.New(authorRepo)

	NewBookHandler(bookRepo, res).RegisterRoutes(r.Group(""))
	NewAuthorHandler(authorRepo).RegisterRoutes(r.Group(""))

	return r
}

func setupRouter(s *memStore) *gin.Engine {
	return setupRouterWithRepos(&memBookRepo{s: s}, &memAuthorRepo{s: s})
}

func seedAuthor(t *testing.T, s *memStore, name, biography string) model.Author {
	t.Helper()

	a := model.Author{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Biography: biography,
	}
	s.authors[a.ID] = a
	return a
}

func seedBook(t *testing.T, s *memStore, title string, authors []primitive.ObjectID, copies int) model.Book {
	t.Helper()

	b := model.Book{
		ID:           primitive.NewObjectID(),
		Title:        title,
		Authors:      authors,
		NumsOfCopies: copies,
	}
	s.books[b.ID] = b
	s.order = append(s.order, b.ID)
	return b
}
