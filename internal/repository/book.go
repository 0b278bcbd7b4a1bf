package repository

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"inventario/internal/model"
)

type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Book, error)
	// List returns all books, or the books whose title contains the
	// given substring (case-insensitive) when title is non-empty. An
	// empty result is a valid outcome, not an error.
	List(ctx context.Context, title string) ([]model.Book, error)
	// Update replaces title, authors and numsOfCopies wholesale for
	// the book with the given id. ErrNotFound when no such book.
	Update(ctx context.Context, book *model.Book) error
	// Delete removes the book with the given id. ErrNotFound when no
	// such book, so a repeated delete does not report success twice.
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type MongoBookRepository struct {
	col *mongo.Collection
}

func NewMongoBookRepository(db *mongo.Database) *MongoBookRepository {
	return &MongoBookRepository{col: db.Collection("books")}
}

// titleFilter builds the find filter for List. The user's text is
// escaped so the match is a literal substring, not a regex supplied by
// the client.
func titleFilter(title string) bson.M {
	if title == "" {
		return bson.M{}
	}
	return bson.M{
		"title": primitive.Regex{Pattern: regexp.QuoteMeta(title), Options: "i"},
	}
}

func (r *MongoBookRepository) Create(ctx context.Context, book *model.Book) error {
	res, err := r.col.InsertOne(ctx, book)
	if err != nil {
		return err
	}
	book.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoBookRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Book, error) {
	var book model.Book
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&book)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *MongoBookRepository) List(ctx context.Context, title string) ([]model.Book, error) {
	cur, err := r.col.Find(ctx, titleFilter(title))
	if err != nil {
		return nil, err
	}

	books := make([]model.Book, 0)
	if err := cur.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *MongoBookRepository) Update(ctx context.Context, book *model.Book) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": book.ID},
		bson.M{"$set": bson.M{
			"title":        book.Title,
			"authors":      book.Authors,
			"numsOfCopies": book.NumsOfCopies,
		}},
	)
	if err != nil {
		return err
	}
	// MatchedCount, not ModifiedCount: a no-op update of an existing
	// book is still a successful update.
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoBookRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
