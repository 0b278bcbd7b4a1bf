package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"inventario/internal/model"
)

type AuthorRepository interface {
	Create(ctx context.Context, author *model.Author) error
	// FindByIDs returns the subset of ids that exist, keyed by id.
	// Absent ids are simply missing from the map, never an error.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]model.Author, error)
}

type MongoAuthorRepository struct {
	col *mongo.Collection
}

func NewMongoAuthorRepository(db *mongo.Database) *MongoAuthorRepository {
	return &MongoAuthorRepository{col: db.Collection("authors")}
}

func (r *MongoAuthorRepository) Create(ctx context.Context, author *model.Author) error {
	res, err := r.col.InsertOne(ctx, author)
	if err != nil {
		return err
	}
	author.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoAuthorRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]model.Author, error) {
	found := make(map[primitive.ObjectID]model.Author, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	var authors []model.Author
	if err := cur.All(ctx, &authors); err != nil {
		return nil, err
	}

	for _, a := range authors {
		found[a.ID] = a
	}
	return found, nil
}
