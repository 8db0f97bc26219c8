package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rafaelleal24/apiweb/internal/adapters/mongo/document"
	"github.com/rafaelleal24/apiweb/internal/core/serviceerrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var insertionOrder = bson.D{{Key: "_id", Value: 1}}

type BaseRepository[T document.Document] struct {
	collection *mongo.Collection
}

func NewBaseRepository[T document.Document](db *mongo.Database, collectionName string) *BaseRepository[T] {
	return &BaseRepository[T]{
		collection: db.Collection(collectionName),
	}
}

// FindFirst returns the earliest inserted document matching filter, or (nil, nil).
func (r *BaseRepository[T]) FindFirst(ctx context.Context, filter bson.M) (*T, error) {
	var entity T
	err := r.collection.FindOne(ctx, filter, options.FindOne().SetSort(insertionOrder)).Decode(&entity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, parseError(err)
	}

	return &entity, nil
}

// FindAll returns every document matching filter in insertion order.
func (r *BaseRepository[T]) FindAll(ctx context.Context, filter bson.M) ([]T, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(insertionOrder))
	if err != nil {
		return nil, parseError(err)
	}
	defer cursor.Close(ctx)

	var entities []T
	if err = cursor.All(ctx, &entities); err != nil {
		return nil, parseError(err)
	}

	return entities, nil
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	if _, err := r.collection.InsertOne(ctx, entity); err != nil {
		return parseError(err)
	}

	return nil
}

// ReplaceFirst swaps the earliest document matching filter for replacement, keeping its _id.
// It reports whether a document matched.
func (r *BaseRepository[T]) ReplaceFirst(ctx context.Context, filter bson.M, replacement *T) (bool, error) {
	existing, err := r.FindFirst(ctx, filter)
	if err != nil || existing == nil {
		return false, err
	}

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": (*existing).GetID()}, replacement)
	if err != nil {
		return false, parseError(err)
	}

	return result.MatchedCount > 0, nil
}

// DeleteFirst removes the earliest document matching filter and reports whether one was removed.
func (r *BaseRepository[T]) DeleteFirst(ctx context.Context, filter bson.M) (bool, error) {
	existing, err := r.FindFirst(ctx, filter)
	if err != nil || existing == nil {
		return false, err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": (*existing).GetID()})
	if err != nil {
		return false, parseError(err)
	}

	return result.DeletedCount > 0, nil
}

func parseError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return serviceerrors.NewConflictError("duplicate key error")
	}
	return fmt.Errorf("mongo: %w", err)
}
