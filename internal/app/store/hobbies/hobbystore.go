package hobbystore

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rohithbabu/foliohub/internal/app/system/diaglog"
	"github.com/rohithbabu/foliohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned by strict updates against a missing document.
var ErrNotFound = errors.New("hobby not found")

// Store provides access to the hobbies collection. The about card renders
// only the first document, but the full list remains addressable.
type Store struct {
	c    *mongo.Collection
	diag *diaglog.Logger
}

// New creates a hobby store. diag may be nil.
func New(db *mongo.Database, diag *diaglog.Logger) *Store {
	return &Store{c: db.Collection("hobbies"), diag: diag}
}

// GetAll returns every hobby in store-native order.
func (s *Store) GetAll(ctx context.Context) ([]models.Hobby, error) {
	cursor, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		s.diag.Error(ctx, "getAll", "hobbies", err, nil)
		return nil, fmt.Errorf("fetch hobbies: %w", err)
	}
	defer cursor.Close(ctx)

	var hobbies []models.Hobby
	if err := cursor.All(ctx, &hobbies); err != nil {
		s.diag.Error(ctx, "getAll", "hobbies", err, nil)
		return nil, fmt.Errorf("decode hobbies: %w", err)
	}
	s.diag.Info(ctx, "getAll", "hobbies", map[string]string{
		"count": strconv.Itoa(len(hobbies)),
	})
	return hobbies, nil
}

// GetByID looks up a hobby by id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Hobby, error) {
	var h models.Hobby
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&h)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		s.diag.Error(ctx, "getByID", "hobbies", err, map[string]string{"id": id.Hex()})
		return nil, fmt.Errorf("fetch hobby: %w", err)
	}
	return &h, nil
}

// Add inserts a new hobby and returns the generated id.
func (s *Store) Add(ctx context.Context, h models.Hobby) (primitive.ObjectID, error) {
	h.ID = primitive.NewObjectID()
	if _, err := s.c.InsertOne(ctx, h); err != nil {
		s.diag.Error(ctx, "add", "hobbies", err, map[string]string{"name": h.Name})
		return primitive.NilObjectID, fmt.Errorf("add hobby: %w", err)
	}
	s.diag.Info(ctx, "add", "hobbies", map[string]string{"id": h.ID.Hex(), "name": h.Name})
	return h.ID, nil
}

// Update merges the given fields into an existing hobby (strict).
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	if len(set) == 0 {
		if err := s.c.FindOne(ctx, bson.M{"_id": id}).Err(); err != nil {
			if err == mongo.ErrNoDocuments {
				return ErrNotFound
			}
			return fmt.Errorf("update hobby: %w", err)
		}
		return nil
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		s.diag.Error(ctx, "update", "hobbies", err, map[string]string{"id": id.Hex()})
		return fmt.Errorf("update hobby: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	s.diag.Info(ctx, "update", "hobbies", map[string]string{"id": id.Hex()})
	return nil
}

// Delete removes a hobby. Deleting an already-deleted id is a no-op.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.c.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		s.diag.Error(ctx, "delete", "hobbies", err, map[string]string{"id": id.Hex()})
		return fmt.Errorf("delete hobby: %w", err)
	}
	s.diag.Info(ctx, "delete", "hobbies", map[string]string{"id": id.Hex()})
	return nil
}
