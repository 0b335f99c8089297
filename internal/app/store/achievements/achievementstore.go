package achievementstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rohithbabu/foliohub/internal/app/system/diaglog"
	"github.com/rohithbabu/foliohub/internal/app/system/sanitize"
	"github.com/rohithbabu/foliohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned by strict updates against a missing document.
var ErrNotFound = errors.New("achievement not found")

// Store provides access to the achievements collection.
type Store struct {
	c    *mongo.Collection
	diag *diaglog.Logger
}

// New creates an achievement store. diag may be nil.
func New(db *mongo.Database, diag *diaglog.Logger) *Store {
	return &Store{c: db.Collection("achievements"), diag: diag}
}

// GetAll returns every achievement in store-native order.
func (s *Store) GetAll(ctx context.Context) ([]models.Achievement, error) {
	cursor, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		s.diag.Error(ctx, "getAll", "achievements", err, nil)
		return nil, fmt.Errorf("fetch achievements: %w", err)
	}
	defer cursor.Close(ctx)

	var achievements []models.Achievement
	if err := cursor.All(ctx, &achievements); err != nil {
		s.diag.Error(ctx, "getAll", "achievements", err, nil)
		return nil, fmt.Errorf("decode achievements: %w", err)
	}
	s.diag.Info(ctx, "getAll", "achievements", map[string]string{
		"count": strconv.Itoa(len(achievements)),
	})
	return achievements, nil
}

// GetByID looks up an achievement by id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Achievement, error) {
	var a models.Achievement
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		s.diag.Error(ctx, "getByID", "achievements", err, map[string]string{"id": id.Hex()})
		return nil, fmt.Errorf("fetch achievement: %w", err)
	}
	return &a, nil
}

// Add inserts a new achievement and returns the generated id.
func (s *Store) Add(ctx context.Context, a models.Achievement) (primitive.ObjectID, error) {
	a.ID = primitive.NewObjectID()
	a.Description = sanitize.HTML(a.Description)
	if _, err := s.c.InsertOne(ctx, a); err != nil {
		s.diag.Error(ctx, "add", "achievements", err, map[string]string{"title": a.Title})
		return primitive.NilObjectID, fmt.Errorf("add achievement: %w", err)
	}
	s.diag.Info(ctx, "add", "achievements", map[string]string{"id": a.ID.Hex(), "title": a.Title})
	return a.ID, nil
}

// Update merges the given fields into an existing achievement (strict).
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	if desc, ok := set["description"].(string); ok {
		set["description"] = sanitize.HTML(desc)
	}
	if len(set) == 0 {
		if err := s.c.FindOne(ctx, bson.M{"_id": id}).Err(); err != nil {
			if err == mongo.ErrNoDocuments {
				return ErrNotFound
			}
			return fmt.Errorf("update achievement: %w", err)
		}
		return nil
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		s.diag.Error(ctx, "update", "achievements", err, map[string]string{"id": id.Hex()})
		return fmt.Errorf("update achievement: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	s.diag.Info(ctx, "update", "achievements", map[string]string{"id": id.Hex()})
	return nil
}

// Delete removes an achievement. Deleting an already-deleted id is a no-op.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.c.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		s.diag.Error(ctx, "delete", "achievements", err, map[string]string{"id": id.Hex()})
		return fmt.Errorf("delete achievement: %w", err)
	}
	s.diag.Info(ctx, "delete", "achievements", map[string]string{"id": id.Hex()})
	return nil
}
