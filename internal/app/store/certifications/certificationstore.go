package certificationstore

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
var ErrNotFound = errors.New("certification not found")

// Store provides access to the certifications collection.
type Store struct {
	c    *mongo.Collection
	diag *diaglog.Logger
}

// New creates a certification store. diag may be nil.
func New(db *mongo.Database, diag *diaglog.Logger) *Store {
	return &Store{c: db.Collection("certifications"), diag: diag}
}

// GetAll returns every certification in store-native order.
func (s *Store) GetAll(ctx context.Context) ([]models.Certification, error) {
	cursor, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		s.diag.Error(ctx, "getAll", "certifications", err, nil)
		return nil, fmt.Errorf("fetch certifications: %w", err)
	}
	defer cursor.Close(ctx)

	var certs []models.Certification
	if err := cursor.All(ctx, &certs); err != nil {
		s.diag.Error(ctx, "getAll", "certifications", err, nil)
		return nil, fmt.Errorf("decode certifications: %w", err)
	}
	s.diag.Info(ctx, "getAll", "certifications", map[string]string{
		"count": strconv.Itoa(len(certs)),
	})
	return certs, nil
}

// GetByID looks up a certification by id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Certification, error) {
	var c models.Certification
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		s.diag.Error(ctx, "getByID", "certifications", err, map[string]string{"id": id.Hex()})
		return nil, fmt.Errorf("fetch certification: %w", err)
	}
	return &c, nil
}

// Add inserts a new certification and returns the generated id.
func (s *Store) Add(ctx context.Context, c models.Certification) (primitive.ObjectID, error) {
	c.ID = primitive.NewObjectID()
	if _, err := s.c.InsertOne(ctx, c); err != nil {
		s.diag.Error(ctx, "add", "certifications", err, map[string]string{"name": c.Name})
		return primitive.NilObjectID, fmt.Errorf("add certification: %w", err)
	}
	s.diag.Info(ctx, "add", "certifications", map[string]string{"id": c.ID.Hex(), "name": c.Name})
	return c.ID, nil
}

// Update merges the given fields into an existing certification (strict).
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	if len(set) == 0 {
		if err := s.c.FindOne(ctx, bson.M{"_id": id}).Err(); err != nil {
			if err == mongo.ErrNoDocuments {
				return ErrNotFound
			}
			return fmt.Errorf("update certification: %w", err)
		}
		return nil
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		s.diag.Error(ctx, "update", "certifications", err, map[string]string{"id": id.Hex()})
		return fmt.Errorf("update certification: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	s.diag.Info(ctx, "update", "certifications", map[string]string{"id": id.Hex()})
	return nil
}

// Delete removes a certification. Deleting an already-deleted id is a no-op.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.c.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		s.diag.Error(ctx, "delete", "certifications", err, map[string]string{"id": id.Hex()})
		return fmt.Errorf("delete certification: %w", err)
	}
	s.diag.Info(ctx, "delete", "certifications", map[string]string{"id": id.Hex()})
	return nil
}
