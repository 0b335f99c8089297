package projectstore

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
var ErrNotFound = errors.New("project not found")

// Store provides access to the projects collection.
type Store struct {
	c    *mongo.Collection
	diag *diaglog.Logger
}

// New creates a project store. diag may be nil.
func New(db *mongo.Database, diag *diaglog.Logger) *Store {
	return &Store{c: db.Collection("projects"), diag: diag}
}

// GetAll returns every project in store-native order. Ids are always
// populated on read.
func (s *Store) GetAll(ctx context.Context) ([]models.Project, error) {
	cursor, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		s.diag.Error(ctx, "getAll", "projects", err, nil)
		return nil, fmt.Errorf("fetch projects: %w", err)
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	if err := cursor.All(ctx, &projects); err != nil {
		s.diag.Error(ctx, "getAll", "projects", err, nil)
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	s.diag.Info(ctx, "getAll", "projects", map[string]string{
		"count": strconv.Itoa(len(projects)),
	})
	return projects, nil
}

// GetByID loads one project.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var p models.Project
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		s.diag.Error(ctx, "getById", "projects", err, nil)
		return nil, fmt.Errorf("fetch project: %w", err)
	}
	return &p, nil
}

// Add inserts a new project and returns the generated id.
func (s *Store) Add(ctx context.Context, p models.Project) (primitive.ObjectID, error) {
	p.ID = primitive.NewObjectID()
	p.Description = sanitize.HTML(p.Description)
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		s.diag.Error(ctx, "add", "projects", err, map[string]string{"title": p.Title})
		return primitive.NilObjectID, fmt.Errorf("add project: %w", err)
	}
	s.diag.Info(ctx, "add", "projects", map[string]string{"id": p.ID.Hex(), "title": p.Title})
	return p.ID, nil
}

// Update merges the given fields into an existing project. It is strict:
// updating a missing document returns ErrNotFound. Fields absent from set
// are left untouched.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	if desc, ok := set["description"].(string); ok {
		set["description"] = sanitize.HTML(desc)
	}
	if len(set) == 0 {
		if err := s.c.FindOne(ctx, bson.M{"_id": id}).Err(); err != nil {
			if err == mongo.ErrNoDocuments {
				return ErrNotFound
			}
			return fmt.Errorf("update project: %w", err)
		}
		return nil
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		s.diag.Error(ctx, "update", "projects", err, map[string]string{"id": id.Hex()})
		return fmt.Errorf("update project: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	s.diag.Info(ctx, "update", "projects", map[string]string{"id": id.Hex()})
	return nil
}

// Delete removes a project. Deleting an already-deleted id is a no-op.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.c.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		s.diag.Error(ctx, "delete", "projects", err, map[string]string{"id": id.Hex()})
		return fmt.Errorf("delete project: %w", err)
	}
	s.diag.Info(ctx, "delete", "projects", map[string]string{"id": id.Hex()})
	return nil
}
