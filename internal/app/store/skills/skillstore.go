package skillstore

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
var ErrNotFound = errors.New("skill not found")

// Store provides access to the skills collection. Subtopics persisted as a
// comma-joined string by older writers decode to the canonical list shape
// (see models.Subtopics); this store always writes the list form.
type Store struct {
	c    *mongo.Collection
	diag *diaglog.Logger
}

// New creates a skill store. diag may be nil.
func New(db *mongo.Database, diag *diaglog.Logger) *Store {
	return &Store{c: db.Collection("skills"), diag: diag}
}

// GetAll returns every skill in store-native order.
func (s *Store) GetAll(ctx context.Context) ([]models.Skill, error) {
	cursor, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		s.diag.Error(ctx, "getAll", "skills", err, nil)
		return nil, fmt.Errorf("fetch skills: %w", err)
	}
	defer cursor.Close(ctx)

	var skills []models.Skill
	if err := cursor.All(ctx, &skills); err != nil {
		s.diag.Error(ctx, "getAll", "skills", err, nil)
		return nil, fmt.Errorf("decode skills: %w", err)
	}
	s.diag.Info(ctx, "getAll", "skills", map[string]string{
		"count": strconv.Itoa(len(skills)),
	})
	return skills, nil
}

// GetByID looks up a skill by id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Skill, error) {
	var sk models.Skill
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&sk)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		s.diag.Error(ctx, "getByID", "skills", err, map[string]string{"id": id.Hex()})
		return nil, fmt.Errorf("fetch skill: %w", err)
	}
	return &sk, nil
}

// Add inserts a new skill, clamping level to 0..100, and returns the
// generated id.
func (s *Store) Add(ctx context.Context, sk models.Skill) (primitive.ObjectID, error) {
	sk.ID = primitive.NewObjectID()
	sk.Level = clampLevel(sk.Level)
	if _, err := s.c.InsertOne(ctx, sk); err != nil {
		s.diag.Error(ctx, "add", "skills", err, map[string]string{"name": sk.Name})
		return primitive.NilObjectID, fmt.Errorf("add skill: %w", err)
	}
	s.diag.Info(ctx, "add", "skills", map[string]string{"id": sk.ID.Hex(), "name": sk.Name})
	return sk.ID, nil
}

// Update merges the given fields into an existing skill (strict). A level in
// set is clamped; subtopics given as a comma-joined string are normalized to
// the list form before writing.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	if lvl, ok := set["level"].(int); ok {
		set["level"] = clampLevel(lvl)
	}
	if joined, ok := set["subtopics"].(string); ok {
		set["subtopics"] = models.SplitSubtopics(joined)
	}
	if len(set) == 0 {
		if err := s.c.FindOne(ctx, bson.M{"_id": id}).Err(); err != nil {
			if err == mongo.ErrNoDocuments {
				return ErrNotFound
			}
			return fmt.Errorf("update skill: %w", err)
		}
		return nil
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		s.diag.Error(ctx, "update", "skills", err, map[string]string{"id": id.Hex()})
		return fmt.Errorf("update skill: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	s.diag.Info(ctx, "update", "skills", map[string]string{"id": id.Hex()})
	return nil
}

// Delete removes a skill. Deleting an already-deleted id is a no-op.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.c.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		s.diag.Error(ctx, "delete", "skills", err, map[string]string{"id": id.Hex()})
		return fmt.Errorf("delete skill: %w", err)
	}
	s.diag.Info(ctx, "delete", "skills", map[string]string{"id": id.Hex()})
	return nil
}

func clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > 100 {
		return 100
	}
	return level
}
