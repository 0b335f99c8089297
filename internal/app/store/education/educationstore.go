package educationstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rohithbabu/foliohub/internal/app/system/diaglog"
	"github.com/rohithbabu/foliohub/internal/app/system/normalize"
	"github.com/rohithbabu/foliohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Validation errors raised before any network call.
var (
	ErrMissingInstitution = errors.New("institution is required")
	ErrMissingDegree      = errors.New("degree is required")
	ErrMissingField       = errors.New("field of study is required")
	ErrMissingLocation    = errors.New("location is required")

	// ErrEmptyID guards Delete against issuing a remote call with no id.
	ErrEmptyID = errors.New("education id is empty")
)

// Store provides access to the education collection. Like about, the UI
// renders the first document only.
type Store struct {
	c    *mongo.Collection
	diag *diaglog.Logger
}

// New creates an education store. diag may be nil.
func New(db *mongo.Database, diag *diaglog.Logger) *Store {
	return &Store{c: db.Collection("education"), diag: diag}
}

// GetAll returns every education document in store-native order.
func (s *Store) GetAll(ctx context.Context) ([]models.Education, error) {
	cursor, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		s.diag.Error(ctx, "getAll", "education", err, nil)
		return nil, fmt.Errorf("fetch education data: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []models.Education
	if err := cursor.All(ctx, &docs); err != nil {
		s.diag.Error(ctx, "getAll", "education", err, nil)
		return nil, fmt.Errorf("decode education data: %w", err)
	}
	s.diag.Info(ctx, "getAll", "education", nil)
	return docs, nil
}

// Get returns the first education record, or nil when the collection is
// empty.
func (s *Store) Get(ctx context.Context) (*models.Education, error) {
	var e models.Education
	err := s.c.FindOne(ctx, bson.M{}).Decode(&e)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		s.diag.Error(ctx, "get", "education", err, nil)
		return nil, fmt.Errorf("fetch education data: %w", err)
	}
	return &e, nil
}

// Add validates required fields, stamps timestamps, and inserts.
func (s *Store) Add(ctx context.Context, e models.Education) (primitive.ObjectID, error) {
	if err := validate(e); err != nil {
		return primitive.NilObjectID, err
	}

	e.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, e); err != nil {
		s.diag.Error(ctx, "add", "education", err, nil)
		return primitive.NilObjectID, fmt.Errorf("add education data: %w", err)
	}
	s.diag.Info(ctx, "add", "education", map[string]string{"id": e.ID.Hex()})
	return e.ID, nil
}

// Save merges fields into the document with the given id, creating it if
// absent (upsert form; tolerates update-before-create).
func (s *Store) Save(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	if id.IsZero() {
		id = primitive.NewObjectID()
	}
	set["updated_at"] = time.Now().UTC()

	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"created_at": time.Now().UTC()},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, update, opts); err != nil {
		s.diag.Error(ctx, "update", "education", err, map[string]string{"id": id.Hex()})
		return fmt.Errorf("update education data: %w", err)
	}
	s.diag.Info(ctx, "update", "education", map[string]string{"id": id.Hex()})
	return nil
}

// Delete removes the document, failing fast on an empty id.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	if id.IsZero() {
		return ErrEmptyID
	}
	if _, err := s.c.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		s.diag.Error(ctx, "delete", "education", err, map[string]string{"id": id.Hex()})
		return fmt.Errorf("delete education data: %w", err)
	}
	s.diag.Info(ctx, "delete", "education", map[string]string{"id": id.Hex()})
	return nil
}

func validate(e models.Education) error {
	if normalize.Text(e.Institution) == "" {
		return ErrMissingInstitution
	}
	if normalize.Text(e.Degree) == "" {
		return ErrMissingDegree
	}
	if normalize.Text(e.Field) == "" {
		return ErrMissingField
	}
	if normalize.Text(e.Location) == "" {
		return ErrMissingLocation
	}
	return nil
}
