package aboutstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rohithbabu/foliohub/internal/app/system/diaglog"
	"github.com/rohithbabu/foliohub/internal/app/system/normalize"
	"github.com/rohithbabu/foliohub/internal/app/system/sanitize"
	"github.com/rohithbabu/foliohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Validation errors raised before any network call.
var (
	ErrMissingHeadline = errors.New("headline is required")
	ErrMissingBio      = errors.New("bio is required")
	ErrMissingEmail    = errors.New("email is required")
	ErrMissingLocation = errors.New("location is required")

	// ErrEmptyID guards Delete against issuing a remote call with no id.
	ErrEmptyID = errors.New("about id is empty")
)

// Store provides access to the about collection. The app treats it as a
// singleton: readers take the first document.
type Store struct {
	c    *mongo.Collection
	diag *diaglog.Logger
}

// New creates an about store. diag may be nil.
func New(db *mongo.Database, diag *diaglog.Logger) *Store {
	return &Store{c: db.Collection("about"), diag: diag}
}

// GetAll returns every about document in store-native order.
func (s *Store) GetAll(ctx context.Context) ([]models.About, error) {
	cursor, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		s.diag.Error(ctx, "getAll", "about", err, nil)
		return nil, fmt.Errorf("fetch about data: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []models.About
	if err := cursor.All(ctx, &docs); err != nil {
		s.diag.Error(ctx, "getAll", "about", err, nil)
		return nil, fmt.Errorf("decode about data: %w", err)
	}
	s.diag.Info(ctx, "getAll", "about", nil)
	return docs, nil
}

// Get returns "the" about record: the first document, or nil when the
// collection is empty.
func (s *Store) Get(ctx context.Context) (*models.About, error) {
	var a models.About
	err := s.c.FindOne(ctx, bson.M{}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		s.diag.Error(ctx, "get", "about", err, nil)
		return nil, fmt.Errorf("fetch about data: %w", err)
	}
	return &a, nil
}

// Add validates required fields, stamps timestamps, and inserts. Validation
// failures reject the call before any network I/O.
func (s *Store) Add(ctx context.Context, a models.About) (primitive.ObjectID, error) {
	if err := validate(a); err != nil {
		return primitive.NilObjectID, err
	}

	a.ID = primitive.NewObjectID()
	a.Email = normalize.Email(a.Email)
	a.Bio = sanitize.HTML(a.Bio)
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, a); err != nil {
		s.diag.Error(ctx, "add", "about", err, nil)
		return primitive.NilObjectID, fmt.Errorf("add about data: %w", err)
	}
	s.diag.Info(ctx, "add", "about", map[string]string{"id": a.ID.Hex()})
	return a.ID, nil
}

// Save merges the given fields into the document with the given id,
// creating it if absent. The upsert form tolerates update calls issued
// before the singleton has ever been created; a zero id gets a fresh one.
func (s *Store) Save(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	if id.IsZero() {
		id = primitive.NewObjectID()
	}
	if bio, ok := set["bio"].(string); ok {
		set["bio"] = sanitize.HTML(bio)
	}
	if email, ok := set["email"].(string); ok {
		set["email"] = normalize.Email(email)
	}
	set["updated_at"] = time.Now().UTC()

	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"created_at": time.Now().UTC()},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, update, opts); err != nil {
		s.diag.Error(ctx, "update", "about", err, map[string]string{"id": id.Hex()})
		return fmt.Errorf("update about data: %w", err)
	}
	s.diag.Info(ctx, "update", "about", map[string]string{"id": id.Hex()})
	return nil
}

// Delete removes the document, failing fast on an empty id rather than
// issuing a no-op remote call.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	if id.IsZero() {
		return ErrEmptyID
	}
	if _, err := s.c.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		s.diag.Error(ctx, "delete", "about", err, map[string]string{"id": id.Hex()})
		return fmt.Errorf("delete about data: %w", err)
	}
	s.diag.Info(ctx, "delete", "about", map[string]string{"id": id.Hex()})
	return nil
}

func validate(a models.About) error {
	if normalize.Text(a.Headline) == "" {
		return ErrMissingHeadline
	}
	if normalize.Text(a.Bio) == "" {
		return ErrMissingBio
	}
	if normalize.Text(a.Email) == "" {
		return ErrMissingEmail
	}
	if normalize.Text(a.Location) == "" {
		return ErrMissingLocation
	}
	return nil
}
