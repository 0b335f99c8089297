package sociallinkstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/rohithbabu/foliohub/internal/app/system/diaglog"
	"github.com/rohithbabu/foliohub/internal/app/system/normalize"
	"github.com/rohithbabu/foliohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned by strict updates against a missing document.
	ErrNotFound = errors.New("social link not found")
	// ErrDuplicatePlatform is returned when adding a second link for a
	// platform; platform is the natural key in the contact section.
	ErrDuplicatePlatform = errors.New("a link for this platform already exists")
)

// Store provides access to the social_links collection.
type Store struct {
	c    *mongo.Collection
	diag *diaglog.Logger
}

// New creates a social link store. diag may be nil.
func New(db *mongo.Database, diag *diaglog.Logger) *Store {
	return &Store{c: db.Collection("social_links"), diag: diag}
}

// EnsureIndexes creates the unique platform index.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "platform", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("idx_sociallink_platform"),
	})
	return err
}

// GetAll returns every link in store-native order.
func (s *Store) GetAll(ctx context.Context) ([]models.SocialLink, error) {
	cursor, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		s.diag.Error(ctx, "getAll", "socialLinks", err, nil)
		return nil, fmt.Errorf("fetch social links: %w", err)
	}
	defer cursor.Close(ctx)

	var links []models.SocialLink
	if err := cursor.All(ctx, &links); err != nil {
		s.diag.Error(ctx, "getAll", "socialLinks", err, nil)
		return nil, fmt.Errorf("decode social links: %w", err)
	}
	s.diag.Info(ctx, "getAll", "socialLinks", map[string]string{
		"count": strconv.Itoa(len(links)),
	})
	return links, nil
}

// GetByPlatform looks up a link by its platform name.
func (s *Store) GetByPlatform(ctx context.Context, platform string) (*models.SocialLink, error) {
	var l models.SocialLink
	err := s.c.FindOne(ctx, bson.M{"platform": normalize.Platform(platform)}).Decode(&l)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		s.diag.Error(ctx, "getByPlatform", "socialLinks", err, nil)
		return nil, fmt.Errorf("fetch social link: %w", err)
	}
	return &l, nil
}

// Add inserts a new link and returns the generated id.
func (s *Store) Add(ctx context.Context, l models.SocialLink) (primitive.ObjectID, error) {
	l.ID = primitive.NewObjectID()
	l.Platform = normalize.Platform(l.Platform)
	if _, err := s.c.InsertOne(ctx, l); err != nil {
		if wafflemongo.IsDup(err) {
			return primitive.NilObjectID, ErrDuplicatePlatform
		}
		s.diag.Error(ctx, "add", "socialLinks", err, map[string]string{"platform": l.Platform})
		return primitive.NilObjectID, fmt.Errorf("add social link: %w", err)
	}
	s.diag.Info(ctx, "add", "socialLinks", map[string]string{"id": l.ID.Hex(), "platform": l.Platform})
	return l.ID, nil
}

// Upsert writes the link keyed by platform: creates when the platform has no
// link yet, merges otherwise. This is the contact-section variant where
// platform, not the synthetic id, identifies the record.
func (s *Store) Upsert(ctx context.Context, l models.SocialLink) error {
	platform := normalize.Platform(l.Platform)
	update := bson.M{
		"$set": bson.M{
			"url":         l.URL,
			"username":    l.Username,
			"placeholder": l.Placeholder,
		},
		"$setOnInsert": bson.M{
			"_id":      primitive.NewObjectID(),
			"platform": platform,
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := s.c.UpdateOne(ctx, bson.M{"platform": platform}, update, opts); err != nil {
		s.diag.Error(ctx, "upsert", "socialLinks", err, map[string]string{"platform": platform})
		return fmt.Errorf("upsert social link: %w", err)
	}
	s.diag.Info(ctx, "upsert", "socialLinks", map[string]string{"platform": platform})
	return nil
}

// Update merges the given fields into an existing link (strict).
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	if platform, ok := set["platform"].(string); ok {
		set["platform"] = normalize.Platform(platform)
	}
	if len(set) == 0 {
		if err := s.c.FindOne(ctx, bson.M{"_id": id}).Err(); err != nil {
			if err == mongo.ErrNoDocuments {
				return ErrNotFound
			}
			return fmt.Errorf("update social link: %w", err)
		}
		return nil
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicatePlatform
		}
		s.diag.Error(ctx, "update", "socialLinks", err, map[string]string{"id": id.Hex()})
		return fmt.Errorf("update social link: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	s.diag.Info(ctx, "update", "socialLinks", map[string]string{"id": id.Hex()})
	return nil
}

// Delete removes a link. Deleting an already-deleted id is a no-op.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.c.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		s.diag.Error(ctx, "delete", "socialLinks", err, map[string]string{"id": id.Hex()})
		return fmt.Errorf("delete social link: %w", err)
	}
	s.diag.Info(ctx, "delete", "socialLinks", map[string]string{"id": id.Hex()})
	return nil
}
