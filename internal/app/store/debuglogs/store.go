// Package debuglogs persists diagnostic entries to the debug_logs
// collection. Only error-level entries reach this store; info and warning
// entries stay in the process log.
package debuglogs

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Status levels for diagnostic entries.
const (
	StatusInfo    = "info"
	StatusWarning = "warning"
	StatusError   = "error"
)

// Entry is one diagnostic record: which operation ran, against which entity
// kind, and how it ended.
type Entry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	Operation string             `bson:"operation" json:"operation"`
	Entity    string             `bson:"entity,omitempty" json:"entity,omitempty"`
	Status    string             `bson:"status" json:"status"`
	Message   string             `bson:"message,omitempty" json:"message,omitempty"`
	Details   map[string]string  `bson:"details,omitempty" json:"details,omitempty"`
}

// Store manages the debug_logs collection.
type Store struct {
	c *mongo.Collection
}

// New creates a debug log Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("debug_logs")}
}

// EnsureIndexes creates the recency index used by Recent.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "timestamp", Value: -1}},
		Options: options.Index().SetName("idx_debuglog_ts"),
	})
	return err
}

// Add records an entry, stamping id and timestamp if unset.
func (s *Store) Add(ctx context.Context, e Entry) error {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	_, err := s.c.InsertOne(ctx, e)
	return err
}

// Recent returns the most recent entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int64) ([]Entry, error) {
	if limit <= 0 {
		limit = 100
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)
	cursor, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Clear removes all persisted entries.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.c.DeleteMany(ctx, bson.M{})
	return err
}
