package testutil

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rohithbabu/foliohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateProject inserts a project document with the given title.
func (f *Fixtures) CreateProject(ctx context.Context, title string) models.Project {
	f.t.Helper()

	p := models.Project{
		ID:           primitive.NewObjectID(),
		Title:        title,
		Description:  "A test project.",
		Technologies: []string{"Go", "MongoDB"},
	}
	if _, err := f.db.Collection("projects").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("insert project: %v", err)
	}
	return p
}

// CreateSkill inserts a skill document.
func (f *Fixtures) CreateSkill(ctx context.Context, name string, level int, subtopics ...string) models.Skill {
	f.t.Helper()

	s := models.Skill{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Level:     level,
		Subtopics: subtopics,
	}
	if _, err := f.db.Collection("skills").InsertOne(ctx, s); err != nil {
		f.t.Fatalf("insert skill: %v", err)
	}
	return s
}

// CreateSocialLink inserts a social link document.
func (f *Fixtures) CreateSocialLink(ctx context.Context, platform, url string) models.SocialLink {
	f.t.Helper()

	l := models.SocialLink{
		ID:       primitive.NewObjectID(),
		Platform: platform,
		URL:      url,
	}
	if _, err := f.db.Collection("social_links").InsertOne(ctx, l); err != nil {
		f.t.Fatalf("insert social link: %v", err)
	}
	return l
}
