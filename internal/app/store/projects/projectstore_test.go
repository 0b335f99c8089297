package projectstore

import (
	"errors"
	"testing"

	"github.com/rohithbabu/foliohub/internal/domain/models"
	"github.com/rohithbabu/foliohub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAddAndGetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db, nil)
	id, err := s.Add(ctx, models.Project{
		Title:        "Portfolio Site",
		Description:  "The site itself.",
		Technologies: []string{"Go", "MongoDB"},
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, err := s.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "Portfolio Site" {
		t.Errorf("title = %q", got.Title)
	}
	if len(got.Technologies) != 2 {
		t.Errorf("technologies = %v", got.Technologies)
	}
}

func TestAddSanitizesDescription(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db, nil)
	id, err := s.Add(ctx, models.Project{
		Title:       "XSS",
		Description: `hello <script>alert(1)</script>world`,
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, err := s.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Description != "helloworld" && got.Description != "hello world" {
		t.Errorf("description not sanitized: %q", got.Description)
	}
}

func TestGetAllEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db, nil)
	items, err := s.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("len = %d, want 0", len(items))
	}
}

func TestUpdateStrict(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db, nil)
	id, err := s.Add(ctx, models.Project{Title: "Before", Description: "d"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := s.Update(ctx, id, bson.M{"title": "After"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := s.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "After" {
		t.Errorf("title = %q, want After", got.Title)
	}
	if got.Description != "d" {
		t.Errorf("description = %q; untouched fields must survive a merge", got.Description)
	}
}

func TestUpdateMissingIsNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db, nil)
	err := s.Update(ctx, primitive.NewObjectID(), bson.M{"title": "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Update missing = %v, want ErrNotFound", err)
	}

	// The empty-set form still reports existence.
	err = s.Update(ctx, primitive.NewObjectID(), bson.M{})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Update missing with empty set = %v, want ErrNotFound", err)
	}
}

func TestDeleteMissingIsNoOp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db, nil)
	if err := s.Delete(ctx, primitive.NewObjectID()); err != nil {
		t.Errorf("Delete missing = %v, want nil", err)
	}
}
