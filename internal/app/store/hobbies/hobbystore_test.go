package hobbystore

import (
	"errors"
	"testing"

	"github.com/rohithbabu/foliohub/internal/domain/models"
	"github.com/rohithbabu/foliohub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAddThenGetAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db, nil)
	id, err := s.Add(ctx, models.Hobby{Name: "Photography", Description: "Street and landscape."})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if id.IsZero() {
		t.Fatal("Add returned zero id")
	}

	hobbies, err := s.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(hobbies) != 1 {
		t.Fatalf("len = %d, want 1", len(hobbies))
	}
	if hobbies[0].ID != id || hobbies[0].Name != "Photography" {
		t.Errorf("got %+v", hobbies[0])
	}
}

func TestGetAllEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db, nil)
	hobbies, err := s.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(hobbies) != 0 {
		t.Errorf("len = %d, want 0", len(hobbies))
	}
}

func TestUpdateMergesFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db, nil)
	id, err := s.Add(ctx, models.Hobby{Name: "Chess", Description: "Rapid games."})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := s.Update(ctx, id, bson.M{"name": "Blitz chess"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := s.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Blitz chess" {
		t.Errorf("name = %q", got.Name)
	}
	// Fields absent from the patch stay untouched.
	if got.Description != "Rapid games." {
		t.Errorf("description = %q, want original", got.Description)
	}
}

func TestUpdateMissingIsNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db, nil)
	err := s.Update(ctx, primitive.NewObjectID(), bson.M{"name": "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Update = %v, want ErrNotFound", err)
	}

	// Same for the empty-patch existence check.
	err = s.Update(ctx, primitive.NewObjectID(), bson.M{})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(empty set) = %v, want ErrNotFound", err)
	}
}

func TestDeleteMissingIsNoOp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db, nil)
	if err := s.Delete(ctx, primitive.NewObjectID()); err != nil {
		t.Errorf("Delete(missing) = %v, want nil", err)
	}
}
