package certificationstore

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
	id, err := s.Add(ctx, models.Certification{
		Name: "AWS Solutions Architect",
		Link: "https://example.com/cert",
		Date: "2024-03-15",
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	certs, err := s.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(certs) != 1 {
		t.Fatalf("len = %d, want 1", len(certs))
	}
	if certs[0].ID != id || certs[0].Name != "AWS Solutions Architect" || certs[0].Date != "2024-03-15" {
		t.Errorf("got %+v", certs[0])
	}
}

func TestUpdateMergesFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db, nil)
	id, err := s.Add(ctx, models.Certification{Name: "Tableau Desktop", Date: "2023-11-01"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := s.Update(ctx, id, bson.M{"description": "Specialist level."}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := s.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Description != "Specialist level." {
		t.Errorf("description = %q", got.Description)
	}
	if got.Name != "Tableau Desktop" || got.Date != "2023-11-01" {
		t.Errorf("untouched fields changed: %+v", got)
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
