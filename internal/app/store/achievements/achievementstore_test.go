package achievementstore

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
	id, err := s.Add(ctx, models.Achievement{
		Title:       "Dean's List",
		Description: "Fall semester.",
		Date:        "Dec 2022",
		Category:    "academic",
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	achievements, err := s.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(achievements) != 1 {
		t.Fatalf("len = %d, want 1", len(achievements))
	}
	got := achievements[0]
	if got.ID != id || got.Title != "Dean's List" {
		t.Errorf("got %+v", got)
	}
	// The date is a display string and comes back verbatim.
	if got.Date != "Dec 2022" {
		t.Errorf("date = %q", got.Date)
	}
}

func TestUpdateStrictAndMerging(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db, nil)
	id, err := s.Add(ctx, models.Achievement{Title: "Hackathon Winner", Description: "First place."})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := s.Update(ctx, id, bson.M{"link": "https://example.com/win"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := s.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Link != "https://example.com/win" || got.Title != "Hackathon Winner" {
		t.Errorf("got %+v", got)
	}

	err = s.Update(ctx, primitive.NewObjectID(), bson.M{"title": "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(missing) = %v, want ErrNotFound", err)
	}
}

func TestGetByIDMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db, nil)
	if _, err := s.GetByID(ctx, primitive.NewObjectID()); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID = %v, want ErrNotFound", err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db, nil)
	id, err := s.Add(ctx, models.Achievement{Title: "Cert of Merit", Description: "x"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := s.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, id); err != nil {
		t.Errorf("Delete(again) = %v, want nil", err)
	}
	if _, err := s.GetByID(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID after delete = %v, want ErrNotFound", err)
	}
}
