package skillstore

import (
	"reflect"
	"testing"

	"github.com/rohithbabu/foliohub/internal/domain/models"
	"github.com/rohithbabu/foliohub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestAddClampsLevel(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db, nil)
	id, err := s.Add(ctx, models.Skill{Name: "Go", Level: 250})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	got, err := s.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Level != 100 {
		t.Errorf("level = %d, want 100", got.Level)
	}

	id, err = s.Add(ctx, models.Skill{Name: "Negative", Level: -5})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	got, err = s.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Level != 0 {
		t.Errorf("level = %d, want 0", got.Level)
	}
}

func TestLegacyStringSubtopicsDecode(t *testing.T) {
	// A document written by an older client holds subtopics as one string.
	// Reads must normalize it to the list shape.
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := db.Collection("skills").InsertOne(ctx, bson.M{
		"name":      "Data Analysis",
		"level":     85,
		"subtopics": "SQL, Python, Tableau",
	})
	if err != nil {
		t.Fatalf("insert raw: %v", err)
	}

	s := New(db, nil)
	skills, err := s.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(skills) != 1 {
		t.Fatalf("len = %d, want 1", len(skills))
	}
	want := models.Subtopics{"SQL", "Python", "Tableau"}
	if !reflect.DeepEqual(skills[0].Subtopics, want) {
		t.Errorf("subtopics = %v, want %v", skills[0].Subtopics, want)
	}
}

func TestUpdateNormalizesSubtopicsString(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db, nil)
	id, err := s.Add(ctx, models.Skill{Name: "Data", Level: 70})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := s.Update(ctx, id, bson.M{"subtopics": "R, Excel", "level": 300}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := s.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !reflect.DeepEqual(got.Subtopics, models.Subtopics{"R", "Excel"}) {
		t.Errorf("subtopics = %v", got.Subtopics)
	}
	if got.Level != 100 {
		t.Errorf("level = %d, want clamped 100", got.Level)
	}
}
