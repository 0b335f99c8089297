package educationstore

import (
	"errors"
	"testing"

	"github.com/rohithbabu/foliohub/internal/domain/models"
	"github.com/rohithbabu/foliohub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validEducation() models.Education {
	return models.Education{
		Institution: "University of Somewhere",
		Degree:      "MS",
		Field:       "Information Systems",
		Location:    "Boston, MA",
		StartDate:   "2021-08",
		EndDate:     "2023-05",
	}
}

func TestAddValidatesBeforeIO(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db, nil)
	tests := []struct {
		name    string
		mutate  func(*models.Education)
		wantErr error
	}{
		{"missing institution", func(e *models.Education) { e.Institution = "" }, ErrMissingInstitution},
		{"missing degree", func(e *models.Education) { e.Degree = " " }, ErrMissingDegree},
		{"missing field", func(e *models.Education) { e.Field = "" }, ErrMissingField},
		{"missing location", func(e *models.Education) { e.Location = "" }, ErrMissingLocation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEducation()
			tt.mutate(&e)
			if _, err := s.Add(ctx, e); !errors.Is(err, tt.wantErr) {
				t.Errorf("Add = %v, want %v", err, tt.wantErr)
			}
		})
	}

	// Dates are optional; their absence is not a validation failure.
	e := validEducation()
	e.StartDate, e.EndDate = "", ""
	if _, err := s.Add(ctx, e); err != nil {
		t.Errorf("Add without dates = %v, want nil", err)
	}
}

func TestSaveUpsertsBeforeCreate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db, nil)
	if err := s.Save(ctx, primitive.NewObjectID(), bson.M{"institution": "Ghost U", "degree": "BS", "field": "CS", "location": "here"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.Institution != "Ghost U" {
		t.Fatalf("Save did not create: %+v", got)
	}
}

func TestDeleteEmptyID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db, nil)
	if err := s.Delete(ctx, primitive.NilObjectID); !errors.Is(err, ErrEmptyID) {
		t.Errorf("Delete(zero id) = %v, want ErrEmptyID", err)
	}
}
