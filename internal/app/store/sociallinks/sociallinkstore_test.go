package sociallinkstore

import (
	"errors"
	"testing"

	"github.com/rohithbabu/foliohub/internal/domain/models"
	"github.com/rohithbabu/foliohub/internal/testutil"
)

func setup(t *testing.T) (*Store, func()) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db, nil)
	if err := s.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes: %v", err)
	}
	return s, func() {}
}

func TestAddRejectsDuplicatePlatform(t *testing.T) {
	s, _ := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := s.Add(ctx, models.SocialLink{Platform: "GitHub", URL: "https://github.com/a"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	// Platform is normalized, so differing case still collides.
	_, err := s.Add(ctx, models.SocialLink{Platform: "github", URL: "https://github.com/b"})
	if !errors.Is(err, ErrDuplicatePlatform) {
		t.Errorf("Add duplicate = %v, want ErrDuplicatePlatform", err)
	}
}

func TestUpsertCreatesThenMerges(t *testing.T) {
	s, _ := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := s.Upsert(ctx, models.SocialLink{Platform: "LinkedIn", URL: "https://linkedin.com/in/a"}); err != nil {
		t.Fatalf("Upsert create: %v", err)
	}
	if err := s.Upsert(ctx, models.SocialLink{Platform: "LinkedIn", URL: "https://linkedin.com/in/b", Username: "b"}); err != nil {
		t.Fatalf("Upsert merge: %v", err)
	}

	all, err := s.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("len = %d, want 1 after two upserts of one platform", len(all))
	}
	if all[0].URL != "https://linkedin.com/in/b" || all[0].Username != "b" {
		t.Errorf("upsert did not merge: %+v", all[0])
	}
}

func TestGetByPlatformNormalizes(t *testing.T) {
	s, _ := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := s.Add(ctx, models.SocialLink{Platform: "Twitter", URL: "https://x.com/a"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	got, err := s.GetByPlatform(ctx, "  TWITTER  ")
	if err != nil {
		t.Fatalf("GetByPlatform: %v", err)
	}
	if got.URL != "https://x.com/a" {
		t.Errorf("url = %q", got.URL)
	}

	if _, err := s.GetByPlatform(ctx, "mastodon"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByPlatform missing = %v, want ErrNotFound", err)
	}
}
