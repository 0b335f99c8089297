package auth

import (
	"errors"
	"fmt"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

const ownerEmail = "rohithbabu031@gmail.com"

func testAllowList(t *testing.T, password string) AllowList {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	list, err := ParseAllowList(fmt.Sprintf("%s:%s", ownerEmail, hash))
	if err != nil {
		t.Fatalf("ParseAllowList: %v", err)
	}
	return list
}

func TestVerifySuccess(t *testing.T) {
	list := testAllowList(t, "correct horse battery")
	if err := list.Verify(ownerEmail, "correct horse battery"); err != nil {
		t.Errorf("Verify = %v, want nil", err)
	}
}

func TestVerifyNormalizesEmail(t *testing.T) {
	list := testAllowList(t, "pw123456")
	if err := list.Verify("  ROHITHBABU031@Gmail.com ", "pw123456"); err != nil {
		t.Errorf("Verify with unnormalized email = %v, want nil", err)
	}
}

func TestVerifyWrongPassword(t *testing.T) {
	list := testAllowList(t, "pw123456")
	if err := list.Verify(ownerEmail, "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("Verify = %v, want ErrBadCredentials", err)
	}
}

func TestVerifyUnknownEmail(t *testing.T) {
	// Membership is checked before the password: an email off the list can
	// never sign in, whatever the password.
	list := testAllowList(t, "pw123456")
	if err := list.Verify("intruder@example.com", "pw123456"); !errors.Is(err, ErrNotAllowed) {
		t.Errorf("Verify = %v, want ErrNotAllowed", err)
	}
}

func TestContains(t *testing.T) {
	list := testAllowList(t, "pw123456")
	if !list.Contains("Rohithbabu031@gmail.com") {
		t.Error("Contains(owner) = false, want true")
	}
	if list.Contains("other@example.com") {
		t.Error("Contains(stranger) = true, want false")
	}
}

func TestParseAllowListEmpty(t *testing.T) {
	list, err := ParseAllowList("")
	if err != nil {
		t.Fatalf("ParseAllowList(\"\") = %v", err)
	}
	if len(list) != 0 {
		t.Errorf("len = %d, want 0", len(list))
	}
}

func TestParseAllowListRejectsPlaintext(t *testing.T) {
	// Entries must carry bcrypt hashes; a plaintext password is a config
	// mistake we refuse at startup.
	if _, err := ParseAllowList("a@b.com:plaintext"); err == nil {
		t.Error("want error for non-bcrypt entry, got nil")
	}
	if _, err := ParseAllowList("not-a-pair"); err == nil {
		t.Error("want error for malformed entry, got nil")
	}
}
