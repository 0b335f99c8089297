package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rohithbabu/foliohub/internal/app/system/normalize"
	"golang.org/x/crypto/bcrypt"
)

// AllowList maps normalized owner emails to bcrypt password hashes. It is
// the pre-filter in front of any other credential check: an email that is
// not on the list can never sign in, whatever the password.
//
// The original site shipped plaintext allow-list credentials inside the
// client bundle. Here the list lives in server-side config as bcrypt hashes;
// use `folioctl hash` to produce entries.
type AllowList map[string]string

var (
	// ErrNotAllowed means the email is not on the allow-list.
	ErrNotAllowed = errors.New("email not on allow-list")
	// ErrBadCredentials means the password did not match. Handlers collapse
	// both errors into one "Invalid email or password" message.
	ErrBadCredentials = errors.New("invalid credentials")
)

// ParseAllowList parses "email:bcrypthash,email:bcrypthash". An empty string
// yields an empty list (login disabled until the owner configures one).
func ParseAllowList(raw string) (AllowList, error) {
	list := AllowList{}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return list, nil
	}
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		email, hash, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("allow-list entry %q is not email:hash", pair)
		}
		email = normalize.Email(email)
		hash = strings.TrimSpace(hash)
		if email == "" || !strings.HasPrefix(hash, "$2") {
			return nil, fmt.Errorf("allow-list entry for %q has no bcrypt hash", email)
		}
		list[email] = hash
	}
	return list, nil
}

// Verify checks an email/password pair. Both the membership check and the
// password check must pass.
func (a AllowList) Verify(email, password string) error {
	hash, ok := a[normalize.Email(email)]
	if !ok {
		return ErrNotAllowed
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrBadCredentials
	}
	return nil
}

// Contains reports allow-list membership only. Used by the OAuth callback,
// where the provider has already proven the identity.
func (a AllowList) Contains(email string) bool {
	_, ok := a[normalize.Email(email)]
	return ok
}
