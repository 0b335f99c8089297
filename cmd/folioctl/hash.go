package main

import (
	"fmt"
	"strings"

	"github.com/rohithbabu/foliohub/internal/app/system/normalize"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

// newHashCmd produces an allowed_logins entry from an email and password.
// The output pastes directly into FOLIOHUB_ALLOWED_LOGINS.
func newHashCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Generate an email:bcrypt-hash allow-list entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			email = normalize.Email(email)
			if email == "" || !strings.Contains(email, "@") {
				return fmt.Errorf("a valid --email is required")
			}
			if len(password) < 8 {
				return fmt.Errorf("--password must be at least 8 characters")
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			fmt.Printf("%s:%s\n", email, hash)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "owner email address")
	cmd.Flags().StringVar(&password, "password", "", "password to hash")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
