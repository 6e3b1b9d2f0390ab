// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Avdeyev

package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/avdeyev/authgate/models"
)

func strPtr(s string) *string { return &s }

func TestBuildUpdateUserQuery(t *testing.T) {
	t.Run("empty patch is rejected", func(t *testing.T) {
		_, _, err := buildUpdateUserQuery(7, models.UserPatch{})
		if !errors.Is(err, ErrBuildingSQLQuery) {
			t.Fatalf("expected ErrBuildingSQLQuery, got %v", err)
		}
	})

	t.Run("single field", func(t *testing.T) {
		query, args, err := buildUpdateUserQuery(7, models.UserPatch{Email: strPtr("new@example.com")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.HasPrefix(query, "UPDATE users SET email = $1") {
			t.Errorf("unexpected query: %s", query)
		}
		if !strings.Contains(query, "WHERE id = $2") {
			t.Errorf("expected id predicate, got: %s", query)
		}
		if len(args) != 2 {
			t.Fatalf("expected 2 args, got %d", len(args))
		}
		if args[0] != "new@example.com" || args[1] != int64(7) {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("password change updates hash and salt", func(t *testing.T) {
		query, args, err := buildUpdateUserQuery(7, models.UserPatch{
			PasswordHash: strPtr("digest"),
			Salt:         strPtr("salt"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(query, "password_hash = $1") || !strings.Contains(query, "salt = $2") {
			t.Errorf("unexpected query: %s", query)
		}
		if len(args) != 3 {
			t.Fatalf("expected 3 args, got %d", len(args))
		}
	})

	t.Run("full patch keeps declaration order", func(t *testing.T) {
		query, args, err := buildUpdateUserQuery(7, models.UserPatch{
			Email:        strPtr("new@example.com"),
			Role:         strPtr(models.RoleAdmin),
			Status:       strPtr(models.StatusDisabled),
			PasswordHash: strPtr("digest"),
			Salt:         strPtr("salt"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := "UPDATE users SET email = $1, role = $2, status = $3, password_hash = $4, salt = $5 WHERE id = $6"
		if query != want {
			t.Errorf("expected %q, got %q", want, query)
		}
		if len(args) != 6 {
			t.Fatalf("expected 6 args, got %d", len(args))
		}
	})
}
