// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"testing"

	"newsdesk/internal/models"
)

func TestUserCRUD(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	created, err := s.Create(&models.User{
		Name: "Ana", Email: "ana@example.com",
		PasswordHash: "not-a-real-hash", Role: models.RoleEditor,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.LastLoginAt != nil {
		t.Fatal("new accounts have no last login")
	}

	if _, err := s.Create(&models.User{
		Name: "Dup", Email: "ana@example.com",
		PasswordHash: "x", Role: models.RoleEditor,
	}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate email, got %v", err)
	}

	found, err := s.FindByEmail("ana@example.com")
	if err != nil {
		t.Fatalf("find by email: %v", err)
	}
	if found == nil || found.ID != created.ID {
		t.Fatal("user should be findable by email")
	}

	if err := s.TouchLastLogin(created.ID); err != nil {
		t.Fatalf("touch last login: %v", err)
	}
	found, err = s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if found.LastLoginAt == nil {
		t.Fatal("last login should be stamped")
	}

	found.Role = models.RoleAdmin
	if err := s.Update(found); err != nil {
		t.Fatalf("update: %v", err)
	}
	found, err = s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !found.IsAdmin() {
		t.Fatal("role change should persist")
	}

	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	found, err = s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("find after delete: %v", err)
	}
	if found != nil {
		t.Fatal("deleted user should be gone")
	}
}
