// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"github.com/google/uuid"

	"brandvoice/internal/models"
)

func TestUserStoreCreate(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	email := "test-create@store-test.local"
	t.Cleanup(func() { cleanUsers(t, db, email) })

	user, err := s.Create(email, "testpass123", "Test User", models.RoleStaff)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("expected non-nil UUID")
	}
	if user.Email != email {
		t.Errorf("email: got %q, want %q", user.Email, email)
	}
	if user.Role != models.RoleStaff {
		t.Errorf("role: got %q, want %q", user.Role, models.RoleStaff)
	}
	if user.TOTPEnabled {
		t.Error("expected totp_enabled=false for new user")
	}
	if user.PasswordHash == "" || user.PasswordHash == "testpass123" {
		t.Error("password hash must be set and not plaintext")
	}
}

func TestUserStoreFindByEmail(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	email := "test-findbyemail@store-test.local"
	t.Cleanup(func() { cleanUsers(t, db, email) })

	// Not found case.
	user, err := s.FindByEmail(email)
	if err != nil {
		t.Fatalf("FindByEmail (not found): %v", err)
	}
	if user != nil {
		t.Error("expected nil for non-existent user")
	}

	created, err := s.Create(email, "pass", "Find Me", models.RoleClient)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	user, err = s.FindByEmail(email)
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if user == nil {
		t.Fatal("expected user, got nil")
	}
	if user.ID != created.ID {
		t.Errorf("ID mismatch: got %s, want %s", user.ID, created.ID)
	}
}

func TestUserStoreCheckPassword(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	email := "test-checkpass@store-test.local"
	t.Cleanup(func() { cleanUsers(t, db, email) })

	user, err := s.Create(email, "correct-horse", "Pass Check", models.RoleStaff)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !s.CheckPassword(user, "correct-horse") {
		t.Error("correct password rejected")
	}
	if s.CheckPassword(user, "wrong-horse") {
		t.Error("wrong password accepted")
	}
}

func TestUserStoreTOTPLifecycle(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	email := "test-totp@store-test.local"
	t.Cleanup(func() { cleanUsers(t, db, email) })

	user, err := s.Create(email, "pass", "TOTP User", models.RoleStaff)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !user.Needs2FASetup() {
		t.Error("new staff user should need 2FA setup")
	}

	if err := s.SetTOTPSecret(user.ID, "JBSWY3DPEHPK3PXP"); err != nil {
		t.Fatalf("SetTOTPSecret: %v", err)
	}
	if err := s.EnableTOTP(user.ID); err != nil {
		t.Fatalf("EnableTOTP: %v", err)
	}

	user, err = s.FindByID(user.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if !user.TOTPEnabled {
		t.Error("expected totp_enabled=true after EnableTOTP")
	}
	if user.TOTPSecret == nil || *user.TOTPSecret != "JBSWY3DPEHPK3PXP" {
		t.Error("expected stored TOTP secret")
	}

	if err := s.ResetTOTP(user.ID); err != nil {
		t.Fatalf("ResetTOTP: %v", err)
	}
	user, err = s.FindByID(user.ID)
	if err != nil {
		t.Fatalf("FindByID after reset: %v", err)
	}
	if user.TOTPEnabled || user.TOTPSecret != nil {
		t.Error("expected TOTP cleared after ResetTOTP")
	}
}

func TestUserStoreClientLinks(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	email := "test-links@store-test.local"
	t.Cleanup(func() { cleanUsers(t, db, email) })

	user, err := s.Create(email, "pass", "Portal User", models.RoleClient)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	client := makeClient(t, db, "test-links-client@store-test.local")

	// No links yet.
	ok, err := s.HasClient(user.ID, client.ID)
	if err != nil {
		t.Fatalf("HasClient: %v", err)
	}
	if ok {
		t.Error("expected no link before LinkClient")
	}

	if err := s.LinkClient(user.ID, client.ID); err != nil {
		t.Fatalf("LinkClient: %v", err)
	}
	// Linking twice must not error.
	if err := s.LinkClient(user.ID, client.ID); err != nil {
		t.Fatalf("LinkClient (repeat): %v", err)
	}

	ok, err = s.HasClient(user.ID, client.ID)
	if err != nil {
		t.Fatalf("HasClient: %v", err)
	}
	if !ok {
		t.Error("expected link after LinkClient")
	}

	ids, err := s.ClientIDs(user.ID)
	if err != nil {
		t.Fatalf("ClientIDs: %v", err)
	}
	if len(ids) != 1 || ids[0] != client.ID {
		t.Errorf("ClientIDs: got %v, want [%s]", ids, client.ID)
	}
}
