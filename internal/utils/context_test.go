// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/socialix/models"
	"github.com/google/uuid"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestUserCtxKey(t *testing.T) {
	if UserCtxKey.String() != "user" {
		t.Errorf("expected 'user', got '%s'", UserCtxKey.String())
	}
}

func TestUserFromContext_Success(t *testing.T) {
	user := models.User{ID: uuid.New(), UserName: "alice"}
	ctx := WithUser(context.Background(), user)

	got, ok := UserFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got.ID != user.ID || got.UserName != "alice" {
		t.Errorf("expected %+v, got %+v", user, got)
	}
}

func TestUserFromContext_Missing(t *testing.T) {
	_, ok := UserFromContext(context.Background())

	if ok {
		t.Error("expected ok=false for missing key")
	}
}

func TestUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, "not-a-user")

	_, ok := UserFromContext(ctx)

	if ok {
		t.Error("expected ok=false for wrong type")
	}
}
