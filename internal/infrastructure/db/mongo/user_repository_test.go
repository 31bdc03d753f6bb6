package mongo

import (
	"reflect"
	"testing"
	"time"

	"github.com/99minutos/identity-service/internal/core/domain"
)

func TestUserDocument_RoundTrip(t *testing.T) {
	created := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	u := &domain.User{
		ID:          "109876543210",
		DisplayName: "Ana Torres",
		Email:       "Ana@Example.com",
		Username:    "g_109876543210",
		Roles:       []string{"member", "admin", "member"},
		CreatedAt:   created,
	}

	doc := toDocument(u)
	if doc.NormalizedEmail != "ana@example.com" {
		t.Fatalf("unexpected normalized email: %q", doc.NormalizedEmail)
	}
	if doc.Email != "Ana@Example.com" {
		t.Fatalf("original email should be kept, got %q", doc.Email)
	}

	back := doc.toDomain()
	if back.ID != u.ID || back.Username != u.Username || back.DisplayName != u.DisplayName {
		t.Fatalf("unexpected user: %+v", back)
	}
	if !reflect.DeepEqual(back.Roles, []string{"admin", "member"}) {
		t.Fatalf("unexpected roles: %#v", back.Roles)
	}
	if !back.CreatedAt.Equal(created) {
		t.Fatalf("unexpected created_at: %s", back.CreatedAt)
	}
}

func TestUserDocument_NilRolesStoredAsEmpty(t *testing.T) {
	doc := toDocument(&domain.User{ID: "u"})
	if doc.Roles == nil {
		t.Fatalf("expected empty roles array, got nil")
	}
}
