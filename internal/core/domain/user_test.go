package domain

import (
	"reflect"
	"testing"
	"time"
)

func TestNewUserFromIdentity(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.FixedZone("x", 3600))
	u := NewUserFromIdentity(&ExternalIdentity{
		Provider:    ProviderGoogle,
		ExternalID:  "1234567890",
		Email:       "ana@example.com",
		DisplayName: "Ana",
	}, now)

	if u.ID != "1234567890" {
		t.Fatalf("expected id to be the external id, got %q", u.ID)
	}
	if u.Username != "g_1234567890" {
		t.Fatalf("unexpected username: %q", u.Username)
	}
	if u.Roles == nil || len(u.Roles) != 0 {
		t.Fatalf("expected empty non-nil roles, got %#v", u.Roles)
	}
	if u.CreatedAt.Location() != time.UTC {
		t.Fatalf("expected UTC timestamp")
	}
}

func TestSyntheticUsername_OtherProvider(t *testing.T) {
	if got := SyntheticUsername("github", "42"); got != "github_42" {
		t.Fatalf("unexpected username: %q", got)
	}
}

func TestNormalizeRoles(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, []string{}},
		{"dedup and sort", []string{"member", "admin", "member"}, []string{"admin", "member"}},
		{"blanks dropped", []string{" ", "admin", ""}, []string{"admin"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeRoles(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Ana@Example.COM "); got != "ana@example.com" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestHasAnyRole(t *testing.T) {
	if !HasAnyRole([]string{"member", "admin"}, "admin") {
		t.Fatalf("expected admin to match")
	}
	if HasAnyRole([]string{"member"}, "admin") {
		t.Fatalf("expected no match")
	}
	if HasAnyRole(nil, "admin") {
		t.Fatalf("expected no match for nil roles")
	}
}
