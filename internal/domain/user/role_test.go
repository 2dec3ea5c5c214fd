package user

import "testing"

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"Chef":        RoleChef,
		"chef":        RoleChef,
		" FOODLOVER ": RoleFoodLover,
		"admin":       RoleAdmin,
	}
	for in, want := range cases {
		got, ok := ParseRole(in)
		if !ok || got != want {
			t.Fatalf("ParseRole(%q) = %q, %v; want %q", in, got, ok, want)
		}
	}
	if _, ok := ParseRole("Owner"); ok {
		t.Fatal("unknown role should not parse")
	}
	if _, ok := ParseRole(""); ok {
		t.Fatal("empty role should not parse")
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleChef.Valid() || !RoleAdmin.Valid() || !RoleFoodLover.Valid() {
		t.Fatal("canonical roles must be valid")
	}
	if Role("Baker").Valid() {
		t.Fatal("unknown role must be invalid")
	}
}

func TestRequiresChefProfile(t *testing.T) {
	if !RoleChef.RequiresChefProfile() {
		t.Fatal("chef requires title and specialty")
	}
	if RoleFoodLover.RequiresChefProfile() || RoleAdmin.RequiresChefProfile() {
		t.Fatal("only chefs require title and specialty")
	}
}

func TestRoleValidIsCaseSensitive(t *testing.T) {
	if Role("chef").Valid() {
		t.Fatal("non-canonical casing must be parsed, not treated as valid")
	}
}
