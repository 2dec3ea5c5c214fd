package validators

import (
	"context"
	"strings"
	"testing"
)

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Ana@Example.COM "); got != "ana@example.com" {
		t.Fatalf("got %q", got)
	}
}

func TestIsEmailSyntaxValid(t *testing.T) {
	valid := []string{"a@b.co", "first.last@example.com", "x+tag@mail.example.org"}
	invalid := []string{"", "plain", "@example.com", "a@", "a@localhost", "Ana <ana@example.com>", "a b@example.com"}

	for _, e := range valid {
		if !IsEmailSyntaxValid(e) {
			t.Errorf("%q should be valid", e)
		}
	}
	for _, e := range invalid {
		if IsEmailSyntaxValid(e) {
			t.Errorf("%q should be invalid", e)
		}
	}
}

func TestDNSCheckerRejectsMalformed(t *testing.T) {
	var d DNSChecker
	if d.Valid(context.Background(), "no-at-sign") || d.Valid(context.Background(), "trailing@") {
		t.Fatal("malformed addresses must fail before any lookup")
	}
	if !(AcceptAll{}).Valid(context.Background(), "whatever") {
		t.Fatal("AcceptAll must accept")
	}
}

func TestFields(t *testing.T) {
	f := Fields{}
	name := f.Required("name", "  Ana  ", MaxNameLen)
	email := f.Email("email", " ANA@example.com")
	f.Password("password", "12345")
	blank := "   "
	title := f.Optional("roleTitle", &blank, MaxRoleTitleLen)

	if name != "Ana" || email != "ana@example.com" {
		t.Fatalf("values not normalized: %q %q", name, email)
	}
	if title != nil {
		t.Fatal("blank optional must be nil")
	}
	if len(f) != 1 || f["password"] == "" {
		t.Fatalf("unexpected fields: %v", f)
	}

	long := Fields{}
	long.Password("password", strings.Repeat("x", MaxPasswordBytes+1))
	if long["password"] != "must be at most 72 bytes" {
		t.Fatalf("long password accepted: %v", long)
	}
	long = Fields{}
	long.Password("password", strings.Repeat("x", MaxPasswordBytes))
	if !long.Empty() {
		t.Fatalf("72-byte password rejected: %v", long)
	}

	f.Add("password", "second message")
	if f["password"] != "must be at least 6 characters" {
		t.Fatal("first message must win")
	}
}
