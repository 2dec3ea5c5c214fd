package validators

import (
	"context"
	"net"
	"net/mail"
	"strings"
)

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmailSyntaxValid accepts bare addresses only ("a@b.c", not "A <a@b.c>").
func IsEmailSyntaxValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	at := strings.LastIndex(email, "@")
	return at > 0 && strings.Contains(email[at+1:], ".")
}

// DomainChecker reports whether an address's domain can receive mail.
type DomainChecker interface {
	Valid(ctx context.Context, email string) bool
}

// AcceptAll skips the domain lookup.
type AcceptAll struct{}

func (AcceptAll) Valid(context.Context, string) bool { return true }

// DNSChecker resolves MX records, falling back to A/AAAA.
type DNSChecker struct {
	Resolver *net.Resolver
}

func (d DNSChecker) Valid(ctx context.Context, email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	r := d.Resolver
	if r == nil {
		r = net.DefaultResolver
	}

	if mx, err := r.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := r.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
