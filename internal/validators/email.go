package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid does a live MX/A lookup on the email's domain. It is
// opt-in (CHECK_EMAIL_DOMAIN) because it adds a DNS round trip to signup.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
