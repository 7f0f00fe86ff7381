package rdns

import (
	"context"
	"errors"
	"net"
	"strings"
)

// Resolver looks up PTR records. *net.Resolver satisfies it.
type Resolver interface {
	LookupAddr(ctx context.Context, addr string) ([]string, error)
}

// Lookup returns the first PTR name for ip without the trailing dot.
// A missing record yields "" and no error.
func Lookup(ctx context.Context, r Resolver, ip string) (string, error) {
	if r == nil {
		r = net.DefaultResolver
	}

	names, err := r.LookupAddr(ctx, ip)
	if err != nil {
		if isNotFound(err) {
			return "", nil
		}
		return "", err
	}
	if len(names) == 0 {
		return "", nil
	}
	return strings.TrimSuffix(names[0], "."), nil
}

// ─── helper ───────────────────────────────────────────────────────────────────

// isNotFound reports whether err is a DNS "not found" error.
func isNotFound(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr) && dnsErr.IsNotFound
}
