package rdns

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	names []string
	err   error
}

func (f fakeResolver) LookupAddr(context.Context, string) ([]string, error) {
	return f.names, f.err
}

func TestLookup(t *testing.T) {
	name, err := Lookup(context.Background(), fakeResolver{names: []string{"host.example.com.", "alt."}}, "192.0.2.1")
	require.NoError(t, err)
	assert.Equal(t, "host.example.com", name)
}

func TestLookupNotFound(t *testing.T) {
	notFound := &net.DNSError{Err: "no such host", IsNotFound: true}
	name, err := Lookup(context.Background(), fakeResolver{err: notFound}, "192.0.2.1")
	require.NoError(t, err)
	assert.Empty(t, name)

	name, err = Lookup(context.Background(), fakeResolver{}, "192.0.2.1")
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestLookupFailure(t *testing.T) {
	_, err := Lookup(context.Background(), fakeResolver{err: errors.New("server misbehaving")}, "192.0.2.1")
	assert.Error(t, err)
}
