package errors

import (
	stderrors "errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputError(t *testing.T) {
	assert.Equal(t, "invalid port: 0 out of range", Inputf("port", "%d out of range", 0).Error())
	assert.Equal(t, "input error: empty", Input("", "empty").Error())
}

func TestNetworkErrorUnwrap(t *testing.T) {
	dnsErr := &net.DNSError{Err: "no such host", Name: "nope.invalid", IsNotFound: true}
	err := fmt.Errorf("scan: %w", Network("nope.invalid", "cannot resolve host", dnsErr))

	var netErr *NetworkError
	require.True(t, stderrors.As(err, &netErr))
	assert.Equal(t, "nope.invalid", netErr.Target)

	var got *net.DNSError
	require.True(t, stderrors.As(err, &got))
	assert.True(t, got.IsNotFound)
	assert.Contains(t, err.Error(), "network error [nope.invalid]")
}
