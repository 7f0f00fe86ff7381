package portscan

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logivex/portscout/internal/errors"
)

func TestParsePorts(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"80", []int{80}},
		{"22,80-81,22,443", []int{22, 80, 81, 443}},
		{"10-8", []int{8, 9, 10}},
		{" 1 , 65535 ", []int{1, 65535}},
		{"5,,6", []int{5, 6}},
	}
	for _, tt := range tests {
		got, err := ParsePorts(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParsePortsInvalid(t *testing.T) {
	for _, in := range []string{"abc", "0", "65536", "-1", "1-70000", "", " , "} {
		_, err := ParsePorts(in)
		require.Error(t, err, in)

		var inErr *errors.InputError
		assert.True(t, stderrors.As(err, &inErr), in)
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(nil))
	assert.NoError(t, Validate([]int{1, 65535}))
	assert.Error(t, Validate([]int{0}))
	assert.Error(t, Validate([]int{443, 65536}))
}

func TestRange(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, Range(1, 3))
	assert.Equal(t, []int{65534, 65535}, Range(65534, 70000))
	assert.Empty(t, Range(5, 4))
	assert.Len(t, DefaultPorts(), 1024)
}

func TestTopPorts(t *testing.T) {
	assert.Equal(t, []int{80, 443, 22}, TopPorts(3))
	assert.Empty(t, TopPorts(0))

	many := TopPorts(200)
	assert.Len(t, many, 200)
	assert.Equal(t, many, dedupe(many))
}
