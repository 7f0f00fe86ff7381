package target

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logivex/portscout/internal/errors"
)

func TestDetectSingleHost(t *testing.T) {
	in, err := Detect("example.com", "localhost", nil)
	require.NoError(t, err)
	assert.Equal(t, SourceFlag, in.Source)
	assert.Equal(t, []string{"example.com"}, in.Targets)
}

func TestDetectDefault(t *testing.T) {
	in, err := Detect("", "localhost", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"localhost"}, in.Targets)

	_, err = Detect("", "", nil)
	var inErr *errors.InputError
	assert.True(t, stderrors.As(err, &inErr))
}

func TestDetectCIDR(t *testing.T) {
	in, err := Detect("10.0.0.0/30", "", nil)
	require.NoError(t, err)
	assert.Equal(t, SourceFlag, in.Source)
	assert.Equal(t, []string{"10.0.0.0/30"}, in.Targets)
}

func TestDetectFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.txt")
	data := "# lab hosts\n127.0.0.1\n\n  localhost  \n192.168.1.0/30\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	in, err := Detect(path, "", nil)
	require.NoError(t, err)
	assert.Equal(t, SourceFile, in.Source)
	assert.Equal(t, []string{"127.0.0.1", "localhost", "192.168.1.0/30"}, in.Targets)
}

func TestDetectPipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	_, err = w.WriteString("10.1.1.1\n10.1.1.2\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	in, err := Detect("ignored", "", r)
	require.NoError(t, err)
	assert.Equal(t, SourcePipe, in.Source)
	assert.Equal(t, []string{"10.1.1.1", "10.1.1.2"}, in.Targets)
}

func TestReadLines(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("a\n#b\n\n c \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, lines)
}

func TestExpand(t *testing.T) {
	got, err := Expand([]string{"host.lan", "192.168.1.0/30", "10.0.0.7/32"})
	require.NoError(t, err)
	assert.Equal(t, []string{"host.lan", "192.168.1.1", "192.168.1.2", "10.0.0.7"}, got)
}

func TestExpandPointToPoint(t *testing.T) {
	got, err := Expand([]string{"10.0.0.0/31"})
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.0", "10.0.0.1"}, got)
}

func TestExpandIPv6(t *testing.T) {
	got, err := Expand([]string{"2001:db8::/126"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2001:db8::", "2001:db8::1", "2001:db8::2", "2001:db8::3"}, got)
}

func TestExpandInvalid(t *testing.T) {
	for _, in := range []string{"10.0.0.0/33", "nope/24", "10.0.0.0/8"} {
		_, err := Expand([]string{in})
		assert.Error(t, err, in)
	}
}
