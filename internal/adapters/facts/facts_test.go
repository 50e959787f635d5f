package facts_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/aptsrc/internal/adapters/facts"
)

const bookwormOSRelease = `PRETTY_NAME="Debian GNU/Linux 12 (bookworm)"
NAME="Debian GNU/Linux"
VERSION_ID="12"
VERSION="12 (bookworm)"
VERSION_CODENAME=bookworm
ID=debian
HOME_URL="https://www.debian.org/"
`

func TestFromOSRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "os-release")
	require.NoError(t, os.WriteFile(path, []byte(bookwormOSRelease), 0o600))

	r, err := facts.FromOSRelease(path, facts.Overrides{})
	require.NoError(t, err)

	codename, ok := r.Codename()
	assert.True(t, ok)
	assert.Equal(t, "bookworm", codename)
}

func TestFromOSRelease_Missing(t *testing.T) {
	r, err := facts.FromOSRelease(filepath.Join(t.TempDir(), "os-release"), facts.Overrides{})
	require.NoError(t, err)

	_, ok := r.Codename()
	assert.False(t, ok)
}

func TestFromOSRelease_Unreadable(t *testing.T) {
	_, err := facts.FromOSRelease(t.TempDir(), facts.Overrides{})
	require.Error(t, err)
	assert.ErrorIs(t, err, facts.ErrOSReleaseReadFailed)
}

func TestCodename(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		want   string
	}{
		{name: "version codename", values: map[string]string{"VERSION_CODENAME": "trixie"}, want: "trixie"},
		{name: "ubuntu codename", values: map[string]string{"UBUNTU_CODENAME": "jammy"}, want: "jammy"},
		{name: "from version", values: map[string]string{"VERSION": "9 (stretch)"}, want: "stretch"},
		{name: "sid has none", values: map[string]string{"PRETTY_NAME": "Debian GNU/Linux trixie/sid"}, want: ""},
		{name: "nil", values: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, facts.Codename(tt.values))
		})
	}
}

func TestNew_Architecture(t *testing.T) {
	tests := []struct {
		goarch string
		want   string
		ok     bool
	}{
		{goarch: "amd64", want: "amd64", ok: true},
		{goarch: "386", want: "i386", ok: true},
		{goarch: "arm", want: "armhf", ok: true},
		{goarch: "ppc64le", want: "ppc64el", ok: true},
		{goarch: "wasm", want: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.goarch, func(t *testing.T) {
			arch, ok := facts.New(nil, tt.goarch, facts.Overrides{}).Architecture()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, arch)
		})
	}
}

func TestNew_Overrides(t *testing.T) {
	r := facts.New(map[string]string{"VERSION_CODENAME": "bookworm"}, "amd64", facts.Overrides{
		Codename:     "sid",
		Architecture: "arm64",
	})

	codename, _ := r.Codename()
	arch, _ := r.Architecture()
	assert.Equal(t, "sid", codename)
	assert.Equal(t, "arm64", arch)
}
