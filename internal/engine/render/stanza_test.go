package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/aptsrc/internal/engine/render"
)

func TestParseStanza(t *testing.T) {
	text := "# managed\n" +
		"Types: deb\n" +
		"URIs: http://deb.debian.org/debian\n" +
		"Suites: bookworm bookworm-updates\n" +
		"Signed-By:\n" +
		" -----BEGIN PGP PUBLIC KEY BLOCK-----\n" +
		" .\n" +
		"\n" +
		"Types: deb-src\n"

	stanza, err := render.ParseStanza(text)
	require.NoError(t, err)

	require.Len(t, stanza, 4)
	assert.Equal(t, []string{"deb"}, stanza.Values("Types"))
	assert.Equal(t, []string{"bookworm", "bookworm-updates"}, stanza.Values("Suites"))

	signedBy, ok := stanza.Get("signed-by")
	require.True(t, ok)
	assert.Equal(t, "\n-----BEGIN PGP PUBLIC KEY BLOCK-----\n.", signedBy)

	_, ok = stanza.Get("Components")
	assert.False(t, ok)
	assert.Nil(t, stanza.Values("Components"))
}

func TestParseStanza_Malformed(t *testing.T) {
	for name, text := range map[string]string{
		"leading continuation": " orphan\nTypes: deb\n",
		"missing colon":        "Types deb\n",
		"empty name":           ": deb\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := render.ParseStanza(text)
			require.Error(t, err)
			assert.ErrorIs(t, err, render.ErrMalformedStanza)
		})
	}
}

func TestStanza_String(t *testing.T) {
	s := render.Stanza{
		{Name: "Types", Value: "deb"},
		{Name: "Suites", Value: ""},
	}
	assert.Equal(t, "Types: deb\nSuites:\n", s.String())
}
