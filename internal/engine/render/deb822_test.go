package render_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/aptsrc/internal/core/domain"
	"go.trai.ch/aptsrc/internal/engine/render"
)

func complexSourcesSpec() *domain.SourceSpec {
	return &domain.SourceSpec{
		Name:          "my_source",
		Ensure:        domain.EnsurePresent,
		Format:        domain.FormatSources,
		Types:         []string{"deb", "deb-src"},
		Locations:     []string{"http://fr.debian.org/debian", "http://de.debian.org/debian"},
		Release:       []string{"stable", "stable-updates", "stable-backports"},
		Repos:         []string{"main", "contrib", "non-free"},
		Architecture:  []string{"amd64", "i386"},
		AllowUnsigned: domain.True,
		Include:       domain.DefaultInclude(),
		NotifyUpdate:  domain.False,
	}
}

func TestDeb822Renderer_Golden(t *testing.T) {
	tests := []struct {
		name   string
		spec   func() *domain.SourceSpec
		golden string
	}{
		{
			name:   "complex stanza",
			spec:   complexSourcesSpec,
			golden: "sources_complex",
		},
		{
			name: "basic stanza",
			spec: func() *domain.SourceSpec {
				return &domain.SourceSpec{
					Name:      "my_source",
					Format:    domain.FormatSources,
					Locations: []string{"http://debian.mirror.iweb.ca/debian/"},
					Release:   []string{"stretch"},
					Repos:     []string{"main", "contrib", "non-free"},
					Include:   domain.DefaultInclude(),
				}
			},
			golden: "sources_basic",
		},
		{
			name: "all modifiers",
			spec: func() *domain.SourceSpec {
				s := complexSourcesSpec()
				s.Types = nil
				s.Include = domain.Include{Deb: true, Src: true}
				s.Keyring = keyringPath
				s.CheckValidUntil = domain.False
				s.AllowInsecure = domain.True
				s.Enabled = domain.False
				return s
			},
			golden: "sources_modifiers",
		},
	}

	r := render.NewDeb822Renderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Render(tt.spec())
			require.NoError(t, err)

			g := goldie.New(t)
			g.Assert(t, tt.golden, []byte(got))
		})
	}
}

func TestDeb822Renderer_Fields(t *testing.T) {
	got, err := render.NewDeb822Renderer().Render(complexSourcesSpec())
	require.NoError(t, err)

	assert.Contains(t, got, "Enabled: yes\n")
	assert.Contains(t, got, "Types: deb deb-src\n")
	assert.Contains(t, got, "URIs: http://fr.debian.org/debian http://de.debian.org/debian\n")
	assert.Contains(t, got, "Suites: stable stable-updates stable-backports\n")
	assert.Contains(t, got, "Components: main contrib non-free\n")
	assert.Contains(t, got, "Architectures: amd64 i386\n")
	assert.Contains(t, got, "Trusted: yes\n")
	assert.NotContains(t, got, "Signed-By")
	assert.NotContains(t, got, "Check-Valid-Until")
	assert.NotContains(t, got, "Trusted: no")
}

func TestDeb822Renderer_TypesFromInclude(t *testing.T) {
	tests := []struct {
		name    string
		include domain.Include
		want    string
	}{
		{name: "binary only", include: domain.Include{Deb: true}, want: "Types: deb\n"},
		{name: "source only", include: domain.Include{Src: true}, want: "Types: deb-src\n"},
		{name: "both", include: domain.Include{Deb: true, Src: true}, want: "Types: deb deb-src\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := complexSourcesSpec()
			spec.Types = nil
			spec.Include = tt.include

			got, err := render.NewDeb822Renderer().Render(spec)
			require.NoError(t, err)
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestDeb822Renderer_OmitsEmptyComponents(t *testing.T) {
	spec := complexSourcesSpec()
	spec.Repos = nil
	spec.Architecture = nil

	got, err := render.NewDeb822Renderer().Render(spec)
	require.NoError(t, err)
	assert.NotContains(t, got, "Components")
	assert.NotContains(t, got, "Architectures")
}

func TestDeb822Renderer_RoundTrip(t *testing.T) {
	spec := complexSourcesSpec()

	text, err := render.NewDeb822Renderer().Render(spec)
	require.NoError(t, err)

	stanza, err := render.ParseStanza(text)
	require.NoError(t, err)

	assert.Equal(t, spec.Types, stanza.Values("Types"))
	assert.Equal(t, spec.Locations, stanza.Values("URIs"))
	assert.Equal(t, spec.Release, stanza.Values("Suites"))
	assert.Equal(t, spec.Repos, stanza.Values("Components"))
	assert.Equal(t, spec.Architecture, stanza.Values("architectures"))
}

func TestDeb822Renderer_FlatSuites(t *testing.T) {
	spec := complexSourcesSpec()
	spec.Release = []string{"./", "stable/"}
	spec.Repos = []string{"main"}

	stanza, err := render.NewDeb822Renderer().Stanza(spec)
	require.NoError(t, err)
	assert.Equal(t, []string{"./", "stable/"}, stanza.Values("Suites"))
	_, ok := stanza.Get("Components")
	assert.False(t, ok)
}

func TestDeb822Renderer_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.SourceSpec)
		wantErr error
	}{
		{
			name:    "no location",
			mutate:  func(s *domain.SourceSpec) { s.Locations = nil },
			wantErr: domain.ErrMissingLocation,
		},
		{
			name:    "unset release",
			mutate:  func(s *domain.SourceSpec) { s.Release = nil },
			wantErr: domain.ErrMissingRelease,
		},
		{
			name:    "unknown type",
			mutate:  func(s *domain.SourceSpec) { s.Types = []string{"deb", "rpm"} },
			wantErr: domain.ErrInvalidType,
		},
		{
			name: "no types",
			mutate: func(s *domain.SourceSpec) {
				s.Types = nil
				s.Include = domain.Include{}
			},
			wantErr: domain.ErrMissingTypes,
		},
		{
			name: "components with mixed flat suite",
			mutate: func(s *domain.SourceSpec) {
				s.Release = []string{"bookworm", "./"}
				s.Repos = []string{"main"}
			},
			wantErr: domain.ErrMixedFlatSuites,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := complexSourcesSpec()
			tt.mutate(spec)

			_, err := render.NewDeb822Renderer().Render(spec)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
