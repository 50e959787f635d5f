package render

import (
	"strings"

	"go.trai.ch/aptsrc/internal/core/domain"
	"go.trai.ch/aptsrc/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceRenderer = (*LegacyRenderer)(nil)

// LegacyRenderer renders one-line sources.list entries.
type LegacyRenderer struct{}

// NewLegacyRenderer creates a LegacyRenderer.
func NewLegacyRenderer() *LegacyRenderer {
	return &LegacyRenderer{}
}

// Render emits an optional comment line followed by a deb and/or deb-src line,
// as selected by the include flags. No lines are emitted when both are off.
func (r *LegacyRenderer) Render(spec *domain.SourceSpec) (string, error) {
	switch {
	case len(spec.Locations) == 0:
		return "", zerr.With(zerr.Wrap(domain.ErrMissingLocation, "failed to render list entry"), "source", spec.Name)
	case len(spec.Locations) > 1:
		err := zerr.With(zerr.Wrap(domain.ErrMultipleLocations, "failed to render list entry"), "source", spec.Name)
		return "", zerr.With(err, "locations", len(spec.Locations))
	case !spec.ReleaseSet():
		return "", zerr.With(zerr.Wrap(domain.ErrMissingRelease, "failed to render list entry"), "source", spec.Name)
	case len(spec.Release) > 1:
		err := zerr.With(zerr.Wrap(domain.ErrMultipleReleases, "failed to render list entry"), "source", spec.Name)
		return "", zerr.With(err, "releases", len(spec.Release))
	}

	release := spec.Release[0]
	parts := make([]string, 0, 4)
	if clause := legacyClause(composeOptions(spec)); clause != "" {
		parts = append(parts, clause)
	}
	parts = append(parts, spec.Locations[0], release)
	// A path-like release points at a flat repository, which has no components.
	if len(spec.Repos) > 0 && !isFlatRelease(release) {
		parts = append(parts, strings.Join(spec.Repos, " "))
	}
	body := strings.Join(parts, " ")

	var b strings.Builder
	if spec.Comment != "" {
		b.WriteString("# " + spec.Comment + "\n")
	}
	for _, typ := range spec.Include.Types() {
		b.WriteString(typ + " " + body + "\n")
	}
	return b.String(), nil
}

func isFlatRelease(release string) bool {
	return strings.HasSuffix(release, "/")
}
