package render

import (
	"strings"

	"go.trai.ch/aptsrc/internal/core/domain"
	"go.trai.ch/aptsrc/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceRenderer = (*Deb822Renderer)(nil)

// Deb822Renderer renders multi-field .sources stanzas.
type Deb822Renderer struct{}

// NewDeb822Renderer creates a Deb822Renderer.
func NewDeb822Renderer() *Deb822Renderer {
	return &Deb822Renderer{}
}

// Render emits a single stanza. Multiple locations, suites and architectures
// are space-joined in input order.
func (r *Deb822Renderer) Render(spec *domain.SourceSpec) (string, error) {
	s, err := r.Stanza(spec)
	if err != nil {
		return "", err
	}
	return s.String(), nil
}

// Stanza builds the ordered fields of the entry.
func (r *Deb822Renderer) Stanza(spec *domain.SourceSpec) (Stanza, error) {
	if len(spec.Locations) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrMissingLocation, "failed to render sources stanza"), "source", spec.Name)
	}
	if !spec.ReleaseSet() {
		return nil, zerr.With(zerr.Wrap(domain.ErrMissingRelease, "failed to render sources stanza"), "source", spec.Name)
	}
	types, err := resolveTypes(spec)
	if err != nil {
		return nil, err
	}

	enabled := "yes"
	if spec.Ensure == domain.EnsureAbsent || spec.Enabled.IsFalse() {
		enabled = "no"
	}

	stanza := Stanza{
		{Name: "Enabled", Value: enabled},
		{Name: "Types", Value: strings.Join(types, " ")},
		{Name: "URIs", Value: strings.Join(spec.Locations, " ")},
		{Name: "Suites", Value: strings.Join(spec.Release, " ")},
	}
	components, err := resolveComponents(spec)
	if err != nil {
		return nil, err
	}
	if components != "" {
		stanza = append(stanza, Field{Name: "Components", Value: components})
	}
	stanza = append(stanza, stanzaOptions(composeOptions(spec))...)
	return stanza, nil
}

// resolveComponents joins the repos unless every suite is a flat path, which
// takes no components.
func resolveComponents(spec *domain.SourceSpec) (string, error) {
	if len(spec.Repos) == 0 {
		return "", nil
	}
	flat := 0
	for _, suite := range spec.Release {
		if isFlatRelease(suite) {
			flat++
		}
	}
	switch flat {
	case 0:
		return strings.Join(spec.Repos, " "), nil
	case len(spec.Release):
		return "", nil
	default:
		return "", zerr.With(zerr.Wrap(domain.ErrMixedFlatSuites, "failed to render sources stanza"), "source", spec.Name)
	}
}

// resolveTypes returns the explicit types, or derives them from the include flags.
func resolveTypes(spec *domain.SourceSpec) ([]string, error) {
	types := spec.Types
	if len(types) == 0 {
		types = spec.Include.Types()
	}
	if len(types) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrMissingTypes, "failed to render sources stanza"), "source", spec.Name)
	}
	for _, t := range types {
		if t != domain.TypeDeb && t != domain.TypeDebSrc {
			err := zerr.With(zerr.Wrap(domain.ErrInvalidType, "failed to render sources stanza"), "source", spec.Name)
			return nil, zerr.With(err, "type", t)
		}
	}
	return types, nil
}
