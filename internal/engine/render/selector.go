package render

import (
	"go.trai.ch/aptsrc/internal/core/domain"
	"go.trai.ch/aptsrc/internal/core/ports"
	"go.trai.ch/zerr"
)

// CodenameFact is the fact path reported when no release can be resolved.
const CodenameFact = "os.distro.codename"

// Selector validates required inputs and dispatches a spec to the renderer of its format.
type Selector struct {
	facts     ports.FactResolver
	renderers map[domain.Format]ports.SourceRenderer
}

// NewSelector creates a Selector. facts may be nil, in which case no defaults are derived.
func NewSelector(facts ports.FactResolver, list, sources ports.SourceRenderer) *Selector {
	return &Selector{
		facts: facts,
		renderers: map[domain.Format]ports.SourceRenderer{
			domain.FormatList:    list,
			domain.FormatSources: sources,
		},
	}
}

// NewDefaultSelector creates a Selector backed by the built-in renderers.
func NewDefaultSelector(facts ports.FactResolver) *Selector {
	return NewSelector(facts, NewLegacyRenderer(), NewDeb822Renderer())
}

// Render resolves defaults and renders the entry. The SourceSpec is not modified.
// Absent entries keep their identity but carry no content.
func (s *Selector) Render(spec *domain.SourceSpec) (domain.SourceEntry, error) {
	renderer, ok := s.renderers[spec.Format]
	if !ok || renderer == nil {
		err := zerr.With(zerr.Wrap(domain.ErrUnknownFormat, "failed to render source"), "source", spec.Name)
		return domain.SourceEntry{}, zerr.With(err, "format", string(spec.Format))
	}

	entry := domain.SourceEntry{
		ID:           spec.EntryID(),
		Name:         spec.Name,
		Format:       spec.Format,
		Ensure:       spec.Ensure,
		Filename:     spec.Filename(),
		NotifyUpdate: spec.NotifyUpdate.Or(true),
	}
	if entry.Ensure == "" {
		entry.Ensure = domain.EnsurePresent
	}
	if entry.Ensure == domain.EnsureAbsent {
		return entry, nil
	}

	if len(spec.Locations) == 0 {
		err := zerr.Wrap(domain.ErrMissingLocation, "failed to render source")
		return domain.SourceEntry{}, zerr.With(err, "source", spec.Name)
	}

	resolved := spec
	if !spec.ReleaseSet() {
		codename, found := s.codename()
		if !found {
			err := zerr.With(zerr.Wrap(domain.ErrMissingRelease, "failed to render source"), "source", spec.Name)
			return domain.SourceEntry{}, zerr.With(err, "fact", CodenameFact)
		}
		resolved = spec.WithRelease(codename)
	}

	content, err := renderer.Render(resolved)
	if err != nil {
		return domain.SourceEntry{}, err
	}
	entry.Content = content
	return entry, nil
}

func (s *Selector) codename() (string, bool) {
	if s.facts == nil {
		return "", false
	}
	codename, ok := s.facts.Codename()
	if !ok || codename == "" {
		return "", false
	}
	return codename, true
}
