package declare

import (
	"go.trai.ch/aptsrc/internal/core/domain"
	"go.trai.ch/zerr"
)

// EntryRenderer renders a spec into its placed entry.
type EntryRenderer interface {
	Render(spec *domain.SourceSpec) (domain.SourceEntry, error)
}

// Declarer assembles declarations from source specs.
type Declarer struct {
	entries EntryRenderer
}

// New creates a Declarer that renders entries with r.
func New(r EntryRenderer) *Declarer {
	return &Declarer{entries: r}
}

// Declare validates the pin and key of spec, renders its entry and derives
// the directives ordered before it.
func (d *Declarer) Declare(spec *domain.SourceSpec) (*domain.Declaration, error) {
	if err := validateDirectives(spec); err != nil {
		return nil, err
	}

	entry, err := d.entries.Render(spec)
	if err != nil {
		return nil, err
	}

	return &domain.Declaration{
		Entry: entry,
		Pin:   ComposePin(spec, entry.ID),
		Key:   ComposeKey(spec, entry.ID),
	}, nil
}

func validateDirectives(spec *domain.SourceSpec) error {
	switch spec.Pin.Kind {
	case domain.PinNone, domain.PinShorthand, domain.PinStructured:
	default:
		return zerr.With(zerr.Wrap(domain.ErrInvalidPinType, "invalid source directives"), "source", spec.Name)
	}

	switch spec.Key.Kind {
	case domain.KeyNone:
	case domain.KeyShorthand, domain.KeyStructured:
		if spec.Key.Fields.ID == "" {
			return zerr.With(zerr.Wrap(domain.ErrMissingKeyID, "invalid source directives"), "source", spec.Name)
		}
	default:
		return zerr.With(zerr.Wrap(domain.ErrInvalidKeyType, "invalid source directives"), "source", spec.Name)
	}
	return nil
}
