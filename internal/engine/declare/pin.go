// Package declare derives the complete declaration of a source: its rendered
// entry and the pin and key directives that must be applied before it.
package declare

import (
	"net/url"

	"go.trai.ch/aptsrc/internal/core/domain"
)

// ComposePin converts the pin declaration of spec into a directive ordered
// before the entry identified by before. It returns nil when no pin is declared.
func ComposePin(spec *domain.SourceSpec, before string) *domain.PinDirective {
	ensure := spec.Ensure
	if ensure == "" {
		ensure = domain.EnsurePresent
	}

	switch spec.Pin.Kind {
	case domain.PinShorthand:
		return &domain.PinDirective{
			Name:     spec.Name,
			Ensure:   ensure,
			Priority: spec.Pin.Fields.Priority,
			Origin:   locationHost(spec.Locations),
			Before:   before,
		}
	case domain.PinStructured:
		f := spec.Pin.Fields
		return &domain.PinDirective{
			Name:           spec.Name,
			Ensure:         ensure,
			Priority:       f.Priority,
			Release:        f.Release,
			Explanation:    f.Explanation,
			Origin:         f.Origin,
			Version:        f.Version,
			Packages:       f.Packages,
			Codename:       f.Codename,
			ReleaseVersion: f.ReleaseVersion,
			Component:      f.Component,
			Originator:     f.Originator,
			Label:          f.Label,
			Before:         before,
		}
	default:
		return nil
	}
}

// locationHost returns the host of the first location, or "" when it has no
// scheme and host (e.g. "hello.there").
func locationHost(locations []string) string {
	if len(locations) == 0 {
		return ""
	}
	u, err := url.Parse(locations[0])
	if err != nil {
		return ""
	}
	return u.Hostname()
}
