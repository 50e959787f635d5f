package declare

import (
	"go.trai.ch/aptsrc/internal/core/domain"
)

// KeyLabel returns the label under which the key of a source is managed.
func KeyLabel(id, source string) string {
	return "Add key: " + id + " from source " + source
}

// ComposeKey converts the key declaration of spec into a directive ordered
// before the entry identified by before. It returns nil when no key is declared.
// An unset key ensure follows the ensure of the source.
func ComposeKey(spec *domain.SourceSpec, before string) *domain.KeyDirective {
	if spec.Key.Kind == domain.KeyNone {
		return nil
	}

	f := spec.Key.Fields
	ensure := f.Ensure
	if ensure == "" {
		ensure = string(spec.Ensure)
	}
	if ensure == "" {
		ensure = string(domain.EnsurePresent)
	}

	d := &domain.KeyDirective{
		Label:  KeyLabel(f.ID, spec.Name),
		ID:     f.ID,
		Ensure: ensure,
		Before: before,
	}
	if spec.Key.Kind == domain.KeyStructured {
		d.Server = f.Server
		d.Content = f.Content
		d.Source = f.Source
		d.WeakSSL = f.WeakSSL.IsTrue()
		d.Options = f.Options
	}
	return d
}
