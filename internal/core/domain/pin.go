package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

// PinKind tags the form a pin was declared in.
type PinKind uint8

const (
	// PinNone means the source carries no pin.
	PinNone PinKind = iota
	// PinShorthand is a bare priority.
	PinShorthand
	// PinStructured is a map of pin fields.
	PinStructured
)

// PinFields holds the structured pin declaration.
type PinFields struct {
	Priority       string
	Release        string
	Explanation    string
	Origin         string
	Version        string
	Packages       string
	Codename       string
	ReleaseVersion string
	Component      string
	Originator     string
	Label          string
}

// PinSpec is the tagged pin declaration of a source.
type PinSpec struct {
	Kind   PinKind
	Fields PinFields
}

// NoPin returns an empty declaration.
func NoPin() PinSpec { return PinSpec{} }

// PinPriority declares a pin by priority only.
func PinPriority(priority string) PinSpec {
	return PinSpec{Kind: PinShorthand, Fields: PinFields{Priority: priority}}
}

// StructuredPin declares a pin from its fields.
func StructuredPin(f PinFields) PinSpec {
	return PinSpec{Kind: PinStructured, Fields: f}
}

// ParsePin converts a decoded pin value into a PinSpec.
// Strings and numbers are priorities, maps are structured pins. A boolean is rejected.
func ParsePin(v any) (PinSpec, error) {
	if v == nil {
		return NoPin(), nil
	}
	if _, ok := v.(bool); ok {
		return PinSpec{}, invalidPin("type", "bool")
	}
	if s, ok := scalarString(v); ok {
		return PinPriority(s), nil
	}
	m, ok := stringMap(v)
	if !ok {
		return PinSpec{}, invalidPin("type", fmt.Sprintf("%T", v))
	}

	var f PinFields
	fields := map[string]*string{
		"priority":        &f.Priority,
		"release":         &f.Release,
		"explanation":     &f.Explanation,
		"origin":          &f.Origin,
		"version":         &f.Version,
		"codename":        &f.Codename,
		"release_version": &f.ReleaseVersion,
		"component":       &f.Component,
		"originator":      &f.Originator,
		"label":           &f.Label,
	}
	for _, name := range sortedKeys(m) {
		raw := m[name]
		if name == "packages" {
			s, ok := joinedString(raw, " ")
			if !ok {
				return PinSpec{}, invalidPin("field", name)
			}
			f.Packages = s
			continue
		}
		dst, known := fields[name]
		if !known {
			return PinSpec{}, zerr.With(zerr.Wrap(ErrUnknownPinField, "invalid pin"), "field", name)
		}
		s, ok := scalarString(raw)
		if !ok {
			return PinSpec{}, invalidPin("field", name)
		}
		*dst = s
	}
	return StructuredPin(f), nil
}

func invalidPin(key, value string) error {
	return zerr.With(zerr.Wrap(ErrInvalidPinType, "invalid pin"), key, value)
}
