package domain

import (
	"regexp"

	"go.trai.ch/zerr"
)

// Ensure controls whether a source entry should exist.
type Ensure string

const (
	// EnsurePresent renders the entry.
	EnsurePresent Ensure = "present"
	// EnsureAbsent keeps the entry identity so it can be removed, without content.
	EnsureAbsent Ensure = "absent"
)

// ParseEnsure converts a raw ensure value. An empty value means present.
func ParseEnsure(s string) (Ensure, error) {
	switch s {
	case "", string(EnsurePresent):
		return EnsurePresent, nil
	case string(EnsureAbsent):
		return EnsureAbsent, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownEnsure, "invalid ensure"), "ensure", s)
	}
}

// Format selects the textual layout of a source entry.
type Format string

const (
	// FormatList is the legacy one-line sources.list layout.
	FormatList Format = "list"
	// FormatSources is the deb822 multi-field stanza layout.
	FormatSources Format = "sources"
)

// ParseFormat converts a raw format value. "legacy" and "deb822" are accepted as aliases.
// An empty value means FormatList.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", string(FormatList), "legacy":
		return FormatList, nil
	case string(FormatSources), "deb822":
		return FormatSources, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownFormat, "invalid format"), "format", s)
	}
}

// Extension returns the file extension apt expects for the format.
func (f Format) Extension() string {
	if f == FormatSources {
		return ".sources"
	}
	return ".list"
}

// Source types.
const (
	TypeDeb    = "deb"
	TypeDebSrc = "deb-src"
)

// Include selects which of the binary and source entries are generated.
type Include struct {
	Deb bool
	Src bool
}

// DefaultInclude emits binary entries only.
func DefaultInclude() Include {
	return Include{Deb: true, Src: false}
}

// Types returns the source types selected by the include flags, in fixed order.
func (i Include) Types() []string {
	types := make([]string, 0, 2)
	if i.Deb {
		types = append(types, TypeDeb)
	}
	if i.Src {
		types = append(types, TypeDebSrc)
	}
	return types
}

// SourceSpec is the complete description of one repository entry.
// Release is empty when unset; a single empty-string element is a valid, empty release.
type SourceSpec struct {
	Name   string
	Ensure Ensure
	Format Format

	// Comment is emitted above legacy entries only.
	Comment string

	Locations    []string
	Release      []string
	Repos        []string
	Architecture []string

	// Types applies to the sources format. When empty it is derived from Include.
	Types   []string
	Include Include

	AllowUnsigned   TriBool
	AllowInsecure   TriBool
	CheckValidUntil TriBool
	Enabled         TriBool
	NotifyUpdate    TriBool

	// Keyring is the path of an already materialized keyring file.
	Keyring string

	Key KeySpec
	Pin PinSpec
}

// ReleaseSet reports whether a release was given, including an empty one.
func (s *SourceSpec) ReleaseSet() bool {
	return len(s.Release) > 0
}

// EntryID returns the identifier under which the rendered entry is placed.
func (s *SourceSpec) EntryID() string {
	return string(s.Format) + "-" + s.Name
}

// Filename returns the file name of the rendered entry.
func (s *SourceSpec) Filename() string {
	return s.Name + s.Format.Extension()
}

// WithRelease returns a shallow copy of s with the release replaced.
func (s *SourceSpec) WithRelease(release ...string) *SourceSpec {
	c := *s
	c.Release = release
	return &c
}

var sourceNameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateName checks that a source name is usable as a file name.
func ValidateName(name string) error {
	if !sourceNameRe.MatchString(name) {
		return zerr.With(zerr.Wrap(ErrInvalidSourceName, "invalid source name"), "source", name)
	}
	return nil
}
