package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingLocation is returned when a present source has no location.
	ErrMissingLocation = zerr.New("cannot create a source entry without specifying a location")

	// ErrMissingRelease is returned when no release is given and the codename fact is unavailable.
	ErrMissingRelease = zerr.New("os.distro.codename fact not available: release parameter required")

	// ErrInvalidPinType is returned when a pin is given as a bare boolean or another unsupported type.
	ErrInvalidPinType = zerr.New("pin expects a value: a priority or a map of pin fields")

	// ErrUnknownFormat is returned when a source format is neither list nor sources.
	ErrUnknownFormat = zerr.New("unknown source format, expected 'list' or 'sources'")

	// ErrUnknownEnsure is returned when ensure is neither present nor absent.
	ErrUnknownEnsure = zerr.New("unknown ensure value, expected 'present' or 'absent'")

	// ErrMultipleLocations is returned when a list entry is given more than one location.
	ErrMultipleLocations = zerr.New("list format accepts exactly one location")

	// ErrMultipleReleases is returned when a list entry is given more than one release.
	ErrMultipleReleases = zerr.New("list format accepts exactly one release")

	// ErrInvalidType is returned when a deb822 type is neither deb nor deb-src.
	ErrInvalidType = zerr.New("invalid source type, expected 'deb' or 'deb-src'")

	// ErrMissingTypes is returned when a deb822 stanza resolves to no types.
	ErrMissingTypes = zerr.New("sources format requires at least one type")

	// ErrUnknownPinField is returned when a pin map carries a field no pin directive understands.
	ErrUnknownPinField = zerr.New("unknown pin field")

	// ErrUnknownKeyField is returned when a key map carries a field no key directive understands.
	ErrUnknownKeyField = zerr.New("unknown key field")

	// ErrMissingKeyID is returned when a key map does not carry an id.
	ErrMissingKeyID = zerr.New("key map must contain at least an id entry")

	// ErrInvalidKeyType is returned when a key is neither an id nor a map.
	ErrInvalidKeyType = zerr.New("key expects an id or a map of key fields")

	// ErrKeyMismatch is returned when inline key content does not contain the declared key id.
	ErrKeyMismatch = zerr.New("key content does not match declared key id")

	// ErrKeyParseFailed is returned when inline key content cannot be read.
	ErrKeyParseFailed = zerr.New("failed to read key content")

	// ErrConfigReadFailed is returned when the sources file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read sources file")

	// ErrConfigParseFailed is returned when the sources file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse sources file")

	// ErrInvalidSourceName is returned when a source name cannot be used as a file name.
	ErrInvalidSourceName = zerr.New("source name can only contain alphanumeric characters, dots, hyphens and underscores")

	// ErrEntryWriteFailed is returned when a rendered entry cannot be written.
	ErrEntryWriteFailed = zerr.New("failed to write source entry")

	// ErrEntryRemoveFailed is returned when an absent entry cannot be removed.
	ErrEntryRemoveFailed = zerr.New("failed to remove source entry")

	// ErrEntryReadFailed is returned when an existing entry cannot be read for comparison.
	ErrEntryReadFailed = zerr.New("failed to read existing source entry")

	// ErrUpgradeOutputReadFailed is returned when captured upgrade output cannot be read.
	ErrUpgradeOutputReadFailed = zerr.New("failed to read upgrade output")

	// ErrMixedFlatSuites is returned when flat and distribution suites share components.
	ErrMixedFlatSuites = zerr.New("components cannot be combined with a flat suite")
)
