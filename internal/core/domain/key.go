package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// KeyKind tags the form a key was declared in.
type KeyKind uint8

const (
	// KeyNone means no key is managed for the source.
	KeyNone KeyKind = iota
	// KeyShorthand is a bare key id.
	KeyShorthand
	// KeyStructured is a map of key fields.
	KeyStructured
)

// KeyFields holds the structured key declaration.
type KeyFields struct {
	ID      string
	Ensure  string
	Server  string
	Content string
	Source  string
	WeakSSL TriBool
	Options string
}

// KeySpec is the tagged key declaration of a source.
type KeySpec struct {
	Kind   KeyKind
	Fields KeyFields
}

// NoKey returns an empty declaration.
func NoKey() KeySpec { return KeySpec{} }

// KeyID declares a key by id only.
func KeyID(id string) KeySpec {
	return KeySpec{Kind: KeyShorthand, Fields: KeyFields{ID: id}}
}

// StructuredKey declares a key from its fields.
func StructuredKey(f KeyFields) KeySpec {
	return KeySpec{Kind: KeyStructured, Fields: f}
}

// ID returns the key id, empty for KeyNone.
func (k KeySpec) ID() string { return k.Fields.ID }

// ParseKey converts a decoded key value into a KeySpec.
func ParseKey(v any) (KeySpec, error) {
	if v == nil {
		return NoKey(), nil
	}
	// An unquoted numeric id decodes as a number.
	if s, ok := scalarString(v); ok {
		if s == "" {
			return NoKey(), nil
		}
		return KeyID(s), nil
	}
	m, ok := stringMap(v)
	if !ok {
		return KeySpec{}, invalidKey("type", fmt.Sprintf("%T", v))
	}

	var f KeyFields
	for _, name := range sortedKeys(m) {
		raw := m[name]
		var err error
		switch name {
		case "id":
			f.ID, err = keyString(name, raw)
		case "ensure":
			f.Ensure, err = keyString(name, raw)
		case "server":
			f.Server, err = keyString(name, raw)
		case "content":
			f.Content, err = keyString(name, raw)
		case "source":
			f.Source, err = keyString(name, raw)
		case "options":
			f.Options, err = keyString(name, raw)
		case "weak_ssl":
			b, isBool := raw.(bool)
			if !isBool {
				err = invalidKey("field", name)
			}
			f.WeakSSL = BoolOf(b)
		default:
			err = zerr.With(zerr.Wrap(ErrUnknownKeyField, "invalid key"), "field", name)
		}
		if err != nil {
			return KeySpec{}, err
		}
	}
	if f.ID == "" {
		return KeySpec{}, zerr.Wrap(ErrMissingKeyID, "invalid key")
	}
	return StructuredKey(f), nil
}

func keyString(name string, raw any) (string, error) {
	s, ok := scalarString(raw)
	if !ok {
		return "", invalidKey("field", name)
	}
	return s, nil
}

func invalidKey(key, value string) error {
	return zerr.With(zerr.Wrap(ErrInvalidKeyType, "invalid key"), key, value)
}

// KeyIDMatches reports whether a declared key id names the key with the given
// fingerprint. Short (8), long (16) and full ids are accepted, with an optional
// 0x prefix and embedded spaces.
func KeyIDMatches(id, fingerprint string) bool {
	norm := strings.ToUpper(strings.ReplaceAll(id, " ", ""))
	norm = strings.TrimPrefix(norm, "0X")
	fp := strings.ToUpper(strings.ReplaceAll(fingerprint, " ", ""))
	switch len(norm) {
	case 8, 16, 40, 64:
		return len(norm) <= len(fp) && strings.HasSuffix(fp, norm)
	default:
		return false
	}
}
