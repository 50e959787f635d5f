// Package render implements the legacy and deb822 source entry renderers.
package render

import (
	"strings"

	"go.trai.ch/aptsrc/internal/core/domain"
)

// optionKind identifies one entry modifier. The constants are declared in
// the order legacy clauses must appear.
type optionKind int

const (
	optArch optionKind = iota
	optTrusted
	optCheckValidUntil
	optAllowInsecure
	optSignedBy
)

// option is a single modifier with its raw values, joined by each renderer.
type option struct {
	kind   optionKind
	values []string
}

var legacyKeys = map[optionKind]string{
	optArch:            "arch",
	optTrusted:         "trusted",
	optCheckValidUntil: "check-valid-until",
	optAllowInsecure:   "allow-insecure",
	optSignedBy:        "signed-by",
}

var stanzaFields = map[optionKind]string{
	optArch:            "Architectures",
	optTrusted:         "Trusted",
	optCheckValidUntil: "Check-Valid-Until",
	optAllowInsecure:   "Allow-Insecure",
	optSignedBy:        "Signed-By",
}

// stanzaOrder is the field order of modifiers inside a deb822 stanza.
var stanzaOrder = []optionKind{
	optArch,
	optSignedBy,
	optTrusted,
	optCheckValidUntil,
	optAllowInsecure,
}

// composeOptions builds the option table of a spec in legacy clause order.
// check_valid_until only contributes when explicitly false, since true is apt's default.
func composeOptions(spec *domain.SourceSpec) []option {
	opts := make([]option, 0, len(legacyKeys))
	if len(spec.Architecture) > 0 {
		opts = append(opts, option{kind: optArch, values: spec.Architecture})
	}
	if spec.AllowUnsigned.IsTrue() {
		opts = append(opts, option{kind: optTrusted, values: []string{"yes"}})
	}
	if spec.CheckValidUntil.IsFalse() {
		opts = append(opts, option{kind: optCheckValidUntil, values: []string{"false"}})
	}
	if spec.AllowInsecure.IsTrue() {
		opts = append(opts, option{kind: optAllowInsecure, values: []string{"yes"}})
	}
	if spec.Keyring != "" {
		opts = append(opts, option{kind: optSignedBy, values: []string{spec.Keyring}})
	}
	return opts
}

// legacyClause renders the bracketed option clause, or "" when there are no options.
func legacyClause(opts []option) string {
	if len(opts) == 0 {
		return ""
	}
	tokens := make([]string, len(opts))
	for i, o := range opts {
		tokens[i] = legacyKeys[o.kind] + "=" + strings.Join(o.values, ",")
	}
	return "[" + strings.Join(tokens, " ") + "]"
}

// stanzaOptions renders the option table as deb822 fields.
func stanzaOptions(opts []option) []Field {
	byKind := make(map[optionKind]option, len(opts))
	for _, o := range opts {
		byKind[o.kind] = o
	}

	fields := make([]Field, 0, len(opts))
	for _, kind := range stanzaOrder {
		o, ok := byKind[kind]
		if !ok {
			continue
		}
		fields = append(fields, Field{Name: stanzaFields[kind], Value: strings.Join(o.values, " ")})
	}
	return fields
}
