package config

import (
	"strings"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SourcesFile is the structure of the sources.yaml file.
type SourcesFile struct {
	Version string                `yaml:"version"`
	Sources map[string]*SourceDTO `yaml:"sources"`
}

// SourceDTO is a source declaration as written in the sources file.
type SourceDTO struct {
	Ensure          string      `yaml:"ensure"`
	Format          string      `yaml:"format"`
	Comment         *string     `yaml:"comment"`
	Location        stringList  `yaml:"location"`
	Release         stringList  `yaml:"release"`
	Repos           *stringList `yaml:"repos"`
	Architecture    stringList  `yaml:"architecture"`
	Types           stringList  `yaml:"types"`
	Include         IncludeDTO  `yaml:"include"`
	AllowUnsigned   *bool       `yaml:"allow_unsigned"`
	AllowInsecure   *bool       `yaml:"allow_insecure"`
	CheckValidUntil *bool       `yaml:"check_valid_until"`
	Enabled         *bool       `yaml:"enabled"`
	NotifyUpdate    *bool       `yaml:"notify_update"`
	Keyring         string      `yaml:"keyring"`
	Key             keyValue    `yaml:"key"`
	Pin             any         `yaml:"pin"`
}

// IncludeDTO selects the binary and source entries. Unset flags keep their default.
type IncludeDTO struct {
	Deb *bool `yaml:"deb"`
	Src *bool `yaml:"src"`
}

// keyValue keeps numeric-looking scalars of a key declaration as written, so an
// id such as 12345678 or 0x7E4C6D1B is not read as a number.
type keyValue struct {
	value any
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (k *keyValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return decodeLiteral(node, &k.value)
	}
	m := make(map[string]any, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var v any
		if err := decodeLiteral(node.Content[i+1], &v); err != nil {
			return err
		}
		m[node.Content[i].Value] = v
	}
	k.value = m
	return nil
}

func decodeLiteral(node *yaml.Node, out *any) error {
	if node.Kind == yaml.ScalarNode && (node.ShortTag() == "!!int" || node.ShortTag() == "!!float") {
		*out = node.Value
		return nil
	}
	return node.Decode(out)
}

var errExpectedStringList = zerr.New("expected a string or a list of strings")

// stringList accepts a scalar or a sequence. A scalar is split on whitespace,
// except that an empty scalar is kept as one empty element.
type stringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *stringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*s = nil
			return nil
		}
		if strings.TrimSpace(node.Value) == "" {
			*s = stringList{node.Value}
			return nil
		}
		*s = strings.Fields(node.Value)
		return nil
	case yaml.SequenceNode:
		out := make(stringList, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return zerr.With(zerr.Wrap(errExpectedStringList, "invalid list"), "line", item.Line)
			}
			out = append(out, item.Value)
		}
		*s = out
		return nil
	default:
		return zerr.With(zerr.Wrap(errExpectedStringList, "invalid list"), "line", node.Line)
	}
}

// nonEmpty drops empty elements, for fields where an empty value means unset.
func (s stringList) nonEmpty() []string {
	out := make([]string, 0, len(s))
	for _, v := range s {
		if v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
