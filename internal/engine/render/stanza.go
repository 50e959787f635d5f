package render

import (
	"bufio"
	"strings"

	"go.trai.ch/zerr"
)

// ErrMalformedStanza is returned when a stanza line is neither a field nor a continuation.
var ErrMalformedStanza = zerr.New("malformed stanza line")

// Field is a single deb822 field.
type Field struct {
	Name  string
	Value string
}

// Stanza is an ordered list of deb822 fields.
type Stanza []Field

// Get returns the value of the first field with the given name.
// Field names are case-insensitive.
func (s Stanza) Get(name string) (string, bool) {
	for _, f := range s {
		if strings.EqualFold(f.Name, name) {
			return f.Value, true
		}
	}
	return "", false
}

// Values splits a whitespace-separated field value, preserving order.
func (s Stanza) Values(name string) []string {
	v, ok := s.Get(name)
	if !ok {
		return nil
	}
	return strings.Fields(v)
}

// String formats the stanza, one "Name: value" line per field.
func (s Stanza) String() string {
	var b strings.Builder
	for _, f := range s {
		b.WriteString(f.Name)
		b.WriteString(":")
		if f.Value != "" {
			b.WriteString(" ")
			b.WriteString(f.Value)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ParseStanza reads the first stanza of text. Comment lines are skipped, and
// continuation lines are folded into the previous field separated by a newline.
func ParseStanza(text string) (Stanza, error) {
	var stanza Stanza
	scanner := bufio.NewScanner(strings.NewReader(text))

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			if len(stanza) > 0 {
				break
			}
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		if line[0] == ' ' || line[0] == '\t' {
			if len(stanza) == 0 {
				return nil, zerr.With(zerr.Wrap(ErrMalformedStanza, "failed to parse stanza"), "line", lineNo)
			}
			last := &stanza[len(stanza)-1]
			last.Value += "\n" + strings.TrimSpace(line)
			continue
		}

		name, value, ok := strings.Cut(line, ":")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, zerr.With(zerr.Wrap(ErrMalformedStanza, "failed to parse stanza"), "line", lineNo)
		}
		stanza = append(stanza, Field{Name: strings.TrimSpace(name), Value: strings.TrimSpace(value)})
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to scan stanza")
	}
	return stanza, nil
}
