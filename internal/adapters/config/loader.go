// Package config loads source declarations and process settings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"go.trai.ch/aptsrc/internal/core/domain"
	"go.trai.ch/aptsrc/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultSourcesFile is the sources file read when no path is given.
const DefaultSourcesFile = "sources.yaml"

// defaultRepos is used when a source does not mention repos at all.
var defaultRepos = []string{"main"}

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the sources file at path and returns its specs ordered by name.
func (l *Loader) Load(path string) ([]domain.SourceSpec, error) {
	if path == "" {
		path = DefaultSourcesFile
	}

	// #nosec G304 -- path is chosen by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrConfigReadFailed, err), "path", path)
	}

	specs, err := l.Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return specs, nil
}

// Parse decodes sources file content. Unknown fields are rejected.
func (l *Loader) Parse(data []byte) ([]domain.SourceSpec, error) {
	var file SourcesFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", domain.ErrConfigParseFailed, err)
	}

	if len(file.Sources) == 0 && l.Logger != nil {
		l.Logger.Warn("sources file declares no sources")
	}

	names := make([]string, 0, len(file.Sources))
	for name := range file.Sources {
		names = append(names, name)
	}
	sort.Strings(names)

	specs := make([]domain.SourceSpec, 0, len(names))
	for _, name := range names {
		spec, err := buildSpec(name, file.Sources[name])
		if err != nil {
			return nil, zerr.With(err, "source", name)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func buildSpec(name string, dto *SourceDTO) (domain.SourceSpec, error) {
	if err := domain.ValidateName(name); err != nil {
		return domain.SourceSpec{}, err
	}
	if dto == nil {
		dto = &SourceDTO{}
	}

	ensure, err := domain.ParseEnsure(dto.Ensure)
	if err != nil {
		return domain.SourceSpec{}, err
	}
	format, err := domain.ParseFormat(dto.Format)
	if err != nil {
		return domain.SourceSpec{}, err
	}
	pin, err := domain.ParsePin(dto.Pin)
	if err != nil {
		return domain.SourceSpec{}, err
	}
	key, err := domain.ParseKey(dto.Key.value)
	if err != nil {
		return domain.SourceSpec{}, err
	}

	comment := name
	if dto.Comment != nil {
		comment = *dto.Comment
	}

	repos := defaultRepos
	if dto.Repos != nil {
		repos = dto.Repos.nonEmpty()
	}

	include := domain.DefaultInclude()
	if dto.Include.Deb != nil {
		include.Deb = *dto.Include.Deb
	}
	if dto.Include.Src != nil {
		include.Src = *dto.Include.Src
	}

	return domain.SourceSpec{
		Name:            name,
		Ensure:          ensure,
		Format:          format,
		Comment:         comment,
		Locations:       dto.Location.nonEmpty(),
		Release:         dto.Release,
		Repos:           append([]string(nil), repos...),
		Architecture:    dto.Architecture.nonEmpty(),
		Types:           dto.Types.nonEmpty(),
		Include:         include,
		AllowUnsigned:   domain.BoolPtr(dto.AllowUnsigned),
		AllowInsecure:   domain.BoolPtr(dto.AllowInsecure),
		CheckValidUntil: domain.BoolPtr(dto.CheckValidUntil),
		Enabled:         domain.BoolPtr(dto.Enabled),
		NotifyUpdate:    domain.BoolPtr(dto.NotifyUpdate),
		Keyring:         dto.Keyring,
		Key:             key,
		Pin:             pin,
	}, nil
}
