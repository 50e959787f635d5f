// Package upgrades extracts package names from simulated apt-get upgrade output.
package upgrades

import (
	"strings"

	"go.trai.ch/aptsrc/internal/core/domain"
)

// Line markers printed by apt-get -s for each package it would touch.
const (
	markerInst = "Inst"
	markerConf = "Conf"
)

// Line is a classified line of upgrade output.
type Line struct {
	Marker  string
	Package string
	// Origin is the parenthesized candidate annotation, if any.
	Origin string
}

// ClassifyLine reports the package named by a marker line. Any other line is
// rejected. The package is the first token after the marker, cut at any
// version-bracket annotation.
func ClassifyLine(line string) (Line, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Line{}, false
	}
	if fields[0] != markerInst && fields[0] != markerConf {
		return Line{}, false
	}

	name, _, _ := strings.Cut(fields[1], "[")
	if name == "" {
		return Line{}, false
	}

	l := Line{Marker: fields[0], Package: name}
	if _, rest, ok := strings.Cut(line, "("); ok {
		l.Origin, _, _ = strings.Cut(rest, ")")
	}
	return l, true
}

// IsSecurity reports whether an Inst line installs from a security archive.
func (l Line) IsSecurity() bool {
	return l.Marker == markerInst && strings.Contains(strings.ToLower(l.Origin), "security")
}

// Accumulator collects package names in first-seen order, ignoring repeats.
type Accumulator struct {
	seen  map[string]struct{}
	names []string
}

// NewAccumulator creates an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{seen: make(map[string]struct{}), names: []string{}}
}

// Add appends name unless it was already added. It reports whether name was new.
func (a *Accumulator) Add(name string) bool {
	if _, ok := a.seen[name]; ok {
		return false
	}
	a.seen[name] = struct{}{}
	a.names = append(a.names, name)
	return true
}

// Names returns the collected names. The result is never nil.
func (a *Accumulator) Names() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out
}

// Len returns the number of distinct names collected.
func (a *Accumulator) Len() int { return len(a.names) }

// Parse returns the distinct packages named in output, in first-seen order.
// Unrecognized lines are skipped. The result is never nil.
func Parse(output string) []string {
	all, _ := scan(output)
	return all.Names()
}

func scan(output string) (all, security *Accumulator) {
	all, security = NewAccumulator(), NewAccumulator()

	for line := range strings.Lines(output) {
		l, ok := ClassifyLine(line)
		if !ok {
			continue
		}
		all.Add(l.Package)
		if l.IsSecurity() {
			security.Add(l.Package)
		}
	}
	return all, security
}

// DistPackages returns Parse(output) when updates are pending and nil otherwise,
// so callers can tell "nothing pending" from "pending, nothing listed".
func DistPackages(output string, pending bool) []string {
	if !pending {
		return nil
	}
	return Parse(output)
}

// Summarize combines the output of a plain upgrade and a dist-upgrade simulation.
// Updates are pending when either simulation names a package.
func Summarize(upgradeOutput, distOutput string) domain.UpgradeSummary {
	plain, plainSecurity := scan(upgradeOutput)
	dist, _ := scan(distOutput)

	pending := plain.Len() > 0 || dist.Len() > 0
	return domain.UpgradeSummary{
		HasUpdates:       plain.Len() > 0,
		Updates:          plain.Len(),
		SecurityUpdates:  plainSecurity.Len(),
		Packages:         plain.Names(),
		SecurityPackages: plainSecurity.Names(),
		HasDistUpdates:   dist.Len() > 0,
		DistPackages:     DistPackages(distOutput, pending),
	}
}
