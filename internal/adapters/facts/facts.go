// Package facts resolves host facts from os-release and the running binary.
package facts

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"runtime"

	"github.com/joho/godotenv"
	"go.trai.ch/aptsrc/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FactResolver = (*Resolver)(nil)

// ErrOSReleaseReadFailed is returned when os-release exists but cannot be parsed.
var ErrOSReleaseReadFailed = zerr.New("failed to read os-release")

// debianArch maps GOARCH values to Debian architecture names.
var debianArch = map[string]string{
	"386":      "i386",
	"amd64":    "amd64",
	"arm":      "armhf",
	"arm64":    "arm64",
	"loong64":  "loong64",
	"mips64le": "mips64el",
	"mipsle":   "mipsel",
	"ppc64le":  "ppc64el",
	"riscv64":  "riscv64",
	"s390x":    "s390x",
}

var versionCodenameRe = regexp.MustCompile(`\(([a-z]+)\)`)

// Resolver implements ports.FactResolver.
type Resolver struct {
	codename     string
	architecture string
}

// Overrides replace resolved facts when non-empty.
type Overrides struct {
	Codename     string
	Architecture string
}

// FromOSRelease reads the os-release file at path. A missing file leaves the
// codename unresolved.
func FromOSRelease(path string, o Overrides) (*Resolver, error) {
	var values map[string]string
	if path != "" {
		v, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(fmt.Errorf("%w: %w", ErrOSReleaseReadFailed, err), "path", path)
		}
		values = v
	}
	return New(values, runtime.GOARCH, o), nil
}

// New creates a Resolver from parsed os-release values and a GOARCH value.
func New(osRelease map[string]string, goarch string, o Overrides) *Resolver {
	r := &Resolver{
		codename:     Codename(osRelease),
		architecture: debianArch[goarch],
	}
	if o.Codename != "" {
		r.codename = o.Codename
	}
	if o.Architecture != "" {
		r.architecture = o.Architecture
	}
	return r
}

// Codename extracts the distribution codename from os-release values.
func Codename(osRelease map[string]string) string {
	for _, key := range []string{"VERSION_CODENAME", "UBUNTU_CODENAME", "DEBIAN_CODENAME"} {
		if v := osRelease[key]; v != "" {
			return v
		}
	}
	if m := versionCodenameRe.FindStringSubmatch(osRelease["VERSION"]); m != nil {
		return m[1]
	}
	return ""
}

// Codename returns the distribution codename.
func (r *Resolver) Codename() (string, bool) {
	return r.codename, r.codename != ""
}

// Architecture returns the host architecture in Debian naming.
func (r *Resolver) Architecture() (string, bool) {
	return r.architecture, r.architecture != ""
}
