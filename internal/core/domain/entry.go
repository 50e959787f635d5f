package domain

// SourceEntry is a rendered source, keyed for placement in a config file.
// Content is empty when Ensure is absent.
type SourceEntry struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Format       Format `yaml:"format"`
	Ensure       Ensure `yaml:"ensure"`
	Filename     string `yaml:"filename"`
	Content      string `yaml:"content,omitempty"`
	NotifyUpdate bool   `yaml:"notify_update"`
}

// PinDirective is the canonical pin record handed to the pinning collaborator.
// Before names the entry that must not become active until the pin is applied.
type PinDirective struct {
	Name           string `yaml:"name"`
	Ensure         Ensure `yaml:"ensure"`
	Priority       string `yaml:"priority,omitempty"`
	Release        string `yaml:"release,omitempty"`
	Explanation    string `yaml:"explanation,omitempty"`
	Origin         string `yaml:"origin,omitempty"`
	Version        string `yaml:"version,omitempty"`
	Packages       string `yaml:"packages,omitempty"`
	Codename       string `yaml:"codename,omitempty"`
	ReleaseVersion string `yaml:"release_version,omitempty"`
	Component      string `yaml:"component,omitempty"`
	Originator     string `yaml:"originator,omitempty"`
	Label          string `yaml:"label,omitempty"`
	Before         string `yaml:"before"`
}

// KeyDirective is the record handed to the key-management collaborator.
type KeyDirective struct {
	Label   string `yaml:"label"`
	ID      string `yaml:"id"`
	Ensure  string `yaml:"ensure"`
	Server  string `yaml:"server,omitempty"`
	Content string `yaml:"content,omitempty"`
	Source  string `yaml:"source,omitempty"`
	WeakSSL bool   `yaml:"weak_ssl,omitempty"`
	Options string `yaml:"options,omitempty"`
	Before  string `yaml:"before"`
}

// Declaration groups everything derived from one SourceSpec.
type Declaration struct {
	Entry SourceEntry   `yaml:"entry"`
	Pin   *PinDirective `yaml:"pin,omitempty"`
	Key   *KeyDirective `yaml:"key,omitempty"`
}
