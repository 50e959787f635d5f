// Package ports defines the core interfaces for the application.
package ports

// FactResolver supplies host facts that fill in unset source parameters.
//
//go:generate go run go.uber.org/mock/mockgen -source=facts.go -destination=mocks/mock_facts.go -package=mocks
type FactResolver interface {
	// Codename returns the distribution codename (the os.distro.codename fact).
	Codename() (string, bool)

	// Architecture returns the host package architecture, e.g. "amd64".
	Architecture() (string, bool)
}
