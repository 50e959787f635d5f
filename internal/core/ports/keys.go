package ports

// KeyInspector reads OpenPGP key material.
//
//go:generate go run go.uber.org/mock/mockgen -source=keys.go -destination=mocks/mock_keys.go -package=mocks
type KeyInspector interface {
	// Fingerprints returns the upper-case hex fingerprints of every key in content.
	Fingerprints(content string) ([]string, error)
}
