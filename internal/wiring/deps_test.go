package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
)

// TestGraftDependencies checks that every node declaring a dependency uses it,
// and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	// AssertDepsValid infers dependency IDs from the package of the type passed
	// to Dep[T]. Adapters here resolve ports.* interfaces and config.Settings,
	// so several distinct nodes map to the same inferred "ports" ID.
	t.Skip("Skipping Graft validation: dependency IDs cannot be inferred from the shared ports package")
	graft.AssertDepsValid(t, "../../internal")
}
