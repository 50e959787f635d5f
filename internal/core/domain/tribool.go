package domain

// TriBool is a boolean that distinguishes an explicit false from an unset value.
type TriBool uint8

const (
	// Unset is the zero value.
	Unset TriBool = iota
	// True is an explicit true.
	True
	// False is an explicit false.
	False
)

// BoolOf converts a plain bool into an explicit TriBool.
func BoolOf(b bool) TriBool {
	if b {
		return True
	}
	return False
}

// BoolPtr converts an optional bool, as decoded from configuration.
func BoolPtr(b *bool) TriBool {
	if b == nil {
		return Unset
	}
	return BoolOf(*b)
}

// IsTrue reports whether the value is an explicit true.
func (t TriBool) IsTrue() bool { return t == True }

// IsFalse reports whether the value is an explicit false.
func (t TriBool) IsFalse() bool { return t == False }

// IsSet reports whether the value was given.
func (t TriBool) IsSet() bool { return t != Unset }

// Or returns the explicit value, or def when unset.
func (t TriBool) Or(def bool) bool {
	switch t {
	case True:
		return true
	case False:
		return false
	default:
		return def
	}
}

// String implements fmt.Stringer.
func (t TriBool) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unset"
	}
}
