package crypto

import (
	"fmt"
	"strings"
)

// Transformation describes a cipher request in the "ALGORITHM" or "ALGORITHM/MODE/PADDING" form.
type Transformation struct {
	Algorithm string
	Mode      string
	Padding   string
}

// ParseTransformation splits a transformation string into its parts.
// Only the bare and the three-part form are accepted.
func ParseTransformation(name string) (Transformation, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Transformation{}, fmt.Errorf("%w: empty transformation", ErrAlgorithmUnavailable)
	}

	parts := strings.Split(name, "/")
	switch len(parts) {
	case 1:
		return Transformation{Algorithm: parts[0]}, nil
	case 3:
		for _, part := range parts {
			if strings.TrimSpace(part) == "" {
				return Transformation{}, fmt.Errorf("%w: malformed transformation %q", ErrAlgorithmUnavailable, name)
			}
		}
		return Transformation{Algorithm: parts[0], Mode: parts[1], Padding: parts[2]}, nil
	default:
		return Transformation{}, fmt.Errorf("%w: malformed transformation %q", ErrAlgorithmUnavailable, name)
	}
}

// IsBare reports whether only the algorithm was requested.
func (t Transformation) IsBare() bool {
	return t.Mode == "" && t.Padding == ""
}

// String renders the transformation the way it was requested.
func (t Transformation) String() string {
	if t.IsBare() {
		return t.Algorithm
	}
	return t.Algorithm + "/" + t.Mode + "/" + t.Padding
}

// Key returns the case-insensitive lookup key of the transformation.
func (t Transformation) Key() string {
	return strings.ToUpper(t.String())
}

// AlgorithmKey returns the case-insensitive lookup key of the algorithm only.
func (t Transformation) AlgorithmKey() string {
	return strings.ToUpper(t.Algorithm)
}

// ModeKey returns the case-insensitive lookup key of algorithm and mode.
func (t Transformation) ModeKey() string {
	return strings.ToUpper(t.Algorithm + "/" + t.Mode)
}
