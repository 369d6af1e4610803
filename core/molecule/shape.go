package molecule

import (
	"fmt"
	"strings"
)

// Shape is the topology of a molecule. Circular molecules let recognition
// sites wrap from the end back to the start.
type Shape uint8

const (
	Linear Shape = iota
	Circular
)

func (s Shape) String() string {
	switch s {
	case Linear:
		return "linear"
	case Circular:
		return "circular"
	default:
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
}

// ParseShape accepts "linear" or "circular" in any case.
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear":
		return Linear, nil
	case "circular":
		return Circular, nil
	}
	return 0, fmt.Errorf("invalid shape %q (want linear or circular)", s)
}

func (s Shape) MarshalText() ([]byte, error) {
	if s != Linear && s != Circular {
		return nil, fmt.Errorf("cannot marshal %v", s)
	}
	return []byte(s.String()), nil
}

func (s *Shape) UnmarshalText(b []byte) error {
	v, err := ParseShape(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
