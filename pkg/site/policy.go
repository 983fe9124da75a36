package site

import (
	"fmt"
	"strings"
)

// Policy is a SameSite cookie policy.
type Policy string

const (
	Strict Policy = "Strict"
	Lax    Policy = "Lax"
	None   Policy = "None"
)

// ParsePolicy accepts a policy name in any letter case.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return Strict, nil
	case "lax":
		return Lax, nil
	case "none":
		return None, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
}

// Valid reports whether p is one of the known policies.
func (p Policy) Valid() bool {
	switch p {
	case Strict, Lax, None:
		return true
	}
	return false
}

func (p Policy) String() string {
	return string(p)
}

// UnmarshalText lets policies decode from YAML and env values.
func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
