package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseConstraint reads "12" as Length, "50%" as Percentage and "min:3" as Min
func ParseConstraint(s string) (Constraint, error) {
	s = strings.TrimSpace(s)
	var kind Kind
	num := s
	switch {
	case strings.HasSuffix(s, "%"):
		kind, num = KindPercentage, strings.TrimSuffix(s, "%")
	case strings.HasPrefix(strings.ToLower(s), "min:"):
		kind, num = KindMin, s[len("min:"):]
	default:
		kind = KindLength
	}

	n, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil {
		return Constraint{}, fmt.Errorf("constraint %q: %w", s, err)
	}
	if n < 0 {
		return Constraint{}, fmt.Errorf("constraint %q: negative value", s)
	}
	if kind == KindPercentage && n > 100 {
		return Constraint{}, fmt.Errorf("constraint %q: percentage above 100", s)
	}
	return Constraint{Kind: kind, Value: n}, nil
}

// UnmarshalText accepts the ParseConstraint forms
func (c *Constraint) UnmarshalText(text []byte) error {
	parsed, err := ParseConstraint(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText writes the ParseConstraint form
func (c Constraint) MarshalText() ([]byte, error) {
	switch c.Kind {
	case KindLength:
		return []byte(strconv.Itoa(c.Value)), nil
	case KindPercentage:
		return []byte(strconv.Itoa(c.Value) + "%"), nil
	case KindMin:
		return []byte("min:" + strconv.Itoa(c.Value)), nil
	default:
		return nil, fmt.Errorf("constraint kind %v", c.Kind)
	}
}
