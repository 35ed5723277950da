package layout

import "fmt"

// Kind identifies a sizing rule
type Kind uint8

const (
	KindLength     Kind = iota // Exactly Value cells
	KindPercentage             // Value percent of the available span
	KindMin                    // At least Value cells, grows into slack
)

// String returns the rule name
func (k Kind) String() string {
	switch k {
	case KindLength:
		return "Length"
	case KindPercentage:
		return "Percentage"
	case KindMin:
		return "Min"
	default:
		return "Kind(" + itoa(int(k)) + ")"
	}
}

// Constraint sizes one band of a split
type Constraint struct {
	Kind  Kind
	Value int
}

// Length returns a fixed-size constraint
func Length(n int) Constraint {
	return Constraint{Kind: KindLength, Value: n}
}

// Percentage returns a constraint sized as p percent of the available span
func Percentage(p int) Constraint {
	return Constraint{Kind: KindPercentage, Value: p}
}

// Min returns a constraint of at least n cells
func Min(n int) Constraint {
	return Constraint{Kind: KindMin, Value: n}
}

// Apply converts the constraint to a length within span
// Percentages floor; Length and Min return their value unchanged
// Panics on an unknown kind or a negative value, both are programming errors
func (c Constraint) Apply(span int) int {
	if c.Value < 0 {
		panic(fmt.Sprintf("layout: negative constraint %v", c))
	}
	switch c.Kind {
	case KindLength, KindMin:
		return c.Value
	case KindPercentage:
		if span <= 0 {
			return 0
		}
		return span * c.Value / 100
	default:
		panic(fmt.Sprintf("layout: %v cannot be converted to a fixed length", c.Kind))
	}
}

// String formats as Kind(Value)
func (c Constraint) String() string {
	return c.Kind.String() + "(" + itoa(c.Value) + ")"
}

// itoa converts int to string without fmt in hot paths
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
