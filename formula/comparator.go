package formula

import "github.com/katalvlaran/mcsp/mcerr"

// Comparator is one of the four PCTL probability-bound relations.
type Comparator int

const (
	Less Comparator = iota
	Leq
	Greater
	Geq
)

func (c Comparator) String() string {
	switch c {
	case Less:
		return "<"
	case Leq:
		return "<="
	case Greater:
		return ">"
	case Geq:
		return ">="
	default:
		return "?"
	}
}

// Evaluate reports whether value ⋈ bound holds for this comparator.
func (c Comparator) Evaluate(value, bound float64) bool {
	switch c {
	case Less:
		return value < bound
	case Leq:
		return value <= bound
	case Greater:
		return value > bound
	case Geq:
		return value >= bound
	default:
		return false
	}
}

// IsUpperBound reports whether satisfying this comparator requires an upper
// bound on the probability (< or <=), as opposed to a lower bound (> or >=).
// Upper-bound comparators are verified against the maximum probability over
// schedulers; lower-bound comparators against the minimum (§4.2).
func (c Comparator) IsUpperBound() bool {
	return c == Less || c == Leq
}

// ParseComparator parses one of "<", "<=", ">", ">=".
func ParseComparator(s string) (Comparator, error) {
	switch s {
	case "<":
		return Less, nil
	case "<=":
		return Leq, nil
	case ">":
		return Greater, nil
	case ">=":
		return Geq, nil
	default:
		return 0, mcerr.New(mcerr.ParseError, "%q is not a valid comparator", s)
	}
}
